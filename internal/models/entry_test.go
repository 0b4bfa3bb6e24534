package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampCompare(t *testing.T) {
	base := Timestamp{Year: 2024, Month: 5, Day: 10, Hour: 12, Minute: 30}

	tests := []struct {
		name  string
		other Timestamp
		want  int
	}{
		{"equal", base, 0},
		{"later year", Timestamp{Year: 2025, Month: 1, Day: 1}, -1},
		{"earlier month", Timestamp{Year: 2024, Month: 4, Day: 30, Hour: 23, Minute: 59}, +1},
		{"later day", Timestamp{Year: 2024, Month: 5, Day: 11}, -1},
		{"earlier hour", Timestamp{Year: 2024, Month: 5, Day: 10, Hour: 11, Minute: 59}, +1},
		{"later minute", Timestamp{Year: 2024, Month: 5, Day: 10, Hour: 12, Minute: 31}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Compare(tt.other))
			assert.Equal(t, -tt.want, tt.other.Compare(base))
		})
	}
}

func TestTimestampString(t *testing.T) {
	ts := Timestamp{Year: 2009, Month: 3, Day: 7, Hour: 4, Minute: 5}
	assert.Equal(t, "2009-03-07 04:05", ts.String())
}

func TestTimestampOfDropsSeconds(t *testing.T) {
	tm := time.Date(2023, time.December, 31, 23, 59, 58, 0, time.Local)
	assert.Equal(t, Timestamp{Year: 2023, Month: 12, Day: 31, Hour: 23, Minute: 59}, TimestampOf(tm))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "a.txt", JoinPath("", "a.txt"))
	assert.Equal(t, "dir/a.txt", JoinPath("dir", "a.txt"))
	assert.Equal(t, "dir/a.txt", JoinPath("dir/", "a.txt"))
	assert.Equal(t, `C:\a.txt`, JoinPath(`C:\`, "a.txt"))
}

func TestRelocated(t *testing.T) {
	e := FileEntry{Name: "sub", IsDir: true}

	moved := e.Relocated("root")
	assert.Equal(t, "root/sub", moved.Name)
	assert.Equal(t, "root/sub", moved.Location())
	assert.Equal(t, "sub", e.Name, "receiver untouched")

	withPath := FileEntry{Name: "café", Path: "root/cafe\u0301"}
	assert.Equal(t, "root/cafe\u0301", withPath.Relocated("root").Location())
}

func TestIsDotName(t *testing.T) {
	assert.True(t, FileEntry{Name: ".git"}.IsDotName())
	assert.True(t, FileEntry{Name: ".."}.IsDotName())
	assert.False(t, FileEntry{Name: "a.b"}.IsDotName())
	assert.False(t, FileEntry{}.IsDotName())
}

func TestOptions(t *testing.T) {
	o := Options{Flags: FlagLong | FlagRecursive, SortKey: SortBySize}

	assert.True(t, o.Long())
	assert.True(t, o.Recursive())
	assert.False(t, o.ShowAll())
	assert.False(t, o.OnePerLine())
	assert.True(t, o.Has(FlagLong|FlagRecursive))
	assert.False(t, o.Has(FlagLong|FlagAll))
	assert.Equal(t, "size", o.SortKey.String())
	assert.Equal(t, "name", SortByName.String())
	assert.Equal(t, "time", SortByTime.String())
}
