package models

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is the minute-resolution modification stamp shown in long listings.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// TimestampOf truncates t (in local time) to a Timestamp.
func TimestampOf(t time.Time) Timestamp {
	t = t.Local()
	return Timestamp{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Compare orders two stamps chronologically, field by field.
// Returns -1, 0 or +1.
func (ts Timestamp) Compare(other Timestamp) int {
	fields := [...][2]int{
		{ts.Year, other.Year},
		{ts.Month, other.Month},
		{ts.Day, other.Day},
		{ts.Hour, other.Hour},
		{ts.Minute, other.Minute},
	}
	for _, f := range fields {
		switch {
		case f[0] < f[1]:
			return -1
		case f[0] > f[1]:
			return +1
		}
	}
	return 0
}

// String formats the stamp as YYYY-MM-DD HH:MM.
func (ts Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute)
}

// FileEntry is one enumerated filesystem item.
//
// Name is what gets displayed and sorted. Path is the raw path used to reach
// the item again (recursion, stat); it equals Name unless the supplier
// normalized the display name.
type FileEntry struct {
	Name       string
	Path       string
	IsDir      bool
	IsSymlink  bool
	IsHidden   bool
	IsSystem   bool
	IsReadOnly bool
	Size       uint64
	Stamp      Timestamp
}

// IsDotName reports whether the entry name starts with a dot. Dot names are
// filtered from listings unless show-all is set and are never recursed into.
func (e FileEntry) IsDotName() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Relocated returns a copy of e whose display name is prefixed with dir,
// used when queueing a subdirectory for a later listing.
func (e FileEntry) Relocated(dir string) FileEntry {
	child := e
	child.Name = JoinPath(dir, e.Name)
	if child.Path == "" {
		child.Path = child.Name
	}
	return child
}

// Location returns the path used to reach the entry on disk.
func (e FileEntry) Location() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Name
}

// JoinPath joins a directory and a name with a forward slash. An empty
// directory means the current one and yields the bare name.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, `\`) {
		return dir + name
	}
	return dir + "/" + name
}
