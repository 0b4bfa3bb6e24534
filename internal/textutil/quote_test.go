package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: `"quoted"`, want: "quoted"},
		{in: `"Program Files"/x`, want: "Program Files/x"},
		{in: `""`, want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dequote(tt.in), "Dequote(%q)", tt.in)
	}
}

func TestHasWildcard(t *testing.T) {
	assert.True(t, HasWildcard("*.go"))
	assert.True(t, HasWildcard("file?.txt"))
	assert.True(t, HasWildcard("[ab].txt"))
	assert.False(t, HasWildcard("dir/file.txt"))
}

func TestHasSuffixFold(t *testing.T) {
	assert.True(t, HasSuffixFold("run.exe", ".EXE"))
	assert.True(t, HasSuffixFold("RUN.COM", ".com"))
	assert.False(t, HasSuffixFold("exe", ".exe"))
	assert.False(t, HasSuffixFold("notes.txt", ".exe"))
}
