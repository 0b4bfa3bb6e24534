package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterOverBuffer(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	_, err := s.Write([]byte("hello\n"))
	require.NoError(t, err)

	assert.Equal(t, "hello\n", buf.String())
	assert.False(t, s.IsTerminal())
	_, ok := s.Width()
	assert.False(t, ok)
}

func TestWriterOverRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	s := New(f)
	assert.False(t, s.IsTerminal(), "a regular file is not a terminal")

	_, err = s.Write([]byte("x"))
	require.NoError(t, err)
}

func TestBuffer(t *testing.T) {
	b := &Buffer{Terminal: true, Columns: 120}
	b.WriteString("abc")

	assert.True(t, b.IsTerminal())
	w, ok := b.Width()
	assert.True(t, ok)
	assert.Equal(t, 120, w)
	assert.Equal(t, "abc", b.String())

	var plain Buffer
	_, ok = plain.Width()
	assert.False(t, ok)
}
