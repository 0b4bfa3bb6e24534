package walker

import (
	"errors"
	"os"
	"testing"

	"github.com/harrison/lsf/internal/colors"
	"github.com/harrison/lsf/internal/executable"
	"github.com/harrison/lsf/internal/fsys"
	"github.com/harrison/lsf/internal/layout"
	"github.com/harrison/lsf/internal/models"
	"github.com/harrison/lsf/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) LogTrace(message string) {
	l.messages = append(l.messages, message)
}

func (l *recordingLogger) LogDebug(message string) {
	l.messages = append(l.messages, message)
}

func newWalker(fs fsys.Supplier, opts models.Options, log Logger) *Walker {
	r := layout.NewRenderer(colors.NewTable(), executable.New("", false, nil), 80)
	return New(fs, r, opts, log)
}

func queued(q *Queue[models.FileEntry]) []string {
	var out []string
	for q.Len() > 0 {
		e, _ := q.PopFront()
		out = append(out, e.Name)
	}
	return out
}

func testTree() *fsys.Mem {
	return fsys.NewMem().
		AddFile("root/b.txt", 1).
		AddFile("root/a.txt", 2).
		AddFile("root/.secret", 3).
		AddDir("root/sub").
		AddDir("root/.git").
		Add("root/link", models.FileEntry{IsDir: true, IsSymlink: true})
}

func TestListOneFiltersHidden(t *testing.T) {
	w := newWalker(testTree(), models.Options{Flags: models.FlagOnePerLine}, nil)
	out := &sink.Buffer{}
	pending := NewQueue[models.FileEntry]()

	require.NoError(t, w.ListOne(models.FileEntry{Name: "root", IsDir: true}, pending, out))

	assert.Equal(t, "a.txt\nb.txt\nlink\nsub\n", out.String())
	assert.Equal(t, 0, pending.Len(), "nothing is queued without recursion")
}

func TestListOneShowAll(t *testing.T) {
	w := newWalker(testTree(), models.Options{Flags: models.FlagOnePerLine | models.FlagAll}, nil)
	out := &sink.Buffer{}

	require.NoError(t, w.ListOne(models.FileEntry{Name: "root", IsDir: true}, NewQueue[models.FileEntry](), out))

	assert.Equal(t, ".git\n.secret\na.txt\nb.txt\nlink\nsub\n", out.String())
}

func TestListOneQueuesSubdirectories(t *testing.T) {
	log := &recordingLogger{}
	opts := models.Options{Flags: models.FlagOnePerLine | models.FlagRecursive | models.FlagAll}
	w := newWalker(testTree(), opts, log)
	pending := NewQueue[models.FileEntry]()

	require.NoError(t, w.ListOne(models.FileEntry{Name: "root", IsDir: true}, pending, &sink.Buffer{}))

	assert.Equal(t, []string{"root/sub"}, queued(pending),
		"dot directories and symlinked directories are never queued, even with show-all")
	assert.Contains(t, log.messages, "queued root/sub")
	assert.Contains(t, log.messages, "not following symlinked directory root/link")
}

func TestListOneQueuedEntriesAreDirectories(t *testing.T) {
	fs := fsys.NewMem().AddDir("d1").AddDir("d2").AddFile("f", 1).AddDir("d1/inner")
	w := newWalker(fs, models.Options{Flags: models.FlagRecursive}, nil)
	pending := NewQueue[models.FileEntry]()

	require.NoError(t, w.ListOne(models.FileEntry{}, pending, &sink.Buffer{}))

	require.Equal(t, 2, pending.Len())
	for pending.Len() > 0 {
		e, _ := pending.PopFront()
		assert.True(t, e.IsDir)
		assert.Equal(t, e.Name, e.Path, "current directory children keep bare names")
	}
}

func TestListOneSortsWithOptions(t *testing.T) {
	fs := fsys.NewMem().
		AddFile("d/small", 1).
		AddFile("d/big", 100).
		AddFile("d/mid", 10)
	opts := models.Options{Flags: models.FlagOnePerLine, SortKey: models.SortBySize, Reverse: true}
	w := newWalker(fs, opts, nil)
	out := &sink.Buffer{}

	require.NoError(t, w.ListOne(models.FileEntry{Name: "d", IsDir: true}, NewQueue[models.FileEntry](), out))
	assert.Equal(t, "small\nmid\nbig\n", out.String())
}

func TestListOneReadError(t *testing.T) {
	w := newWalker(fsys.NewMem(), models.Options{}, nil)
	out := &sink.Buffer{}

	err := w.ListOne(models.FileEntry{Name: "gone", IsDir: true}, NewQueue[models.FileEntry](), out)
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "gone", readErr.Dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, ".", DisplayName(models.FileEntry{}))
	assert.Equal(t, "a/b", DisplayName(models.FileEntry{Name: "a/b"}))
}
