// Package walker lists single directories and feeds the breadth-first queue
// of subdirectories discovered along the way.
package walker

import (
	"fmt"

	"github.com/harrison/lsf/internal/fsys"
	"github.com/harrison/lsf/internal/models"
	"github.com/harrison/lsf/internal/sink"
	"github.com/harrison/lsf/internal/sorting"
)

// Renderer writes a sorted entry list.
type Renderer interface {
	Render(out sink.Sink, entries []models.FileEntry, opts models.Options) error
}

// Logger receives traversal traces.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
}

// ReadError reports a directory that could not be enumerated. Nothing was
// written for it.
type ReadError struct {
	Dir string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Dir, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Walker lists one directory at a time.
type Walker struct {
	fs       fsys.Supplier
	renderer Renderer
	compare  sorting.Comparator
	opts     models.Options
	log      Logger
}

// New returns a Walker. log may be nil.
func New(fs fsys.Supplier, renderer Renderer, opts models.Options, log Logger) *Walker {
	return &Walker{
		fs:       fs,
		renderer: renderer,
		compare:  sorting.FromOptions(opts),
		opts:     opts,
		log:      log,
	}
}

// ListOne enumerates dir, renders its visible entries to out and, when
// recursing, appends its subdirectories to pending. A zero dir means the
// current directory.
//
// Dot-named directories are never queued, even with show-all. Symlinked
// directories are listed but not queued, which keeps link cycles finite.
func (w *Walker) ListOne(dir models.FileEntry, pending *Queue[models.FileEntry], out sink.Sink) error {
	entries, err := w.fs.ReadDir(dir.Location())
	if err != nil {
		return &ReadError{Dir: DisplayName(dir), Err: err}
	}

	visible := make([]models.FileEntry, 0, len(entries))
	for _, e := range entries {
		if w.opts.Recursive() && e.IsDir && !e.IsDotName() {
			if e.IsSymlink {
				w.debugf("not following symlinked directory %s", models.JoinPath(dir.Name, e.Name))
			} else {
				child := e.Relocated(dir.Name)
				pending.PushBack(child)
				w.tracef("queued %s", child.Name)
			}
		}
		if e.IsDotName() && !w.opts.ShowAll() {
			continue
		}
		visible = append(visible, e)
	}

	sorting.Sort(visible, w.compare)
	w.debugf("listing %s: %d of %d entries", DisplayName(dir), len(visible), len(entries))
	return w.renderer.Render(out, visible, w.opts)
}

// DisplayName is the header text for dir.
func DisplayName(dir models.FileEntry) string {
	if dir.Name == "" {
		return "."
	}
	return dir.Name
}

func (w *Walker) tracef(format string, args ...interface{}) {
	if w.log != nil {
		w.log.LogTrace(fmt.Sprintf(format, args...))
	}
}

func (w *Walker) debugf(format string, args ...interface{}) {
	if w.log != nil {
		w.log.LogDebug(fmt.Sprintf(format, args...))
	}
}
