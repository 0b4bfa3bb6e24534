// Package lister runs one listing command: it resolves path arguments,
// renders explicit files as one group and then drains the breadth-first
// queue of directories until it is empty or the interrupt flag is raised.
package lister

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/lsf/internal/fsys"
	"github.com/harrison/lsf/internal/interrupt"
	"github.com/harrison/lsf/internal/models"
	"github.com/harrison/lsf/internal/sink"
	"github.com/harrison/lsf/internal/sorting"
	"github.com/harrison/lsf/internal/textutil"
	"github.com/harrison/lsf/internal/walker"
)

// InterruptNotice is printed when the traversal stops on the interrupt flag.
const InterruptNotice = "^C"

// ErrInterrupted is returned by Run when the interrupt flag stopped it.
var ErrInterrupted = errors.New("listing interrupted")

// NotFoundError reports a path argument that matched nothing.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Logger receives diagnostics. Command errors do not go through it.
type Logger interface {
	walker.Logger
	LogInfo(message string)
}

// Lister holds everything one invocation needs. Construct it per command
// run; it is not safe for concurrent use.
type Lister struct {
	FS        fsys.Supplier
	Renderer  walker.Renderer
	Options   models.Options
	Out       sink.Sink
	Err       sink.Sink
	Interrupt *interrupt.Flag
	Log       Logger
}

// Run lists args (or the current directory when there are none).
//
// A NotFoundError aborts before anything is written to Out. Directories
// that cannot be read are reported and skipped. User-facing errors are
// written to Err as single lines and also returned; the interrupt flag is
// cleared on every return path.
func (l *Lister) Run(args []string) error {
	if l.Interrupt != nil {
		defer l.Interrupt.Clear()
	}

	files, dirs, err := l.resolve(args)
	if err != nil {
		l.report(err.Error())
		return err
	}

	compare := sorting.FromOptions(l.Options)
	w := walker.New(l.FS, l.Renderer, l.Options, l.Log)
	pending := walker.NewQueue[models.FileEntry]()
	for _, d := range dirs {
		pending.PushBack(d)
	}
	if len(args) == 0 {
		pending.PushBack(models.FileEntry{IsDir: true})
	}

	if len(files) > 0 {
		sorting.Sort(files, compare)
		if err := l.Renderer.Render(l.Out, files, l.Options); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if pending.Len() > 0 {
			if err := l.blankLine(); err != nil {
				return err
			}
		}
	}

	listed := 0
	for pending.Len() > 0 {
		if l.Interrupt.IsSet() {
			l.debugf("interrupted with %d directories pending", pending.Len())
			l.report(InterruptNotice)
			return ErrInterrupted
		}

		dir, _ := pending.PopFront()
		listed++
		if listed+pending.Len() >= 2 || len(files) > 0 {
			if _, err := fmt.Fprintf(l.Out, "%s:\n", walker.DisplayName(dir)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if err := w.ListOne(dir, pending, l.Out); err != nil {
			var readErr *walker.ReadError
			if !errors.As(err, &readErr) {
				return fmt.Errorf("write output: %w", err)
			}
			l.report(readErr.Error())
		}

		if pending.Len() > 0 {
			if err := l.blankLine(); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolve splits args into explicit files and directories. Wildcards are
// expanded; a pattern without matches is looked up literally.
func (l *Lister) resolve(args []string) (files, dirs []models.FileEntry, err error) {
	for _, arg := range args {
		path := textutil.Dequote(arg)

		var matches []string
		if textutil.HasWildcard(path) {
			var globErr error
			matches, globErr = l.FS.Glob(path)
			if globErr != nil {
				l.infof("bad pattern %q: %v", path, globErr)
			}
		}

		if len(matches) == 0 {
			e, statErr := l.FS.Stat(path)
			if statErr != nil {
				return nil, nil, &NotFoundError{Path: path, Err: statErr}
			}
			files, dirs = classify(files, dirs, e)
			continue
		}

		for _, m := range matches {
			e, statErr := l.FS.Stat(m)
			if statErr != nil {
				l.infof("skipping match %s: %v", m, statErr)
				continue
			}
			files, dirs = classify(files, dirs, e)
		}
	}
	return files, dirs, nil
}

func classify(files, dirs []models.FileEntry, e models.FileEntry) ([]models.FileEntry, []models.FileEntry) {
	if e.IsDir {
		return files, append(dirs, e)
	}
	return append(files, e), dirs
}

func (l *Lister) blankLine() error {
	if _, err := io.WriteString(l.Out, "\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (l *Lister) report(message string) {
	Report(l.Err, message)
}

// Report writes one error line to errOut, red when it is a terminal.
func Report(errOut sink.Sink, message string) {
	if errOut == nil {
		return
	}
	if errOut.IsTerminal() {
		c := color.New(color.FgRed)
		c.EnableColor()
		message = c.Sprint(message)
	}
	fmt.Fprintln(errOut, message)
}

func (l *Lister) infof(format string, args ...interface{}) {
	if l.Log != nil {
		l.Log.LogInfo(fmt.Sprintf(format, args...))
	}
}

func (l *Lister) debugf(format string, args ...interface{}) {
	if l.Log != nil {
		l.Log.LogDebug(fmt.Sprintf(format, args...))
	}
}
