// Package layout renders sorted entries as a single column, a multi-column
// grid, or a long listing.
package layout

import (
	"io"
	"strings"

	"github.com/harrison/lsf/internal/colors"
	"github.com/harrison/lsf/internal/models"
	"github.com/harrison/lsf/internal/sink"
)

// Classifier reports whether a name is executable.
type Classifier interface {
	IsExecutable(name string) bool
}

// Renderer writes one entry list at a time. It holds no per-list state, so
// rendering the same list twice produces the same bytes.
type Renderer struct {
	colors *colors.Table
	exec   Classifier
	width  int
}

// NewRenderer returns a renderer. screenWidth is the already resolved width
// used by the grid layout (see ScreenWidth).
func NewRenderer(table *colors.Table, exec Classifier, screenWidth int) *Renderer {
	if table == nil {
		table = colors.NewTable()
	}
	return &Renderer{
		colors: table,
		exec:   exec,
		width:  ClampWidth(screenWidth),
	}
}

// Render writes entries to out in the layout selected by opts. One-per-line
// wins over long format; the grid is the default.
func (r *Renderer) Render(out sink.Sink, entries []models.FileEntry, opts models.Options) error {
	var b strings.Builder
	switch {
	case opts.OnePerLine():
		r.onePerLine(&b, entries)
	case opts.Long():
		r.long(&b, entries, out.IsTerminal())
	default:
		r.grid(&b, entries, out.IsTerminal())
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func (r *Renderer) onePerLine(b *strings.Builder, entries []models.FileEntry) {
	for _, e := range entries {
		b.WriteString(e.Name)
		b.WriteByte('\n')
	}
}

func (r *Renderer) isExecutable(e models.FileEntry) bool {
	return r.exec != nil && r.exec.IsExecutable(e.Name)
}

// Category picks the color slot for e. Earlier checks win.
func Category(e models.FileEntry, executable bool) colors.Category {
	switch {
	case e.IsDir:
		return colors.Directory
	case e.IsHidden:
		return colors.Hidden
	case e.IsSystem:
		return colors.System
	case e.IsReadOnly:
		return colors.ReadOnly
	case executable:
		return colors.Executable
	default:
		return colors.Normal
	}
}

// marker returns the trailing type indicator: '/' for directories, '*' for
// executables, nothing otherwise.
func marker(e models.FileEntry, executable bool) string {
	switch {
	case e.IsDir:
		return "/"
	case executable:
		return "*"
	}
	return ""
}

// writeName writes the possibly colored name followed by its marker and
// returns the number of visible columns used.
func (r *Renderer) writeName(b *strings.Builder, e models.FileEntry, executable, interactive bool) int {
	if interactive {
		b.WriteString(r.colors.Wrap(Category(e, executable), e.Name))
	} else {
		b.WriteString(e.Name)
	}
	m := marker(e, executable)
	b.WriteString(m)
	return len(e.Name) + len(m)
}
