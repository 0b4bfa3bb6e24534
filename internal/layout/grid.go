package layout

import (
	"strings"

	"github.com/harrison/lsf/internal/models"
)

const (
	DefaultWidth = 80
	MinWidth     = 20
	MaxWidth     = 255
)

// ClampWidth returns w when it lies in [MinWidth, MaxWidth] and
// DefaultWidth otherwise.
func ClampWidth(w int) int {
	if w < MinWidth || w > MaxWidth {
		return DefaultWidth
	}
	return w
}

// ScreenWidth resolves the grid width. A positive override wins, even when
// out of range; otherwise the terminal is queried. The result is clamped.
func ScreenWidth(override int, query func() (int, bool)) int {
	w := DefaultWidth
	switch {
	case override > 0:
		w = override
	case query != nil:
		if qw, ok := query(); ok {
			w = qw
		}
	}
	return ClampWidth(w)
}

// GridShape returns how many entries fit on a line and how many lines the
// grid needs. maxWidth is the widest display width, marker included.
func GridShape(count, maxWidth, screenWidth int) (columns, lines int) {
	columns = (screenWidth - 1) / (maxWidth + 1)
	if columns <= 0 {
		return columns, count
	}
	return columns, (count + columns - 1) / columns
}

func (r *Renderer) displayWidth(e models.FileEntry) int {
	n := len(e.Name)
	if e.IsDir || r.isExecutable(e) {
		n++
	}
	return n
}

// grid fills lines top to bottom, then left to right: entry i goes to line
// i mod lines. Every cell is padded to maxWidth+1 columns and trailing
// blanks are trimmed per line.
func (r *Renderer) grid(b *strings.Builder, entries []models.FileEntry, interactive bool) {
	maxWidth := 1
	for _, e := range entries {
		if w := r.displayWidth(e); w > maxWidth {
			maxWidth = w
		}
	}
	_, lines := GridShape(len(entries), maxWidth, r.width)
	if lines == 0 {
		return
	}

	rows := make([]strings.Builder, lines)
	for i, e := range entries {
		row := &rows[i%lines]
		used := r.writeName(row, e, r.isExecutable(e), interactive)
		for left := maxWidth + 1 - used; left > 0; left-- {
			row.WriteByte(' ')
		}
	}
	for i := range rows {
		b.WriteString(strings.TrimRight(rows[i].String(), " \t"))
		b.WriteByte('\n')
	}
}
