package layout

import (
	"strings"

	"github.com/harrison/lsf/internal/colors"
	"github.com/harrison/lsf/internal/models"
)

const sizeFieldWidth = 8

// long writes one line per entry:
//
//	drwx     4096 2024-01-02 15:04 docs/
func (r *Renderer) long(b *strings.Builder, entries []models.FileEntry, interactive bool) {
	if interactive {
		b.WriteString(r.colors.Sequence(colors.Reset))
	}
	for _, e := range entries {
		executable := r.isExecutable(e)
		b.WriteString(PermissionString(e, executable))
		b.WriteByte(' ')
		b.WriteString(padLeft(FormatSize(e.Size), sizeFieldWidth))
		b.WriteByte(' ')
		b.WriteString(e.Stamp.String())
		b.WriteByte(' ')
		r.writeName(b, e, executable, interactive)
		b.WriteByte('\n')
	}
}

// PermissionString returns the four-character mode column.
func PermissionString(e models.FileEntry, executable bool) string {
	mode := []byte("-r--")
	if e.IsDir {
		mode[0] = 'd'
	}
	if !e.IsReadOnly {
		mode[2] = 'w'
	}
	if e.IsDir || executable {
		mode[3] = 'x'
	}
	return string(mode)
}

// FormatSize converts n to decimal one digit at a time.
func FormatSize(n uint64) string {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = "0123456789"[n%10]
		n /= 10
		if n == 0 {
			break
		}
	}
	return string(buf[i:])
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
