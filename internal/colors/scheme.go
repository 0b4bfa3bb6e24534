// Package colors builds the per-invocation color table from an
// LS_COLORS-style configuration string.
//
// The string is a colon-separated list of key=value pairs, where key is one
// of the two-letter category codes below and value is an SGR parameter list:
//
//	di=32;1:fi=37:ex=35;1
//
// Each accepted value is stored as a complete escape sequence ("\x1b[" value
// "m"). Categories not mentioned keep their defaults.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/lsf/internal/textutil"
)

// EnvVar is the environment variable read by Configure's callers.
const EnvVar = "LS_COLORS"

const (
	escapeLeft  = "\x1b["
	escapeRight = "m"
)

// Category is one of the fixed color slots.
type Category int

const (
	Normal Category = iota
	Directory
	System
	Hidden
	Executable
	ReadOnly
	Reset
	numCategories
)

var categoryCodes = [numCategories]string{
	Normal:     "fi",
	Directory:  "di",
	System:     "sy",
	Hidden:     "hi",
	Executable: "ex",
	ReadOnly:   "ro",
	Reset:      "ec",
}

// Code returns the two-letter configuration key for c.
func (c Category) Code() string {
	if c < 0 || c >= numCategories {
		return ""
	}
	return categoryCodes[c]
}

func categoryForCode(code string) (Category, bool) {
	for i, k := range categoryCodes {
		if k == code {
			return Category(i), true
		}
	}
	return 0, false
}

// SyntaxError reports the first malformed key=value pair.
type SyntaxError struct {
	Key   string
	Value string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error %s=%s", EnvVar, e.Key, e.Value)
}

// Table maps every category to an escape sequence. The zero value is not
// usable; obtain one from NewTable.
type Table struct {
	seq [numCategories]string
}

// NewTable returns a table holding the built-in palette.
func NewTable() *Table {
	t := &Table{}
	t.seq[Normal] = sgr(color.FgWhite, color.Bold)
	t.seq[Directory] = sgr(color.FgGreen, color.Bold)
	t.seq[System] = sgr(color.FgRed)
	t.seq[Hidden] = sgr(color.FgBlue)
	t.seq[Executable] = sgr(color.FgMagenta, color.Bold)
	t.seq[ReadOnly] = sgr(color.FgYellow, color.Bold)
	t.seq[Reset] = sgr(color.Reset)
	return t
}

// Configure returns a table for the given raw configuration. When set is
// false the defaults are returned untouched.
//
// Parsing stops at the first bad pair; pairs before it stay applied and the
// returned table is always usable, even alongside a non-nil error.
func Configure(raw string, set bool) (*Table, error) {
	t := NewTable()
	if !set {
		return t, nil
	}
	return t, t.Apply(raw)
}

// Apply parses raw into t.
func (t *Table) Apply(raw string) error {
	for _, one := range strings.Split(textutil.Dequote(raw), ":") {
		if one == "" {
			continue
		}
		key, value, _ := strings.Cut(one, "=")
		if len(key) != 2 || value == "" {
			return &SyntaxError{Key: key, Value: value}
		}
		cat, ok := categoryForCode(key)
		if !ok {
			return &SyntaxError{Key: key, Value: value}
		}
		t.seq[cat] = escapeLeft + value + escapeRight
	}
	return nil
}

// Sequence returns the escape sequence stored for c.
func (t *Table) Sequence(c Category) string {
	if c < 0 || c >= numCategories {
		return ""
	}
	return t.seq[c]
}

// Wrap surrounds s with the sequence for c and the reset sequence.
func (t *Table) Wrap(c Category, s string) string {
	return t.seq[c] + s + t.seq[Reset]
}

func sgr(attrs ...color.Attribute) string {
	params := make([]string, len(attrs))
	for i, a := range attrs {
		params[i] = strconv.Itoa(int(a))
	}
	return escapeLeft + strings.Join(params, ";") + escapeRight
}
