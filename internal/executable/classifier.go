// Package executable decides whether a file name denotes something the shell
// can run.
package executable

import (
	"strings"

	"github.com/harrison/lsf/internal/textutil"
)

// EnvVar lists executable suffixes, separated by semicolons.
const EnvVar = "PATHEXT"

// DefaultSuffixes apply when no suffix list is configured.
var DefaultSuffixes = []string{".EXE", ".COM", ".BAT"}

// Classifier answers IsExecutable for one invocation.
type Classifier struct {
	suffixes   []string
	extensions map[string]struct{}
}

// New builds a classifier. pathext is a PATHEXT-style list and is only used
// when set is true. interpreters maps an extension (without the dot) to the
// command that runs such files; any extension present there is executable.
// Only the keys matter here.
func New(pathext string, set bool, interpreters map[string]string) *Classifier {
	c := &Classifier{
		suffixes:   DefaultSuffixes,
		extensions: make(map[string]struct{}, len(interpreters)),
	}
	if set {
		c.suffixes = splitSuffixes(pathext)
	}
	for ext := range interpreters {
		c.extensions[strings.ToLower(ext)] = struct{}{}
	}
	return c
}

// splitSuffixes drops empty items; an empty suffix would match every name.
func splitSuffixes(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ";") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsExecutable reports whether name ends with a configured suffix
// (case-insensitively) or carries an extension known to the interpreter
// table.
func (c *Classifier) IsExecutable(name string) bool {
	for _, s := range c.suffixes {
		if textutil.HasSuffixFold(name, s) {
			return true
		}
	}
	ext, ok := Extension(name)
	if !ok {
		return false
	}
	_, ok = c.extensions[strings.ToLower(ext)]
	return ok
}

// Extension returns the text after the last dot of the final path element.
// A dot that precedes the last separator does not count.
func Extension(name string) (string, bool) {
	i := strings.LastIndexAny(name, `/\.`)
	if i < 0 || name[i] != '.' {
		return "", false
	}
	return name[i+1:], true
}
