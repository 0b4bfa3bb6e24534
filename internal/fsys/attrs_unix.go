//go:build !windows

package fsys

import (
	"os"
	"path/filepath"
	"strings"
)

// attributesOf derives attributes on Unix-like systems: dot names are
// hidden, a missing owner write bit means read-only, nothing is "system".
func attributesOf(name string, info os.FileInfo) attributes {
	base := filepath.Base(name)
	return attributes{
		hidden:   strings.HasPrefix(base, ".") && base != "." && base != "..",
		readOnly: info.Mode().Perm()&0o200 == 0,
	}
}
