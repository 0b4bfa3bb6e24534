//go:build windows

package fsys

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// attributesOf reads the Win32 attribute bits; dot names count as hidden too.
func attributesOf(name string, info os.FileInfo) attributes {
	base := filepath.Base(name)
	a := attributes{
		hidden: strings.HasPrefix(base, ".") && base != "." && base != "..",
	}
	if sys, ok := info.Sys().(*syscall.Win32FileAttributeData); ok && sys != nil {
		attrs := sys.FileAttributes
		a.hidden = a.hidden || attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0
		a.system = attrs&syscall.FILE_ATTRIBUTE_SYSTEM != 0
		a.readOnly = attrs&syscall.FILE_ATTRIBUTE_READONLY != 0
	} else {
		a.readOnly = info.Mode().Perm()&0o200 == 0
	}
	return a
}
