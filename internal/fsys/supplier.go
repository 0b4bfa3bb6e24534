// Package fsys turns filesystem items into models.FileEntry records.
package fsys

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/lsf/internal/models"
	"golang.org/x/text/unicode/norm"
)

// Supplier enumerates and stats filesystem entries.
type Supplier interface {
	// ReadDir returns every entry of dir, including "." and "..". An empty
	// dir means the current directory. Entry names are bare names; Path holds
	// the joined path.
	ReadDir(dir string) ([]models.FileEntry, error)
	// Stat describes path itself; the entry is named after path.
	Stat(path string) (models.FileEntry, error)
	// Glob expands a wildcard pattern.
	Glob(pattern string) ([]string, error)
}

// OS is the Supplier backed by the operating system.
type OS struct{}

// ReadDir implements Supplier.
func (OS) ReadDir(dir string) ([]models.FileEntry, error) {
	target := dir
	if target == "" {
		target = "."
	}

	dirEntries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", target, err)
	}

	entries := make([]models.FileEntry, 0, len(dirEntries)+2)
	for _, special := range []string{".", ".."} {
		info, err := os.Stat(filepath.Join(target, special))
		if err != nil {
			continue
		}
		entries = append(entries, newEntry(special, models.JoinPath(dir, special), info, false))
	}

	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := models.JoinPath(dir, rawName)
		isSymlink := info.Mode()&os.ModeSymlink != 0
		if isSymlink {
			// Report the target's type and size; a dangling link stays a link.
			if targetInfo, err := os.Stat(filepath.Join(target, rawName)); err == nil {
				info = targetInfo
			}
		}

		entries = append(entries, newEntry(norm.NFC.String(rawName), fullPath, info, isSymlink))
	}
	return entries, nil
}

// Stat implements Supplier.
func (OS) Stat(path string) (models.FileEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.FileEntry{}, err
	}
	linfo, err := os.Lstat(path)
	isSymlink := err == nil && linfo.Mode()&os.ModeSymlink != 0
	return newEntry(path, path, info, isSymlink), nil
}

// Glob implements Supplier.
func (OS) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func newEntry(name, path string, info os.FileInfo, isSymlink bool) models.FileEntry {
	attrs := attributesOf(name, info)
	size := info.Size()
	if size < 0 {
		size = 0
	}
	return models.FileEntry{
		Name:       name,
		Path:       path,
		IsDir:      info.IsDir(),
		IsSymlink:  isSymlink,
		IsHidden:   attrs.hidden,
		IsSystem:   attrs.system,
		IsReadOnly: attrs.readOnly,
		Size:       uint64(size),
		Stamp:      models.TimestampOf(info.ModTime()),
	}
}

type attributes struct {
	hidden   bool
	system   bool
	readOnly bool
}
