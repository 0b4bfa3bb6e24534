package fsys

import (
	"os"
	"path"
	"sort"

	"github.com/harrison/lsf/internal/models"
)

// Mem is an in-memory Supplier. Entries are registered under slash-separated
// paths; the current directory is the root of that tree.
type Mem struct {
	entries map[string]models.FileEntry
	// OnReadDir, when set, runs before each ReadDir call.
	OnReadDir func(dir string)
	// Reads records every directory passed to ReadDir, in call order.
	Reads []string
}

// NewMem returns an empty tree.
func NewMem() *Mem {
	return &Mem{entries: make(map[string]models.FileEntry)}
}

// Add registers e under p, creating parent directories as needed. e.Name is
// replaced by the last element of p.
func (m *Mem) Add(p string, e models.FileEntry) *Mem {
	p = path.Clean(p)
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if _, ok := m.entries[dir]; !ok {
			m.entries[dir] = models.FileEntry{Name: path.Base(dir), IsDir: true}
		}
	}
	e.Name = path.Base(p)
	m.entries[p] = e
	return m
}

// AddDir registers a directory.
func (m *Mem) AddDir(p string) *Mem {
	return m.Add(p, models.FileEntry{IsDir: true})
}

// AddFile registers a regular file of the given size.
func (m *Mem) AddFile(p string, size uint64) *Mem {
	return m.Add(p, models.FileEntry{Size: size})
}

// ReadDir implements Supplier. Children come back in path order.
func (m *Mem) ReadDir(dir string) ([]models.FileEntry, error) {
	m.Reads = append(m.Reads, dir)
	if m.OnReadDir != nil {
		m.OnReadDir(dir)
	}

	key := path.Clean(dir)
	if dir == "" {
		key = "."
	} else if e, ok := m.entries[key]; !ok || !e.IsDir {
		return nil, &os.PathError{Op: "open", Path: dir, Err: os.ErrNotExist}
	}

	var out []models.FileEntry
	for p, e := range m.entries {
		if path.Dir(p) != key {
			continue
		}
		e.Path = models.JoinPath(dir, e.Name)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Stat implements Supplier.
func (m *Mem) Stat(p string) (models.FileEntry, error) {
	e, ok := m.entries[path.Clean(p)]
	if !ok {
		return models.FileEntry{}, &os.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
	}
	e.Name = p
	e.Path = p
	return e, nil
}

// Glob implements Supplier with path.Match semantics.
func (m *Mem) Glob(pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, err
	}
	var matches []string
	for p := range m.entries {
		if ok, _ := path.Match(pattern, p); ok {
			matches = append(matches, p)
		}
	}
	sort.Strings(matches)
	return matches, nil
}
