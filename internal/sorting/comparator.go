// Package sorting orders file entries for display.
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/harrison/lsf/internal/models"
)

// Comparator is a three-way comparison over entries. A nil entry sorts after
// any present entry.
type Comparator func(a, b *models.FileEntry) int

// ByName compares names lexicographically (byte order).
func ByName(a, b *models.FileEntry) int {
	return strings.Compare(a.Name, b.Name)
}

// ByTime compares modification stamps, oldest first.
func ByTime(a, b *models.FileEntry) int {
	return a.Stamp.Compare(b.Stamp)
}

// BySize compares sizes, largest first. The comparison never subtracts, so
// sizes near the top of the uint64 range order correctly.
func BySize(a, b *models.FileEntry) int {
	return cmp.Compare(b.Size, a.Size)
}

// Reverse negates c. Ties stay ties.
func Reverse(c Comparator) Comparator {
	return func(a, b *models.FileEntry) int {
		return -c(a, b)
	}
}

// New returns the comparator selected by key, reversed if asked.
func New(key models.SortKey, reverse bool) Comparator {
	var c Comparator
	switch key {
	case models.SortByTime:
		c = ByTime
	case models.SortBySize:
		c = BySize
	default:
		c = ByName
	}
	if reverse {
		c = Reverse(c)
	}
	return nilsLast(c)
}

// FromOptions is New(opts.SortKey, opts.Reverse).
func FromOptions(opts models.Options) Comparator {
	return New(opts.SortKey, opts.Reverse)
}

func nilsLast(c Comparator) Comparator {
	return func(a, b *models.FileEntry) int {
		switch {
		case a == nil && b == nil:
			return 0
		case b == nil:
			return -1
		case a == nil:
			return +1
		}
		return c(a, b)
	}
}

// Sort orders entries in place. Equal keys keep their enumeration order.
func Sort(entries []models.FileEntry, c Comparator) {
	slices.SortStableFunc(entries, func(a, b models.FileEntry) int {
		return c(&a, &b)
	})
}
