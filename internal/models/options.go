package models

// Flag is one bit of the listing option set.
type Flag uint8

const (
	FlagLong Flag = 1 << iota
	FlagAll
	FlagOnePerLine
	FlagRecursive
)

// SortKey selects the comparator variant.
type SortKey int

const (
	SortByName SortKey = iota
	SortByTime
	SortBySize
)

// String returns the key name used in logs.
func (k SortKey) String() string {
	switch k {
	case SortByTime:
		return "time"
	case SortBySize:
		return "size"
	default:
		return "name"
	}
}

// Options is the immutable result of flag parsing for one invocation.
type Options struct {
	Flags   Flag
	SortKey SortKey
	Reverse bool
}

// Has reports whether every bit of f is set.
func (o Options) Has(f Flag) bool {
	return o.Flags&f == f
}

func (o Options) Long() bool       { return o.Has(FlagLong) }
func (o Options) ShowAll() bool    { return o.Has(FlagAll) }
func (o Options) OnePerLine() bool { return o.Has(FlagOnePerLine) }
func (o Options) Recursive() bool  { return o.Has(FlagRecursive) }
