// Package textutil holds the small string helpers shared by argument and
// environment parsing.
package textutil

import "strings"

// Dequote removes double-quote characters, which the shell uses only for
// grouping. "C:\Program Files"\x becomes C:\Program Files\x.
func Dequote(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, `"`, "")
}

// HasWildcard reports whether s contains glob syntax.
func HasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// HasSuffixFold is strings.HasSuffix with ASCII/Unicode case folding.
func HasSuffixFold(s, suffix string) bool {
	if len(suffix) > len(s) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
