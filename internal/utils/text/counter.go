// Package text holds small string helpers shared by validation code.
package text

import "unicode/utf8"

// CountRunes returns the number of Unicode code points in s, which is what
// users perceive as the length of a title or name for most scripts.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most n runes without splitting a code point.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
