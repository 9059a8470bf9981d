// ABOUTME: Text counting utilities for note content statistics
// ABOUTME: Counts are rune-based so CJK text is measured correctly

package text

import "unicode"

// CountNonWhitespace returns the number of non-whitespace runes in s.
// This is the "word count" reported for note content, where most text
// has no word boundaries to split on.
func CountNonWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CountRunes returns the total number of runes in s
func CountRunes(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
