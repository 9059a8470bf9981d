// ABOUTME: Utility functions for parsing counters from upstream strings
// ABOUTME: Handles plain integers plus the shorthand forms the comment API uses

package parse

import (
	"strconv"
	"strings"
)

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// CountOrZero parses a like/collect counter as delivered by the API.
// Counters arrive as plain integers ("42"), western shorthand ("1.2k"),
// or CJK shorthand ("3.5万" = 35000). Anything unparseable counts as 0;
// results are never negative.
func CountOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "万"):
		multiplier = 10000
		s = strings.TrimSuffix(s, "万")
	case strings.HasSuffix(s, "w"), strings.HasSuffix(s, "W"):
		multiplier = 10000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		multiplier = 1000
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v * multiplier)
}
