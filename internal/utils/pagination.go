// Package utils holds small generic helpers with no domain knowledge,
// mostly around parsing and bounding list query parameters.
package utils

import "strconv"

// AtoiDefault parses s as an int and returns def when s is empty or not
// a valid integer. Query parameters like page and page_size go through
// this so a malformed value degrades to the default instead of a 400.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampInt bounds n to the inclusive [lo, hi] range.
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
