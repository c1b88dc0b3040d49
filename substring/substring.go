// SPDX-License-Identifier: MIT

// Package substring reports whether one of two strings contains the other.
package substring

import "strings"

// Find searches for the shorter of a and b inside the longer one and returns
// the byte offset of the first occurrence.
//
// An empty input is treated as found at offset 0, as are two equal strings.
// When the lengths are equal but the strings differ, b is searched in a,
// which can only fail. Not found yields (-1, false).
func Find(a, b string) (pos int, ok bool) {
	if a == "" || b == "" || a == b {
		return 0, true
	}
	shorter, longer := b, a
	if len(a) < len(b) {
		shorter, longer = a, b
	}
	if pos = strings.Index(longer, shorter); pos >= 0 {
		return pos, true
	}

	return -1, false
}

// Contains reports whether either string contains the other.
func Contains(a, b string) bool {
	_, ok := Find(a, b)

	return ok
}
