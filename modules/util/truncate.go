// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import "unicode/utf8"

const (
	utf8Ellipsis  = "…"
	asciiEllipsis = "..."
)

// EllipsisString returns s cut to at most n runes, the last one being an
// ellipsis when s was cut. Invalid UTF-8 is cut at byte n.
func EllipsisString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if !utf8.ValidString(s) {
		if len(s) <= n {
			return s
		}
		if n <= len(asciiEllipsis) {
			return s[:n]
		}
		return s[:n-len(asciiEllipsis)] + asciiEllipsis
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	end, runes := 0, 0
	for runes < n-1 {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
		runes++
	}
	return s[:end] + utf8Ellipsis
}
