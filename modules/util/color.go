// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"strconv"
	"strings"
)

// HexToRGB parses "#rgb", "#rrggbb" or "#rrggbbaa" (alpha ignored).
func HexToRGB(s string) (r, g, b float64, ok bool) {
	hex, found := strings.CutPrefix(s, "#")
	if !found {
		return 0, 0, 0, false
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		hex = hex[:6]
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff), true
}

// IsValidColor reports whether s is usable as a color token: a hex color, or a
// non-empty named/palette color that does not start with "#".
func IsValidColor(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		_, _, _, ok := HexToRGB(s)
		return ok
	}
	return !strings.ContainsAny(s, " \t\n")
}
