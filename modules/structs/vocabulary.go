// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package structs holds the closed vocabularies used by chart configurations.
//
// Every vocabulary type converts to its wire literal with Wire(). The reverse
// mapping is partial: FromWire keeps unrecognized literals as raw values of the
// type instead of failing, and IsKnown tells the two apart.
package structs

import (
	"fmt"
	"strconv"
)

type vocabulary[T comparable] struct {
	members []T
	index   map[T]struct{}
}

func newVocabulary[T comparable](members ...T) *vocabulary[T] {
	v := &vocabulary[T]{members: members, index: make(map[T]struct{}, len(members))}
	for _, m := range members {
		v.index[m] = struct{}{}
	}
	return v
}

func (v *vocabulary[T]) has(m T) bool {
	_, ok := v.index[m]
	return ok
}

func (v *vocabulary[T]) values() []T {
	return append([]T(nil), v.members...)
}

// Enum is implemented by every vocabulary type
type Enum interface {
	comparable
	IsKnown() bool
	Wire() any
}

// FromWire converts a decoded wire value (string, float64, bool) into a string
// backed vocabulary type. Unknown literals are returned unchanged.
func FromWire[T ~string](v any) T {
	return T(wireString(v))
}

func wireString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
