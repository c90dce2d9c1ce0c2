// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package wire

import (
	"strconv"

	"github.com/chartkit/dwclient/modules/optional"

	"github.com/tidwall/gjson"
)

// Scalar is a JSON number or string used for positions, range bounds and
// ticks. The zero value is the empty string, which the API reads as "unset".
type Scalar struct {
	num   float64
	str   string
	isNum bool
}

// Num returns a numeric Scalar
func Num(f float64) Scalar { return Scalar{num: f, isNum: true} }

// Str returns a string Scalar
func Str(s string) Scalar { return Scalar{str: s} }

// Empty is the "unset" sentinel the API uses inside ranges
var Empty = Scalar{}

func (s Scalar) IsNumber() bool { return s.isNum }
func (s Scalar) IsEmpty() bool  { return !s.isNum && s.str == "" }

// Float returns the number and whether the scalar holds one
func (s Scalar) Float() (float64, bool) {
	if s.isNum {
		return s.num, true
	}
	return 0, false
}

func (s Scalar) String() string {
	if s.isNum {
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	}
	return s.str
}

// Wire returns a float64 or string for encoding
func (s Scalar) Wire() any {
	if s.isNum {
		return s.num
	}
	return s.str
}

// ScalarOf converts a decoded JSON value keeping its JSON type. Anything
// that is neither number nor string becomes Empty.
func ScalarOf(r gjson.Result) Scalar {
	switch r.Type {
	case gjson.Number:
		return Num(r.Num)
	case gjson.String:
		return Str(r.Str)
	}
	return Empty
}

// LooseScalarOf is ScalarOf with numeric strings read as numbers
func LooseScalarOf(r gjson.Result) Scalar {
	if r.Type == gjson.String {
		return ParseScalar(r.Str)
	}
	return ScalarOf(r)
}

// ParseScalar reads a number if s is numeric and keeps the string otherwise
func ParseScalar(s string) Scalar {
	if s == "" {
		return Empty
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Num(f)
	}
	return Str(s)
}

// SetScalar stores a scalar at key when set
func SetScalar(o *Object, key string, v optional.Option[Scalar]) {
	if s, ok := v.Get(); ok {
		o.Set(key, s.Wire())
	}
}

// SetScalars stores scalars as an array when set
func SetScalars(o *Object, key string, v optional.Option[[]Scalar]) {
	if !v.Has() {
		return
	}
	list := make([]any, 0, len(v.Value()))
	for _, s := range v.Value() {
		list = append(list, s.Wire())
	}
	o.Set(key, list)
}
