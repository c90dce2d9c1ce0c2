// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package wire

import (
	"strings"

	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"

	"github.com/tidwall/gjson"
)

// Range is a [min, max] pair. Either bound may be Empty.
type Range [2]Scalar

// SetRange stores a range as a two element array
func SetRange(o *Object, key string, v optional.Option[Range]) {
	if !v.Has() {
		return
	}
	r := v.Value()
	o.Set(key, []any{r[0].Wire(), r[1].Wire()})
}

// Range reads a two element range. Numeric strings become numbers. Arrays of
// any other length are left unread.
func (s Section) Range(key string, dst *optional.Option[Range]) {
	r, ok := s.lookup(key)
	if !ok || !r.IsArray() {
		return
	}
	items := r.Array()
	if len(items) != 2 {
		return
	}
	*dst = optional.Some(Range{LooseScalarOf(items[0]), LooseScalarOf(items[1])})
	s.mark(key)
}

// SetTicks stores ticks as a comma separated string
func SetTicks(o *Object, key string, v optional.Option[[]Scalar]) {
	if !v.Has() {
		return
	}
	parts := make([]string, 0, len(v.Value()))
	for _, t := range v.Value() {
		parts = append(parts, t.String())
	}
	o.Set(key, strings.Join(parts, ","))
}

// Ticks reads a comma separated tick list, an empty string gives an empty list
func (s Section) Ticks(key string, dst *optional.Option[[]Scalar]) {
	r, ok := s.lookup(key)
	if !ok {
		return
	}
	var ticks []Scalar
	switch {
	case r.Type == gjson.String:
		ticks = []Scalar{}
		if r.Str != "" {
			for _, part := range strings.Split(r.Str, ",") {
				ticks = append(ticks, ParseScalar(strings.TrimSpace(part)))
			}
		}
	case r.IsArray():
		ticks = []Scalar{}
		for _, item := range r.Array() {
			ticks = append(ticks, LooseScalarOf(item))
		}
	default:
		return
	}
	*dst = optional.Some(ticks)
	s.mark(key)
}

// Toggled is a setting that can be switched off while keeping its value
type Toggled[T any] struct {
	Enabled bool
	Value   T
}

// On returns an enabled setting
func On[T any](v T) Toggled[T] { return Toggled[T]{Enabled: true, Value: v} }

// SetToggledColor stores {"value": color, "enabled": bool}
func SetToggledColor(o *Object, key string, v optional.Option[Toggled[string]]) {
	if !v.Has() {
		return
	}
	t := v.Value()
	obj := NewObject()
	obj.Set("value", t.Value)
	obj.Set("enabled", t.Enabled)
	o.Set(key, obj)
}

// ToggledColor reads the {"value", "enabled"} form
func (s Section) ToggledColor(key string, dst *optional.Option[Toggled[string]]) {
	r, ok := s.lookup(key)
	if !ok || !r.IsObject() {
		return
	}
	*dst = optional.Some(Toggled[string]{
		Enabled: r.Get("enabled").Bool(),
		Value:   r.Get("value").String(),
	})
	s.mark(key)
}

// SetReplaceFlags stores {"enabled": bool, "style": literal}
func SetReplaceFlags(o *Object, key string, v optional.Option[structs.ReplaceFlagsType]) {
	if !v.Has() {
		return
	}
	obj := NewObject()
	if t := v.Value(); t == structs.ReplaceFlagsOff || t == "" {
		obj.Set("enabled", false)
		obj.Set("style", "")
	} else {
		obj.Set("enabled", true)
		obj.Set("style", string(t))
	}
	o.Set(key, obj)
}

// ReplaceFlags reads the object form; disabled or empty style reads as off.
// A bare string literal is accepted as well.
func (s Section) ReplaceFlags(key string, dst *optional.Option[structs.ReplaceFlagsType]) {
	r, ok := s.lookup(key)
	if !ok {
		return
	}
	switch {
	case r.IsObject():
		style := r.Get("style").String()
		if !r.Get("enabled").Bool() || style == "" {
			*dst = optional.Some(structs.ReplaceFlagsOff)
		} else {
			*dst = optional.Some(structs.FromWire[structs.ReplaceFlagsType](style))
		}
	case r.Type == gjson.String:
		*dst = optional.Some(structs.FromWire[structs.ReplaceFlagsType](r.Str))
	default:
		return
	}
	s.mark(key)
}

// Item is one entry of a model list
type Item struct {
	// ID is the object key when the list was stored keyed by id
	ID    string
	Value gjson.Result
}

// Items reads a list stored either as an array or as an object keyed by id.
// Document order is kept.
func (s Section) Items(key string) ([]Item, bool) {
	r, ok := s.lookup(key)
	if !ok {
		return nil, false
	}
	items := []Item{}
	switch {
	case r.IsArray():
		for _, v := range r.Array() {
			items = append(items, Item{Value: v})
		}
	case r.IsObject():
		r.ForEach(func(k, v gjson.Result) bool {
			items = append(items, Item{ID: k.String(), Value: v})
			return true
		})
	default:
		return nil, false
	}
	s.mark(key)
	return items, true
}

// SetList stores a list of objects as an array
func SetList(o *Object, key string, items []*Object) {
	list := make([]any, 0, len(items))
	for _, it := range items {
		list = append(list, it)
	}
	o.Set(key, list)
}
