// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package wire

import (
	"errors"
	"strings"

	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"

	"github.com/tidwall/gjson"
)

// ErrNotObject is returned when a document is not a JSON object
var ErrNotObject = errors.New("wire: document is not a JSON object")

// Doc is a parsed JSON object that remembers which keys have been read
type Doc struct {
	root     gjson.Result
	consumed map[string]struct{}
	entered  map[string]struct{}
}

// Parse parses data, which must hold a JSON object
func Parse(data []byte) (*Doc, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("wire: invalid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, ErrNotObject
	}
	return DocOf(r), nil
}

// DocOf wraps an already parsed object
func DocOf(r gjson.Result) *Doc {
	return &Doc{
		root:     r,
		consumed: map[string]struct{}{},
		entered:  map[string]struct{}{"": {}},
	}
}

// Root returns the top level section
func (d *Doc) Root() Section {
	return Section{doc: d, res: d.root}
}

// Raw returns the source text of the document
func (d *Doc) Raw() string {
	return d.root.Raw
}

// Extras lists every key that was neither read nor entered, in document order
func (d *Doc) Extras() Extras {
	var out Extras
	d.collect(d.root, nil, &out)
	return out
}

func (d *Doc) collect(r gjson.Result, path []string, out *Extras) {
	r.ForEach(func(k, v gjson.Result) bool {
		p := append(path[:len(path):len(path)], k.String())
		key := pathKey(p)
		if _, ok := d.consumed[key]; ok {
			return true
		}
		if _, ok := d.entered[key]; ok && v.IsObject() {
			d.collect(v, p, out)
			return true
		}
		*out = append(*out, Extra{
			Path: append([]string(nil), path...),
			Key:  k.String(),
			Raw:  json.RawMessage(v.Raw),
		})
		return true
	})
}

func pathKey(p []string) string {
	return strings.Join(p, "\x00")
}

// Section is an object inside a Doc. Reading a key through a section marks it
// consumed.
type Section struct {
	doc  *Doc
	path []string
	res  gjson.Result
}

// Exists reports whether the section is backed by a JSON object
func (s Section) Exists() bool {
	return s.doc != nil && s.res.IsObject()
}

// Path returns the keys leading to the section
func (s Section) Path() []string {
	return append([]string(nil), s.path...)
}

func (s Section) lookup(key string) (gjson.Result, bool) {
	if !s.Exists() {
		return gjson.Result{}, false
	}
	r := s.res.Get(gjson.Escape(key))
	return r, r.Exists()
}

func (s Section) mark(key string) {
	s.doc.consumed[pathKey(append(s.Path(), key))] = struct{}{}
}

// Has reports whether key is present without consuming it
func (s Section) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// Peek returns the value at key without consuming it
func (s Section) Peek(key string) gjson.Result {
	r, _ := s.lookup(key)
	return r
}

// Take returns the value at key and consumes it
func (s Section) Take(key string) (gjson.Result, bool) {
	r, ok := s.lookup(key)
	if ok {
		s.mark(key)
	}
	return r, ok
}

// Consume marks key as read
func (s Section) Consume(keys ...string) {
	for _, key := range keys {
		if s.Has(key) {
			s.mark(key)
		}
	}
}

// Object enters the object at key. Keys of the child that are not read are
// reported as extras at the child's path. A missing or non-object value yields
// a section for which Exists is false.
func (s Section) Object(key string) Section {
	r, ok := s.lookup(key)
	if !ok || !r.IsObject() {
		return Section{doc: s.doc, path: append(s.Path(), key)}
	}
	child := Section{doc: s.doc, path: append(s.Path(), key), res: r}
	s.doc.entered[pathKey(child.path)] = struct{}{}
	return child
}

// ForEach walks the keys of the section in document order without consuming them
func (s Section) ForEach(fn func(key string, value gjson.Result) bool) {
	if !s.Exists() {
		return
	}
	s.res.ForEach(func(k, v gjson.Result) bool {
		return fn(k.String(), v)
	})
}

// Raw returns the source text of the section
func (s Section) Raw() string {
	return s.res.Raw
}

// String reads a string at key. Values of other JSON types are left unread.
func (s Section) String(key string, dst *optional.Option[string]) {
	if r, ok := s.lookup(key); ok && r.Type == gjson.String {
		*dst = optional.Some(r.Str)
		s.mark(key)
	}
}

// Bool reads a boolean, accepting "true" and "false" strings
func (s Section) Bool(key string, dst *optional.Option[bool]) {
	r, ok := s.lookup(key)
	if !ok {
		return
	}
	switch {
	case r.IsBool():
		*dst = optional.Some(r.Bool())
	case r.Type == gjson.String && (r.Str == "true" || r.Str == "false"):
		*dst = optional.Some(r.Str == "true")
	default:
		return
	}
	s.mark(key)
}

// Float reads a number, accepting numeric strings
func (s Section) Float(key string, dst *optional.Option[float64]) {
	r, ok := s.lookup(key)
	if !ok {
		return
	}
	sc := LooseScalarOf(r)
	f, isNum := sc.Float()
	if !isNum {
		return
	}
	*dst = optional.Some(f)
	s.mark(key)
}

// Int reads an integral number, accepting numeric strings
func (s Section) Int(key string, dst *optional.Option[int]) {
	r, ok := s.lookup(key)
	if !ok {
		return
	}
	f, isNum := LooseScalarOf(r).Float()
	if !isNum || f != float64(int(f)) {
		return
	}
	*dst = optional.Some(int(f))
	s.mark(key)
}

// Scalar reads a number or string keeping its JSON type
func (s Section) Scalar(key string, dst *optional.Option[Scalar]) {
	r, ok := s.lookup(key)
	if !ok || (r.Type != gjson.Number && r.Type != gjson.String) {
		return
	}
	*dst = optional.Some(ScalarOf(r))
	s.mark(key)
}

// Strings reads a list of strings. Numbers in the list are converted.
func (s Section) Strings(key string, dst *optional.Option[[]string]) {
	r, ok := s.lookup(key)
	if !ok || !r.IsArray() {
		return
	}
	list := []string{}
	for _, item := range r.Array() {
		if item.Type != gjson.String && item.Type != gjson.Number {
			return
		}
		list = append(list, item.String())
	}
	*dst = optional.Some(list)
	s.mark(key)
}

// Decode unmarshals the value at key into T
func Decode[T any](s Section, key string, dst *optional.Option[T]) {
	r, ok := s.lookup(key)
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal([]byte(r.Raw), &v); err != nil {
		return
	}
	*dst = optional.Some(v)
	s.mark(key)
}

// Enum reads a vocabulary literal through conv. Literals outside the
// vocabulary are kept as raw values of the type.
func Enum[E structs.Enum](s Section, key string, dst *optional.Option[E], conv func(any) E) {
	r, ok := s.lookup(key)
	if !ok || r.Type == gjson.Null || r.IsObject() || r.IsArray() {
		return
	}
	*dst = optional.Some(conv(r.Value()))
	s.mark(key)
}

// StringEnum is Enum for string backed vocabularies
func StringEnum[E interface {
	~string
	structs.Enum
}](s Section, key string, dst *optional.Option[E]) {
	Enum(s, key, dst, structs.FromWire[E])
}
