// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package wire converts between chart models and the JSON documents the
// charting API exchanges.
//
// Documents are written as insertion ordered objects so that emitted keys keep
// a stable order, and read through a Doc that records which keys a model
// consumed. Everything the model did not consume is kept as Extras and merged
// back in on the next write.
package wire

import (
	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion ordered JSON object
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// Marshal encodes an Object, nil encodes as {}
func Marshal(o *Object) ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(o)
}

// Sub returns the object stored at key, creating it when absent. A non-object
// value at key is replaced.
func Sub(o *Object, key string) *Object {
	if v, ok := o.Get(key); ok {
		if child, ok := v.(*Object); ok {
			return child
		}
	}
	child := NewObject()
	o.Set(key, child)
	return child
}

// SetObject stores child at key unless it is empty
func SetObject(o *Object, key string, child *Object) {
	if child == nil || child.Len() == 0 {
		return
	}
	o.Set(key, child)
}

// Set stores the value of v at key when v is set
func Set[T any](o *Object, key string, v optional.Option[T]) {
	if v.Has() {
		o.Set(key, v.Value())
	}
}

// SetEnum stores the wire literal of v at key when v is set
func SetEnum[E structs.Enum](o *Object, key string, v optional.Option[E]) {
	if v.Has() {
		o.Set(key, v.Value().Wire())
	}
}

// SetStrings stores a string list at key when set, an empty list is kept
func SetStrings(o *Object, key string, v optional.Option[[]string]) {
	if v.Has() {
		list := v.Value()
		if list == nil {
			list = []string{}
		}
		o.Set(key, list)
	}
}

// Keys lists the keys of o in order
func Keys(o *Object) []string {
	keys := make([]string, 0, o.Len())
	for pair := o.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
