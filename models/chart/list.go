// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"strconv"

	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/tidwall/gjson"
)

// valueObject is a record stored as one JSON object inside a chart document.
// key is the object key when the record is stored in a keyed object, empty
// for array elements.
type valueObject interface {
	toWire() *wire.Object
	fromWire(d *wire.Doc, key string)
}

type keyedObject interface {
	valueObject
	wireKey() string
}

// writeList stores records as an array in order
func writeList[T any, P interface {
	*T
	valueObject
}](o *wire.Object, key string, list optional.Option[[]T]) {
	if !list.Has() {
		return
	}
	items := list.Value()
	objs := make([]*wire.Object, 0, len(items))
	for i := range items {
		objs = append(objs, P(&items[i]).toWire())
	}
	wire.SetList(o, key, objs)
}

// writeKeyed stores records in an object keyed by wireKey
func writeKeyed[T any, P interface {
	*T
	keyedObject
}](o *wire.Object, key string, list optional.Option[[]T]) {
	if !list.Has() {
		return
	}
	obj := wire.NewObject()
	items := list.Value()
	for i := range items {
		p := P(&items[i])
		obj.Set(p.wireKey(), p.toWire())
	}
	o.Set(key, obj)
}

// readList reads records stored either as an array or as an object keyed by
// id or column. Lists holding anything but objects are left unread.
func readList[T any, P interface {
	*T
	valueObject
}](s wire.Section, key string, dst *optional.Option[[]T]) {
	allObjects := true
	s.Peek(key).ForEach(func(_, v gjson.Result) bool {
		allObjects = v.IsObject()
		return allObjects
	})
	if !allObjects {
		return
	}
	items, ok := s.Items(key)
	if !ok {
		return
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		var x T
		P(&x).fromWire(wire.DocOf(it.Value), it.ID)
		out = append(out, x)
	}
	*dst = optional.Some(out)
}

func validateList[T any](v *validation, field string, list optional.Option[[]T], fn func(v *validation, field string, item *T)) {
	items := list.Value()
	for i := range items {
		fn(v, indexField(field, i), &items[i])
	}
}

func indexField(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}
