// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package wire

import (
	"slices"
	"strings"

	"github.com/chartkit/dwclient/modules/json"
)

// Extra is a key the model does not know, kept verbatim
type Extra struct {
	Path []string
	Key  string
	Raw  json.RawMessage
}

// Extras holds unknown keys in document order
type Extras []Extra

// Apply merges the extras into o. Keys already present are left alone, and
// an extra whose path runs into a non-object value is dropped.
func (e Extras) Apply(o *Object) {
	for _, x := range e {
		target := o
		for _, k := range x.Path {
			v, ok := target.Get(k)
			if !ok {
				child := NewObject()
				target.Set(k, child)
				target = child
				continue
			}
			child, isObj := v.(*Object)
			if !isObj {
				target = nil
				break
			}
			target = child
		}
		if target == nil {
			continue
		}
		if _, exists := target.Get(x.Key); exists {
			continue
		}
		target.Set(x.Key, x.Raw)
	}
}

// Get returns the raw value stored for the key at path
func (e Extras) Get(key string, path ...string) (json.RawMessage, bool) {
	for _, x := range e {
		if x.Key == key && slices.Equal(x.Path, path) {
			return x.Raw, true
		}
	}
	return nil, false
}

// Equal compares extras ignoring whitespace differences in raw values
func (e Extras) Equal(other Extras) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		a, b := e[i], other[i]
		if a.Key != b.Key || !slices.Equal(a.Path, b.Path) {
			return false
		}
		ca, errA := json.Compact(a.Raw)
		cb, errB := json.Compact(b.Raw)
		if errA != nil || errB != nil || string(ca) != string(cb) {
			return false
		}
	}
	return true
}

func (x Extra) String() string {
	return strings.Join(append(slices.Clone(x.Path), x.Key), ".") + "=" + string(x.Raw)
}
