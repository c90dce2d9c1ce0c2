// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package optional distinguishes "not set" from a zero value. Chart fields left
// unset are never written to a wire document, so the remote defaults apply.
package optional

import "fmt"

type Option[T any] []T

func None[T any]() Option[T] {
	return nil
}

func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

func FromPtr[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func FromNonDefault[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Has() bool {
	return len(o) > 0
}

func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

// Get returns the value and whether it is set
func (o Option[T]) Get() (T, bool) {
	if o.Has() {
		return o[0], true
	}
	var zero T
	return zero, false
}

func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}

// Ptr returns a pointer to a copy of the value, or nil when unset.
func (o Option[T]) Ptr() *T {
	if !o.Has() {
		return nil
	}
	v := o[0]
	return &v
}

// String renders the value for log lines, "<unset>" when there is none.
func (o Option[T]) String() string {
	if !o.Has() {
		return "<unset>"
	}
	return fmt.Sprint(o[0])
}

// Map converts a set value with fn and keeps an unset value unset.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.Has() {
		return None[U]()
	}
	return Some(fn(o[0]))
}
