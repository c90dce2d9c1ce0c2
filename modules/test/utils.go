// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package test holds helpers shared by tests
package test

// MockVariableValue sets a variable to a mocked value and returns a function
// restoring it. Without v the variable is set to its zero value.
func MockVariableValue[T any](p *T, v ...T) (reset func()) {
	old := *p
	if len(v) > 0 {
		*p = v[0]
	} else {
		var zero T
		*p = zero
	}
	return func() { *p = old }
}
