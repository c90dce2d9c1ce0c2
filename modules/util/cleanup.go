// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

// CleanUpFunc releases resources, it must be safe to call once
type CleanUpFunc func()

// NewCleanUpFunc returns a CleanUpFunc doing nothing
func NewCleanUpFunc() CleanUpFunc {
	return func() {}
}

// Append returns a CleanUpFunc running newF before f, so resources are
// released in reverse order of acquisition
func (f CleanUpFunc) Append(newF CleanUpFunc) CleanUpFunc {
	return func() {
		newF()
		f()
	}
}
