// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockVariableValue(t *testing.T) {
	zoom := 2
	reset := MockVariableValue(&zoom, 4)
	assert.Equal(t, 4, zoom)
	reset()
	assert.Equal(t, 2, zoom)

	defer MockVariableValue(&zoom)()
	assert.Zero(t, zoom)
}
