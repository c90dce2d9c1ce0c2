// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package testlogger

import (
	"testing"

	"github.com/chartkit/dwclient/modules/log"

	"github.com/stretchr/testify/assert"
)

func TestInstall(t *testing.T) {
	r := Install(t, log.INFO)
	log.Debug("hidden")
	log.Warn("chart %s lost its data", "abc12")

	assert.True(t, r.Contains("chart abc12 lost its data"))
	assert.False(t, r.Contains("hidden"))
	assert.Len(t, r.Lines(), 1)
}
