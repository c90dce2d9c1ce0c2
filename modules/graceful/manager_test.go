// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package graceful

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalsShutdownThenHammer(t *testing.T) {
	g := NewManager(context.Background())
	defer g.Close()
	hammered := make(chan struct{})
	g.hammer = func() { close(hammered) }

	g.signals <- syscall.SIGINT
	select {
	case <-g.IsShutdown():
	case <-time.After(5 * time.Second):
		require.Fail(t, "context was not cancelled")
	}
	assert.ErrorIs(t, context.Cause(g.ShutdownContext()), ErrInterrupted)

	g.signals <- syscall.SIGTERM
	select {
	case <-hammered:
	case <-time.After(5 * time.Second):
		require.Fail(t, "second signal did not hammer")
	}
}

func TestClose(t *testing.T) {
	g := NewManager(context.Background())
	g.Close()
	g.Close()
	assert.ErrorIs(t, g.ShutdownContext().Err(), context.Canceled)
	assert.NotErrorIs(t, context.Cause(g.ShutdownContext()), ErrInterrupted)
}
