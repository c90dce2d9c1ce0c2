// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package graceful stops running commands on interrupt
package graceful

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chartkit/dwclient/modules/log"
)

// ErrInterrupted is the cause of a context cancelled by a signal
var ErrInterrupted = errors.New("interrupted")

// Manager cancels its context on the first SIGINT or SIGTERM so in-flight
// requests are abandoned cleanly. A second signal hammers the process.
type Manager struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	signals chan os.Signal
	done    chan struct{}
	once    sync.Once

	// hammer is called on the second signal
	hammer func()
}

// NewManager starts watching for signals until Close is called
func NewManager(parent context.Context) *Manager {
	ctx, cancel := context.WithCancelCause(parent)
	g := &Manager{
		ctx:     ctx,
		cancel:  cancel,
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
		hammer:  func() { os.Exit(130) },
	}
	signal.Notify(g.signals, syscall.SIGINT, syscall.SIGTERM)
	go g.handleSignals()
	return g
}

// ShutdownContext is cancelled once a shutdown is requested
func (g *Manager) ShutdownContext() context.Context {
	return g.ctx
}

// IsShutdown returns a channel closed once a shutdown is requested
func (g *Manager) IsShutdown() <-chan struct{} {
	return g.ctx.Done()
}

// DoGracefulShutdown cancels the shutdown context
func (g *Manager) DoGracefulShutdown() {
	g.cancel(ErrInterrupted)
}

// Close stops watching for signals and releases the context
func (g *Manager) Close() {
	g.once.Do(func() {
		signal.Stop(g.signals)
		close(g.done)
		g.cancel(context.Canceled)
	})
}

func (g *Manager) handleSignals() {
	shuttingDown := false
	for {
		select {
		case sig := <-g.signals:
			if shuttingDown {
				log.Warn("Received %v again, exiting immediately", sig)
				g.hammer()
				return
			}
			log.Warn("Received %v, stopping. Send it again to exit immediately", sig)
			shuttingDown = true
			g.DoGracefulShutdown()
		case <-g.done:
			return
		}
	}
}
