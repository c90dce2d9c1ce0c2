// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package testlogger routes log output into the test log
package testlogger

import (
	"strings"
	"sync"
	"testing"

	"github.com/chartkit/dwclient/modules/log"
)

// Recorder writes every log line to the test log and keeps it
type Recorder struct {
	mu    sync.Mutex
	t     testing.TB
	lines []string
	done  bool
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := strings.TrimSuffix(string(p), "\n")
	r.lines = append(r.lines, line)
	// the logger may still write after the test finished
	if !r.done {
		r.t.Log(line)
	}
	return len(p), nil
}

// Lines returns the recorded lines
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Contains reports whether a recorded line contains s
func (r *Recorder) Contains(s string) bool {
	for _, line := range r.Lines() {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// Install makes the default logger write to t at level until the test ends.
// Tests using it must not run in parallel.
func Install(t testing.TB, level log.Level) *Recorder {
	r := &Recorder{t: t}
	prev := log.GetLogger()
	log.SetDefault(log.NewLogrusWithWriter(r, level))
	t.Cleanup(func() {
		log.SetDefault(prev)
		r.mu.Lock()
		r.done = true
		r.mu.Unlock()
	})
	return r
}
