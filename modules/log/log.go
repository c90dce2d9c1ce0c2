// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	var l Logger = NewLogrusWithWriter(io.Discard, INFO)
	if lr, err := NewLogrus(Options{Level: INFO, Output: "stderr"}); err == nil {
		l = lr
	}
	defaultLogger.Store(&l)
}

// GetLogger returns the default logger
func GetLogger() Logger {
	return *defaultLogger.Load()
}

// SetDefault replaces the default logger
func SetDefault(l Logger) {
	defaultLogger.Store(&l)
}

// Discard returns a logger that drops everything
func Discard() Logger {
	return NewLogrusWithWriter(io.Discard, NONE)
}

func IsTrace() bool { return GetLogger().LevelEnabled(TRACE) }
func IsDebug() bool { return GetLogger().LevelEnabled(DEBUG) }

func Trace(format string, v ...any) { GetLogger().Trace(format, v...) }
func Debug(format string, v ...any) { GetLogger().Debug(format, v...) }
func Info(format string, v ...any)  { GetLogger().Info(format, v...) }
func Warn(format string, v ...any)  { GetLogger().Warn(format, v...) }
func Error(format string, v ...any) { GetLogger().Error(format, v...) }

func Critical(format string, v ...any) { GetLogger().Critical(format, v...) }
