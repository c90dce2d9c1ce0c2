// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides leveled, printf-style logging for the client and the CLI.
//
// Call sites depend on LevelLogger only. The default implementation is backed
// by logrus and is replaced with SetDefault, for example by the CLI after the
// settings are loaded, or with Discard() in tests.
package log

// LevelLogger provides level-related logging functions
type LevelLogger interface {
	LevelEnabled(level Level) bool

	Trace(format string, v ...any)
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Critical(format string, v ...any)
}

// Logger is a LevelLogger that can derive loggers carrying extra fields
type Logger interface {
	LevelLogger
	With(key string, value any) Logger
	GetLevel() Level
}

type LogStringer interface { //nolint:revive
	LogString() string
}
