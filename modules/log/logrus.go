// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logrus backed logger
type Options struct {
	Level  Level
	Format string // "json" or "text"
	Output string // "stdout", "stderr" or a file path
	// MaxAge in days; a file output is rotated by lumberjack when it is positive
	MaxAge int
}

// LogrusLogger implements Logger on top of a logrus entry
type LogrusLogger struct {
	entry *logrus.Entry
	level Level
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogrus creates a logger from the options
func NewLogrus(opts Options) (*LogrusLogger, error) {
	l := logrus.New()
	if opts.Level == UNDEFINED {
		opts.Level = INFO
	}
	l.SetLevel(opts.Level.Logrus())
	l.SetReportCaller(true)

	callerPrettyfier := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch opts.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
			CallerPrettyfier: callerPrettyfier,
		})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	out, err := openOutput(opts.Output, opts.MaxAge)
	if err != nil {
		return nil, err
	}
	l.SetOutput(out)
	l.AddHook(&callerHook{})

	return &LogrusLogger{entry: logrus.NewEntry(l), level: opts.Level}, nil
}

// NewLogrusWithWriter creates a text logger writing to w, mostly for tests
func NewLogrusWithWriter(w io.Writer, level Level) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level.Logrus())
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &LogrusLogger{entry: logrus.NewEntry(l), level: level}
}

func openOutput(output string, maxAge int) (io.Writer, error) {
	switch output {
	case "stdout":
		return os.Stdout, nil
	case "stderr", "":
		return os.Stderr, nil
	}
	if maxAge > 0 {
		return &lumberjack.Logger{
			Filename: output,
			MaxAge:   maxAge,
			MaxSize:  100,
			Compress: true,
		}, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", output, err)
	}
	return f, nil
}

func (l *LogrusLogger) LevelEnabled(level Level) bool {
	return l.level != NONE && level >= l.level
}

func (l *LogrusLogger) GetLevel() Level {
	return l.level
}

func (l *LogrusLogger) With(key string, value any) Logger {
	return &LogrusLogger{entry: l.entry.WithField(key, value), level: l.level}
}

func (l *LogrusLogger) log(level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}
	for i := range v {
		if s, ok := v[i].(LogStringer); ok {
			v[i] = s.LogString()
		}
	}
	l.entry.Logf(level.Logrus(), format, v...)
}

func (l *LogrusLogger) Trace(format string, v ...any) { l.log(TRACE, format, v...) }
func (l *LogrusLogger) Debug(format string, v ...any) { l.log(DEBUG, format, v...) }
func (l *LogrusLogger) Info(format string, v ...any)  { l.log(INFO, format, v...) }
func (l *LogrusLogger) Warn(format string, v ...any)  { l.log(WARN, format, v...) }
func (l *LogrusLogger) Error(format string, v ...any) { l.log(ERROR, format, v...) }

func (l *LogrusLogger) Critical(format string, v ...any) { l.log(CRITICAL, format, v...) }
