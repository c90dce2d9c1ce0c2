// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"

	"github.com/chartkit/dwclient/modules/log"

	ini "gopkg.in/ini.v1"
)

// Log settings of the [log] section
type Log struct {
	Level  string `validate:"oneof=trace debug info warn error fatal none"`
	Format string `validate:"oneof=text json"`
	Output string `validate:"required"`
	// MaxAge in days of rotated log files
	MaxAge int `validate:"min=0"`
}

func loadLogFrom(cfg *ini.File, l *Log) {
	sec := cfg.Section("log")
	l.Level = strings.ToLower(sec.Key("LEVEL").MustString("info"))
	l.Format = strings.ToLower(sec.Key("FORMAT").MustString("text"))
	l.Output = sec.Key("OUTPUT").MustString("stderr")
	l.MaxAge = sec.Key("MAX_AGE").MustInt(7)
}

// Options converts the settings for log.NewLogrus
func (l Log) Options() log.Options {
	return log.Options{
		Level:  log.LevelFromString(l.Level),
		Format: l.Format,
		Output: l.Output,
		MaxAge: l.MaxAge,
	}
}
