// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package setting loads dwctl settings from an ini file, a .env file and the
// process environment, in that order of increasing precedence.
package setting

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chartkit/dwclient/modules/util"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	ini "gopkg.in/ini.v1"
)

// DefaultEnvFile is read when no env file is given and it exists
const DefaultEnvFile = ".env"

// Environment variables overriding the file settings
const (
	EnvAccessToken = "DATAWRAPPER_ACCESS_TOKEN"
	EnvBaseURL     = "DATAWRAPPER_BASE_URL"
	EnvLogLevel    = "DATAWRAPPER_LOG_LEVEL"
)

// Settings is the complete configuration
type Settings struct {
	API     API
	Log     Log
	Storage Storage
}

var validate = validator.New()

// Load reads the settings. An empty configPath uses the defaults. An empty
// envFile reads DefaultEnvFile when it exists.
func Load(configPath, envFile string) (*Settings, error) {
	cfg := ini.Empty()
	if configPath != "" {
		var err error
		cfg, err = ini.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", configPath, err)
		}
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}
	return FromIni(cfg)
}

// FromIni builds the settings from a parsed file and the environment
func FromIni(cfg *ini.File) (*Settings, error) {
	s := &Settings{}
	loadAPIFrom(cfg, &s.API)
	loadLogFrom(cfg, &s.Log)
	loadStorageFrom(cfg, &s.Storage)

	if v := os.Getenv(EnvAccessToken); v != "" {
		s.API.AccessToken = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		s.API.BaseURL = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Log.Level = strings.ToLower(v)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %q: %w", envFile, err)
	}
	return nil
}

// Validate checks every section
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q", strings.TrimPrefix(fe.Namespace(), "Settings."), fe.Tag()))
	}
	return util.NewInvalidArgumentErrorf("invalid settings: %s", strings.Join(msgs, ", "))
}
