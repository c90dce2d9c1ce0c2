// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ini "gopkg.in/ini.v1"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvAccessToken, EnvBaseURL, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	s, err := FromIni(ini.Empty())
	require.NoError(t, err)

	assert.Equal(t, "https://api.datawrapper.de", s.API.BaseURL)
	assert.Equal(t, 15*time.Second, s.API.Timeout)
	assert.Equal(t, 30*time.Second, s.API.UploadTimeout)
	assert.Zero(t, s.API.RateLimit)
	assert.Empty(t, s.API.AccessToken)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, LocalStorageType, s.Storage.Type)
	assert.True(t, filepath.IsAbs(s.Storage.Path))
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	conf := filepath.Join(dir, "dwctl.ini")
	require.NoError(t, os.WriteFile(conf, []byte(`
[api]
ACCESS_TOKEN = file-token
BASE_URL = http://localhost:8080/
TIMEOUT = 2s
RATE_LIMIT = 5
RATE_BURST = 2

[log]
LEVEL = DEBUG
FORMAT = json

[storage]
TYPE = minio
MINIO_BUCKET = exports
MINIO_USE_SSL = true
`), 0o600))

	s, err := Load(conf, "")
	require.NoError(t, err)
	assert.Equal(t, "file-token", s.API.AccessToken)
	assert.Equal(t, "http://localhost:8080", s.API.BaseURL)
	assert.Equal(t, 2*time.Second, s.API.Timeout)
	assert.InDelta(t, 5, s.API.RateLimit, 0)
	assert.Equal(t, 2, s.API.RateBurst)
	assert.Equal(t, log.DEBUG, s.Log.Options().Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, MinioStorageType, s.Storage.Type)
	assert.Equal(t, "exports", s.Storage.MinioConfig.Bucket)
	assert.True(t, s.Storage.MinioConfig.UseSSL)
}

func TestEnvironmentWins(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are present, even empty ones
	os.Unsetenv(EnvLogLevel)
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATAWRAPPER_LOG_LEVEL=warn\n"), 0o600))
	t.Setenv(EnvAccessToken, "env-token")

	cfg := ini.Empty()
	cfg.Section("api").Key("ACCESS_TOKEN").SetValue("file-token")
	require.NoError(t, loadEnvFile(envFile))

	s, err := FromIni(cfg)
	require.NoError(t, err)
	assert.Equal(t, "env-token", s.API.AccessToken)
	assert.Equal(t, "warn", s.Log.Level)
}

func TestMissingEnvFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cases := map[string]func(cfg *ini.File){
		"bad url":     func(cfg *ini.File) { cfg.Section("api").Key("BASE_URL").SetValue("not a url") },
		"bad level":   func(cfg *ini.File) { cfg.Section("log").Key("LEVEL").SetValue("loud") },
		"bad format":  func(cfg *ini.File) { cfg.Section("log").Key("FORMAT").SetValue("xml") },
		"bad storage": func(cfg *ini.File) { cfg.Section("storage").Key("TYPE").SetValue("ftp") },
		"negative":    func(cfg *ini.File) { cfg.Section("api").Key("RATE_LIMIT").SetValue("-1") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := ini.Empty()
			mutate(cfg)
			_, err := FromIni(cfg)
			assert.ErrorIs(t, err, util.ErrInvalidArgument)
		})
	}
}
