// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/chartkit/dwclient/modules/graceful"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/metrics"
	"github.com/chartkit/dwclient/modules/setting"
	"github.com/chartkit/dwclient/modules/storage"
	"github.com/chartkit/dwclient/modules/util"
	chart_service "github.com/chartkit/dwclient/services/chart"
	"github.com/chartkit/dwclient/sdk/datawrapper"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

// environment is what every command needs to talk to the API
type environment struct {
	settings *setting.Settings
	client   *datawrapper.Client
	charts   *chart_service.Service
	metrics  *metrics.Collector

	cleanup util.CleanUpFunc
}

func (env *environment) Close() {
	env.cleanup()
}

// setupEnvironment loads the settings, installs the logger and builds the
// client. Global flags override the settings.
func setupEnvironment(c *cli.Context) (*environment, error) {
	s, err := setting.Load(c.String("config"), c.String("env-file"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("token") {
		s.API.AccessToken = c.String("token")
	}
	if c.IsSet("url") {
		s.API.BaseURL = c.String("url")
	}
	if c.IsSet("log-level") {
		s.Log.Level = c.String("log-level")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger, err := log.NewLogrus(s.Log.Options())
	if err != nil {
		return nil, err
	}
	log.SetDefault(logger)

	env := &environment{settings: s, metrics: metrics.NewCollector(), cleanup: util.NewCleanUpFunc()}
	options := []datawrapper.ClientOption{
		datawrapper.SetToken(s.API.AccessToken),
		datawrapper.SetUserAgent(s.API.UserAgent),
		datawrapper.SetTimeout(s.API.Timeout, s.API.UploadTimeout),
		datawrapper.SetRateLimit(s.API.RateLimit, s.API.RateBurst),
		datawrapper.SetMetrics(env.metrics),
		datawrapper.SetLogger(logger),
	}
	if logger.LevelEnabled(log.TRACE) {
		options = append(options, datawrapper.SetDebugMode())
	}
	env.client, err = datawrapper.NewClient(s.API.BaseURL, options...)
	if err != nil {
		return nil, err
	}
	env.charts = chart_service.NewService(env.client)

	if addr := c.String("metrics-addr"); addr != "" {
		if err := env.serveMetrics(addr); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func (env *environment) serveMetrics(addr string) error {
	reg := prometheus.NewRegistry()
	if err := env.metrics.Register(reg); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed: %v", err)
		}
	}()
	log.Info("Serving metrics on http://%s/metrics", ln.Addr())
	env.cleanup = env.cleanup.Append(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return nil
}

// exportSink opens the configured storage, a local directory overrides it
func (env *environment) exportSink(ctx context.Context, localDir string) (storage.ObjectStorage, error) {
	cfg := env.settings.Storage
	if localDir != "" {
		cfg.Type = setting.LocalStorageType
		cfg.Path = localDir
	}
	return storage.NewStorage(ctx, cfg.Type, &cfg)
}

// withEnvironment wraps a command action that needs the API
func withEnvironment(action func(c *cli.Context, env *environment) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		g := graceful.NewManager(c.Context)
		defer g.Close()
		c.Context = g.ShutdownContext()

		env, err := setupEnvironment(c)
		if err != nil {
			return err
		}
		defer env.Close()
		return action(c, env)
	}
}
