// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Settings file (ini)",
			EnvVars: []string{"DWCTL_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "File with environment variables to load (defaults to ./.env when present)",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "API access token, overrides the settings and DATAWRAPPER_ACCESS_TOKEN",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "API base URL",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn, error or none",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "Serve Prometheus metrics on this address while the command runs",
		},
	}
}

// AppVersion is shown by --version
type AppVersion struct {
	Version string
	Extra   string
}

// NewMainApp returns the dwctl application
func NewMainApp(appVer AppVersion) *cli.App {
	app := cli.NewApp()
	app.Name = "dwctl"
	app.Usage = "Create, update, publish and export Datawrapper charts"
	app.Description = `dwctl manages charts through the Datawrapper API. Charts are described in
YAML definition files holding the chart type, its title, a data file and the
chart metadata as sent to the API.`
	app.Version = appVer.Version + appVer.Extra
	app.EnableBashCompletion = true
	app.Flags = appGlobalFlags()
	app.Commands = []*cli.Command{
		CmdChart,
		CmdFolder,
		CmdTheme,
		CmdMe,
	}
	return app
}

// RunMainApp runs app and reports a failed command on the app's error writer
func RunMainApp(app *cli.App, args ...string) error {
	err := app.Run(args)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "flag provided but not defined:") {
		// the cli package should already have output the error message, so just exit
		cli.OsExiter(1)
		return err
	}
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	cli.OsExiter(1)
	return err
}
