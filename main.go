// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// dwctl creates, updates, publishes and exports Datawrapper charts
package main

import (
	"os"

	"github.com/chartkit/dwclient/cmd"
)

// these flags will be set by the build flags
var (
	Version = "development" // program version for this build
	Tags    = ""            // the Golang build tags
)

func main() {
	extra := ""
	if Tags != "" {
		extra = " built with " + Tags
	}
	app := cmd.NewMainApp(cmd.AppVersion{Version: Version, Extra: extra})
	_ = cmd.RunMainApp(app, os.Args...) // all errors should have been handled by the RunMainApp
}
