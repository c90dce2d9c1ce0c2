// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package main

// Date columns are formatted in the chart's time zone, Windows builds may
// lack the zone database so it is embedded.
import _ "time/tzdata"
