// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"strings"
	"time"

	ini "gopkg.in/ini.v1"
)

// API settings of the [api] section
type API struct {
	// AccessToken may be empty here, the client refuses to start without one
	AccessToken   string
	BaseURL       string        `validate:"required,url"`
	Timeout       time.Duration `validate:"min=0"`
	UploadTimeout time.Duration `validate:"min=0"`
	// RateLimit in requests per second, 0 disables the limiter
	RateLimit float64 `validate:"min=0"`
	RateBurst int     `validate:"min=0"`
	UserAgent string
}

func loadAPIFrom(cfg *ini.File, api *API) {
	sec := cfg.Section("api")
	api.AccessToken = sec.Key("ACCESS_TOKEN").MustString("")
	api.BaseURL = strings.TrimSuffix(sec.Key("BASE_URL").MustString("https://api.datawrapper.de"), "/")
	api.Timeout = sec.Key("TIMEOUT").MustDuration(15 * time.Second)
	api.UploadTimeout = sec.Key("UPLOAD_TIMEOUT").MustDuration(30 * time.Second)
	api.RateLimit = sec.Key("RATE_LIMIT").MustFloat64(0)
	api.RateBurst = sec.Key("RATE_BURST").MustInt(1)
	api.UserAgent = sec.Key("USER_AGENT").MustString("dwctl")
}
