// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

// ExportFormat is the output format of ExportChart
type ExportFormat string

const (
	ExportPNG ExportFormat = "png"
	ExportPDF ExportFormat = "pdf"
	ExportSVG ExportFormat = "svg"
)

// Extension returns the file extension including the dot
func (f ExportFormat) Extension() string {
	return "." + string(f)
}

// ExportOptions are the rendering options of ExportChart. Zero values are
// not sent and the server default applies.
type ExportOptions struct {
	Format ExportFormat `validate:"omitempty,oneof=png pdf svg"`
	// Unit measures Width, Height and BorderWidth
	Unit string `validate:"omitempty,oneof=px mm inch"`
	Mode string `validate:"omitempty,oneof=rgb cmyk"`
	// Width 0 keeps the chart width
	Width int `validate:"min=0"`
	// Height 0 with HeightAuto sends "auto"
	Height      int `validate:"min=0"`
	HeightAuto  bool
	Plain       bool
	Zoom        int    `validate:"min=0,max=10"`
	Scale       int    `validate:"min=0,max=10"`
	BorderWidth *int   `validate:"omitempty,min=0"`
	BorderColor string `validate:"omitempty,max=64"`
	Transparent bool
	Download    bool
	FullVector  bool
	Ligatures   *bool
	Logo        string `validate:"omitempty,oneof=auto on off"`
	LogoID      string
	Dark        bool
}

var validate = validator.New()

// DefaultExportOptions returns the options the web interface uses for PNG downloads
func DefaultExportOptions() ExportOptions {
	border, ligatures := 20, true
	return ExportOptions{
		Format:      ExportPNG,
		Unit:        "px",
		Mode:        "rgb",
		Width:       400,
		Zoom:        2,
		Scale:       1,
		BorderWidth: &border,
		Ligatures:   &ligatures,
		Logo:        "auto",
	}
}

// Validate checks the options without contacting the API
func (opt ExportOptions) Validate() error {
	if err := validate.Struct(opt); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return &ConfigurationError{Setting: "export options", Reason: "invalid " + strings.Join(fields, ", ")}
		}
		return err
	}
	if opt.HeightAuto && opt.Height > 0 {
		return &ConfigurationError{Setting: "export options", Reason: "Height and HeightAuto are exclusive"}
	}
	return nil
}

// OutputFormat returns the requested format, png when none is set
func (opt ExportOptions) OutputFormat() ExportFormat {
	if opt.Format == "" {
		return ExportPNG
	}
	return opt.Format
}

func (opt ExportOptions) query() url.Values {
	q := url.Values{}
	setString := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	setInt := func(k string, v int) {
		if v > 0 {
			q.Set(k, strconv.Itoa(v))
		}
	}
	setBool := func(k string, v bool) {
		if v {
			q.Set(k, "true")
		}
	}
	setString("unit", opt.Unit)
	setString("mode", opt.Mode)
	setInt("width", opt.Width)
	if opt.HeightAuto {
		q.Set("height", "auto")
	} else {
		setInt("height", opt.Height)
	}
	setBool("plain", opt.Plain)
	setInt("zoom", opt.Zoom)
	setInt("scale", opt.Scale)
	if opt.BorderWidth != nil {
		q.Set("borderWidth", strconv.Itoa(*opt.BorderWidth))
	}
	setString("borderColor", opt.BorderColor)
	setBool("transparent", opt.Transparent)
	setBool("download", opt.Download)
	setBool("fullVector", opt.FullVector)
	if opt.Ligatures != nil {
		q.Set("ligatures", strconv.FormatBool(*opt.Ligatures))
	}
	setString("logo", opt.Logo)
	setString("logoId", opt.LogoID)
	setBool("dark", opt.Dark)
	return q
}
