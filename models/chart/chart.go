// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chart models the chart types of the charting API and converts them
// to and from the API's JSON documents.
package chart

import (
	"slices"

	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/modules/wire"
)

// Type literals of the supported charts
const (
	TypeBar            = "d3-bars"
	TypeLine           = "d3-lines"
	TypeColumn         = "column-chart"
	TypeArea           = "d3-area"
	TypeScatter        = "d3-scatter-plot"
	TypeArrow          = "d3-arrow-plot"
	TypeStackedBar     = "d3-bars-stacked"
	TypeMultipleColumn = "multiple-columns"
)

// Chart is implemented by every chart configuration
type Chart interface {
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error

	// Type returns the type literal sent as "type"
	Type() string
	// Common returns the settings shared by all chart types
	Common() *Base
	ID() string
	State() State
	Reset()
	// Validate reports every invalid field, joined
	Validate() error
	// ToWire encodes the chart as an API document
	ToWire() ([]byte, error)
	// FromWire replaces the configuration with the one in data. Data
	// attached to the chart is kept.
	FromWire(data []byte) error
}

var factories = map[string]func() Chart{
	TypeBar:            func() Chart { return &BarChart{} },
	TypeLine:           func() Chart { return &LineChart{} },
	TypeColumn:         func() Chart { return &ColumnChart{} },
	TypeArea:           func() Chart { return &AreaChart{} },
	TypeScatter:        func() Chart { return &ScatterPlot{} },
	TypeArrow:          func() Chart { return &ArrowChart{} },
	TypeStackedBar:     func() Chart { return &StackedBarChart{} },
	TypeMultipleColumn: func() Chart { return &MultipleColumnChart{} },
}

// ForType returns an empty chart for a type literal
func ForType(typ string) (Chart, error) {
	f, ok := factories[typ]
	if !ok {
		return nil, ErrUnknownType{Type: typ}
	}
	return f(), nil
}

// Types lists the supported type literals, sorted
func Types() []string {
	types := make([]string, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// New validates c and returns it
func New[C Chart](c C) (C, error) {
	if err := c.Validate(); err != nil {
		var zero C
		return zero, err
	}
	return c, nil
}

// Parse builds the chart named by the "type" key of data
func Parse(data []byte) (Chart, error) {
	d, err := wire.Parse(data)
	if err != nil {
		return nil, err
	}
	var typ optional.Option[string]
	d.Root().String("type", &typ)
	if !typ.Has() {
		return nil, util.NewInvalidArgumentErrorf("chart document has no type")
	}
	c, err := ForType(typ.Value())
	if err != nil {
		return nil, err
	}
	if err := c.FromWire(data); err != nil {
		return nil, err
	}
	return c, nil
}

func encode(o *wire.Object) ([]byte, error) {
	return wire.Marshal(o)
}

// Appearance settings shared by most chart types

func validateBaseColor(v *validation, field string, o optional.Option[wire.Scalar]) {
	c, ok := o.Get()
	if !ok || c.IsNumber() || c.IsEmpty() {
		return
	}
	v.color(field, optional.Some(c.String()))
}

func validateToggledColor(v *validation, field string, o optional.Option[wire.Toggled[string]]) {
	if t, ok := o.Get(); ok && t.Enabled {
		v.color(field, optional.Some(t.Value))
	}
}

// colorKeys says what the keys of a color-category map refer to
type colorKeys uint8

const (
	// keys are values of a column picked elsewhere in the chart
	colorKeysFree colorKeys = iota
	// keys name data columns
	colorKeysSeries
	// keys name data columns or labels in the first column
	colorKeysSeriesOrLabels
)

func validateColorCategory(v *validation, o optional.Option[ColorCategory], keys colorKeys) {
	if cc, ok := o.Get(); ok {
		cc.validate(v, "color-category", keys)
	}
}
