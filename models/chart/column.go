// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// ColumnChart is a vertical column chart. Its y range and ticks are stored as
// "custom-range" and "custom-ticks", and an on or off y grid is mirrored to
// the boolean "grid-lines".
type ColumnChart struct {
	Base

	Grid       Grid
	GridFormat GridFormat
	Ranges     CustomRanges
	Ticks      CustomTicks

	YAxisLabels optional.Option[AxisLabels]

	BaseColor     optional.Option[wire.Scalar]
	NegativeColor optional.Option[wire.Toggled[string]]
	BarPadding    optional.Option[float64]
	ColorCategory optional.Option[ColorCategory]
	ColorByColumn optional.Option[bool]
	PlotHeight    PlotHeight

	ShowColorKey      optional.Option[bool]
	ValueLabels       optional.Option[ColumnValueLabels]
	ValueLabelFormat  optional.Option[structs.Format]
	ValueLabelsAlways optional.Option[bool]

	Annotations Annotations

	gridLines gridLinesForm
}

// gridLinesForm records which of y-grid and grid-lines a fetched document held
type gridLinesForm uint8

const (
	gridLinesBoth gridLinesForm = iota
	gridLinesOnly
	gridLinesNone
)

func (c *ColumnChart) writeGrid(vis *wire.Object) {
	c.Grid.writeX(vis)
	y, ok := c.Grid.Y.Get()
	if !ok {
		return
	}
	if c.gridLines != gridLinesOnly || !isOnOff(y) {
		c.Grid.writeY(vis)
	}
	if c.gridLines != gridLinesNone && isOnOff(y) {
		vis.Set("grid-lines", y == structs.GridDisplayOn)
	}
}

func (c *ColumnChart) readGrid(vis wire.Section) {
	c.Grid.read(vis)
	lines := vis.Peek("grid-lines")
	y, hasY := c.Grid.Y.Get()
	switch {
	case !lines.IsBool():
		if hasY && isOnOff(y) {
			c.gridLines = gridLinesNone
		}
	case !hasY:
		c.Grid.Y = optional.Some(gridDisplayFromWire(lines.Bool()))
		c.gridLines = gridLinesOnly
		vis.Consume("grid-lines")
	case isOnOff(y) && (y == structs.GridDisplayOn) == lines.Bool():
		vis.Consume("grid-lines")
	default:
		// disagrees with y-grid, kept verbatim
		c.gridLines = gridLinesNone
	}
}

func (c *ColumnChart) Type() string { return TypeColumn }

func (c *ColumnChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	c.Grid.validate()
	validateBaseColor(v, "base-color", c.BaseColor)
	validateToggledColor(v, "negativeColor", c.NegativeColor)
	v.between("bar-padding", c.BarPadding, 0, 100)
	validateColorCategory(v, c.ColorCategory, colorKeysSeriesOrLabels)
	c.PlotHeight.validate(v)
	if vl, ok := c.ValueLabels.Get(); ok {
		vl.validate(v, "valueLabels")
	}
	c.Annotations.validate(v, false)
	return v.err()
}

func (c *ColumnChart) document() *wire.Object {
	return c.writeDocument(TypeColumn, func(s sections) {
		vis := s.visualize
		c.writeGrid(vis)
		c.GridFormat.write(vis)
		c.Ranges.writeAs(vis, "custom-range-x", "custom-range")
		c.Ticks.writeAs(vis, "custom-ticks-x", "custom-ticks")
		writeObject(vis, "yAxisLabels", c.YAxisLabels)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		wire.SetToggledColor(vis, "negativeColor", c.NegativeColor)
		wire.Set(vis, "bar-padding", c.BarPadding)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "color-by-column", c.ColorByColumn)
		c.PlotHeight.write(vis)
		wire.Set(vis, "show-color-key", c.ShowColorKey)
		writeObject(vis, "valueLabels", c.ValueLabels)
		wire.SetEnum(vis, "value-label-format", c.ValueLabelFormat)
		wire.Set(vis, "value-labels-always", c.ValueLabelsAlways)
		c.Annotations.write(vis)
	})
}

func (c *ColumnChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *ColumnChart) FromWire(data []byte) error {
	*c = ColumnChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeColumn, func(r reader) {
		vis := r.visualize
		c.readGrid(vis)
		c.GridFormat.read(vis)
		c.Ranges.readAs(vis, "custom-range-x", "custom-range")
		c.Ticks.readAs(vis, "custom-ticks-x", "custom-ticks")
		readObject(vis, "yAxisLabels", &c.YAxisLabels)
		vis.Scalar("base-color", &c.BaseColor)
		vis.ToggledColor("negativeColor", &c.NegativeColor)
		vis.Float("bar-padding", &c.BarPadding)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.Bool("color-by-column", &c.ColorByColumn)
		c.PlotHeight.read(vis)
		vis.Bool("show-color-key", &c.ShowColorKey)
		readObject(vis, "valueLabels", &c.ValueLabels)
		wire.StringEnum(vis, "value-label-format", &c.ValueLabelFormat)
		vis.Bool("value-labels-always", &c.ValueLabelsAlways)
		c.Annotations.read(vis)
	})
}

func (c *ColumnChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *ColumnChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
