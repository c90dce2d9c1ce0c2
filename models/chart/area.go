// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// AreaChart draws filled areas, optionally stacked
type AreaChart struct {
	Base

	Grid       Grid
	GridFormat GridFormat
	Ranges     CustomRanges
	Ticks      CustomTicks

	YGridLabels     optional.Option[structs.GridLabelPosition]
	YGridLabelAlign optional.Option[structs.GridLabelAlign]

	AreaOpacity        optional.Option[float64]
	BaseColor          optional.Option[wire.Scalar]
	Interpolation      optional.Option[structs.LineInterpolation]
	SortAreas          optional.Option[structs.SortAreas]
	StackAreas         optional.Option[bool]
	StackTo100         optional.Option[bool]
	AreaSeparatorLines optional.Option[bool]
	AreaSeparatorColor optional.Option[wire.Scalar]
	ColorCategory      optional.Option[ColorCategory]
	ShowColorKey       optional.Option[bool]

	ShowTooltips        optional.Option[bool]
	TooltipXFormat      optional.Option[structs.Format]
	TooltipNumberFormat optional.Option[structs.Format]

	PlotHeight  PlotHeight
	Annotations Annotations
}

func (c *AreaChart) Type() string { return TypeArea }

func (c *AreaChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	c.Grid.validate()
	checkEnum("y-grid-labels", c.YGridLabels)
	checkEnum("y-grid-label-align", c.YGridLabelAlign)
	v.between("area-opacity", c.AreaOpacity, 0, 1)
	validateBaseColor(v, "base-color", c.BaseColor)
	checkEnum("interpolation", c.Interpolation)
	checkEnum("sort-areas", c.SortAreas)
	validateBaseColor(v, "area-separator-color", c.AreaSeparatorColor)
	validateColorCategory(v, c.ColorCategory, colorKeysSeries)
	c.PlotHeight.validate(v)
	c.Annotations.validate(v, false)
	return v.err()
}

func (c *AreaChart) document() *wire.Object {
	return c.writeDocument(TypeArea, func(s sections) {
		vis := s.visualize
		c.Grid.write(vis)
		c.GridFormat.write(vis)
		c.Ranges.write(vis)
		c.Ticks.write(vis)
		wire.SetEnum(vis, "y-grid-labels", c.YGridLabels)
		wire.SetEnum(vis, "y-grid-label-align", c.YGridLabelAlign)
		wire.Set(vis, "area-opacity", c.AreaOpacity)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		wire.SetEnum(vis, "interpolation", c.Interpolation)
		wire.SetEnum(vis, "sort-areas", c.SortAreas)
		wire.Set(vis, "stack-areas", c.StackAreas)
		wire.Set(vis, "stack-to-100", c.StackTo100)
		wire.Set(vis, "area-separator-lines", c.AreaSeparatorLines)
		wire.SetScalar(vis, "area-separator-color", c.AreaSeparatorColor)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "show-color-key", c.ShowColorKey)
		wire.Set(vis, "show-tooltips", c.ShowTooltips)
		wire.SetEnum(vis, "tooltip-x-format", c.TooltipXFormat)
		wire.SetEnum(vis, "tooltip-number-format", c.TooltipNumberFormat)
		c.PlotHeight.write(vis)
		c.Annotations.write(vis)
	})
}

func (c *AreaChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *AreaChart) FromWire(data []byte) error {
	*c = AreaChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeArea, func(r reader) {
		vis := r.visualize
		c.Grid.read(vis)
		c.GridFormat.read(vis)
		c.Ranges.read(vis)
		c.Ticks.read(vis)
		wire.StringEnum(vis, "y-grid-labels", &c.YGridLabels)
		wire.StringEnum(vis, "y-grid-label-align", &c.YGridLabelAlign)
		vis.Float("area-opacity", &c.AreaOpacity)
		vis.Scalar("base-color", &c.BaseColor)
		wire.StringEnum(vis, "interpolation", &c.Interpolation)
		wire.StringEnum(vis, "sort-areas", &c.SortAreas)
		vis.Bool("stack-areas", &c.StackAreas)
		vis.Bool("stack-to-100", &c.StackTo100)
		vis.Bool("area-separator-lines", &c.AreaSeparatorLines)
		vis.Scalar("area-separator-color", &c.AreaSeparatorColor)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.Bool("show-color-key", &c.ShowColorKey)
		vis.Bool("show-tooltips", &c.ShowTooltips)
		wire.StringEnum(vis, "tooltip-x-format", &c.TooltipXFormat)
		wire.StringEnum(vis, "tooltip-number-format", &c.TooltipNumberFormat)
		c.PlotHeight.read(vis)
		c.Annotations.read(vis)
	})
}

func (c *AreaChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *AreaChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
