// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// LineChart draws one line per data column
type LineChart struct {
	Base

	Grid       Grid
	GridFormat GridFormat
	Ranges     CustomRanges
	Ticks      CustomTicks

	YGridLabels     optional.Option[structs.GridLabelPosition]
	YGridLabelAlign optional.Option[structs.GridLabelAlign]
	ScaleY          optional.Option[structs.ScaleType]
	YGridSubdivide  optional.Option[bool]

	BaseColor      optional.Option[wire.Scalar]
	Interpolation  optional.Option[structs.LineInterpolation]
	ConnectorLines optional.Option[bool]
	ColorCategory  optional.Option[ColorCategory]

	StackColorLegend  optional.Option[bool]
	LabelColors       optional.Option[bool]
	LabelMargin       optional.Option[float64]
	ValueLabelsFormat optional.Option[structs.Format]
	ValueLabelColors  optional.Option[bool]

	ShowTooltips        optional.Option[bool]
	TooltipXFormat      optional.Option[structs.Format]
	TooltipNumberFormat optional.Option[structs.Format]

	PlotHeight  PlotHeight
	Lines       optional.Option[[]Line]
	AreaFills   optional.Option[[]AreaFill]
	Annotations Annotations
}

func (c *LineChart) Type() string { return TypeLine }

func (c *LineChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	c.Grid.validate()
	checkEnum("y-grid-labels", c.YGridLabels)
	checkEnum("y-grid-label-align", c.YGridLabelAlign)
	checkEnum("scale-y", c.ScaleY)
	checkEnum("interpolation", c.Interpolation)
	validateBaseColor(v, "base-color", c.BaseColor)
	validateColorCategory(v, c.ColorCategory, colorKeysSeries)
	v.atLeast("label-margin", c.LabelMargin, 0)
	c.PlotHeight.validate(v)
	validateList(v, "lines", c.Lines, func(v *validation, field string, l *Line) {
		l.validate(v, field)
	})
	validateList(v, "custom-area-fills", c.AreaFills, func(v *validation, field string, a *AreaFill) {
		a.validate(v, field)
	})
	c.Annotations.validate(v, false)
	return v.err()
}

func (c *LineChart) document() *wire.Object {
	return c.writeDocument(TypeLine, func(s sections) {
		vis := s.visualize
		wire.SetRange(vis, "custom-range-x", c.Ranges.X)
		wire.SetTicks(vis, "custom-ticks-x", c.Ticks.X)
		wire.SetEnum(vis, "x-grid-format", c.GridFormat.X)
		c.Grid.writeX(vis)
		wire.SetRange(vis, "custom-range-y", c.Ranges.Y)
		wire.SetTicks(vis, "custom-ticks-y", c.Ticks.Y)
		wire.SetEnum(vis, "y-grid-format", c.GridFormat.Y)
		c.Grid.writeY(vis)
		wire.SetEnum(vis, "y-grid-labels", c.YGridLabels)
		wire.SetEnum(vis, "y-grid-label-align", c.YGridLabelAlign)
		wire.SetEnum(vis, "scale-y", c.ScaleY)
		wire.Set(vis, "y-grid-subdivide", c.YGridSubdivide)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		wire.SetEnum(vis, "interpolation", c.Interpolation)
		wire.Set(vis, "connector-lines", c.ConnectorLines)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "stack-color-legend", c.StackColorLegend)
		wire.Set(vis, "label-colors", c.LabelColors)
		wire.Set(vis, "label-margin", c.LabelMargin)
		wire.SetEnum(vis, "value-labels-format", c.ValueLabelsFormat)
		wire.Set(vis, "value-label-colors", c.ValueLabelColors)
		wire.Set(vis, "show-tooltips", c.ShowTooltips)
		wire.SetEnum(vis, "tooltip-x-format", c.TooltipXFormat)
		wire.SetEnum(vis, "tooltip-number-format", c.TooltipNumberFormat)
		c.PlotHeight.write(vis)
		writeKeyed(vis, "lines", c.Lines)
		c.Annotations.write(vis)
		writeList(vis, "custom-area-fills", c.AreaFills)
	})
}

func (c *LineChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *LineChart) FromWire(data []byte) error {
	*c = LineChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeLine, func(r reader) {
		vis := r.visualize
		c.Ranges.read(vis)
		c.Ticks.read(vis)
		c.GridFormat.read(vis)
		c.Grid.read(vis)
		wire.StringEnum(vis, "y-grid-labels", &c.YGridLabels)
		wire.StringEnum(vis, "y-grid-label-align", &c.YGridLabelAlign)
		wire.StringEnum(vis, "scale-y", &c.ScaleY)
		vis.Bool("y-grid-subdivide", &c.YGridSubdivide)
		vis.Scalar("base-color", &c.BaseColor)
		wire.StringEnum(vis, "interpolation", &c.Interpolation)
		vis.Bool("connector-lines", &c.ConnectorLines)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.Bool("stack-color-legend", &c.StackColorLegend)
		vis.Bool("label-colors", &c.LabelColors)
		vis.Float("label-margin", &c.LabelMargin)
		wire.StringEnum(vis, "value-labels-format", &c.ValueLabelsFormat)
		vis.Bool("value-label-colors", &c.ValueLabelColors)
		vis.Bool("show-tooltips", &c.ShowTooltips)
		wire.StringEnum(vis, "tooltip-x-format", &c.TooltipXFormat)
		wire.StringEnum(vis, "tooltip-number-format", &c.TooltipNumberFormat)
		c.PlotHeight.read(vis)
		readList(vis, "lines", &c.Lines)
		c.Annotations.read(vis)
		readList(vis, "custom-area-fills", &c.AreaFills)
	})
}

func (c *LineChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *LineChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
