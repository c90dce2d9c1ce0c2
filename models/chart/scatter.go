// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// ScatterAxis configures one axis of a scatter plot. Ticks are stored as
// an array.
type ScatterAxis struct {
	Log    optional.Option[bool]
	Range  optional.Option[wire.Range]
	Ticks  optional.Option[[]wire.Scalar]
	Extras wire.Extras
}

func (a *ScatterAxis) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "log", a.Log)
	wire.SetRange(o, "range", a.Range)
	wire.SetScalars(o, "ticks", a.Ticks)
	a.Extras.Apply(o)
	return o
}

func (a *ScatterAxis) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	s.Bool("log", &a.Log)
	s.Range("range", &a.Range)
	s.Ticks("ticks", &a.Ticks)
	a.Extras = d.Extras()
}

// ScatterTooltip configures the hover tooltip. Title and Body are
// templates over column names.
type ScatterTooltip struct {
	Enabled  optional.Option[bool]
	Title    optional.Option[string]
	Body     optional.Option[string]
	Sticky   optional.Option[bool]
	Migrated optional.Option[bool]
	Extras   wire.Extras
}

func (t *ScatterTooltip) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "body", t.Body)
	wire.Set(o, "title", t.Title)
	wire.Set(o, "sticky", t.Sticky)
	wire.Set(o, "enabled", t.Enabled)
	wire.Set(o, "migrated", t.Migrated)
	t.Extras.Apply(o)
	return o
}

func (t *ScatterTooltip) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	s.String("body", &t.Body)
	s.String("title", &t.Title)
	s.Bool("sticky", &t.Sticky)
	s.Bool("enabled", &t.Enabled)
	s.Bool("migrated", &t.Migrated)
	t.Extras = d.Extras()
}

// SizeLegend configures the legend explaining symbol sizes
type SizeLegend struct {
	Show          optional.Option[bool]
	Position      optional.Option[structs.SizeLegendPosition]
	OffsetX       optional.Option[float64]
	OffsetY       optional.Option[float64]
	ValuesSetting optional.Option[structs.SizeLegendValues]
	Values        optional.Option[[]wire.Scalar]
	LabelPosition optional.Option[structs.SizeLegendLabelPosition]
	LabelFormat   optional.Option[structs.Format]
	TitleEnabled  optional.Option[bool]
	Title         optional.Option[string]
	TitlePosition optional.Option[structs.SizeLegendTitlePosition]
	TitleWidth    optional.Option[float64]
}

func (l *SizeLegend) write(o *wire.Object) {
	wire.Set(o, "show-size-legend", l.Show)
	wire.SetEnum(o, "size-legend-position", l.Position)
	wire.Set(o, "legend-offset-x", l.OffsetX)
	wire.Set(o, "legend-offset-y", l.OffsetY)
	wire.SetEnum(o, "size-legend-values-setting", l.ValuesSetting)
	wire.SetScalars(o, "size-legend-values", l.Values)
	wire.SetEnum(o, "size-legend-label-position", l.LabelPosition)
	wire.SetEnum(o, "size-legend-label-format", l.LabelFormat)
	wire.Set(o, "size-legend-title-enabled", l.TitleEnabled)
	wire.Set(o, "size-legend-title", l.Title)
	wire.SetEnum(o, "size-legend-title-position", l.TitlePosition)
	wire.Set(o, "size-legend-title-width", l.TitleWidth)
}

func (l *SizeLegend) read(s wire.Section) {
	s.Bool("show-size-legend", &l.Show)
	wire.StringEnum(s, "size-legend-position", &l.Position)
	s.Float("legend-offset-x", &l.OffsetX)
	s.Float("legend-offset-y", &l.OffsetY)
	wire.StringEnum(s, "size-legend-values-setting", &l.ValuesSetting)
	if s.Peek("size-legend-values").IsArray() {
		s.Ticks("size-legend-values", &l.Values)
	}
	wire.StringEnum(s, "size-legend-label-position", &l.LabelPosition)
	wire.StringEnum(s, "size-legend-label-format", &l.LabelFormat)
	s.Bool("size-legend-title-enabled", &l.TitleEnabled)
	s.String("size-legend-title", &l.Title)
	wire.StringEnum(s, "size-legend-title-position", &l.TitlePosition)
	s.Float("size-legend-title-width", &l.TitleWidth)
}

func (l *SizeLegend) validate(v *validation) {
	checkEnum("size-legend-position", l.Position)
	checkEnum("size-legend-values-setting", l.ValuesSetting)
	checkEnum("size-legend-label-position", l.LabelPosition)
	checkEnum("size-legend-title-position", l.TitlePosition)
	v.atLeast("size-legend-title-width", l.TitleWidth, 0)
	for _, s := range l.Values.Value() {
		if !s.IsNumber() {
			v.fail("size-legend-values", "%q is not a number", s.String())
		}
	}
}

// ScatterPlot places one symbol per row at x, y
type ScatterPlot struct {
	Base

	XColumn     optional.Option[string]
	YColumn     optional.Option[string]
	SizeColumn  optional.Option[string]
	ShapeColumn optional.Option[string]
	LabelColumn optional.Option[string]
	ColorColumn optional.Option[string]

	XAxis      optional.Option[ScatterAxis]
	XFormat    optional.Option[structs.Format]
	XPosition  optional.Option[structs.ScatterAxisPosition]
	XGridLines optional.Option[structs.ScatterGridLines]
	YAxis      optional.Option[ScatterAxis]
	YFormat    optional.Option[structs.Format]
	YPosition  optional.Option[structs.ScatterAxisPosition]
	YGridLines optional.Option[structs.ScatterGridLines]

	BaseColor     optional.Option[wire.Scalar]
	Opacity       optional.Option[float64]
	Outlines      optional.Option[bool]
	ColorOutline  optional.Option[string]
	ShowColorKey  optional.Option[bool]
	ColorCategory optional.Option[ColorCategory]
	ColorByColumn optional.Option[bool]

	Size                 optional.Option[structs.ScatterSize]
	FixedSize            optional.Option[float64]
	MaxSize              optional.Option[float64]
	ResponsiveSymbolSize optional.Option[bool]
	SizeLegend           SizeLegend

	Shape      optional.Option[structs.ScatterShape]
	FixedShape optional.Option[structs.ScatterShape]

	Regression       optional.Option[bool]
	RegressionMethod optional.Option[structs.RegressionMethod]

	PlotHeight  PlotHeight
	Annotations Annotations
	// CustomLines holds one line per row as "x1,y1,x2,y2" plus optional style
	CustomLines optional.Option[string]

	AutoLabels       optional.Option[bool]
	AddLabels        optional.Option[[]string]
	HighlightLabeled optional.Option[bool]
	Tooltip          optional.Option[ScatterTooltip]
}

func (c *ScatterPlot) Type() string { return TypeScatter }

func (c *ScatterPlot) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	v.column("axes.x", c.XColumn)
	v.column("axes.y", c.YColumn)
	v.column("axes.size", c.SizeColumn)
	v.column("axes.shape", c.ShapeColumn)
	v.column("axes.labels", c.LabelColumn)
	v.column("axes.color", c.ColorColumn)
	checkEnum("x-pos", c.XPosition)
	checkEnum("y-pos", c.YPosition)
	checkEnum("x-grid-lines", c.XGridLines)
	checkEnum("y-grid-lines", c.YGridLines)
	validateBaseColor(v, "base-color", c.BaseColor)
	v.between("opacity", c.Opacity, 0, 1)
	v.color("color-outline", c.ColorOutline)
	validateColorCategory(v, c.ColorCategory, colorKeysFree)
	checkEnum("size", c.Size)
	v.atLeast("fixed-size", c.FixedSize, 0)
	v.atLeast("max-size", c.MaxSize, 0)
	c.SizeLegend.validate(v)
	if shape, ok := c.Shape.Get(); ok && shape != "fixed" && shape != "dynamic" {
		checkEnum("shape", c.Shape)
	}
	checkEnum("fixed-shape", c.FixedShape)
	checkEnum("regression-method", c.RegressionMethod)
	if c.Size.Value() == structs.ScatterSizeDynamic && c.SizeColumn.Value() == "" {
		v.fail("axes.size", "is required when size is dynamic")
	}
	c.PlotHeight.validate(v)
	c.Annotations.validate(v, false)
	return v.err()
}

func (c *ScatterPlot) document() *wire.Object {
	return c.writeDocument(TypeScatter, func(s sections) {
		vis := s.visualize
		writeObject(vis, "x-axis", c.XAxis)
		wire.SetEnum(vis, "x-format", c.XFormat)
		wire.SetEnum(vis, "x-pos", c.XPosition)
		wire.SetEnum(vis, "x-grid-lines", c.XGridLines)
		writeObject(vis, "y-axis", c.YAxis)
		wire.SetEnum(vis, "y-format", c.YFormat)
		wire.SetEnum(vis, "y-pos", c.YPosition)
		wire.SetEnum(vis, "y-grid-lines", c.YGridLines)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		wire.Set(vis, "opacity", c.Opacity)
		wire.Set(vis, "outlines", c.Outlines)
		wire.Set(vis, "color-outline", c.ColorOutline)
		wire.Set(vis, "show-color-key", c.ShowColorKey)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "color-by-column", c.ColorByColumn)
		wire.SetEnum(vis, "size", c.Size)
		wire.Set(vis, "fixed-size", c.FixedSize)
		wire.Set(vis, "max-size", c.MaxSize)
		wire.Set(vis, "responsive-symbol-size", c.ResponsiveSymbolSize)
		c.SizeLegend.write(vis)
		wire.SetEnum(vis, "shape", c.Shape)
		wire.SetEnum(vis, "fixed-shape", c.FixedShape)
		wire.Set(vis, "regression", c.Regression)
		wire.SetEnum(vis, "regression-method", c.RegressionMethod)
		c.PlotHeight.write(vis)
		c.Annotations.write(vis)
		wire.Set(vis, "custom-lines", c.CustomLines)
		wire.Set(vis, "auto-labels", c.AutoLabels)
		wire.SetStrings(vis, "add-labels", c.AddLabels)
		wire.Set(vis, "highlight-labeled", c.HighlightLabeled)
		writeObject(vis, "tooltip", c.Tooltip)

		wire.Set(s.axes, "x", c.XColumn)
		wire.Set(s.axes, "y", c.YColumn)
		wire.Set(s.axes, "size", c.SizeColumn)
		wire.Set(s.axes, "shape", c.ShapeColumn)
		wire.Set(s.axes, "labels", c.LabelColumn)
		wire.Set(s.axes, "color", c.ColorColumn)
	})
}

func (c *ScatterPlot) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *ScatterPlot) FromWire(data []byte) error {
	*c = ScatterPlot{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeScatter, func(r reader) {
		vis := r.visualize
		readObject(vis, "x-axis", &c.XAxis)
		wire.StringEnum(vis, "x-format", &c.XFormat)
		wire.StringEnum(vis, "x-pos", &c.XPosition)
		wire.StringEnum(vis, "x-grid-lines", &c.XGridLines)
		readObject(vis, "y-axis", &c.YAxis)
		wire.StringEnum(vis, "y-format", &c.YFormat)
		wire.StringEnum(vis, "y-pos", &c.YPosition)
		wire.StringEnum(vis, "y-grid-lines", &c.YGridLines)
		vis.Scalar("base-color", &c.BaseColor)
		vis.Float("opacity", &c.Opacity)
		vis.Bool("outlines", &c.Outlines)
		vis.String("color-outline", &c.ColorOutline)
		vis.Bool("show-color-key", &c.ShowColorKey)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.Bool("color-by-column", &c.ColorByColumn)
		wire.StringEnum(vis, "size", &c.Size)
		vis.Float("fixed-size", &c.FixedSize)
		vis.Float("max-size", &c.MaxSize)
		vis.Bool("responsive-symbol-size", &c.ResponsiveSymbolSize)
		c.SizeLegend.read(vis)
		wire.StringEnum(vis, "shape", &c.Shape)
		wire.StringEnum(vis, "fixed-shape", &c.FixedShape)
		vis.Bool("regression", &c.Regression)
		wire.StringEnum(vis, "regression-method", &c.RegressionMethod)
		c.PlotHeight.read(vis)
		c.Annotations.read(vis)
		vis.String("custom-lines", &c.CustomLines)
		vis.Bool("auto-labels", &c.AutoLabels)
		vis.Strings("add-labels", &c.AddLabels)
		vis.Bool("highlight-labeled", &c.HighlightLabeled)
		readObject(vis, "tooltip", &c.Tooltip)

		r.axes.String("x", &c.XColumn)
		r.axes.String("y", &c.YColumn)
		r.axes.String("size", &c.SizeColumn)
		r.axes.String("shape", &c.ShapeColumn)
		r.axes.String("labels", &c.LabelColumn)
		r.axes.String("color", &c.ColorColumn)
	})
}

func (c *ScatterPlot) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *ScatterPlot) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
