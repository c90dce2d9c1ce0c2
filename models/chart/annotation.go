// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/tidwall/gjson"
)

// ConnectorLine joins a text annotation to the point it describes
type ConnectorLine struct {
	// Disabled stores the line switched off, other fields are kept
	Disabled      bool
	Type          optional.Option[structs.ConnectorLineType]
	Circle        optional.Option[bool]
	Stroke        optional.Option[structs.StrokeWidth]
	ArrowHead     optional.Option[structs.ArrowHead]
	CircleStyle   optional.Option[structs.StrokeType]
	CircleRadius  optional.Option[float64]
	InheritColor  optional.Option[bool]
	TargetPadding optional.Option[float64]
	Extras        wire.Extras

	// implicit is set when a fetched object had no enabled key
	implicit bool
}

func (c *ConnectorLine) validate(v *validation, field string) {
	checkEnum(field+".type", c.Type)
	checkEnum(field+".stroke", c.Stroke)
	checkEnum(field+".arrowHead", c.ArrowHead)
	onlyEnum(v, field+".circleStyle", c.CircleStyle, structs.StrokeTypeSolid, structs.StrokeTypeDashed)
	v.atLeast(field+".circleRadius", c.CircleRadius, 0)
	v.atLeast(field+".targetPadding", c.TargetPadding, 0)
}

func (c *ConnectorLine) toWire() *wire.Object {
	o := wire.NewObject()
	wire.SetEnum(o, "type", c.Type)
	wire.Set(o, "circle", c.Circle)
	wire.SetEnum(o, "stroke", c.Stroke)
	if !c.implicit || c.Disabled {
		o.Set("enabled", !c.Disabled)
	}
	wire.SetEnum(o, "arrowHead", c.ArrowHead)
	wire.SetEnum(o, "circleStyle", c.CircleStyle)
	wire.Set(o, "circleRadius", c.CircleRadius)
	wire.Set(o, "inheritColor", c.InheritColor)
	wire.Set(o, "targetPadding", c.TargetPadding)
	c.Extras.Apply(o)
	return o
}

func (c *ConnectorLine) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	var enabled optional.Option[bool]
	s.Bool("enabled", &enabled)
	c.Disabled = enabled.Has() && !enabled.Value()
	c.implicit = !enabled.Has()
	wire.StringEnum(s, "type", &c.Type)
	s.Bool("circle", &c.Circle)
	wire.Enum(s, "stroke", &c.Stroke, structs.StrokeWidthFromWire)
	wire.Enum(s, "arrowHead", &c.ArrowHead, structs.ArrowHeadFromWire)
	wire.StringEnum(s, "circleStyle", &c.CircleStyle)
	s.Float("circleRadius", &c.CircleRadius)
	s.Bool("inheritColor", &c.InheritColor)
	s.Float("targetPadding", &c.TargetPadding)
	c.Extras = d.Extras()
}

// TextAnnotation is a label placed on the chart
type TextAnnotation struct {
	ID     optional.Option[string]
	Text   optional.Option[string]
	X      optional.Option[wire.Scalar]
	Y      optional.Option[wire.Scalar]
	DX     optional.Option[float64]
	DY     optional.Option[float64]
	Bold   optional.Option[bool]
	Italic optional.Option[bool]
	// Underline is written as "underline"
	Underline optional.Option[bool]
	Size      optional.Option[float64]
	Align     optional.Option[structs.TextAlign]
	// Color "" is sent as false, which selects the theme color
	Color optional.Option[string]
	// Width is a percentage of the chart width
	Width          optional.Option[float64]
	Outline        optional.Option[bool]
	ShowMobile     optional.Option[bool]
	ShowDesktop    optional.Option[bool]
	MobileFallback optional.Option[bool]
	ConnectorLine  optional.Option[ConnectorLine]

	// Plot and ShowInAllPlots are only understood by multiple column charts
	Plot           optional.Option[string]
	ShowInAllPlots optional.Option[bool]

	Extras wire.Extras
}

// NewTextAnnotation returns an annotation with text at x, y
func NewTextAnnotation(text string, x, y wire.Scalar) TextAnnotation {
	return TextAnnotation{Text: optional.Some(text), X: optional.Some(x), Y: optional.Some(y)}
}

// Validate checks the annotation on its own
func (a *TextAnnotation) Validate() error {
	v := newValidation(nil)
	a.validate(v, "text-annotation", false)
	return v.err()
}

func (a *TextAnnotation) validate(v *validation, field string, plots bool) {
	v.required(field+".text", a.Text.Has() && a.Text.Value() != "")
	v.required(field+".position.x", a.X.Has())
	v.required(field+".position.y", a.Y.Has())
	v.atLeast(field+".size", a.Size, 0)
	v.between(field+".width", a.Width, 0, 100)
	v.color(field+".color", a.Color)
	checkEnum(field+".align", a.Align)
	if cl, ok := a.ConnectorLine.Get(); ok {
		cl.validate(v, field+".connectorLine")
	}
	if !plots && (a.Plot.Has() || a.ShowInAllPlots.Has()) {
		v.fail(field+".plot", "only multiple column charts place annotations in plots")
	}
}

func (a *TextAnnotation) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "id", a.ID)
	wire.Set(o, "text", a.Text)
	pos := wire.NewObject()
	if x, ok := a.X.Get(); ok {
		pos.Set("x", x.Wire())
	}
	if y, ok := a.Y.Get(); ok {
		pos.Set("y", y.Wire())
	}
	wire.Set(pos, "plot", a.Plot)
	wire.SetObject(o, "position", pos)
	wire.Set(o, "dx", a.DX)
	wire.Set(o, "dy", a.DY)
	wire.Set(o, "bold", a.Bold)
	wire.Set(o, "italic", a.Italic)
	wire.Set(o, "underline", a.Underline)
	wire.Set(o, "size", a.Size)
	wire.SetEnum(o, "align", a.Align)
	if c, ok := a.Color.Get(); ok {
		if c == "" {
			o.Set("color", false)
		} else {
			o.Set("color", c)
		}
	}
	wire.Set(o, "width", a.Width)
	wire.Set(o, "bg", a.Outline)
	wire.Set(o, "showMobile", a.ShowMobile)
	wire.Set(o, "showDesktop", a.ShowDesktop)
	wire.Set(o, "mobileFallback", a.MobileFallback)
	wire.Set(o, "showInAllPlots", a.ShowInAllPlots)
	if cl, ok := a.ConnectorLine.Get(); ok {
		o.Set("connectorLine", cl.toWire())
	}
	a.Extras.Apply(o)
	return o
}

func (a *TextAnnotation) fromWire(d *wire.Doc, key string) {
	s := d.Root()
	s.String("id", &a.ID)
	if !a.ID.Has() && key != "" {
		a.ID = optional.Some(key)
	}
	s.String("text", &a.Text)
	pos := s.Object("position")
	pos.Scalar("x", &a.X)
	pos.Scalar("y", &a.Y)
	pos.String("plot", &a.Plot)
	s.Float("dx", &a.DX)
	s.Float("dy", &a.DY)
	s.Bool("bold", &a.Bold)
	s.Bool("italic", &a.Italic)
	s.Bool("underline", &a.Underline)
	s.Float("size", &a.Size)
	wire.StringEnum(s, "align", &a.Align)
	if c := s.Peek("color"); c.Exists() && c.Type == gjson.False {
		a.Color = optional.Some("")
		s.Consume("color")
	} else {
		s.String("color", &a.Color)
	}
	s.Float("width", &a.Width)
	s.Bool("bg", &a.Outline)
	s.Bool("showMobile", &a.ShowMobile)
	s.Bool("showDesktop", &a.ShowDesktop)
	s.Bool("mobileFallback", &a.MobileFallback)
	s.Bool("showInAllPlots", &a.ShowInAllPlots)
	if cl := s.Peek("connectorLine"); cl.IsObject() {
		var line ConnectorLine
		line.fromWire(wire.DocOf(cl), "")
		a.ConnectorLine = optional.Some(line)
		s.Consume("connectorLine")
	}
	a.Extras = d.Extras()
}

// RangeAnnotation highlights a band or a line on one axis
type RangeAnnotation struct {
	ID          optional.Option[string]
	Type        optional.Option[structs.RangeAnnotationType]
	Display     optional.Option[structs.RangeAnnotationDisplay]
	Color       optional.Option[string]
	Opacity     optional.Option[float64]
	StrokeType  optional.Option[structs.StrokeType]
	StrokeWidth optional.Option[structs.StrokeWidth]
	X0          optional.Option[wire.Scalar]
	X1          optional.Option[wire.Scalar]
	Y0          optional.Option[wire.Scalar]
	Y1          optional.Option[wire.Scalar]

	// Plot and ShowInAllPlots are only understood by multiple column charts
	Plot           optional.Option[string]
	ShowInAllPlots optional.Option[bool]

	Extras wire.Extras
}

func newRange(t structs.RangeAnnotationType, d structs.RangeAnnotationDisplay) RangeAnnotation {
	return RangeAnnotation{Type: optional.Some(t), Display: optional.Some(d)}
}

// NewXRange highlights the band between x0 and x1
func NewXRange(x0, x1 wire.Scalar) RangeAnnotation {
	r := newRange(structs.RangeAnnotationTypeX, structs.RangeAnnotationDisplayRange)
	r.X0, r.X1 = optional.Some(x0), optional.Some(x1)
	return r
}

// NewYRange highlights the band between y0 and y1
func NewYRange(y0, y1 wire.Scalar) RangeAnnotation {
	r := newRange(structs.RangeAnnotationTypeY, structs.RangeAnnotationDisplayRange)
	r.Y0, r.Y1 = optional.Some(y0), optional.Some(y1)
	return r
}

// NewXLine draws a vertical line at x0
func NewXLine(x0 wire.Scalar) RangeAnnotation {
	r := newRange(structs.RangeAnnotationTypeX, structs.RangeAnnotationDisplayLine)
	r.X0 = optional.Some(x0)
	return r
}

// NewYLine draws a horizontal line at y0
func NewYLine(y0 wire.Scalar) RangeAnnotation {
	r := newRange(structs.RangeAnnotationTypeY, structs.RangeAnnotationDisplayLine)
	r.Y0 = optional.Some(y0)
	return r
}

// Validate checks the annotation on its own
func (r *RangeAnnotation) Validate() error {
	v := newValidation(nil)
	r.validate(v, "range-annotation", false)
	return v.err()
}

func (r *RangeAnnotation) validate(v *validation, field string, plots bool) {
	v.between(field+".opacity", r.Opacity, 0, 100)
	v.color(field+".color", r.Color)
	checkEnum(field+".type", r.Type)
	checkEnum(field+".display", r.Display)
	checkEnum(field+".strokeType", r.StrokeType)
	checkEnum(field+".strokeWidth", r.StrokeWidth)

	isRange := r.Display.ValueOrDefault(structs.RangeAnnotationDisplayRange) == structs.RangeAnnotationDisplayRange
	switch r.Type.ValueOrDefault(structs.RangeAnnotationTypeX) {
	case structs.RangeAnnotationTypeX:
		v.required(field+".position.x0", r.X0.Has())
		if isRange {
			v.required(field+".position.x1", r.X1.Has())
		}
	case structs.RangeAnnotationTypeY:
		v.required(field+".position.y0", r.Y0.Has())
		if isRange {
			v.required(field+".position.y1", r.Y1.Has())
		}
	default:
		if !r.X0.Has() && !r.X1.Has() && !r.Y0.Has() && !r.Y1.Has() {
			v.fail(field+".position", "at least one bound is required")
		}
	}
	if !plots && (r.Plot.Has() || r.ShowInAllPlots.Has()) {
		v.fail(field+".plot", "only multiple column charts place annotations in plots")
	}
}

func (r *RangeAnnotation) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "id", r.ID)
	wire.SetEnum(o, "type", r.Type)
	wire.SetEnum(o, "display", r.Display)
	wire.Set(o, "color", r.Color)
	wire.Set(o, "opacity", r.Opacity)
	pos := wire.NewObject()
	for _, b := range []struct {
		key string
		v   optional.Option[wire.Scalar]
	}{{"x0", r.X0}, {"x1", r.X1}, {"y0", r.Y0}, {"y1", r.Y1}} {
		if s, ok := b.v.Get(); ok {
			pos.Set(b.key, s.Wire())
		}
	}
	wire.Set(pos, "plot", r.Plot)
	wire.SetObject(o, "position", pos)
	wire.SetEnum(o, "strokeType", r.StrokeType)
	wire.SetEnum(o, "strokeWidth", r.StrokeWidth)
	wire.Set(o, "showInAllPlots", r.ShowInAllPlots)
	r.Extras.Apply(o)
	return o
}

func (r *RangeAnnotation) fromWire(d *wire.Doc, key string) {
	s := d.Root()
	s.String("id", &r.ID)
	if !r.ID.Has() && key != "" {
		r.ID = optional.Some(key)
	}
	wire.StringEnum(s, "type", &r.Type)
	wire.StringEnum(s, "display", &r.Display)
	s.String("color", &r.Color)
	s.Float("opacity", &r.Opacity)
	pos := s.Object("position")
	pos.Scalar("x0", &r.X0)
	pos.Scalar("x1", &r.X1)
	pos.Scalar("y0", &r.Y0)
	pos.Scalar("y1", &r.Y1)
	pos.String("plot", &r.Plot)
	wire.StringEnum(s, "strokeType", &r.StrokeType)
	wire.Enum(s, "strokeWidth", &r.StrokeWidth, structs.StrokeWidthFromWire)
	s.Bool("showInAllPlots", &r.ShowInAllPlots)
	r.Extras = d.Extras()
}
