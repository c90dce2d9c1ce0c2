// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// Grid sets the x-grid and y-grid display. Boolean values in fetched
// documents read as on and off and are written back as booleans.
type Grid struct {
	X optional.Option[structs.GridDisplay]
	Y optional.Option[structs.GridDisplay]

	xBool, yBool bool
}

func gridDisplayFromWire(v any) structs.GridDisplay {
	if b, ok := v.(bool); ok {
		if b {
			return structs.GridDisplayOn
		}
		return structs.GridDisplayOff
	}
	return structs.FromWire[structs.GridDisplay](v)
}

func isOnOff(g structs.GridDisplay) bool {
	return g == structs.GridDisplayOn || g == structs.GridDisplayOff
}

// readGridDisplay reads key and reports whether it was stored as a boolean
func readGridDisplay(s wire.Section, key string, dst *optional.Option[structs.GridDisplay]) bool {
	asBool := s.Peek(key).IsBool()
	wire.Enum(s, key, dst, gridDisplayFromWire)
	return asBool && dst.Has()
}

// writeGridDisplay stores on and off as booleans when asBool is set
func writeGridDisplay(o *wire.Object, key string, v optional.Option[structs.GridDisplay], asBool bool) {
	if g, ok := v.Get(); ok && asBool && isOnOff(g) {
		o.Set(key, g == structs.GridDisplayOn)
		return
	}
	wire.SetEnum(o, key, v)
}

func (g *Grid) writeX(o *wire.Object) { writeGridDisplay(o, "x-grid", g.X, g.xBool) }
func (g *Grid) writeY(o *wire.Object) { writeGridDisplay(o, "y-grid", g.Y, g.yBool) }

func (g *Grid) write(o *wire.Object) {
	g.writeX(o)
	g.writeY(o)
}

func (g *Grid) read(s wire.Section) {
	g.xBool = readGridDisplay(s, "x-grid", &g.X)
	g.yBool = readGridDisplay(s, "y-grid", &g.Y)
}

func (g *Grid) validate() {
	checkEnum("x-grid", g.X)
	checkEnum("y-grid", g.Y)
}

// GridFormat formats the axis labels
type GridFormat struct {
	X optional.Option[structs.Format]
	Y optional.Option[structs.Format]
}

func (g *GridFormat) write(o *wire.Object) {
	wire.SetEnum(o, "x-grid-format", g.X)
	wire.SetEnum(o, "y-grid-format", g.Y)
}

func (g *GridFormat) read(s wire.Section) {
	wire.StringEnum(s, "x-grid-format", &g.X)
	wire.StringEnum(s, "y-grid-format", &g.Y)
}

// CustomRanges fixes the axis extents. A bound left Empty is chosen
// automatically.
type CustomRanges struct {
	X optional.Option[wire.Range]
	Y optional.Option[wire.Range]
}

func (c *CustomRanges) write(o *wire.Object) {
	c.writeAs(o, "custom-range-x", "custom-range-y")
}

func (c *CustomRanges) read(s wire.Section) {
	c.readAs(s, "custom-range-x", "custom-range-y")
}

func (c *CustomRanges) writeAs(o *wire.Object, xKey, yKey string) {
	wire.SetRange(o, xKey, c.X)
	wire.SetRange(o, yKey, c.Y)
}

func (c *CustomRanges) readAs(s wire.Section, xKey, yKey string) {
	s.Range(xKey, &c.X)
	s.Range(yKey, &c.Y)
}

// CustomTicks places axis ticks at fixed values
type CustomTicks struct {
	X optional.Option[[]wire.Scalar]
	Y optional.Option[[]wire.Scalar]
}

func (c *CustomTicks) write(o *wire.Object) {
	c.writeAs(o, "custom-ticks-x", "custom-ticks-y")
}

func (c *CustomTicks) read(s wire.Section) {
	c.readAs(s, "custom-ticks-x", "custom-ticks-y")
}

func (c *CustomTicks) writeAs(o *wire.Object, xKey, yKey string) {
	wire.SetTicks(o, xKey, c.X)
	wire.SetTicks(o, yKey, c.Y)
}

func (c *CustomTicks) readAs(s wire.Section, xKey, yKey string) {
	s.Ticks(xKey, &c.X)
	s.Ticks(yKey, &c.Y)
}

// Annotations are the text and range annotations of a chart
type Annotations struct {
	Text   optional.Option[[]TextAnnotation]
	Ranges optional.Option[[]RangeAnnotation]
}

func (a *Annotations) write(o *wire.Object) {
	writeList(o, "text-annotations", a.Text)
	writeList(o, "range-annotations", a.Ranges)
}

func (a *Annotations) read(s wire.Section) {
	readList(s, "text-annotations", &a.Text)
	readList(s, "range-annotations", &a.Ranges)
}

func (a *Annotations) validate(v *validation, plots bool) {
	validateList(v, "text-annotations", a.Text, func(v *validation, field string, t *TextAnnotation) {
		t.validate(v, field, plots)
	})
	validateList(v, "range-annotations", a.Ranges, func(v *validation, field string, r *RangeAnnotation) {
		r.validate(v, field, plots)
	})
}

// PlotHeight sizes the plot area either in pixels or relative to its width
type PlotHeight struct {
	Mode  optional.Option[structs.PlotHeightMode]
	Fixed optional.Option[float64]
	Ratio optional.Option[float64]
}

func (p *PlotHeight) write(o *wire.Object) {
	wire.SetEnum(o, "plotHeightMode", p.Mode)
	wire.Set(o, "plotHeightFixed", p.Fixed)
	wire.Set(o, "plotHeightRatio", p.Ratio)
}

func (p *PlotHeight) read(s wire.Section) {
	wire.StringEnum(s, "plotHeightMode", &p.Mode)
	s.Float("plotHeightFixed", &p.Fixed)
	s.Float("plotHeightRatio", &p.Ratio)
}

func (p *PlotHeight) validate(v *validation) {
	checkEnum("plotHeightMode", p.Mode)
	v.atLeast("plotHeightFixed", p.Fixed, 0)
	v.atLeast("plotHeightRatio", p.Ratio, 0)
}

// AxisLabels places the value axis labels of column charts
type AxisLabels struct {
	Enabled optional.Option[bool]
	// Placement off is stored as an empty string
	Placement optional.Option[structs.GridLabelPosition]
	Alignment optional.Option[structs.GridLabelAlign]
	Extras    wire.Extras
}

// HiddenAxisLabels returns labels switched off
func HiddenAxisLabels() AxisLabels {
	return AxisLabels{
		Enabled:   optional.Some(false),
		Placement: optional.Some(structs.GridLabelPositionOff),
	}
}

func (a *AxisLabels) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "enabled", a.Enabled)
	wire.SetEnum(o, "alignment", a.Alignment)
	setBlankable(o, "placement", a.Placement, structs.GridLabelPositionOff)
	a.Extras.Apply(o)
	return o
}

func (a *AxisLabels) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	s.Bool("enabled", &a.Enabled)
	wire.StringEnum(s, "alignment", &a.Alignment)
	readBlankable(s, "placement", &a.Placement, structs.GridLabelPositionOff)
	a.Extras = d.Extras()
}

// setBlankable stores off as an empty string
func setBlankable[E interface {
	~string
	structs.Enum
}](o *wire.Object, key string, v optional.Option[E], off E) {
	if x, ok := v.Get(); ok && x == off {
		o.Set(key, "")
		return
	}
	wire.SetEnum(o, key, v)
}

// readBlankable reads an empty string as off
func readBlankable[E interface {
	~string
	structs.Enum
}](s wire.Section, key string, dst *optional.Option[E], off E) {
	wire.StringEnum(s, key, dst)
	if x, ok := dst.Get(); ok && x == "" {
		*dst = optional.Some(off)
	}
}

// ColumnValueLabels configures value labels on column charts
type ColumnValueLabels struct {
	// Show off is stored as an empty string
	Show      optional.Option[structs.ValueLabelDisplay]
	Format    optional.Option[structs.Format]
	Enabled   optional.Option[bool]
	Placement optional.Option[structs.ValueLabelPlacement]
	Extras    wire.Extras
}

// HiddenValueLabels returns value labels switched off
func HiddenValueLabels() ColumnValueLabels {
	return ColumnValueLabels{
		Show:    optional.Some(structs.ValueLabelDisplayOff),
		Enabled: optional.Some(false),
	}
}

func (c *ColumnValueLabels) validate(v *validation, field string) {
	checkEnum(field+".show", c.Show)
	checkEnum(field+".placement", c.Placement)
}

func (c *ColumnValueLabels) toWire() *wire.Object {
	o := wire.NewObject()
	setBlankable(o, "show", c.Show, structs.ValueLabelDisplayOff)
	wire.SetEnum(o, "format", c.Format)
	wire.Set(o, "enabled", c.Enabled)
	wire.SetEnum(o, "placement", c.Placement)
	c.Extras.Apply(o)
	return o
}

func (c *ColumnValueLabels) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	readBlankable(s, "show", &c.Show, structs.ValueLabelDisplayOff)
	wire.StringEnum(s, "format", &c.Format)
	s.Bool("enabled", &c.Enabled)
	wire.StringEnum(s, "placement", &c.Placement)
	c.Extras = d.Extras()
}

// PanelGridLines is the x grid drawn in every multiple column panel
type PanelGridLines struct {
	Enabled optional.Option[bool]
	// Type off is stored as an empty string
	Type   optional.Option[structs.GridDisplay]
	Extras wire.Extras
}

func (p *PanelGridLines) toWire() *wire.Object {
	o := wire.NewObject()
	setBlankable(o, "type", p.Type, structs.GridDisplayOff)
	wire.Set(o, "enabled", p.Enabled)
	p.Extras.Apply(o)
	return o
}

func (p *PanelGridLines) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	readBlankable(s, "type", &p.Type, structs.GridDisplayOff)
	s.Bool("enabled", &p.Enabled)
	p.Extras = d.Extras()
}

// writeObject stores a nested value object when set
func writeObject[T any, P interface {
	*T
	valueObject
}](o *wire.Object, key string, v optional.Option[T]) {
	if x, ok := v.Get(); ok {
		o.Set(key, P(&x).toWire())
	}
}

// readObject reads a nested value object when key holds an object
func readObject[T any, P interface {
	*T
	valueObject
}](s wire.Section, key string, dst *optional.Option[T]) {
	r := s.Peek(key)
	if !r.IsObject() {
		return
	}
	var x T
	P(&x).fromWire(wire.DocOf(r), "")
	*dst = optional.Some(x)
	s.Consume(key)
}

// Sorting orders arrows or panels
type Sorting[E interface {
	~string
	structs.Enum
}] struct {
	Enabled optional.Option[bool]
	Reverse optional.Option[bool]
	By      optional.Option[E]
	Extras  wire.Extras
}

func (s *Sorting[E]) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "enabled", s.Enabled)
	wire.Set(o, "reverse", s.Reverse)
	wire.SetEnum(o, "by", s.By)
	s.Extras.Apply(o)
	return o
}

func (s *Sorting[E]) fromWire(d *wire.Doc, _ string) {
	r := d.Root()
	r.Bool("enabled", &s.Enabled)
	r.Bool("reverse", &s.Reverse)
	wire.StringEnum(r, "by", &s.By)
	s.Extras = d.Extras()
}
