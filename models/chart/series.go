// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// ColumnFormat overrides how one data column is typed and formatted
type ColumnFormat struct {
	Column        string
	Type          optional.Option[structs.ColumnType]
	Ignore        optional.Option[bool]
	NumberDivisor optional.Option[structs.NumberDivisor]
	NumberFormat  optional.Option[structs.Format]
	NumberPrepend optional.Option[string]
	NumberAppend  optional.Option[string]
	Extras        wire.Extras
}

func (f *ColumnFormat) wireKey() string { return f.Column }

func (f *ColumnFormat) validate(v *validation, field string) {
	v.required(field+".column", f.Column != "")
	v.columnName(field+".column", f.Column)
	checkEnum(field+".type", f.Type)
	checkEnum(field+".number-divisor", f.NumberDivisor)
}

func (f *ColumnFormat) toWire() *wire.Object {
	o := wire.NewObject()
	wire.SetEnum(o, "type", f.Type)
	wire.Set(o, "ignore", f.Ignore)
	wire.SetEnum(o, "number-divisor", f.NumberDivisor)
	wire.SetEnum(o, "number-format", f.NumberFormat)
	wire.Set(o, "number-prepend", f.NumberPrepend)
	wire.Set(o, "number-append", f.NumberAppend)
	f.Extras.Apply(o)
	return o
}

func (f *ColumnFormat) fromWire(d *wire.Doc, key string) {
	s := d.Root()
	f.Column = key
	if f.Column == "" {
		var col optional.Option[string]
		s.String("column", &col)
		f.Column = col.Value()
	}
	wire.StringEnum(s, "type", &f.Type)
	s.Bool("ignore", &f.Ignore)
	wire.StringEnum(s, "number-divisor", &f.NumberDivisor)
	wire.StringEnum(s, "number-format", &f.NumberFormat)
	s.String("number-prepend", &f.NumberPrepend)
	s.String("number-append", &f.NumberAppend)
	f.Extras = d.Extras()
}

// LineSymbol draws markers on a line series
type LineSymbol struct {
	Disabled bool
	Shape    optional.Option[structs.SymbolShape]
	Style    optional.Option[structs.SymbolStyle]
	On       optional.Option[structs.SymbolDisplay]
	Size     optional.Option[float64]
	Opacity  optional.Option[float64]
	Extras   wire.Extras

	// implicit is set when a fetched object had no enabled key
	implicit bool
}

func (l *LineSymbol) validate(v *validation, field string) {
	checkEnum(field+".shape", l.Shape)
	checkEnum(field+".style", l.Style)
	checkEnum(field+".on", l.On)
	v.atLeast(field+".size", l.Size, 0)
	v.between(field+".opacity", l.Opacity, 0, 1)
}

func (l *LineSymbol) toWire() *wire.Object {
	o := wire.NewObject()
	if !l.implicit || l.Disabled {
		o.Set("enabled", !l.Disabled)
	}
	wire.SetEnum(o, "shape", l.Shape)
	wire.SetEnum(o, "style", l.Style)
	wire.SetEnum(o, "on", l.On)
	wire.Set(o, "size", l.Size)
	wire.Set(o, "opacity", l.Opacity)
	l.Extras.Apply(o)
	return o
}

func (l *LineSymbol) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	var enabled optional.Option[bool]
	s.Bool("enabled", &enabled)
	l.Disabled = enabled.Has() && !enabled.Value()
	l.implicit = !enabled.Has()
	wire.StringEnum(s, "shape", &l.Shape)
	wire.StringEnum(s, "style", &l.Style)
	wire.StringEnum(s, "on", &l.On)
	s.Float("size", &l.Size)
	s.Float("opacity", &l.Opacity)
	l.Extras = d.Extras()
}

// LineValueLabel labels the values of a line series
type LineValueLabel struct {
	Disabled       bool
	First          optional.Option[bool]
	Last           optional.Option[bool]
	ShowCircles    optional.Option[bool]
	MaxInnerLabels optional.Option[int]
	Extras         wire.Extras

	// implicit is set when a fetched object had no enabled key
	implicit bool
}

func (l *LineValueLabel) validate(v *validation, field string) {
	v.atLeastInt(field+".maxInnerLabels", l.MaxInnerLabels, 0)
}

func (l *LineValueLabel) toWire() *wire.Object {
	o := wire.NewObject()
	if !l.implicit || l.Disabled {
		o.Set("enabled", !l.Disabled)
	}
	wire.Set(o, "first", l.First)
	wire.Set(o, "last", l.Last)
	wire.Set(o, "showCircles", l.ShowCircles)
	wire.Set(o, "maxInnerLabels", l.MaxInnerLabels)
	l.Extras.Apply(o)
	return o
}

func (l *LineValueLabel) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	var enabled optional.Option[bool]
	s.Bool("enabled", &enabled)
	l.Disabled = enabled.Has() && !enabled.Value()
	l.implicit = !enabled.Has()
	s.Bool("first", &l.First)
	s.Bool("last", &l.Last)
	s.Bool("showCircles", &l.ShowCircles)
	s.Int("maxInnerLabels", &l.MaxInnerLabels)
	l.Extras = d.Extras()
}

// Line configures the series drawn for one data column
type Line struct {
	Column               string
	Title                optional.Option[string]
	Interpolation        optional.Option[structs.LineInterpolation]
	Width                optional.Option[structs.LineWidth]
	Dash                 optional.Option[structs.LineDash]
	ColorKey             optional.Option[bool]
	DirectLabel          optional.Option[bool]
	Outline              optional.Option[bool]
	ConnectMissingPoints optional.Option[bool]
	Symbols              optional.Option[LineSymbol]
	ValueLabels          optional.Option[LineValueLabel]
	Extras               wire.Extras
}

func (l *Line) wireKey() string { return l.Column }

func (l *Line) validate(v *validation, field string) {
	v.required(field+".column", l.Column != "")
	v.columnName(field+".column", l.Column)
	checkEnum(field+".interpolation", l.Interpolation)
	checkEnum(field+".width", l.Width)
	checkEnum(field+".dash", l.Dash)
	if sym, ok := l.Symbols.Get(); ok {
		sym.validate(v, field+".symbols")
	}
	if vl, ok := l.ValueLabels.Get(); ok {
		vl.validate(v, field+".valueLabels")
	}
}

func (l *Line) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "title", l.Title)
	wire.SetEnum(o, "interpolation", l.Interpolation)
	wire.SetEnum(o, "width", l.Width)
	wire.SetEnum(o, "dash", l.Dash)
	wire.Set(o, "colorKey", l.ColorKey)
	wire.Set(o, "directLabel", l.DirectLabel)
	wire.Set(o, "bgStroke", l.Outline)
	wire.Set(o, "connectMissingPoints", l.ConnectMissingPoints)
	writeObject(o, "symbols", l.Symbols)
	writeObject(o, "valueLabels", l.ValueLabels)
	l.Extras.Apply(o)
	return o
}

func (l *Line) fromWire(d *wire.Doc, key string) {
	s := d.Root()
	l.Column = key
	s.String("title", &l.Title)
	wire.StringEnum(s, "interpolation", &l.Interpolation)
	wire.StringEnum(s, "width", &l.Width)
	wire.StringEnum(s, "dash", &l.Dash)
	s.Bool("colorKey", &l.ColorKey)
	s.Bool("directLabel", &l.DirectLabel)
	s.Bool("bgStroke", &l.Outline)
	s.Bool("connectMissingPoints", &l.ConnectMissingPoints)
	readObject(s, "symbols", &l.Symbols)
	readObject(s, "valueLabels", &l.ValueLabels)
	l.Extras = d.Extras()
}

// AreaFill shades the area between two line series
type AreaFill struct {
	ID             optional.Option[string]
	From           optional.Option[string]
	To             optional.Option[string]
	Color          optional.Option[string]
	Opacity        optional.Option[float64]
	UseMixedColors optional.Option[bool]
	ColorNegative  optional.Option[string]
	Interpolation  optional.Option[structs.LineInterpolation]
	Extras         wire.Extras
}

func (a *AreaFill) validate(v *validation, field string) {
	v.required(field+".from", a.From.Has())
	v.required(field+".to", a.To.Has())
	v.column(field+".from", a.From)
	v.column(field+".to", a.To)
	v.color(field+".color", a.Color)
	v.color(field+".colorNegative", a.ColorNegative)
	v.between(field+".opacity", a.Opacity, 0, 1)
	checkEnum(field+".interpolation", a.Interpolation)
}

func (a *AreaFill) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "id", a.ID)
	wire.Set(o, "from", a.From)
	wire.Set(o, "to", a.To)
	wire.Set(o, "color", a.Color)
	wire.Set(o, "opacity", a.Opacity)
	wire.Set(o, "useMixedColors", a.UseMixedColors)
	wire.Set(o, "colorNegative", a.ColorNegative)
	wire.SetEnum(o, "interpolation", a.Interpolation)
	a.Extras.Apply(o)
	return o
}

func (a *AreaFill) fromWire(d *wire.Doc, key string) {
	s := d.Root()
	s.String("id", &a.ID)
	if !a.ID.Has() && key != "" {
		a.ID = optional.Some(key)
	}
	s.String("from", &a.From)
	s.String("to", &a.To)
	s.String("color", &a.Color)
	s.Float("opacity", &a.Opacity)
	s.Bool("useMixedColors", &a.UseMixedColors)
	s.String("colorNegative", &a.ColorNegative)
	wire.StringEnum(s, "interpolation", &a.Interpolation)
	a.Extras = d.Extras()
}

// BarOverlay draws a value or range from other columns over the bars
type BarOverlay struct {
	ID             optional.Option[string]
	Type           optional.Option[structs.OverlayType]
	Title          optional.Option[string]
	From           optional.Option[string]
	To             optional.Option[string]
	Color          optional.Option[string]
	Opacity        optional.Option[float64]
	Pattern        optional.Option[structs.OverlayPattern]
	ShowInColorKey optional.Option[bool]
	LabelDirectly  optional.Option[bool]
	Extras         wire.Extras
}

func (b *BarOverlay) validate(v *validation, field string) {
	v.required(field+".to", b.To.Has())
	v.column(field+".to", b.To)
	if b.Type.ValueOrDefault(structs.OverlayTypeValue) == structs.OverlayTypeRange {
		v.required(field+".from", b.From.Has())
	}
	if from, ok := b.From.Get(); ok && from != "--zero-baseline--" {
		v.columnName(field+".from", from)
	}
	v.color(field+".color", b.Color)
	v.between(field+".opacity", b.Opacity, 0, 1)
	checkEnum(field+".type", b.Type)
	checkEnum(field+".pattern", b.Pattern)
}

func (b *BarOverlay) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "id", b.ID)
	wire.SetEnum(o, "type", b.Type)
	wire.Set(o, "title", b.Title)
	wire.Set(o, "from", b.From)
	wire.Set(o, "to", b.To)
	wire.Set(o, "color", b.Color)
	wire.Set(o, "opacity", b.Opacity)
	wire.SetEnum(o, "pattern", b.Pattern)
	wire.Set(o, "showInColorKey", b.ShowInColorKey)
	wire.Set(o, "labelDirectly", b.LabelDirectly)
	b.Extras.Apply(o)
	return o
}

func (b *BarOverlay) fromWire(d *wire.Doc, key string) {
	s := d.Root()
	s.String("id", &b.ID)
	if !b.ID.Has() && key != "" {
		b.ID = optional.Some(key)
	}
	wire.StringEnum(s, "type", &b.Type)
	s.String("title", &b.Title)
	s.String("from", &b.From)
	s.String("to", &b.To)
	s.String("color", &b.Color)
	s.Float("opacity", &b.Opacity)
	wire.StringEnum(s, "pattern", &b.Pattern)
	s.Bool("showInColorKey", &b.ShowInColorKey)
	s.Bool("labelDirectly", &b.LabelDirectly)
	b.Extras = d.Extras()
}

// Panel configures one small multiple of a multiple column chart
type Panel struct {
	Column string
	Title  optional.Option[string]
	Extras wire.Extras
}

func (p *Panel) wireKey() string { return p.Column }

func (p *Panel) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "title", p.Title)
	p.Extras.Apply(o)
	return o
}

func (p *Panel) fromWire(d *wire.Doc, key string) {
	p.Column = key
	d.Root().String("title", &p.Title)
	p.Extras = d.Extras()
}
