// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// BarChart is a horizontal bar chart
type BarChart struct {
	Base

	LabelColumn  optional.Option[string]
	BarColumn    optional.Option[string]
	ColorColumn  optional.Option[string]
	GroupsColumn optional.Option[string]

	LabelAlignment      optional.Option[structs.GridLabelAlign]
	BlockLabels         optional.Option[bool]
	ShowValueLabels     optional.Option[bool]
	ValueLabelAlignment optional.Option[structs.ValueLabelAlignment]
	ValueLabelFormat    optional.Option[structs.Format]
	SwapLabels          optional.Option[bool]
	ReplaceFlags        optional.Option[structs.ReplaceFlagsType]
	ShowColorKey        optional.Option[bool]
	StackColorLegend    optional.Option[bool]

	CustomRange     optional.Option[wire.Range]
	ForceGrid       optional.Option[bool]
	CustomGridLines optional.Option[[]wire.Scalar]
	TickPosition    optional.Option[structs.TickPosition]
	AxisLabelFormat optional.Option[structs.Format]

	BaseColor     optional.Option[wire.Scalar]
	ColorCategory optional.Option[ColorCategory]
	ColorByColumn optional.Option[bool]
	Rules         optional.Option[bool]
	Thick         optional.Option[bool]
	Background    optional.Option[bool]

	SortBars           optional.Option[bool]
	ReverseOrder       optional.Option[bool]
	GroupByColumn      optional.Option[bool]
	ShowGroupLabels    optional.Option[bool]
	ShowCategoryLabels optional.Option[bool]

	Overlays          optional.Option[[]BarOverlay]
	HighlightedSeries optional.Option[[]string]
	NegativeColor     optional.Option[wire.Toggled[string]]
	Annotations       Annotations
}

func (c *BarChart) Type() string { return TypeBar }

func (c *BarChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	v.column("axes.labels", c.LabelColumn)
	v.column("axes.bars", c.BarColumn)
	v.column("axes.colors", c.ColorColumn)
	v.column("axes.groups", c.GroupsColumn)
	checkEnum("label-alignment", c.LabelAlignment)
	checkEnum("value-label-alignment", c.ValueLabelAlignment)
	checkEnum("replace-flags", c.ReplaceFlags)
	checkEnum("tick-position", c.TickPosition)
	validateBaseColor(v, "base-color", c.BaseColor)
	validateColorCategory(v, c.ColorCategory, colorKeysFree)
	validateToggledColor(v, "negativeColor", c.NegativeColor)
	v.columns("highlighted-series", c.HighlightedSeries)
	validateList(v, "overlays", c.Overlays, func(v *validation, field string, o *BarOverlay) {
		o.validate(v, field)
	})
	c.Annotations.validate(v, false)
	return v.err()
}

func (c *BarChart) document() *wire.Object {
	return c.writeDocument(TypeBar, func(s sections) {
		vis := s.visualize
		wire.SetEnum(vis, "label-alignment", c.LabelAlignment)
		wire.Set(vis, "block-labels", c.BlockLabels)
		wire.Set(vis, "show-value-labels", c.ShowValueLabels)
		wire.SetEnum(vis, "value-label-alignment", c.ValueLabelAlignment)
		wire.SetEnum(vis, "value-label-format", c.ValueLabelFormat)
		wire.Set(vis, "swap-labels", c.SwapLabels)
		wire.SetReplaceFlags(vis, "replace-flags", c.ReplaceFlags)
		wire.Set(vis, "show-color-key", c.ShowColorKey)
		wire.Set(vis, "stack-color-legend", c.StackColorLegend)
		wire.SetRange(vis, "custom-range", c.CustomRange)
		wire.Set(vis, "force-grid", c.ForceGrid)
		wire.SetTicks(vis, "custom-grid-lines", c.CustomGridLines)
		wire.SetEnum(vis, "tick-position", c.TickPosition)
		wire.SetEnum(vis, "axis-label-format", c.AxisLabelFormat)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "color-by-column", c.ColorByColumn)
		wire.Set(vis, "rules", c.Rules)
		wire.Set(vis, "thick", c.Thick)
		wire.Set(vis, "background", c.Background)
		wire.Set(vis, "sort-bars", c.SortBars)
		wire.Set(vis, "reverse-order", c.ReverseOrder)
		wire.Set(vis, "group-by-column", c.GroupByColumn)
		wire.Set(vis, "show-group-labels", c.ShowGroupLabels)
		wire.Set(vis, "show-category-labels", c.ShowCategoryLabels)
		writeList(vis, "overlays", c.Overlays)
		wire.SetStrings(vis, "highlighted-series", c.HighlightedSeries)
		wire.SetToggledColor(vis, "negativeColor", c.NegativeColor)
		c.Annotations.write(vis)

		wire.Set(s.axes, "colors", c.ColorColumn)
		wire.Set(s.axes, "bars", c.BarColumn)
		wire.Set(s.axes, "labels", c.LabelColumn)
		wire.Set(s.axes, "groups", c.GroupsColumn)
	})
}

func (c *BarChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *BarChart) FromWire(data []byte) error {
	*c = BarChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeBar, func(r reader) {
		vis := r.visualize
		wire.StringEnum(vis, "label-alignment", &c.LabelAlignment)
		vis.Bool("block-labels", &c.BlockLabels)
		vis.Bool("show-value-labels", &c.ShowValueLabels)
		wire.StringEnum(vis, "value-label-alignment", &c.ValueLabelAlignment)
		wire.StringEnum(vis, "value-label-format", &c.ValueLabelFormat)
		vis.Bool("swap-labels", &c.SwapLabels)
		vis.ReplaceFlags("replace-flags", &c.ReplaceFlags)
		vis.Bool("show-color-key", &c.ShowColorKey)
		vis.Bool("stack-color-legend", &c.StackColorLegend)
		vis.Range("custom-range", &c.CustomRange)
		vis.Bool("force-grid", &c.ForceGrid)
		vis.Ticks("custom-grid-lines", &c.CustomGridLines)
		wire.StringEnum(vis, "tick-position", &c.TickPosition)
		wire.StringEnum(vis, "axis-label-format", &c.AxisLabelFormat)
		vis.Scalar("base-color", &c.BaseColor)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.Bool("color-by-column", &c.ColorByColumn)
		vis.Bool("rules", &c.Rules)
		vis.Bool("thick", &c.Thick)
		vis.Bool("background", &c.Background)
		vis.Bool("sort-bars", &c.SortBars)
		vis.Bool("reverse-order", &c.ReverseOrder)
		vis.Bool("group-by-column", &c.GroupByColumn)
		vis.Bool("show-group-labels", &c.ShowGroupLabels)
		vis.Bool("show-category-labels", &c.ShowCategoryLabels)
		readList(vis, "overlays", &c.Overlays)
		vis.Strings("highlighted-series", &c.HighlightedSeries)
		vis.ToggledColor("negativeColor", &c.NegativeColor)
		c.Annotations.read(vis)

		r.axes.String("colors", &c.ColorColumn)
		r.axes.String("bars", &c.BarColumn)
		r.axes.String("labels", &c.LabelColumn)
		r.axes.String("groups", &c.GroupsColumn)
	})
}

func (c *BarChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *BarChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
