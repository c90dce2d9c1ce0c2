// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// StackedBarChart stacks the values of each row into one bar
type StackedBarChart struct {
	Base

	GroupsColumn optional.Option[string]

	ReverseOrder     optional.Option[bool]
	ColorCategory    optional.Option[ColorCategory]
	RangeValueLabels optional.Option[string]
	ShowColorKey     optional.Option[bool]
	ValueLabelFormat optional.Option[structs.Format]
	DateLabelFormat  optional.Option[structs.Format]
	ColorByColumn    optional.Option[bool]
	GroupByColumn    optional.Option[bool]
	Thick            optional.Option[bool]
	ReplaceFlags     optional.Option[structs.ReplaceFlagsType]
	ValueLabelMode   optional.Option[structs.ValueLabelMode]
	StackPercentages optional.Option[bool]
	SortBars         optional.Option[bool]
	SortBy           optional.Option[string]
	BaseColor        optional.Option[wire.Scalar]
	BlockLabels      optional.Option[bool]
	NegativeColor    optional.Option[wire.Toggled[string]]
}

func (c *StackedBarChart) Type() string { return TypeStackedBar }

func (c *StackedBarChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	v.column("axes.groups", c.GroupsColumn)
	validateColorCategory(v, c.ColorCategory, colorKeysSeries)
	checkEnum("replace-flags", c.ReplaceFlags)
	checkEnum("value-label-mode", c.ValueLabelMode)
	validateBaseColor(v, "base-color", c.BaseColor)
	validateToggledColor(v, "negativeColor", c.NegativeColor)
	return v.err()
}

func (c *StackedBarChart) document() *wire.Object {
	return c.writeDocument(TypeStackedBar, func(s sections) {
		vis := s.visualize
		wire.Set(vis, "reverse-order", c.ReverseOrder)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "range-value-labels", c.RangeValueLabels)
		wire.Set(vis, "show-color-key", c.ShowColorKey)
		wire.SetEnum(vis, "value-label-format", c.ValueLabelFormat)
		wire.SetEnum(vis, "date-label-format", c.DateLabelFormat)
		wire.Set(vis, "color-by-column", c.ColorByColumn)
		wire.Set(vis, "group-by-column", c.GroupByColumn)
		wire.Set(vis, "thick", c.Thick)
		wire.SetReplaceFlags(vis, "replace-flags", c.ReplaceFlags)
		wire.SetEnum(vis, "value-label-mode", c.ValueLabelMode)
		wire.Set(vis, "stack-percentages", c.StackPercentages)
		wire.Set(vis, "sort-bars", c.SortBars)
		wire.Set(vis, "sort-by", c.SortBy)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		wire.Set(vis, "block-labels", c.BlockLabels)
		wire.SetToggledColor(vis, "negativeColor", c.NegativeColor)

		wire.Set(s.axes, "groups", c.GroupsColumn)
	})
}

func (c *StackedBarChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *StackedBarChart) FromWire(data []byte) error {
	*c = StackedBarChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeStackedBar, func(r reader) {
		vis := r.visualize
		vis.Bool("reverse-order", &c.ReverseOrder)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.String("range-value-labels", &c.RangeValueLabels)
		vis.Bool("show-color-key", &c.ShowColorKey)
		wire.StringEnum(vis, "value-label-format", &c.ValueLabelFormat)
		wire.StringEnum(vis, "date-label-format", &c.DateLabelFormat)
		vis.Bool("color-by-column", &c.ColorByColumn)
		vis.Bool("group-by-column", &c.GroupByColumn)
		vis.Bool("thick", &c.Thick)
		vis.ReplaceFlags("replace-flags", &c.ReplaceFlags)
		wire.StringEnum(vis, "value-label-mode", &c.ValueLabelMode)
		vis.Bool("stack-percentages", &c.StackPercentages)
		vis.Bool("sort-bars", &c.SortBars)
		vis.String("sort-by", &c.SortBy)
		vis.Scalar("base-color", &c.BaseColor)
		vis.Bool("block-labels", &c.BlockLabels)
		vis.ToggledColor("negativeColor", &c.NegativeColor)

		r.axes.String("groups", &c.GroupsColumn)
	})
}

func (c *StackedBarChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *StackedBarChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
