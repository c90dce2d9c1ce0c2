// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// ArrowChart draws an arrow from a start to an end value for each row
type ArrowChart struct {
	Base

	StartColumn optional.Option[string]
	EndColumn   optional.Option[string]
	ColorColumn optional.Option[string]
	LabelColumn optional.Option[string]

	YGrid            optional.Option[structs.GridDisplay]
	ReverseOrder     optional.Option[bool]
	ThickArrows      optional.Option[bool]
	BaseColor        optional.Option[wire.Scalar]
	ColorCategory    optional.Option[ColorCategory]
	RangeValueLabels optional.Option[string]
	SortRange        optional.Option[Sorting[structs.ArrowSortBy]]
	CustomRange      optional.Option[wire.Range]
	RangeExtent      optional.Option[structs.RangeExtent]
	ValueLabelFormat optional.Option[structs.Format]
	ColorByColumn    optional.Option[bool]
	GroupByColumn    optional.Option[bool]
	ReplaceFlags     optional.Option[structs.ReplaceFlagsType]
	ShowArrowKey     optional.Option[bool]

	yGridBool bool
}

func (c *ArrowChart) Type() string { return TypeArrow }

func (c *ArrowChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	v.column("axes.start", c.StartColumn)
	v.column("axes.end", c.EndColumn)
	v.column("axes.colors", c.ColorColumn)
	v.column("axes.labels", c.LabelColumn)
	checkEnum("y-grid", c.YGrid)
	validateBaseColor(v, "base-color", c.BaseColor)
	validateColorCategory(v, c.ColorCategory, colorKeysFree)
	if s, ok := c.SortRange.Get(); ok {
		checkEnum("sort-range.by", s.By)
	}
	checkEnum("range-extent", c.RangeExtent)
	checkEnum("replace-flags", c.ReplaceFlags)
	return v.err()
}

func (c *ArrowChart) document() *wire.Object {
	return c.writeDocument(TypeArrow, func(s sections) {
		vis := s.visualize
		writeGridDisplay(vis, "y-grid", c.YGrid, c.yGridBool)
		wire.Set(vis, "reverse-order", c.ReverseOrder)
		wire.Set(vis, "thick-arrows", c.ThickArrows)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "range-value-labels", c.RangeValueLabels)
		writeObject(vis, "sort-range", c.SortRange)
		wire.SetRange(vis, "custom-range", c.CustomRange)
		wire.SetEnum(vis, "range-extent", c.RangeExtent)
		wire.SetEnum(vis, "value-label-format", c.ValueLabelFormat)
		wire.Set(vis, "color-by-column", c.ColorByColumn)
		wire.Set(vis, "group-by-column", c.GroupByColumn)
		wire.SetReplaceFlags(vis, "replace-flags", c.ReplaceFlags)
		wire.Set(vis, "show-arrow-key", c.ShowArrowKey)

		wire.Set(s.axes, "start", c.StartColumn)
		wire.Set(s.axes, "end", c.EndColumn)
		wire.Set(s.axes, "colors", c.ColorColumn)
		wire.Set(s.axes, "labels", c.LabelColumn)
	})
}

func (c *ArrowChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *ArrowChart) FromWire(data []byte) error {
	*c = ArrowChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeArrow, func(r reader) {
		vis := r.visualize
		c.yGridBool = readGridDisplay(vis, "y-grid", &c.YGrid)
		vis.Bool("reverse-order", &c.ReverseOrder)
		vis.Bool("thick-arrows", &c.ThickArrows)
		vis.Scalar("base-color", &c.BaseColor)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.String("range-value-labels", &c.RangeValueLabels)
		readObject(vis, "sort-range", &c.SortRange)
		vis.Range("custom-range", &c.CustomRange)
		wire.StringEnum(vis, "range-extent", &c.RangeExtent)
		wire.StringEnum(vis, "value-label-format", &c.ValueLabelFormat)
		vis.Bool("color-by-column", &c.ColorByColumn)
		vis.Bool("group-by-column", &c.GroupByColumn)
		vis.ReplaceFlags("replace-flags", &c.ReplaceFlags)
		vis.Bool("show-arrow-key", &c.ShowArrowKey)

		r.axes.String("start", &c.StartColumn)
		r.axes.String("end", &c.EndColumn)
		r.axes.String("colors", &c.ColorColumn)
		r.axes.String("labels", &c.LabelColumn)
	})
}

func (c *ArrowChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *ArrowChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
