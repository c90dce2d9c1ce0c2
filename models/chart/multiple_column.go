// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"
)

// MultipleColumnChart draws one small column chart per panel. Annotations
// may be placed in a single panel through Plot.
type MultipleColumnChart struct {
	Base

	GridLayout            optional.Option[structs.GridLayout]
	GridColumnCount       optional.Option[int]
	GridColumnCountMobile optional.Option[int]
	GridColumnMinWidth    optional.Option[float64]
	GridRowHeightFixed    optional.Option[float64]
	Sort                  optional.Option[Sorting[structs.MultipleColumnSortBy]]

	GridFormat GridFormat
	Ranges     CustomRanges
	Ticks      CustomTicks

	XGridLabels optional.Option[structs.GridLabelPosition]
	// XGrid is the x grid of every panel, GridLinesX the x grid lines
	XGrid      optional.Option[structs.GridDisplay]
	GridLinesX optional.Option[PanelGridLines]
	// GridLines is the y grid. On and off are stored as booleans.
	GridLines   optional.Option[structs.GridDisplay]
	YAxisLabels optional.Option[AxisLabels]

	BaseColor     optional.Option[wire.Scalar]
	NegativeColor optional.Option[wire.Toggled[string]]
	BarPadding    optional.Option[float64]
	ColorCategory optional.Option[ColorCategory]
	ColorByColumn optional.Option[bool]
	PlotHeight    PlotHeight
	Panels        optional.Option[[]Panel]

	ShowTooltips         optional.Option[bool]
	SyncMultipleTooltips optional.Option[bool]
	TooltipNumberFormat  optional.Option[structs.Format]

	ShowColorKey         optional.Option[bool]
	LabelColors          optional.Option[bool]
	LabelMargin          optional.Option[float64]
	ValueLabels          optional.Option[ColumnValueLabels]
	ValueLabelFormat     optional.Option[structs.Format]
	ValueLabelsAlways    optional.Option[bool]
	XGridLabelAllColumns optional.Option[bool]

	Annotations Annotations

	xGridBool       bool
	gridLinesString bool
}

func (c *MultipleColumnChart) Type() string { return TypeMultipleColumn }

func (c *MultipleColumnChart) Validate() error {
	v := newValidation(c.Data)
	c.Base.validate(v)
	checkEnum("gridLayout", c.GridLayout)
	v.atLeastInt("gridColumnCount", c.GridColumnCount, 1)
	v.atLeastInt("gridColumnCountMobile", c.GridColumnCountMobile, 1)
	v.atLeast("gridColumnMinWidth", c.GridColumnMinWidth, 0)
	v.atLeast("gridRowHeightFixed", c.GridRowHeightFixed, 0)
	if s, ok := c.Sort.Get(); ok {
		checkEnum("sort.by", s.By)
	}
	onlyEnum(v, "x-grid-labels", c.XGridLabels, structs.GridLabelPositionOn, structs.GridLabelPositionOff)
	checkEnum("x-grid", c.XGrid)
	if g, ok := c.GridLinesX.Get(); ok {
		checkEnum("grid-lines-x.type", g.Type)
	}
	checkEnum("grid-lines", c.GridLines)
	validateBaseColor(v, "base-color", c.BaseColor)
	validateToggledColor(v, "negativeColor", c.NegativeColor)
	v.between("bar-padding", c.BarPadding, 0, 100)
	validateColorCategory(v, c.ColorCategory, colorKeysSeriesOrLabels)
	c.PlotHeight.validate(v)
	for i, p := range c.Panels.Value() {
		v.required(indexField("panels", i)+".column", p.Column != "")
		v.columnName(indexField("panels", i)+".column", p.Column)
	}
	v.atLeast("label-margin", c.LabelMargin, 0)
	if vl, ok := c.ValueLabels.Get(); ok {
		vl.validate(v, "valueLabels")
	}
	c.Annotations.validate(v, true)
	return v.err()
}

func (c *MultipleColumnChart) document() *wire.Object {
	return c.writeDocument(TypeMultipleColumn, func(s sections) {
		vis := s.visualize
		wire.SetEnum(vis, "gridLayout", c.GridLayout)
		wire.Set(vis, "gridColumnCount", c.GridColumnCount)
		wire.Set(vis, "gridColumnCountMobile", c.GridColumnCountMobile)
		wire.Set(vis, "gridColumnMinWidth", c.GridColumnMinWidth)
		wire.Set(vis, "gridRowHeightFixed", c.GridRowHeightFixed)
		writeObject(vis, "sort", c.Sort)
		c.GridFormat.write(vis)
		c.Ranges.write(vis)
		c.Ticks.write(vis)
		wire.SetEnum(vis, "x-grid-labels", c.XGridLabels)
		writeGridDisplay(vis, "x-grid", c.XGrid, c.xGridBool)
		writeObject(vis, "grid-lines-x", c.GridLinesX)
		writeGridDisplay(vis, "grid-lines", c.GridLines, !c.gridLinesString)
		writeObject(vis, "yAxisLabels", c.YAxisLabels)
		wire.SetScalar(vis, "base-color", c.BaseColor)
		wire.SetToggledColor(vis, "negativeColor", c.NegativeColor)
		wire.Set(vis, "bar-padding", c.BarPadding)
		writeObject(vis, "color-category", c.ColorCategory)
		wire.Set(vis, "color-by-column", c.ColorByColumn)
		c.PlotHeight.write(vis)
		writeKeyed(vis, "panels", c.Panels)
		wire.Set(vis, "show-tooltips", c.ShowTooltips)
		wire.Set(vis, "syncMultipleTooltips", c.SyncMultipleTooltips)
		wire.SetEnum(vis, "tooltip-number-format", c.TooltipNumberFormat)
		wire.Set(vis, "show-color-key", c.ShowColorKey)
		wire.Set(vis, "label-colors", c.LabelColors)
		wire.Set(vis, "label-margin", c.LabelMargin)
		writeObject(vis, "valueLabels", c.ValueLabels)
		wire.SetEnum(vis, "value-label-format", c.ValueLabelFormat)
		wire.Set(vis, "value-labels-always", c.ValueLabelsAlways)
		wire.Set(vis, "xGridLabelAllColumns", c.XGridLabelAllColumns)
		c.Annotations.write(vis)
	})
}

func (c *MultipleColumnChart) ToWire() ([]byte, error) { return encode(c.document()) }

func (c *MultipleColumnChart) FromWire(data []byte) error {
	*c = MultipleColumnChart{Base: Base{Data: c.Data}}
	return c.readDocument(data, TypeMultipleColumn, func(r reader) {
		vis := r.visualize
		wire.StringEnum(vis, "gridLayout", &c.GridLayout)
		vis.Int("gridColumnCount", &c.GridColumnCount)
		vis.Int("gridColumnCountMobile", &c.GridColumnCountMobile)
		vis.Float("gridColumnMinWidth", &c.GridColumnMinWidth)
		vis.Float("gridRowHeightFixed", &c.GridRowHeightFixed)
		readObject(vis, "sort", &c.Sort)
		c.GridFormat.read(vis)
		c.Ranges.read(vis)
		c.Ticks.read(vis)
		wire.StringEnum(vis, "x-grid-labels", &c.XGridLabels)
		c.xGridBool = readGridDisplay(vis, "x-grid", &c.XGrid)
		readObject(vis, "grid-lines-x", &c.GridLinesX)
		linesBool := readGridDisplay(vis, "grid-lines", &c.GridLines)
		c.gridLinesString = c.GridLines.Has() && !linesBool && isOnOff(c.GridLines.Value())
		readObject(vis, "yAxisLabels", &c.YAxisLabels)
		vis.Scalar("base-color", &c.BaseColor)
		vis.ToggledColor("negativeColor", &c.NegativeColor)
		vis.Float("bar-padding", &c.BarPadding)
		readObject(vis, "color-category", &c.ColorCategory)
		vis.Bool("color-by-column", &c.ColorByColumn)
		c.PlotHeight.read(vis)
		readList(vis, "panels", &c.Panels)
		vis.Bool("show-tooltips", &c.ShowTooltips)
		vis.Bool("syncMultipleTooltips", &c.SyncMultipleTooltips)
		wire.StringEnum(vis, "tooltip-number-format", &c.TooltipNumberFormat)
		vis.Bool("show-color-key", &c.ShowColorKey)
		vis.Bool("label-colors", &c.LabelColors)
		vis.Float("label-margin", &c.LabelMargin)
		readObject(vis, "valueLabels", &c.ValueLabels)
		wire.StringEnum(vis, "value-label-format", &c.ValueLabelFormat)
		vis.Bool("value-labels-always", &c.ValueLabelsAlways)
		vis.Bool("xGridLabelAllColumns", &c.XGridLabelAllColumns)
		c.Annotations.read(vis)
	})
}

func (c *MultipleColumnChart) MarshalJSON() ([]byte, error) { return c.ToWire() }
func (c *MultipleColumnChart) UnmarshalJSON(data []byte) error { return c.FromWire(data) }
