// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"testing"

	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func some[T any](v T) optional.Option[T] { return optional.Some(v) }

func populatedColorCategory() ColorCategory {
	cc := NewColorCategory("Green", "#1d81a2", "Blue", "#c71e1d")
	cc.Labels = []Mapping{{Key: "Green", Value: "Greens"}}
	cc.Order = some([]string{"Blue", "Green"})
	cc.ExcludeFromKey = some([]string{"Other"})
	return cc
}

func populatedAnnotations(plots bool) Annotations {
	text := NewTextAnnotation("peak", wire.Num(3), wire.Str("2024"))
	text.ID = some("t1")
	text.DX = some(4.0)
	text.Bold = some(true)
	text.Align = some(structs.TextAlignMiddleLeft)
	text.ConnectorLine = some(ConnectorLine{
		Type:      some(structs.ConnectorLineTypeCurveRight),
		ArrowHead: some(structs.ArrowHeadTriangle),
	})
	band := NewXRange(wire.Num(1), wire.Num(2))
	band.ID = some("r1")
	band.Color = some("#cccccc")
	if plots {
		text.Plot = some("Green")
		band.ShowInAllPlots = some(true)
	}
	return Annotations{
		Text:   some([]TextAnnotation{text}),
		Ranges: some([]RangeAnnotation{band}),
	}
}

func populatedBase(b *Base) {
	b.Title = some("Seats")
	b.Theme = some("datawrapper")
	b.Language = some("de-DE")
	b.Describe.Intro = some("intro")
	b.Describe.SourceName = some("Office")
	b.Describe.NumberDivisor = some(structs.NumberDivisorDivideByThousand)
	b.Notes = some("notes")
	b.Blocks.Logo = some(true)
	b.Sharing.Enabled = some(false)
}

func populatedCharts() map[string]Chart {
	bar := &BarChart{
		LabelColumn:       some("party"),
		BarColumn:         some("seats"),
		LabelAlignment:    some(structs.GridLabelAlignRight),
		ShowValueLabels:   some(true),
		ValueLabelFormat:  some(structs.Format("0.0")),
		ReplaceFlags:      some(structs.ReplaceFlagsCircle),
		CustomRange:       some(wire.Range{wire.Str(""), wire.Num(100)}),
		CustomGridLines:   some([]wire.Scalar{wire.Num(0), wire.Num(50)}),
		TickPosition:      some(structs.TickPositionBottom),
		BaseColor:         some(wire.Str("#c71e1d")),
		ColorCategory:     some(populatedColorCategory()),
		Thick:             some(true),
		SortBars:          some(true),
		HighlightedSeries: some([]string{"Green"}),
		NegativeColor:     some(wire.On("#ff0000")),
		Overlays: some([]BarOverlay{{
			ID:      some("o1"),
			Type:    some(structs.OverlayTypeRange),
			From:    some("low"),
			To:      some("high"),
			Pattern: some(structs.OverlayPatternDiagonalUp),
		}}),
		Annotations: populatedAnnotations(false),
	}
	populatedBase(&bar.Base)

	line := &LineChart{
		Grid:              Grid{X: some(structs.GridDisplayTicks), Y: some(structs.GridDisplayOn)},
		GridFormat:        GridFormat{Y: some(structs.Format("0,0"))},
		Ranges:            CustomRanges{X: some(wire.Range{wire.Num(2000), wire.Str("")})},
		Ticks:             CustomTicks{Y: some([]wire.Scalar{wire.Num(0), wire.Num(10)})},
		YGridLabels:       some(structs.GridLabelPositionInside),
		ScaleY:            some(structs.ScaleTypeLog),
		Interpolation:     some(structs.LineInterpolationStep),
		ColorCategory:     some(populatedColorCategory()),
		LabelMargin:       some(12.0),
		PlotHeight:        PlotHeight{Mode: some(structs.PlotHeightModeRatio), Ratio: some(0.5)},
		ValueLabelsFormat: some(structs.Format("0a")),
		Lines: some([]Line{{
			Column:      "Green",
			Width:       some(structs.LineWidthThin),
			Symbols:     some(LineSymbol{Shape: some(structs.SymbolShapeSquare)}),
			ValueLabels: some(LineValueLabel{Last: some(true)}),
		}}),
		AreaFills: some([]AreaFill{{ID: some("f1"), From: some("Green"), To: some("Blue"), Opacity: some(0.3)}}),
		Annotations: populatedAnnotations(false),
	}
	populatedBase(&line.Base)

	column := &ColumnChart{
		Grid:          Grid{X: some(structs.GridDisplayOff), Y: some(structs.GridDisplayOn)},
		Ranges:        CustomRanges{Y: some(wire.Range{wire.Str(""), wire.Num(100)})},
		Ticks:         CustomTicks{Y: some([]wire.Scalar{wire.Num(0), wire.Num(100)})},
		YAxisLabels:   some(AxisLabels{Enabled: some(true), Placement: some(structs.GridLabelPositionOutside), Alignment: some(structs.GridLabelAlignLeft)}),
		BaseColor:     some(wire.Num(3)),
		NegativeColor: some(wire.Toggled[string]{Value: "#ff0000"}),
		BarPadding:    some(30.0),
		ColorCategory: some(populatedColorCategory()),
		PlotHeight:    PlotHeight{Mode: some(structs.PlotHeightModeFixed), Fixed: some(300.0)},
		ValueLabels:   some(ColumnValueLabels{Show: some(structs.ValueLabelDisplayAlways), Enabled: some(true), Placement: some(structs.ValueLabelPlacementInside)}),
		Annotations:   populatedAnnotations(false),
	}
	populatedBase(&column.Base)

	area := &AreaChart{
		Grid:               Grid{Y: some(structs.GridDisplayLines)},
		Ticks:              CustomTicks{X: some([]wire.Scalar{wire.Num(2020), wire.Num(2024)})},
		AreaOpacity:        some(0.7),
		SortAreas:          some(structs.SortAreasDesc),
		StackTo100:         some(true),
		AreaSeparatorColor: some(wire.Str("#ffffff")),
		ColorCategory:      some(populatedColorCategory()),
		TooltipXFormat:     some(structs.Format("YYYY")),
		Annotations:        populatedAnnotations(false),
	}
	populatedBase(&area.Base)

	scatter := &ScatterPlot{
		XColumn:      some("gdp"),
		YColumn:      some("life"),
		SizeColumn:   some("population"),
		XAxis:        some(ScatterAxis{Log: some(true), Range: some(wire.Range{wire.Num(100), wire.Num(100000)}), Ticks: some([]wire.Scalar{wire.Num(1000), wire.Num(10000)})}),
		YPosition:    some(structs.ScatterAxisPositionLeft),
		XGridLines:   some(structs.ScatterGridLinesNoLabels),
		Opacity:      some(0.8),
		Size:         some(structs.ScatterSizeDynamic),
		MaxSize:      some(40.0),
		SizeLegend:   SizeLegend{Show: some(true), Position: some(structs.SizeLegendPositionAbove), Values: some([]wire.Scalar{wire.Num(1), wire.Num(10)})},
		Shape:        some(structs.ScatterShapeStar),
		Regression:   some(true),
		CustomLines:  some("0,0,10,10 @color:#000"),
		AddLabels:    some([]string{"Chile"}),
		Tooltip:      some(ScatterTooltip{Enabled: some(true), Title: some("{{ country }}")}),
		Annotations:  populatedAnnotations(false),
		ShowColorKey: some(false),
	}
	populatedBase(&scatter.Base)

	arrow := &ArrowChart{
		StartColumn:  some("2020"),
		EndColumn:    some("2024"),
		YGrid:        some(structs.GridDisplayOff),
		ThickArrows:  some(true),
		SortRange:    some(Sorting[structs.ArrowSortBy]{Enabled: some(true), By: some(structs.ArrowSortByDifference)}),
		CustomRange:  some(wire.Range{wire.Num(0), wire.Num(10)}),
		RangeExtent:  some(structs.RangeExtentCustom),
		ReplaceFlags: some(structs.ReplaceFlagsOff),
	}
	populatedBase(&arrow.Base)

	stacked := &StackedBarChart{
		GroupsColumn:     some("region"),
		ColorCategory:    some(populatedColorCategory()),
		ValueLabelMode:   some(structs.ValueLabelModeDiverging),
		StackPercentages: some(true),
		SortBy:           some("Green"),
		ReplaceFlags:     some(structs.ReplaceFlagsFourByThree),
		NegativeColor:    some(wire.On("#00ff00")),
	}
	populatedBase(&stacked.Base)

	multiple := &MultipleColumnChart{
		GridLayout:      some(structs.GridLayoutMinimumWidth),
		GridColumnCount: some(3),
		Sort:            some(Sorting[structs.MultipleColumnSortBy]{Reverse: some(true), By: some(structs.MultipleColumnSortByTitle)}),
		Ranges:          CustomRanges{Y: some(wire.Range{wire.Num(0), wire.Str("")})},
		XGridLabels:     some(structs.GridLabelPositionOn),
		XGrid:           some(structs.GridDisplayOn),
		GridLinesX:      some(PanelGridLines{Enabled: some(false), Type: some(structs.GridDisplayOff)}),
		GridLines:       some(structs.GridDisplayOff),
		YAxisLabels:     some(HiddenAxisLabels()),
		ColorCategory:   some(populatedColorCategory()),
		Panels:          some([]Panel{{Column: "Green", Title: some("Greens")}, {Column: "Blue"}}),
		ValueLabels:     some(HiddenValueLabels()),
		LabelMargin:     some(8.0),
		Annotations:     populatedAnnotations(true),
	}
	populatedBase(&multiple.Base)

	return map[string]Chart{
		TypeBar:            bar,
		TypeLine:           line,
		TypeColumn:         column,
		TypeArea:           area,
		TypeScatter:        scatter,
		TypeArrow:          arrow,
		TypeStackedBar:     stacked,
		TypeMultipleColumn: multiple,
	}
}

func TestRoundTripPopulatedCharts(t *testing.T) {
	charts := populatedCharts()
	require.Len(t, charts, len(Types()))
	for typ, c := range charts {
		t.Run(typ, func(t *testing.T) {
			assert.Equal(t, typ, c.Type())
			data, err := c.ToWire()
			require.NoError(t, err)
			back, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, c, back)

			again, err := back.ToWire()
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(again))
		})
	}
}

// fetchedDocuments are shaped the way the API returns them
var fetchedDocuments = map[string]string{
	"column chart": `{
		"type": "column-chart",
		"metadata": {"visualize": {
			"x-grid": "off",
			"y-grid": "on",
			"grid-lines": true,
			"grid-lines-x": {"type": "", "enabled": false},
			"custom-range": ["", 100],
			"custom-range-x": [5],
			"custom-ticks": "0,50,100",
			"yAxisLabels": {"enabled": true, "alignment": "left"},
			"valueLabels": {"show": "always", "format": "0.0", "enabled": false, "placement": "inside"},
			"color-category": {"categoryLabels": {"A": "Alpha"}}
		}}
	}`,
	"column chart with grid-lines only": `{
		"type": "column-chart",
		"metadata": {"visualize": {"grid-lines": false}}
	}`,
	"column chart with disagreeing grid-lines": `{
		"type": "column-chart",
		"metadata": {"visualize": {"y-grid": "off", "grid-lines": true}}
	}`,
	"column chart without grid-lines": `{
		"type": "column-chart",
		"metadata": {"visualize": {"y-grid": "on"}}
	}`,
	"multiple columns": `{
		"type": "multiple-columns",
		"metadata": {"visualize": {
			"x-grid": false,
			"grid-lines": true,
			"grid-lines-x": {"type": "ticks", "enabled": true},
			"yAxisLabels": {"enabled": false, "placement": "inside"},
			"valueLabels": {"enabled": false, "show": "always"},
			"panels": {"A": {"title": "Alpha", "note": 1}}
		}}
	}`,
	"multiple columns with string grid-lines": `{
		"type": "multiple-columns",
		"metadata": {"visualize": {"grid-lines": "on", "yAxisLabels": {"placement": ""}}}
	}`,
	"line chart": `{
		"type": "d3-lines",
		"metadata": {"visualize": {
			"x-grid": true,
			"y-grid": "ticks",
			"lines": {"A": {"symbols": {"on": "last"}, "valueLabels": {"last": true}}},
			"text-annotations": [{"text": "x", "position": {"x": 1, "y": 2}, "connectorLine": {"type": "straight"}}],
			"color-category": {"map": {}}
		}}
	}`,
	"arrow chart": `{
		"type": "d3-arrow-plot",
		"metadata": {"visualize": {"y-grid": false}}
	}`,
}

func TestFetchedDocumentsRoundTrip(t *testing.T) {
	for name, in := range fetchedDocuments {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(in))
			require.NoError(t, err)
			out, err := c.ToWire()
			require.NoError(t, err)
			assert.JSONEq(t, in, string(out))
		})
	}
}

func TestColumnChartReadsRenamedKeys(t *testing.T) {
	c := &ColumnChart{}
	require.NoError(t, c.FromWire([]byte(fetchedDocuments["column chart"])))
	assert.Equal(t, wire.Range{wire.Str(""), wire.Num(100)}, c.Ranges.Y.Value())
	assert.False(t, c.Ranges.X.Has())
	assert.Equal(t, structs.GridDisplayOn, c.Grid.Y.Value())

	labels := c.YAxisLabels.Value()
	assert.True(t, labels.Enabled.Value())
	assert.False(t, labels.Placement.Has())
	assert.Equal(t, structs.GridLabelAlignLeft, labels.Alignment.Value())

	values := c.ValueLabels.Value()
	assert.False(t, values.Enabled.Value())
	assert.Equal(t, structs.ValueLabelDisplayAlways, values.Show.Value())
	assert.Equal(t, structs.ValueLabelPlacementInside, values.Placement.Value())

	_, ok := c.Extras.Get("custom-range-x", "metadata", "visualize")
	assert.True(t, ok)
	_, ok = c.Extras.Get("grid-lines-x", "metadata", "visualize")
	assert.True(t, ok)
}

func TestColumnChartGridLinesMirror(t *testing.T) {
	c := &ColumnChart{Grid: Grid{Y: some(structs.GridDisplayOff)}}
	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"column-chart","metadata":{"visualize":{"y-grid":"off","grid-lines":false}}}`, string(data))

	c = &ColumnChart{}
	require.NoError(t, c.FromWire([]byte(fetchedDocuments["column chart with grid-lines only"])))
	assert.Equal(t, structs.GridDisplayOff, c.Grid.Y.Value())

	c.Grid.Y = some(structs.GridDisplayOn)
	data, err = c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"column-chart","metadata":{"visualize":{"grid-lines":true}}}`, string(data))
}

func TestBooleanGridValues(t *testing.T) {
	c := &MultipleColumnChart{}
	require.NoError(t, c.FromWire([]byte(`{"type":"multiple-columns","metadata":{"visualize":{"x-grid":false,"grid-lines":true}}}`)))
	assert.Equal(t, structs.GridDisplayOff, c.XGrid.Value())
	assert.Equal(t, structs.GridDisplayOn, c.GridLines.Value())

	c.XGrid = some(structs.GridDisplayOn)
	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"multiple-columns","metadata":{"visualize":{"x-grid":true,"grid-lines":true}}}`, string(data))

	c.XGrid = some(structs.GridDisplayTicks)
	data, err = c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"multiple-columns","metadata":{"visualize":{"x-grid":"ticks","grid-lines":true}}}`, string(data))

	fresh := &MultipleColumnChart{GridLines: some(structs.GridDisplayOn)}
	data, err = fresh.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"multiple-columns","metadata":{"visualize":{"grid-lines":true}}}`, string(data))
}

func TestDisablingFetchedConnectorLine(t *testing.T) {
	c := &LineChart{}
	require.NoError(t, c.FromWire([]byte(fetchedDocuments["line chart"])))
	text := c.Annotations.Text.Value()[0]
	line := text.ConnectorLine.Value()
	line.Disabled = true
	text.ConnectorLine = some(line)
	c.Annotations.Text = some([]TextAnnotation{text})

	data, err := c.ToWire()
	require.NoError(t, err)
	enabled := gjson.GetBytes(data, "metadata.visualize.text-annotations.0.connectorLine.enabled")
	assert.True(t, enabled.Exists())
	assert.False(t, enabled.Bool())
	assert.Equal(t, "straight", gjson.GetBytes(data, "metadata.visualize.text-annotations.0.connectorLine.type").String())
}
