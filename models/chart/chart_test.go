// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"testing"

	"github.com/chartkit/dwclient/modules/dataset"
	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnChartWire(t *testing.T) {
	c := &ColumnChart{}
	c.Title = optional.Some("Quarterly sales")
	c.GridFormat.Y = optional.Some(structs.Format("0.0"))
	c.Ranges.Y = optional.Some(wire.Range{wire.Str(""), wire.Num(100)})
	c.Ticks.Y = optional.Some([]wire.Scalar{wire.Num(0), wire.Num(50), wire.Num(100)})

	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "column-chart",
		"title": "Quarterly sales",
		"metadata": {"visualize": {
			"y-grid-format": "0.0",
			"custom-range": ["", 100],
			"custom-ticks": "0,50,100"
		}}
	}`, string(data))

	back := &ColumnChart{}
	require.NoError(t, back.FromWire(data))
	assert.Equal(t, c, back)
	assert.Equal(t, StateUnsaved, back.State())
}

func TestUnsetFieldsAreOmitted(t *testing.T) {
	for _, typ := range Types() {
		c, err := ForType(typ)
		require.NoError(t, err)
		data, err := c.ToWire()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"`+typ+`"}`, string(data), typ)
	}
}

func TestRoundTripEveryType(t *testing.T) {
	for _, typ := range Types() {
		c, err := ForType(typ)
		require.NoError(t, err)
		c.Common().Title = optional.Some("Title of " + typ)
		c.Common().Describe.Intro = optional.Some("intro")
		c.Common().Blocks.Logo = optional.Some(true)

		data, err := c.ToWire()
		require.NoError(t, err)
		back, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, c, back, typ)
	}
}

func TestLineChartRoundTrip(t *testing.T) {
	c := &LineChart{}
	c.Title = optional.Some("Temperatures")
	c.Interpolation = optional.Some(structs.LineInterpolationMonotoneX)
	c.ColorCategory = optional.Some(NewColorCategory("Berlin", "#1d81a2", "Paris", "#c71e1d"))
	c.Lines = optional.Some([]Line{
		{
			Column: "Berlin",
			Width:  optional.Some(structs.LineWidthThick),
			Dash:   optional.Some(structs.LineDashShortDash),
			Symbols: optional.Some(LineSymbol{
				Shape: optional.Some(structs.SymbolShapeDiamond),
				On:    optional.Some(structs.SymbolDisplayLast),
			}),
		},
		{Column: "Paris", Symbols: optional.Some(LineSymbol{Disabled: true})},
	})
	c.Annotations.Ranges = optional.Some([]RangeAnnotation{NewYLine(wire.Num(0))})

	data, err := c.ToWire()
	require.NoError(t, err)

	back := &LineChart{}
	require.NoError(t, back.FromWire(data))
	assert.Equal(t, c, back)
}

func TestLineSymbolsDisabled(t *testing.T) {
	c := &LineChart{}
	c.Lines = optional.Some([]Line{{Column: "sales", Symbols: optional.Some(LineSymbol{Disabled: true})}})

	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "d3-lines",
		"metadata": {"visualize": {"lines": {"sales": {"symbols": {"enabled": false}}}}}
	}`, string(data))
}

func TestColumnValueLabelsOff(t *testing.T) {
	c := &ColumnChart{}
	c.ValueLabels = optional.Some(HiddenValueLabels())

	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "column-chart",
		"metadata": {"visualize": {"valueLabels": {"show": "", "enabled": false}}}
	}`, string(data))

	back := &ColumnChart{}
	require.NoError(t, back.FromWire(data))
	assert.Equal(t, c, back)
	assert.Equal(t, structs.ValueLabelDisplayOff, back.ValueLabels.Value().Show.Value())
}

func TestUnknownKeysSurvive(t *testing.T) {
	in := `{
		"type": "d3-bars",
		"title": "Budget",
		"futureRoot": {"a": 1},
		"metadata": {
			"visualize": {
				"thick": true,
				"future-flag": "x",
				"text-annotations": [
					{"text": "peak", "position": {"x": 3, "y": 40}, "fancy": true}
				]
			},
			"publish": {"embed-width": 600}
		}
	}`
	c := &BarChart{}
	require.NoError(t, c.FromWire([]byte(in)))
	assert.True(t, c.Thick.Value())
	require.Len(t, c.Annotations.Text.Value(), 1)
	assert.Equal(t, "peak", c.Annotations.Text.Value()[0].Text.Value())

	out, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestUnknownKeysDoNotOverride(t *testing.T) {
	c := &BarChart{}
	require.NoError(t, c.FromWire([]byte(`{"type":"d3-bars","metadata":{"visualize":{"thick":true}}}`)))
	c.Thick = optional.Some(false)

	out, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"d3-bars","metadata":{"visualize":{"thick":false}}}`, string(out))
}

func TestColorCategoryDuplicates(t *testing.T) {
	cc := NewColorCategory("A", "#ff0000", "B", "#00ff00", "A", "#0000ff")
	assert.Equal(t, []Mapping{{Key: "A", Value: "#0000ff"}, {Key: "B", Value: "#00ff00"}}, cc.Colors)

	color, ok := cc.Color("A")
	assert.True(t, ok)
	assert.Equal(t, "#0000ff", color)

	c := &ColumnChart{ColorCategory: optional.Some(cc)}
	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "column-chart",
		"metadata": {"visualize": {"color-category": {"map": {"A": "#0000ff", "B": "#00ff00"}}}}
	}`, string(data))
}

func TestValidation(t *testing.T) {
	c := &ColumnChart{}
	c.BarPadding = optional.Some(150.0)
	c.BaseColor = optional.Some(wire.Str("not-a-color"))
	text := NewTextAnnotation("note", wire.Num(1), wire.Num(2))
	text.Plot = optional.Some("A")
	c.Annotations.Text = optional.Some([]TextAnnotation{text})

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "bar-padding")
	assert.Contains(t, err.Error(), "base-color")
	assert.Contains(t, err.Error(), "text-annotations[0].plot")

	_, err = New(c)
	assert.Error(t, err)

	c.BarPadding = optional.Some(30.0)
	c.BaseColor = optional.Some(wire.Num(2))
	c.Annotations.Text.Value()[0].Plot = optional.None[string]()
	got, err := New(c)
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestValidationChecksColumns(t *testing.T) {
	c := &BarChart{}
	c.Data = dataset.MustNew(
		dataset.Strings("Country", "DE", "FR"),
		dataset.Numbers("Budget", 10, 12),
	)
	c.LabelColumn = optional.Some("Country")
	c.BarColumn = optional.Some("Spending")

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "axes.bars")
	assert.NotContains(t, err.Error(), "axes.labels")

	c.BarColumn = optional.Some("Budget")
	assert.NoError(t, c.Validate())
}

func TestColorCategoryKeysMatchColumns(t *testing.T) {
	data := dataset.MustNew(
		dataset.Strings("Year", "2023", "2024"),
		dataset.Numbers("Berlin", 10, 12),
		dataset.Numbers("Paris", 8, 9),
	)

	line := &LineChart{}
	line.Data = data
	line.ColorCategory = optional.Some(NewColorCategory("Berlin", "#1d81a2", "Rome", "#c71e1d"))
	err := line.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color-category.map.Rome")
	assert.NotContains(t, err.Error(), "color-category.map.Berlin")

	for _, c := range []Chart{
		&AreaChart{ColorCategory: line.ColorCategory},
		&StackedBarChart{ColorCategory: line.ColorCategory},
		&ColumnChart{ColorCategory: line.ColorCategory},
		&MultipleColumnChart{ColorCategory: line.ColorCategory},
	} {
		c.Common().Data = data
		assert.Error(t, c.Validate(), c.Type())
	}

	column := &ColumnChart{ColorCategory: optional.Some(NewColorCategory("2024", "#c71e1d", "Paris", "#1d81a2"))}
	column.Data = data
	assert.NoError(t, column.Validate())

	line.ColorCategory = optional.Some(NewColorCategory("2024", "#c71e1d"))
	assert.Error(t, line.Validate())

	bar := &BarChart{ColorCategory: optional.Some(NewColorCategory("Rome", "#c71e1d"))}
	bar.Data = data
	assert.NoError(t, bar.Validate())
}

func TestAnnotationValidation(t *testing.T) {
	a := TextAnnotation{Text: optional.Some("x")}
	err := a.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position.x")

	r := NewXRange(wire.Num(1), wire.Num(2))
	assert.NoError(t, r.Validate())
	r.X1 = optional.None[wire.Scalar]()
	assert.Error(t, r.Validate())
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`{"type":"d3-lines","title":"x"}`))
	require.NoError(t, err)
	line, ok := c.(*LineChart)
	require.True(t, ok)
	assert.Equal(t, "x", line.Title.Value())

	_, err = Parse([]byte(`{"title":"x"}`))
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))

	_, err = Parse([]byte(`{"type":"d3-pies"}`))
	assert.True(t, IsErrUnknownType(err))

	_, err = ForType("locator-map")
	assert.True(t, IsErrUnknownType(err))
	assert.True(t, errors.Is(err, util.ErrNotExist))
}

func TestTypeMismatch(t *testing.T) {
	err := (&BarChart{}).FromWire([]byte(`{"type":"d3-lines"}`))
	var mismatch ErrTypeMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, TypeBar, mismatch.Expected)
	assert.Equal(t, TypeLine, mismatch.Actual)
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))
}

func TestFromWireKeepsData(t *testing.T) {
	data := dataset.MustNew(dataset.Strings("a", "x"))
	c := &AreaChart{}
	c.Data = data
	require.NoError(t, c.FromWire([]byte(`{"type":"d3-area","title":"t"}`)))
	assert.Same(t, data, c.Data)
	assert.Equal(t, "t", c.Title.Value())
}

func TestCustomMetadata(t *testing.T) {
	c := &ScatterPlot{}
	c.Custom = optional.Some(json.RawMessage(`{"team":"graphics"}`))
	data, err := c.ToWire()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"d3-scatter-plot","metadata":{"custom":{"team":"graphics"}}}`, string(data))

	c.Custom = optional.Some(json.RawMessage(`{broken`))
	assert.Error(t, c.Validate())
}
