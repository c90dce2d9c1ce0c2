// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package wire

import (
	"testing"

	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectOrderAndUnsetFields(t *testing.T) {
	o := NewObject()
	Set(o, "type", optional.Some("d3-lines"))
	Set(o, "title", optional.None[string]())
	SetEnum(o, "x-grid", optional.Some(structs.GridDisplayTicks))
	SetObject(o, "metadata", NewObject())
	Sub(Sub(o, "a"), "b").Set("c", 1)

	data, err := Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"d3-lines","x-grid":"ticks","a":{"b":{"c":1}}}`, string(data))
	assert.Equal(t, []string{"type", "x-grid", "a"}, Keys(o))
}

func TestDocExtras(t *testing.T) {
	doc, err := Parse([]byte(`{
		"type": "d3-lines",
		"unknownRoot": 42,
		"metadata": {
			"visualize": {"base-color": "#333", "future-flag": true},
			"publish": {"embed-width": 600}
		}
	}`))
	require.NoError(t, err)

	root := doc.Root()
	var typ, color optional.Option[string]
	root.String("type", &typ)
	vis := root.Object("metadata").Object("visualize")
	vis.String("base-color", &color)

	assert.Equal(t, "d3-lines", typ.Value())
	assert.Equal(t, "#333", color.Value())

	extras := doc.Extras()
	require.Len(t, extras, 3)
	assert.Equal(t, Extra{Key: "unknownRoot", Raw: []byte("42")}, extras[0])
	assert.Equal(t, []string{"metadata", "visualize"}, extras[1].Path)
	assert.Equal(t, "future-flag", extras[1].Key)
	assert.Equal(t, []string{"metadata"}, extras[2].Path)
	assert.Equal(t, "publish", extras[2].Key)

	out := NewObject()
	out.Set("type", "d3-lines")
	Sub(Sub(out, "metadata"), "visualize").Set("base-color", "#333")
	extras.Apply(out)
	data, err := Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "d3-lines",
		"metadata": {
			"visualize": {"base-color": "#333", "future-flag": true},
			"publish": {"embed-width": 600}
		},
		"unknownRoot": 42
	}`, string(data))
}

func TestExtrasDoNotOverrideModeledKeys(t *testing.T) {
	out := NewObject()
	out.Set("title", "new")
	Extras{{Key: "title", Raw: []byte(`"old"`)}}.Apply(out)
	v, _ := out.Get("title")
	assert.Equal(t, "new", v)
}

func TestTypeMismatchStaysExtra(t *testing.T) {
	doc, err := Parse([]byte(`{"bar-padding": {"weird": 1}, "opacity": "0.5"}`))
	require.NoError(t, err)
	var padding, opacity optional.Option[float64]
	doc.Root().Float("bar-padding", &padding)
	doc.Root().Float("opacity", &opacity)
	assert.False(t, padding.Has())
	assert.Equal(t, 0.5, opacity.Value())
	extras := doc.Extras()
	require.Len(t, extras, 1)
	assert.Equal(t, "bar-padding", extras[0].Key)
}

func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrNotObject)
	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestRangeKeepsEmptyBounds(t *testing.T) {
	doc, err := Parse([]byte(`{"custom-range-y": ["", "100"], "custom-range-x": [0, ""]}`))
	require.NoError(t, err)
	var y, x optional.Option[Range]
	doc.Root().Range("custom-range-y", &y)
	doc.Root().Range("custom-range-x", &x)
	assert.Equal(t, Range{Empty, Num(100)}, y.Value())
	assert.Equal(t, Range{Num(0), Empty}, x.Value())
	assert.NotEqual(t, Num(0), Empty)

	o := NewObject()
	SetRange(o, "custom-range-y", y)
	data, err := Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"custom-range-y": ["", 100]}`, string(data))
}

func TestRangeOfOtherLengthStaysExtra(t *testing.T) {
	doc, err := Parse([]byte(`{"custom-range-y": [5], "custom-range-x": [1, 2, 3]}`))
	require.NoError(t, err)
	var y, x optional.Option[Range]
	doc.Root().Range("custom-range-y", &y)
	doc.Root().Range("custom-range-x", &x)
	assert.False(t, y.Has())
	assert.False(t, x.Has())

	extras := doc.Extras()
	raw, ok := extras.Get("custom-range-y")
	require.True(t, ok)
	assert.JSONEq(t, `[5]`, string(raw))
	raw, ok = extras.Get("custom-range-x")
	require.True(t, ok)
	assert.JSONEq(t, `[1, 2, 3]`, string(raw))
}

func TestTicks(t *testing.T) {
	doc, err := Parse([]byte(`{"custom-ticks-y": "0, 10,20", "custom-ticks-x": "2020,Q1", "empty": ""}`))
	require.NoError(t, err)
	var y, x, empty optional.Option[[]Scalar]
	doc.Root().Ticks("custom-ticks-y", &y)
	doc.Root().Ticks("custom-ticks-x", &x)
	doc.Root().Ticks("empty", &empty)
	assert.Equal(t, []Scalar{Num(0), Num(10), Num(20)}, y.Value())
	assert.Equal(t, []Scalar{Num(2020), Str("Q1")}, x.Value())
	assert.True(t, empty.Has())
	assert.Empty(t, empty.Value())

	o := NewObject()
	SetTicks(o, "custom-ticks", y)
	v, _ := o.Get("custom-ticks")
	assert.Equal(t, "0,10,20", v)
}

func TestReplaceFlagsAndToggledColor(t *testing.T) {
	o := NewObject()
	SetReplaceFlags(o, "replace-flags", optional.Some(structs.ReplaceFlagsFourByThree))
	SetReplaceFlags(o, "off-flags", optional.Some(structs.ReplaceFlagsOff))
	SetToggledColor(o, "negativeColor", optional.Some(Toggled[string]{Value: "#E31A1C"}))
	data, err := Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"replace-flags": {"enabled": true, "style": "4x3"},
		"off-flags": {"enabled": false, "style": ""},
		"negativeColor": {"value": "#E31A1C", "enabled": false}
	}`, string(data))

	doc, err := Parse(data)
	require.NoError(t, err)
	var flags, off optional.Option[structs.ReplaceFlagsType]
	var neg optional.Option[Toggled[string]]
	doc.Root().ReplaceFlags("replace-flags", &flags)
	doc.Root().ReplaceFlags("off-flags", &off)
	doc.Root().ToggledColor("negativeColor", &neg)
	assert.Equal(t, structs.ReplaceFlagsFourByThree, flags.Value())
	assert.Equal(t, structs.ReplaceFlagsOff, off.Value())
	assert.Equal(t, Toggled[string]{Value: "#E31A1C"}, neg.Value())
	assert.Empty(t, doc.Extras())
}

func TestItemsArrayOrKeyed(t *testing.T) {
	doc, err := Parse([]byte(`{"a": [{"text": "one"}, {"text": "two"}], "b": {"id2": {"text": "x"}, "id1": {"text": "y"}}}`))
	require.NoError(t, err)
	a, ok := doc.Root().Items("a")
	require.True(t, ok)
	assert.Len(t, a, 2)
	assert.Equal(t, "two", a[1].Value.Get("text").String())

	b, ok := doc.Root().Items("b")
	require.True(t, ok)
	require.Len(t, b, 2)
	assert.Equal(t, "id2", b[0].ID)
	assert.Equal(t, "id1", b[1].ID)
}

func TestEnumPassThrough(t *testing.T) {
	doc, err := Parse([]byte(`{"x-grid": "sparkle", "stroke": 2, "arrowHead": false}`))
	require.NoError(t, err)
	var grid optional.Option[structs.GridDisplay]
	var stroke optional.Option[structs.StrokeWidth]
	var head optional.Option[structs.ArrowHead]
	StringEnum(doc.Root(), "x-grid", &grid)
	Enum(doc.Root(), "stroke", &stroke, structs.StrokeWidthFromWire)
	Enum(doc.Root(), "arrowHead", &head, structs.ArrowHeadFromWire)
	assert.Equal(t, structs.GridDisplay("sparkle"), grid.Value())
	assert.False(t, grid.Value().IsKnown())
	assert.Equal(t, structs.StrokeWidthMedium, stroke.Value())
	assert.Equal(t, structs.ArrowHeadNone, head.Value())
}

func TestPatch(t *testing.T) {
	doc := []byte(`{"title":"a","metadata":{"visualize":{"x":1}}}`)
	e1, err := ParseEdit("metadata.visualize.base-color=#ff0000")
	require.NoError(t, err)
	e2, err := ParseEdit("metadata.visualize.thick=true")
	require.NoError(t, err)
	out, err := Patch(doc, e1, e2, Edit{Path: "metadata.visualize.x", Delete: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"a","metadata":{"visualize":{"base-color":"#ff0000","thick":true}}}`, string(out))

	_, err = ParseEdit("novalue")
	assert.Error(t, err)
}
