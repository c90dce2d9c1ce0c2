// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

import (
	"strconv"
)

// TextAlign anchors a text annotation to its position
type TextAlign string

const (
	TextAlignTopLeft      TextAlign = "tl"
	TextAlignTopCenter    TextAlign = "tc"
	TextAlignTopRight     TextAlign = "tr"
	TextAlignMiddleLeft   TextAlign = "ml"
	TextAlignMiddleCenter TextAlign = "mc"
	TextAlignMiddleRight  TextAlign = "mr"
	TextAlignBottomLeft   TextAlign = "bl"
	TextAlignBottomCenter TextAlign = "bc"
	TextAlignBottomRight  TextAlign = "br"
)

var textAligns = newVocabulary(
	TextAlignTopLeft, TextAlignTopCenter, TextAlignTopRight,
	TextAlignMiddleLeft, TextAlignMiddleCenter, TextAlignMiddleRight,
	TextAlignBottomLeft, TextAlignBottomCenter, TextAlignBottomRight,
)

func TextAlignValues() []TextAlign { return textAligns.values() }
func (t TextAlign) IsKnown() bool  { return textAligns.has(t) }
func (t TextAlign) Wire() any      { return string(t) }

// ConnectorLineType is the shape of the line joining an annotation to its target
type ConnectorLineType string

const (
	ConnectorLineTypeStraight   ConnectorLineType = "straight"
	ConnectorLineTypeCurveRight ConnectorLineType = "curveRight"
	ConnectorLineTypeCurveLeft  ConnectorLineType = "curveLeft"
)

var connectorLineTypes = newVocabulary(ConnectorLineTypeStraight, ConnectorLineTypeCurveRight, ConnectorLineTypeCurveLeft)

func ConnectorLineTypeValues() []ConnectorLineType { return connectorLineTypes.values() }
func (c ConnectorLineType) IsKnown() bool          { return connectorLineTypes.has(c) }
func (c ConnectorLineType) Wire() any              { return string(c) }

// StrokeWidth is an integer stroke weight
type StrokeWidth int

const (
	StrokeWidthThin   StrokeWidth = 1
	StrokeWidthMedium StrokeWidth = 2
	StrokeWidthThick  StrokeWidth = 3
)

var strokeWidths = newVocabulary(StrokeWidthThin, StrokeWidthMedium, StrokeWidthThick)

func StrokeWidthValues() []StrokeWidth { return strokeWidths.values() }
func (s StrokeWidth) IsKnown() bool    { return strokeWidths.has(s) }
func (s StrokeWidth) Wire() any        { return int(s) }
func (s StrokeWidth) String() string   { return strconv.Itoa(int(s)) }

// StrokeWidthFromWire accepts JSON numbers and numeric strings. Anything else
// yields 0, which is not a member.
func StrokeWidthFromWire(v any) StrokeWidth {
	switch t := v.(type) {
	case float64:
		return StrokeWidth(t)
	case int:
		return StrokeWidth(t)
	case string:
		n, _ := strconv.Atoi(t)
		return StrokeWidth(n)
	}
	return 0
}

// StrokeType is the dash style of a range annotation or connector circle
type StrokeType string

const (
	StrokeTypeSolid  StrokeType = "solid"
	StrokeTypeDashed StrokeType = "dashed"
	StrokeTypeDotted StrokeType = "dotted"
)

var strokeTypes = newVocabulary(StrokeTypeSolid, StrokeTypeDashed, StrokeTypeDotted)

func StrokeTypeValues() []StrokeType { return strokeTypes.values() }
func (s StrokeType) IsKnown() bool   { return strokeTypes.has(s) }
func (s StrokeType) Wire() any       { return string(s) }

// ArrowHead is the tip of a connector line. ArrowHeadNone is sent as JSON false.
type ArrowHead string

const (
	ArrowHeadLines    ArrowHead = "lines"
	ArrowHeadTriangle ArrowHead = "triangle"
	ArrowHeadNone     ArrowHead = "false"
)

var arrowHeads = newVocabulary(ArrowHeadLines, ArrowHeadTriangle, ArrowHeadNone)

func ArrowHeadValues() []ArrowHead { return arrowHeads.values() }
func (a ArrowHead) IsKnown() bool  { return arrowHeads.has(a) }

func (a ArrowHead) Wire() any {
	if a == ArrowHeadNone {
		return false
	}
	return string(a)
}

func ArrowHeadFromWire(v any) ArrowHead {
	if b, ok := v.(bool); ok && !b {
		return ArrowHeadNone
	}
	return FromWire[ArrowHead](v)
}

// RangeAnnotationType is the axis a range annotation spans
type RangeAnnotationType string

const (
	RangeAnnotationTypeX RangeAnnotationType = "x"
	RangeAnnotationTypeY RangeAnnotationType = "y"
)

var rangeAnnotationTypes = newVocabulary(RangeAnnotationTypeX, RangeAnnotationTypeY)

func RangeAnnotationTypeValues() []RangeAnnotationType { return rangeAnnotationTypes.values() }
func (r RangeAnnotationType) IsKnown() bool            { return rangeAnnotationTypes.has(r) }
func (r RangeAnnotationType) Wire() any                { return string(r) }

// RangeAnnotationDisplay draws a range annotation as a band or a single line
type RangeAnnotationDisplay string

const (
	RangeAnnotationDisplayLine  RangeAnnotationDisplay = "line"
	RangeAnnotationDisplayRange RangeAnnotationDisplay = "range"
)

var rangeAnnotationDisplays = newVocabulary(RangeAnnotationDisplayLine, RangeAnnotationDisplayRange)

func RangeAnnotationDisplayValues() []RangeAnnotationDisplay { return rangeAnnotationDisplays.values() }
func (r RangeAnnotationDisplay) IsKnown() bool               { return rangeAnnotationDisplays.has(r) }
func (r RangeAnnotationDisplay) Wire() any                   { return string(r) }

// OverlayType is the kind of a bar chart overlay
type OverlayType string

const (
	OverlayTypeValue OverlayType = "value"
	OverlayTypeRange OverlayType = "range"
)

var overlayTypes = newVocabulary(OverlayTypeValue, OverlayTypeRange)

func OverlayTypeValues() []OverlayType { return overlayTypes.values() }
func (o OverlayType) IsKnown() bool    { return overlayTypes.has(o) }
func (o OverlayType) Wire() any        { return string(o) }

// OverlayPattern is the fill pattern of a range overlay
type OverlayPattern string

const (
	OverlayPatternSolid        OverlayPattern = "solid"
	OverlayPatternDiagonalUp   OverlayPattern = "diagonal-up"
	OverlayPatternDiagonalDown OverlayPattern = "diagonal-down"
)

var overlayPatterns = newVocabulary(OverlayPatternSolid, OverlayPatternDiagonalUp, OverlayPatternDiagonalDown)

func OverlayPatternValues() []OverlayPattern { return overlayPatterns.values() }
func (o OverlayPattern) IsKnown() bool       { return overlayPatterns.has(o) }
func (o OverlayPattern) Wire() any           { return string(o) }
