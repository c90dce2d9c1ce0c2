// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// LineInterpolation is the curve used between data points
type LineInterpolation string

const (
	LineInterpolationLinear     LineInterpolation = "linear"
	LineInterpolationStep       LineInterpolation = "step"
	LineInterpolationStepAfter  LineInterpolation = "step-after"
	LineInterpolationStepBefore LineInterpolation = "step-before"
	LineInterpolationCardinal   LineInterpolation = "cardinal"
	LineInterpolationMonotoneX  LineInterpolation = "monotone-x"
	LineInterpolationNatural    LineInterpolation = "natural"

	// LineInterpolationMonotone and LineInterpolationCurved are aliases of LineInterpolationMonotoneX
	LineInterpolationMonotone = LineInterpolationMonotoneX
	LineInterpolationCurved   = LineInterpolationMonotoneX
)

var lineInterpolations = newVocabulary(
	LineInterpolationLinear, LineInterpolationStep, LineInterpolationStepAfter, LineInterpolationStepBefore,
	LineInterpolationCardinal, LineInterpolationMonotoneX, LineInterpolationNatural,
)

func LineInterpolationValues() []LineInterpolation { return lineInterpolations.values() }
func (l LineInterpolation) IsKnown() bool          { return lineInterpolations.has(l) }
func (l LineInterpolation) Wire() any              { return string(l) }

// LineDash is the dash pattern of a line series
type LineDash string

const (
	LineDashSolid      LineDash = "style1"
	LineDashShortDash  LineDash = "style2"
	LineDashMediumDash LineDash = "style3"
	LineDashLongDash   LineDash = "style4"
)

var lineDashes = newVocabulary(LineDashSolid, LineDashShortDash, LineDashMediumDash, LineDashLongDash)

func LineDashValues() []LineDash { return lineDashes.values() }
func (l LineDash) IsKnown() bool { return lineDashes.has(l) }
func (l LineDash) Wire() any     { return string(l) }

// LineWidth is the stroke width of a line series
type LineWidth string

const (
	LineWidthThinnest  LineWidth = "style0"
	LineWidthThin      LineWidth = "style1"
	LineWidthMedium    LineWidth = "style2"
	LineWidthThick     LineWidth = "style3"
	LineWidthInvisible LineWidth = "invisible"
)

var lineWidths = newVocabulary(LineWidthThinnest, LineWidthThin, LineWidthMedium, LineWidthThick, LineWidthInvisible)

func LineWidthValues() []LineWidth { return lineWidths.values() }
func (l LineWidth) IsKnown() bool  { return lineWidths.has(l) }
func (l LineWidth) Wire() any      { return string(l) }

// SymbolShape is the marker drawn on a line series
type SymbolShape string

const (
	SymbolShapeCircle   SymbolShape = "circle"
	SymbolShapeSquare   SymbolShape = "square"
	SymbolShapeDiamond  SymbolShape = "diamond"
	SymbolShapeTriangle SymbolShape = "triangle"
	SymbolShapeCross    SymbolShape = "cross"
)

var symbolShapes = newVocabulary(SymbolShapeCircle, SymbolShapeSquare, SymbolShapeDiamond, SymbolShapeTriangle, SymbolShapeCross)

func SymbolShapeValues() []SymbolShape { return symbolShapes.values() }
func (s SymbolShape) IsKnown() bool    { return symbolShapes.has(s) }
func (s SymbolShape) Wire() any        { return string(s) }

// SymbolStyle fills or hollows a line marker
type SymbolStyle string

const (
	SymbolStyleHollow SymbolStyle = "hollow"
	SymbolStyleFill   SymbolStyle = "fill"
)

var symbolStyles = newVocabulary(SymbolStyleHollow, SymbolStyleFill)

func SymbolStyleValues() []SymbolStyle { return symbolStyles.values() }
func (s SymbolStyle) IsKnown() bool    { return symbolStyles.has(s) }
func (s SymbolStyle) Wire() any        { return string(s) }

// SymbolDisplay selects which points of a line carry a marker or label
type SymbolDisplay string

const (
	SymbolDisplayEvery SymbolDisplay = "every"
	SymbolDisplayFirst SymbolDisplay = "first"
	SymbolDisplayLast  SymbolDisplay = "last"
	SymbolDisplayBoth  SymbolDisplay = "both"
)

var symbolDisplays = newVocabulary(SymbolDisplayEvery, SymbolDisplayFirst, SymbolDisplayLast, SymbolDisplayBoth)

func SymbolDisplayValues() []SymbolDisplay { return symbolDisplays.values() }
func (s SymbolDisplay) IsKnown() bool      { return symbolDisplays.has(s) }
func (s SymbolDisplay) Wire() any          { return string(s) }
