// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// ScatterShape is a d3 symbol used for scatter plot points
type ScatterShape string

const (
	ScatterShapeCircle       ScatterShape = "symbolCircle"
	ScatterShapeSquare       ScatterShape = "symbolSquare"
	ScatterShapeDiamond      ScatterShape = "symbolDiamond"
	ScatterShapeTriangle     ScatterShape = "symbolTriangle"
	ScatterShapeTriangleDown ScatterShape = "symbolTriangleDown"
	ScatterShapeCross        ScatterShape = "symbolCross"
	ScatterShapeStar         ScatterShape = "symbolStar"
	ScatterShapeWye          ScatterShape = "symbolWye"
)

var scatterShapes = newVocabulary(
	ScatterShapeCircle, ScatterShapeSquare, ScatterShapeDiamond, ScatterShapeTriangle,
	ScatterShapeTriangleDown, ScatterShapeCross, ScatterShapeStar, ScatterShapeWye,
)

func ScatterShapeValues() []ScatterShape { return scatterShapes.values() }
func (s ScatterShape) IsKnown() bool     { return scatterShapes.has(s) }
func (s ScatterShape) Wire() any         { return string(s) }

// ScatterSize selects fixed or data driven point sizes
type ScatterSize string

const (
	ScatterSizeFixed   ScatterSize = "fixed"
	ScatterSizeDynamic ScatterSize = "dynamic"
)

var scatterSizes = newVocabulary(ScatterSizeFixed, ScatterSizeDynamic)

func ScatterSizeValues() []ScatterSize { return scatterSizes.values() }
func (s ScatterSize) IsKnown() bool    { return scatterSizes.has(s) }
func (s ScatterSize) Wire() any        { return string(s) }

// ScatterAxisPosition places a scatter plot axis
type ScatterAxisPosition string

const (
	ScatterAxisPositionBottom ScatterAxisPosition = "bottom"
	ScatterAxisPositionTop    ScatterAxisPosition = "top"
	ScatterAxisPositionLeft   ScatterAxisPosition = "left"
	ScatterAxisPositionRight  ScatterAxisPosition = "right"
	ScatterAxisPositionZero   ScatterAxisPosition = "zero"
	ScatterAxisPositionOff    ScatterAxisPosition = "off"
)

var scatterAxisPositions = newVocabulary(
	ScatterAxisPositionBottom, ScatterAxisPositionTop, ScatterAxisPositionLeft,
	ScatterAxisPositionRight, ScatterAxisPositionZero, ScatterAxisPositionOff,
)

func ScatterAxisPositionValues() []ScatterAxisPosition { return scatterAxisPositions.values() }
func (s ScatterAxisPosition) IsKnown() bool            { return scatterAxisPositions.has(s) }
func (s ScatterAxisPosition) Wire() any                { return string(s) }

// ScatterGridLines controls grid lines and labels of a scatter plot axis
type ScatterGridLines string

const (
	ScatterGridLinesOn         ScatterGridLines = "on"
	ScatterGridLinesOff        ScatterGridLines = "off"
	ScatterGridLinesNoLabels   ScatterGridLines = "no-labels"
	ScatterGridLinesJustLabels ScatterGridLines = "just-labels"
)

var scatterGridLines = newVocabulary(ScatterGridLinesOn, ScatterGridLinesOff, ScatterGridLinesNoLabels, ScatterGridLinesJustLabels)

func ScatterGridLinesValues() []ScatterGridLines { return scatterGridLines.values() }
func (s ScatterGridLines) IsKnown() bool         { return scatterGridLines.has(s) }
func (s ScatterGridLines) Wire() any             { return string(s) }

// RegressionMethod is the fit drawn through a scatter plot
type RegressionMethod string

const (
	RegressionMethodLinear      RegressionMethod = "linear"
	RegressionMethodQuadratic   RegressionMethod = "quadratic"
	RegressionMethodCubic       RegressionMethod = "cubic"
	RegressionMethodExponential RegressionMethod = "exponential"
	RegressionMethodLogarithmic RegressionMethod = "logarithmic"
	RegressionMethodPower       RegressionMethod = "power"
)

var regressionMethods = newVocabulary(
	RegressionMethodLinear, RegressionMethodQuadratic, RegressionMethodCubic,
	RegressionMethodExponential, RegressionMethodLogarithmic, RegressionMethodPower,
)

func RegressionMethodValues() []RegressionMethod { return regressionMethods.values() }
func (r RegressionMethod) IsKnown() bool         { return regressionMethods.has(r) }
func (r RegressionMethod) Wire() any             { return string(r) }

// SizeLegendPosition places the size legend of a scatter plot
type SizeLegendPosition string

const (
	SizeLegendPositionAbove              SizeLegendPosition = "above"
	SizeLegendPositionBelow              SizeLegendPosition = "below"
	SizeLegendPositionInsideLeftTop      SizeLegendPosition = "inside-left-top"
	SizeLegendPositionInsideCenterTop    SizeLegendPosition = "inside-center-top"
	SizeLegendPositionInsideRightTop     SizeLegendPosition = "inside-right-top"
	SizeLegendPositionInsideLeftBottom   SizeLegendPosition = "inside-left-bottom"
	SizeLegendPositionInsideCenterBottom SizeLegendPosition = "inside-center-bottom"
	SizeLegendPositionInsideRightBottom  SizeLegendPosition = "inside-right-bottom"
)

var sizeLegendPositions = newVocabulary(
	SizeLegendPositionAbove, SizeLegendPositionBelow,
	SizeLegendPositionInsideLeftTop, SizeLegendPositionInsideCenterTop, SizeLegendPositionInsideRightTop,
	SizeLegendPositionInsideLeftBottom, SizeLegendPositionInsideCenterBottom, SizeLegendPositionInsideRightBottom,
)

func SizeLegendPositionValues() []SizeLegendPosition { return sizeLegendPositions.values() }
func (s SizeLegendPosition) IsKnown() bool           { return sizeLegendPositions.has(s) }
func (s SizeLegendPosition) Wire() any               { return string(s) }

// SizeLegendValues selects automatic or custom size legend values
type SizeLegendValues string

const (
	SizeLegendValuesAuto   SizeLegendValues = "auto"
	SizeLegendValuesCustom SizeLegendValues = "custom"
)

var sizeLegendValues = newVocabulary(SizeLegendValuesAuto, SizeLegendValuesCustom)

func SizeLegendValuesValues() []SizeLegendValues { return sizeLegendValues.values() }
func (s SizeLegendValues) IsKnown() bool         { return sizeLegendValues.has(s) }
func (s SizeLegendValues) Wire() any             { return string(s) }

// SizeLegendLabelPosition places the labels of the size legend
type SizeLegendLabelPosition string

const (
	SizeLegendLabelPositionBelow SizeLegendLabelPosition = "below"
	SizeLegendLabelPositionRight SizeLegendLabelPosition = "right"
)

var sizeLegendLabelPositions = newVocabulary(SizeLegendLabelPositionBelow, SizeLegendLabelPositionRight)

func SizeLegendLabelPositionValues() []SizeLegendLabelPosition {
	return sizeLegendLabelPositions.values()
}
func (s SizeLegendLabelPosition) IsKnown() bool { return sizeLegendLabelPositions.has(s) }
func (s SizeLegendLabelPosition) Wire() any     { return string(s) }

// SizeLegendTitlePosition places the title of the size legend
type SizeLegendTitlePosition string

const (
	SizeLegendTitlePositionLeft  SizeLegendTitlePosition = "left"
	SizeLegendTitlePositionRight SizeLegendTitlePosition = "right"
	SizeLegendTitlePositionAbove SizeLegendTitlePosition = "above"
	SizeLegendTitlePositionBelow SizeLegendTitlePosition = "below"
)

var sizeLegendTitlePositions = newVocabulary(
	SizeLegendTitlePositionLeft, SizeLegendTitlePositionRight,
	SizeLegendTitlePositionAbove, SizeLegendTitlePositionBelow,
)

func SizeLegendTitlePositionValues() []SizeLegendTitlePosition {
	return sizeLegendTitlePositions.values()
}
func (s SizeLegendTitlePosition) IsKnown() bool { return sizeLegendTitlePositions.has(s) }
func (s SizeLegendTitlePosition) Wire() any     { return string(s) }
