// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// GridDisplay controls grid lines and ticks on an axis
type GridDisplay string

const (
	GridDisplayOff   GridDisplay = "off"
	GridDisplayOn    GridDisplay = "on"
	GridDisplayTicks GridDisplay = "ticks"
	GridDisplayLines GridDisplay = "lines"
)

var gridDisplays = newVocabulary(GridDisplayOff, GridDisplayOn, GridDisplayTicks, GridDisplayLines)

func GridDisplayValues() []GridDisplay { return gridDisplays.values() }
func (g GridDisplay) IsKnown() bool    { return gridDisplays.has(g) }
func (g GridDisplay) Wire() any        { return string(g) }

// GridLabelPosition places axis labels relative to the plot
type GridLabelPosition string

const (
	GridLabelPositionAuto    GridLabelPosition = "auto"
	GridLabelPositionInside  GridLabelPosition = "inside"
	GridLabelPositionOutside GridLabelPosition = "outside"
	GridLabelPositionOff     GridLabelPosition = "off"
	GridLabelPositionOn      GridLabelPosition = "on"
)

var gridLabelPositions = newVocabulary(
	GridLabelPositionAuto, GridLabelPositionInside, GridLabelPositionOutside,
	GridLabelPositionOff, GridLabelPositionOn,
)

func GridLabelPositionValues() []GridLabelPosition { return gridLabelPositions.values() }
func (g GridLabelPosition) IsKnown() bool          { return gridLabelPositions.has(g) }
func (g GridLabelPosition) Wire() any              { return string(g) }

// GridLabelAlign aligns axis labels
type GridLabelAlign string

const (
	GridLabelAlignLeft  GridLabelAlign = "left"
	GridLabelAlignRight GridLabelAlign = "right"
)

var gridLabelAligns = newVocabulary(GridLabelAlignLeft, GridLabelAlignRight)

func GridLabelAlignValues() []GridLabelAlign { return gridLabelAligns.values() }
func (g GridLabelAlign) IsKnown() bool       { return gridLabelAligns.has(g) }
func (g GridLabelAlign) Wire() any           { return string(g) }

// TickPosition places the value axis ticks of a bar chart
type TickPosition string

const (
	TickPositionTop    TickPosition = "top"
	TickPositionBottom TickPosition = "bottom"
)

var tickPositions = newVocabulary(TickPositionTop, TickPositionBottom)

func TickPositionValues() []TickPosition { return tickPositions.values() }
func (t TickPosition) IsKnown() bool     { return tickPositions.has(t) }
func (t TickPosition) Wire() any         { return string(t) }

// ScaleType is the scale of a value axis
type ScaleType string

const (
	ScaleTypeLinear ScaleType = "linear"
	ScaleTypeLog    ScaleType = "log"
)

var scaleTypes = newVocabulary(ScaleTypeLinear, ScaleTypeLog)

func ScaleTypeValues() []ScaleType { return scaleTypes.values() }
func (s ScaleType) IsKnown() bool  { return scaleTypes.has(s) }
func (s ScaleType) Wire() any      { return string(s) }

// PlotHeightMode selects between a fixed height and an aspect ratio
type PlotHeightMode string

const (
	PlotHeightModeFixed PlotHeightMode = "fixed"
	PlotHeightModeRatio PlotHeightMode = "ratio"
)

var plotHeightModes = newVocabulary(PlotHeightModeFixed, PlotHeightModeRatio)

func PlotHeightModeValues() []PlotHeightMode { return plotHeightModes.values() }
func (p PlotHeightMode) IsKnown() bool       { return plotHeightModes.has(p) }
func (p PlotHeightMode) Wire() any           { return string(p) }

// GridLayout is the panel layout of a multiple column chart
type GridLayout string

const (
	GridLayoutFixedCount   GridLayout = "fixedCount"
	GridLayoutMinimumWidth GridLayout = "minimumWidth"
)

var gridLayouts = newVocabulary(GridLayoutFixedCount, GridLayoutMinimumWidth)

func GridLayoutValues() []GridLayout { return gridLayouts.values() }
func (g GridLayout) IsKnown() bool   { return gridLayouts.has(g) }
func (g GridLayout) Wire() any       { return string(g) }
