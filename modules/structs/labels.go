// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

import (
	"strconv"
)

// ValueLabelDisplay controls when value labels are shown
type ValueLabelDisplay string

const (
	ValueLabelDisplayHover  ValueLabelDisplay = "hover"
	ValueLabelDisplayAlways ValueLabelDisplay = "always"
	ValueLabelDisplayOff    ValueLabelDisplay = "off"
)

var valueLabelDisplays = newVocabulary(ValueLabelDisplayHover, ValueLabelDisplayAlways, ValueLabelDisplayOff)

func ValueLabelDisplayValues() []ValueLabelDisplay { return valueLabelDisplays.values() }
func (v ValueLabelDisplay) IsKnown() bool          { return valueLabelDisplays.has(v) }
func (v ValueLabelDisplay) Wire() any              { return string(v) }

// ValueLabelPlacement positions value labels relative to their bar
type ValueLabelPlacement string

const (
	ValueLabelPlacementInside  ValueLabelPlacement = "inside"
	ValueLabelPlacementOutside ValueLabelPlacement = "outside"
	ValueLabelPlacementBelow   ValueLabelPlacement = "below"
)

var valueLabelPlacements = newVocabulary(ValueLabelPlacementInside, ValueLabelPlacementOutside, ValueLabelPlacementBelow)

func ValueLabelPlacementValues() []ValueLabelPlacement { return valueLabelPlacements.values() }
func (v ValueLabelPlacement) IsKnown() bool            { return valueLabelPlacements.has(v) }
func (v ValueLabelPlacement) Wire() any                { return string(v) }

// ValueLabelAlignment aligns the value labels of a bar chart
type ValueLabelAlignment string

const (
	ValueLabelAlignmentLeft  ValueLabelAlignment = "left"
	ValueLabelAlignmentRight ValueLabelAlignment = "right"
)

var valueLabelAlignments = newVocabulary(ValueLabelAlignmentLeft, ValueLabelAlignmentRight)

func ValueLabelAlignmentValues() []ValueLabelAlignment { return valueLabelAlignments.values() }
func (v ValueLabelAlignment) IsKnown() bool            { return valueLabelAlignments.has(v) }
func (v ValueLabelAlignment) Wire() any                { return string(v) }

// ValueLabelMode lays out the value labels of a stacked bar chart
type ValueLabelMode string

const (
	ValueLabelModeLeft      ValueLabelMode = "left"
	ValueLabelModeDiverging ValueLabelMode = "diverging"
)

var valueLabelModes = newVocabulary(ValueLabelModeLeft, ValueLabelModeDiverging)

func ValueLabelModeValues() []ValueLabelMode { return valueLabelModes.values() }
func (v ValueLabelMode) IsKnown() bool       { return valueLabelModes.has(v) }
func (v ValueLabelMode) Wire() any           { return string(v) }

// ReplaceFlagsType replaces country codes in labels with flag icons
type ReplaceFlagsType string

const (
	ReplaceFlagsOff         ReplaceFlagsType = "off"
	ReplaceFlagsFourByThree ReplaceFlagsType = "4x3"
	ReplaceFlagsOneByOne    ReplaceFlagsType = "1x1"
	ReplaceFlagsCircle      ReplaceFlagsType = "circle"
)

var replaceFlagsTypes = newVocabulary(ReplaceFlagsOff, ReplaceFlagsFourByThree, ReplaceFlagsOneByOne, ReplaceFlagsCircle)

func ReplaceFlagsTypeValues() []ReplaceFlagsType { return replaceFlagsTypes.values() }
func (r ReplaceFlagsType) IsKnown() bool         { return replaceFlagsTypes.has(r) }
func (r ReplaceFlagsType) Wire() any             { return string(r) }

// NumberDivisor is the power of ten numbers are divided by before display.
// Negative values multiply.
type NumberDivisor string

const (
	NumberDivisorNoChange           NumberDivisor = "0"
	NumberDivisorAutoDetect         NumberDivisor = "auto"
	NumberDivisorDivideByThousand   NumberDivisor = "3"
	NumberDivisorDivideByMillion    NumberDivisor = "6"
	NumberDivisorDivideByBillion    NumberDivisor = "9"
	NumberDivisorMultiplyByHundred  NumberDivisor = "-2"
	NumberDivisorMultiplyByThousand NumberDivisor = "-3"
	NumberDivisorMultiplyByMillion  NumberDivisor = "-6"
	NumberDivisorMultiplyByBillion  NumberDivisor = "-9"
	NumberDivisorMultiplyByTrillion NumberDivisor = "-12"
)

var numberDivisors = newVocabulary(
	NumberDivisorNoChange, NumberDivisorAutoDetect,
	NumberDivisorDivideByThousand, NumberDivisorDivideByMillion, NumberDivisorDivideByBillion,
	NumberDivisorMultiplyByHundred, NumberDivisorMultiplyByThousand, NumberDivisorMultiplyByMillion,
	NumberDivisorMultiplyByBillion, NumberDivisorMultiplyByTrillion,
)

func NumberDivisorValues() []NumberDivisor { return numberDivisors.values() }
func (n NumberDivisor) IsKnown() bool      { return numberDivisors.has(n) }

// Wire returns an integer for numeric divisors and the literal otherwise
func (n NumberDivisor) Wire() any {
	if i, err := strconv.Atoi(string(n)); err == nil {
		return i
	}
	return string(n)
}
