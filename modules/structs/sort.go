// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// SortAreas orders the series of an area chart
type SortAreas string

const (
	SortAreasKeep SortAreas = "keep"
	SortAreasAsc  SortAreas = "asc"
	SortAreasDesc SortAreas = "desc"
)

var sortAreas = newVocabulary(SortAreasKeep, SortAreasAsc, SortAreasDesc)

func SortAreasValues() []SortAreas { return sortAreas.values() }
func (s SortAreas) IsKnown() bool  { return sortAreas.has(s) }
func (s SortAreas) Wire() any      { return string(s) }

// ArrowSortBy is the sort key of an arrow chart
type ArrowSortBy string

const (
	ArrowSortByEnd        ArrowSortBy = "end"
	ArrowSortByStart      ArrowSortBy = "start"
	ArrowSortByDifference ArrowSortBy = "difference"
	ArrowSortByChange     ArrowSortBy = "change"
)

var arrowSortBys = newVocabulary(ArrowSortByEnd, ArrowSortByStart, ArrowSortByDifference, ArrowSortByChange)

func ArrowSortByValues() []ArrowSortBy { return arrowSortBys.values() }
func (a ArrowSortBy) IsKnown() bool    { return arrowSortBys.has(a) }
func (a ArrowSortBy) Wire() any        { return string(a) }

// RangeExtent is how the value axis of an arrow chart is bounded
type RangeExtent string

const (
	RangeExtentNice   RangeExtent = "nice"
	RangeExtentCustom RangeExtent = "custom"
	RangeExtentData   RangeExtent = "data"
)

var rangeExtents = newVocabulary(RangeExtentNice, RangeExtentCustom, RangeExtentData)

func RangeExtentValues() []RangeExtent { return rangeExtents.values() }
func (r RangeExtent) IsKnown() bool    { return rangeExtents.has(r) }
func (r RangeExtent) Wire() any        { return string(r) }

// MultipleColumnSortBy is the panel sort key of a multiple column chart
type MultipleColumnSortBy string

const (
	MultipleColumnSortByStart  MultipleColumnSortBy = "start"
	MultipleColumnSortByEnd    MultipleColumnSortBy = "end"
	MultipleColumnSortByRange  MultipleColumnSortBy = "range"
	MultipleColumnSortByDiff   MultipleColumnSortBy = "diff"
	MultipleColumnSortByChange MultipleColumnSortBy = "change"
	MultipleColumnSortByTitle  MultipleColumnSortBy = "title"
)

var multipleColumnSortBys = newVocabulary(
	MultipleColumnSortByStart, MultipleColumnSortByEnd, MultipleColumnSortByRange,
	MultipleColumnSortByDiff, MultipleColumnSortByChange, MultipleColumnSortByTitle,
)

func MultipleColumnSortByValues() []MultipleColumnSortBy { return multipleColumnSortBys.values() }
func (m MultipleColumnSortBy) IsKnown() bool             { return multipleColumnSortBys.has(m) }
func (m MultipleColumnSortBy) Wire() any                 { return string(m) }
