// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// UploadMethod records how chart data reached the server
type UploadMethod string

const (
	UploadMethodCopy              UploadMethod = "copy"
	UploadMethodUpload            UploadMethod = "upload"
	UploadMethodGoogleSpreadsheet UploadMethod = "google-spreadsheet"
	UploadMethodExternalData      UploadMethod = "external-data"
)

var uploadMethods = newVocabulary(UploadMethodCopy, UploadMethodUpload, UploadMethodGoogleSpreadsheet, UploadMethodExternalData)

func UploadMethodValues() []UploadMethod { return uploadMethods.values() }
func (u UploadMethod) IsKnown() bool     { return uploadMethods.has(u) }
func (u UploadMethod) Wire() any         { return string(u) }

// ColumnType overrides the type the server infers for a data column
type ColumnType string

const (
	ColumnTypeAuto   ColumnType = "auto"
	ColumnTypeText   ColumnType = "text"
	ColumnTypeNumber ColumnType = "number"
	ColumnTypeDate   ColumnType = "date"
)

var columnTypes = newVocabulary(ColumnTypeAuto, ColumnTypeText, ColumnTypeNumber, ColumnTypeDate)

func ColumnTypeValues() []ColumnType { return columnTypes.values() }
func (c ColumnType) IsKnown() bool   { return columnTypes.has(c) }
func (c ColumnType) Wire() any       { return string(c) }
