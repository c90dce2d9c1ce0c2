// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package wire

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Edit changes one path of a raw document. Paths use gjson dot syntax,
// e.g. "metadata.visualize.base-color".
type Edit struct {
	Path   string
	Value  string
	Delete bool
}

// ParseEdit parses "path=value". A value that is valid JSON is stored as is,
// anything else is stored as a string.
func ParseEdit(s string) (Edit, error) {
	path, value, ok := strings.Cut(s, "=")
	if !ok || path == "" {
		return Edit{}, fmt.Errorf("invalid edit %q, expected path=value", s)
	}
	return Edit{Path: path, Value: value}, nil
}

// Patch applies edits in order and returns the new document
func Patch(doc []byte, edits ...Edit) ([]byte, error) {
	var err error
	for _, e := range edits {
		switch {
		case e.Delete:
			doc, err = sjson.DeleteBytes(doc, e.Path)
		case e.Value != "" && gjson.Valid(e.Value):
			doc, err = sjson.SetRawBytes(doc, e.Path, []byte(e.Value))
		default:
			doc, err = sjson.SetBytes(doc, e.Path, e.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("edit %s: %w", e.Path, err)
		}
	}
	return doc, nil
}
