// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"context"

	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// patchableKeys are the root keys the API accepts on PATCH
var patchableKeys = []string{"title", "type", "theme", "language", "folderId", "metadata"}

// Patch applies raw edits to the stored document of chart id and sends the
// result without validation. It is the escape hatch for settings no chart
// field models. The updated document is returned.
func (s *Service) Patch(ctx context.Context, id string, edits ...wire.Edit) ([]byte, error) {
	if len(edits) == 0 {
		return nil, util.NewInvalidArgumentErrorf("no edits given")
	}
	raw, _, err := s.client.GetChartRaw(ctx, id)
	if err != nil {
		return nil, &OperationError{Op: "patch", Step: "fetch-chart", ChartID: id, Err: err}
	}
	patched, err := wire.Patch(raw, edits...)
	if err != nil {
		return nil, &OperationError{Op: "patch", Step: "apply-edits", ChartID: id, Err: err}
	}
	body, err := editableDocument(patched)
	if err != nil {
		return nil, &OperationError{Op: "patch", Step: "apply-edits", ChartID: id, Err: err}
	}
	updated, _, err := s.client.EditChartRaw(ctx, id, body)
	if err != nil {
		return nil, &OperationError{Op: "patch", Step: "edit-chart", ChartID: id, Err: err}
	}
	return updated, nil
}

// editableDocument drops the server managed keys of a fetched document
func editableDocument(doc []byte) ([]byte, error) {
	out := []byte("{}")
	var err error
	for _, key := range patchableKeys {
		r := gjson.GetBytes(doc, key)
		if !r.Exists() {
			continue
		}
		if out, err = sjson.SetRawBytes(out, key, []byte(r.Raw)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
