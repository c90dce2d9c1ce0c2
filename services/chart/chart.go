// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chart drives the remote lifecycle of chart configurations:
// create, update, fetch, publish, export and delete.
package chart

import (
	"bytes"
	"context"
	"strings"

	chart_model "github.com/chartkit/dwclient/models/chart"
	"github.com/chartkit/dwclient/modules/dataset"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/sdk/datawrapper"

	"github.com/tidwall/gjson"
)

// Service runs chart operations against one API client
type Service struct {
	client *datawrapper.Client
}

// NewService returns a service using client
func NewService(client *datawrapper.Client) *Service {
	return &Service{client: client}
}

// Client returns the underlying API client
func (s *Service) Client() *datawrapper.Client {
	return s.client
}

// Create validates c, creates it remotely and uploads its data. The chart
// keeps its new id even when the data upload fails.
func (s *Service) Create(ctx context.Context, c chart_model.Chart) error {
	b := c.Common()
	if err := b.CanCreate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	doc, err := c.ToWire()
	if err != nil {
		return err
	}

	resp, _, err := s.client.CreateChartRaw(ctx, doc)
	if err != nil {
		return &OperationError{Op: "create", Step: "create-chart", Err: err}
	}
	id := gjson.GetBytes(resp, "id").String()
	if id == "" {
		return &OperationError{Op: "create", Step: "create-chart", Err: util.NewInvalidArgumentErrorf("response has no chart id")}
	}
	b.MarkSaved(id)
	log.Debug("Created %s chart %s", c.Type(), id)

	return s.uploadData(ctx, "create", b)
}

// Update sends the configuration of a saved chart and replaces its data
func (s *Service) Update(ctx context.Context, c chart_model.Chart) error {
	b := c.Common()
	if err := b.RequireID("update"); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	doc, err := c.ToWire()
	if err != nil {
		return err
	}

	if _, _, err := s.client.EditChartRaw(ctx, b.ID(), doc); err != nil {
		return &OperationError{Op: "update", Step: "edit-chart", ChartID: b.ID(), Err: err}
	}
	b.MarkSaved(b.ID())

	return s.uploadData(ctx, "update", b)
}

func (s *Service) uploadData(ctx context.Context, op string, b *chart_model.Base) error {
	if b.Data == nil || b.Data.IsEmpty() {
		return nil
	}
	csv, err := b.Data.CSV()
	if err != nil {
		return &OperationError{Op: op, Step: "encode-data", ChartID: b.ID(), Err: err}
	}
	if _, err := s.client.UploadChartData(ctx, b.ID(), strings.NewReader(csv)); err != nil {
		log.Warn("Chart %s was saved but uploading its data failed: %v", b.ID(), err)
		return &OperationError{Op: op, Step: "upload-data", ChartID: b.ID(), Err: err}
	}
	return nil
}

// Get fetches a chart and its data. The chart type is taken from the
// document.
func (s *Service) Get(ctx context.Context, id string) (chart_model.Chart, error) {
	raw, _, err := s.client.GetChartRaw(ctx, id)
	if err != nil {
		return nil, &OperationError{Op: "get", Step: "fetch-chart", ChartID: id, Err: err}
	}
	c, err := chart_model.Parse(raw)
	if err != nil {
		return nil, &OperationError{Op: "get", Step: "decode-chart", ChartID: id, Err: err}
	}
	if err := s.loadData(ctx, "get", id, c.Common()); err != nil {
		return nil, err
	}
	return c, nil
}

// Load fetches a chart into c. A document of another chart type is an error.
func (s *Service) Load(ctx context.Context, id string, c chart_model.Chart) error {
	raw, _, err := s.client.GetChartRaw(ctx, id)
	if err != nil {
		return &OperationError{Op: "load", Step: "fetch-chart", ChartID: id, Err: err}
	}
	if err := c.FromWire(raw); err != nil {
		return &OperationError{Op: "load", Step: "decode-chart", ChartID: id, Err: err}
	}
	return s.loadData(ctx, "load", id, c.Common())
}

func (s *Service) loadData(ctx context.Context, op, id string, b *chart_model.Base) error {
	data, _, err := s.client.GetChartData(ctx, id)
	if err != nil {
		return &OperationError{Op: op, Step: "fetch-data", ChartID: id, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		b.Data = nil
		return nil
	}
	ds, err := dataset.FromCSV(bytes.NewReader(data))
	if err != nil {
		return &OperationError{Op: op, Step: "decode-data", ChartID: id, Err: err}
	}
	b.Data = ds
	return nil
}

// Publish publishes a saved chart and records its public URL
func (s *Service) Publish(ctx context.Context, c chart_model.Chart) (*datawrapper.PublishResult, error) {
	b := c.Common()
	if err := b.RequireID("publish"); err != nil {
		return nil, err
	}
	result, _, err := s.client.PublishChart(ctx, b.ID())
	if err != nil {
		return nil, &OperationError{Op: "publish", Step: "publish", ChartID: b.ID(), Err: err}
	}
	b.MarkPublished(result.URL, result.Version)
	log.Info("Published chart %s at %s", b.ID(), result.URL)
	return result, nil
}

// Unpublish takes a published chart offline
func (s *Service) Unpublish(ctx context.Context, c chart_model.Chart) error {
	b := c.Common()
	if err := b.RequireID("unpublish"); err != nil {
		return err
	}
	if _, err := s.client.UnpublishChart(ctx, b.ID()); err != nil {
		return &OperationError{Op: "unpublish", Step: "unpublish", ChartID: b.ID(), Err: err}
	}
	b.MarkUnpublished()
	return nil
}

// Delete deletes a chart remotely. The chart must be Reset before it can
// be created again.
func (s *Service) Delete(ctx context.Context, c chart_model.Chart) error {
	b := c.Common()
	if err := b.RequireID("delete"); err != nil {
		return err
	}
	id := b.ID()
	if _, err := s.client.DeleteChart(ctx, id); err != nil {
		return &OperationError{Op: "delete", Step: "delete-chart", ChartID: id, Err: err}
	}
	b.MarkDeleted()
	log.Debug("Deleted chart %s", id)
	return nil
}

// Duplicate copies a chart and returns the copy
func (s *Service) Duplicate(ctx context.Context, c chart_model.Chart) (chart_model.Chart, error) {
	b := c.Common()
	if err := b.RequireID("duplicate"); err != nil {
		return nil, err
	}
	info, _, err := s.client.CopyChart(ctx, b.ID())
	if err != nil {
		return nil, &OperationError{Op: "duplicate", Step: "copy-chart", ChartID: b.ID(), Err: err}
	}
	return s.Get(ctx, info.ID)
}

// Fork forks a chart shared on the River and returns the fork
func (s *Service) Fork(ctx context.Context, c chart_model.Chart) (chart_model.Chart, error) {
	b := c.Common()
	if err := b.RequireID("fork"); err != nil {
		return nil, err
	}
	info, _, err := s.client.ForkChart(ctx, b.ID())
	if err != nil {
		return nil, &OperationError{Op: "fork", Step: "fork-chart", ChartID: b.ID(), Err: err}
	}
	return s.Get(ctx, info.ID)
}

// Move puts a chart into a folder
func (s *Service) Move(ctx context.Context, c chart_model.Chart, folderID int) error {
	b := c.Common()
	if err := b.RequireID("move"); err != nil {
		return err
	}
	if _, _, err := s.client.MoveChart(ctx, b.ID(), folderID); err != nil {
		return &OperationError{Op: "move", Step: "edit-chart", ChartID: b.ID(), Err: err}
	}
	b.Info.FolderID = folderID
	return nil
}

// RefreshData reloads the external data of a chart and fetches the result
func (s *Service) RefreshData(ctx context.Context, c chart_model.Chart) error {
	b := c.Common()
	if err := b.RequireID("refresh"); err != nil {
		return err
	}
	if _, _, err := s.client.RefreshChartData(ctx, b.ID()); err != nil {
		return &OperationError{Op: "refresh", Step: "refresh-data", ChartID: b.ID(), Err: err}
	}
	return s.loadData(ctx, "refresh", b.ID(), b)
}
