// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"bytes"
	"context"
	"path"

	chart_model "github.com/chartkit/dwclient/models/chart"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/storage"
	"github.com/chartkit/dwclient/modules/typesniffer"
	"github.com/chartkit/dwclient/sdk/datawrapper"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// DefaultExportConcurrency bounds ExportAll when no limit is given
const DefaultExportConcurrency = 4

// ExportResult describes one stored export
type ExportResult struct {
	ChartID string
	Format  datawrapper.ExportFormat
	// Path is the object path in the sink
	Path string
	Size int64
	// ContentType is sniffed from the rendered bytes
	ContentType string
}

// ExportPath returns where an export of chart id is stored below dir
func ExportPath(dir, id string, format datawrapper.ExportFormat) string {
	return path.Join(dir, id+format.Extension())
}

// Export renders a saved chart and stores it in sink below dir
func (s *Service) Export(ctx context.Context, c chart_model.Chart, opt datawrapper.ExportOptions, sink storage.ObjectStorage, dir string) (*ExportResult, error) {
	if err := c.Common().RequireID("export"); err != nil {
		return nil, err
	}
	return s.ExportByID(ctx, c.ID(), opt, sink, dir)
}

// ExportByID renders chart id and stores it in sink below dir
func (s *Service) ExportByID(ctx context.Context, id string, opt datawrapper.ExportOptions, sink storage.ObjectStorage, dir string) (*ExportResult, error) {
	data, _, err := s.client.ExportChart(ctx, id, opt)
	if err != nil {
		return nil, &OperationError{Op: "export", Step: "export", ChartID: id, Err: err}
	}

	format := opt.OutputFormat()
	sniffed := typesniffer.DetectContentType(data)
	if !matchesFormat(sniffed, format) {
		log.Warn("Export of chart %s was requested as %s but looks like %s", id, format, sniffed.Mime())
	}
	p := ExportPath(dir, id, format)
	n, err := sink.Save(p, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &OperationError{Op: "export", Step: "store", ChartID: id, Err: err}
	}
	log.Debug("Exported chart %s to %s (%s)", id, p, humanize.IBytes(uint64(n)))
	return &ExportResult{ChartID: id, Format: format, Path: p, Size: n, ContentType: sniffed.Mime()}, nil
}

func matchesFormat(ct typesniffer.SniffedType, format datawrapper.ExportFormat) bool {
	switch format {
	case datawrapper.ExportPNG:
		return ct.IsPNG()
	case datawrapper.ExportPDF:
		return ct.IsPDF()
	case datawrapper.ExportSVG:
		return ct.IsSvgImage()
	}
	return false
}

// ExportAll exports several charts with at most concurrency requests in
// flight. Results keep the order of ids. The first error cancels the
// remaining exports and is returned with the results finished so far.
func (s *Service) ExportAll(ctx context.Context, ids []string, opt datawrapper.ExportOptions, sink storage.ObjectStorage, dir string, concurrency int) ([]*ExportResult, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		concurrency = DefaultExportConcurrency
	}

	results := make([]*ExportResult, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		g.Go(func() error {
			r, err := s.ExportByID(gctx, id, opt, sink, dir)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	return results, g.Wait()
}
