// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	chart_model "github.com/chartkit/dwclient/models/chart"
	"github.com/chartkit/dwclient/modules/setting"
	"github.com/chartkit/dwclient/modules/storage"
	"github.com/chartkit/dwclient/sdk/datawrapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T) storage.ObjectStorage {
	sink, err := storage.NewStorage(context.Background(), setting.LocalStorageType, &setting.Storage{Path: t.TempDir()})
	require.NoError(t, err)
	return sink
}

func TestExport(t *testing.T) {
	s, srv := newTestService(t)
	srv.Respond("GET", "/charts/abc12/export/svg", http.StatusOK, "image/svg+xml", "<svg/>")
	sink := newSink(t)

	c := &chart_model.ScatterPlot{}
	c.MarkSaved("abc12")
	opt := datawrapper.DefaultExportOptions()
	opt.Format = datawrapper.ExportSVG

	result, err := s.Export(context.Background(), c, opt, sink, "exports")
	require.NoError(t, err)
	assert.Equal(t, "exports/abc12.svg", result.Path)
	assert.EqualValues(t, 6, result.Size)
	assert.Equal(t, "image/svg+xml", result.ContentType)

	f, err := sink.Open(result.Path)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestExportAll(t *testing.T) {
	s, srv := newTestService(t)
	var inFlight, peak atomic.Int32
	ids := []string{"a1", "b2", "c3", "d4", "e5"}
	for _, id := range ids {
		srv.HandleFunc("GET", "/charts/"+id+"/export/png", func(w http.ResponseWriter, _ *http.Request) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			_, _ = io.WriteString(w, "png-"+id)
		})
	}
	sink := newSink(t)

	results, err := s.ExportAll(context.Background(), ids, datawrapper.DefaultExportOptions(), sink, "", 2)
	require.NoError(t, err)
	require.Len(t, results, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, results[i].ChartID)
		assert.Equal(t, id+".png", results[i].Path)
		_, err := sink.Stat(results[i].Path)
		assert.NoError(t, err)
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestExportAllStopsOnError(t *testing.T) {
	s, srv := newTestService(t)
	srv.Respond("GET", "/charts/a1/export/png", http.StatusOK, "image/png", "png")
	sink := newSink(t)

	_, err := s.ExportAll(context.Background(), []string{"a1", "missing"}, datawrapper.DefaultExportOptions(), sink, "", 1)
	require.Error(t, err)
	assert.Equal(t, "export", FailedStep(err))
	assert.True(t, datawrapper.IsInvalidRequestError(err))

	opt := datawrapper.DefaultExportOptions()
	opt.Zoom = -1
	_, err = s.ExportAll(context.Background(), []string{"a1"}, opt, sink, "", 1)
	assert.Error(t, err)
}
