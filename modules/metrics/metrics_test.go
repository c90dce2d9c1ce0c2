// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))

	c.ObserveRequest("GET", "/charts/:id", 200, 20*time.Millisecond)
	c.ObserveRequest("GET", "/charts/:id", 200, 30*time.Millisecond)
	c.ObserveRequest("POST", "/charts", 0, time.Second)
	c.ObserveExport("png", 2048)

	assert.InDelta(t, 2, testutil.ToFloat64(c.Requests().WithLabelValues("GET", "/charts/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Requests().WithLabelValues("POST", "/charts", StatusNetworkError)), 0)
	assert.InDelta(t, 2048, testutil.ToFloat64(c.ExportBytes().WithLabelValues("png")), 0)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "dwclient_requests_total")
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveRequest("GET", "/me", 200, time.Millisecond)
		c.ObserveExport("pdf", 1)
	})
}
