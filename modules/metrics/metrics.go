// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of the API client:
//
//	dwclient_requests_total{method,route,status}
//	dwclient_request_duration_seconds{method,route}
//	dwclient_export_bytes_total{format}
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusNetworkError is the status label of requests that got no response
const StatusNetworkError = "error"

// Collector counts API requests. A nil *Collector ignores all observations.
type Collector struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	exportBytes *prometheus.CounterVec
}

// NewCollector creates unregistered collectors
func NewCollector() *Collector {
	return &Collector{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dwclient",
				Name:      "requests_total",
				Help:      "Number of API requests by method, route and response status",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "dwclient",
				Name:      "request_duration_seconds",
				Help:      "API request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		exportBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dwclient",
				Name:      "export_bytes_total",
				Help:      "Bytes of exported chart images by format",
			},
			[]string{"format"},
		),
	}
}

// Register adds the collectors to reg
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.requests, c.duration, c.exportBytes} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRequest records one finished request. status 0 means no response was received.
func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	label := StatusNetworkError
	if status > 0 {
		label = strconv.Itoa(status)
	}
	c.requests.WithLabelValues(method, route, label).Inc()
	c.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveExport records the size of an exported image
func (c *Collector) ObserveExport(format string, size int) {
	if c == nil {
		return
	}
	c.exportBytes.WithLabelValues(format).Add(float64(size))
}

// Requests returns the request counter, for tests
func (c *Collector) Requests() *prometheus.CounterVec {
	return c.requests
}

// ExportBytes returns the export size counter, for tests
func (c *Collector) ExportBytes() *prometheus.CounterVec {
	return c.exportBytes
}

// Handler serves the metrics of g in the Prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
