// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package datawrappertest provides a recording fake of the Datawrapper API
package datawrappertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/sdk/datawrapper"
)

// Token is accepted by the server when token checking is enabled
const Token = "test-token"

// Request is one request received by the server
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the request body into v
func (r Request) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

type route struct {
	method, path string
}

// Server records every request and answers with scripted responses.
// Unscripted routes get 404.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	handlers map[route]http.HandlerFunc
}

// NewServer starts a server that is closed when the test ends
func NewServer(t testing.TB) *Server {
	s := &Server{handlers: map[route]http.HandlerFunc{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.Close)
	return s
}

// NewClient returns a client talking to s
func (s *Server) NewClient(t testing.TB, options ...datawrapper.ClientOption) *datawrapper.Client {
	t.Helper()
	opts := append([]datawrapper.ClientOption{datawrapper.SetToken(Token)}, options...)
	c, err := datawrapper.NewClient(s.URL, opts...)
	if err != nil {
		t.Fatalf("datawrappertest: %v", err)
	}
	return c
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/v3")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	h := s.handlers[route{r.Method, path}]
	s.mu.Unlock()

	if h == nil {
		Error(w, http.StatusNotFound, "no route "+r.Method+" "+path)
		return
	}
	h(w, r)
}

// HandleFunc scripts a route. path is relative to /v3.
func (s *Server) HandleFunc(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	s.handlers[route{method, path}] = h
	s.mu.Unlock()
}

// RespondJSON scripts a route to answer with status and v encoded as JSON.
// A string or []byte v is sent unchanged.
func (s *Server) RespondJSON(method, path string, status int, v any) {
	s.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, v)
	})
}

// Respond scripts a route to answer with a raw body
func (s *Server) Respond(method, path string, status int, contentType, body string) {
	s.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Requests returns a copy of all recorded requests
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded requests of one route
func (s *Server) RequestsTo(method, path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Reset forgets the recorded requests, routes stay scripted
func (s *Server) Reset() {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
}

// WriteJSON writes v as a JSON response
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	switch b := v.(type) {
	case string:
		_, _ = io.WriteString(w, b)
	case []byte:
		_, _ = w.Write(b)
	default:
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error writes an API style error body
func Error(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]any{
		"statusCode": status,
		"error":      http.StatusText(status),
		"message":    message,
	})
}
