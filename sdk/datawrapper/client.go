// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package datawrapper is a client for the Datawrapper v3 REST API
package datawrapper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/metrics"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// DefaultURL is the public Datawrapper API
	DefaultURL = "https://api.datawrapper.de"
	// TokenEnv is read by NewClient when no token is given
	TokenEnv = "DATAWRAPPER_ACCESS_TOKEN"
	// RequestIDHeader carries the id generated for every request
	RequestIDHeader = "X-Request-Id"

	defaultTimeout       = 15 * time.Second
	defaultUploadTimeout = 30 * time.Second
	defaultUserAgent     = "dwclient"
)

var (
	jsonHeader = http.Header{"Content-Type": []string{"application/json"}}
	csvHeader  = http.Header{"Content-Type": []string{"text/csv"}}
)

// Client represents a thread-safe Datawrapper API client.
type Client struct {
	url           string
	accessToken   string
	userAgent     string
	debug         bool
	timeout       time.Duration
	uploadTimeout time.Duration
	client        *http.Client
	limiter       *rate.Limiter
	metrics       *metrics.Collector
	logger        log.Logger
	mutex         sync.RWMutex
}

// Response represents the API response. Body holds the raw response body.
type Response struct {
	*http.Response
	RequestID string
	Body      []byte
}

// ClientOption are functions used to init a new client
type ClientOption func(*Client) error

// NewClient initializes and returns an API client. The token falls back to
// the DATAWRAPPER_ACCESS_TOKEN environment variable; without any token a
// ConfigurationError is returned before any request is made.
func NewClient(apiURL string, options ...ClientOption) (*Client, error) {
	if apiURL == "" {
		apiURL = DefaultURL
	}
	client := &Client{
		url:           strings.TrimSuffix(apiURL, "/"),
		userAgent:     defaultUserAgent,
		timeout:       defaultTimeout,
		uploadTimeout: defaultUploadTimeout,
		client:        &http.Client{},
		logger:        log.GetLogger(),
	}
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	if client.accessToken == "" {
		client.accessToken = os.Getenv(TokenEnv)
	}
	if client.accessToken == "" {
		return nil, &ConfigurationError{Setting: "access token", Reason: "not set, pass SetToken or export " + TokenEnv}
	}
	if _, err := url.Parse(client.url); err != nil {
		return nil, &ConfigurationError{Setting: "url", Reason: err.Error()}
	}
	return client, nil
}

// SetToken is an option for NewClient to set the bearer token
func SetToken(token string) ClientOption {
	return func(client *Client) error {
		client.mutex.Lock()
		defer client.mutex.Unlock()
		client.accessToken = token
		return nil
	}
}

// SetHTTPClient is an option for NewClient to set a custom http client
func SetHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *Client) error {
		client.client = httpClient
		return nil
	}
}

// SetUserAgent is an option for NewClient to set the user-agent header
func SetUserAgent(userAgent string) ClientOption {
	return func(client *Client) error {
		client.userAgent = userAgent
		return nil
	}
}

// SetDebugMode is an option for NewClient to log request and response bodies
func SetDebugMode() ClientOption {
	return func(client *Client) error {
		client.debug = true
		return nil
	}
}

// SetTimeout sets the deadline of requests whose context has none. Data
// uploads and exports use upload instead.
func SetTimeout(request, upload time.Duration) ClientOption {
	return func(client *Client) error {
		if request > 0 {
			client.timeout = request
		}
		if upload > 0 {
			client.uploadTimeout = upload
		}
		return nil
	}
}

// SetRateLimit limits the client to rps requests per second. rps <= 0 disables the limit.
func SetRateLimit(rps float64, burst int) ClientOption {
	return func(client *Client) error {
		if rps <= 0 {
			client.limiter = nil
			return nil
		}
		if burst < 1 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// SetMetrics reports every request to m
func SetMetrics(m *metrics.Collector) ClientOption {
	return func(client *Client) error {
		client.metrics = m
		return nil
	}
}

// SetLogger replaces the default logger
func SetLogger(l log.Logger) ClientOption {
	return func(client *Client) error {
		client.logger = l
		return nil
	}
}

// URL returns the base URL of the API
func (c *Client) URL() string {
	return c.url
}

// SetToken replaces the bearer token of a running client
func (c *Client) SetToken(token string) {
	c.mutex.Lock()
	c.accessToken = token
	c.mutex.Unlock()
}

// ListOptions selects a page of a list endpoint
type ListOptions struct {
	// Limit is the page size, 0 uses the server default
	Limit  int
	Offset int
}

func (o ListOptions) setQuery(q url.Values) {
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
}

// List is one page of a list endpoint
type List[T any] struct {
	Items []T    `json:"list"`
	Total int    `json:"total"`
	Next  string `json:"next,omitempty"`
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func jsonBody(v any) (io.Reader, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}

// uploadContext gives data uploads and exports the longer upload deadline
func (c *Client) uploadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.uploadTimeout)
}

func (c *Client) doRequest(ctx context.Context, method, path string, header http.Header, body io.Reader) (*Response, error) {
	c.mutex.RLock()
	token := c.accessToken
	c.mutex.RUnlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &FailedRequestError{Method: method, Path: path, Err: err}
		}
	}

	if c.debug && body != nil {
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("datawrapper: %s %s body: %s", method, path, raw)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+"/v3"+path, body)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "*/*")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	route := routeOf(path)
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, route, 0, time.Since(start))
		c.logger.Debug("datawrapper: %s %s [%s] failed: %v", method, path, requestID, err)
		return nil, &FailedRequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(method, route, resp.StatusCode, elapsed)
	r := &Response{Response: resp, RequestID: requestID, Body: data}
	if err != nil {
		return r, &FailedRequestError{Method: method, Path: path, Response: r, Err: err}
	}
	c.logger.Debug("datawrapper: %s %s [%s] %d in %v", method, path, requestID, resp.StatusCode, elapsed)
	if c.debug {
		c.logger.Debug("datawrapper: %s %s response: %s", method, path, data)
	}
	return r, statusCodeToErr(method, path, r)
}

// getResponse returns the raw body of a successful request
func (c *Client) getResponse(ctx context.Context, method, path string, header http.Header, body io.Reader) ([]byte, *Response, error) {
	resp, err := c.doRequest(ctx, method, path, header, body)
	if err != nil {
		return nil, resp, err
	}
	return resp.Body, resp, nil
}

func (c *Client) getParsedResponse(ctx context.Context, method, path string, header http.Header, body io.Reader, obj any) (*Response, error) {
	data, resp, err := c.getResponse(ctx, method, path, header, body)
	if err != nil {
		return resp, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(data, obj); err != nil {
		return resp, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return resp, nil
}

// escapeValidatePathSegments rejects empty segments and escapes the rest in place
func escapeValidatePathSegments(seg ...*string) error {
	for i := range seg {
		if seg[i] == nil || len(*seg[i]) == 0 {
			return &ConfigurationError{Setting: "path segment", Reason: "must not be empty"}
		}
		*seg[i] = url.PathEscape(*seg[i])
	}
	return nil
}

var routeWords = map[string]bool{
	"charts": true, "folders": true, "workspaces": true, "teams": true, "members": true,
	"users": true, "me": true, "settings": true, "auth": true, "tokens": true,
	"token-scopes": true, "login-tokens": true, "themes": true, "basemaps": true,
	"oembed": true, "river": true, "copy": true, "fork": true, "publish": true,
	"unpublish": true, "export": true, "data": true, "refresh": true, "display-urls": true,
	"recently-edited-charts": true, "recently-published-charts": true,
}

// routeOf replaces the ids in path so that metrics labels stay bounded
func routeOf(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if !routeWords[p] {
			parts[i] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
