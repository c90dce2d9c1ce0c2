// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chartkit/dwclient/modules/util"

	"github.com/tidwall/gjson"
)

// ConfigurationError is returned for a client that cannot make requests
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("datawrapper: %s %s", err.Setting, err.Reason)
}

func (err *ConfigurationError) Unwrap() error {
	return util.ErrInvalidArgument
}

// InvalidRequestError is returned when the API rejects a request with a 4xx
// status other than 429
type InvalidRequestError struct {
	Method   string
	Path     string
	Response *Response
	// Message is the "message" of a JSON error body
	Message string
}

// IsInvalidRequestError checks if an error is, or wraps, an InvalidRequestError
func IsInvalidRequestError(err error) bool {
	var e *InvalidRequestError
	return errors.As(err, &e)
}

func (err *InvalidRequestError) Error() string {
	msg := err.Message
	if msg == "" {
		msg = http.StatusText(err.Response.StatusCode)
	}
	return fmt.Sprintf("datawrapper: %s %s: %d %s", err.Method, err.Path, err.Response.StatusCode, msg)
}

func (err *InvalidRequestError) Unwrap() error {
	switch err.Response.StatusCode {
	case http.StatusNotFound:
		return util.ErrNotExist
	case http.StatusUnauthorized, http.StatusForbidden:
		return util.ErrPermissionDenied
	}
	return util.ErrInvalidArgument
}

// RateLimitError is returned for 429 responses. The client never retries.
type RateLimitError struct {
	Method   string
	Path     string
	Response *Response
	// RetryAfter is zero when the server sent no hint
	RetryAfter time.Duration
}

// IsRateLimitError checks if an error is, or wraps, a RateLimitError
func IsRateLimitError(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

func (err *RateLimitError) Error() string {
	if err.RetryAfter > 0 {
		return fmt.Sprintf("datawrapper: %s %s: rate limited, retry after %v", err.Method, err.Path, err.RetryAfter)
	}
	return fmt.Sprintf("datawrapper: %s %s: rate limited", err.Method, err.Path)
}

// FailedRequestError is returned for 5xx responses and transport failures.
// Response is nil when no response was received.
type FailedRequestError struct {
	Method   string
	Path     string
	Response *Response
	Err      error
}

// IsFailedRequestError checks if an error is, or wraps, a FailedRequestError
func IsFailedRequestError(err error) bool {
	var e *FailedRequestError
	return errors.As(err, &e)
}

func (err *FailedRequestError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("datawrapper: %s %s: %v", err.Method, err.Path, err.Err)
	}
	return fmt.Sprintf("datawrapper: %s %s: %s", err.Method, err.Path, err.Response.Status)
}

func (err *FailedRequestError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status of the response an error carries, 0 if none
func StatusCode(err error) int {
	var (
		invalid *InvalidRequestError
		limited *RateLimitError
		failed  *FailedRequestError
	)
	switch {
	case errors.As(err, &invalid):
		return invalid.Response.StatusCode
	case errors.As(err, &limited):
		return limited.Response.StatusCode
	case errors.As(err, &failed) && failed.Response != nil:
		return failed.Response.StatusCode
	}
	return 0
}

func statusCodeToErr(method, path string, resp *Response) error {
	code := resp.StatusCode
	switch {
	case code/100 == 2:
		return nil
	case code == http.StatusTooManyRequests:
		return &RateLimitError{
			Method:     method,
			Path:       path,
			Response:   resp,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	case code/100 == 4:
		return &InvalidRequestError{Method: method, Path: path, Response: resp, Message: errorMessage(resp)}
	}
	return &FailedRequestError{Method: method, Path: path, Response: resp}
}

func errorMessage(resp *Response) string {
	if !strings.Contains(resp.Header.Get("Content-Type"), "json") || !gjson.ValidBytes(resp.Body) {
		return ""
	}
	return gjson.GetBytes(resp.Body, "message").String()
}

// parseRetryAfter accepts delay seconds or an HTTP date
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil && t.After(now) {
		return t.Sub(now)
	}
	return 0
}
