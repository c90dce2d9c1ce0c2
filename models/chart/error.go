// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"

	"github.com/chartkit/dwclient/modules/util"
)

// ValidationError names a field and the constraint it violates
type ValidationError struct {
	Field      string
	Constraint string
}

// ConfigurationError is reported for invalid chart construction
type ConfigurationError = ValidationError

// IsValidationError checks if an error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", err.Field, err.Constraint)
}

func (err *ValidationError) Unwrap() error {
	return util.ErrInvalidArgument
}

// StateError is returned when an operation is not allowed in the chart's lifecycle state
type StateError struct {
	Op    string
	State State
	// Reason is set when the state alone does not explain the refusal
	Reason string
}

// IsStateError checks if an error is, or wraps, a StateError
func IsStateError(err error) bool {
	var serr *StateError
	return errors.As(err, &serr)
}

func (err *StateError) Error() string {
	if err.Reason != "" {
		return fmt.Sprintf("cannot %s chart in state %s: %s", err.Op, err.State, err.Reason)
	}
	return fmt.Sprintf("cannot %s chart in state %s", err.Op, err.State)
}

func (err *StateError) Unwrap() error {
	return util.ErrInvalidState
}

// ErrUnknownType is returned by ForType for type literals without a model
type ErrUnknownType struct {
	Type string
}

// IsErrUnknownType checks if an error is an ErrUnknownType
func IsErrUnknownType(err error) bool {
	var e ErrUnknownType
	return errors.As(err, &e)
}

func (err ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown chart type %q", err.Type)
}

func (err ErrUnknownType) Unwrap() error {
	return util.ErrNotExist
}

// ErrTypeMismatch is returned when a document of one chart type is read into another
type ErrTypeMismatch struct {
	Expected string
	Actual   string
}

func (err ErrTypeMismatch) Error() string {
	return fmt.Sprintf("chart type mismatch: expected %q, got %q", err.Expected, err.Actual)
}

func (err ErrTypeMismatch) Unwrap() error {
	return util.ErrInvalidArgument
}
