// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
)

// OperationError names the step of a lifecycle operation that failed
type OperationError struct {
	Op      string
	Step    string
	ChartID string
	Err     error
}

// IsOperationError checks if an error is, or wraps, an OperationError
func IsOperationError(err error) bool {
	var oerr *OperationError
	return errors.As(err, &oerr)
}

func (err *OperationError) Error() string {
	if err.ChartID != "" {
		return fmt.Sprintf("%s chart %s: %s: %v", err.Op, err.ChartID, err.Step, err.Err)
	}
	return fmt.Sprintf("%s chart: %s: %v", err.Op, err.Step, err.Err)
}

func (err *OperationError) Unwrap() error {
	return err.Err
}

// FailedStep returns the step of an OperationError, or "" for other errors
func FailedStep(err error) string {
	var oerr *OperationError
	if errors.As(err, &oerr) {
		return oerr.Step
	}
	return ""
}
