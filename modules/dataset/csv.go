// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"io"

	"github.com/chartkit/dwclient/modules/csv"
)

// WriteCSV writes a comma separated header line followed by one line per row.
// Numbers use the shortest exact form, dates are written as 2006-01-02 or
// RFC 3339 when they carry a time of day. Values read from text are written
// back unchanged.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.CreateWriter(w, ',')
	if err := cw.WriteAll(d.Records()); err != nil {
		return err
	}
	return cw.Error()
}

// CSV returns the dataset as CSV text
func (d *Dataset) CSV() (string, error) {
	var buf bytes.Buffer
	if err := d.WriteCSV(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
