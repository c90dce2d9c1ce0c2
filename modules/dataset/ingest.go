// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chartkit/dwclient/modules/charset"
	"github.com/chartkit/dwclient/modules/csv"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/util"

	"github.com/araddon/dateparse"
)

// FromRecords builds a dataset from a header and text rows, inferring the
// type of each column. Short rows are padded with missing values.
func FromRecords(header []string, rows [][]string) (*Dataset, error) {
	columns := make([]Column, len(header))
	for i, name := range header {
		raw := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				raw[r] = row[i]
			}
		}
		columns[i] = inferColumn(strings.TrimSpace(name), raw)
	}
	for r, row := range rows {
		if len(row) > len(header) {
			return nil, util.NewInvalidArgumentErrorf("row %d has %d fields, header has %d", r+1, len(row), len(header))
		}
	}
	return New(columns...)
}

// FromCSV reads delimited text with a header line. The delimiter and the
// encoding are guessed, and a byte order mark is dropped.
func FromCSV(r io.Reader) (*Dataset, error) {
	records, _, err := csv.ReadAll(charset.ToUTF8WithFallbackReader(r))
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return New()
	}
	return FromRecords(records[0], records[1:])
}

// FromRows builds a dataset from row mappings. Columns follow the given order;
// values may be strings, numbers, bools or times and are inferred per column.
func FromRows(columns []string, rows []map[string]any) (*Dataset, error) {
	records := make([][]string, len(rows))
	for r, row := range rows {
		rec := make([]string, len(columns))
		for i, name := range columns {
			rec[i] = cellText(row[name])
		}
		records[r] = rec
	}
	return FromRecords(columns, records)
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case time.Time:
		return formatDate(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func inferColumn(name string, raw []string) Column {
	typ := inferType(raw)
	c := Column{Name: name, Type: typ, Values: make([]any, len(raw)), source: raw}
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch typ {
		case TypeNumber:
			c.Values[i], _ = strconv.ParseFloat(s, 64)
		case TypeDate:
			c.Values[i], _ = dateparse.ParseIn(s, time.UTC)
		default:
			c.Values[i] = raw[i]
		}
	}
	log.Trace("dataset: column %q inferred as %s", name, typ)
	return c
}

// inferType picks number when every non-empty cell is numeric, then date when
// every non-empty cell parses as a date, and string otherwise.
func inferType(raw []string) ColumnType {
	isNumber, isDate, seen := true, true, false
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		seen = true
		if isNumber {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isNumber = false
			}
		}
		if isDate && !isNumber {
			if _, err := dateparse.ParseIn(s, time.UTC); err != nil {
				isDate = false
			}
		}
		if !isNumber && !isDate {
			return TypeString
		}
	}
	switch {
	case !seen:
		return TypeString
	case isNumber:
		return TypeNumber
	}
	return TypeDate
}
