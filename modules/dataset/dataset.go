// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dataset holds the table a chart is drawn from: an ordered list of
// named columns of equal length, each holding values of a single type.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/chartkit/dwclient/modules/util"
)

// ColumnType is the declared type of every value in a column
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeNumber ColumnType = "number"
	TypeDate   ColumnType = "date"
)

// Column is a named sequence of values. Values are nil (missing), string,
// float64 or time.Time depending on the column type.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any

	// source keeps the text values were parsed from, written back unchanged
	source []string
}

// Strings builds a string column
func Strings(name string, values ...string) Column {
	c := Column{Name: name, Type: TypeString, Values: make([]any, len(values))}
	for i, v := range values {
		c.Values[i] = v
	}
	return c
}

// Numbers builds a number column
func Numbers(name string, values ...float64) Column {
	c := Column{Name: name, Type: TypeNumber, Values: make([]any, len(values))}
	for i, v := range values {
		c.Values[i] = v
	}
	return c
}

// Dates builds a date column
func Dates(name string, values ...time.Time) Column {
	c := Column{Name: name, Type: TypeDate, Values: make([]any, len(values))}
	for i, v := range values {
		c.Values[i] = v
	}
	return c
}

// Len returns the number of values
func (c Column) Len() int {
	return len(c.Values)
}

func (c Column) validate() error {
	if c.Name == "" {
		return util.NewInvalidArgumentErrorf("column without a name")
	}
	for i, v := range c.Values {
		if v == nil {
			continue
		}
		var ok bool
		switch c.Type {
		case TypeString:
			_, ok = v.(string)
		case TypeNumber:
			var f float64
			f, ok = v.(float64)
			ok = ok && !math.IsNaN(f) && !math.IsInf(f, 0)
		case TypeDate:
			_, ok = v.(time.Time)
		default:
			return util.NewInvalidArgumentErrorf("column %q has unknown type %q", c.Name, c.Type)
		}
		if !ok {
			return util.NewInvalidArgumentErrorf("column %q row %d: %v is not a %s", c.Name, i+1, v, c.Type)
		}
	}
	return nil
}

func (c Column) text(i int) string {
	if c.source != nil {
		return c.source[i]
	}
	switch v := c.Values[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return formatDate(v)
	}
	return ""
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// Dataset is an ordered set of columns with a common row count
type Dataset struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New validates the columns and builds a dataset. Column names must be
// unique and all columns must have the same length.
func New(columns ...Column) (*Dataset, error) {
	d := &Dataset{index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, dup := d.index[c.Name]; dup {
			return nil, util.NewInvalidArgumentErrorf("duplicate column %q", c.Name)
		}
		if i == 0 {
			d.rows = c.Len()
		} else if c.Len() != d.rows {
			return nil, util.NewInvalidArgumentErrorf("column %q has %d rows, expected %d", c.Name, c.Len(), d.rows)
		}
		c.Values = append([]any(nil), c.Values...)
		if c.source != nil {
			c.source = append([]string(nil), c.source...)
		}
		d.index[c.Name] = len(d.columns)
		d.columns = append(d.columns, c)
	}
	return d, nil
}

// MustNew is New that panics on error, for literals in tests and examples
func MustNew(columns ...Column) *Dataset {
	d, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return d
}

// Rows returns the number of data rows
func (d *Dataset) Rows() int {
	if d == nil {
		return 0
	}
	return d.rows
}

// IsEmpty reports whether there is nothing to upload
func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.columns) == 0
}

// Names lists the column names in order
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns copies of the columns
func (d *Dataset) Columns() []Column {
	if d == nil {
		return nil
	}
	out := make([]Column, len(d.columns))
	for i, c := range d.columns {
		c.Values = append([]any(nil), c.Values...)
		out[i] = c
	}
	return out
}

// Column returns the named column
func (d *Dataset) Column(name string) (Column, bool) {
	if d == nil {
		return Column{}, false
	}
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	c := d.columns[i]
	c.Values = append([]any(nil), c.Values...)
	return c, true
}

// HasColumn reports whether a column with the name exists
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.index[name]
	return ok
}

// Records returns the header followed by one record per row, as written to CSV
func (d *Dataset) Records() [][]string {
	if d.IsEmpty() {
		return nil
	}
	out := make([][]string, 0, d.rows+1)
	out = append(out, d.Names())
	for r := 0; r < d.rows; r++ {
		rec := make([]string, len(d.columns))
		for i, c := range d.columns {
			rec[i] = c.text(r)
		}
		out = append(out, rec)
	}
	return out
}

func (d *Dataset) String() string {
	if d.IsEmpty() {
		return "dataset(empty)"
	}
	return fmt.Sprintf("dataset(%d columns x %d rows)", len(d.columns), d.rows)
}
