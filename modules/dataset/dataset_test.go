// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chartkit/dwclient/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	_, err := New(Strings("a", "x", "y"), Numbers("b", 1))
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = New(Strings("a", "x"), Strings("a", "y"))
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = New(Column{Name: "n", Type: TypeNumber, Values: []any{"one"}})
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	d, err := New(Strings("country", "DE", "FR", "IT"), Numbers("value", 1, 2.5, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, []string{"country", "value"}, d.Names())
	assert.True(t, d.HasColumn("value"))
	assert.False(t, d.HasColumn("missing"))
}

func TestWriteCSV(t *testing.T) {
	d := MustNew(
		Dates("date", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 12, 30, 0, 0, time.UTC)),
		Numbers("value", 1000, 0.25),
		Strings("note", "a,b", ""),
	)
	out, err := d.CSV()
	require.NoError(t, err)
	assert.Equal(t, "date,value,note\n2024-01-02,1000,\"a,b\"\n2024-01-03T12:30:00Z,0.25,\n", out)
}

func TestEmptyDataset(t *testing.T) {
	var d *Dataset
	assert.True(t, d.IsEmpty())
	assert.Equal(t, 0, d.Rows())

	d = MustNew()
	out, err := d.CSV()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFromCSVInference(t *testing.T) {
	d, err := FromCSV(strings.NewReader("year;month;value;label\n2020;2020-01-01;1.5;a\n2021;2020-02-01;;b\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())

	year, _ := d.Column("year")
	assert.Equal(t, TypeNumber, year.Type)
	month, _ := d.Column("month")
	assert.Equal(t, TypeDate, month.Type)
	feb, ok := month.Values[1].(time.Time)
	require.True(t, ok)
	assert.True(t, feb.Equal(time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)))
	value, _ := d.Column("value")
	assert.Equal(t, TypeNumber, value.Type)
	assert.Nil(t, value.Values[1])
	label, _ := d.Column("label")
	assert.Equal(t, TypeString, label.Type)

	out, err := d.CSV()
	require.NoError(t, err)
	assert.Equal(t, "year,month,value,label\n2020,2020-01-01,1.5,a\n2021,2020-02-01,,b\n", out)
}

func TestFromCSVDropsByteOrderMark(t *testing.T) {
	d, err := FromCSV(strings.NewReader("\ufeffquarter,sales\nQ1,10\nQ2,12\n"))
	require.NoError(t, err)
	assert.True(t, d.HasColumn("quarter"))
	assert.Equal(t, []string{"quarter", "sales"}, d.Names())

	out, err := d.CSV()
	require.NoError(t, err)
	assert.Equal(t, "quarter,sales\nQ1,10\nQ2,12\n", out)
}

func TestFromCSVLatin1(t *testing.T) {
	in := "Stadt;Einwohner\nM\xfcnchen;1500000\nK\xf6ln;1080000\nD\xfcsseldorf;620000\n"
	d, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)
	city, ok := d.Column("Stadt")
	require.True(t, ok)
	assert.Equal(t, []any{"München", "Köln", "Düsseldorf"}, city.Values)
}

func TestFromRecordsRejectsLongRows(t *testing.T) {
	_, err := FromRecords([]string{"a"}, [][]string{{"1", "2"}})
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([]string{"name", "count"}, []map[string]any{
		{"name": "x", "count": 3},
		{"name": "y", "count": 4.5},
	})
	require.NoError(t, err)
	c, ok := d.Column("count")
	require.True(t, ok)
	assert.Equal(t, TypeNumber, c.Type)
	assert.Equal(t, []any{3.0, 4.5}, c.Values)
}

func TestXLSXRoundTrip(t *testing.T) {
	d := MustNew(Strings("country", "DE", "FR"), Numbers("value", 1, 2.5))
	var buf bytes.Buffer
	require.NoError(t, d.WriteXLSX(&buf, "data"))

	back, err := FromXLSX(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, d.Names(), back.Names())
	assert.Equal(t, d.Records(), back.Records())
}
