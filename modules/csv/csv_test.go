// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReader(t *testing.T) {
	rd := CreateReader(bytes.NewReader([]byte{}), ',')
	assert.Equal(t, ',', rd.Comma)
}

func TestCreateReaderAndGuessDelimiter(t *testing.T) {
	input := "a;b;c\n1;2;3\n4;5;6"

	rd, err := CreateReaderAndGuessDelimiter(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, ';', rd.Comma)

	rd, err = CreateReaderAndGuessDelimiter(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, ',', rd.Comma)
}

func TestCreateReaderAndGuessDelimiterLargeInput(t *testing.T) {
	var b strings.Builder
	b.WriteString("year\tvalue\n")
	for b.Len() < 2*sniffSize {
		b.WriteString("2020\t1.5\n")
	}
	rd, err := CreateReaderAndGuessDelimiter(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, '\t', rd.Comma)
	records, err := rd.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"year", "value"}, records[0])
	assert.Equal(t, []string{"2020", "1.5"}, records[len(records)-1])
}

func TestGuessDelimiter(t *testing.T) {
	kases := map[string]rune{
		"a":                         ',',
		"1,2":                       ',',
		"1;2":                       ';',
		"1\t2":                      '\t',
		"1|2":                       '|',
		"1,2,3;4,5,6;7,8,9\na;b;c":  ';',
		"\"1,2,3,4\";\"a\nb\"\nc;d": ';',
		"<br/>":                     ',',
	}

	for k, v := range kases {
		assert.EqualValues(t, v, guessDelimiter([]byte(k)))
	}
}

func TestReadAll(t *testing.T) {
	records, delim, err := ReadAll(strings.NewReader("x|y\n1|2\n3\n"))
	require.NoError(t, err)
	assert.Equal(t, '|', delim)
	assert.Equal(t, [][]string{{"x", "y"}, {"1", "2"}, {"3"}}, records)
}

func TestFormatError(t *testing.T) {
	_, _, err := ReadAll(strings.NewReader("a,b\n\"1,2\n"))
	require.Error(t, err)
	var perr *stdcsv.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "line")
}

func TestCreateWriter(t *testing.T) {
	var buf bytes.Buffer
	w := CreateWriter(&buf, ';')
	require.NoError(t, w.WriteAll([][]string{{"a", "b;c"}}))
	assert.Equal(t, "a;\"b;c\"\n", buf.String())
}
