// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package csv reads and writes the delimited text chart data is exchanged in.
package csv

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const sniffSize = 1e4

var quoteRegexp = regexp.MustCompile(`["'][\s\S]+?["']`)

// CreateReader creates a csv.Reader with the given delimiter.
func CreateReader(input io.Reader, delimiter rune) *stdcsv.Reader {
	rd := stdcsv.NewReader(input)
	rd.Comma = delimiter
	rd.TrimLeadingSpace = true
	return rd
}

// CreateReaderAndGuessDelimiter tries to guess the field delimiter from the content and creates a csv.Reader.
func CreateReaderAndGuessDelimiter(rd io.Reader) (*stdcsv.Reader, error) {
	data := make([]byte, sniffSize)
	size, err := io.ReadFull(rd, data)
	switch {
	case errors.Is(err, io.EOF):
		return CreateReader(bytes.NewReader(nil), ','), nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return CreateReader(bytes.NewReader(data[:size]), guessDelimiter(data[:size])), nil
	case err != nil:
		return nil, err
	}
	return CreateReader(io.MultiReader(bytes.NewReader(data), rd), guessDelimiter(data)), nil
}

// CreateWriter creates a csv.Writer with the given delimiter.
func CreateWriter(output io.Writer, delimiter rune) *stdcsv.Writer {
	w := stdcsv.NewWriter(output)
	w.Comma = delimiter
	return w
}

// ReadAll guesses the delimiter and reads every record. Rows may differ in length.
func ReadAll(input io.Reader) ([][]string, rune, error) {
	rd, err := CreateReaderAndGuessDelimiter(input)
	if err != nil {
		return nil, 0, err
	}
	rd.FieldsPerRecord = -1
	records, err := rd.ReadAll()
	if err != nil {
		return nil, rd.Comma, FormatError(err)
	}
	return records, rd.Comma, nil
}

// guessDelimiter scores the input CSV data against delimiters, and returns the best match.
// Reads at most 10k bytes & 10 lines.
func guessDelimiter(data []byte) rune {
	maxLines := 10
	text := string(data[:min(len(data), sniffSize)])
	text = quoteRegexp.ReplaceAllLiteralString(text, "")
	lines := strings.SplitN(text, "\n", maxLines+1)
	lines = lines[:min(maxLines, len(lines))]

	delimiters := []rune{',', ';', '\t', '|', '@'}
	bestDelim := delimiters[0]
	bestScore := 0.0
	for _, delim := range delimiters {
		score := scoreDelimiter(lines, delim)
		if score > bestScore {
			bestScore = score
			bestDelim = delim
		}
	}

	return bestDelim
}

// scoreDelimiter uses a count & regularity metric to evaluate a delimiter against lines of CSV.
func scoreDelimiter(lines []string, delim rune) float64 {
	countTotal := 0
	countLineMax := 0
	linesNotEqual := 0

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}

		countLine := strings.Count(line, string(delim))
		countTotal += countLine
		if countLine != countLineMax {
			if countLineMax != 0 {
				linesNotEqual++
			}
			countLineMax = max(countLine, countLineMax)
		}
	}

	return float64(countTotal) * (1 - float64(linesNotEqual)/float64(len(lines)))
}

// FormatError converts csv parse errors into readable messages.
func FormatError(err error) error {
	var perr *stdcsv.ParseError
	if errors.As(err, &perr) {
		if errors.Is(perr.Err, stdcsv.ErrFieldCount) {
			return fmt.Errorf("line %d: wrong number of fields: %w", perr.Line, err)
		}
		return fmt.Errorf("line %d, column %d: unexpected content: %w", perr.Line, perr.Column, err)
	}
	return err
}
