// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package charset

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chartkit/dwclient/modules/log"

	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// UTF8BOM is the utf-8 byte-order marker
var UTF8BOM = []byte{'\xef', '\xbb', '\xbf'}

// sniffSize is how much of a stream is inspected to detect its encoding
const sniffSize = 2048

// detectedCharsetOrder breaks ties between equally confident guesses.
// Spreadsheet exports are mostly one of the western code pages.
var detectedCharsetOrder = []string{
	"utf-8",
	"utf-16be",
	"utf-16le",
	"windows-1252",
	"iso-8859-1",
	"iso-8859-15",
	"windows-1250",
	"iso-8859-2",
	"shift_jis",
	"gb-18030",
	"big5",
	"euc-kr",
}

// ToUTF8WithFallbackReader detects the encoding of rd and converts it to UTF-8
// when it can. A UTF-8 byte order mark is dropped. Content whose encoding is
// unknown is passed through unchanged.
func ToUTF8WithFallbackReader(rd io.Reader) io.Reader {
	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(rd, buf)
	head := buf[:n]
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return io.MultiReader(bytes.NewReader(RemoveBOM(head)), rd)
	}

	label, err := DetectEncoding(head)
	if err != nil || label == "UTF-8" {
		return io.MultiReader(bytes.NewReader(RemoveBOM(head)), rd)
	}

	encoding, _ := charset.Lookup(label)
	if encoding == nil {
		return io.MultiReader(bytes.NewReader(head), rd)
	}
	log.Debug("charset: converting %s input to utf-8", label)
	return transform.NewReader(io.MultiReader(bytes.NewReader(head), rd), encoding.NewDecoder())
}

// ToUTF8WithFallback converts content to UTF-8 when its encoding can be detected
func ToUTF8WithFallback(content []byte) []byte {
	bs, _ := io.ReadAll(ToUTF8WithFallbackReader(bytes.NewReader(content)))
	return bs
}

// RemoveBOM drops a leading UTF-8 byte order mark
func RemoveBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, UTF8BOM)
}

// DetectEncoding guesses the encoding of content. Valid UTF-8, allowing for a
// character cut off at the end, is reported as "UTF-8" without running the
// detector.
func DetectEncoding(content []byte) (string, error) {
	toValidate := content
	end := len(toValidate) - 1
	switch {
	case end < 0:
	case toValidate[end]>>5 == 0b110:
		toValidate = toValidate[:end]
	case end > 0 && toValidate[end]>>6 == 0b10 && toValidate[end-1]>>4 == 0b1110:
		toValidate = toValidate[:end-1]
	case end > 1 && toValidate[end]>>6 == 0b10 && toValidate[end-1]>>6 == 0b10 && toValidate[end-2]>>3 == 0b11110:
		toValidate = toValidate[:end-2]
	}
	if utf8.Valid(toValidate) {
		return "UTF-8", nil
	}

	detector := chardet.NewTextDetector()
	detectContent := content
	if len(content) < 1024 {
		// the detector needs some volume to be confident
		detectContent = bytes.Repeat(content, 1024/len(content)+1)
	}
	results, err := detector.DetectAll(detectContent)
	if err != nil {
		return "", err
	}

	top := results[0]
	priority, has := charsetPriority(top.Charset)
	for _, result := range results[1:] {
		if result.Confidence != top.Confidence {
			break
		}
		p, ok := charsetPriority(result.Charset)
		if ok && (!has || p < priority) {
			top, priority, has = result, p, true
		}
	}
	log.Debug("charset: detected %s with confidence %d", top.Charset, top.Confidence)
	return top.Charset, nil
}

func charsetPriority(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, c := range detectedCharsetOrder {
		if c == name {
			return i, true
		}
	}
	return 0, false
}
