// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package typesniffer detects the content type of rendered charts
package typesniffer

import (
	"net/http"
	"regexp"
	"strings"
)

// Use at most this many bytes to determine Content Type.
const sniffLen = 1024

// SvgMimeType MIME type of SVG images.
const SvgMimeType = "image/svg+xml"

var (
	svgTagRegex      = regexp.MustCompile(`(?si)\A\s*(?:(<!--.*?-->|<!DOCTYPE\s+svg([\s:]+.*?>|>))\s*)*<svg[\s>\/]`)
	svgTagInXMLRegex = regexp.MustCompile(`(?si)\A<\?xml\b.*?\?>\s*(?:(<!--.*?-->|<!DOCTYPE\s+svg([\s:]+.*?>|>))\s*)*<svg[\s>\/]`)
)

// SniffedType is a detected content type
type SniffedType struct {
	contentType string
}

// IsImage detects if data is an image format
func (ct SniffedType) IsImage() bool {
	return strings.HasPrefix(ct.contentType, "image/")
}

// IsPNG detects if data is a PNG image
func (ct SniffedType) IsPNG() bool {
	return strings.HasPrefix(ct.contentType, "image/png")
}

// IsSvgImage detects if data is an SVG image format
func (ct SniffedType) IsSvgImage() bool {
	return strings.HasPrefix(ct.contentType, SvgMimeType)
}

// IsPDF detects if data is a PDF format
func (ct SniffedType) IsPDF() bool {
	return strings.HasPrefix(ct.contentType, "application/pdf")
}

// IsJSON detects a JSON document, which the API answers with on failures
func (ct SniffedType) IsJSON() bool {
	return strings.HasPrefix(ct.contentType, "application/json")
}

// Mime return the mime
func (ct SniffedType) Mime() string {
	return strings.Split(ct.contentType, ";")[0]
}

// DetectContentType extends http.DetectContentType with SVG and JSON.
// Defaults to text/unknown if input is empty.
func DetectContentType(data []byte) SniffedType {
	if len(data) == 0 {
		return SniffedType{"text/unknown"}
	}

	ct := http.DetectContentType(data)

	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	switch {
	case (strings.HasPrefix(ct, "text/plain") || strings.HasPrefix(ct, "text/html")) && svgTagRegex.Match(data),
		strings.HasPrefix(ct, "text/xml") && svgTagInXMLRegex.Match(data):
		// SVG is unsupported. https://github.com/golang/go/issues/15888
		ct = SvgMimeType
	case strings.HasPrefix(ct, "text/plain"):
		if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "{") {
			ct = "application/json"
		}
	}

	return SniffedType{ct}
}
