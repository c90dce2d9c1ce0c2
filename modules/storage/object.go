// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"io/fs"
	"mime"
	"path"
	"strings"
	"time"
)

// objectInfo describes a remote object as an os.FileInfo
type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (o *objectInfo) Name() string       { return o.name }
func (o *objectInfo) Size() int64        { return o.size }
func (o *objectInfo) Mode() fs.FileMode  { return 0o644 }
func (o *objectInfo) ModTime() time.Time { return o.modTime }
func (o *objectInfo) IsDir() bool        { return false }
func (o *objectInfo) Sys() any           { return nil }

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func contentType(p string) string {
	if t := mime.TypeByExtension(path.Ext(p)); t != "" {
		return t
	}
	return "application/octet-stream"
}
