// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/chartkit/dwclient/modules/setting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorageIterator(t *testing.T, typStr Type, cfg *setting.Storage) {
	l, err := NewStorage(context.Background(), typStr, cfg)
	require.NoError(t, err)

	testFiles := [][]string{
		{"a/1.png", "a1"},
		{"/a/1.png", "aa1"}, // same as above, but with leading slash that will be trim
		{"ab/1.svg", "ab1"},
		{"b/1.pdf", "b1"},
		{"b/2.pdf", "b2"},
		{"b/3.pdf", "b3"},
		{"b/x 4.pdf", "bx4"},
	}
	for _, f := range testFiles {
		_, err = l.Save(f[0], strings.NewReader(f[1]), -1)
		require.NoError(t, err)
	}

	expectedList := map[string][]string{
		"a":           {"a/1.png"},
		"b":           {"b/1.pdf", "b/2.pdf", "b/3.pdf", "b/x 4.pdf"},
		"":            {"a/1.png", "b/1.pdf", "b/2.pdf", "b/3.pdf", "b/x 4.pdf", "ab/1.svg"},
		"/":           {"a/1.png", "b/1.pdf", "b/2.pdf", "b/3.pdf", "b/x 4.pdf", "ab/1.svg"},
		"a/b/../../a": {"a/1.png"},
	}
	for dir, expected := range expectedList {
		count := 0
		err = l.IterateObjects(dir, func(path string, f Object) error {
			defer f.Close()
			assert.Contains(t, expected, path)
			count++
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, expected, count, dir)
	}
}

func TestLocalStorageIterator(t *testing.T) {
	testStorageIterator(t, setting.LocalStorageType, &setting.Storage{Path: t.TempDir()})
}

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocalStorage(context.Background(), &setting.Storage{Path: dir})
	require.NoError(t, err)

	n, err := l.Save("charts/abc12.png", bytes.NewReader([]byte("png")), 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	_, err = l.Save("charts/short.png", bytes.NewReader([]byte("png")), 10)
	assert.Error(t, err)
	_, err = l.Stat("charts/short.png")
	assert.ErrorIs(t, err, os.ErrNotExist)

	fi, err := l.Stat("charts/abc12.png")
	require.NoError(t, err)
	assert.EqualValues(t, 3, fi.Size())

	f, err := l.Open("charts/abc12.png")
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "png", string(data))

	// paths cannot escape the root
	_, err = l.Save("../../outside.svg", strings.NewReader("svg"), -1)
	require.NoError(t, err)
	_, err = os.Stat(dir + "/outside.svg")
	assert.NoError(t, err)

	u, err := l.URL("charts/abc12.png", "abc12.png")
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)

	require.NoError(t, l.Delete("charts/abc12.png"))
	require.NoError(t, l.Delete("charts/abc12.png"))
	_, err = l.Open("charts/abc12.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCopyAndClean(t *testing.T) {
	src, err := NewLocalStorage(context.Background(), &setting.Storage{Path: t.TempDir()})
	require.NoError(t, err)
	dst, err := NewLocalStorage(context.Background(), &setting.Storage{Path: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, SaveFrom(src, "x.svg", func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	}))
	n, err := Copy(dst, "copy/x.svg", src, "x.svg")
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)

	require.NoError(t, Clean(dst))
	_, err = dst.Stat("copy/x.svg")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewStorageConfiguration(t *testing.T) {
	_, err := NewStorage(context.Background(), "ftp", &setting.Storage{})
	assert.Error(t, err)

	_, err = NewStorage(context.Background(), "", &setting.Storage{})
	assert.True(t, IsErrInvalidConfiguration(err))

	_, err = NewStorage(context.Background(), setting.S3StorageType, &setting.Storage{})
	assert.True(t, IsErrInvalidConfiguration(err))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "exports/a/b.png", joinBase("exports/", "/a/b.png"))
	assert.Equal(t, "exports/b.png", joinBase("/exports", "../../b.png"))
	assert.Equal(t, "a.png", joinBase("", "a.png"))
	assert.Equal(t, "exports", joinBase("exports/", ""))
	assert.Equal(t, "a/b.png", trimBase("exports/", "exports/a/b.png"))
	assert.Equal(t, "a/b.png", trimBase("", "a/b.png"))
	assert.Equal(t, "exports/", listPrefix("exports"))
	assert.Empty(t, listPrefix(""))
}
