// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/chartkit/dwclient/modules/setting"
	"github.com/chartkit/dwclient/modules/util"
)

var _ ObjectStorage = &LocalStorage{}

// LocalStorage represents a local files storage
type LocalStorage struct {
	ctx context.Context
	dir string
}

// NewLocalStorage returns a local files
func NewLocalStorage(ctx context.Context, cfg *setting.Storage) (ObjectStorage, error) {
	if cfg.Path == "" {
		return nil, ErrInvalidConfiguration{cfg: cfg, err: errors.New("no path is configured")}
	}
	dir, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, ErrInvalidConfiguration{cfg: cfg, err: err}
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{ctx: ctx, dir: dir}, nil
}

func (l *LocalStorage) buildLocalPath(p string) string {
	return filepath.Join(l.dir, filepath.FromSlash(joinBase("", p)))
}

// Open a file
func (l *LocalStorage) Open(path string) (Object, error) {
	f, err := os.Open(l.buildLocalPath(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Save a file
func (l *LocalStorage) Save(path string, r io.Reader, size int64) (int64, error) {
	p := l.buildLocalPath(path)
	if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
		return 0, err
	}

	// write to a temp file in the same directory, then rename it in place
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return 0, err
	}
	tmpRemoved := false
	defer func() {
		if !tmpRemoved {
			_ = util.Remove(tmp.Name())
		}
	}()

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if size >= 0 && n != size {
		return 0, fmt.Errorf("wrote %d bytes to %s, expected %d", n, path, size)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return 0, err
	}
	tmpRemoved = true
	return n, nil
}

// Stat returns the info of the file
func (l *LocalStorage) Stat(path string) (os.FileInfo, error) {
	return os.Stat(l.buildLocalPath(path))
}

// Delete delete a file
func (l *LocalStorage) Delete(path string) error {
	return util.Remove(l.buildLocalPath(path))
}

// URL returns a file URL
func (l *LocalStorage) URL(path, name string) (*url.URL, error) {
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(l.buildLocalPath(path))}, nil
}

// IterateObjects iterates across the objects in the local storage
func (l *LocalStorage) IterateObjects(dirName string, fn func(path string, obj Object) error) error {
	dir := l.buildLocalPath(dirName)
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && path == dir {
				return nil
			}
			return err
		}
		if err := l.ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(path)[0] == '.' {
			return nil
		}
		relPath, err := filepath.Rel(l.dir, path)
		if err != nil {
			return err
		}
		obj, err := os.Open(path)
		if err != nil {
			return err
		}
		defer obj.Close()
		return fn(filepath.ToSlash(relPath), obj)
	})
}

func init() {
	RegisterStorageType(setting.LocalStorageType, NewLocalStorage)
}
