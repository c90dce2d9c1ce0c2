// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

// StorageType is a type of Storage
type StorageType string

const (
	// LocalStorageType is the type descriptor for local storage
	LocalStorageType StorageType = "local"
	// MinioStorageType is the type descriptor for MinIO storage
	MinioStorageType StorageType = "minio"
	// S3StorageType is the type descriptor for AWS S3 compatible storage
	S3StorageType StorageType = "s3"
)

// MinioStorageConfig represents the configuration for a minio storage
type MinioStorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Location        string
	BasePath        string
	UseSSL          bool
}

// S3StorageConfig represents the configuration for an S3 storage
type S3StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BasePath        string
	UsePathStyle    bool
}

// Storage is where exported charts are written, the [storage] section
type Storage struct {
	Type        StorageType `validate:"oneof=local minio s3"`
	Path        string
	MinioConfig MinioStorageConfig
	S3Config    S3StorageConfig
}

func loadStorageFrom(cfg *ini.File, s *Storage) {
	sec := cfg.Section("storage")
	s.Type = StorageType(sec.Key("TYPE").MustString(string(LocalStorageType)))

	s.Path = sec.Key("PATH").MustString("exports")
	if abs, err := filepath.Abs(s.Path); err == nil {
		s.Path = abs
	}

	s.MinioConfig = MinioStorageConfig{
		Endpoint:        sec.Key("MINIO_ENDPOINT").MustString("localhost:9000"),
		AccessKeyID:     sec.Key("MINIO_ACCESS_KEY_ID").MustString(""),
		SecretAccessKey: sec.Key("MINIO_SECRET_ACCESS_KEY").MustString(""),
		Bucket:          sec.Key("MINIO_BUCKET").MustString("charts"),
		Location:        sec.Key("MINIO_LOCATION").MustString("us-east-1"),
		BasePath:        sec.Key("MINIO_BASE_PATH").MustString("exports/"),
		UseSSL:          sec.Key("MINIO_USE_SSL").MustBool(false),
	}

	s.S3Config = S3StorageConfig{
		Endpoint:        sec.Key("S3_ENDPOINT").MustString(""),
		Region:          sec.Key("S3_REGION").MustString("us-east-1"),
		Bucket:          sec.Key("S3_BUCKET").MustString("charts"),
		AccessKeyID:     sec.Key("S3_ACCESS_KEY_ID").MustString(""),
		SecretAccessKey: sec.Key("S3_SECRET_ACCESS_KEY").MustString(""),
		BasePath:        sec.Key("S3_BASE_PATH").MustString("exports/"),
		UsePathStyle:    sec.Key("S3_USE_PATH_STYLE").MustBool(false),
	}
}
