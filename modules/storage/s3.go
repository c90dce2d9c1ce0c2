// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/setting"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var _ ObjectStorage = &S3Storage{}

// S3Storage stores objects in an S3 compatible bucket
type S3Storage struct {
	ctx      context.Context
	client   *s3.Client
	presign  *s3.PresignClient
	bucket   string
	basePath string
}

type s3Object struct {
	io.ReadCloser
	info *objectInfo
}

func (o *s3Object) Stat() (os.FileInfo, error) {
	return o.info, nil
}

func convertS3Err(err error) error {
	if err == nil {
		return nil
	}
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return os.ErrNotExist
	}
	return err
}

// NewS3Storage returns an S3 storage. Static credentials are used when
// configured, the default AWS credential chain otherwise.
func NewS3Storage(ctx context.Context, cfg *setting.Storage) (ObjectStorage, error) {
	s3cfg := cfg.S3Config
	if s3cfg.Bucket == "" {
		return nil, ErrInvalidConfiguration{cfg: s3cfg, err: fmt.Errorf("no bucket is configured")}
	}

	log.Info("Creating S3 storage at %s with base path %s", s3cfg.Bucket, s3cfg.BasePath)

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(s3cfg.Region)}
	if s3cfg.AccessKeyID != "" && s3cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKeyID, s3cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, ErrInvalidConfiguration{cfg: s3cfg, err: err}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
		}
		o.UsePathStyle = s3cfg.UsePathStyle
	})

	return &S3Storage{
		ctx:      ctx,
		client:   client,
		presign:  s3.NewPresignClient(client),
		bucket:   s3cfg.Bucket,
		basePath: s3cfg.BasePath,
	}, nil
}

func (s *S3Storage) buildS3Path(p string) string {
	return joinBase(s.basePath, p)
}

// Open opens an object for reading
func (s *S3Storage) Open(p string) (Object, error) {
	out, err := s.client.GetObject(s.ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.buildS3Path(p)),
	})
	if err != nil {
		return nil, convertS3Err(err)
	}
	return &s3Object{
		ReadCloser: out.Body,
		info: &objectInfo{
			name:    path.Base(p),
			size:    aws.ToInt64(out.ContentLength),
			modTime: aws.ToTime(out.LastModified),
		},
	}, nil
}

// Save uploads an object. Readers that cannot seek are buffered first so
// the payload can be signed.
func (s *S3Storage) Save(p string, r io.Reader, size int64) (int64, error) {
	body, ok := r.(io.ReadSeeker)
	if !ok || size < 0 {
		buf, err := io.ReadAll(r)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(buf)
		size = int64(len(buf))
	}

	_, err := s.client.PutObject(s.ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.buildS3Path(p)),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType(p)),
	})
	if err != nil {
		return 0, convertS3Err(err)
	}
	return size, nil
}

// Stat returns the stat information of the object
func (s *S3Storage) Stat(p string) (os.FileInfo, error) {
	out, err := s.client.HeadObject(s.ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.buildS3Path(p)),
	})
	if err != nil {
		return nil, convertS3Err(err)
	}
	return &objectInfo{
		name:    path.Base(p),
		size:    aws.ToInt64(out.ContentLength),
		modTime: aws.ToTime(out.LastModified),
	}, nil
}

// Delete deletes an object
func (s *S3Storage) Delete(p string) error {
	_, err := s.client.DeleteObject(s.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.buildS3Path(p)),
	})
	return convertS3Err(err)
}

// URL returns a presigned download link valid for 5 minutes
func (s *S3Storage) URL(p, name string) (*url.URL, error) {
	req, err := s.presign.PresignGetObject(s.ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.bucket),
		Key:                        aws.String(s.buildS3Path(p)),
		ResponseContentDisposition: aws.String("attachment; filename=\"" + quoteEscaper.Replace(name) + "\""),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return nil, convertS3Err(err)
	}
	return url.Parse(req.URL)
}

// IterateObjects iterates across the objects below dirName
func (s *S3Storage) IterateObjects(dirName string, fn func(path string, obj Object) error) error {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(listPrefix(s.buildS3Path(dirName))),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(s.ctx)
		if err != nil {
			return convertS3Err(err)
		}
		for _, item := range page.Contents {
			rel := trimBase(s.basePath, aws.ToString(item.Key))
			obj, err := s.Open(rel)
			if err != nil {
				return err
			}
			err = fn(rel, obj)
			_ = obj.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	RegisterStorageType(setting.S3StorageType, NewS3Storage)
}
