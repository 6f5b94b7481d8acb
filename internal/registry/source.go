/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package registry

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sitestack/sitestack/internal/aws"
)

// DefaultTimeout bounds a single registry fetch
const DefaultTimeout = 5 * time.Second

// Source fetches the raw registry document
type Source interface {
	// Name identifies the source in logs and health reports
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// S3Source reads the registry document from an S3 object
type S3Source struct {
	ops     aws.ObjectOperations
	bucket  string
	key     string
	timeout time.Duration
}

// NewS3Source creates a source for s3://bucket/key. A non-positive timeout
// uses DefaultTimeout.
func NewS3Source(ops aws.ObjectOperations, bucket, key string, timeout time.Duration) *S3Source {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &S3Source{ops: ops, bucket: bucket, key: key, timeout: timeout}
}

// Name returns the object URL
func (s *S3Source) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

// Fetch downloads the object, giving up after the source timeout
func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.ops.GetObject(ctx, s.bucket, s.key)
}

// FileSource reads the registry document from the local filesystem
type FileSource struct {
	Path string
}

// Name returns the file path
func (s *FileSource) Name() string {
	return s.Path
}

// Fetch reads the file
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	return data, nil
}

// Unavailable is a source that could not be set up. Fetch returns the setup
// error so the registry falls back like it does for any other fetch failure.
func Unavailable(name string, err error) Source {
	return &unavailableSource{name: name, err: err}
}

type unavailableSource struct {
	name string
	err  error
}

func (s *unavailableSource) Name() string {
	return s.name
}

func (s *unavailableSource) Fetch(context.Context) ([]byte, error) {
	return nil, s.err
}
