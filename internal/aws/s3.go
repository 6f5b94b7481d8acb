/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// maxObjectSize bounds registry documents read into memory
const maxObjectSize = 4 << 20

// DefaultObjectOperations reads objects through an S3 client
type DefaultObjectOperations struct {
	client S3Client
}

// NewObjectOperationsWithClient creates operations with a custom client (for testing)
func NewObjectOperationsWithClient(client S3Client) *DefaultObjectOperations {
	return &DefaultObjectOperations{client: client}
}

// GetObject downloads an object body
func (o *DefaultObjectOperations) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(io.LimitReader(result.Body, maxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	if len(data) > maxObjectSize {
		return nil, fmt.Errorf("s3://%s/%s exceeds %d bytes", bucket, key, maxObjectSize)
	}
	return data, nil
}
