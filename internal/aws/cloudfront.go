/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/google/uuid"
)

// DefaultCDNOperations manages CloudFront invalidations
type DefaultCDNOperations struct {
	client CloudFrontClient
	token  func() string
}

// NewCDNOperationsWithClient creates operations with a custom client (for testing)
func NewCDNOperationsWithClient(client CloudFrontClient) *DefaultCDNOperations {
	return &DefaultCDNOperations{client: client, token: uuid.NewString}
}

// InvalidatePaths invalidates the given paths of a distribution
func (c *DefaultCDNOperations) InvalidatePaths(ctx context.Context, distributionID string, paths []string) (string, error) {
	if distributionID == "" {
		return "", fmt.Errorf("distribution id cannot be empty")
	}
	if len(paths) == 0 {
		paths = []string{"/*"}
	}

	result, err := c.client.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionID),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(c.token()),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(paths))),
				Items:    paths,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to invalidate distribution %s: %w", distributionID, err)
	}

	if result.Invalidation == nil {
		return "", nil
	}
	return aws.ToString(result.Invalidation.Id), nil
}
