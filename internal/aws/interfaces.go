/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CloudFormationClient is the subset of the CloudFormation API sitestack calls
type CloudFormationClient interface {
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
	GetTemplate(ctx context.Context, params *cloudformation.GetTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.GetTemplateOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// S3Client is the subset of the S3 API used to fetch registry documents
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// CloudFrontClient is the subset of the CloudFront API used after a deployment
type CloudFrontClient interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

// Ensure that the SDK clients implement our interfaces
var (
	_ CloudFormationClient = (*cloudformation.Client)(nil)
	_ S3Client             = (*s3.Client)(nil)
	_ CloudFrontClient     = (*cloudfront.Client)(nil)
)

// Ensure that the default implementations implement the operation interfaces
var (
	_ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)
	_ ObjectOperations         = (*DefaultObjectOperations)(nil)
	_ CDNOperations            = (*DefaultCDNOperations)(nil)
	_ ClientFactory            = (*DefaultClientFactory)(nil)
)

// CloudFormationOperations defines the stack operations used by the deployment emitter
type CloudFormationOperations interface {
	// DeployStack creates a stack and returns its id
	DeployStack(ctx context.Context, input DeployStackInput) (string, error)

	// UpdateStack updates a stack and returns its id. ErrNoChanges is returned
	// when the template and parameters already match.
	UpdateStack(ctx context.Context, input DeployStackInput) (string, error)

	GetStack(ctx context.Context, stackName string) (*Stack, error)
	StackExists(ctx context.Context, stackName string) (bool, error)
	ValidateTemplate(ctx context.Context, templateBody string) error

	// GetTemplate returns the template body the stack was last deployed with
	GetTemplate(ctx context.Context, stackName string) (string, error)
	DeleteStack(ctx context.Context, stackName string) error

	// WaitForStack blocks until a create, update or delete reaches a terminal state
	WaitForStack(ctx context.Context, stackName string, operation StackOperation, maxWait time.Duration) error
}

// ObjectOperations reads objects from S3
type ObjectOperations interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// CDNOperations manages CloudFront cache state
type CDNOperations interface {
	// InvalidatePaths starts an invalidation and returns its id
	InvalidatePaths(ctx context.Context, distributionID string, paths []string) (string, error)
}
