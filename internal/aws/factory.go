/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ClientFactory creates AWS clients with proper region configuration
type ClientFactory interface {
	// GetCloudFormationOperations returns CloudFormation operations for specified region
	GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error)

	// GetObjectOperations returns S3 operations for the specified region
	GetObjectOperations(ctx context.Context, region string) (ObjectOperations, error)

	// GetCDNOperations returns CloudFront operations; CloudFront is global
	GetCDNOperations(ctx context.Context) (CDNOperations, error)

	// GetBaseConfig returns the shared AWS configuration (for debugging)
	GetBaseConfig() aws.Config

	// ValidateRegion checks the region format before any client is built
	ValidateRegion(region string) error
}

// DefaultClientFactory implements ClientFactory with caching and shared authentication
type DefaultClientFactory struct {
	baseConfig  aws.Config
	cfnCache    map[string]CloudFormationOperations
	objectCache map[string]ObjectOperations
	cdn         CDNOperations
	mutex       sync.Mutex
}

var regionPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d$`)

// NewClientFactory creates a client factory with shared authentication
func NewClientFactory(ctx context.Context, cfg Config) (*DefaultClientFactory, error) {
	// Load base config with credentials but allow region override per-client
	baseConfig, err := loadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &DefaultClientFactory{
		baseConfig:  baseConfig,
		cfnCache:    make(map[string]CloudFormationOperations),
		objectCache: make(map[string]ObjectOperations),
	}, nil
}

// GetCloudFormationOperations returns CloudFormation operations for the specified region
func (f *DefaultClientFactory) GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error) {
	if err := f.ValidateRegion(region); err != nil {
		return nil, err
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if ops, exists := f.cfnCache[region]; exists {
		return ops, nil
	}

	ops := NewCloudFormationOperationsWithClient(cloudformation.NewFromConfig(f.regionConfig(region)))
	f.cfnCache[region] = ops
	return ops, nil
}

// GetObjectOperations returns S3 operations for the specified region
func (f *DefaultClientFactory) GetObjectOperations(ctx context.Context, region string) (ObjectOperations, error) {
	if err := f.ValidateRegion(region); err != nil {
		return nil, err
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if ops, exists := f.objectCache[region]; exists {
		return ops, nil
	}

	ops := NewObjectOperationsWithClient(s3.NewFromConfig(f.regionConfig(region)))
	f.objectCache[region] = ops
	return ops, nil
}

// GetCDNOperations returns CloudFront operations
func (f *DefaultClientFactory) GetCDNOperations(ctx context.Context) (CDNOperations, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.cdn == nil {
		f.cdn = NewCDNOperationsWithClient(cloudfront.NewFromConfig(f.baseConfig))
	}
	return f.cdn, nil
}

// GetBaseConfig returns the shared AWS configuration
func (f *DefaultClientFactory) GetBaseConfig() aws.Config {
	return f.baseConfig
}

// ValidateRegion checks the region looks like us-east-1 or ap-southeast-2
func (f *DefaultClientFactory) ValidateRegion(region string) error {
	if region == "" {
		return fmt.Errorf("region cannot be empty")
	}
	if !regionPattern.MatchString(region) {
		return fmt.Errorf("region '%s' appears to be invalid", region)
	}
	return nil
}

func (f *DefaultClientFactory) regionConfig(region string) aws.Config {
	regionConfig := f.baseConfig.Copy()
	regionConfig.Region = region
	return regionConfig
}
