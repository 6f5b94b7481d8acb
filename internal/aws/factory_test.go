/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory() *DefaultClientFactory {
	return &DefaultClientFactory{
		baseConfig:  aws.Config{Region: "us-east-1"},
		cfnCache:    make(map[string]CloudFormationOperations),
		objectCache: make(map[string]ObjectOperations),
	}
}

func TestValidateRegion(t *testing.T) {
	factory := newTestFactory()

	assert.NoError(t, factory.ValidateRegion("us-east-1"))
	assert.NoError(t, factory.ValidateRegion("ap-southeast-2"))
	assert.NoError(t, factory.ValidateRegion("us-gov-west-1"))
	assert.EqualError(t, factory.ValidateRegion(""), "region cannot be empty")
	assert.EqualError(t, factory.ValidateRegion("mars"), "region 'mars' appears to be invalid")
}

func TestGetCloudFormationOperations_CachesPerRegion(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory()

	first, err := factory.GetCloudFormationOperations(ctx, "eu-west-1")
	require.NoError(t, err)
	second, err := factory.GetCloudFormationOperations(ctx, "eu-west-1")
	require.NoError(t, err)
	other, err := factory.GetCloudFormationOperations(ctx, "us-west-2")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestGetCloudFormationOperations_InvalidRegion(t *testing.T) {
	_, err := newTestFactory().GetCloudFormationOperations(context.Background(), "")

	assert.Error(t, err)
}

func TestGetObjectOperations_CachesPerRegion(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory()

	first, err := factory.GetObjectOperations(ctx, "eu-west-1")
	require.NoError(t, err)
	second, err := factory.GetObjectOperations(ctx, "eu-west-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGetCDNOperations_Shared(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory()

	first, err := factory.GetCDNOperations(ctx)
	require.NoError(t, err)
	second, err := factory.GetCDNOperations(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "us-east-1", factory.GetBaseConfig().Region)
}
