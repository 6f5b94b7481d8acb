/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package delete

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/logging"
	"github.com/sitestack/sitestack/internal/prompt"
)

const stackName = "AcmeCo-Prod-DecapCmsTier"

func withPrompter(t *testing.T, confirmed bool, err error) *prompt.MockPrompter {
	t.Helper()
	original := prompt.GetDefaultPrompter()
	mockPrompter := &prompt.MockPrompter{}
	mockPrompter.On("ConfirmDeletion", stackName, "us-east-1").Return(confirmed, err)
	prompt.SetPrompter(mockPrompter)
	t.Cleanup(func() { prompt.SetPrompter(original) })
	return mockPrompter
}

func deployedStack() *aws.Stack {
	return &aws.Stack{
		Name:        stackName,
		Status:      aws.StackStatusCreateComplete,
		Description: "Decap CMS tier for acme.com",
	}
}

func newTestDeleter(factory aws.ClientFactory, out *bytes.Buffer, opts ...Option) *StackDeleter {
	opts = append([]Option{WithOutput(out), WithLogger(logging.Discard())}, opts...)
	return NewStackDeleter(factory, opts...)
}

func TestMockDeleter_Interface(t *testing.T) {
	var _ Deleter = (*MockDeleter)(nil)
	var _ Deleter = (*StackDeleter)(nil)
}

func TestDeleteClient_ConfirmedAndWaited(t *testing.T) {
	ctx := context.Background()
	factory, cfOps := aws.NewMockClientFactoryForRegion("us-east-1")
	mockPrompter := withPrompter(t, true, nil)

	cfOps.On("StackExists", ctx, stackName).Return(true, nil)
	cfOps.On("GetStack", ctx, stackName).Return(deployedStack(), nil)
	cfOps.On("DeleteStack", ctx, stackName).Return(nil)
	cfOps.On("WaitForStack", ctx, stackName, aws.StackOperationDelete, 10*time.Minute).Return(nil)

	var out bytes.Buffer
	result, err := newTestDeleter(factory, &out, WithWait(10*time.Minute)).DeleteClient(ctx, config.NewTestConfig())

	require.NoError(t, err)
	assert.Equal(t, &Result{StackName: stackName, Region: "us-east-1", Outcome: OutcomeDeleted}, result)
	assert.Contains(t, out.String(), "=== Stack Deletion Preview ===")
	assert.Contains(t, out.String(), "Client: acme-co (acme.com)")
	assert.Contains(t, out.String(), "Description: Decap CMS tier for acme.com")
	assert.Contains(t, out.String(), "WARNING: This operation cannot be undone!")
	cfOps.AssertExpectations(t)
	mockPrompter.AssertExpectations(t)
}

func TestDeleteClient_NoWaitSkipsWaiter(t *testing.T) {
	ctx := context.Background()
	factory, cfOps := aws.NewMockClientFactoryForRegion("us-east-1")
	withPrompter(t, true, nil)

	cfOps.On("StackExists", ctx, stackName).Return(true, nil)
	cfOps.On("GetStack", ctx, stackName).Return(deployedStack(), nil)
	cfOps.On("DeleteStack", ctx, stackName).Return(nil)

	var out bytes.Buffer
	result, err := newTestDeleter(factory, &out).DeleteClient(ctx, config.NewTestConfig())

	require.NoError(t, err)
	assert.Equal(t, OutcomeDeleted, result.Outcome)
	cfOps.AssertNotCalled(t, "WaitForStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteClient_StackMissing(t *testing.T) {
	ctx := context.Background()
	factory, cfOps := aws.NewMockClientFactoryForRegion("us-east-1")
	mockPrompter := withPrompter(t, true, nil)

	cfOps.On("StackExists", ctx, stackName).Return(false, nil)

	var out bytes.Buffer
	result, err := newTestDeleter(factory, &out).DeleteClient(ctx, config.NewTestConfig())

	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, result.Outcome)
	assert.Contains(t, out.String(), "does not exist, skipping deletion")
	mockPrompter.AssertNotCalled(t, "ConfirmDeletion", mock.Anything, mock.Anything)
	cfOps.AssertNotCalled(t, "DeleteStack", mock.Anything, mock.Anything)
}

func TestDeleteClient_Cancelled(t *testing.T) {
	ctx := context.Background()
	factory, cfOps := aws.NewMockClientFactoryForRegion("us-east-1")
	withPrompter(t, false, nil)

	cfOps.On("StackExists", ctx, stackName).Return(true, nil)
	cfOps.On("GetStack", ctx, stackName).Return(deployedStack(), nil)

	var out bytes.Buffer
	result, err := newTestDeleter(factory, &out).DeleteClient(ctx, config.NewTestConfig())

	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.Contains(t, out.String(), "cancelled by user")
	cfOps.AssertNotCalled(t, "DeleteStack", mock.Anything, mock.Anything)
}

func TestDeleteClient_WithoutConfirmation(t *testing.T) {
	ctx := context.Background()
	factory, cfOps := aws.NewMockClientFactoryForRegion("us-east-1")
	mockPrompter := withPrompter(t, false, nil)

	cfOps.On("StackExists", ctx, stackName).Return(true, nil)
	cfOps.On("GetStack", ctx, stackName).Return(deployedStack(), nil)
	cfOps.On("DeleteStack", ctx, stackName).Return(nil)

	var out bytes.Buffer
	result, err := newTestDeleter(factory, &out, WithoutConfirmation()).DeleteClient(ctx, config.NewTestConfig())

	require.NoError(t, err)
	assert.Equal(t, OutcomeDeleted, result.Outcome)
	mockPrompter.AssertNotCalled(t, "ConfirmDeletion", mock.Anything, mock.Anything)
}

func TestDeleteClient_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(cfOps *aws.MockCloudFormationOperations)
		want  string
	}{
		{
			name: "exists check",
			setup: func(cfOps *aws.MockCloudFormationOperations) {
				cfOps.On("StackExists", mock.Anything, stackName).Return(false, errors.New("throttled"))
			},
			want: "failed to check if stack exists: throttled",
		},
		{
			name: "describe",
			setup: func(cfOps *aws.MockCloudFormationOperations) {
				cfOps.On("StackExists", mock.Anything, stackName).Return(true, nil)
				cfOps.On("GetStack", mock.Anything, stackName).Return(nil, errors.New("access denied"))
			},
			want: "failed to describe stack " + stackName + ": access denied",
		},
		{
			name: "delete",
			setup: func(cfOps *aws.MockCloudFormationOperations) {
				cfOps.On("StackExists", mock.Anything, stackName).Return(true, nil)
				cfOps.On("GetStack", mock.Anything, stackName).Return(deployedStack(), nil)
				cfOps.On("DeleteStack", mock.Anything, stackName).Return(errors.New("failed to delete stack " + stackName + ": termination protection"))
			},
			want: "termination protection",
		},
		{
			name: "wait",
			setup: func(cfOps *aws.MockCloudFormationOperations) {
				cfOps.On("StackExists", mock.Anything, stackName).Return(true, nil)
				cfOps.On("GetStack", mock.Anything, stackName).Return(deployedStack(), nil)
				cfOps.On("DeleteStack", mock.Anything, stackName).Return(nil)
				cfOps.On("WaitForStack", mock.Anything, stackName, aws.StackOperationDelete, time.Minute).Return(errors.New("DELETE_FAILED"))
			},
			want: "failed to wait for stack deletion: DELETE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, cfOps := aws.NewMockClientFactoryForRegion("us-east-1")
			tt.setup(cfOps)

			var out bytes.Buffer
			_, err := newTestDeleter(factory, &out, WithoutConfirmation(), WithWait(time.Minute)).DeleteClient(context.Background(), config.NewTestConfig())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDeleteClient_RegionError(t *testing.T) {
	factory := &aws.MockClientFactory{}
	factory.On("GetCloudFormationOperations", mock.Anything, "us-east-1").Return(nil, errors.New("invalid region"))

	var out bytes.Buffer
	_, err := newTestDeleter(factory, &out).DeleteClient(context.Background(), config.NewTestConfig())

	assert.EqualError(t, err, "failed to get CloudFormation operations for region us-east-1: invalid region")
}
