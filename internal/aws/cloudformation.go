/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

// ErrNoChanges is returned by UpdateStack when CloudFormation has nothing to do
var ErrNoChanges = errors.New("no updates are to be performed")

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateComplete         StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed           StackStatus = "CREATE_FAILED"
	StackStatusUpdateComplete         StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateRollbackComplete StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusRollbackComplete       StackStatus = "ROLLBACK_COMPLETE"
)

// StackOperation names the operation WaitForStack waits on
type StackOperation string

const (
	StackOperationCreate StackOperation = "create"
	StackOperationUpdate StackOperation = "update"
	StackOperationDelete StackOperation = "delete"
)

// Stack represents a CloudFormation stack with essential information
type Stack struct {
	ID          string
	Name        string
	Status      StackStatus
	CreatedTime *time.Time
	UpdatedTime *time.Time
	Description string
	Parameters  map[string]string
	Outputs     map[string]string
	Tags        map[string]string
}

// Parameter represents a CloudFormation stack parameter
type Parameter struct {
	Key   string
	Value string
}

// DeployStackInput contains parameters for creating or updating a stack
type DeployStackInput struct {
	StackName    string
	TemplateBody string
	Parameters   []Parameter
	Tags         map[string]string
	Capabilities []string
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
	token  func() string
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
		token:  uuid.NewString,
	}
}

// DeployStack creates a new CloudFormation stack
func (cf *DefaultCloudFormationOperations) DeployStack(ctx context.Context, input DeployStackInput) (string, error) {
	result, err := cf.client.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:          aws.String(input.StackName),
		TemplateBody:       aws.String(input.TemplateBody),
		Parameters:         toParameters(input.Parameters),
		Tags:               toTags(input.Tags),
		Capabilities:       toCapabilities(input.Capabilities),
		ClientRequestToken: aws.String(cf.token()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stack %s: %w", input.StackName, err)
	}

	return aws.ToString(result.StackId), nil
}

// UpdateStack updates an existing CloudFormation stack
func (cf *DefaultCloudFormationOperations) UpdateStack(ctx context.Context, input DeployStackInput) (string, error) {
	result, err := cf.client.UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:          aws.String(input.StackName),
		TemplateBody:       aws.String(input.TemplateBody),
		Parameters:         toParameters(input.Parameters),
		Tags:               toTags(input.Tags),
		Capabilities:       toCapabilities(input.Capabilities),
		ClientRequestToken: aws.String(cf.token()),
	})
	if err != nil {
		if isValidationError(err, "No updates are to be performed") {
			return "", ErrNoChanges
		}
		return "", fmt.Errorf("failed to update stack %s: %w", input.StackName, err)
	}

	return aws.ToString(result.StackId), nil
}

// GetStack retrieves information about a specific stack
func (cf *DefaultCloudFormationOperations) GetStack(ctx context.Context, stackName string) (*Stack, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	cfnStack := result.Stacks[0]
	stack := &Stack{
		ID:          aws.ToString(cfnStack.StackId),
		Name:        aws.ToString(cfnStack.StackName),
		Status:      StackStatus(cfnStack.StackStatus),
		CreatedTime: cfnStack.CreationTime,
		UpdatedTime: cfnStack.LastUpdatedTime,
		Description: aws.ToString(cfnStack.Description),
		Parameters:  make(map[string]string),
		Outputs:     make(map[string]string),
		Tags:        make(map[string]string),
	}

	for _, param := range cfnStack.Parameters {
		stack.Parameters[aws.ToString(param.ParameterKey)] = aws.ToString(param.ParameterValue)
	}
	for _, output := range cfnStack.Outputs {
		stack.Outputs[aws.ToString(output.OutputKey)] = aws.ToString(output.OutputValue)
	}
	for _, tag := range cfnStack.Tags {
		stack.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return stack, nil
}

// StackExists checks if a stack exists
func (cf *DefaultCloudFormationOperations) StackExists(ctx context.Context, stackName string) (bool, error) {
	_, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		if isValidationError(err, "does not exist") {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if stack exists: %w", err)
	}

	return true, nil
}

// GetTemplate returns the template body of a deployed stack as submitted
func (cf *DefaultCloudFormationOperations) GetTemplate(ctx context.Context, stackName string) (string, error) {
	output, err := cf.client.GetTemplate(ctx, &cloudformation.GetTemplateInput{
		StackName:     aws.String(stackName),
		TemplateStage: types.TemplateStageOriginal,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get template for stack %s: %w", stackName, err)
	}

	return aws.ToString(output.TemplateBody), nil
}

// DeleteStack requests deletion of a stack. Use WaitForStack to wait for it
// to be removed.
func (cf *DefaultCloudFormationOperations) DeleteStack(ctx context.Context, stackName string) error {
	_, err := cf.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName:          aws.String(stackName),
		ClientRequestToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", stackName, err)
	}

	return nil
}

// ValidateTemplate validates a CloudFormation template
func (cf *DefaultCloudFormationOperations) ValidateTemplate(ctx context.Context, templateBody string) error {
	_, err := cf.client.ValidateTemplate(ctx, &cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(templateBody),
	})
	if err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}

	return nil
}

// WaitForStack polls DescribeStacks until the operation completes or fails
func (cf *DefaultCloudFormationOperations) WaitForStack(ctx context.Context, stackName string, operation StackOperation, maxWait time.Duration) error {
	input := &cloudformation.DescribeStacksInput{StackName: aws.String(stackName)}

	var err error
	switch operation {
	case StackOperationCreate:
		err = cloudformation.NewStackCreateCompleteWaiter(cf.client).Wait(ctx, input, maxWait)
	case StackOperationUpdate:
		err = cloudformation.NewStackUpdateCompleteWaiter(cf.client).Wait(ctx, input, maxWait)
	case StackOperationDelete:
		err = cloudformation.NewStackDeleteCompleteWaiter(cf.client).Wait(ctx, input, maxWait)
	default:
		return fmt.Errorf("unsupported stack operation '%s'", operation)
	}
	if err != nil {
		return fmt.Errorf("stack %s did not finish %s: %w", stackName, operation, err)
	}
	return nil
}

// isValidationError reports whether err is a CloudFormation ValidationError
// whose message contains fragment
func isValidationError(err error, fragment string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.ErrorCode() == "ValidationError" && strings.Contains(apiErr.ErrorMessage(), fragment)
}

func toParameters(parameters []Parameter) []types.Parameter {
	params := make([]types.Parameter, len(parameters))
	for i, p := range parameters {
		params[i] = types.Parameter{
			ParameterKey:   aws.String(p.Key),
			ParameterValue: aws.String(p.Value),
		}
	}
	return params
}

// toTags converts tags in key order so requests are reproducible
func toTags(tags map[string]string) []types.Tag {
	result := make([]types.Tag, 0, len(tags))
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		result = append(result, types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return result
}

func toCapabilities(capabilities []string) []types.Capability {
	result := make([]types.Capability, len(capabilities))
	for i, c := range capabilities {
		result[i] = types.Capability(c)
	}
	return result
}
