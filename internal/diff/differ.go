/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"context"
	"fmt"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/deploy"
)

// StackDiffer implements Differ using AWS CloudFormation
type StackDiffer struct {
	clientFactory aws.ClientFactory
	options       Options
}

// NewStackDiffer creates a differ that looks stacks up in each client's region
func NewStackDiffer(clientFactory aws.ClientFactory, options Options) *StackDiffer {
	return &StackDiffer{clientFactory: clientFactory, options: options}
}

// Diff compares a rendered stack with the deployed stack of the same name
func (d *StackDiffer) Diff(ctx context.Context, proposed *deploy.ProvisionResult) (*Result, error) {
	if proposed == nil {
		return nil, fmt.Errorf("a rendered stack is required")
	}

	result := &Result{StackName: proposed.StackName, Region: proposed.Region}

	cfOps, err := d.clientFactory.GetCloudFormationOperations(ctx, proposed.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to get CloudFormation operations for region %s: %w", proposed.Region, err)
	}

	result.StackExists, err = cfOps.StackExists(ctx, proposed.StackName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if stack exists: %w", err)
	}
	if !result.StackExists {
		return d.newStack(proposed, result), nil
	}

	current, err := cfOps.GetStack(ctx, proposed.StackName)
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack: %w", err)
	}

	if d.options.template() {
		currentTemplate, err := cfOps.GetTemplate(ctx, proposed.StackName)
		if err != nil {
			return nil, fmt.Errorf("failed to get current template: %w", err)
		}
		if result.TemplateChange, err = compareTemplates(currentTemplate, proposed.TemplateBody); err != nil {
			return nil, fmt.Errorf("failed to compare templates: %w", err)
		}
	}
	if d.options.parameters() {
		result.ParameterDiffs = compareValues(current.Parameters, proposed.Parameters)
	}
	if d.options.tags() {
		result.TagDiffs = compareValues(current.Tags, proposed.Tags)
	}
	return result, nil
}

// newStack reports every parameter and tag of a stack that does not exist yet as added
func (d *StackDiffer) newStack(proposed *deploy.ProvisionResult, result *Result) *Result {
	if d.options.template() {
		result.TemplateChange = &TemplateChange{
			HasChanges:   true,
			ProposedHash: templateHash(proposed.TemplateBody),
		}
	}
	if d.options.parameters() {
		result.ParameterDiffs = compareValues(nil, proposed.Parameters)
	}
	if d.options.tags() {
		result.TagDiffs = compareValues(nil, proposed.Tags)
	}
	return result
}
