/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"
	"fmt"
	"time"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/naming"
)

// ClientDescriber implements the Describer interface
type ClientDescriber struct {
	composer      compose.Composer
	store         *catalog.Store
	clientFactory aws.ClientFactory
}

// NewClientDescriber creates a new describer. clientFactory may be nil, in
// which case only the planned deployment is described.
func NewClientDescriber(composer compose.Composer, store *catalog.Store, clientFactory aws.ClientFactory) Describer {
	if store == nil {
		store = catalog.NewStore(nil)
	}
	return &ClientDescriber{
		composer:      composer,
		store:         store,
		clientFactory: clientFactory,
	}
}

// DescribeClient composes the client's stack and looks up its live state
func (d *ClientDescriber) DescribeClient(ctx context.Context, cfg *config.ClientServiceConfig) (*ClientDescription, error) {
	descriptor, err := d.composer.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to compose stack for client %s: %w", cfg.ClientID, err)
	}

	envVars, err := naming.EnvironmentVariableNames(d.store.Load(), cfg, descriptor.Engine)
	if err != nil {
		return nil, err
	}

	description := &ClientDescription{
		ClientID:             cfg.ClientID,
		Company:              cfg.CompanyName,
		Domain:               cfg.Domain,
		Environment:          string(cfg.Environment),
		Region:               cfg.Region,
		ServiceTier:          string(cfg.ServiceTier),
		StackType:            string(descriptor.StackType),
		Category:             string(descriptor.Category),
		Engine:               string(descriptor.Engine),
		CMSProvider:          string(descriptor.CMSProvider),
		EcommerceProvider:    string(descriptor.EcommerceProvider),
		ConstructID:          descriptor.ConstructID,
		RequiredServices:     descriptor.RequiredServices,
		DeploymentName:       naming.DeploymentName(cfg),
		ResourcePrefix:       naming.ResourcePrefix(cfg),
		Tags:                 naming.Tags(cfg, descriptor.Engine),
		EnvironmentVariables: envVars,
		Webhooks:             naming.WebhookEndpoints(cfg),
	}

	if d.clientFactory == nil {
		return description, nil
	}

	description.Stack, err = d.describeStack(ctx, cfg.Region, description.DeploymentName)
	if err != nil {
		return nil, err
	}
	return description, nil
}

// describeStack returns nil when the stack does not exist
func (d *ClientDescriber) describeStack(ctx context.Context, region, stackName string) (*StackState, error) {
	cfOps, err := d.clientFactory.GetCloudFormationOperations(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to get CloudFormation operations for region %s: %w", region, err)
	}

	exists, err := cfOps.StackExists(ctx, stackName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	stack, err := cfOps.GetStack(ctx, stackName)
	if err != nil {
		return nil, err
	}

	return &StackState{
		Name:        stack.Name,
		Status:      string(stack.Status),
		StackID:     stack.ID,
		CreatedTime: dereferenceTime(stack.CreatedTime),
		UpdatedTime: stack.UpdatedTime,
		Description: stack.Description,
		Outputs:     convertOutputs(stack.Outputs),
	}, nil
}

// dereferenceTime safely dereferences a time pointer
func dereferenceTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func convertOutputs(outputs map[string]string) map[string]string {
	if outputs == nil {
		return make(map[string]string)
	}
	return outputs
}
