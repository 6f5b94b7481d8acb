/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"
	"time"

	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/naming"
)

// Describer defines the interface for retrieving a client's deployment
type Describer interface {
	DescribeClient(ctx context.Context, cfg *config.ClientServiceConfig) (*ClientDescription, error)
}

// ClientDescription contains the planned deployment of a client and, when
// the stack exists, its live state
type ClientDescription struct {
	// Client information
	ClientID    string `yaml:"client_id" json:"client_id"`
	Company     string `yaml:"company,omitempty" json:"company,omitempty"`
	Domain      string `yaml:"domain" json:"domain"`
	Environment string `yaml:"environment" json:"environment"`
	Region      string `yaml:"region" json:"region"`
	ServiceTier string `yaml:"service_tier" json:"service_tier"`

	// Composed stack
	StackType         string   `yaml:"stack_type" json:"stack_type"`
	Category          string   `yaml:"category" json:"category"`
	Engine            string   `yaml:"engine" json:"engine"`
	CMSProvider       string   `yaml:"cms_provider,omitempty" json:"cms_provider,omitempty"`
	EcommerceProvider string   `yaml:"ecommerce_provider,omitempty" json:"ecommerce_provider,omitempty"`
	ConstructID       string   `yaml:"construct_id" json:"construct_id"`
	RequiredServices  []string `yaml:"required_services,omitempty" json:"required_services,omitempty"`

	// Derived names
	DeploymentName       string                   `yaml:"deployment_name" json:"deployment_name"`
	ResourcePrefix       string                   `yaml:"resource_prefix" json:"resource_prefix"`
	Tags                 map[string]string        `yaml:"tags" json:"tags"`
	EnvironmentVariables []string                 `yaml:"environment_variables" json:"environment_variables"`
	Webhooks             []naming.WebhookEndpoint `yaml:"webhooks,omitempty" json:"webhooks,omitempty"`

	// Stack is nil when the stack has not been deployed or no AWS access was configured
	Stack *StackState `yaml:"stack,omitempty" json:"stack,omitempty"`
}

// StackState is the live CloudFormation view of a deployed client stack
type StackState struct {
	Name        string            `yaml:"name" json:"name"`
	Status      string            `yaml:"status" json:"status"`
	StackID     string            `yaml:"stack_id" json:"stack_id"`
	CreatedTime time.Time         `yaml:"created_time" json:"created_time"`
	UpdatedTime *time.Time        `yaml:"updated_time,omitempty" json:"updated_time,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Outputs     map[string]string `yaml:"outputs,omitempty" json:"outputs,omitempty"`
}
