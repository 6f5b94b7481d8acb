/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package deploy turns a composed stack descriptor and its client
// configuration into a CloudFormation stack.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/naming"
)

// Operation is what a Provision call did to the stack
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationNone   Operation = "none"
	OperationDryRun Operation = "dry-run"
)

// DistributionOutput is the stack output holding the CloudFront distribution id
const DistributionOutput = "DistributionId"

// ProvisionResult describes a provisioned, or for dry runs a rendered, stack
type ProvisionResult struct {
	StackName      string            `json:"stack_name" yaml:"stack_name"`
	StackID        string            `json:"stack_id,omitempty" yaml:"stack_id,omitempty"`
	Region         string            `json:"region" yaml:"region"`
	Operation      Operation         `json:"operation" yaml:"operation"`
	TemplateName   string            `json:"template_name" yaml:"template_name"`
	TemplateBody   string            `json:"-" yaml:"-"`
	Parameters     map[string]string `json:"parameters" yaml:"parameters"`
	Tags           map[string]string `json:"tags" yaml:"tags"`
	Capabilities   []string          `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Outputs        map[string]string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	InvalidationID string            `json:"invalidation_id,omitempty" yaml:"invalidation_id,omitempty"`
}

// Emitter provisions cloud infrastructure for a composed stack
type Emitter interface {
	Provision(ctx context.Context, descriptor *model.StackDescriptor, cfg *config.ClientServiceConfig) (*ProvisionResult, error)
}

// TemplateSource supplies the template for a stack type
type TemplateSource interface {
	Template(stackType model.StackTypeID) (*compose.StackTemplate, error)
}

// Option configures a CloudFormationEmitter
type Option func(*CloudFormationEmitter)

// WithDryRun renders the template and stops before calling AWS
func WithDryRun(dryRun bool) Option {
	return func(e *CloudFormationEmitter) {
		e.dryRun = dryRun
	}
}

// WithWait waits up to maxWait for the stack operation to finish. Zero returns
// as soon as CloudFormation accepts the request.
func WithWait(maxWait time.Duration) Option {
	return func(e *CloudFormationEmitter) {
		e.maxWait = maxWait
	}
}

// WithProcessor replaces the template processor
func WithProcessor(processor TemplateProcessor) Option {
	return func(e *CloudFormationEmitter) {
		e.processor = processor
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *CloudFormationEmitter) {
		e.logger = logger
	}
}

// CloudFormationEmitter implements Emitter using AWS CloudFormation
type CloudFormationEmitter struct {
	templates TemplateSource
	store     *catalog.Store
	clients   aws.ClientFactory
	processor TemplateProcessor
	logger    *slog.Logger
	dryRun    bool
	maxWait   time.Duration
}

// NewCloudFormationEmitter creates an emitter. clients may be nil for dry runs.
func NewCloudFormationEmitter(templates TemplateSource, store *catalog.Store, clients aws.ClientFactory, opts ...Option) *CloudFormationEmitter {
	if store == nil {
		store = catalog.NewStore(nil)
	}
	e := &CloudFormationEmitter{
		templates: templates,
		store:     store,
		clients:   clients,
		processor: NewCfnTemplateProcessor(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Provision renders the descriptor's template and creates or updates the
// client's stack in the configured region
func (e *CloudFormationEmitter) Provision(ctx context.Context, descriptor *model.StackDescriptor, cfg *config.ClientServiceConfig) (*ProvisionResult, error) {
	if descriptor == nil || cfg == nil {
		return nil, fmt.Errorf("stack descriptor and client configuration are required")
	}
	if descriptor.StackType != cfg.StackType() {
		return nil, fmt.Errorf("stack descriptor is for %s but client '%s' uses %s", descriptor.StackType, cfg.ClientID, cfg.StackType())
	}

	result, err := e.render(descriptor, cfg)
	if err != nil {
		return nil, err
	}

	logger := e.logger.With("client_id", cfg.ClientID, "stack", result.StackName, "region", result.Region)

	if e.dryRun {
		logger.Info("dry run, skipping provisioning")
		result.Operation = OperationDryRun
		return result, nil
	}
	if e.clients == nil {
		return nil, fmt.Errorf("no AWS client factory configured")
	}

	ops, err := e.clients.GetCloudFormationOperations(ctx, result.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	if err := ops.ValidateTemplate(ctx, result.TemplateBody); err != nil {
		return nil, err
	}

	if err := e.apply(ctx, ops, result); err != nil {
		return nil, err
	}
	logger.Info("stack provisioned", "operation", string(result.Operation), "stack_id", result.StackID)

	if e.maxWait <= 0 || result.Operation == OperationNone {
		return result, nil
	}

	waitFor := aws.StackOperationCreate
	if result.Operation == OperationUpdate {
		waitFor = aws.StackOperationUpdate
	}
	if err := ops.WaitForStack(ctx, result.StackName, waitFor, e.maxWait); err != nil {
		return result, err
	}

	stack, err := ops.GetStack(ctx, result.StackName)
	if err != nil {
		return result, err
	}
	result.Outputs = stack.Outputs

	if result.Operation == OperationUpdate && cfg.Integration.CachingEnabled {
		if err := e.invalidate(ctx, result); err != nil {
			logger.Warn("cache invalidation failed", "error", err)
		}
	}
	return result, nil
}

// render resolves the template and everything sent with it
func (e *CloudFormationEmitter) render(descriptor *model.StackDescriptor, cfg *config.ClientServiceConfig) (*ProvisionResult, error) {
	tmpl, err := e.templates.Template(descriptor.StackType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template for %s: %w", descriptor.StackType, err)
	}

	variables, err := Variables(e.store.Load(), descriptor, cfg)
	if err != nil {
		return nil, err
	}

	body, err := e.processor.Process(tmpl.Body, variables)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", tmpl.Name, err)
	}

	return &ProvisionResult{
		StackName:    naming.DeploymentName(cfg),
		Region:       cfg.Region,
		TemplateName: tmpl.Name,
		TemplateBody: body,
		Parameters:   tmpl.Parameters,
		Tags:         naming.Tags(cfg, descriptor.Engine),
		Capabilities: tmpl.Capabilities,
	}, nil
}

// apply creates the stack, or updates it when it already exists
func (e *CloudFormationEmitter) apply(ctx context.Context, ops aws.CloudFormationOperations, result *ProvisionResult) error {
	input := aws.DeployStackInput{
		StackName:    result.StackName,
		TemplateBody: result.TemplateBody,
		Parameters:   toParameters(result.Parameters),
		Tags:         result.Tags,
		Capabilities: result.Capabilities,
	}

	exists, err := ops.StackExists(ctx, result.StackName)
	if err != nil {
		return err
	}

	if !exists {
		result.Operation = OperationCreate
		result.StackID, err = ops.DeployStack(ctx, input)
		return err
	}

	result.Operation = OperationUpdate
	result.StackID, err = ops.UpdateStack(ctx, input)
	if errors.Is(err, aws.ErrNoChanges) {
		result.Operation = OperationNone
		return nil
	}
	return err
}

func (e *CloudFormationEmitter) invalidate(ctx context.Context, result *ProvisionResult) error {
	distributionID := result.Outputs[DistributionOutput]
	if distributionID == "" {
		return nil
	}

	cdn, err := e.clients.GetCDNOperations(ctx)
	if err != nil {
		return err
	}
	result.InvalidationID, err = cdn.InvalidatePaths(ctx, distributionID, []string{"/*"})
	return err
}

// toParameters converts parameters in key order
func toParameters(parameters map[string]string) []aws.Parameter {
	params := make([]aws.Parameter, 0, len(parameters))
	for _, key := range slices.Sorted(maps.Keys(parameters)) {
		params = append(params, aws.Parameter{Key: key, Value: parameters[key]})
	}
	return params
}
