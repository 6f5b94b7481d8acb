/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package delete

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/naming"
	"github.com/sitestack/sitestack/internal/prompt"
)

// Outcome is what a DeleteClient call did
type Outcome string

const (
	OutcomeDeleted   Outcome = "deleted"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeCancelled Outcome = "cancelled"
)

// Result reports the deletion of one client stack
type Result struct {
	StackName string
	Region    string
	Outcome   Outcome
}

// Deleter removes the stack provisioned for a client
type Deleter interface {
	DeleteClient(ctx context.Context, cfg *config.ClientServiceConfig) (*Result, error)
}

// Option configures a StackDeleter
type Option func(*StackDeleter)

// WithOutput sets where the deletion preview is written
func WithOutput(w io.Writer) Option {
	return func(d *StackDeleter) {
		d.out = w
	}
}

// WithWait waits up to maxWait for the stack to be removed
func WithWait(maxWait time.Duration) Option {
	return func(d *StackDeleter) {
		d.maxWait = maxWait
	}
}

// WithoutConfirmation deletes without prompting
func WithoutConfirmation() Option {
	return func(d *StackDeleter) {
		d.skipConfirm = true
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(d *StackDeleter) {
		d.logger = logger
	}
}

// StackDeleter implements Deleter using AWS CloudFormation
type StackDeleter struct {
	clientFactory aws.ClientFactory
	out           io.Writer
	logger        *slog.Logger
	maxWait       time.Duration
	skipConfirm   bool
}

// NewStackDeleter creates a new StackDeleter
func NewStackDeleter(clientFactory aws.ClientFactory, opts ...Option) *StackDeleter {
	d := &StackDeleter{
		clientFactory: clientFactory,
		out:           os.Stdout,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DeleteClient shows what will be deleted, asks for confirmation and deletes
// the client's stack in its region
func (d *StackDeleter) DeleteClient(ctx context.Context, cfg *config.ClientServiceConfig) (*Result, error) {
	result := &Result{StackName: naming.DeploymentName(cfg), Region: cfg.Region}

	cfOps, err := d.clientFactory.GetCloudFormationOperations(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to get CloudFormation operations for region %s: %w", cfg.Region, err)
	}

	exists, err := cfOps.StackExists(ctx, result.StackName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if stack exists: %w", err)
	}
	if !exists {
		_, _ = fmt.Fprintf(d.out, "Stack %s does not exist, skipping deletion\n", result.StackName)
		result.Outcome = OutcomeNotFound
		return result, nil
	}

	stack, err := cfOps.GetStack(ctx, result.StackName)
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", result.StackName, err)
	}

	_, _ = fmt.Fprintf(d.out, "\n=== Stack Deletion Preview ===\n")
	_, _ = fmt.Fprintf(d.out, "Stack Name: %s\n", result.StackName)
	_, _ = fmt.Fprintf(d.out, "Client: %s (%s)\n", cfg.ClientID, cfg.Domain)
	_, _ = fmt.Fprintf(d.out, "Region: %s\n", cfg.Region)
	_, _ = fmt.Fprintf(d.out, "Status: %s\n", stack.Status)
	if stack.Description != "" {
		_, _ = fmt.Fprintf(d.out, "Description: %s\n", stack.Description)
	}
	_, _ = fmt.Fprintf(d.out, "\nThis will permanently delete the client's site infrastructure.\n")
	_, _ = fmt.Fprintf(d.out, "WARNING: This operation cannot be undone!\n")

	if !d.skipConfirm {
		confirmed, err := prompt.ConfirmDeletion(result.StackName, cfg.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			_, _ = fmt.Fprintf(d.out, "Deletion of stack %s cancelled by user\n", result.StackName)
			result.Outcome = OutcomeCancelled
			return result, nil
		}
	}

	d.logger.Info("deleting stack", "stack", result.StackName, "client", cfg.ClientID, "region", cfg.Region)
	if err := cfOps.DeleteStack(ctx, result.StackName); err != nil {
		return nil, err
	}

	if d.maxWait > 0 {
		_, _ = fmt.Fprintf(d.out, "Waiting for stack deletion to complete...\n")
		if err := cfOps.WaitForStack(ctx, result.StackName, aws.StackOperationDelete, d.maxWait); err != nil {
			return nil, fmt.Errorf("failed to wait for stack deletion: %w", err)
		}
	}

	result.Outcome = OutcomeDeleted
	return result, nil
}
