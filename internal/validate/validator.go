/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"context"
	"fmt"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/deploy"
)

// Validator checks client configurations end to end
type Validator interface {
	ValidateClient(ctx context.Context, clientID string) error
	ValidateAllClients(ctx context.Context) error
}

// ClientValidator validates configuration, engine compatibility and the
// rendered template of each client. Templates are checked against
// CloudFormation only when a client factory is supplied.
type ClientValidator struct {
	configProvider config.ConfigProvider
	composer       compose.Composer
	emitter        deploy.Emitter
	clientFactory  aws.ClientFactory
}

// NewClientValidator creates a new validator. emitter must render without
// provisioning, for example a CloudFormationEmitter in dry-run mode.
func NewClientValidator(
	configProvider config.ConfigProvider,
	composer compose.Composer,
	emitter deploy.Emitter,
	clientFactory aws.ClientFactory,
) *ClientValidator {
	return &ClientValidator{
		configProvider: configProvider,
		composer:       composer,
		emitter:        emitter,
		clientFactory:  clientFactory,
	}
}

// ValidateClient validates a single client
func (v *ClientValidator) ValidateClient(ctx context.Context, clientID string) error {
	fmt.Printf("Validating client '%s'...\n", clientID)

	result := v.validateClient(ctx, clientID)
	if !result.Valid {
		fmt.Printf("\n✗ Validation failed for client '%s'\n", clientID)
		fmt.Printf("  Error: %s\n", result.Error)
		return fmt.Errorf("client %s is invalid: %s", clientID, result.Error)
	}

	fmt.Printf("\n✓ Client '%s' is valid (%s)\n", clientID, result.StackType)
	return nil
}

// ValidateAllClients validates every client in the configuration
func (v *ClientValidator) ValidateAllClients(ctx context.Context) error {
	clientIDs, err := v.configProvider.ListClients()
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	if len(clientIDs) == 0 {
		fmt.Println("No clients defined")
		return nil
	}

	fmt.Printf("Validating %d client(s)...\n\n", len(clientIDs))

	results := make([]ValidationResult, 0, len(clientIDs))
	hasErrors := false

	for _, clientID := range clientIDs {
		fmt.Printf("→ Validating '%s'... ", clientID)

		result := v.validateClient(ctx, clientID)
		if result.Valid {
			fmt.Printf("✓\n")
		} else {
			fmt.Printf("✗\n")
			hasErrors = true
		}
		results = append(results, result)
	}

	v.printSummary(results)

	if hasErrors {
		return fmt.Errorf("validation failed for one or more clients")
	}

	return nil
}

func (v *ClientValidator) validateClient(ctx context.Context, clientID string) ValidationResult {
	result := ValidationResult{ClientID: clientID}

	cfg, err := v.configProvider.LoadClient(ctx, clientID)
	if err != nil {
		result.Error = fmt.Sprintf("failed to load client: %v", err)
		return result
	}
	result.StackType = string(cfg.StackType())

	descriptor, err := v.composer.FromConfig(cfg)
	if err != nil {
		result.Error = fmt.Sprintf("failed to compose stack: %v", err)
		return result
	}

	rendered, err := v.emitter.Provision(ctx, descriptor, cfg)
	if err != nil {
		result.Error = fmt.Sprintf("failed to render template: %v", err)
		return result
	}

	if v.clientFactory != nil {
		if err := v.validateTemplate(ctx, rendered); err != nil {
			result.Error = err.Error()
			return result
		}
	}

	result.Valid = true
	return result
}

// validateTemplate validates a rendered template using AWS CloudFormation API
func (v *ClientValidator) validateTemplate(ctx context.Context, rendered *deploy.ProvisionResult) error {
	cfnOps, err := v.clientFactory.GetCloudFormationOperations(ctx, rendered.Region)
	if err != nil {
		return fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	if err := cfnOps.ValidateTemplate(ctx, rendered.TemplateBody); err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}

	return nil
}

// printSummary prints validation results summary
func (v *ClientValidator) printSummary(results []ValidationResult) {
	fmt.Println("\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("Validation Summary")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	validCount := 0
	invalidCount := 0

	for _, result := range results {
		if result.Valid {
			validCount++
			fmt.Printf("✓ %s (%s)\n", result.ClientID, result.StackType)
		} else {
			invalidCount++
			fmt.Printf("✗ %s\n", result.ClientID)
			fmt.Printf("  Error: %s\n", result.Error)
		}
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Total:   %d\n", len(results))
	fmt.Printf("Valid:   %d\n", validCount)
	fmt.Printf("Invalid: %d\n", invalidCount)

	if invalidCount == 0 {
		fmt.Println("\n✓ All clients are valid")
	} else {
		fmt.Println("\n✗ Some clients failed validation")
	}
}

// ValidationResult contains the outcome of a single client validation
type ValidationResult struct {
	ClientID  string
	StackType string
	Valid     bool
	Error     string
}
