/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"fmt"
	"strings"
)

// ValidationError reports a field-level or cross-field rule violation
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// UnknownIdentifierError reports an id missing from the catalog or a registry
type UnknownIdentifierError struct {
	Kind  string
	ID    string
	Valid []string
}

// Error implements the error interface
func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown %s '%s' (available: %s)", e.Kind, e.ID, strings.Join(e.Valid, ", "))
}

// NewUnknownIdentifierError creates a new UnknownIdentifierError
func NewUnknownIdentifierError(kind, id string, valid []string) *UnknownIdentifierError {
	return &UnknownIdentifierError{
		Kind:  kind,
		ID:    id,
		Valid: valid,
	}
}

// CompatibilityError reports an engine outside the supported or intersected set
type CompatibilityError struct {
	Engine       Engine
	Providers    []ProviderID
	Alternatives []Engine
}

// Error implements the error interface
func (e *CompatibilityError) Error() string {
	providers := make([]string, len(e.Providers))
	for i, p := range e.Providers {
		providers[i] = string(p)
	}
	subject := strings.Join(providers, " + ")

	if len(e.Alternatives) == 0 {
		if e.Engine == "" {
			return fmt.Sprintf("no engine is supported by %s", subject)
		}
		return fmt.Sprintf("engine '%s' is not supported: %s share no supported engine", e.Engine, subject)
	}
	return fmt.Sprintf("engine '%s' is not supported by %s (valid alternatives: %s)",
		e.Engine, subject, JoinEngines(e.Alternatives))
}

// RegistryFallbackWarning records that the external registry could not be used.
// It is logged, never returned to callers of the composition functions.
type RegistryFallbackWarning struct {
	Source string
	Cause  error
}

// Error implements the error interface
func (w *RegistryFallbackWarning) Error() string {
	return fmt.Sprintf("metadata registry %s unavailable, using embedded catalog: %v", w.Source, w.Cause)
}

// Unwrap returns the underlying fetch failure
func (w *RegistryFallbackWarning) Unwrap() error {
	return w.Cause
}

// JoinEngines renders engines as a comma separated list
func JoinEngines(engines []Engine) string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
