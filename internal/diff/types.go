/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"context"

	"github.com/sitestack/sitestack/internal/deploy"
)

// Differ compares a rendered stack with the one deployed for the client
type Differ interface {
	Diff(ctx context.Context, proposed *deploy.ProvisionResult) (*Result, error)
}

// Options limits what is compared. With every flag false, everything is.
type Options struct {
	TemplateOnly   bool
	ParametersOnly bool
	TagsOnly       bool
}

func (o Options) template() bool   { return !o.ParametersOnly && !o.TagsOnly }
func (o Options) parameters() bool { return !o.TemplateOnly && !o.TagsOnly }
func (o Options) tags() bool       { return !o.TemplateOnly && !o.ParametersOnly }

// Result contains the differences between the deployed and proposed stack
type Result struct {
	StackName      string          `json:"stack_name" yaml:"stack_name"`
	Region         string          `json:"region" yaml:"region"`
	StackExists    bool            `json:"stack_exists" yaml:"stack_exists"`
	TemplateChange *TemplateChange `json:"template_change,omitempty" yaml:"template_change,omitempty"`
	ParameterDiffs []ValueDiff     `json:"parameter_diffs,omitempty" yaml:"parameter_diffs,omitempty"`
	TagDiffs       []ValueDiff     `json:"tag_diffs,omitempty" yaml:"tag_diffs,omitempty"`
}

// HasChanges reports whether deploying would change anything
func (r *Result) HasChanges() bool {
	if !r.StackExists {
		return true
	}
	if r.TemplateChange != nil && r.TemplateChange.HasChanges {
		return true
	}
	return len(r.ParameterDiffs) > 0 || len(r.TagDiffs) > 0
}

// TemplateChange summarises differences between two templates
type TemplateChange struct {
	HasChanges   bool           `json:"has_changes" yaml:"has_changes"`
	CurrentHash  string         `json:"current_hash,omitempty" yaml:"current_hash,omitempty"`
	ProposedHash string         `json:"proposed_hash" yaml:"proposed_hash"`
	Sections     []SectionDiff  `json:"sections,omitempty" yaml:"sections,omitempty"`
	Resources    []ResourceDiff `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Count returns how many resources have the given change type
func (t *TemplateChange) Count(changeType ChangeType) int {
	n := 0
	for _, r := range t.Resources {
		if r.ChangeType == changeType {
			n++
		}
	}
	return n
}

// SectionDiff is a changed top-level template section such as Resources or Outputs
type SectionDiff struct {
	Name       string     `json:"name" yaml:"name"`
	ChangeType ChangeType `json:"change_type" yaml:"change_type"`
}

// ResourceDiff is a changed resource in the Resources section
type ResourceDiff struct {
	LogicalID  string     `json:"logical_id" yaml:"logical_id"`
	Type       string     `json:"type" yaml:"type"`
	ChangeType ChangeType `json:"change_type" yaml:"change_type"`
}

// ValueDiff is a changed stack parameter or tag
type ValueDiff struct {
	Key           string     `json:"key" yaml:"key"`
	CurrentValue  string     `json:"current_value,omitempty" yaml:"current_value,omitempty"`
	ProposedValue string     `json:"proposed_value,omitempty" yaml:"proposed_value,omitempty"`
	ChangeType    ChangeType `json:"change_type" yaml:"change_type"`
}

// ChangeType indicates the type of change detected
type ChangeType string

const (
	ChangeTypeAdd    ChangeType = "ADD"
	ChangeTypeModify ChangeType = "MODIFY"
	ChangeTypeRemove ChangeType = "REMOVE"
)
