/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

// StackDescriptor is the fully resolved deployable unit produced by the stack factory
type StackDescriptor struct {
	StackType         StackTypeID   `yaml:"stack_type" json:"stack_type"`
	Category          StackCategory `yaml:"category" json:"category"`
	Engine            Engine        `yaml:"engine" json:"engine"`
	CMSProvider       ProviderID    `yaml:"cms_provider,omitempty" json:"cms_provider,omitempty"`
	EcommerceProvider ProviderID    `yaml:"ecommerce_provider,omitempty" json:"ecommerce_provider,omitempty"`
	ConstructID       string        `yaml:"construct_id" json:"construct_id"`
	TemplateVariant   string        `yaml:"template_variant" json:"template_variant"`
	RequiredServices  []string      `yaml:"required_services" json:"required_services"`
}

// Providers returns the non-empty provider identifiers in CMS, e-commerce order
func (d *StackDescriptor) Providers() []ProviderID {
	var providers []ProviderID
	if d.CMSProvider != "" {
		providers = append(providers, d.CMSProvider)
	}
	if d.EcommerceProvider != "" {
		providers = append(providers, d.EcommerceProvider)
	}
	return providers
}

// IsComposed reports whether the descriptor spans both a CMS and an e-commerce provider
func (d *StackDescriptor) IsComposed() bool {
	return d.Category == StackCategoryComposed
}

// RecommendationEntry is one ranked suggestion from the recommendation engine
type RecommendationEntry struct {
	StackType         StackTypeID `yaml:"stack_type" json:"stack_type"`
	RecommendedEngine Engine      `yaml:"recommended_engine" json:"recommended_engine"`
	Rationale         string      `yaml:"rationale" json:"rationale"`
	Score             int         `yaml:"score" json:"score"`
	Features          []string    `yaml:"features,omitempty" json:"features,omitempty"`
	TargetAudience    string      `yaml:"target_audience,omitempty" json:"target_audience,omitempty"`
	UseCases          []string    `yaml:"use_cases,omitempty" json:"use_cases,omitempty"`
}
