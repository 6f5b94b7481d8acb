/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

// Intent is the raw client declaration as it appears in YAML or JSON, before
// validation and defaulting
type Intent struct {
	ClientID           string            `yaml:"client_id" json:"client_id"`
	CompanyName        string            `yaml:"company_name" json:"company_name"`
	Domain             string            `yaml:"domain" json:"domain"`
	ContactEmail       string            `yaml:"contact_email" json:"contact_email"`
	ServiceTier        string            `yaml:"service_tier" json:"service_tier"`
	ManagementModel    string            `yaml:"management_model,omitempty" json:"management_model,omitempty"`
	DeliveryModel      string            `yaml:"delivery_model,omitempty" json:"delivery_model,omitempty"`
	Environment        string            `yaml:"environment,omitempty" json:"environment,omitempty"`
	Region             string            `yaml:"region,omitempty" json:"region,omitempty"`
	HostingPattern     string            `yaml:"hosting_pattern,omitempty" json:"hosting_pattern,omitempty"`
	ThemeID            string            `yaml:"theme_id,omitempty" json:"theme_id,omitempty"`
	ServiceIntegration IntegrationIntent `yaml:"service_integration" json:"service_integration"`
	CustomSettings     map[string]string `yaml:"custom_settings,omitempty" json:"custom_settings,omitempty"`
}

// IntegrationIntent is the raw service integration block
type IntegrationIntent struct {
	ServiceType     string          `yaml:"service_type" json:"service_type"`
	IntegrationMode string          `yaml:"integration_mode,omitempty" json:"integration_mode,omitempty"`
	SSGEngine       string          `yaml:"ssg_engine,omitempty" json:"ssg_engine,omitempty"`
	CMSConfig       *ProviderIntent `yaml:"cms_config,omitempty" json:"cms_config,omitempty"`
	EcommerceConfig *ProviderIntent `yaml:"ecommerce_config,omitempty" json:"ecommerce_config,omitempty"`
	WebhooksEnabled *bool           `yaml:"webhooks_enabled,omitempty" json:"webhooks_enabled,omitempty"`
	CachingEnabled  *bool           `yaml:"caching_enabled,omitempty" json:"caching_enabled,omitempty"`
	EventConfig     map[string]any  `yaml:"event_config,omitempty" json:"event_config,omitempty"`
}

// ProviderIntent names a provider and its free-form settings
type ProviderIntent struct {
	Provider string         `yaml:"provider" json:"provider"`
	Settings map[string]any `yaml:"settings,omitempty" json:"settings,omitempty"`
}
