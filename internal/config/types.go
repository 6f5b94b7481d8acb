/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"maps"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

// ConfigProvider defines the interface for loading client service configurations
type ConfigProvider interface {
	// LoadClient loads and validates the configuration of one client
	LoadClient(ctx context.Context, clientID string) (*ClientServiceConfig, error)

	// ListClients returns every client id in declaration order
	ListClients() ([]string, error)

	// GetIntent returns the raw, unvalidated intent for a client
	GetIntent(clientID string) (*Intent, error)

	// Validate checks every client in the source and aggregates the failures
	Validate() error
}

// ServiceTier is the commercial tier a client is on
type ServiceTier string

const (
	Tier1 ServiceTier = "tier1"
	Tier2 ServiceTier = "tier2"
	Tier3 ServiceTier = "tier3"
)

// ManagementModel is only meaningful, and mandatory, for tier1
type ManagementModel string

const (
	SelfManaged  ManagementModel = "self_managed"
	Consultation ManagementModel = "consultation"
	FullyManaged ManagementModel = "fully_managed"
)

// DeliveryModel describes where the client's infrastructure lives
type DeliveryModel string

const (
	Dedicated DeliveryModel = "dedicated"
	Shared    DeliveryModel = "shared"
)

// ServiceType selects which provider configurations a client needs
type ServiceType string

const (
	StaticSite    ServiceType = "static_site"
	CMSTier       ServiceType = "cms_tier"
	EcommerceTier ServiceType = "ecommerce_tier"
	ComposedStack ServiceType = "composed_stack"
)

// IntegrationMode chooses between webhook-triggered builds and an event bus
type IntegrationMode string

const (
	Direct      IntegrationMode = "direct"
	EventDriven IntegrationMode = "event_driven"
)

// Environment is the deployment stage
type Environment string

const (
	Dev     Environment = "dev"
	Staging Environment = "staging"
	Prod    Environment = "prod"
)

// HostingPattern selects where the built site is served from
type HostingPattern string

const (
	HostingAWS    HostingPattern = "aws"
	HostingGitHub HostingPattern = "github"
	HostingHybrid HostingPattern = "hybrid"
)

// RequiresGitHubPages reports whether the pattern publishes to GitHub Pages
func (h HostingPattern) RequiresGitHubPages() bool {
	return h == HostingGitHub || h == HostingHybrid
}

// Defaults applied when an intent leaves a field empty
const (
	DefaultEnvironment    = Prod
	DefaultRegion         = "us-east-1"
	DefaultDeliveryModel  = Dedicated
	DefaultHostingPattern = HostingAWS
)

// EventSettings configures the event bus used by event-driven integrations
type EventSettings struct {
	TopicPrefix     string `yaml:"topic_prefix"`
	TablePrefix     string `yaml:"table_prefix"`
	DeadLetterQueue bool   `yaml:"dead_letter_queue"`
	ContentAudit    bool   `yaml:"content_audit"`
}

// IsZero reports whether no event setting was provided
func (e EventSettings) IsZero() bool {
	return e == EventSettings{}
}

// DefaultEventSettings is filled in for event-driven integrations without settings
func DefaultEventSettings() EventSettings {
	return EventSettings{
		TopicPrefix:     "sitestack-content",
		TablePrefix:     "sitestack-unified-content",
		DeadLetterQueue: true,
		ContentAudit:    true,
	}
}

// CMSConfig is a validated CMS provider selection
type CMSConfig struct {
	Provider model.ProviderID
	Settings CMSSettings
}

// EcommerceConfig is a validated e-commerce provider selection
type EcommerceConfig struct {
	Provider model.ProviderID
	Settings EcommerceSettings
}

// ServiceIntegrationConfig describes how a client's site integrates its providers
type ServiceIntegrationConfig struct {
	ServiceType     ServiceType
	IntegrationMode IntegrationMode
	SSGEngine       model.Engine
	CMS             *CMSConfig
	Ecommerce       *EcommerceConfig
	WebhooksEnabled bool
	CachingEnabled  bool
	EventSettings   EventSettings
}

// ClientServiceConfig is a validated client configuration. It is built only by
// Validate and must be treated as read-only.
type ClientServiceConfig struct {
	ClientID        string
	CompanyName     string
	Domain          string
	ContactEmail    string
	ServiceTier     ServiceTier
	ManagementModel ManagementModel
	DeliveryModel   DeliveryModel
	Integration     ServiceIntegrationConfig
	Environment     Environment
	Region          string
	HostingPattern  HostingPattern
	ThemeID         string
	CustomSettings  map[string]string
}

// CMSProvider returns the chosen CMS provider id, or empty
func (c *ClientServiceConfig) CMSProvider() model.ProviderID {
	if c.Integration.CMS == nil {
		return ""
	}
	return c.Integration.CMS.Provider
}

// EcommerceProvider returns the chosen e-commerce provider id, or empty
func (c *ClientServiceConfig) EcommerceProvider() model.ProviderID {
	if c.Integration.Ecommerce == nil {
		return ""
	}
	return c.Integration.Ecommerce.Provider
}

// StackType derives the catalog stack type from the service type and providers
func (c *ClientServiceConfig) StackType() model.StackTypeID {
	switch c.Integration.ServiceType {
	case CMSTier:
		return model.StackTypeID(string(c.CMSProvider()) + "_cms_tier")
	case EcommerceTier:
		return model.StackTypeID(string(c.EcommerceProvider()) + "_ecommerce_tier")
	case ComposedStack:
		return catalog.ComposedStackTypeID(c.CMSProvider(), c.EcommerceProvider())
	default:
		return model.StackTypeID(string(c.Integration.SSGEngine) + "_static_site")
	}
}

// IsEventDriven reports whether provider events flow through the event bus
func (c *ClientServiceConfig) IsEventDriven() bool {
	return c.Integration.IntegrationMode == EventDriven
}

// CustomSetting returns a custom setting and whether it was present
func (c *ClientServiceConfig) CustomSetting(key string) (string, bool) {
	v, ok := c.CustomSettings[key]
	return v, ok
}

// copyStrings returns a copy of source, or nil
func copyStrings(source map[string]string) map[string]string {
	if source == nil {
		return nil
	}
	return maps.Clone(source)
}
