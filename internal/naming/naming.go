/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package naming derives deployment names, resource prefixes, cost allocation
// tags, environment variables and webhook endpoints from a validated client
// configuration. Every function is pure.
package naming

import (
	"slices"
	"strings"

	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
)

// Tag keys that are always present
const (
	TagClient          = "Client"
	TagCompany         = "Company"
	TagEnvironment     = "Environment"
	TagStackType       = "StackType"
	TagServiceTier     = "ServiceTier"
	TagDeliveryModel   = "DeliveryModel"
	TagIntegrationMode = "IntegrationMode"
	TagBillingGroup    = "BillingGroup"
	TagCostCenter      = "CostCenter"
	TagContact         = "Contact"
	TagSSGEngine       = "SSGEngine"
)

// Tag keys present only when the configuration has a value for them
const (
	TagCMSProvider       = "CMSProvider"
	TagEcommerceProvider = "EcommerceProvider"
	TagManagementModel   = "ManagementModel"
)

// conditionalTags are reserved even when absent from a configuration
var conditionalTags = []string{TagCMSProvider, TagEcommerceProvider, TagManagementModel}

// DeploymentName joins the client, environment and stack type as PascalCase
// groups separated by hyphens, e.g. AcmeCo-Prod-DecapCmsTier.
func DeploymentName(cfg *config.ClientServiceConfig) string {
	return strings.Join([]string{
		compose.PascalCase(cfg.ClientID),
		compose.PascalCase(string(cfg.Environment)),
		compose.PascalCase(string(cfg.StackType())),
	}, "-")
}

// ResourcePrefix is the lowercase {client_id}-{environment} prefix used for
// physical resource names
func ResourcePrefix(cfg *config.ClientServiceConfig) string {
	return strings.ToLower(cfg.ClientID + "-" + string(cfg.Environment))
}

// Engine returns the resolved engine when known, otherwise the configured one
func Engine(cfg *config.ClientServiceConfig, resolved model.Engine) model.Engine {
	if resolved != "" {
		return resolved
	}
	return cfg.Integration.SSGEngine
}

// Tags builds the cost allocation tag map. resolved is the engine the stack
// factory settled on and may be empty. Custom settings prefixed with "tag:"
// are added with the prefix stripped but never set a key this function owns.
func Tags(cfg *config.ClientServiceConfig, resolved model.Engine) map[string]string {
	tags := map[string]string{
		TagClient:          cfg.ClientID,
		TagCompany:         cfg.CompanyName,
		TagEnvironment:     string(cfg.Environment),
		TagStackType:       string(cfg.StackType()),
		TagServiceTier:     string(cfg.ServiceTier),
		TagDeliveryModel:   string(cfg.DeliveryModel),
		TagIntegrationMode: string(cfg.Integration.IntegrationMode),
		TagBillingGroup:    billingGroup(cfg),
		TagCostCenter:      cfg.ClientID,
		TagContact:         cfg.ContactEmail,
		TagSSGEngine:       string(Engine(cfg, resolved)),
	}
	if p := cfg.CMSProvider(); p != "" {
		tags[TagCMSProvider] = string(p)
	}
	if p := cfg.EcommerceProvider(); p != "" {
		tags[TagEcommerceProvider] = string(p)
	}
	if cfg.ManagementModel != "" {
		tags[TagManagementModel] = string(cfg.ManagementModel)
	}

	for key, value := range cfg.CustomSettings {
		name, ok := strings.CutPrefix(key, config.TagSettingPrefix)
		if !ok || name == "" {
			continue
		}
		if _, fixed := tags[name]; fixed || slices.Contains(conditionalTags, name) {
			continue
		}
		tags[name] = value
	}
	return tags
}

// billingGroup groups invoices by tier and delivery model, e.g. tier2-dedicated
func billingGroup(cfg *config.ClientServiceConfig) string {
	return string(cfg.ServiceTier) + "-" + string(cfg.DeliveryModel)
}
