/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package deploy

import (
	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/naming"
)

// Variables builds the template variables for a composed stack
func Variables(cat *catalog.Catalog, descriptor *model.StackDescriptor, cfg *config.ClientServiceConfig) (map[string]any, error) {
	envNames, err := naming.EnvironmentVariableNames(cat, cfg, descriptor.Engine)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"ClientID":                 cfg.ClientID,
		"Domain":                   cfg.Domain,
		"Environment":              string(cfg.Environment),
		"Region":                   cfg.Region,
		"StackType":                string(descriptor.StackType),
		"ConstructID":              descriptor.ConstructID,
		"Engine":                   string(descriptor.Engine),
		"CMSProvider":              string(descriptor.CMSProvider),
		"EcommerceProvider":        string(descriptor.EcommerceProvider),
		"ResourcePrefix":           naming.ResourcePrefix(cfg),
		"Tags":                     naming.Tags(cfg, descriptor.Engine),
		"CachingEnabled":           cfg.Integration.CachingEnabled,
		"WebhooksEnabled":          cfg.Integration.WebhooksEnabled,
		"WebhookEndpoints":         naming.WebhookEndpoints(cfg),
		"EnvironmentVariableNames": envNames,
		"EventDriven":              cfg.IsEventDriven(),
		"EventSettings":            cfg.Integration.EventSettings,
	}, nil
}
