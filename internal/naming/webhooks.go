/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package naming

import (
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
)

// WebhookEndpoint is where a provider's webhook handler is mounted
type WebhookEndpoint struct {
	Name     string           `json:"name" yaml:"name"`
	Provider model.ProviderID `json:"provider" yaml:"provider"`
	Path     string           `json:"path" yaml:"path"`
}

// WebhookEndpoints returns one endpoint per configured provider, CMS first.
// Direct integrations mount under /webhooks and event-driven ones under
// /events. Nothing is returned when webhooks are disabled.
func WebhookEndpoints(cfg *config.ClientServiceConfig) []WebhookEndpoint {
	if !cfg.Integration.WebhooksEnabled {
		return nil
	}

	base := "/webhooks/"
	if cfg.IsEventDriven() {
		base = "/events/"
	}

	var endpoints []WebhookEndpoint
	for _, id := range []model.ProviderID{cfg.CMSProvider(), cfg.EcommerceProvider()} {
		if id == "" {
			continue
		}
		endpoints = append(endpoints, WebhookEndpoint{
			Name:     WebhookName(id),
			Provider: id,
			Path:     base + string(id),
		})
	}
	return endpoints
}

// WebhookName is the handler name for a provider
func WebhookName(provider model.ProviderID) string {
	return string(provider) + "-webhook"
}
