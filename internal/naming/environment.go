/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package naming

import (
	"slices"
	"strconv"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
)

// EnvironmentVariables derives the non-secret build and runtime variables for
// a client. Empty values are omitted.
func EnvironmentVariables(cfg *config.ClientServiceConfig, resolved model.Engine) map[string]string {
	vars := map[string]string{
		"CLIENT_ID":        cfg.ClientID,
		"SITE_DOMAIN":      cfg.Domain,
		"ENVIRONMENT":      string(cfg.Environment),
		"AWS_REGION":       cfg.Region,
		"RESOURCE_PREFIX":  ResourcePrefix(cfg),
		"STACK_TYPE":       string(cfg.StackType()),
		"SSG_ENGINE":       string(Engine(cfg, resolved)),
		"INTEGRATION_MODE": string(cfg.Integration.IntegrationMode),
		"WEBHOOKS_ENABLED": strconv.FormatBool(cfg.Integration.WebhooksEnabled),
		"CACHING_ENABLED":  strconv.FormatBool(cfg.Integration.CachingEnabled),
	}

	if cms := cfg.Integration.CMS; cms != nil {
		vars["CMS_PROVIDER"] = string(cms.Provider)
		addCMSSettings(vars, cms.Settings)
	}
	if ecommerce := cfg.Integration.Ecommerce; ecommerce != nil {
		vars["ECOMMERCE_PROVIDER"] = string(ecommerce.Provider)
		addEcommerceSettings(vars, ecommerce.Settings)
	}

	if cfg.IsEventDriven() {
		events := cfg.Integration.EventSettings
		vars["EVENT_TOPIC_PREFIX"] = events.TopicPrefix
		vars["EVENT_TABLE_PREFIX"] = events.TablePrefix
		vars["EVENT_DEAD_LETTER_QUEUE"] = strconv.FormatBool(events.DeadLetterQueue)
		vars["EVENT_CONTENT_AUDIT"] = strconv.FormatBool(events.ContentAudit)
	}

	for key, value := range vars {
		if value == "" {
			delete(vars, key)
		}
	}
	return vars
}

func addCMSSettings(vars map[string]string, settings config.CMSSettings) {
	switch s := settings.(type) {
	case config.DecapSettings:
		vars["DECAP_GITHUB_REPO"] = s.Repository
		vars["DECAP_GITHUB_BRANCH"] = s.Branch
		vars["DECAP_AUTH_BACKEND"] = s.AuthBackend
	case config.TinaSettings:
		vars["TINA_CLIENT_ID"] = s.ClientID
		vars["TINA_BRANCH"] = s.Branch
	case config.SanitySettings:
		vars["SANITY_PROJECT_ID"] = s.ProjectID
		vars["SANITY_DATASET"] = s.Dataset
		vars["SANITY_API_VERSION"] = s.APIVersion
		vars["SANITY_USE_CDN"] = strconv.FormatBool(s.UseCDN)
	case config.ContentfulSettings:
		vars["CONTENTFUL_SPACE_ID"] = s.SpaceID
		vars["CONTENTFUL_ENVIRONMENT"] = s.Environment
		vars["CONTENTFUL_PREVIEW_ENABLED"] = strconv.FormatBool(s.PreviewEnabled)
	case nil:
	default:
		panic("naming: unhandled CMS settings type")
	}
}

func addEcommerceSettings(vars map[string]string, settings config.EcommerceSettings) {
	switch s := settings.(type) {
	case config.SnipcartSettings:
		vars["SNIPCART_MODE"] = s.Mode
		vars["SNIPCART_CURRENCY"] = s.Currency
	case config.FoxySettings:
		vars["FOXY_STORE_DOMAIN"] = s.StoreDomain
		vars["FOXY_CURRENCY"] = s.Currency
	case config.ShopifySettings:
		vars["SHOPIFY_PLAN"] = string(s.Plan)
		vars["SHOPIFY_STORE_DOMAIN"] = s.StoreDomain
		vars["SHOPIFY_STOREFRONT_API_VERSION"] = s.StorefrontAPIVersion
	case nil:
	default:
		panic("naming: unhandled e-commerce settings type")
	}
}

// SecretNames lists the provider environment variables that the catalog
// requires but the configuration cannot supply, in catalog order. They are
// expected to be injected from a secret store at deploy time.
func SecretNames(cat *catalog.Catalog, cfg *config.ClientServiceConfig) ([]string, error) {
	known := EnvironmentVariables(cfg, "")

	var secrets []string
	for _, id := range []model.ProviderID{cfg.CMSProvider(), cfg.EcommerceProvider()} {
		if id == "" {
			continue
		}
		p, err := cat.Provider(id)
		if err != nil {
			return nil, err
		}
		for _, name := range p.RequiredEnvVars {
			if _, ok := known[name]; ok || slices.Contains(secrets, name) {
				continue
			}
			secrets = append(secrets, name)
		}
	}
	return secrets, nil
}

// EnvironmentVariableNames returns the sorted names of the derived variables
// followed by the secret names
func EnvironmentVariableNames(cat *catalog.Catalog, cfg *config.ClientServiceConfig, resolved model.Engine) ([]string, error) {
	vars := EnvironmentVariables(cfg, resolved)
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	secrets, err := SecretNames(cat, cfg)
	if err != nil {
		return nil, err
	}
	return append(names, secrets...), nil
}
