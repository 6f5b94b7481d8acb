/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitestack/sitestack/internal/model"
)

func TestHostingPattern_RequiresGitHubPages(t *testing.T) {
	assert.False(t, HostingAWS.RequiresGitHubPages())
	assert.True(t, HostingGitHub.RequiresGitHubPages())
	assert.True(t, HostingHybrid.RequiresGitHubPages())
}

func TestEventSettings_IsZero(t *testing.T) {
	assert.True(t, EventSettings{}.IsZero())
	assert.False(t, DefaultEventSettings().IsZero())
	assert.False(t, EventSettings{ContentAudit: true}.IsZero())
}

func TestClientServiceConfig_StackType(t *testing.T) {
	tests := []struct {
		name        string
		integration ServiceIntegrationConfig
		want        model.StackTypeID
	}{
		{
			name:        "static site uses engine",
			integration: ServiceIntegrationConfig{ServiceType: StaticSite, SSGEngine: "hugo"},
			want:        "hugo_static_site",
		},
		{
			name:        "cms tier uses cms provider",
			integration: ServiceIntegrationConfig{ServiceType: CMSTier, CMS: &CMSConfig{Provider: "decap"}},
			want:        "decap_cms_tier",
		},
		{
			name:        "ecommerce tier uses ecommerce provider",
			integration: ServiceIntegrationConfig{ServiceType: EcommerceTier, Ecommerce: &EcommerceConfig{Provider: "snipcart"}},
			want:        "snipcart_ecommerce_tier",
		},
		{
			name: "composed uses both providers",
			integration: ServiceIntegrationConfig{
				ServiceType: ComposedStack,
				CMS:         &CMSConfig{Provider: "sanity"},
				Ecommerce:   &EcommerceConfig{Provider: "shopify_basic"},
			},
			want: "sanity_shopify_basic_composed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientServiceConfig{Integration: tt.integration}
			assert.Equal(t, tt.want, cfg.StackType())
		})
	}
}

func TestClientServiceConfig_Providers(t *testing.T) {
	cfg := &ClientServiceConfig{}
	assert.Empty(t, cfg.CMSProvider())
	assert.Empty(t, cfg.EcommerceProvider())

	cfg.Integration.CMS = &CMSConfig{Provider: "tina"}
	cfg.Integration.Ecommerce = &EcommerceConfig{Provider: "foxy"}
	assert.Equal(t, model.ProviderID("tina"), cfg.CMSProvider())
	assert.Equal(t, model.ProviderID("foxy"), cfg.EcommerceProvider())
}

func TestClientServiceConfig_CustomSetting(t *testing.T) {
	cfg := &ClientServiceConfig{CustomSettings: map[string]string{"tag:Team": "web"}}

	value, ok := cfg.CustomSetting("tag:Team")
	assert.True(t, ok)
	assert.Equal(t, "web", value)

	_, ok = cfg.CustomSetting("missing")
	assert.False(t, ok)
}
