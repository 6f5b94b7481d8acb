/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

func TestCatalogCommand_AllProviders(t *testing.T) {
	out, err := executeCommand(t, "catalog")
	require.NoError(t, err)

	for _, id := range []string{"decap", "sanity", "snipcart", "shopify_basic", "hugo", "nuxt"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "engines: hugo, eleventy, astro, jekyll, gatsby (recommended hugo)")
	assert.NotContains(t, out, "Registry:")
}

func TestCatalogCommand_CategoryFilter(t *testing.T) {
	out, err := executeCommand(t, "catalog", "ecommerce", "-o", "json")
	require.NoError(t, err)

	var providers []catalog.ProviderDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &providers))
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.Equal(t, model.CategoryEcommerce, p.Category)
	}
}

func TestCatalogCommand_StackTypes(t *testing.T) {
	out, err := executeCommand(t, "catalog", "stacks", "-o", "yaml")
	require.NoError(t, err)

	var stackTypes []catalog.StackType
	require.NoError(t, yaml.Unmarshal([]byte(out), &stackTypes))
	assert.Equal(t, catalog.Embedded().StackTypes(), stackTypes)
}

func TestCatalogCommand_StackTypesText(t *testing.T) {
	out, err := executeCommand(t, "catalog", "stacks")
	require.NoError(t, err)

	assert.Regexp(t, `hugo_static_site\s+foundation\s+hugo`, out)
	assert.Regexp(t, `sanity_cms_tier\s+cms_tier\s+flexible`, out)
}

func TestCatalogCommand_UnknownCategory(t *testing.T) {
	_, err := executeCommand(t, "catalog", "hosting")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category 'hosting'")
}

func TestCatalogCommand_ReportsRegistryFallback(t *testing.T) {
	t.Setenv("SITESTACK_REGISTRY_FILE", "/nonexistent/providers.yaml")

	out, err := executeCommand(t, "catalog", "cms")
	require.NoError(t, err)

	assert.Contains(t, out, "unavailable, using embedded catalog")
	assert.Contains(t, out, "decap")
}
