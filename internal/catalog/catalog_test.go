/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/model"
)

func TestEmbedded_IsValid(t *testing.T) {
	c := Embedded()

	assert.Equal(t, []model.Engine{Hugo, Eleventy, Astro, Jekyll, Gatsby, NextJS, Nuxt}, c.Engines())
	assert.Equal(t, []model.ProviderID{Decap, Tina, Sanity, Contentful}, c.ProviderIDs(model.CategoryCMS))
	assert.Equal(t, []model.ProviderID{Snipcart, Foxy, ShopifyBasic, ShopifyAdvanced}, c.ProviderIDs(model.CategoryEcommerce))

	for _, category := range []model.Category{model.CategoryCMS, model.CategoryEcommerce} {
		for _, p := range c.Providers(category) {
			assert.True(t, p.Supports(p.RecommendedEngine), "%s must support its recommended engine", p.ID)
			assert.NotEmpty(t, p.RequiredEnvVars, "%s must declare env vars", p.ID)
		}
	}
}

func TestEmbedded_SpecifiedEngineSets(t *testing.T) {
	c := Embedded()

	sanity, err := c.Provider(Sanity)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Engine{NextJS, Astro, Gatsby, Eleventy}, sanity.SupportedEngines)

	shopify, err := c.Provider(ShopifyBasic)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Engine{Eleventy, Astro, NextJS, Nuxt}, shopify.SupportedEngines)
}

func TestCatalog_ProviderReturnsCopy(t *testing.T) {
	c := Embedded()

	p, err := c.Provider(Decap)
	require.NoError(t, err)
	p.SupportedEngines[0] = "mutated"
	p.RequiredEnvVars = append(p.RequiredEnvVars, "EXTRA")

	again, err := c.Provider(Decap)
	require.NoError(t, err)
	assert.Equal(t, Hugo, again.SupportedEngines[0])
	assert.NotContains(t, again.RequiredEnvVars, "EXTRA")
}

func TestCatalog_UnknownProvider(t *testing.T) {
	c := Embedded()

	_, err := c.Provider("wordpress")
	var unknown *model.UnknownIdentifierError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, unknown.Valid, "decap")
	assert.Contains(t, unknown.Valid, "hugo")

	_, err = c.ProviderOf(model.CategoryCMS, model.ProviderID(Hugo))
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"decap", "tina", "sanity", "contentful"}, unknown.Valid)
}

func TestCatalog_StackTypes(t *testing.T) {
	c := Embedded()

	types := c.StackTypes()
	require.Len(t, types, 7+4+4)
	assert.Equal(t, model.StackTypeID("hugo_static_site"), types[0].ID)
	assert.Equal(t, model.StackCategoryFoundation, types[0].Category)
	assert.Equal(t, Hugo, types[0].FixedEngine)

	cms, err := c.StackType("decap_cms_tier")
	require.NoError(t, err)
	assert.Equal(t, model.StackCategoryCMS, cms.Category)
	assert.Equal(t, Decap, cms.CMSProvider)
	assert.Empty(t, cms.FixedEngine)

	ecommerce, err := c.StackType("shopify_basic_ecommerce_tier")
	require.NoError(t, err)
	assert.Equal(t, ShopifyBasic, ecommerce.EcommerceProvider)
}

func TestCatalog_ComposedStackType(t *testing.T) {
	c := Embedded()

	st, err := c.StackType("sanity_shopify_basic_composed")
	require.NoError(t, err)
	assert.Equal(t, model.StackCategoryComposed, st.Category)
	assert.Equal(t, Sanity, st.CMSProvider)
	assert.Equal(t, ShopifyBasic, st.EcommerceProvider)
	assert.Equal(t, ComposedStackTypeID(Sanity, ShopifyBasic), st.ID)

	_, err = c.StackType("sanity_magento_composed")
	var unknown *model.UnknownIdentifierError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "stack type", unknown.Kind)

	assert.Len(t, c.ComposedStackTypes(), 16)
	assert.Len(t, c.StackTypeIDs(), 15+16)
}

func TestCatalog_EnginePriority(t *testing.T) {
	c := Embedded()

	assert.Equal(t, 0, c.EnginePriority(Hugo))
	assert.Equal(t, 6, c.EnginePriority(Nuxt))
	assert.Equal(t, -1, c.EnginePriority("zola"))
	assert.Equal(t, []model.Engine{Eleventy, Astro, NextJS}, c.OrderByPriority([]model.Engine{NextJS, Astro, "zola", Eleventy}))
}

func TestNew_RejectsInvalidRows(t *testing.T) {
	ssg := ProviderDescriptor{ID: "fast", Category: model.CategorySSG}

	tests := []struct {
		name    string
		rows    []ProviderDescriptor
		message string
	}{
		{
			name:    "no engines",
			rows:    []ProviderDescriptor{{ID: "cms", Category: model.CategoryCMS, SupportedEngines: []model.Engine{"fast"}}},
			message: "no ssg engines",
		},
		{
			name:    "duplicate",
			rows:    []ProviderDescriptor{ssg, ssg},
			message: "duplicate provider 'fast'",
		},
		{
			name:    "unknown category",
			rows:    []ProviderDescriptor{ssg, {ID: "crm", Category: "crm"}},
			message: "unknown category 'crm'",
		},
		{
			name:    "unknown engine",
			rows:    []ProviderDescriptor{ssg, {ID: "cms", Category: model.CategoryCMS, SupportedEngines: []model.Engine{"zola"}}},
			message: "unknown engine 'zola'",
		},
		{
			name: "unsupported recommendation",
			rows: []ProviderDescriptor{ssg, {
				ID: "cms", Category: model.CategoryCMS,
				SupportedEngines: []model.Engine{"fast"}, RecommendedEngine: "slow",
			}},
			message: "recommends unsupported engine",
		},
		{
			name:    "inverted cost",
			rows:    []ProviderDescriptor{ssg, {ID: "cms", Category: model.CategoryCMS, SupportedEngines: []model.Engine{"fast"}, MonthlyCost: CostRange{Min: 5, Max: 1}}},
			message: "inverted cost range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNew_DefaultsRecommendedEngineByPriority(t *testing.T) {
	c := NewTestCatalog()

	cms, err := c.Provider("textcms")
	require.NoError(t, err)
	assert.Equal(t, model.Engine("fast"), cms.RecommendedEngine)
}

func TestStore_SwapIsAtomic(t *testing.T) {
	store := NewStore(nil)
	assert.Same(t, Embedded(), store.Load())

	replacement := NewTestCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c := store.Load()
				assert.NotEmpty(t, c.Engines())
			}
		}()
	}
	previous := store.Swap(replacement)
	wg.Wait()

	assert.Same(t, Embedded(), previous)
	assert.Same(t, replacement, store.Load())
	assert.Same(t, replacement, store.Swap(nil))
}
