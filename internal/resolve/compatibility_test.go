/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

func TestEngine_AutoSelectsFromIntersection(t *testing.T) {
	cat := catalog.Embedded()

	engine, err := Engine(cat, catalog.Sanity, catalog.ShopifyBasic, "")

	require.NoError(t, err)
	assert.Contains(t, []model.Engine{catalog.NextJS, catalog.Astro, catalog.Eleventy}, engine)
	assert.Equal(t, catalog.Eleventy, engine, "eleventy has the highest priority in the intersection")
}

func TestEngine_RequestedInIntersection(t *testing.T) {
	cat := catalog.Embedded()

	engine, err := Engine(cat, catalog.Sanity, catalog.ShopifyBasic, catalog.NextJS)

	require.NoError(t, err)
	assert.Equal(t, catalog.NextJS, engine)
}

func TestEngine_RequestedOutsideIntersection(t *testing.T) {
	cat := catalog.Embedded()

	_, err := Engine(cat, catalog.Sanity, catalog.ShopifyBasic, catalog.Nuxt)

	var compat *model.CompatibilityError
	require.ErrorAs(t, err, &compat)
	assert.Equal(t, catalog.Nuxt, compat.Engine)
	assert.Equal(t, []model.Engine{catalog.Eleventy, catalog.Astro, catalog.NextJS}, compat.Alternatives)
	assert.Contains(t, err.Error(), "nuxt")
}

func TestEngine_SharedAndDisjointEngineSets(t *testing.T) {
	cat := catalog.NewTestCatalog()

	for _, requested := range []model.Engine{"", "fast", "heavy"} {
		t.Run(string(requested), func(t *testing.T) {
			// textcms supports fast and heavy, island only heavy
			engine, err := Engine(cat, "textcms", "island", requested)
			if requested == "fast" {
				var compat *model.CompatibilityError
				require.ErrorAs(t, err, &compat)
				assert.Equal(t, []model.Engine{"heavy"}, compat.Alternatives)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.Engine("heavy"), engine)
		})
	}

	disjoint, err := catalog.New([]catalog.ProviderDescriptor{
		{ID: "a", Category: model.CategorySSG},
		{ID: "b", Category: model.CategorySSG},
		{ID: "cms", Category: model.CategoryCMS, SupportedEngines: []model.Engine{"a"}},
		{ID: "shop", Category: model.CategoryEcommerce, SupportedEngines: []model.Engine{"b"}},
	})
	require.NoError(t, err)

	for _, requested := range []model.Engine{"", "a", "b"} {
		_, err := Engine(disjoint, "cms", "shop", requested)
		var compat *model.CompatibilityError
		require.ErrorAs(t, err, &compat)
		assert.Empty(t, compat.Alternatives)
	}
}

func TestEngine_UnknownProviders(t *testing.T) {
	cat := catalog.Embedded()

	_, err := Engine(cat, "wordpress", catalog.Snipcart, "")
	var unknown *model.UnknownIdentifierError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "cms provider", unknown.Kind)

	_, err = Engine(cat, catalog.Decap, catalog.Decap, "")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ecommerce provider", unknown.Kind)
}

func TestEngine_ClosureOverAllPairs(t *testing.T) {
	cat := catalog.Embedded()

	for _, cms := range cat.Providers(model.CategoryCMS) {
		for _, ecommerce := range cat.Providers(model.CategoryEcommerce) {
			for _, requested := range append([]model.Engine{""}, cat.Engines()...) {
				engine, err := Engine(cat, cms.ID, ecommerce.ID, requested)
				if err != nil {
					var compat *model.CompatibilityError
					require.ErrorAs(t, err, &compat)
					continue
				}
				assert.True(t, cms.Supports(engine), "%s must support %s", cms.ID, engine)
				assert.True(t, ecommerce.Supports(engine), "%s must support %s", ecommerce.ID, engine)
			}
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	cat := catalog.Embedded()

	first, err := Engine(cat, catalog.Contentful, catalog.ShopifyAdvanced, "")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Engine(cat, catalog.Contentful, catalog.ShopifyAdvanced, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestIntersection(t *testing.T) {
	cat := catalog.Embedded()
	sanity, _ := cat.Provider(catalog.Sanity)
	shopify, _ := cat.Provider(catalog.ShopifyBasic)

	common := Intersection(cat, sanity, shopify)
	assert.Equal(t, []model.Engine{catalog.Eleventy, catalog.Astro, catalog.NextJS}, common)
	assert.False(t, slices.Contains(common, catalog.Gatsby))
	assert.Nil(t, Intersection(cat))
}

func TestSupportedEngine(t *testing.T) {
	cat := catalog.Embedded()
	decap, _ := cat.Provider(catalog.Decap)

	engine, err := SupportedEngine(cat, decap, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Hugo, engine)

	engine, err = SupportedEngine(cat, decap, catalog.Astro)
	require.NoError(t, err)
	assert.Equal(t, catalog.Astro, engine)

	_, err = SupportedEngine(cat, decap, catalog.NextJS)
	var compat *model.CompatibilityError
	require.ErrorAs(t, err, &compat)
	assert.Equal(t, []model.Engine{catalog.Hugo, catalog.Eleventy, catalog.Astro, catalog.Jekyll, catalog.Gatsby}, compat.Alternatives)
}
