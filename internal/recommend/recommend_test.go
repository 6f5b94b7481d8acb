/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

func stackTypes(entries []model.RecommendationEntry) []model.StackTypeID {
	ids := make([]model.StackTypeID, len(entries))
	for i, e := range entries {
		ids[i] = e.StackType
	}
	return ids
}

func TestRecommend_BudgetConsciousCMSPrefersFreeProvider(t *testing.T) {
	entries := Recommend(catalog.Embedded(), Requirements{
		ContentManagement: true,
		BudgetConscious:   true,
	})

	require.Len(t, entries, 4)
	assert.Equal(t, []model.StackTypeID{"decap_cms_tier", "tina_cms_tier", "sanity_cms_tier", "contentful_cms_tier"}, stackTypes(entries))
	assert.Equal(t, catalog.Hugo, entries[0].RecommendedEngine)
	assert.Contains(t, entries[0].Rationale, "no monthly subscription")
	assert.Greater(t, entries[0].Score, entries[1].Score)
}

func TestRecommend_IsDeterministic(t *testing.T) {
	req := Requirements{
		ContentManagement: true,
		Ecommerce:         true,
		ReactPreferred:    "yes",
		MonthlyBudget:     100,
		UseCases:          []any{"storefront", "blog"},
		Features:          "inventory management, visual editing",
	}

	first := Recommend(catalog.Embedded(), req)
	second := Recommend(catalog.Embedded(), req)

	assert.Equal(t, first, second)
}

func TestRecommend_OrdersByScoreThenCatalogOrder(t *testing.T) {
	entries := Recommend(catalog.Embedded(), Requirements{ComplexityLevel: "low"})

	ids := stackTypes(entries)
	require.Len(t, ids, 7)
	assert.Equal(t, []model.StackTypeID{"eleventy_static_site", "jekyll_static_site", "astro_static_site"}, ids[:3])
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
}

func TestRecommend_FrameworkPreferenceOutranksKeywords(t *testing.T) {
	entries := Recommend(catalog.Embedded(), Requirements{
		ReactPreferred: true,
		UseCases:       "documentation, blog",
		Features:       "multilingual, shortcodes",
	})

	require.NotEmpty(t, entries)
	assert.Equal(t, []model.StackTypeID{"gatsby_static_site", "nextjs_static_site"}, stackTypes(entries)[:2])
}

func TestRecommend_PerformanceCriticalBoostsHugo(t *testing.T) {
	entries := Recommend(catalog.Embedded(), Requirements{PerformanceCritical: true})

	require.NotEmpty(t, entries)
	assert.Equal(t, model.StackTypeID("hugo_static_site"), entries[0].StackType)
	assert.Contains(t, entries[0].Rationale, "Hugo builds fastest")
}

func TestRecommend_PerformanceCriticalSelectsHugoForProviders(t *testing.T) {
	entries := Recommend(catalog.Embedded(), Requirements{ContentManagement: true, PerformanceCritical: true})

	for _, e := range entries {
		if e.StackType == "tina_cms_tier" {
			assert.Equal(t, catalog.Hugo, e.RecommendedEngine)
			return
		}
	}
	t.Fatal("tina_cms_tier missing from recommendations")
}

func TestRecommend_Gates(t *testing.T) {
	cat := catalog.Embedded()

	tests := []struct {
		name     string
		req      Requirements
		count    int
		category model.StackCategory
	}{
		{name: "no flags gives static sites", req: Requirements{}, count: 7},
		{name: "content management gives cms tiers", req: Requirements{ContentManagement: true}, count: 4},
		{name: "ecommerce gives ecommerce tiers", req: Requirements{Ecommerce: "true"}, count: 4},
		{name: "both flags add composed stacks", req: Requirements{ContentManagement: 1, Ecommerce: true}, count: 24},
		{name: "false strings do not open gates", req: Requirements{ContentManagement: "no"}, count: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Recommend(cat, tt.req), tt.count)
		})
	}
}

func TestRecommend_GatedOutCategoriesAreAbsent(t *testing.T) {
	for _, e := range Recommend(catalog.Embedded(), Requirements{ContentManagement: true}) {
		st, err := catalog.Embedded().StackType(e.StackType)
		require.NoError(t, err)
		assert.Equal(t, model.StackCategoryCMS, st.Category)
	}
}

func TestRecommend_ComposedEnginesLieInIntersection(t *testing.T) {
	cat := catalog.Embedded()

	for _, e := range Recommend(cat, Requirements{ContentManagement: true, Ecommerce: true, VuePreferred: true}) {
		st, err := cat.StackType(e.StackType)
		require.NoError(t, err)
		if st.Category != model.StackCategoryComposed {
			continue
		}
		cms, _ := cat.Provider(st.CMSProvider)
		ecommerce, _ := cat.Provider(st.EcommerceProvider)
		assert.True(t, cms.Supports(e.RecommendedEngine), "%s on %s", e.StackType, e.RecommendedEngine)
		assert.True(t, ecommerce.Supports(e.RecommendedEngine), "%s on %s", e.StackType, e.RecommendedEngine)
	}
}

func TestRecommend_SkipsComposedPairsWithoutCommonEngine(t *testing.T) {
	cat, err := catalog.New([]catalog.ProviderDescriptor{
		{ID: "a", Name: "A", Category: model.CategorySSG},
		{ID: "b", Name: "B", Category: model.CategorySSG},
		{ID: "cms", Name: "CMS", Category: model.CategoryCMS, SupportedEngines: []model.Engine{"a"}},
		{ID: "shop", Name: "Shop", Category: model.CategoryEcommerce, SupportedEngines: []model.Engine{"b"}},
	})
	require.NoError(t, err)

	entries := Recommend(cat, Requirements{ContentManagement: true, Ecommerce: true})

	assert.Equal(t, []model.StackTypeID{"cms_cms_tier", "shop_ecommerce_tier"}, stackTypes(entries))
}

func TestRecommend_CarriesMetadata(t *testing.T) {
	entries := Recommend(catalog.Embedded(), Requirements{Ecommerce: true})

	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Features, e.StackType)
		assert.NotEmpty(t, e.UseCases, e.StackType)
		assert.NotEmpty(t, e.TargetAudience, e.StackType)
		assert.NotEmpty(t, e.Rationale, e.StackType)
	}
}
