/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import "github.com/sitestack/sitestack/internal/model"

// NewTestCatalog builds a small catalog with two engines, one CMS and two
// e-commerce providers, one of which supports only the heavy engine
func NewTestCatalog() *Catalog {
	c, err := New([]ProviderDescriptor{
		{ID: "fast", Name: "Fast", Category: model.CategorySSG, BuildMinutes: 1},
		{ID: "heavy", Name: "Heavy", Category: model.CategorySSG, BuildMinutes: 4, Ecosystems: []string{"react"}},
		{
			ID: "textcms", Name: "Text CMS", Category: model.CategoryCMS,
			SupportedEngines: []model.Engine{"heavy", "fast"},
			MonthlyCost:      CostRange{Min: 0, Max: 10},
		},
		{
			ID: "cart", Name: "Cart", Category: model.CategoryEcommerce,
			SupportedEngines:      []model.Engine{"heavy", "fast"},
			RecommendedEngine:     "heavy",
			MonthlyCost:           CostRange{Min: 10, Max: 20},
			TransactionFeePercent: 1,
		},
		{
			ID: "island", Name: "Island", Category: model.CategoryEcommerce,
			SupportedEngines: []model.Engine{"heavy"},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
