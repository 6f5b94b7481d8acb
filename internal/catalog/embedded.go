/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package catalog

import (
	"fmt"
	"sync"

	"github.com/sitestack/sitestack/internal/model"
)

// Engine identifiers in priority order: build speed first, framework weight last
const (
	Hugo     model.Engine = "hugo"
	Eleventy model.Engine = "eleventy"
	Astro    model.Engine = "astro"
	Jekyll   model.Engine = "jekyll"
	Gatsby   model.Engine = "gatsby"
	NextJS   model.Engine = "nextjs"
	Nuxt     model.Engine = "nuxt"
)

// CMS providers
const (
	Decap      model.ProviderID = "decap"
	Tina       model.ProviderID = "tina"
	Sanity     model.ProviderID = "sanity"
	Contentful model.ProviderID = "contentful"
)

// E-commerce providers
const (
	Snipcart        model.ProviderID = "snipcart"
	Foxy            model.ProviderID = "foxy"
	ShopifyBasic    model.ProviderID = "shopify_basic"
	ShopifyAdvanced model.ProviderID = "shopify_advanced"
)

var embeddedRows = []ProviderDescriptor{
	{
		ID: model.ProviderID(Hugo), Name: "Hugo", Category: model.CategorySSG,
		Complexity: model.ComplexityMedium, Ecosystems: []string{"go"}, BuildMinutes: 1,
		Features:       []string{"sub-second builds", "multilingual", "shortcodes", "image processing"},
		UseCases:       []string{"documentation", "blog", "marketing", "large content sites"},
		TargetAudience: "performance-focused teams with large content volumes",
	},
	{
		ID: model.ProviderID(Eleventy), Name: "Eleventy", Category: model.CategorySSG,
		Complexity: model.ComplexityLow, Ecosystems: []string{"javascript"}, BuildMinutes: 2,
		Features:       []string{"zero client javascript", "flexible templating", "data cascade"},
		UseCases:       []string{"marketing", "blog", "portfolio", "small business"},
		TargetAudience: "small businesses wanting a simple, fast site",
	},
	{
		ID: model.ProviderID(Astro), Name: "Astro", Category: model.CategorySSG,
		Complexity: model.ComplexityLowMedium, Ecosystems: []string{"javascript", "islands"}, BuildMinutes: 3,
		Features:       []string{"partial hydration", "component islands", "content collections"},
		UseCases:       []string{"marketing", "portfolio", "blog", "product catalog"},
		TargetAudience: "teams wanting modern components with static performance",
	},
	{
		ID: model.ProviderID(Jekyll), Name: "Jekyll", Category: model.CategorySSG,
		Complexity: model.ComplexityLow, Ecosystems: []string{"ruby"}, BuildMinutes: 2,
		Features:       []string{"github pages native", "liquid templates", "theme gems"},
		UseCases:       []string{"blog", "documentation", "personal site"},
		TargetAudience: "individuals and teams already on GitHub Pages",
	},
	{
		ID: model.ProviderID(Gatsby), Name: "Gatsby", Category: model.CategorySSG,
		Complexity: model.ComplexityMediumHigh, Ecosystems: []string{"javascript", "react"}, BuildMinutes: 6,
		Features:       []string{"graphql data layer", "react components", "plugin ecosystem"},
		UseCases:       []string{"content hub", "marketing", "product catalog"},
		TargetAudience: "react teams aggregating several content sources",
	},
	{
		ID: model.ProviderID(NextJS), Name: "Next.js", Category: model.CategorySSG,
		Complexity: model.ComplexityMedium, Ecosystems: []string{"javascript", "react"}, BuildMinutes: 5,
		Features:       []string{"static export", "react components", "incremental builds"},
		UseCases:       []string{"web application", "storefront", "marketing", "content hub"},
		TargetAudience: "react teams building app-like sites",
	},
	{
		ID: model.ProviderID(Nuxt), Name: "Nuxt", Category: model.CategorySSG,
		Complexity: model.ComplexityMedium, Ecosystems: []string{"javascript", "vue"}, BuildMinutes: 5,
		Features:       []string{"static generation", "vue components", "auto imports"},
		UseCases:       []string{"web application", "storefront", "marketing"},
		TargetAudience: "vue teams building app-like sites",
	},

	{
		ID: Decap, Name: "Decap CMS", Category: model.CategoryCMS, GitBased: true,
		SupportedEngines:  []model.Engine{Hugo, Eleventy, Astro, Jekyll, Gatsby},
		RecommendedEngine: Hugo,
		MonthlyCost:       CostRange{Min: 0, Max: 0},
		SetupCost:         CostRange{Min: 500, Max: 1200},
		Complexity:        model.ComplexityLow,
		RequiredEnvVars:   []string{"DECAP_GITHUB_REPO", "DECAP_GITHUB_BRANCH"},
		RequiredServices:  []string{"github"},
		Features:          []string{"git-based editing", "editorial workflow", "markdown content"},
		UseCases:          []string{"blog", "marketing", "small business", "documentation"},
		TargetAudience:    "budget-conscious clients comfortable with git-backed content",
	},
	{
		ID: Tina, Name: "TinaCMS", Category: model.CategoryCMS, GitBased: true,
		SupportedEngines:  []model.Engine{Astro, NextJS, Hugo, Eleventy, Gatsby},
		RecommendedEngine: Astro,
		MonthlyCost:       CostRange{Min: 0, Max: 29},
		SetupCost:         CostRange{Min: 800, Max: 1600},
		Complexity:        model.ComplexityLowMedium,
		RequiredEnvVars:   []string{"TINA_CLIENT_ID", "TINA_TOKEN", "TINA_BRANCH"},
		RequiredServices:  []string{"github", "tina_cloud"},
		Features:          []string{"visual editing", "git-based editing", "markdown content"},
		UseCases:          []string{"marketing", "blog", "portfolio"},
		TargetAudience:    "editors wanting visual editing on a git-backed site",
	},
	{
		ID: Sanity, Name: "Sanity", Category: model.CategoryCMS,
		SupportedEngines:  []model.Engine{NextJS, Astro, Gatsby, Eleventy},
		RecommendedEngine: NextJS,
		MonthlyCost:       CostRange{Min: 0, Max: 99},
		SetupCost:         CostRange{Min: 1200, Max: 2400},
		Complexity:        model.ComplexityMedium,
		RequiredEnvVars:   []string{"SANITY_PROJECT_ID", "SANITY_DATASET", "SANITY_API_TOKEN", "SANITY_WEBHOOK_SECRET"},
		RequiredServices:  []string{"sanity_content_lake"},
		Features:          []string{"structured content", "real-time collaboration", "custom studio"},
		UseCases:          []string{"content hub", "marketing", "product catalog"},
		TargetAudience:    "content teams with structured, reusable content",
	},
	{
		ID: Contentful, Name: "Contentful", Category: model.CategoryCMS,
		SupportedEngines:  []model.Engine{NextJS, Gatsby, Astro, Nuxt, Eleventy},
		RecommendedEngine: NextJS,
		MonthlyCost:       CostRange{Min: 0, Max: 300},
		SetupCost:         CostRange{Min: 2000, Max: 4000},
		Complexity:        model.ComplexityMediumHigh,
		RequiredEnvVars:   []string{"CONTENTFUL_SPACE_ID", "CONTENTFUL_ENVIRONMENT", "CONTENTFUL_ACCESS_TOKEN", "CONTENTFUL_WEBHOOK_SECRET"},
		RequiredServices:  []string{"contentful_delivery_api"},
		Features:          []string{"structured content", "localization", "enterprise workflows"},
		UseCases:          []string{"content hub", "multi-site", "enterprise marketing"},
		TargetAudience:    "larger organisations with dedicated content teams",
	},

	{
		ID: Snipcart, Name: "Snipcart", Category: model.CategoryEcommerce,
		SupportedEngines:      []model.Engine{Hugo, Eleventy, Astro, Jekyll, Gatsby, NextJS},
		RecommendedEngine:     Hugo,
		MonthlyCost:           CostRange{Min: 20, Max: 69},
		SetupCost:             CostRange{Min: 600, Max: 1400},
		Complexity:            model.ComplexityLow,
		TransactionFeePercent: 2.0,
		RequiredEnvVars:       []string{"SNIPCART_API_KEY", "SNIPCART_SECRET_KEY"},
		RequiredServices:      []string{"snipcart"},
		Features:              []string{"drop-in cart", "html-defined products", "digital goods"},
		UseCases:              []string{"small store", "digital products", "small business"},
		TargetAudience:        "small catalogues added to an existing static site",
	},
	{
		ID: Foxy, Name: "Foxy.io", Category: model.CategoryEcommerce,
		SupportedEngines:      []model.Engine{Hugo, Eleventy, Astro, Jekyll, NextJS},
		RecommendedEngine:     Eleventy,
		MonthlyCost:           CostRange{Min: 21, Max: 300},
		SetupCost:             CostRange{Min: 800, Max: 1800},
		Complexity:            model.ComplexityLowMedium,
		TransactionFeePercent: 1.5,
		RequiredEnvVars:       []string{"FOXY_STORE_DOMAIN", "FOXY_WEBHOOK_KEY"},
		RequiredServices:      []string{"foxy"},
		Features:              []string{"subscriptions", "custom checkout", "multi-currency"},
		UseCases:              []string{"subscriptions", "small store", "donations"},
		TargetAudience:        "merchants needing flexible checkout and subscriptions",
	},
	{
		ID: ShopifyBasic, Name: "Shopify Basic", Category: model.CategoryEcommerce,
		SupportedEngines:      []model.Engine{Eleventy, Astro, NextJS, Nuxt},
		RecommendedEngine:     Astro,
		MonthlyCost:           CostRange{Min: 29, Max: 79},
		SetupCost:             CostRange{Min: 1500, Max: 3000},
		Complexity:            model.ComplexityMedium,
		TransactionFeePercent: 2.9,
		RequiredEnvVars:       []string{"SHOPIFY_STORE_DOMAIN", "SHOPIFY_STOREFRONT_TOKEN", "SHOPIFY_WEBHOOK_SECRET"},
		RequiredServices:      []string{"shopify_storefront_api"},
		Features:              []string{"hosted checkout", "inventory management", "buy button"},
		UseCases:              []string{"storefront", "product catalog", "small store"},
		TargetAudience:        "growing stores wanting Shopify's back office",
	},
	{
		ID: ShopifyAdvanced, Name: "Shopify Advanced", Category: model.CategoryEcommerce,
		SupportedEngines:      []model.Engine{NextJS, Gatsby, Nuxt, Astro},
		RecommendedEngine:     NextJS,
		MonthlyCost:           CostRange{Min: 299, Max: 2300},
		SetupCost:             CostRange{Min: 4000, Max: 9000},
		Complexity:            model.ComplexityHigh,
		TransactionFeePercent: 2.4,
		RequiredEnvVars:       []string{"SHOPIFY_STORE_DOMAIN", "SHOPIFY_STOREFRONT_TOKEN", "SHOPIFY_ADMIN_TOKEN", "SHOPIFY_WEBHOOK_SECRET"},
		RequiredServices:      []string{"shopify_storefront_api", "shopify_admin_api"},
		Features:              []string{"headless storefront", "inventory management", "advanced reporting", "multi-currency"},
		UseCases:              []string{"storefront", "high volume store", "product catalog"},
		TargetAudience:        "established merchants with high order volume",
	},
}

// EmbeddedRows returns a copy of the compiled-in provider table
func EmbeddedRows() []ProviderDescriptor {
	rows := make([]ProviderDescriptor, len(embeddedRows))
	for i, row := range embeddedRows {
		rows[i] = row.clone()
	}
	return rows
}

var embedded = sync.OnceValue(func() *Catalog {
	c, err := New(embeddedRows)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
})

// Embedded returns the catalog built from the compiled-in provider table
func Embedded() *Catalog {
	return embedded()
}
