/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"slices"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

// Intersection returns the engines supported by every given provider, in
// catalog priority order
func Intersection(cat *catalog.Catalog, providers ...catalog.ProviderDescriptor) []model.Engine {
	if len(providers) == 0 {
		return nil
	}

	var common []model.Engine
	for _, engine := range cat.Engines() {
		supported := true
		for _, p := range providers {
			if !p.Supports(engine) {
				supported = false
				break
			}
		}
		if supported {
			common = append(common, engine)
		}
	}
	return common
}

// Engine resolves the engine for a CMS and e-commerce pair. A requested engine
// must lie in the intersection of both supported sets; without one, the first
// engine of the intersection in priority order is chosen.
func Engine(cat *catalog.Catalog, cmsID, ecommerceID model.ProviderID, requested model.Engine) (model.Engine, error) {
	cms, err := cat.ProviderOf(model.CategoryCMS, cmsID)
	if err != nil {
		return "", err
	}
	ecommerce, err := cat.ProviderOf(model.CategoryEcommerce, ecommerceID)
	if err != nil {
		return "", err
	}

	common := Intersection(cat, cms, ecommerce)
	providers := []model.ProviderID{cmsID, ecommerceID}

	if len(common) == 0 {
		return "", &model.CompatibilityError{
			Engine:    requested,
			Providers: providers,
		}
	}

	if requested == "" {
		return common[0], nil
	}

	if !slices.Contains(common, requested) {
		return "", &model.CompatibilityError{
			Engine:       requested,
			Providers:    providers,
			Alternatives: common,
		}
	}
	return requested, nil
}

// SupportedEngine checks a single provider's support for an engine. An empty
// engine resolves to the provider's recommended default.
func SupportedEngine(cat *catalog.Catalog, provider catalog.ProviderDescriptor, requested model.Engine) (model.Engine, error) {
	engine := requested
	if engine == "" {
		engine = provider.RecommendedEngine
	}
	if !provider.Supports(engine) {
		return "", &model.CompatibilityError{
			Engine:       engine,
			Providers:    []model.ProviderID{provider.ID},
			Alternatives: cat.OrderByPriority(provider.SupportedEngines),
		}
	}
	return engine, nil
}
