/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package recommend ranks catalog stacks against a client's requirements.
package recommend

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/resolve"
)

// Candidate is a stack type paired with the engine it would be recommended on,
// carrying the metadata the scorers read
type Candidate struct {
	StackType      catalog.StackType
	Engine         model.Engine
	EngineName     string
	Ecosystems     []string
	Complexity     model.Complexity
	MonthlyCost    catalog.CostRange
	Features       []string
	UseCases       []string
	TargetAudience string
}

// Recommend returns the catalog stacks whose gate the requirements pass,
// ranked by descending score. Equal scores keep catalog order.
func Recommend(cat *catalog.Catalog, req Requirements) []model.RecommendationEntry {
	candidates := Candidates(cat, req)

	entries := make([]model.RecommendationEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, Evaluate(c, req))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Evaluate sums every scorer for one candidate
func Evaluate(c *Candidate, req Requirements) model.RecommendationEntry {
	total := 0
	reasons := []string{fmt.Sprintf("%s on %s", c.StackType.Description, c.EngineName)}
	for _, scorer := range Scorers {
		s := scorer(c, req)
		total += s.Points
		if s.Reason != "" {
			reasons = append(reasons, s.Reason)
		}
	}

	return model.RecommendationEntry{
		StackType:         c.StackType.ID,
		RecommendedEngine: c.Engine,
		Rationale:         strings.Join(reasons, "; "),
		Score:             total,
		Features:          slices.Clone(c.Features),
		TargetAudience:    c.TargetAudience,
		UseCases:          slices.Clone(c.UseCases),
	}
}

// Gate reports whether a stack category is eligible for the requirements.
// CMS stacks need content_management, e-commerce stacks need ecommerce,
// composed stacks need both, and plain static sites need neither.
func Gate(category model.StackCategory, req Requirements) bool {
	cms := req.Flag(ContentManagement)
	ecommerce := req.Flag(Ecommerce)

	switch category {
	case model.StackCategoryFoundation:
		return !cms && !ecommerce
	case model.StackCategoryCMS:
		return cms
	case model.StackCategoryEcommerce:
		return ecommerce
	case model.StackCategoryComposed:
		return cms && ecommerce
	default:
		return false
	}
}

// Candidates builds one candidate per gated stack type in catalog order.
// Composed pairs without a common engine are skipped.
func Candidates(cat *catalog.Catalog, req Requirements) []*Candidate {
	var candidates []*Candidate
	for _, st := range slices.Concat(cat.StackTypes(), cat.ComposedStackTypes()) {
		if !Gate(st.Category, req) {
			continue
		}
		if c, ok := newCandidate(cat, st, req); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func newCandidate(cat *catalog.Catalog, st catalog.StackType, req Requirements) (*Candidate, bool) {
	c := &Candidate{
		StackType:      st,
		Features:       st.Features,
		UseCases:       st.UseCases,
		TargetAudience: st.TargetAudience,
	}

	var providers []catalog.ProviderDescriptor
	for _, id := range []model.ProviderID{st.CMSProvider, st.EcommerceProvider} {
		if id == "" {
			continue
		}
		p, err := cat.Provider(id)
		if err != nil {
			return nil, false
		}
		providers = append(providers, p)
		c.Complexity = max(c.Complexity, p.Complexity)
		c.MonthlyCost.Min += p.MonthlyCost.Min
		c.MonthlyCost.Max += p.MonthlyCost.Max
	}

	switch len(providers) {
	case 0:
		c.Engine = st.FixedEngine
	case 1:
		c.Engine = chooseEngine(cat, cat.OrderByPriority(providers[0].SupportedEngines), providers[0].RecommendedEngine, req)
	default:
		common := resolve.Intersection(cat, providers...)
		if len(common) == 0 {
			return nil, false
		}
		c.Engine = chooseEngine(cat, common, common[0], req)
	}

	engine, err := cat.Engine(c.Engine)
	if err != nil {
		return nil, false
	}
	c.EngineName = engine.Name
	c.Ecosystems = engine.Ecosystems
	if len(providers) == 0 {
		c.Complexity = engine.Complexity
	}
	return c, true
}

// chooseEngine picks the first supported engine from a preferred ecosystem,
// then the performance engine when asked for, then the fallback
func chooseEngine(cat *catalog.Catalog, supported []model.Engine, fallback model.Engine, req Requirements) model.Engine {
	for _, ecosystem := range preferredEcosystems(req) {
		for _, engine := range supported {
			if p, err := cat.Engine(engine); err == nil && slices.Contains(p.Ecosystems, ecosystem) {
				return engine
			}
		}
	}
	if req.Flag(PerformanceCritical) && slices.Contains(supported, performanceHint) {
		return performanceHint
	}
	return fallback
}
