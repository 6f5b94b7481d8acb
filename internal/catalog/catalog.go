/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package catalog holds the read-only provider and stack-type tables that every
// composition, recommendation and costing call consults.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sitestack/sitestack/internal/model"
)

// CostRange is an inclusive monthly or one-off cost range in whole US dollars
type CostRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// ProviderDescriptor describes one CMS, e-commerce or SSG provider
type ProviderDescriptor struct {
	ID                    model.ProviderID `yaml:"id" json:"id"`
	Name                  string           `yaml:"name" json:"name"`
	Category              model.Category   `yaml:"category" json:"category"`
	SupportedEngines      []model.Engine   `yaml:"supported_engines,omitempty" json:"supported_engines,omitempty"`
	RecommendedEngine     model.Engine     `yaml:"recommended_engine,omitempty" json:"recommended_engine,omitempty"`
	MonthlyCost           CostRange        `yaml:"monthly_cost" json:"monthly_cost"`
	SetupCost             CostRange        `yaml:"setup_cost" json:"setup_cost"`
	Complexity            model.Complexity `yaml:"complexity" json:"complexity"`
	RequiredEnvVars       []string         `yaml:"required_env_vars,omitempty" json:"required_env_vars,omitempty"`
	RequiredServices      []string         `yaml:"required_services,omitempty" json:"required_services,omitempty"`
	TransactionFeePercent float64          `yaml:"transaction_fee_percent,omitempty" json:"transaction_fee_percent,omitempty"`
	Ecosystems            []string         `yaml:"ecosystems,omitempty" json:"ecosystems,omitempty"`
	BuildMinutes          int              `yaml:"build_minutes,omitempty" json:"build_minutes,omitempty"`
	GitBased              bool             `yaml:"git_based,omitempty" json:"git_based,omitempty"`
	Features              []string         `yaml:"features,omitempty" json:"features,omitempty"`
	UseCases              []string         `yaml:"use_cases,omitempty" json:"use_cases,omitempty"`
	TargetAudience        string           `yaml:"target_audience,omitempty" json:"target_audience,omitempty"`
}

// Supports reports whether the provider lists the engine as supported
func (p ProviderDescriptor) Supports(engine model.Engine) bool {
	return slices.Contains(p.SupportedEngines, engine)
}

// clone returns a copy that shares no slices with the receiver
func (p ProviderDescriptor) clone() ProviderDescriptor {
	p.SupportedEngines = slices.Clone(p.SupportedEngines)
	p.RequiredEnvVars = slices.Clone(p.RequiredEnvVars)
	p.RequiredServices = slices.Clone(p.RequiredServices)
	p.Ecosystems = slices.Clone(p.Ecosystems)
	p.Features = slices.Clone(p.Features)
	p.UseCases = slices.Clone(p.UseCases)
	return p
}

// StackType is a catalog entry selecting the template and engine policy for a deployment
type StackType struct {
	ID                model.StackTypeID   `yaml:"id" json:"id"`
	Category          model.StackCategory `yaml:"category" json:"category"`
	FixedEngine       model.Engine        `yaml:"fixed_engine,omitempty" json:"fixed_engine,omitempty"`
	CMSProvider       model.ProviderID    `yaml:"cms_provider,omitempty" json:"cms_provider,omitempty"`
	EcommerceProvider model.ProviderID    `yaml:"ecommerce_provider,omitempty" json:"ecommerce_provider,omitempty"`
	TemplateVariant   string              `yaml:"template_variant" json:"template_variant"`
	Description       string              `yaml:"description,omitempty" json:"description,omitempty"`
	Features          []string            `yaml:"features,omitempty" json:"features,omitempty"`
	UseCases          []string            `yaml:"use_cases,omitempty" json:"use_cases,omitempty"`
	TargetAudience    string              `yaml:"target_audience,omitempty" json:"target_audience,omitempty"`
}

func (s StackType) clone() StackType {
	s.Features = slices.Clone(s.Features)
	s.UseCases = slices.Clone(s.UseCases)
	return s
}

const composedSuffix = "_composed"

// Catalog is an immutable snapshot of providers and stack types.
// All accessors return copies.
type Catalog struct {
	providers  map[model.ProviderID]ProviderDescriptor
	order      map[model.Category][]model.ProviderID
	stackTypes map[model.StackTypeID]StackType
	stackOrder []model.StackTypeID
}

// New builds a catalog from provider rows. Engine priority follows the order of
// the ssg rows; stack types are derived from the rows in declaration order.
func New(rows []ProviderDescriptor) (*Catalog, error) {
	c := &Catalog{
		providers:  make(map[model.ProviderID]ProviderDescriptor, len(rows)),
		order:      make(map[model.Category][]model.ProviderID),
		stackTypes: make(map[model.StackTypeID]StackType),
	}

	for _, row := range rows {
		if row.ID == "" {
			return nil, fmt.Errorf("provider row has no id")
		}
		if _, exists := c.providers[row.ID]; exists {
			return nil, fmt.Errorf("duplicate provider '%s'", row.ID)
		}
		switch row.Category {
		case model.CategoryCMS, model.CategoryEcommerce, model.CategorySSG:
		default:
			return nil, fmt.Errorf("provider '%s' has unknown category '%s'", row.ID, row.Category)
		}
		if row.MonthlyCost.Min > row.MonthlyCost.Max || row.SetupCost.Min > row.SetupCost.Max {
			return nil, fmt.Errorf("provider '%s' has an inverted cost range", row.ID)
		}
		c.providers[row.ID] = row.clone()
		c.order[row.Category] = append(c.order[row.Category], row.ID)
	}

	if len(c.order[model.CategorySSG]) == 0 {
		return nil, fmt.Errorf("catalog defines no ssg engines")
	}

	for _, category := range []model.Category{model.CategoryCMS, model.CategoryEcommerce} {
		for _, id := range c.order[category] {
			if err := c.normaliseEngines(id); err != nil {
				return nil, err
			}
		}
	}

	c.buildStackTypes()
	return c, nil
}

// normaliseEngines checks a provider's engines against the ssg rows and fills a
// missing recommended engine with the highest-priority supported one
func (c *Catalog) normaliseEngines(id model.ProviderID) error {
	p := c.providers[id]
	if len(p.SupportedEngines) == 0 {
		return fmt.Errorf("provider '%s' supports no engines", id)
	}
	for _, engine := range p.SupportedEngines {
		if ssg, ok := c.providers[model.ProviderID(engine)]; !ok || ssg.Category != model.CategorySSG {
			return fmt.Errorf("provider '%s' lists unknown engine '%s'", id, engine)
		}
	}
	if p.RecommendedEngine == "" {
		p.RecommendedEngine = c.orderByPriority(p.SupportedEngines)[0]
	} else if !p.Supports(p.RecommendedEngine) {
		return fmt.Errorf("provider '%s' recommends unsupported engine '%s'", id, p.RecommendedEngine)
	}
	c.providers[id] = p
	return nil
}

func (c *Catalog) buildStackTypes() {
	for _, id := range c.order[model.CategorySSG] {
		engine := c.providers[id]
		c.addStackType(StackType{
			ID:              model.StackTypeID(string(id) + "_static_site"),
			Category:        model.StackCategoryFoundation,
			FixedEngine:     model.Engine(id),
			TemplateVariant: "business",
			Description:     fmt.Sprintf("%s static site on S3 and CloudFront", engine.Name),
			Features:        engine.Features,
			UseCases:        engine.UseCases,
			TargetAudience:  engine.TargetAudience,
		})
	}
	for _, id := range c.order[model.CategoryCMS] {
		p := c.providers[id]
		c.addStackType(StackType{
			ID:              model.StackTypeID(string(id) + "_cms_tier"),
			Category:        model.StackCategoryCMS,
			CMSProvider:     id,
			TemplateVariant: "content",
			Description:     fmt.Sprintf("%s-managed content site", p.Name),
			Features:        p.Features,
			UseCases:        p.UseCases,
			TargetAudience:  p.TargetAudience,
		})
	}
	for _, id := range c.order[model.CategoryEcommerce] {
		p := c.providers[id]
		c.addStackType(StackType{
			ID:                model.StackTypeID(string(id) + "_ecommerce_tier"),
			Category:          model.StackCategoryEcommerce,
			EcommerceProvider: id,
			TemplateVariant:   "storefront",
			Description:       fmt.Sprintf("%s storefront", p.Name),
			Features:          p.Features,
			UseCases:          p.UseCases,
			TargetAudience:    p.TargetAudience,
		})
	}
}

func (c *Catalog) addStackType(st StackType) {
	c.stackTypes[st.ID] = st.clone()
	c.stackOrder = append(c.stackOrder, st.ID)
}

// Provider returns the descriptor for any provider id, engines included
func (c *Catalog) Provider(id model.ProviderID) (ProviderDescriptor, error) {
	p, ok := c.providers[id]
	if !ok {
		return ProviderDescriptor{}, model.NewUnknownIdentifierError("provider", string(id), c.allProviderIDs())
	}
	return p.clone(), nil
}

// ProviderOf returns the descriptor for id only when it belongs to the category
func (c *Catalog) ProviderOf(category model.Category, id model.ProviderID) (ProviderDescriptor, error) {
	p, ok := c.providers[id]
	if !ok || p.Category != category {
		return ProviderDescriptor{}, model.NewUnknownIdentifierError(string(category)+" provider", string(id), idStrings(c.order[category]))
	}
	return p.clone(), nil
}

// Providers returns the descriptors of a category in declaration order
func (c *Catalog) Providers(category model.Category) []ProviderDescriptor {
	ids := c.order[category]
	result := make([]ProviderDescriptor, 0, len(ids))
	for _, id := range ids {
		result = append(result, c.providers[id].clone())
	}
	return result
}

// ProviderIDs returns the ids of a category in declaration order
func (c *Catalog) ProviderIDs(category model.Category) []model.ProviderID {
	return slices.Clone(c.order[category])
}

// Engines returns every engine in priority order
func (c *Catalog) Engines() []model.Engine {
	ids := c.order[model.CategorySSG]
	engines := make([]model.Engine, len(ids))
	for i, id := range ids {
		engines[i] = model.Engine(id)
	}
	return engines
}

// Engine returns the ssg descriptor for an engine
func (c *Catalog) Engine(engine model.Engine) (ProviderDescriptor, error) {
	p, ok := c.providers[model.ProviderID(engine)]
	if !ok || p.Category != model.CategorySSG {
		return ProviderDescriptor{}, model.NewUnknownIdentifierError("engine", string(engine), idStrings(c.order[model.CategorySSG]))
	}
	return p.clone(), nil
}

// EnginePriority returns the position of an engine in the priority order, or -1
func (c *Catalog) EnginePriority(engine model.Engine) int {
	return slices.Index(c.order[model.CategorySSG], model.ProviderID(engine))
}

// orderByPriority returns the engines sorted by priority, dropping unknown ones
func (c *Catalog) orderByPriority(engines []model.Engine) []model.Engine {
	ordered := make([]model.Engine, 0, len(engines))
	for _, candidate := range c.Engines() {
		if slices.Contains(engines, candidate) {
			ordered = append(ordered, candidate)
		}
	}
	return ordered
}

// OrderByPriority returns the given engines in catalog priority order
func (c *Catalog) OrderByPriority(engines []model.Engine) []model.Engine {
	return c.orderByPriority(engines)
}

// StackType returns a declared stack type, or a composed one derived from its id
func (c *Catalog) StackType(id model.StackTypeID) (StackType, error) {
	if st, ok := c.stackTypes[id]; ok {
		return st.clone(), nil
	}
	if st, ok := c.parseComposed(id); ok {
		return st, nil
	}
	return StackType{}, model.NewUnknownIdentifierError("stack type", string(id), idStrings(c.StackTypeIDs()))
}

// StackTypes returns the declared (non-composed) stack types in declaration order
func (c *Catalog) StackTypes() []StackType {
	result := make([]StackType, 0, len(c.stackOrder))
	for _, id := range c.stackOrder {
		result = append(result, c.stackTypes[id].clone())
	}
	return result
}

// ComposedStackTypes returns one composed stack type per CMS and e-commerce pair
func (c *Catalog) ComposedStackTypes() []StackType {
	var result []StackType
	for _, cms := range c.order[model.CategoryCMS] {
		for _, ecommerce := range c.order[model.CategoryEcommerce] {
			result = append(result, c.composed(cms, ecommerce))
		}
	}
	return result
}

// StackTypeIDs lists every valid stack type id, declared ones first
func (c *Catalog) StackTypeIDs() []model.StackTypeID {
	ids := slices.Clone(c.stackOrder)
	for _, st := range c.ComposedStackTypes() {
		ids = append(ids, st.ID)
	}
	return ids
}

// ComposedStackTypeID returns the id of the composed stack for a provider pair
func ComposedStackTypeID(cms, ecommerce model.ProviderID) model.StackTypeID {
	return model.StackTypeID(string(cms) + "_" + string(ecommerce) + composedSuffix)
}

func (c *Catalog) composed(cms, ecommerce model.ProviderID) StackType {
	cmsProvider := c.providers[cms]
	ecommerceProvider := c.providers[ecommerce]

	features := slices.Concat(cmsProvider.Features, ecommerceProvider.Features)
	useCases := slices.Concat(cmsProvider.UseCases, ecommerceProvider.UseCases)

	return StackType{
		ID:                ComposedStackTypeID(cms, ecommerce),
		Category:          model.StackCategoryComposed,
		CMSProvider:       cms,
		EcommerceProvider: ecommerce,
		TemplateVariant:   "content-commerce",
		Description:       fmt.Sprintf("%s content with %s commerce", cmsProvider.Name, ecommerceProvider.Name),
		Features:          unique(features),
		UseCases:          unique(useCases),
		TargetAudience:    "businesses selling alongside editorial content",
	}
}

func (c *Catalog) parseComposed(id model.StackTypeID) (StackType, bool) {
	rest, ok := strings.CutSuffix(string(id), composedSuffix)
	if !ok {
		return StackType{}, false
	}
	for _, cms := range c.order[model.CategoryCMS] {
		ecommerce, found := strings.CutPrefix(rest, string(cms)+"_")
		if !found {
			continue
		}
		if p, exists := c.providers[model.ProviderID(ecommerce)]; exists && p.Category == model.CategoryEcommerce {
			return c.composed(cms, model.ProviderID(ecommerce)), true
		}
	}
	return StackType{}, false
}

func (c *Catalog) allProviderIDs() []string {
	var ids []string
	for _, category := range []model.Category{model.CategoryCMS, model.CategoryEcommerce, model.CategorySSG} {
		ids = append(ids, idStrings(c.order[category])...)
	}
	return ids
}

// unique drops repeated entries, keeping first occurrences
func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

func idStrings[T ~string](ids []T) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = string(id)
	}
	return result
}
