/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package compose turns stack type ids and validated client configurations
// into deployable stack descriptors.
package compose

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/resolve"
)

// Composer creates stack descriptors and resolves their templates
type Composer interface {
	Create(clientID string, stackType model.StackTypeID, engine model.Engine) (*model.StackDescriptor, error)
	CreateComposed(clientID string, cms, ecommerce model.ProviderID, engine model.Engine) (*model.StackDescriptor, error)
	FromConfig(cfg *config.ClientServiceConfig) (*model.StackDescriptor, error)
	Template(stackType model.StackTypeID) (*StackTemplate, error)
}

// Factory is the default Composer. It is safe for concurrent use.
type Factory struct {
	store     *catalog.Store
	reader    resolve.TemplateReader
	logger    *slog.Logger
	templates func() map[model.StackCategory]templateLoader
}

// Option customises a Factory
type Option func(*Factory)

// WithTemplateReader replaces the embedded template set
func WithTemplateReader(reader resolve.TemplateReader) Option {
	return func(f *Factory) {
		f.reader = reader
	}
}

// WithTemplateDir reads templates from a directory instead of the embedded set
func WithTemplateDir(dir string) Option {
	return WithTemplateReader(&resolve.FileSystemResolver{Dir: dir})
}

// WithLogger sets the factory logger
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// NewFactory creates a factory reading the catalog from store on every call,
// so a registry refresh is picked up by the next request
func NewFactory(store *catalog.Store, opts ...Option) *Factory {
	if store == nil {
		store = catalog.NewStore(nil)
	}
	f := &Factory{
		store:  store,
		reader: &resolve.FSResolver{FS: EmbeddedTemplates()},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.templates = sync.OnceValue(f.buildTemplateTable)
	return f
}

// Create resolves a stack type for a client. Foundation stacks ignore engine;
// CMS and e-commerce tiers default to their provider's recommended engine.
// Composed ids are delegated to CreateComposed.
func (f *Factory) Create(clientID string, stackType model.StackTypeID, engine model.Engine) (*model.StackDescriptor, error) {
	cat := f.store.Load()

	st, err := cat.StackType(stackType)
	if err != nil {
		return nil, err
	}

	var provider model.ProviderID
	switch st.Category {
	case model.StackCategoryComposed:
		return f.CreateComposed(clientID, st.CMSProvider, st.EcommerceProvider, engine)
	case model.StackCategoryFoundation:
		if engine != "" && engine != st.FixedEngine {
			f.logger.Debug("ignoring engine for fixed-engine stack",
				"stack_type", string(st.ID), "requested", string(engine), "engine", string(st.FixedEngine))
		}
		engine = st.FixedEngine
	case model.StackCategoryCMS:
		provider = st.CMSProvider
	case model.StackCategoryEcommerce:
		provider = st.EcommerceProvider
	}

	if provider != "" {
		descriptor, err := cat.Provider(provider)
		if err != nil {
			return nil, err
		}
		if engine, err = resolve.SupportedEngine(cat, descriptor, engine); err != nil {
			return nil, err
		}
	}

	return f.describe(cat, clientID, st, engine, ConstructID(clientID, string(st.ID))), nil
}

// CreateComposed resolves a CMS and e-commerce pair to the engine both support
func (f *Factory) CreateComposed(clientID string, cms, ecommerce model.ProviderID, engine model.Engine) (*model.StackDescriptor, error) {
	cat := f.store.Load()

	resolved, err := resolve.Engine(cat, cms, ecommerce, engine)
	if err != nil {
		return nil, err
	}

	st, err := cat.StackType(catalog.ComposedStackTypeID(cms, ecommerce))
	if err != nil {
		return nil, err
	}

	constructID := ConstructID(clientID, string(cms), string(ecommerce), "composed")
	return f.describe(cat, clientID, st, resolved, constructID), nil
}

// FromConfig composes the stack a validated client configuration asks for
func (f *Factory) FromConfig(cfg *config.ClientServiceConfig) (*model.StackDescriptor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client configuration is required")
	}
	if cfg.Integration.ServiceType == config.ComposedStack {
		return f.CreateComposed(cfg.ClientID, cfg.CMSProvider(), cfg.EcommerceProvider(), cfg.Integration.SSGEngine)
	}
	return f.Create(cfg.ClientID, cfg.StackType(), cfg.Integration.SSGEngine)
}

// Template returns the template for a stack type, reading it on first use
func (f *Factory) Template(stackType model.StackTypeID) (*StackTemplate, error) {
	st, err := f.store.Load().StackType(stackType)
	if err != nil {
		return nil, err
	}

	load, ok := f.templates()[st.Category]
	if !ok {
		return nil, fmt.Errorf("no template registered for %s stacks", st.Category)
	}
	tmpl, err := load()
	if err != nil {
		return nil, err
	}
	return tmpl.clone(), nil
}

func (f *Factory) describe(cat *catalog.Catalog, clientID string, st catalog.StackType, engine model.Engine, constructID string) *model.StackDescriptor {
	services := slices.Clone(templateSpecs[st.Category].services)
	for _, id := range []model.ProviderID{st.CMSProvider, st.EcommerceProvider} {
		if id == "" {
			continue
		}
		if p, err := cat.Provider(id); err == nil {
			services = appendMissing(services, p.RequiredServices...)
		}
	}

	f.logger.Debug("composed stack", "client_id", clientID, "stack_type", string(st.ID), "engine", string(engine))

	return &model.StackDescriptor{
		StackType:         st.ID,
		Category:          st.Category,
		Engine:            engine,
		CMSProvider:       st.CMSProvider,
		EcommerceProvider: st.EcommerceProvider,
		ConstructID:       constructID,
		TemplateVariant:   st.TemplateVariant,
		RequiredServices:  services,
	}
}

// ConstructID builds a PascalCase construct id from a client id and name
// segments, ending in "Stack". Hyphens and underscores split words.
func ConstructID(clientID string, segments ...string) string {
	var b strings.Builder
	b.WriteString(PascalCase(clientID))
	for _, segment := range segments {
		b.WriteString(PascalCase(segment))
	}
	b.WriteString("Stack")
	return b.String()
}

// PascalCase capitalises each hyphen or underscore separated word and joins them
func PascalCase(s string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' }) {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

func appendMissing(values []string, extra ...string) []string {
	for _, v := range extra {
		if !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	return values
}
