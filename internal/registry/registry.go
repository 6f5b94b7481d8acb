/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package registry overlays provider metadata from an external document onto
// the embedded catalog. The embedded catalog is always the fallback: a fetch,
// decode or validation failure is logged and never surfaced to callers.
package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/model"
)

// DocumentVersion is the only registry document version understood
const DocumentVersion = 1

// Document is the registry overlay. Rows replace embedded rows with the same id
// and rows with new ids are appended in document order.
type Document struct {
	Version   int                          `yaml:"version"`
	Providers []catalog.ProviderDescriptor `yaml:"providers"`
}

// Status reports the outcome of the most recent load
type Status struct {
	Source    string    `json:"source"`
	Healthy   bool      `json:"healthy"`
	Fallback  bool      `json:"fallback"`
	Error     string    `json:"error,omitempty"`
	Providers int       `json:"providers"`
	CheckedAt time.Time `json:"checked_at"`
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for fallback warnings
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithClock overrides the time source used in health reports
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry loads catalogs from a Source
type Registry struct {
	source Source
	store  *catalog.Store
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	status Status
}

// New creates a registry that publishes refreshed catalogs into store
func New(source Source, store *catalog.Store, opts ...Option) *Registry {
	r := &Registry{
		source: source,
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load fetches and applies the overlay. On any failure it logs a
// RegistryFallbackWarning and returns the embedded catalog.
func (r *Registry) Load(ctx context.Context) *catalog.Catalog {
	cat, err := r.load(ctx)
	if err != nil {
		warning := &model.RegistryFallbackWarning{Source: r.source.Name(), Cause: err}
		r.logger.Warn("metadata registry unavailable, using embedded catalog", "source", warning.Source, "error", warning)
		r.record(Status{Source: warning.Source, Fallback: true, Error: err.Error()}, catalog.Embedded())
		return catalog.Embedded()
	}

	r.logger.Debug("metadata registry loaded", "source", r.source.Name())
	r.record(Status{Source: r.source.Name(), Healthy: true}, cat)
	return cat
}

// Refresh loads a catalog and swaps it into the store
func (r *Registry) Refresh(ctx context.Context) *catalog.Catalog {
	cat := r.Load(ctx)
	r.store.Swap(cat)
	return cat
}

// Health returns the status of the most recent load
func (r *Registry) Health() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Registry) record(status Status, cat *catalog.Catalog) {
	status.CheckedAt = r.now()
	for _, category := range []model.Category{model.CategorySSG, model.CategoryCMS, model.CategoryEcommerce} {
		status.Providers += len(cat.Providers(category))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

func (r *Registry) load(ctx context.Context) (*catalog.Catalog, error) {
	data, err := r.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(Merge(catalog.EmbeddedRows(), doc.Providers))
	if err != nil {
		return nil, fmt.Errorf("registry rows are invalid: %w", err)
	}
	return cat, nil
}

// Decode parses a registry document, rejecting unknown keys
func Decode(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("registry document is empty")
		}
		return nil, fmt.Errorf("failed to parse registry document: %w", err)
	}

	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("unsupported registry document version %d", doc.Version)
	}
	return &doc, nil
}

// Merge overlays rows onto base by provider id
func Merge(base, overlay []catalog.ProviderDescriptor) []catalog.ProviderDescriptor {
	merged := slices.Clone(base)
	for _, row := range overlay {
		i := slices.IndexFunc(merged, func(p catalog.ProviderDescriptor) bool { return p.ID == row.ID })
		if i >= 0 {
			merged[i] = row
			continue
		}
		merged = append(merged, row)
	}
	return merged
}
