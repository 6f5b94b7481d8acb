/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package theme checks that a client's chosen theme can be built by its engine
// and served from its hosting pattern.
package theme

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/model"
)

// Descriptor is the registry metadata for one theme
type Descriptor struct {
	ID                    string       `yaml:"id"`
	Name                  string       `yaml:"name"`
	Engine                model.Engine `yaml:"engine"`
	GitHubPagesCompatible bool         `yaml:"github_pages_compatible"`
	InstallCommand        string       `yaml:"install_command,omitempty"`
	Repository            string       `yaml:"repository,omitempty"`
}

// Registry looks themes up by id. A nil descriptor with a nil error means the
// theme does not exist.
type Registry interface {
	GetTheme(id string) (*Descriptor, error)
	ThemeIDs() []string
}

// Check fails when themeID is unknown, declares a different engine, or cannot
// be served from GitHub Pages while the hosting pattern needs it
func Check(registry Registry, themeID string, engine model.Engine, githubPages bool) error {
	descriptor, err := registry.GetTheme(themeID)
	if err != nil {
		return fmt.Errorf("failed to look up theme '%s': %w", themeID, err)
	}
	if descriptor == nil {
		return model.NewUnknownIdentifierError("theme", themeID, registry.ThemeIDs())
	}
	if descriptor.Engine != engine {
		return fmt.Errorf("theme '%s' is built for %s, not %s", themeID, descriptor.Engine, engine)
	}
	if githubPages && !descriptor.GitHubPagesCompatible {
		return fmt.Errorf("theme '%s' is not GitHub Pages compatible", themeID)
	}
	return nil
}

// FileRegistry is a Registry loaded from a YAML theme index
type FileRegistry struct {
	themes map[string]*Descriptor
}

type index struct {
	Themes []*Descriptor `yaml:"themes"`
}

// LoadFile reads a theme index such as:
//
//	themes:
//	  - id: ananke
//	    engine: hugo
//	    github_pages_compatible: true
func LoadFile(filename string) (*FileRegistry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme index '%s': %w", filename, err)
	}
	return Parse(data)
}

// Parse builds a FileRegistry from YAML bytes
func Parse(data []byte) (*FileRegistry, error) {
	var raw index
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse theme index: %w", err)
	}
	return NewRegistry(raw.Themes...)
}

// NewRegistry builds a FileRegistry from descriptors, rejecting duplicate or empty ids
func NewRegistry(themes ...*Descriptor) (*FileRegistry, error) {
	r := &FileRegistry{themes: make(map[string]*Descriptor, len(themes))}
	for _, t := range themes {
		if t == nil || t.ID == "" {
			return nil, fmt.Errorf("theme entries must have an id")
		}
		if _, exists := r.themes[t.ID]; exists {
			return nil, fmt.Errorf("duplicate theme id '%s'", t.ID)
		}
		if t.Engine == "" {
			return nil, fmt.Errorf("theme '%s' must declare an engine", t.ID)
		}
		copied := *t
		r.themes[t.ID] = &copied
	}
	return r, nil
}

// GetTheme returns a copy of the theme, or nil when it is not registered
func (r *FileRegistry) GetTheme(id string) (*Descriptor, error) {
	t, ok := r.themes[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

// ThemeIDs returns the registered ids in sorted order
func (r *FileRegistry) ThemeIDs() []string {
	ids := make([]string, 0, len(r.themes))
	for id := range r.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return slices.Clip(ids)
}
