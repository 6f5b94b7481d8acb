/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package compose

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/sitestack/sitestack/internal/model"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// EmbeddedTemplates returns the built-in template set
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return sub
}

const webhooksPartial = "webhooks.partial.tmpl"

// StackTemplate is the deployable template for a stack category
type StackTemplate struct {
	Name         string
	Body         string
	Parameters   map[string]string
	Capabilities []string
}

func (t *StackTemplate) clone() *StackTemplate {
	copied := *t
	copied.Parameters = maps.Clone(t.Parameters)
	copied.Capabilities = slices.Clone(t.Capabilities)
	return &copied
}

type templateSpec struct {
	file         string
	partials     []string
	parameters   map[string]string
	capabilities []string
	services     []string
}

var templateSpecs = map[model.StackCategory]templateSpec{
	model.StackCategoryFoundation: {
		file:       "static-site.yaml.tmpl",
		parameters: map[string]string{"IndexDocument": "index.html", "PriceClass": "PriceClass_100"},
		services:   []string{"s3", "cloudfront"},
	},
	model.StackCategoryCMS: {
		file:         "cms-tier.yaml.tmpl",
		partials:     []string{webhooksPartial},
		parameters:   map[string]string{"PriceClass": "PriceClass_100", "BuildComputeType": "BUILD_GENERAL1_SMALL"},
		capabilities: []string{"CAPABILITY_IAM"},
		services:     []string{"s3", "cloudfront", "codebuild"},
	},
	model.StackCategoryEcommerce: {
		file:         "ecommerce-tier.yaml.tmpl",
		partials:     []string{webhooksPartial},
		parameters:   map[string]string{"PriceClass": "PriceClass_100"},
		capabilities: []string{"CAPABILITY_IAM"},
		services:     []string{"s3", "cloudfront", "dynamodb"},
	},
	model.StackCategoryComposed: {
		file:         "composed.yaml.tmpl",
		partials:     []string{webhooksPartial},
		parameters:   map[string]string{"PriceClass": "PriceClass_100"},
		capabilities: []string{"CAPABILITY_IAM"},
		services:     []string{"s3", "cloudfront", "codebuild", "dynamodb"},
	},
}

type templateLoader func() (*StackTemplate, error)

// buildTemplateTable maps every category to a loader that reads its template
// on first call and returns the cached result afterwards
func (f *Factory) buildTemplateTable() map[model.StackCategory]templateLoader {
	table := make(map[model.StackCategory]templateLoader, len(templateSpecs))
	for category, spec := range templateSpecs {
		table[category] = sync.OnceValues(func() (*StackTemplate, error) {
			f.logger.Debug("resolving stack template", "category", string(category), "file", spec.file)
			return f.loadTemplate(spec)
		})
	}
	return table
}

func (f *Factory) loadTemplate(spec templateSpec) (*StackTemplate, error) {
	var body strings.Builder
	for _, name := range append([]string{spec.file}, spec.partials...) {
		content, err := f.reader.ReadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		if body.Len() > 0 {
			body.WriteString("\n")
		}
		body.WriteString(content)
	}

	return &StackTemplate{
		Name:         spec.file,
		Body:         body.String(),
		Parameters:   maps.Clone(spec.parameters),
		Capabilities: slices.Clone(spec.capabilities),
	}, nil
}
