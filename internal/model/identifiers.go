/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"fmt"
	"strings"
)

// Category classifies a catalog provider
type Category string

const (
	CategoryCMS       Category = "cms"
	CategoryEcommerce Category = "ecommerce"
	CategorySSG       Category = "ssg"
)

// Engine identifies a static site generator
type Engine string

// ProviderID identifies a CMS, e-commerce or SSG provider in the catalog
type ProviderID string

// StackTypeID identifies a deployable stack type
type StackTypeID string

// StackCategory groups stack types by how their engine is chosen
type StackCategory string

const (
	// StackCategoryFoundation stacks carry a fixed engine
	StackCategoryFoundation StackCategory = "foundation"
	StackCategoryCMS        StackCategory = "cms_tier"
	StackCategoryEcommerce  StackCategory = "ecommerce_tier"
	StackCategoryComposed   StackCategory = "composed"
)

// FlexibleEngine reports whether stacks in this category accept a caller-chosen engine
func (c StackCategory) FlexibleEngine() bool {
	return c != StackCategoryFoundation
}

// Complexity is an ordinal setup-complexity tier
type Complexity int

const (
	ComplexityLow Complexity = iota
	ComplexityLowMedium
	ComplexityMedium
	ComplexityMediumHigh
	ComplexityHigh
)

var complexityNames = []string{"low", "low-medium", "medium", "medium-high", "high"}

// String returns the catalog spelling of the complexity tier
func (c Complexity) String() string {
	if c < ComplexityLow || c > ComplexityHigh {
		return "unknown"
	}
	return complexityNames[c]
}

// Distance returns the number of tiers between two complexity levels
func (c Complexity) Distance(other Complexity) int {
	d := int(c) - int(other)
	if d < 0 {
		return -d
	}
	return d
}

// ParseComplexity accepts hyphen or underscore separated names, case-insensitively
func ParseComplexity(s string) (Complexity, error) {
	normalised := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range complexityNames {
		if name == normalised {
			return Complexity(i), nil
		}
	}
	return ComplexityLow, fmt.Errorf("unknown complexity '%s' (valid: %s)", s, strings.Join(complexityNames, ", "))
}

// MarshalYAML renders the complexity by name
func (c Complexity) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML parses the complexity from its name
func (c *Complexity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseComplexity(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
