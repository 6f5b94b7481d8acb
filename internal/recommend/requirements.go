/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package recommend

import (
	"strconv"
	"strings"

	"github.com/sitestack/sitestack/internal/model"
)

// Requirement keys understood by the scorers
const (
	ContentManagement   = "content_management"
	Ecommerce           = "ecommerce"
	BudgetConscious     = "budget_conscious"
	MonthlyBudget       = "monthly_budget"
	ComplexityLevel     = "complexity"
	ReactPreferred      = "react_preferred"
	VuePreferred        = "vue_preferred"
	PerformanceCritical = "performance_critical"
	UseCases            = "use_cases"
	Features            = "features"
)

// Requirements is a free-form client requirements map as decoded from YAML,
// JSON or command-line flags
type Requirements map[string]any

// Flag reports whether key holds a truthy value. Strings such as "yes" and
// "true" count, as do non-zero numbers.
func (r Requirements) Flag(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		}
		return false
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// Number returns a numeric requirement and whether it was present and numeric
func (r Requirements) Number(key string) (float64, bool) {
	switch v := r[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Keywords returns a lowercased keyword list from a list or comma-separated string
func (r Requirements) Keywords(key string) []string {
	var raw []string
	switch v := r[key].(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	keywords := make([]string, 0, len(raw))
	for _, k := range raw {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Complexity returns the requested complexity level, if any
func (r Requirements) Complexity() (model.Complexity, bool) {
	s, ok := r[ComplexityLevel].(string)
	if !ok {
		return 0, false
	}
	c, err := model.ParseComplexity(s)
	return c, err == nil
}
