/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package recommend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sitestack/sitestack/internal/catalog"
)

// Scoring weights. An exact complexity match outranks an adjacent one, and a
// framework preference outweighs every keyword match combined.
const (
	BaseScore               = 50
	ComplexityExactBonus    = 20
	ComplexityAdjacentBonus = 10
	FrameworkBonus          = 30
	PerformanceBonus        = 15
	KeywordBonus            = 5
	KeywordCap              = 10
	FreeBudgetBonus         = 20
	LowBudgetBonus          = 10
	HighCostPenalty         = -10
	BudgetFitBonus          = 15
	OverBudgetPenalty       = -25

	lowCostCeiling  = 30
	highCostFloor   = 100
	performanceHint = catalog.Hugo
)

// Score is the contribution of one scorer, with the reason shown to users
type Score struct {
	Points int
	Reason string
}

// Scorer evaluates one predicate for a candidate. A zero Score means the
// predicate did not apply.
type Scorer func(c *Candidate, req Requirements) Score

// Scorers is the fixed scorer set, summed in this order
var Scorers = []Scorer{
	ScoreBase,
	ScoreComplexity,
	ScoreFramework,
	ScorePerformance,
	ScoreUseCases,
	ScoreBudget,
	ScoreFeatures,
}

// ScoreBase gives every candidate the same starting score
func ScoreBase(_ *Candidate, _ Requirements) Score {
	return Score{Points: BaseScore}
}

// ScoreComplexity rewards candidates whose setup complexity matches the request
func ScoreComplexity(c *Candidate, req Requirements) Score {
	want, ok := req.Complexity()
	if !ok {
		return Score{}
	}
	switch c.Complexity.Distance(want) {
	case 0:
		return Score{Points: ComplexityExactBonus, Reason: fmt.Sprintf("%s complexity as requested", c.Complexity)}
	case 1:
		return Score{Points: ComplexityAdjacentBonus, Reason: fmt.Sprintf("%s complexity is close to %s", c.Complexity, want)}
	default:
		return Score{}
	}
}

// ScoreFramework rewards engines from the preferred component ecosystem
func ScoreFramework(c *Candidate, req Requirements) Score {
	for _, ecosystem := range preferredEcosystems(req) {
		if slices.Contains(c.Ecosystems, ecosystem) {
			return Score{Points: FrameworkBonus, Reason: fmt.Sprintf("%s fits the %s preference", c.EngineName, ecosystem)}
		}
	}
	return Score{}
}

// ScorePerformance rewards the fastest-building engine for performance-critical sites
func ScorePerformance(c *Candidate, req Requirements) Score {
	if !req.Flag(PerformanceCritical) || c.Engine != performanceHint {
		return Score{}
	}
	return Score{Points: PerformanceBonus, Reason: fmt.Sprintf("%s builds fastest", c.EngineName)}
}

// ScoreUseCases rewards requested use cases the candidate lists
func ScoreUseCases(c *Candidate, req Requirements) Score {
	return keywordScore("use cases", c.UseCases, req.Keywords(UseCases))
}

// ScoreFeatures rewards requested features the candidate lists
func ScoreFeatures(c *Candidate, req Requirements) Score {
	return keywordScore("features", c.Features, req.Keywords(Features))
}

// ScoreBudget compares the candidate's monthly cost with the budget requirements
func ScoreBudget(c *Candidate, req Requirements) Score {
	var total Score
	var reasons []string

	if req.Flag(BudgetConscious) {
		switch {
		case c.MonthlyCost.Max == 0:
			total.Points += FreeBudgetBonus
			reasons = append(reasons, "no monthly subscription")
		case c.MonthlyCost.Max <= lowCostCeiling:
			total.Points += LowBudgetBonus
			reasons = append(reasons, fmt.Sprintf("low monthly cost (up to $%d)", c.MonthlyCost.Max))
		case c.MonthlyCost.Max > highCostFloor:
			total.Points += HighCostPenalty
			reasons = append(reasons, fmt.Sprintf("monthly cost can reach $%d", c.MonthlyCost.Max))
		}
	}

	if budget, ok := req.Number(MonthlyBudget); ok {
		switch {
		case float64(c.MonthlyCost.Max) <= budget:
			total.Points += BudgetFitBonus
			reasons = append(reasons, fmt.Sprintf("fits a $%s monthly budget", formatBudget(budget)))
		case float64(c.MonthlyCost.Min) > budget:
			total.Points += OverBudgetPenalty
			reasons = append(reasons, fmt.Sprintf("exceeds a $%s monthly budget", formatBudget(budget)))
		}
	}

	total.Reason = strings.Join(reasons, ", ")
	return total
}

func keywordScore(label string, offered, wanted []string) Score {
	var matched []string
	for _, keyword := range wanted {
		for _, candidate := range offered {
			if strings.Contains(strings.ToLower(candidate), keyword) {
				matched = append(matched, keyword)
				break
			}
		}
	}
	if len(matched) == 0 {
		return Score{}
	}
	return Score{
		Points: min(len(matched)*KeywordBonus, KeywordCap),
		Reason: fmt.Sprintf("matches %s: %s", label, strings.Join(matched, ", ")),
	}
}

func preferredEcosystems(req Requirements) []string {
	var ecosystems []string
	if req.Flag(ReactPreferred) {
		ecosystems = append(ecosystems, "react")
	}
	if req.Flag(VuePreferred) {
		ecosystems = append(ecosystems, "vue")
	}
	return ecosystems
}

func formatBudget(budget float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", budget), "0"), ".")
}
