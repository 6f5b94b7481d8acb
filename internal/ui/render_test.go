/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package ui

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/cost"
	"github.com/sitestack/sitestack/internal/model"
)

func TestNewStyles_PlainMode(t *testing.T) {
	s := NewStyles(false)

	assert.False(t, s.UseColour)
	assert.Equal(t, "decap_cms_tier", s.StackType.Render("decap_cms_tier"))
	assert.Equal(t, "E123", s.Key.Render("E123"))
}

func TestShouldUseColour_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TERM", "xterm-256color")

	assert.False(t, ShouldUseColour())
}

func TestShouldUseColour_DumbTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")

	assert.False(t, ShouldUseColour())
}

func TestRenderRecommendations(t *testing.T) {
	entries := []model.RecommendationEntry{
		{
			StackType:         "decap_cms_tier",
			RecommendedEngine: "hugo",
			Score:             95,
			Rationale:         "free git-based CMS",
			TargetAudience:    "small teams",
			Features:          []string{"git workflow", "markdown"},
		},
		{StackType: "tina_cms_tier", RecommendedEngine: "astro", Score: 80},
	}

	output := RenderRecommendations(entries, NewStyles(false))

	assert.Contains(t, output, "Recommendations (2)")
	assert.Contains(t, output, " 1. decap_cms_tier with hugo score 95")
	assert.Contains(t, output, "    free git-based CMS")
	assert.Contains(t, output, "    For: small teams")
	assert.Contains(t, output, "    Features: git workflow, markdown")
	assert.Contains(t, output, " 2. tina_cms_tier with astro score 80")
	assert.Less(t, strings.Index(output, "decap_cms_tier"), strings.Index(output, "tina_cms_tier"))
}

func TestRenderRecommendations_Empty(t *testing.T) {
	output := RenderRecommendations(nil, NewStyles(false))

	assert.Contains(t, output, "No stack type matches these requirements")
}

func TestRenderEstimate(t *testing.T) {
	breakdown, err := cost.Estimate(catalog.Embedded(), "decap_snipcart_composed", "", cost.Assumptions{
		MonthlySalesVolume: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	output := RenderEstimate(breakdown, NewStyles(false))

	assert.Contains(t, output, "decap_snipcart_composed with "+string(breakdown.Engine))
	for _, item := range breakdown.Items {
		assert.Contains(t, output, item.Name)
	}
	assert.Contains(t, output, "Monthly: "+breakdown.MonthlyTotal.String())
	assert.Contains(t, output, "Setup: "+breakdown.SetupTotal.String())
}
