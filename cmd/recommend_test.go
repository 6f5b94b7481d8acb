/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestack/sitestack/internal/model"
	"github.com/sitestack/sitestack/internal/recommend"
)

func TestRecommendCommand_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out, err := executeCommand(t, "recommend", "--content-management", "--budget-conscious")
	require.NoError(t, err)

	assert.Contains(t, out, "Recommendations (4)")
	assert.Contains(t, out, " 1. decap_cms_tier with hugo")
	assert.Contains(t, out, "no monthly subscription")
}

func TestRecommendCommand_JSONWithLimit(t *testing.T) {
	out, err := executeCommand(t, "recommend", "--performance-critical", "--limit", "2", "-o", "json")
	require.NoError(t, err)

	var entries []model.RecommendationEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, model.StackTypeID("hugo_static_site"), entries[0].StackType)
}

func TestRequirementsFromFlags_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "needs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content_management: false\nmonthly_budget: 50\nuse_cases: blog\n"), 0o600))

	resetFlags(recommendCmd)
	t.Cleanup(func() { resetFlags(recommendCmd) })
	require.NoError(t, recommendCmd.ParseFlags([]string{"--requirements", path, "--content-management", "--features", "visual editing"}))

	req, err := requirementsFromFlags(recommendCmd)
	require.NoError(t, err)

	assert.Equal(t, true, req[recommend.ContentManagement])
	assert.Equal(t, 50, req[recommend.MonthlyBudget])
	assert.Equal(t, "blog", req[recommend.UseCases])
	assert.Equal(t, "visual editing", req[recommend.Features])
	assert.NotContains(t, req, recommend.Ecommerce)
}

func TestRequirementsFromFlags_MissingFile(t *testing.T) {
	resetFlags(recommendCmd)
	t.Cleanup(func() { resetFlags(recommendCmd) })
	require.NoError(t, recommendCmd.ParseFlags([]string{"--requirements", filepath.Join(t.TempDir(), "absent.yaml")}))

	_, err := requirementsFromFlags(recommendCmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read requirements file")
}
