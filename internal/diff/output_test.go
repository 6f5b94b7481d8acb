/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitestack/sitestack/internal/ui"
)

func TestFormatResult_NewStack(t *testing.T) {
	result := &Result{
		StackName:      "AcmeCo-Prod-DecapCmsTier",
		Region:         "us-east-1",
		ParameterDiffs: []ValueDiff{{Key: "PriceClass", ProposedValue: "PriceClass_100", ChangeType: ChangeTypeAdd}},
		TagDiffs:       []ValueDiff{{Key: "Client", ProposedValue: "acme-co", ChangeType: ChangeTypeAdd}},
	}

	output := FormatResult(result, ui.NewStyles(false))

	assert.Contains(t, output, "Stack: AcmeCo-Prod-DecapCmsTier")
	assert.Contains(t, output, "(us-east-1)")
	assert.Contains(t, output, "Status: NEW STACK")
	assert.Contains(t, output, "Parameters to be set:")
	assert.Contains(t, output, "+ PriceClass: PriceClass_100")
	assert.Contains(t, output, "+ Client: acme-co")
}

func TestFormatResult_NoChanges(t *testing.T) {
	result := &Result{StackName: "s", Region: "us-east-1", StackExists: true, TemplateChange: &TemplateChange{}}

	output := FormatResult(result, ui.NewStyles(false))

	assert.Contains(t, output, "Status: NO CHANGES")
	assert.NotContains(t, output, "Template Changes:")
}

func TestFormatResult_Changes(t *testing.T) {
	result := &Result{
		StackName:   "s",
		Region:      "us-east-1",
		StackExists: true,
		TemplateChange: &TemplateChange{
			HasChanges: true,
			Sections:   []SectionDiff{{Name: "Resources", ChangeType: ChangeTypeModify}},
			Resources: []ResourceDiff{
				{LogicalID: "BuildProject", Type: "AWS::CodeBuild::Project", ChangeType: ChangeTypeRemove},
				{LogicalID: "DecapWebhookFunction", Type: "AWS::Lambda::Function", ChangeType: ChangeTypeAdd},
			},
		},
		ParameterDiffs: []ValueDiff{{Key: "PriceClass", CurrentValue: "PriceClass_100", ProposedValue: "PriceClass_All", ChangeType: ChangeTypeModify}},
		TagDiffs:       []ValueDiff{{Key: "Legacy", CurrentValue: "yes", ChangeType: ChangeTypeRemove}},
	}

	output := FormatResult(result, ui.NewStyles(false))

	assert.Contains(t, output, "Status: CHANGES DETECTED")
	assert.Contains(t, output, "~ Resources")
	assert.Contains(t, output, "Resources: 1 to add, 0 to change, 1 to remove")
	assert.Contains(t, output, "- BuildProject (AWS::CodeBuild::Project)")
	assert.Contains(t, output, "+ DecapWebhookFunction (AWS::Lambda::Function)")
	assert.Contains(t, output, "~ PriceClass: PriceClass_100 → PriceClass_All")
	assert.Contains(t, output, "- Legacy: yes")
}
