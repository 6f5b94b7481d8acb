/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sitestack/sitestack/internal/naming"
)

func sampleDescription() *ClientDescription {
	return &ClientDescription{
		ClientID:          "acme-co",
		Company:           "Acme Co",
		Domain:            "acme.com",
		Environment:       "prod",
		Region:            "us-east-1",
		ServiceTier:       "tier2",
		StackType:         "decap_snipcart_composed",
		Category:          "composed",
		Engine:            "eleventy",
		CMSProvider:       "decap",
		EcommerceProvider: "snipcart",
		ConstructID:       "AcmeCoDecapSnipcartComposedStack",
		RequiredServices:  []string{"s3", "cloudfront"},
		DeploymentName:    "AcmeCo-Prod-DecapSnipcartComposed",
		ResourcePrefix:    "acme-co-prod",
		Tags:              map[string]string{"Environment": "prod", "Client": "acme-co"},
		EnvironmentVariables: []string{
			"CLIENT_ID",
			"SNIPCART_API_KEY",
		},
		Webhooks: []naming.WebhookEndpoint{
			{Name: "decap-webhook", Provider: "decap", Path: "/webhooks/decap"},
		},
	}
}

func TestFormatClientDescription_NotDeployed(t *testing.T) {
	output := FormatClientDescription(sampleDescription())

	assert.Contains(t, output, "Client: acme-co\n")
	assert.Contains(t, output, "  Type: decap_snipcart_composed (composed)\n")
	assert.Contains(t, output, "  CMS: decap\n")
	assert.Contains(t, output, "  E-commerce: snipcart\n")
	assert.Contains(t, output, "  Services: s3, cloudfront\n")
	assert.Contains(t, output, "  decap-webhook: /webhooks/decap\n")
	assert.Contains(t, output, "  Not deployed\n")
	assert.NotContains(t, output, "Outputs:")
}

func TestFormatClientDescription_SortsTags(t *testing.T) {
	output := FormatClientDescription(sampleDescription())

	client := strings.Index(output, "  Client: acme-co")
	environment := strings.Index(output, "  Environment: prod")
	assert.Greater(t, client, 0)
	assert.Greater(t, environment, client)
}

func TestFormatClientDescription_OmitsEmptyProviders(t *testing.T) {
	desc := sampleDescription()
	desc.EcommerceProvider = ""
	desc.Webhooks = nil

	output := FormatClientDescription(desc)

	assert.NotContains(t, output, "E-commerce:")
	assert.NotContains(t, output, "Webhooks:")
}

func TestFormatClientDescription_Deployed(t *testing.T) {
	updated := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	desc := sampleDescription()
	desc.Stack = &StackState{
		Name:        "AcmeCo-Prod-DecapSnipcartComposed",
		Status:      "UPDATE_COMPLETE",
		StackID:     "arn:aws:cloudformation:us-east-1:123456789012:stack/x/1",
		CreatedTime: time.Date(2025, 1, 15, 10, 30, 45, 0, time.UTC),
		UpdatedTime: &updated,
		Outputs:     map[string]string{"DistributionId": "E123"},
	}

	output := FormatClientDescription(desc)

	assert.Contains(t, output, "  Status: UPDATE_COMPLETE\n")
	assert.Contains(t, output, "  Created: 2025-01-15 10:30:45 UTC\n")
	assert.Contains(t, output, "  Updated: 2025-01-16 09:00:00 UTC\n")
	assert.Contains(t, output, "  Stack ID: arn:aws:cloudformation")
	assert.Contains(t, output, "Outputs:\n  DistributionId: E123\n")
	assert.NotContains(t, output, "Not deployed")
}
