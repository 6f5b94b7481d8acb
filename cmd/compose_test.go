/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/model"
)

func TestComposeCommand_FromConfiguration(t *testing.T) {
	configFile := writeConfigFile(t)

	out, err := executeCommand(t, "compose", "bolt-shop", "--config", configFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Stack type:  sanity_shopify_basic_composed (composed)")
	assert.Contains(t, out, "CMS:         sanity")
	assert.Contains(t, out, "E-commerce:  shopify_basic")
	assert.Contains(t, out, "Construct:   BoltShopSanityShopifyBasicComposedStack")
}

func TestComposeCommand_IncompatibleClient(t *testing.T) {
	configFile := writeConfigFile(t)

	_, err := executeCommand(t, "compose", "broken-co", "--config", configFile)
	require.Error(t, err)

	var compatErr *model.CompatibilityError
	assert.True(t, errors.As(err, &compatErr), err.Error())
}

func TestComposeCommand_Render(t *testing.T) {
	configFile := writeConfigFile(t)

	out, err := executeCommand(t, "compose", "acme-co", "--render", "--config", configFile)
	require.NoError(t, err)

	var template yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(out), &template))
	assert.Contains(t, out, "AcmeCoDecapCmsTierStack")
	assert.NotContains(t, out, "{{")
}

func TestComposeCommand_AdHocStackType(t *testing.T) {
	out, err := executeCommand(t, "compose", "--client", "acme-co", "--stack-type", "hugo_static_site", "-o", "json")
	require.NoError(t, err)

	var descriptor model.StackDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &descriptor))
	assert.Equal(t, model.StackTypeID("hugo_static_site"), descriptor.StackType)
	assert.Equal(t, "AcmeCoHugoStaticSiteStack", descriptor.ConstructID)
}

func TestComposeCommand_AdHocComposed(t *testing.T) {
	out, err := executeCommand(t, "compose", "--client", "acme-co", "--cms", "sanity", "--ecommerce", "shopify_basic", "--engine", "astro", "-o", "yaml")
	require.NoError(t, err)

	var descriptor model.StackDescriptor
	require.NoError(t, yaml.Unmarshal([]byte(out), &descriptor))
	assert.Equal(t, model.Engine("astro"), descriptor.Engine)
	assert.Equal(t, "AcmeCoSanityShopifyBasicComposedStack", descriptor.ConstructID)
}

func TestComposeCommand_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"render without client", []string{"compose", "--render"}, "--render requires a client id"},
		{"missing client", []string{"compose", "--stack-type", "hugo_static_site"}, "a client id argument or --client is required"},
		{"missing stack", []string{"compose", "--client", "acme-co", "--cms", "sanity"}, "--stack-type or both --cms and --ecommerce are required"},
		{"bad format", []string{"compose", "--client", "acme-co", "--stack-type", "hugo_static_site", "-o", "toml"}, "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestComposeAdHoc_UsesComposer(t *testing.T) {
	composer := &compose.MockComposer{}
	expected := &model.StackDescriptor{StackType: "decap_snipcart_composed"}
	composer.On("CreateComposed", "acme-co", model.ProviderID("decap"), model.ProviderID("snipcart"), model.Engine("")).Return(expected, nil)

	descriptor, err := composeAdHoc(composer, "acme-co", "hugo_static_site", "decap", "snipcart", "")

	require.NoError(t, err)
	assert.Same(t, expected, descriptor)
	composer.AssertExpectations(t)
}
