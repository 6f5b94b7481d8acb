/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, "sitestack.yaml", s.ConfigFile)
	assert.Empty(t, s.TemplateDir)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, "text", s.Log.Format)
	assert.Equal(t, "registry/providers.yaml", s.Registry.Key)
	assert.Equal(t, 5*time.Second, s.Registry.Timeout)
	assert.False(t, s.Registry.Enabled())
	assert.True(t, s.Deploy.Wait)
	assert.Equal(t, 30*time.Minute, s.Deploy.Timeout)
}

func TestLoadFrom_Overrides(t *testing.T) {
	s, err := LoadFrom(map[string]string{
		"SITESTACK_CONFIG":           "clients.yaml",
		"SITESTACK_LOG_LEVEL":        "debug",
		"SITESTACK_LOG_FORMAT":       "json",
		"SITESTACK_REGISTRY_BUCKET":  "sitestack-metadata",
		"SITESTACK_REGISTRY_REGION":  "eu-west-1",
		"SITESTACK_REGISTRY_TIMEOUT": "2s",
		"SITESTACK_DEPLOY_WAIT":      "false",
		"SITESTACK_AWS_PROFILE":      "ops",
		"LOG_LEVEL":                  "error",
	})

	require.NoError(t, err)
	assert.Equal(t, "clients.yaml", s.ConfigFile)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	assert.Equal(t, "sitestack-metadata", s.Registry.Bucket)
	assert.Equal(t, "eu-west-1", s.Registry.Region)
	assert.Equal(t, 2*time.Second, s.Registry.Timeout)
	assert.True(t, s.Registry.Enabled())
	assert.False(t, s.Deploy.Wait)
	assert.Equal(t, "ops", s.AWSProfile)
}

func TestLoadFrom_RejectsBadDuration(t *testing.T) {
	_, err := LoadFrom(map[string]string{"SITESTACK_REGISTRY_TIMEOUT": "soon"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings")
}

func TestLoadFrom_RejectsTwoRegistrySources(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"SITESTACK_REGISTRY_BUCKET": "sitestack-metadata",
		"SITESTACK_REGISTRY_FILE":   "providers.yaml",
	})

	assert.EqualError(t, err, "SITESTACK_REGISTRY_BUCKET and SITESTACK_REGISTRY_FILE are mutually exclusive")
}

func TestLoadFrom_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := LoadFrom(map[string]string{"SITESTACK_REGISTRY_TIMEOUT": "0s"})

	assert.EqualError(t, err, "SITESTACK_REGISTRY_TIMEOUT must be positive")
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("SITESTACK_THEME_INDEX", "themes.yaml")

	s, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "themes.yaml", s.ThemeIndex)
}
