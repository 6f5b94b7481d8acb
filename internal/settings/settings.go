/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package settings loads the runtime settings of the sitestack CLI from
// SITESTACK_ prefixed environment variables.
package settings

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Prefix is prepended to every variable name
const Prefix = "SITESTACK_"

// Settings holds runtime configuration that is not part of a client file
type Settings struct {
	ConfigFile  string `env:"CONFIG" envDefault:"sitestack.yaml"`
	TemplateDir string `env:"TEMPLATE_DIR"`
	ThemeIndex  string `env:"THEME_INDEX"`
	AWSProfile  string `env:"AWS_PROFILE"`

	Log      LogSettings      `envPrefix:"LOG_"`
	Registry RegistrySettings `envPrefix:"REGISTRY_"`
	Deploy   DeploySettings   `envPrefix:"DEPLOY_"`
}

// LogSettings configures the slog handler
type LogSettings struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// RegistrySettings locates the external provider metadata overlay. An empty
// bucket and file means the embedded catalog is used as is.
type RegistrySettings struct {
	Bucket  string        `env:"BUCKET"`
	Key     string        `env:"KEY" envDefault:"registry/providers.yaml"`
	Region  string        `env:"REGION" envDefault:"us-east-1"`
	File    string        `env:"FILE"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether an external registry source is configured
func (r RegistrySettings) Enabled() bool {
	return r.Bucket != "" || r.File != ""
}

// DeploySettings tunes provisioning
type DeploySettings struct {
	Wait    bool          `env:"WAIT" envDefault:"true"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30m"`
}

// Load reads settings from the process environment
func Load() (*Settings, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads settings from the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Settings, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environment})
}

func parse(opts env.Options) (*Settings, error) {
	s := &Settings{}
	if err := env.ParseWithOptions(s, opts); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Registry.Bucket != "" && s.Registry.File != "" {
		return nil, fmt.Errorf("%sREGISTRY_BUCKET and %sREGISTRY_FILE are mutually exclusive", Prefix, Prefix)
	}
	if s.Registry.Timeout <= 0 {
		return nil, fmt.Errorf("%sREGISTRY_TIMEOUT must be positive", Prefix)
	}
	return s, nil
}
