/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sitestack/sitestack/internal/aws"
	"github.com/sitestack/sitestack/internal/catalog"
	"github.com/sitestack/sitestack/internal/compose"
	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/config/file"
	"github.com/sitestack/sitestack/internal/logging"
	"github.com/sitestack/sitestack/internal/registry"
	"github.com/sitestack/sitestack/internal/settings"
	"github.com/sitestack/sitestack/internal/theme"
)

// runtimeState is built once per invocation by setupRuntime
type runtimeState struct {
	settings *settings.Settings
	logger   *slog.Logger
	store    *catalog.Store
	registry *registry.Registry
}

var (
	state = &runtimeState{
		settings: &settings.Settings{ConfigFile: "sitestack.yaml"},
		logger:   slog.Default(),
		store:    catalog.NewStore(nil),
	}

	// clientFactory can be injected for testing
	clientFactory aws.ClientFactory

	// configProvider can be injected for testing
	configProvider config.ConfigProvider
)

// SetClientFactory allows injection of an AWS client factory (for testing)
func SetClientFactory(f aws.ClientFactory) {
	clientFactory = f
}

// SetConfigProvider allows injection of a configuration provider (for testing)
func SetConfigProvider(p config.ConfigProvider) {
	configProvider = p
}

// setupRuntime merges environment settings with global flags, installs the
// logger and loads the provider catalog
func setupRuntime(cmd *cobra.Command, _ []string) error {
	s, err := settings.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		s.ConfigFile, _ = flags.GetString("config")
	}
	if profile, _ := flags.GetString("profile"); profile != "" {
		s.AWSProfile = profile
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		s.Log.Level = level
	}
	if format, _ := flags.GetString("log-format"); format != "" {
		s.Log.Format = format
	}

	level, err := logging.ParseLevel(s.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(s.Log.Format)
	if err != nil {
		return err
	}
	verbose, _ := flags.GetBool("verbose")

	state = &runtimeState{
		settings: s,
		logger: logging.Init(logging.Config{
			Level:   level,
			Format:  format,
			Verbose: verbose,
			Output:  cmd.ErrOrStderr(),
		}),
		store: catalog.NewStore(nil),
	}

	if s.Registry.Enabled() {
		loadRegistry(cmd.Context())
	}
	return nil
}

// loadRegistry overlays the external provider metadata on the embedded
// catalog. Any failure, including setting up the S3 client, falls back to the
// embedded catalog.
func loadRegistry(ctx context.Context) {
	state.registry = registry.New(registrySource(ctx), state.store, registry.WithLogger(state.logger))
	state.registry.Refresh(ctx)
}

func registrySource(ctx context.Context) registry.Source {
	cfg := state.settings.Registry
	if cfg.File != "" {
		return &registry.FileSource{Path: cfg.File}
	}

	name := fmt.Sprintf("s3://%s/%s", cfg.Bucket, cfg.Key)
	factory, err := getClientFactory(ctx)
	if err != nil {
		return registry.Unavailable(name, err)
	}
	ops, err := factory.GetObjectOperations(ctx, cfg.Region)
	if err != nil {
		return registry.Unavailable(name, fmt.Errorf("failed to get S3 operations: %w", err))
	}
	return registry.NewS3Source(ops, cfg.Bucket, cfg.Key, cfg.Timeout)
}

// getClientFactory returns the client factory, creating a default one if none is set
func getClientFactory(ctx context.Context) (aws.ClientFactory, error) {
	if clientFactory != nil {
		return clientFactory, nil
	}

	factory, err := aws.NewClientFactory(ctx, aws.Config{Profile: state.settings.AWSProfile})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client factory: %w", err)
	}
	clientFactory = factory
	return clientFactory, nil
}

// getConfigProvider returns the configuration provider, creating a file
// provider for the configured file if none is set
func getConfigProvider() (config.ConfigProvider, error) {
	if configProvider != nil {
		return configProvider, nil
	}

	opts := []config.Option{
		config.WithCatalog(state.store.Load()),
		config.WithLogger(state.logger),
	}
	if state.settings.ThemeIndex != "" {
		themes, err := theme.LoadFile(state.settings.ThemeIndex)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithThemeRegistry(themes))
	}
	return file.NewProvider(state.settings.ConfigFile, opts...), nil
}

// newComposer creates a stack factory over the loaded catalog
func newComposer() *compose.Factory {
	opts := []compose.Option{compose.WithLogger(state.logger)}
	if state.settings.TemplateDir != "" {
		opts = append(opts, compose.WithTemplateDir(state.settings.TemplateDir))
	}
	return compose.NewFactory(state.store, opts...)
}
