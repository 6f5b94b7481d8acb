/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"fmt"
	"maps"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/config"
)

// DefaultFilename is the configuration file read when none is given
const DefaultFilename = "sitestack.yaml"

// Provider implements config.ConfigProvider by reading from a YAML file
type Provider struct {
	filename  string
	options   []config.Option
	rawConfig *Config
}

// NewProvider creates a new file-based ConfigProvider for the given filename.
// The options are passed to config.Validate for every client.
func NewProvider(filename string, options ...config.Option) *Provider {
	return &Provider{
		filename: filename,
		options:  options,
	}
}

// LoadClient merges the file defaults into the client's intent and validates it
func (fp *Provider) LoadClient(ctx context.Context, clientID string) (*config.ClientServiceConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intent, err := fp.GetIntent(clientID)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Validate(intent, fp.options...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration for client '%s': %w", clientID, err)
	}
	return cfg, nil
}

// ListClients returns all client ids in the order they are declared
func (fp *Provider) ListClients() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	clients := make([]string, 0, len(fp.rawConfig.Clients))
	for _, client := range fp.rawConfig.Clients {
		clients = append(clients, client.ID)
	}
	return clients, nil
}

// GetIntent returns a client's intent with the file defaults applied
func (fp *Provider) GetIntent(clientID string) (*config.Intent, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	client := fp.rawConfig.Clients.Find(clientID)
	if client == nil {
		return nil, fmt.Errorf("client '%s' not found in configuration", clientID)
	}

	return fp.resolveIntent(client)
}

// Validate checks every client and reports all failures together
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	var result *multierror.Error
	for _, client := range fp.rawConfig.Clients {
		intent, err := fp.resolveIntent(client)
		if err == nil {
			_, err = config.Validate(intent, fp.options...)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("client '%s': %w", client.ID, err))
		}
	}
	return result.ErrorOrNil()
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// resolveIntent copies the client's intent, fills the id from the map key and
// applies the file defaults to empty fields
func (fp *Provider) resolveIntent(client *Client) (*config.Intent, error) {
	resolved := *client.Intent

	switch resolved.ClientID {
	case "":
		resolved.ClientID = client.ID
	case client.ID:
	default:
		return nil, fmt.Errorf("client '%s' declares a different client_id '%s'", client.ID, resolved.ClientID)
	}

	resolved.CustomSettings = maps.Clone(client.Intent.CustomSettings)

	defaults := fp.rawConfig.Defaults
	if defaults == nil {
		return &resolved, nil
	}

	resolved.Region = orDefault(resolved.Region, defaults.Region)
	resolved.Environment = orDefault(resolved.Environment, defaults.Environment)
	resolved.DeliveryModel = orDefault(resolved.DeliveryModel, defaults.DeliveryModel)
	resolved.HostingPattern = orDefault(resolved.HostingPattern, defaults.HostingPattern)

	// Client settings take precedence over default settings
	if len(defaults.CustomSettings) > 0 {
		merged := maps.Clone(defaults.CustomSettings)
		maps.Copy(merged, resolved.CustomSettings)
		resolved.CustomSettings = merged
	}

	return &resolved, nil
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
