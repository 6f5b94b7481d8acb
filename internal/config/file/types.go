/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains types and structures specific to the file-based configuration provider.
// These types represent the raw YAML structure before defaults are merged and clients validated.
package file

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sitestack/sitestack/internal/config"
)

// Config represents the raw YAML configuration file structure
// Used for parsing the sitestack.yaml file before defaults are applied
type Config struct {
	Defaults *Defaults `yaml:"defaults"`
	Clients  Clients   `yaml:"clients"`
}

// Defaults are applied to every client that leaves the field empty
type Defaults struct {
	Region         string            `yaml:"region"`
	Environment    string            `yaml:"environment"`
	DeliveryModel  string            `yaml:"delivery_model"`
	HostingPattern string            `yaml:"hosting_pattern"`
	CustomSettings map[string]string `yaml:"custom_settings"`
}

// Client is one entry of the clients map, keyed by client id
type Client struct {
	ID     string
	Intent *config.Intent
}

// Clients keeps the declaration order of the clients mapping
type Clients []*Client

// UnmarshalYAML implements custom YAML unmarshalling for Clients
func (c *Clients) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("clients must be a mapping of client id to client configuration")
	}

	seen := make(map[string]bool, len(node.Content)/2)
	clients := make(Clients, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("line %d: duplicate client '%s'", key.Line, key.Value)
		}
		seen[key.Value] = true

		intent := &config.Intent{}
		if err := value.Decode(intent); err != nil {
			return fmt.Errorf("failed to parse client '%s': %w", key.Value, err)
		}
		clients = append(clients, &Client{ID: key.Value, Intent: intent})
	}

	*c = clients
	return nil
}

// Find returns the client with the given id, or nil
func (c Clients) Find(id string) *Client {
	for _, client := range c {
		if client.ID == id {
			return client
		}
	}
	return nil
}
