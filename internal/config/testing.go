/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockConfigProvider implements ConfigProvider for testing
type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) LoadClient(ctx context.Context, clientID string) (*ClientServiceConfig, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClientServiceConfig), args.Error(1)
}

func (m *MockConfigProvider) ListClients() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockConfigProvider) GetIntent(clientID string) (*Intent, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Intent), args.Error(1)
}

func (m *MockConfigProvider) Validate() error {
	args := m.Called()
	return args.Error(0)
}

// NewTestIntent returns a valid tier2 Decap CMS tier intent for acme-co
func NewTestIntent() *Intent {
	return &Intent{
		ClientID:     "acme-co",
		CompanyName:  "Acme Co",
		Domain:       "acme.com",
		ContactEmail: "ops@acme.com",
		ServiceTier:  string(Tier2),
		ServiceIntegration: IntegrationIntent{
			ServiceType: string(CMSTier),
			CMSConfig:   &ProviderIntent{Provider: "decap"},
		},
	}
}

// NewTestConfig validates NewTestIntent and panics on failure
func NewTestConfig() *ClientServiceConfig {
	cfg, err := Validate(NewTestIntent())
	if err != nil {
		panic(err)
	}
	return cfg
}
