/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package compose

import (
	"github.com/stretchr/testify/mock"

	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
)

// MockComposer implements Composer for testing
type MockComposer struct {
	mock.Mock
}

func (m *MockComposer) Create(clientID string, stackType model.StackTypeID, engine model.Engine) (*model.StackDescriptor, error) {
	args := m.Called(clientID, stackType, engine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StackDescriptor), args.Error(1)
}

func (m *MockComposer) CreateComposed(clientID string, cms, ecommerce model.ProviderID, engine model.Engine) (*model.StackDescriptor, error) {
	args := m.Called(clientID, cms, ecommerce, engine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StackDescriptor), args.Error(1)
}

func (m *MockComposer) FromConfig(cfg *config.ClientServiceConfig) (*model.StackDescriptor, error) {
	args := m.Called(cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StackDescriptor), args.Error(1)
}

func (m *MockComposer) Template(stackType model.StackTypeID) (*StackTemplate, error) {
	args := m.Called(stackType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StackTemplate), args.Error(1)
}
