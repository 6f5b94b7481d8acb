/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package deploy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitestack/sitestack/internal/config"
	"github.com/sitestack/sitestack/internal/model"
)

// MockEmitter implements Emitter for testing
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Provision(ctx context.Context, descriptor *model.StackDescriptor, cfg *config.ClientServiceConfig) (*ProvisionResult, error) {
	args := m.Called(ctx, descriptor, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProvisionResult), args.Error(1)
}
