/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitestack/sitestack/internal/config"
)

// MockDescriber implements Describer for testing
type MockDescriber struct {
	mock.Mock
}

func (m *MockDescriber) DescribeClient(ctx context.Context, cfg *config.ClientServiceConfig) (*ClientDescription, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClientDescription), args.Error(1)
}
