/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package delete

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitestack/sitestack/internal/config"
)

// MockDeleter implements Deleter for testing
type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) DeleteClient(ctx context.Context, cfg *config.ClientServiceConfig) (*Result, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}
