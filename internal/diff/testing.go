/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitestack/sitestack/internal/deploy"
)

// MockDiffer implements Differ for testing
type MockDiffer struct {
	mock.Mock
}

func (m *MockDiffer) Diff(ctx context.Context, proposed *deploy.ProvisionResult) (*Result, error) {
	args := m.Called(ctx, proposed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}
