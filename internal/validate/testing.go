/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package validate

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockValidator is a mock implementation of Validator for testing
type MockValidator struct {
	mock.Mock
}

// ValidateClient mocks the ValidateClient method
func (m *MockValidator) ValidateClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// ValidateAllClients mocks the ValidateAllClients method
func (m *MockValidator) ValidateAllClients(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
