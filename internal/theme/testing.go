/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package theme

import (
	"github.com/stretchr/testify/mock"
)

// MockRegistry implements Registry for testing
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) GetTheme(id string) (*Descriptor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Descriptor), args.Error(1)
}

func (m *MockRegistry) ThemeIDs() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
