/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

// ConfirmProvisioning mock implementation
func (m *MockPrompter) ConfirmProvisioning(stackName, region string) (bool, error) {
	args := m.Called(stackName, region)
	return args.Bool(0), args.Error(1)
}

// ConfirmDeletion mock implementation
func (m *MockPrompter) ConfirmDeletion(stackName, region string) (bool, error) {
	args := m.Called(stackName, region)
	return args.Bool(0), args.Error(1)
}
