/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"github.com/stretchr/testify/mock"
)

// MockTemplateReader implements TemplateReader for testing
type MockTemplateReader struct {
	mock.Mock
}

func (m *MockTemplateReader) ReadTemplate(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}
