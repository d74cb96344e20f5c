// Zaparoo Archive Resolver
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Archive Resolver.
//
// Zaparoo Archive Resolver is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Archive Resolver is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Archive Resolver.  If not, see <http://www.gnu.org/licenses/>.

package mocks

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockTagResolver is a mock implementation of resolver.TagResolver using testify/mock
type MockTagResolver struct {
	mock.Mock
}

func NewMockTagResolver() *MockTagResolver {
	return &MockTagResolver{}
}

func (m *MockTagResolver) ParseTagURI(query string) (string, bool) {
	args := m.Called(query)
	return args.String(0), args.Bool(1)
}

func (m *MockTagResolver) ResolveTag(tag string) (string, error) {
	args := m.Called(tag)
	if err := args.Error(1); err != nil {
		return args.String(0), fmt.Errorf("mock TagResolver resolve failed: %w", err)
	}
	return args.String(0), nil
}

// MockRandSource is a mock implementation of resolver.RandSource using testify/mock
type MockRandSource struct {
	mock.Mock
}

func NewMockRandSource() *MockRandSource {
	return &MockRandSource{}
}

func (m *MockRandSource) Int() int {
	args := m.Called()
	return args.Int(0)
}
