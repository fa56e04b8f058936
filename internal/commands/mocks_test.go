/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"github.com/stretchr/testify/mock"
)

// MockHeadWriter is a mock implementation of resolvconf.Writer
type MockHeadWriter struct {
	mock.Mock
}

func (m *MockHeadWriter) WriteBase() error {
	args := m.Called()

	return args.Error(0)
}

func (m *MockHeadWriter) WriteActivated() error {
	args := m.Called()

	return args.Error(0)
}

// MockOSNetworker is a mock implementation of network.OSNetworker
type MockOSNetworker struct {
	mock.Mock
}

func (m *MockOSNetworker) UpdateResolvconf() error {
	args := m.Called()

	return args.Error(0)
}

func (m *MockOSNetworker) LookupHost(host string) ([]byte, error) {
	args := m.Called(host)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
