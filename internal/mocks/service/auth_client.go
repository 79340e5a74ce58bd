// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthClient is a mock of service.AuthClient.
type MockAuthClient struct {
	mock.Mock
}

// NewMockAuthClient creates a mock whose expectations are asserted at test cleanup.
func NewMockAuthClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthClient {
	m := &MockAuthClient{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthClient) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*entity.LoginResponse)

	return v, args.Error(1)
}
