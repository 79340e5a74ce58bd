package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) Register(ctx context.Context, input entity.RegisterInput) (*entity.RegisterResponse, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*entity.RegisterResponse)

	return v, args.Error(1)
}

func (m *MockAccountRepository) ForgotPassword(ctx context.Context, email string) (*entity.MessageResponse, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*entity.MessageResponse)

	return v, args.Error(1)
}

func (m *MockAccountRepository) ResetPassword(ctx context.Context, input entity.ResetPasswordInput) (*entity.MessageResponse, error) {
	args := m.Called(ctx, input)
	v, _ := args.Get(0).(*entity.MessageResponse)

	return v, args.Error(1)
}

func (m *MockAccountRepository) Profile(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	v, _ := args.Get(0).(*entity.User)

	return v, args.Error(1)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, patch entity.ProfilePatch, token string) (*entity.User, error) {
	args := m.Called(ctx, patch, token)
	v, _ := args.Get(0).(*entity.User)

	return v, args.Error(1)
}

// MockAddressRepository is a mock of repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

// NewMockAddressRepository creates a mock whose expectations are asserted at test cleanup.
func NewMockAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressRepository) Addresses(ctx context.Context, token string) ([]entity.Address, error) {
	args := m.Called(ctx, token)
	v, _ := args.Get(0).([]entity.Address)

	return v, args.Error(1)
}

func (m *MockAddressRepository) CreateAddress(ctx context.Context, input entity.AddressInput, token string) (*entity.Address, error) {
	args := m.Called(ctx, input, token)
	v, _ := args.Get(0).(*entity.Address)

	return v, args.Error(1)
}

func (m *MockAddressRepository) UpdateAddress(ctx context.Context, id int64, patch entity.AddressPatch, token string) (*entity.Address, error) {
	args := m.Called(ctx, id, patch, token)
	v, _ := args.Get(0).(*entity.Address)

	return v, args.Error(1)
}

func (m *MockAddressRepository) DeleteAddress(ctx context.Context, id int64, token string) error {
	return m.Called(ctx, id, token).Error(0)
}
