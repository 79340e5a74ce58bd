package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AccountRepository manages accounts on the remote API. Login lives on
// service.AuthClient because it has interchangeable implementations.
type AccountRepository interface {
	Register(ctx context.Context, input entity.RegisterInput) (*entity.RegisterResponse, error)
	ForgotPassword(ctx context.Context, email string) (*entity.MessageResponse, error)
	ResetPassword(ctx context.Context, input entity.ResetPasswordInput) (*entity.MessageResponse, error)

	// Profile and UpdateProfile use token when non-empty, otherwise the session token.
	Profile(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, patch entity.ProfilePatch, token string) (*entity.User, error)
}

// AddressRepository manages the address book of the authenticated user.
// An empty token means the session token.
type AddressRepository interface {
	Addresses(ctx context.Context, token string) ([]entity.Address, error)
	CreateAddress(ctx context.Context, input entity.AddressInput, token string) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id int64, patch entity.AddressPatch, token string) (*entity.Address, error)
	DeleteAddress(ctx context.Context, id int64, token string) error
}
