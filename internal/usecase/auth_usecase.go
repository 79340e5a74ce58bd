package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthUsecase defines account operations. Successful logins and
// registrations are persisted in the session store.
type AuthUsecase interface {
	Register(ctx context.Context, input entity.RegisterInput) (*entity.RegisterResponse, error)
	Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (*entity.MessageResponse, error)
	ResetPassword(ctx context.Context, input entity.ResetPasswordInput) (*entity.MessageResponse, error)

	// GetProfile and UpdateProfile use token when non-empty, otherwise the session token.
	GetProfile(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, patch entity.ProfilePatch, token string) (*entity.User, error)
}
