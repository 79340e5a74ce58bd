// Package demo provides the offline login used for demonstrations and as the
// degraded path when the remote API is unreachable.
package demo

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Tokens handed out by the demo identity. They are not JWTs and are never
// accepted by the remote API.
const (
	AccessToken  = "mock_access_token"
	RefreshToken = "mock_refresh_token"

	adminIdentifier = "admin"
	adminEmail      = "admin@yuvakart.com"
)

// Client logs anyone in without a network call.
type Client struct{}

// NewClient is the constructor for the demo Client.
func NewClient() *Client {
	return &Client{}
}

// Login returns the mock identity of input.UsernameOrEmail. It never fails.
func (*Client) Login(_ context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	return MockLogin(input.UsernameOrEmail), nil
}

// MockLogin builds the mock identity. The identifier "admin", in any letter
// case, gets staff and superuser rights.
func MockLogin(identifier string) *entity.LoginResponse {
	isAdmin := strings.EqualFold(identifier, adminIdentifier)
	dateOfBirth := "1990-01-01"

	user := entity.User{
		ID:          1,
		Username:    identifier,
		Email:       identifier + "@example.com",
		FirstName:   "John",
		LastName:    "Doe",
		Phone:       "+91 9876543210",
		DateOfBirth: &dateOfBirth,
		Address:     "123 Admin Street, City, State - 123456",
		IsStaff:     isAdmin,
		IsSuperuser: isAdmin,
		IsActive:    true,
	}
	if isAdmin {
		user.Email = adminEmail
		user.FirstName = "Admin"
		user.LastName = "User"
	}

	return &entity.LoginResponse{
		User:    user,
		Tokens:  entity.AuthTokens{Access: AccessToken, Refresh: RefreshToken},
		Message: "Login successful",
	}
}

// FallbackClient tries the remote login first and degrades to the demo
// identity on any failure, so that Login never returns an error.
type FallbackClient struct {
	remote service.AuthClient
	logger *slog.Logger
}

// NewFallbackClient wraps remote with the demo fallback.
func NewFallbackClient(remote service.AuthClient, logger *slog.Logger) *FallbackClient {
	return &FallbackClient{remote: remote, logger: logger}
}

// Login implements service.AuthClient.
func (f *FallbackClient) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	resp, err := f.remote.Login(ctx, input)
	if err == nil {
		return resp, nil
	}

	f.logger.Warn("Remote login failed, using demo identity",
		slog.String("username_or_email", input.UsernameOrEmail),
		slog.Any("error", err),
	)

	return MockLogin(input.UsernameOrEmail), nil
}
