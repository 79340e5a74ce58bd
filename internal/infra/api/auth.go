package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// Register creates an account and returns the new identity and tokens.
func (c *Client) Register(ctx context.Context, input entity.RegisterInput) (*entity.RegisterResponse, error) {
	var resp entity.RegisterResponse
	err := c.do(ctx, &request{op: "register", method: http.MethodPost, path: "/auth/register/", jsonBody: input}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Login exchanges credentials for an identity and tokens. It implements service.AuthClient.
func (c *Client) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	var resp entity.LoginResponse
	err := c.do(ctx, &request{op: "login", method: http.MethodPost, path: "/auth/login/", jsonBody: input}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// ForgotPassword asks the server to email a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*entity.MessageResponse, error) {
	var resp entity.MessageResponse
	err := c.do(ctx, &request{
		op:       "send reset email",
		method:   http.MethodPost,
		path:     "/auth/password-reset/",
		jsonBody: map[string]string{"email": email},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// ResetPassword confirms a reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, input entity.ResetPasswordInput) (*entity.MessageResponse, error) {
	var resp entity.MessageResponse
	err := c.do(ctx, &request{
		op:       "reset password",
		method:   http.MethodPost,
		path:     "/auth/password-reset-confirm/",
		jsonBody: input,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Profile fetches the profile of the token's owner. An empty token falls back
// to the session token.
func (c *Client) Profile(ctx context.Context, token string) (*entity.User, error) {
	var user entity.User
	err := c.do(ctx, &request{
		op:     "fetch profile",
		method: http.MethodGet,
		path:   "/auth/profile/",
		auth:   authToken,
		token:  token,
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, patch entity.ProfilePatch, token string) (*entity.User, error) {
	var user entity.User
	err := c.do(ctx, &request{
		op:       "update profile",
		method:   http.MethodPut,
		path:     "/auth/profile/update/",
		jsonBody: patch,
		auth:     authToken,
		token:    token,
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
