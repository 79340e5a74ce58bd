package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes login state and account operations.
type SessionHandler struct {
	uc      usecase.AuthUsecase
	session service.SessionStore
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.AuthUsecase, session service.SessionStore) *SessionHandler {
	return &SessionHandler{uc: uc, session: session}
}

// SessionView is the login state returned by GET /api/session.
type SessionView struct {
	LoggedIn       bool         `json:"logged_in"`
	IsAdmin        bool         `json:"is_admin"`
	User           *entity.User `json:"user,omitempty"`
	TokenExpiresAt *time.Time   `json:"token_expires_at,omitempty"`
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c echo.Context) error {
	ctx := c.Request().Context()

	view := SessionView{
		LoggedIn: h.session.IsLoggedIn(ctx),
		IsAdmin:  h.session.IsAdmin(ctx),
	}
	if user, ok := h.session.CurrentUser(ctx); ok {
		view.User = user
	}
	if exp, ok := h.session.AccessTokenExpiry(ctx); ok {
		view.TokenExpiresAt = &exp
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(c echo.Context) error {
	var input entity.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Message)
}

// Register handles POST /api/session/register.
func (h *SessionHandler) Register(c echo.Context) error {
	var input entity.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Logout handles DELETE /api/session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ForgotPassword handles POST /api/session/password-reset.
func (h *SessionHandler) ForgotPassword(c echo.Context) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email")
	}

	output, err := h.uc.ForgotPassword(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Message)
}

// ResetPassword handles POST /api/session/password-reset/confirm.
func (h *SessionHandler) ResetPassword(c echo.Context) error {
	var input entity.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Message)
}

// Profile handles GET /api/profile. A bearer header overrides the session token.
func (h *SessionHandler) Profile(c echo.Context) error {
	user, err := h.uc.GetProfile(c.Request().Context(), bearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile handles PUT /api/profile.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var patch entity.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), patch, bearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}
