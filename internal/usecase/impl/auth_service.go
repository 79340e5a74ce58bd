package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	auth     service.AuthClient
	accounts repository.AccountRepository
	session  service.SessionStore
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	auth service.AuthClient,
	accounts repository.AccountRepository,
	session service.SessionStore,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		auth:     auth,
		accounts: accounts,
		session:  session,
		logger:   logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// Register creates the account and logs the new user in.
func (srv *authService) Register(ctx context.Context, input entity.RegisterInput) (*entity.RegisterResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	resp, err := srv.accounts.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := srv.session.Save(ctx, resp.User, resp.Tokens); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	srv.log(ctx).Info("User registered", slog.Int64("user_id", resp.User.ID))

	return resp, nil
}

// Login authenticates through the configured AuthClient and stores the
// session. A session that cannot be persisted is logged and the login still
// succeeds, so the demo strategies never reject.
func (srv *authService) Login(ctx context.Context, input entity.LoginInput) (*entity.LoginResponse, error) {
	resp, err := srv.auth.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := srv.session.Save(ctx, resp.User, resp.Tokens); err != nil {
		srv.log(ctx).Warn("Failed to store session, continuing without it",
			slog.Int64("user_id", resp.User.ID),
			slog.Any("error", err),
		)
	}
	srv.log(ctx).Info("User logged in",
		slog.Int64("user_id", resp.User.ID),
		slog.Bool("admin", resp.User.IsAdmin()),
	)

	return resp, nil
}

// Logout forgets the stored session. The server is not contacted.
func (srv *authService) Logout(ctx context.Context) error {
	return srv.session.Logout(ctx)
}

func (srv *authService) ForgotPassword(ctx context.Context, email string) (*entity.MessageResponse, error) {
	if err := validateVar(email, "required,email"); err != nil {
		return nil, err
	}

	return srv.accounts.ForgotPassword(ctx, email)
}

func (srv *authService) ResetPassword(ctx context.Context, input entity.ResetPasswordInput) (*entity.MessageResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return srv.accounts.ResetPassword(ctx, input)
}

func (srv *authService) GetProfile(ctx context.Context, token string) (*entity.User, error) {
	return srv.accounts.Profile(ctx, token)
}

// UpdateProfile applies patch and, when the stored session belongs to the
// same user, refreshes the stored user record.
func (srv *authService) UpdateProfile(ctx context.Context, patch entity.ProfilePatch, token string) (*entity.User, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	user, err := srv.accounts.UpdateProfile(ctx, patch, token)
	if err != nil {
		return nil, err
	}

	current, ok := srv.session.CurrentUser(ctx)
	if !ok || current.ID != user.ID {
		return user, nil
	}
	access, _ := srv.session.AccessToken(ctx)
	refresh, _ := srv.session.RefreshToken(ctx)
	if err := srv.session.Save(ctx, *user, entity.AuthTokens{Access: access, Refresh: refresh}); err != nil {
		srv.log(ctx).Warn("Failed to refresh stored user", slog.Any("error", err))
	}

	return user, nil
}
