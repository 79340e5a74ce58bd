package entity

// AuthTokens is the bearer credential pair issued on login and registration.
type AuthTokens struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// LoginInput are the credentials submitted by the login form.
type LoginInput struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	User    User       `json:"user"`
	Tokens  AuthTokens `json:"tokens"`
	Message string     `json:"message"`
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	User    User       `json:"user"`
	Tokens  AuthTokens `json:"tokens"`
	Message string     `json:"message"`
}

// ResetPasswordInput confirms a password reset with the emailed token.
type ResetPasswordInput struct {
	Token              string `json:"token" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required,eqfield=NewPassword"`
}

// MessageResponse is the `{"message": ...}` document returned by password endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
