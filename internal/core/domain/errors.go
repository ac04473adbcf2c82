package domain

import "errors"

var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password" so the response never reveals whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrEmailTaken         = errors.New("email already registered")

	// ErrInvalidRefreshToken covers never-issued, expired, tampered and
	// already-rotated refresh tokens alike.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrMissingRefreshToken = errors.New("refresh token required")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("invalid token")

	ErrForbidden        = errors.New("access denied")
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNotACustomer     = errors.New("user is not a customer")
	ErrNotAnAdmin       = errors.New("user is not an admin")
)
