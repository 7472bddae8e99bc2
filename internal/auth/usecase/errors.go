package usecase

import "errors"

var (
	// ErrPasswordMismatch is returned when registration password and
	// confirmation differ.
	ErrPasswordMismatch = errors.New("password does not match with confirmation")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers tampered, unknown and expired single-use tokens
	// uniformly; the caller can never distinguish which.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongPassword is returned when the current password check fails on a
	// password update.
	ErrWrongPassword = errors.New("password is incorrect")
	// ErrUserNotFound is returned when no user matches the given identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrMailDelivery is returned when outbound mail fails; token state has
	// already been rolled back when it is returned.
	ErrMailDelivery = errors.New("email could not be sent")
)
