package usecase

import "errors"

// Domain errors surfaced to the API layer. Services log the underlying
// cause and return these instead of raw store or provider errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has already expired")
	ErrCartNotFound       = errors.New("cart not found for this user")
	ErrOrderNotFound      = errors.New("order not found for this user")
	ErrNoPaymentMethod    = errors.New("the user has no payment method")
)
