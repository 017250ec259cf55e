package auth

import "errors"

// Sentinel errors for token parsing.
var (
	// ErrTokenMalformed is returned when a token cannot be parsed.
	ErrTokenMalformed = errors.New("auth: token is malformed")

	// ErrTokenExpired is returned when a token's exp claim has passed.
	ErrTokenExpired = errors.New("auth: token is expired")

	// ErrTokenInvalid is returned when a token fails signature, issuer or
	// audience validation.
	ErrTokenInvalid = errors.New("auth: token is invalid")
)
