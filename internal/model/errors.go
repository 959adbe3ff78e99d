package model

import "errors"

// Resource errors.
var (
	ErrPoolExhausted   = errors.New("connection pool exhausted")
	ErrPoolUnavailable = errors.New("connection pool unavailable")
)

// Credential and lookup errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCorruptHash        = errors.New("stored password hash is corrupt")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthReason names why a request was not authenticated.
type AuthReason string

const (
	ReasonMissingAuthorization   AuthReason = "missing authorization"
	ReasonMalformedAuthorization AuthReason = "malformed authorization"
	ReasonUnsupportedScheme      AuthReason = "unsupported scheme"
	ReasonTokenExpired           AuthReason = "token expired"
	ReasonInvalidSignature       AuthReason = "invalid token signature"
	ReasonMalformedToken         AuthReason = "malformed token"
)

// AuthError is returned for every rejected authentication attempt.
// Two AuthErrors match under errors.Is when their reasons are equal.
type AuthError struct {
	Reason AuthReason
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return string(e.Reason) + ": " + e.Err.Error()
	}
	return string(e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Reason == e.Reason
}

// Authentication sentinels for errors.Is checks.
var (
	ErrMissingAuthorization   = &AuthError{Reason: ReasonMissingAuthorization}
	ErrMalformedAuthorization = &AuthError{Reason: ReasonMalformedAuthorization}
	ErrUnsupportedScheme      = &AuthError{Reason: ReasonUnsupportedScheme}
	ErrTokenExpired           = &AuthError{Reason: ReasonTokenExpired}
	ErrInvalidSignature       = &AuthError{Reason: ReasonInvalidSignature}
	ErrMalformedToken         = &AuthError{Reason: ReasonMalformedToken}
)
