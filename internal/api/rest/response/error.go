package response

import (
	"errors"
	"net/http"

	"github.com/dtroode/recipebox-server/internal/model"
)

const (
	msgInternal           = "Internal server error"
	msgUnavailable        = "Service temporarily unavailable, try again"
	msgInvalidCredentials = "Invalid email or password"
	msgDuplicateEmail     = "Email is already registered"
	msgNotFound           = "Recipe not found"
	msgBodyTooLarge       = "Request body too large"
)

type apiError struct {
	status  int
	message string
	headers map[string]string
}

// classify maps an error to what the client is allowed to see. Anything
// unrecognised becomes a generic 500 so storage details never leak.
func classify(err error) apiError {
	var (
		validationErr *model.ValidationError
		authErr       *model.AuthError
		maxBytesErr   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validationErr):
		return apiError{status: http.StatusBadRequest, message: validationErr.Error()}
	case errors.As(err, &maxBytesErr):
		return apiError{status: http.StatusRequestEntityTooLarge, message: msgBodyTooLarge}
	case errors.As(err, &authErr):
		return apiError{
			status:  http.StatusUnauthorized,
			message: "Unauthorized: " + string(authErr.Reason),
			headers: map[string]string{"WWW-Authenticate": "Bearer"},
		}
	case errors.Is(err, model.ErrInvalidCredentials):
		return apiError{status: http.StatusUnauthorized, message: msgInvalidCredentials}
	case errors.Is(err, model.ErrDuplicateEmail):
		return apiError{status: http.StatusConflict, message: msgDuplicateEmail}
	case errors.Is(err, model.ErrNotFound):
		return apiError{status: http.StatusNotFound, message: msgNotFound}
	case errors.Is(err, model.ErrPoolExhausted):
		return apiError{
			status:  http.StatusServiceUnavailable,
			message: msgUnavailable,
			headers: map[string]string{"Retry-After": "1"},
		}
	case errors.Is(err, model.ErrPoolUnavailable):
		return apiError{status: http.StatusServiceUnavailable, message: msgUnavailable}
	default:
		return apiError{status: http.StatusInternalServerError, message: msgInternal}
	}
}
