package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dtroode/recipebox-server/internal/model"
)

var errNoLease = errors.New("request has no leased connection")

// decodeJSON reads the request body into v. Unknown fields are ignored.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return model.NewValidationError("body", "is required")
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return err
	case errors.Is(err, io.EOF):
		return model.NewValidationError("body", "is required")
	default:
		return model.NewValidationError("body", "is not valid JSON")
	}
}
