package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dtroode/recipebox-server/internal/api/rest/response"
	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// TokenVerifier resolves a bearer token into the caller's claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (model.Claims, error)
}

// Authenticate validates bearer tokens and injects claims into context.
// A rejected request never reaches the wrapped handler.
type Authenticate struct {
	tokenVerifier  TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenVerifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenVerifier: tokenVerifier, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle(next response.HandlerFunc) response.HandlerFunc {
	return func(r *http.Request) (*response.Response, error) {
		claims, err := m.authenticate(r)
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			return nil, err
		}

		return next(r.WithContext(m.contextManager.SetClaimsToContext(r.Context(), claims)))
	}
}

func (m *Authenticate) authenticate(r *http.Request) (model.Claims, error) {
	token, err := bearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return model.Claims{}, err
	}

	claims, err := m.tokenVerifier.Verify(r.Context(), token)
	if err != nil {
		var authErr *model.AuthError
		if errors.As(err, &authErr) {
			return model.Claims{}, err
		}
		return model.Claims{}, &model.AuthError{Reason: model.ReasonMalformedToken, Err: err}
	}

	return claims, nil
}

// bearerToken extracts the token from an Authorization header of the exact
// form "Bearer <token>". The scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", model.ErrMissingAuthorization
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok {
		return "", model.ErrMalformedAuthorization
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", model.ErrUnsupportedScheme
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", model.ErrMalformedAuthorization
	}

	return token, nil
}
