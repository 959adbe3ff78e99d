package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// TokenService issues session tokens for users and verifies presented
// ones. Verified claims are a snapshot: they are not re-checked against
// the user store.
type TokenService struct {
	manager model.TokenManager
	ttl     time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, ttl time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, ttl: ttl, now: time.Now, logger: logger}
}

// Issue creates a token for user that expires after the configured TTL,
// rounded down to a whole second.
func (s *TokenService) Issue(user model.User) (string, error) {
	claims := model.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      model.RoleMember,
	}

	token, err := s.manager.Issue(claims, s.now().Add(s.ttl).Truncate(time.Second))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// Verify returns the claims of a valid token or a *model.AuthError.
func (s *TokenService) Verify(_ context.Context, token string) (model.Claims, error) {
	claims, err := s.manager.Verify(token)
	if err != nil {
		s.logger.Debug("Token service: token rejected", "error", err.Error())
		return model.Claims{}, err
	}
	return claims, nil
}
