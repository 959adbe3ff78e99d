package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// dummyHash is verified against when the email is unknown, so that both
// login failure paths do the same bcrypt work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

type Auth struct {
	repos        model.Repositories
	passwords    PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	repos model.Repositories,
	passwords PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		repos:        repos,
		passwords:    passwords,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a user on the leased connection q and returns a session
// token for it.
func (a *Auth) Register(ctx context.Context, q model.DBTX, reg model.Registration) (string, model.User, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)

	a.logger.Debug("Auth service: starting user registration",
		"email", reg.Email)

	if err := validateRegistration(reg); err != nil {
		return "", model.User{}, err
	}

	hash, err := a.passwords.Hash(ctx, reg.Password)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return "", model.User{}, err
		}
		a.logger.Error("Auth service: failed to hash password",
			"email", reg.Email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repos.Users(q).Create(ctx, model.User{
		Email:        reg.Email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrDuplicateEmail) {
		a.logger.Info("Auth service: email already registered",
			"email", reg.Email)
		return "", model.User{}, err
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", reg.Email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenService.Issue(user)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"email", reg.Email,
		"user_id", user.ID)

	return token, user, nil
}

// Login verifies email and password and returns a fresh session token.
// An unknown email fails with model.ErrNotFound, a wrong password with
// model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, q model.DBTX, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	if email == "" {
		return "", model.NewValidationError("email", "is required")
	}
	if password == "" {
		return "", model.NewValidationError("password", "is required")
	}

	user, err := a.repos.Users(q).GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		// Burn the same bcrypt work as a real comparison.
		_, _ = a.passwords.Verify(ctx, password, dummyHash)
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return "", fmt.Errorf("user %w", model.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.passwords.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"email", email,
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password",
			"email", email,
			"user_id", user.ID)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"email", email,
		"user_id", user.ID)

	return token, nil
}

func validateRegistration(reg model.Registration) error {
	switch {
	case reg.Email == "":
		return model.NewValidationError("email", "is required")
	case reg.Password == "":
		return model.NewValidationError("password", "is required")
	case reg.FirstName == "":
		return model.NewValidationError("firstName", "is required")
	case reg.LastName == "":
		return model.NewValidationError("lastName", "is required")
	}

	addr, err := mail.ParseAddress(reg.Email)
	if err != nil || addr.Address != reg.Email {
		return model.NewValidationError("email", "is not a valid address")
	}

	return nil
}
