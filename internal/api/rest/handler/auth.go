package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dtroode/recipebox-server/internal/api/rest/response"
	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, q model.DBTX, reg model.Registration) (string, model.User, error)
	Login(ctx context.Context, q model.DBTX, email, password string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Older clients send fName and lName.
	LegacyFirstName string `json:"fName"`
	LegacyLastName  string `json:"lName"`
}

func (req registerRequest) registration() model.Registration {
	reg := model.Registration{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if reg.FirstName == "" {
		reg.FirstName = req.LegacyFirstName
	}
	if reg.LastName == "" {
		reg.LastName = req.LegacyLastName
	}
	return reg
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and answers with a session token.
func (h *Auth) Register(r *http.Request) (*response.Response, error) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	lease, ok := h.contextManager.GetLeaseFromContext(r.Context())
	if !ok {
		return nil, errNoLease
	}

	token, user, err := h.authService.Register(r.Context(), lease, req.registration())
	if err != nil {
		return nil, err
	}

	h.logger.Info("Auth handler: account created",
		"user_id", user.ID)

	return response.Created(token, "Account created"), nil
}

// Login answers with a fresh session token. Unknown email and wrong
// password produce the same response.
func (h *Auth) Login(r *http.Request) (*response.Response, error) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	lease, ok := h.contextManager.GetLeaseFromContext(r.Context())
	if !ok {
		return nil, errNoLease
	}

	token, err := h.authService.Login(r.Context(), lease, req.Email, req.Password)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	return response.OK(token, "Logged in"), nil
}

type claimsResponse struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Role      int    `json:"role"`
	ExpiresAt int64  `json:"exp"`
}

// Me echoes the verified identity of the caller.
func (h *Auth) Me(r *http.Request) (*response.Response, error) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		return nil, model.ErrMissingAuthorization
	}

	return response.OK(claimsResponse{
		UserID:    claims.UserID.String(),
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      int(claims.Role),
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, ""), nil
}
