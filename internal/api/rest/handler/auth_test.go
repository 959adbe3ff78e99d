package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/recipebox-server/internal/api/rest/context"
	"github.com/dtroode/recipebox-server/internal/mocks"
	"github.com/dtroode/recipebox-server/internal/model"
	"github.com/dtroode/recipebox-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	lease := &stubLease{}
	user := model.User{ID: uuid.New(), Email: "cook@example.com"}

	tests := []struct {
		name       string
		body       string
		wantReg    *model.Registration
		serviceErr error
		wantStatus int
		wantErr    error
	}{
		{
			name:       "current field names",
			body:       `{"email":"cook@example.com","password":"secret","firstName":"Julia","lastName":"Child"}`,
			wantReg:    &model.Registration{Email: "cook@example.com", Password: "secret", FirstName: "Julia", LastName: "Child"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "legacy field names",
			body:       `{"email":"cook@example.com","password":"secret","fName":"Julia","lName":"Child","extra":true}`,
			wantReg:    &model.Registration{Email: "cook@example.com", Password: "secret", FirstName: "Julia", LastName: "Child"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"cook@example.com","password":"secret","firstName":"Julia","lastName":"Child"}`,
			wantReg:    &model.Registration{Email: "cook@example.com", Password: "secret", FirstName: "Julia", LastName: "Child"},
			serviceErr: model.ErrDuplicateEmail,
			wantErr:    model.ErrDuplicateEmail,
		},
		{
			name:    "invalid json",
			body:    `{"email":`,
			wantErr: &model.ValidationError{},
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: &model.ValidationError{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			if tt.wantReg != nil {
				svc.On("Register", mock.Anything, lease, *tt.wantReg).Return("token", user, tt.serviceErr)
			}
			cm := restctx.NewManager()
			h := NewAuth(svc, cm, testutil.MakeNoopLogger())

			resp, err := h.Register(newRequest(http.MethodPost, "/register", tt.body, cm, withLease(lease)))

			if tt.wantErr != nil {
				require.Error(t, err)
				var verr *model.ValidationError
				if errors.As(tt.wantErr, &verr) {
					assert.ErrorAs(t, err, &verr)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "token", resp.Data)
			assert.Equal(t, "Account created", resp.Msg)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	lease := &stubLease{}
	body := `{"email":"cook@example.com","password":"secret"}`

	tests := []struct {
		name       string
		serviceErr error
		wantErr    error
	}{
		{name: "success"},
		{name: "wrong password", serviceErr: model.ErrInvalidCredentials, wantErr: model.ErrInvalidCredentials},
		{name: "unknown email looks like wrong password", serviceErr: fmt.Errorf("user %w", model.ErrNotFound), wantErr: model.ErrInvalidCredentials},
		{name: "storage failure", serviceErr: errors.New("connection reset"), wantErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			token := ""
			if tt.serviceErr == nil {
				token = "token"
			}
			svc.On("Login", mock.Anything, lease, "cook@example.com", "secret").Return(token, tt.serviceErr)
			cm := restctx.NewManager()
			h := NewAuth(svc, cm, testutil.MakeNoopLogger())

			resp, err := h.Login(newRequest(http.MethodPost, "/log-in", body, cm, withLease(lease)))

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, model.ErrInvalidCredentials) {
					assert.ErrorIs(t, err, model.ErrInvalidCredentials)
					assert.NotErrorIs(t, err, model.ErrNotFound)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.Status)
			assert.Equal(t, "token", resp.Data)
			assert.Equal(t, "Logged in", resp.Msg)
		})
	}
}

func TestAuth_NoLease(t *testing.T) {
	svc := mocks.NewAuthService(t)
	cm := restctx.NewManager()
	h := NewAuth(svc, cm, testutil.MakeNoopLogger())

	_, err := h.Login(newRequest(http.MethodPost, "/log-in", `{"email":"a@b.c","password":"x"}`, cm))
	assert.ErrorIs(t, err, errNoLease)
}

func TestAuth_Me(t *testing.T) {
	cm := restctx.NewManager()
	h := NewAuth(mocks.NewAuthService(t), cm, testutil.MakeNoopLogger())
	claims := model.Claims{
		UserID:    uuid.New(),
		Email:     "cook@example.com",
		FirstName: "Julia",
		LastName:  "Child",
		Role:      model.RoleMember,
		ExpiresAt: time.Unix(1700000000, 0),
	}

	resp, err := h.Me(newRequest(http.MethodGet, "/me", "", cm, withClaims(claims)))
	require.NoError(t, err)
	assert.Equal(t, claimsResponse{
		UserID:    claims.UserID.String(),
		Email:     "cook@example.com",
		FirstName: "Julia",
		LastName:  "Child",
		Role:      4,
		ExpiresAt: 1700000000,
	}, resp.Data)

	_, err = h.Me(newRequest(http.MethodGet, "/me", "", cm))
	assert.ErrorIs(t, err, model.ErrMissingAuthorization)
}
