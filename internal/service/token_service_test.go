package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/recipebox-server/internal/mocks"
	"github.com/dtroode/recipebox-server/internal/model"
	"github.com/dtroode/recipebox-server/internal/testutil"
	"github.com/dtroode/recipebox-server/internal/token"
)

func TestTokenService_Issue(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "a@x.com", FirstName: "A", LastName: "B"}
	now := time.Unix(1_700_000_000, 0)

	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", model.Claims{
		UserID:    user.ID,
		Email:     "a@x.com",
		FirstName: "A",
		LastName:  "B",
		Role:      model.RoleMember,
	}, now.Add(time.Hour)).Return("tok", nil).Once()

	svc := NewTokenService(manager, time.Hour, testutil.MakeNoopLogger())
	svc.now = func() time.Time { return now }

	tok, err := svc.Issue(user)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestTokenService_Issue_TruncatesExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 900_000_000)

	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", mock.Anything, time.Unix(1_700_003_600, 0)).Return("tok", nil).Once()

	svc := NewTokenService(manager, time.Hour, testutil.MakeNoopLogger())
	svc.now = func() time.Time { return now }

	_, err := svc.Issue(model.User{ID: uuid.New()})
	require.NoError(t, err)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("Issue", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	svc := NewTokenService(manager, time.Hour, testutil.MakeNoopLogger())

	_, err := svc.Issue(model.User{ID: uuid.New()})
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_Verify_PassesAuthErrorsThrough(t *testing.T) {
	manager := servermocks.NewTokenManager(t)
	manager.On("Verify", "expired").Return(model.Claims{}, &model.AuthError{Reason: model.ReasonTokenExpired}).Once()

	svc := NewTokenService(manager, time.Hour, testutil.MakeNoopLogger())

	_, err := svc.Verify(context.Background(), "expired")
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestTokenService_WithJWT_Roundtrip(t *testing.T) {
	svc := NewTokenService(token.NewJWT("secret"), time.Hour, testutil.MakeNoopLogger())
	user := model.User{ID: uuid.New(), Email: "a@x.com", FirstName: "A", LastName: "B"}

	tok, err := svc.Issue(user)
	require.NoError(t, err)

	claims, err := svc.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.RoleMember, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 2*time.Second)
	assert.Zero(t, claims.ExpiresAt.Nanosecond())
}
