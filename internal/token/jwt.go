package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/recipebox-server/internal/model"
)

// Claims represents the JWT payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID  `json:"userId"`
	Email     string     `json:"email"`
	FirstName string     `json:"fname"`
	LastName  string     `json:"lname"`
	Role      model.Role `json:"role"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: []byte(secretKey), now: time.Now}
}

// ErrSubSecondExpiry is returned by Issue when expiresAt is not a whole
// second. The exp claim carries seconds only.
var ErrSubSecondExpiry = errors.New("expiry must be a whole second")

// Issue signs claims with an expiry of expiresAt, which must be a whole
// second.
func (j *JWT) Issue(claims model.Claims, expiresAt time.Time) (string, error) {
	if expiresAt.Nanosecond() != 0 {
		return "", fmt.Errorf("failed to issue token: %w", ErrSubSecondExpiry)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(j.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Failures are *model.AuthError with reason expired, invalid signature
// or malformed token.
func (j *JWT) Verify(tokenString string) (model.Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.Claims{}, classify(err)
	}
	if claims.UserID == uuid.Nil {
		return model.Claims{}, &model.AuthError{Reason: model.ReasonMalformedToken, Err: errors.New("token has no user id")}
	}

	return model.Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &model.AuthError{Reason: model.ReasonTokenExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &model.AuthError{Reason: model.ReasonInvalidSignature, Err: err}
	default:
		return &model.AuthError{Reason: model.ReasonMalformedToken, Err: err}
	}
}
