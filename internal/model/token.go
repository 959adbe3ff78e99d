package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse role marker embedded in session tokens.
type Role int

// RoleMember is assigned to every registered user.
const RoleMember Role = 4

// Claims is the identity snapshot carried by a session token.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      Role
	ExpiresAt time.Time
}

// TokenManager signs and verifies session tokens.
type TokenManager interface {
	Issue(claims Claims, expiresAt time.Time) (string, error)
	Verify(token string) (Claims, error)
}
