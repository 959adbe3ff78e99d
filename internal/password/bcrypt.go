// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/dtroode/recipebox-server/internal/model"
)

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

// Bcrypt hashes passwords with a fixed cost. At most concurrency hash or
// verify operations run at once; the rest wait or give up when their
// context ends.
type Bcrypt struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcrypt creates a Bcrypt hasher. A non-positive concurrency means GOMAXPROCS.
func NewBcrypt(cost, concurrency int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	return &Bcrypt{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(concurrency)),
	}, nil
}

// Hash returns a salted bcrypt hash of plaintext.
func (b *Bcrypt) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", model.NewValidationError("password", "must be at most 72 bytes")
	}

	if err := b.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to wait for hashing slot: %w", err)
	}
	defer b.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A mismatch is (false, nil);
// an unparsable hash yields an error wrapping model.ErrCorruptHash.
func (b *Bcrypt) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("failed to wait for hashing slot: %w", err)
	}
	defer b.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", model.ErrCorruptHash, err)
	}
}
