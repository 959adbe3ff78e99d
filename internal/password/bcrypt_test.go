package password

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/recipebox-server/internal/model"
)

func newTestHasher(t *testing.T, concurrency int) *Bcrypt {
	t.Helper()
	h, err := NewBcrypt(bcrypt.MinCost, concurrency)
	require.NoError(t, err)
	return h
}

func TestNewBcrypt_CostRange(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost-1, 1)
	require.Error(t, err)

	_, err = NewBcrypt(bcrypt.MaxCost+1, 1)
	require.Error(t, err)

	h, err := NewBcrypt(10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, h.cost)
}

func TestBcrypt_HashVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHasher(t, 2)

	hash, err := h.Hash(ctx, "secret")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secret")

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	ok, err := h.Verify(ctx, "secret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(ctx, "Secret", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_HashIsSalted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHasher(t, 2)

	first, err := h.Hash(ctx, "secret")
	require.NoError(t, err)
	second, err := h.Hash(ctx, "secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_Verify_CorruptHash(t *testing.T) {
	t.Parallel()

	h := newTestHasher(t, 1)

	for _, stored := range []string{"", "not-a-hash", "$2a$10$short"} {
		ok, err := h.Verify(context.Background(), "secret", stored)
		require.Error(t, err, stored)
		assert.ErrorIs(t, err, model.ErrCorruptHash)
		assert.False(t, ok)
	}
}

func TestBcrypt_Hash_TooLong(t *testing.T) {
	t.Parallel()

	h := newTestHasher(t, 1)

	_, err := h.Hash(context.Background(), strings.Repeat("a", MaxLength+1))
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestBcrypt_WaitHonorsContext(t *testing.T) {
	t.Parallel()

	h := newTestHasher(t, 1)
	require.NoError(t, h.sem.Acquire(context.Background(), 1))
	defer h.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Hash(ctx, "secret")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = h.Verify(ctx, "secret", "$2a$04$abc")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBcrypt_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newTestHasher(t, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := h.Hash(ctx, "secret")
			assert.NoError(t, err)
			ok, err := h.Verify(ctx, "secret", hash)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}
