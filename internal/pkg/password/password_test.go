//go:build unit

package password_test

import (
	"testing"

	"hotel-frontdesk/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	t.Run("一致するパスワード", func(t *testing.T) {
		assert.NoError(t, h.Compare(hash, "correct-horse"))
	})
	t.Run("一致しないパスワード", func(t *testing.T) {
		assert.ErrorIs(t, h.Compare(hash, "wrong"), password.ErrComparisonFailed)
	})
	t.Run("空のパスワード", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
		assert.ErrorIs(t, h.Compare(hash, ""), password.ErrInvalidPassword)
	})
	t.Run("範囲外のコストは既定値", func(t *testing.T) {
		hash, err := password.NewHasher(100).Hash("x")
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, password.DefaultCost, cost)
	})
}
