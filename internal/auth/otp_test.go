package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPIsSixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestInMemoryOTPStore(t *testing.T) {
	ctx := context.Background()

	t.Run("verify consumes the code", func(t *testing.T) {
		store := NewInMemoryOTPStore()
		require.NoError(t, store.Put(ctx, "9876543210", "123456", time.Minute))

		require.NoError(t, store.Verify(ctx, "9876543210", "123456"))
		assert.ErrorIs(t, store.Verify(ctx, "9876543210", "123456"), ErrOTPMismatch)
	})

	t.Run("mismatch does not consume", func(t *testing.T) {
		store := NewInMemoryOTPStore()
		require.NoError(t, store.Put(ctx, "9876543210", "123456", time.Minute))

		assert.ErrorIs(t, store.Verify(ctx, "9876543210", "654321"), ErrOTPMismatch)
		assert.NoError(t, store.Verify(ctx, "9876543210", "123456"))
	})

	t.Run("expired code rejected", func(t *testing.T) {
		store := NewInMemoryOTPStore()
		require.NoError(t, store.Put(ctx, "9876543210", "123456", -time.Second))

		assert.ErrorIs(t, store.Verify(ctx, "9876543210", "123456"), ErrOTPMismatch)
	})

	t.Run("unknown phone rejected", func(t *testing.T) {
		store := NewInMemoryOTPStore()
		assert.ErrorIs(t, store.Verify(ctx, "0000000000", "123456"), ErrOTPMismatch)
	})
}
