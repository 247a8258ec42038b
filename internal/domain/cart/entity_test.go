//go:build unit

package cart_test

import (
	"testing"
	"time"

	"preloved-market/internal/domain/cart"
	"preloved-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation(t *testing.T) {
	start := time.Date(2026, 5, 8, 12, 0, 0, 0, time.UTC)
	window := 15 * time.Minute

	t.Run("extension counts from now", func(t *testing.T) {
		r := cart.NewReservation(uuid.New(), uuid.New(), start, window)
		require.Equal(t, start.Add(15*time.Minute), r.ExpiresAt())

		require.NoError(t, r.Extend(start.Add(10*time.Minute), window))
		assert.Equal(t, start.Add(25*time.Minute), r.ExpiresAt())
	})

	t.Run("expiry instant is already released", func(t *testing.T) {
		r := cart.NewReservation(uuid.New(), uuid.New(), start, window)

		assert.False(t, r.IsExpired(start.Add(window-time.Nanosecond)))
		assert.True(t, r.IsExpired(start.Add(window)))
		assert.ErrorIs(t, r.Extend(start.Add(window), window), errs.ErrReservationExpired)
	})

	t.Run("holder check", func(t *testing.T) {
		buyer := uuid.New()
		r := cart.NewReservation(buyer, uuid.New(), start, window)
		assert.True(t, r.HeldBy(buyer))
		assert.False(t, r.HeldBy(uuid.New()))
	})
}
