//go:build unit

package pgconv

import (
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	price := decimal.RequireFromString("1250.50")

	got, err := DecimalPtrFromNumeric(DecimalPtrToNumeric(&price))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, price.Equal(*got))
}

func TestDecimalPtrFromNumeric(t *testing.T) {
	t.Run("null maps to nil", func(t *testing.T) {
		got, err := DecimalPtrFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, err := DecimalPtrFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, ErrInvalidNumeric)
	})

	t.Run("scaled integer", func(t *testing.T) {
		got, err := DecimalPtrFromNumeric(pgtype.Numeric{Int: big.NewInt(1999), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "19.99", got.String())
	})
}

func TestNilableUUID(t *testing.T) {
	assert.False(t, NilableUUIDToPgtype(uuid.Nil).Valid)
	id := uuid.New()
	assert.Equal(t, id, UUIDOrNil(NilableUUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, UUIDOrNil(pgtype.UUID{}))
}
