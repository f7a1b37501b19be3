//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoucher(t *testing.T) {
	t.Run("accepts a percent inside bounds", func(t *testing.T) {
		v, err := voucher.NewVoucher(uuid.New(), "SUMMER10", 10, nil, nil, true)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", v.Code())
		assert.Equal(t, 10, v.DiscountPercent())
		assert.True(t, v.IsActive())
	})

	t.Run("rejects out-of-range percents", func(t *testing.T) {
		for _, percent := range []int{0, -5, 101} {
			_, err := voucher.NewVoucher(uuid.New(), "BAD", percent, nil, nil, true)
			assert.ErrorIs(t, err, voucher.ErrInvalidPercent)
		}
	})
}

func TestVoucher_ValidateUsage(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	from := now.Add(-24 * time.Hour)
	to := now.Add(24 * time.Hour)

	build := func(validFrom, validTo *time.Time, active bool) *voucher.Voucher {
		v, err := voucher.NewVoucher(uuid.New(), "SUMMER10", 10, validFrom, validTo, active)
		require.NoError(t, err)
		return v
	}

	t.Run("inside the window", func(t *testing.T) {
		assert.NoError(t, build(&from, &to, true).ValidateUsage(now))
	})

	t.Run("open-ended voucher", func(t *testing.T) {
		assert.NoError(t, build(nil, nil, true).ValidateUsage(now))
	})

	t.Run("inactive", func(t *testing.T) {
		assert.ErrorIs(t, build(&from, &to, false).ValidateUsage(now), voucher.ErrVoucherInactive)
	})

	t.Run("not yet valid", func(t *testing.T) {
		later := now.Add(time.Hour)
		assert.ErrorIs(t, build(&later, &to, true).ValidateUsage(now), voucher.ErrVoucherNotYetValid)
	})

	t.Run("expired", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		assert.ErrorIs(t, build(&from, &earlier, true).ValidateUsage(now), voucher.ErrVoucherExpired)
	})
}

func TestVoucher_IsValidAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	to := now.Add(time.Hour)

	v, err := voucher.NewVoucher(uuid.New(), "SUMMER10", 10, nil, &to, true)
	require.NoError(t, err)

	assert.True(t, v.IsValidAt(now))
	assert.False(t, v.IsValidAt(to.Add(time.Minute)))
}
