//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentWallet, actual.PaymentMethod())
		assert.Equal(t, int64(120000), actual.Charge().Amount().Amount())
		assert.Equal(t, int64(120000), actual.Charge().Payable().Amount())
		assert.Nil(t, actual.Charge().DiscountedAmount())
		assert.Nil(t, actual.PaymentLink())
	})

	t.Run("amount scales with slot hours", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.SlotHours = 1.5 }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(180000), actual.Charge().Amount().Amount())
	})

	t.Run("invalid payment method is rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PaymentMethod = "cash" }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)
	})
}

func TestNewBooking_Voucher(t *testing.T) {
	voucher := func(mutate func(*booking.VoucherSpec)) *booking.VoucherSpec {
		v := &booking.VoucherSpec{
			Code:            "SUMMER20",
			DiscountPercent: 20,
			IsActive:        true,
		}
		if mutate != nil {
			mutate(v)
		}
		return v
	}

	t.Run("applies discount snapshot", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Voucher = voucher(nil) }).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(120000), actual.Charge().Amount().Amount())
		require.NotNil(t, actual.Charge().DiscountedAmount())
		assert.Equal(t, int64(96000), *actual.Charge().DiscountedAmount())
		assert.Equal(t, int64(96000), actual.Charge().Payable().Amount())
		require.NotNil(t, actual.Charge().VoucherCode())
		assert.Equal(t, "SUMMER20", *actual.Charge().VoucherCode())
	})

	testCases := []struct {
		name   string
		mutate func(*booking.VoucherSpec)
		errIs  error
	}{
		{
			name:   "inactive voucher",
			mutate: func(v *booking.VoucherSpec) { v.IsActive = false },
			errIs:  booking.ErrInvalidVoucher,
		},
		{
			name: "not yet valid",
			mutate: func(v *booking.VoucherSpec) {
				from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
				v.ValidFrom = &from
			},
			errIs: booking.ErrInvalidVoucher,
		},
		{
			name: "already expired",
			mutate: func(v *booking.VoucherSpec) {
				to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
				v.ValidTo = &to
			},
			errIs: booking.ErrInvalidVoucher,
		},
		{
			name:   "zero percent discount",
			mutate: func(v *booking.VoucherSpec) { v.DiscountPercent = 0 },
			errIs:  booking.ErrInvalidVoucher,
		},
		{
			name:   "discount above 100",
			mutate: func(v *booking.VoucherSpec) { v.DiscountPercent = 101 },
			errIs:  booking.ErrInvalidVoucher,
		},
		{
			name:   "full 100 percent discount",
			mutate: func(v *booking.VoucherSpec) { v.DiscountPercent = 100 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().
				With(func(b *builder.BookingBuilder) { b.Voucher = voucher(tc.mutate) }).
				BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBooking_StateMachine(t *testing.T) {
	newPending := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("pending can confirm", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		assert.True(t, b.IsConfirmed())
	})

	t.Run("pending can cancel", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Cancel())
		assert.True(t, b.IsCancelled())
	})

	t.Run("confirmed can cancel", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Cancel())
		assert.True(t, b.IsCancelled())
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b := newPending(t)
		slotEnd := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		err := b.Complete(slotEnd, slotEnd.Add(time.Minute))
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("confirmed completes only after slot end", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm())
		slotEnd := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		err := b.Complete(slotEnd, slotEnd.Add(-time.Minute))
		assert.ErrorIs(t, err, booking.ErrNotYetEnded)
		assert.True(t, b.IsConfirmed())

		require.NoError(t, b.Complete(slotEnd, slotEnd.Add(time.Minute)))
		assert.True(t, b.IsDone())
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		cancelled := newPending(t)
		require.NoError(t, cancelled.Cancel())
		assert.ErrorIs(t, cancelled.Confirm(), booking.ErrBookingTerminal)
		assert.ErrorIs(t, cancelled.Cancel(), booking.ErrBookingTerminal)

		done := newPending(t)
		require.NoError(t, done.Confirm())
		slotEnd := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, done.Complete(slotEnd, slotEnd.Add(time.Minute)))
		assert.ErrorIs(t, done.Cancel(), booking.ErrBookingTerminal)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusDone, false},
		{booking.StatusConfirmed, booking.StatusDone, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusDone, booking.StatusCancelled, false},
		{booking.StatusDone, booking.StatusConfirmed, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestRefundPercent(t *testing.T) {
	testCases := []struct {
		name       string
		untilStart time.Duration
		expect     int
	}{
		{"well before start", 24 * time.Hour, 100},
		{"exactly two hours", 2 * time.Hour, 100},
		{"just under two hours", 2*time.Hour - time.Second, 50},
		{"exactly one hour", 1 * time.Hour, 50},
		{"just under one hour", 1*time.Hour - time.Second, 0},
		{"at start", 0, 0},
		{"already started", -30 * time.Minute, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, booking.RefundPercent(tc.untilStart))
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})

	t.Run("percent rounds down", func(t *testing.T) {
		m, err := booking.NewMoney(99)
		require.NoError(t, err)
		assert.Equal(t, int64(49), m.Percent(50).Amount())
		assert.Equal(t, int64(99), m.Percent(100).Amount())
		assert.Equal(t, int64(0), m.Percent(0).Amount())
	})

	t.Run("discount rounds down", func(t *testing.T) {
		m, err := booking.NewMoney(99)
		require.NoError(t, err)
		assert.Equal(t, int64(49), m.ApplyPercentDiscount(50).Amount())
		assert.Equal(t, int64(0), m.ApplyPercentDiscount(100).Amount())
		assert.Equal(t, int64(99), m.ApplyPercentDiscount(0).Amount())
	})
}
