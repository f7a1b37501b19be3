//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/user"
	"courtbook/internal/domain/voucher"
	"courtbook/internal/infra"
	"courtbook/internal/integrations/payos"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/shared"
	"courtbook/tests/common/builder"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"
	sharedmock "courtbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type bookingMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	slots    *sharedmock.MockSlotRepository
	bookings *sharedmock.MockBookingRepository
	wallets  *sharedmock.MockWalletRepository
	outbox   *sharedmock.MockOutboxRepository
	router   *commandsmock.MockPaymentRouter
	views    *queriesmock.MockBookingQueries
	cache    *commandsmock.MockSlotCacheInvalidator
}

func newBookingMocks(ctrl *gomock.Controller) *bookingMocks {
	m := &bookingMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		slots:    sharedmock.NewMockSlotRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		wallets:  sharedmock.NewMockWalletRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
		router:   commandsmock.NewMockPaymentRouter(ctrl),
		views:    queriesmock.NewMockBookingQueries(ctrl),
		cache:    commandsmock.NewMockSlotCacheInvalidator(ctrl),
	}

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Wallets().Return(m.wallets).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()

	return m
}

func (m *bookingMocks) newCommands() commands.BookingCommands {
	return commands.NewBookingCommands(m.uow, m.router, m.views, m.cache, clock.NewMockClock(testNow))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func courtSnapshot(b *builder.BookingBuilder) *shared.CourtSnapshot {
	return &shared.CourtSnapshot{
		ID:           b.CourtID,
		Name:         b.CourtName,
		PricePerHour: b.PricePerHour,
		IsActive:     true,
	}
}

func slotSnapshot(b *builder.BookingBuilder) *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:          b.SlotID,
		CourtID:     b.CourtID,
		SlotDate:    b.BookingDate,
		SlotNumber:  1,
		StartTime:   b.SlotStart,
		EndTime:     b.SlotEnd,
		IsAvailable: true,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("wallet booking settles and returns the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(slotSnapshot(b), nil)
		m.slots.EXPECT().Reserve(ctx, gomock.Any(), b.SlotID).Return(true, nil)
		m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(int64(1001), nil)
		m.router.EXPECT().Settle(ctx, m.tx, gomock.Any(), int64(1001)).
			Return(&commands.PaymentOutcome{Settled: true}, nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.confirmed", gomock.Any(), testNow).Return(nil)
		m.cache.EXPECT().Invalidate(ctx, b.CourtID, b.BookingDate)

		view := b.BuildView()
		m.views.EXPECT().GetByID(ctx, b.UserID, user.RoleMember.String(), gomock.Any()).Return(view, nil)

		result, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		require.NoError(t, err)
		assert.Equal(t, view, result.Booking)
		assert.Nil(t, result.PaymentLink)
	})

	t.Run("gateway booking stays pending with a payment link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PaymentMethod = "payos" })
		m := newBookingMocks(ctrl)

		link := "https://pay.example.com/plink-1"
		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(slotSnapshot(b), nil)
		m.slots.EXPECT().Reserve(ctx, gomock.Any(), b.SlotID).Return(true, nil)
		m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(int64(1002), nil)
		m.router.EXPECT().Settle(ctx, m.tx, gomock.Any(), int64(1002)).
			Return(&commands.PaymentOutcome{Settled: false, PaymentLink: &link}, nil)
		m.cache.EXPECT().Invalidate(ctx, b.CourtID, b.BookingDate)
		m.views.EXPECT().GetByID(ctx, b.UserID, user.RoleMember.String(), gomock.Any()).Return(b.BuildView(), nil)

		result, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		require.NoError(t, err)
		require.NotNil(t, result.PaymentLink)
		assert.Equal(t, link, *result.PaymentLink)
	})

	t.Run("losing the slot race yields conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(slotSnapshot(b), nil)
		m.slots.EXPECT().Reserve(ctx, gomock.Any(), b.SlotID).Return(false, nil)

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("duplicate live booking yields conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(slotSnapshot(b), nil)
		m.slots.EXPECT().Reserve(ctx, gomock.Any(), b.SlotID).Return(true, nil)
		m.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("unknown court", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(nil, notFoundErr())

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrCourtNotFound)
	})

	t.Run("inactive court is not bookable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		court := courtSnapshot(b)
		court.IsActive = false
		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(court, nil)

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrCourtNotBookable)
	})

	t.Run("slot on another court reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		s := slotSnapshot(b)
		s.CourtID = uuid.New()
		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(s, nil)

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("blocked slot is rejected before reserving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)

		s := slotSnapshot(b)
		s.IsAvailable = false
		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(s, nil)

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("expired voucher is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		code := "OLD10"
		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Voucher = &booking.VoucherSpec{Code: code, DiscountPercent: 10, IsActive: false}
			})
		m := newBookingMocks(ctrl)

		m.reads.EXPECT().CourtByID(ctx, b.CourtID).Return(courtSnapshot(b), nil)
		m.reads.EXPECT().SlotByID(ctx, b.SlotID).Return(slotSnapshot(b), nil)
		m.reads.EXPECT().VoucherByCode(ctx, code).Return(&shared.VoucherSnapshot{
			ID:              uuid.New(),
			Code:            code,
			DiscountPercent: 10,
			IsActive:        false,
		}, nil)

		_, err := m.newCommands().CreateBooking(ctx, b.BuildCreateRequestDTO(), b.UserID)
		assert.ErrorIs(t, err, commands.ErrInvalidVoucher)
		assert.ErrorIs(t, err, voucher.ErrVoucherInactive)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	cancelCase := func(t *testing.T, untilStart time.Duration, expectPercent int, expectAmount int64) {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.SlotStart = testNow.Add(untilStart)
				b.SlotEnd = b.SlotStart.Add(time.Hour)
				b.Status = booking.StatusConfirmed
			})
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusConfirmed, booking.StatusCancelled).
			Return(int64(1), nil)
		m.slots.EXPECT().Release(ctx, gomock.Any(), snap.SlotID).Return(nil)
		if expectAmount > 0 {
			m.wallets.EXPECT().Credit(ctx, gomock.Any(), snap.UserID, expectAmount).Return(nil)
			m.wallets.EXPECT().RecordTransaction(ctx, gomock.Any(), gomock.Any()).Return(nil)
		}
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.cancelled", gomock.Any(), testNow).Return(nil)
		m.cache.EXPECT().Invalidate(ctx, snap.CourtID, snap.SlotDate)

		result, err := m.newCommands().CancelBooking(ctx, snap.ID, snap.UserID, user.RoleMember)
		require.NoError(t, err)
		assert.Equal(t, expectPercent, result.RefundPercent)
		assert.Equal(t, expectAmount, result.RefundAmount)
	}

	t.Run("full refund two hours ahead", func(t *testing.T) {
		cancelCase(t, 3*time.Hour, 100, 120000)
	})

	t.Run("half refund between one and two hours", func(t *testing.T) {
		cancelCase(t, 90*time.Minute, 50, 60000)
	})

	t.Run("no refund under one hour", func(t *testing.T) {
		cancelCase(t, 30*time.Minute, 0, 0)
	})

	t.Run("pending gateway booking cancels without refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.PaymentMethod = "payos"
				b.SlotStart = testNow.Add(24 * time.Hour)
				b.SlotEnd = b.SlotStart.Add(time.Hour)
			})
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusPending, booking.StatusCancelled).
			Return(int64(1), nil)
		m.slots.EXPECT().Release(ctx, gomock.Any(), snap.SlotID).Return(nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.cancelled", gomock.Any(), testNow).Return(nil)
		m.cache.EXPECT().Invalidate(ctx, snap.CourtID, snap.SlotDate)

		result, err := m.newCommands().CancelBooking(ctx, snap.ID, snap.UserID, user.RoleMember)
		require.NoError(t, err)
		assert.Equal(t, 0, result.RefundPercent)
		assert.Zero(t, result.RefundAmount)
	})

	t.Run("confirmed gateway refund goes through the outbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.PaymentMethod = "payos"
				b.Status = booking.StatusConfirmed
				b.SlotStart = testNow.Add(24 * time.Hour)
				b.SlotEnd = b.SlotStart.Add(time.Hour)
			})
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusConfirmed, booking.StatusCancelled).
			Return(int64(1), nil)
		m.slots.EXPECT().Release(ctx, gomock.Any(), snap.SlotID).Return(nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "refund.requested", gomock.Any(), testNow).Return(nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.cancelled", gomock.Any(), testNow).Return(nil)
		m.cache.EXPECT().Invalidate(ctx, snap.CourtID, snap.SlotDate)

		result, err := m.newCommands().CancelBooking(ctx, snap.ID, snap.UserID, user.RoleMember)
		require.NoError(t, err)
		assert.Equal(t, 100, result.RefundPercent)
		assert.Equal(t, int64(120000), result.RefundAmount)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder()
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().CancelBooking(ctx, snap.ID, uuid.New(), user.RoleMember)
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
	})

	t.Run("admin may cancel on behalf of the member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.SlotStart = testNow.Add(30 * time.Minute)
				b.SlotEnd = b.SlotStart.Add(time.Hour)
			})
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusPending, booking.StatusCancelled).
			Return(int64(1), nil)
		m.slots.EXPECT().Release(ctx, gomock.Any(), snap.SlotID).Return(nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.cancelled", gomock.Any(), testNow).Return(nil)
		m.cache.EXPECT().Invalidate(ctx, snap.CourtID, snap.SlotDate)

		_, err := m.newCommands().CancelBooking(ctx, snap.ID, uuid.New(), user.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("done booking is not cancellable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Status = booking.StatusDone })
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().CancelBooking(ctx, snap.ID, snap.UserID, user.RoleMember)
		assert.ErrorIs(t, err, commands.ErrBookingNotCancellable)
	})
}

func TestResolveGatewayPayment(t *testing.T) {
	ctx := context.Background()

	paidEvent := func(orderCode int64) *payos.WebhookEvent {
		return &payos.WebhookEvent{
			Code:    "00",
			Success: true,
			Data:    payos.WebhookData{OrderCode: orderCode, Code: "00"},
		}
	}

	t.Run("paid event confirms the pending booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PaymentMethod = "payos" })
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByOrderCode(ctx, int64(1001)).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusPending, booking.StatusConfirmed).
			Return(int64(1), nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.confirmed", gomock.Any(), testNow).Return(nil)

		assert.NoError(t, m.newCommands().ResolveGatewayPayment(ctx, paidEvent(1001)))
	})

	t.Run("replay is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.PaymentMethod = "payos"
				b.Status = booking.StatusConfirmed
			})
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByOrderCode(ctx, int64(1001)).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusPending, booking.StatusConfirmed).
			Return(int64(0), nil)

		assert.NoError(t, m.newCommands().ResolveGatewayPayment(ctx, paidEvent(1001)))
	})

	t.Run("unknown order code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		m.reads.EXPECT().BookingByOrderCode(ctx, int64(9999)).Return(nil, notFoundErr())

		err := m.newCommands().ResolveGatewayPayment(ctx, paidEvent(9999))
		assert.ErrorIs(t, err, commands.ErrWebhookOrderUnknown)
	})

	declinedEvent := func(orderCode int64) *payos.WebhookEvent {
		return &payos.WebhookEvent{
			Code:    "00",
			Success: true,
			Data:    payos.WebhookData{OrderCode: orderCode, Code: "01"},
		}
	}

	t.Run("declined payment cancels the booking and frees the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PaymentMethod = "payos" })
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByOrderCode(ctx, int64(1001)).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusPending, booking.StatusCancelled).
			Return(int64(1), nil)
		m.slots.EXPECT().Release(ctx, gomock.Any(), snap.SlotID).Return(nil)
		m.outbox.EXPECT().CreateJob(ctx, gomock.Any(), "email", "booking.cancelled", gomock.Any(), testNow).Return(nil)
		m.cache.EXPECT().Invalidate(ctx, snap.CourtID, snap.SlotDate)

		assert.NoError(t, m.newCommands().ResolveGatewayPayment(ctx, declinedEvent(1001)))
	})

	t.Run("declined replay on a settled booking is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.PaymentMethod = "payos"
				b.Status = booking.StatusCancelled
			})
		m := newBookingMocks(ctrl)
		snap := b.BuildSnapshot()

		m.reads.EXPECT().BookingByOrderCode(ctx, int64(1001)).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusPending, booking.StatusCancelled).
			Return(int64(0), nil)

		assert.NoError(t, m.newCommands().ResolveGatewayPayment(ctx, declinedEvent(1001)))
	})

	t.Run("declined event for an unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		m.reads.EXPECT().BookingByOrderCode(ctx, int64(9999)).Return(nil, notFoundErr())

		err := m.newCommands().ResolveGatewayPayment(ctx, declinedEvent(9999))
		assert.ErrorIs(t, err, commands.ErrWebhookOrderUnknown)
	})
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes ended bookings and expires stale pending ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		staleSlots := []uuid.UUID{uuid.New(), uuid.New()}

		m.bookings.EXPECT().PromoteEndedToDone(ctx, gomock.Any(), testNow).Return(int64(3), nil)
		m.bookings.EXPECT().ExpireStalePending(ctx, gomock.Any(), testNow.Add(-15*time.Minute)).Return(staleSlots, nil)
		for _, id := range staleSlots {
			m.slots.EXPECT().Release(ctx, gomock.Any(), id).Return(nil)
		}

		result, err := m.newCommands().Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.PromotedToDone)
		assert.Equal(t, 2, result.ExpiredPending)
	})

	t.Run("quiet sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newBookingMocks(ctrl)
		m.bookings.EXPECT().PromoteEndedToDone(ctx, gomock.Any(), testNow).Return(int64(0), nil)
		m.bookings.EXPECT().ExpireStalePending(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		result, err := m.newCommands().Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, result.PromotedToDone)
		assert.Zero(t, result.ExpiredPending)
	})
}
