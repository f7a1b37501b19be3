//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/feedback"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/shared"
	"courtbook/tests/common/builder"
	sharedmock "courtbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type feedbackMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	feedback *sharedmock.MockFeedbackRepository
}

func newFeedbackMocks(ctrl *gomock.Controller) *feedbackMocks {
	m := &feedbackMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		feedback: sharedmock.NewMockFeedbackRepository(ctrl),
	}
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Feedback().Return(m.feedback).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()
	return m
}

func (m *feedbackMocks) newCommands() commands.FeedbackCommands {
	return commands.NewFeedbackCommands(m.uow, clock.NewMockClock(testNow))
}

func TestUpsertFeedback(t *testing.T) {
	ctx := context.Background()
	req := reqdto.UpsertFeedbackRequest{Rating: 5, Comment: "great court"}

	doneSnapshot := func() *shared.BookingSnapshot {
		return builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Status = booking.StatusDone
				b.SlotStart = testNow.Add(-2 * time.Hour)
				b.SlotEnd = testNow.Add(-time.Hour)
			}).
			BuildSnapshot()
	}

	t.Run("first review on a done booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := doneSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.reads.EXPECT().FeedbackByBookingID(ctx, snap.ID).Return(nil, notFoundErr())
		m.feedback.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := m.newCommands().UpsertFeedback(ctx, snap.ID, snap.UserID, req)
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 5, result.Rating)
		assert.Equal(t, "great court", result.Comment)
	})

	t.Run("second submission revises in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := doneSnapshot()
		existing := &shared.FeedbackSnapshot{ID: uuid.New(), BookingID: snap.ID, UserID: snap.UserID}

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.reads.EXPECT().FeedbackByBookingID(ctx, snap.ID).Return(existing, nil)
		m.feedback.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := m.newCommands().UpsertFeedback(ctx, snap.ID, snap.UserID, reqdto.UpsertFeedbackRequest{
			Rating: 2, Comment: "lights were broken",
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, existing.ID, result.ID)
		assert.Equal(t, 2, result.Rating)
	})

	t.Run("confirmed booking whose slot ended is promoted inline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.Status = booking.StatusConfirmed
				b.SlotStart = testNow.Add(-2 * time.Hour)
				b.SlotEnd = testNow.Add(-time.Hour)
			}).
			BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.bookings.EXPECT().TransitionStatus(ctx, gomock.Any(), snap.ID, booking.StatusConfirmed, booking.StatusDone).
			Return(int64(1), nil)
		m.reads.EXPECT().FeedbackByBookingID(ctx, snap.ID).Return(nil, notFoundErr())
		m.feedback.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := m.newCommands().UpsertFeedback(ctx, snap.ID, snap.UserID, req)
		require.NoError(t, err)
		assert.True(t, result.Created)
	})

	t.Run("confirmed booking still running is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).
			BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().UpsertFeedback(ctx, snap.ID, snap.UserID, req)
		assert.ErrorIs(t, err, commands.ErrFeedbackBookingNotDone)
	})

	t.Run("pending booking is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := builder.NewBookingBuilder().BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().UpsertFeedback(ctx, snap.ID, snap.UserID, req)
		assert.ErrorIs(t, err, commands.ErrFeedbackBookingNotDone)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := doneSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().UpsertFeedback(ctx, snap.ID, uuid.New(), req)
		assert.ErrorIs(t, err, commands.ErrFeedbackNotOwned)
	})

	t.Run("invalid rating fails before any lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)

		_, err := m.newCommands().UpsertFeedback(ctx, uuid.New(), uuid.New(), reqdto.UpsertFeedbackRequest{
			Rating: 6, Comment: "x",
		})
		assert.ErrorIs(t, err, feedback.ErrInvalidRating)
	})

	t.Run("concurrent first submission surfaces as a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newFeedbackMocks(ctrl)
		snap := doneSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.reads.EXPECT().FeedbackByBookingID(ctx, snap.ID).Return(nil, notFoundErr())
		m.feedback.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := m.newCommands().UpsertFeedback(ctx, snap.ID, snap.UserID, req)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}
