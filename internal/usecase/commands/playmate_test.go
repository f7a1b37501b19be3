//go:build unit

package commands_test

import (
	"context"
	"testing"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/playmate"
	reqdto "courtbook/internal/handler/dto/request"
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

type playmateMocks struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	reads *sharedmock.MockCommandReads
	posts *sharedmock.MockPlaymatePostRepository
}

func newPlaymateMocks(ctrl *gomock.Controller) *playmateMocks {
	m := &playmateMocks{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
		posts: sharedmock.NewMockPlaymatePostRepository(ctrl),
	}
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().PlaymatePosts().Return(m.posts).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()
	return m
}

func (m *playmateMocks) newCommands() commands.PlaymateCommands {
	return commands.NewPlaymateCommands(m.uow, clock.NewMockClock(testNow))
}

func confirmedSnapshot() *shared.BookingSnapshot {
	return builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).
		BuildSnapshot()
}

func TestUpsertPost(t *testing.T) {
	ctx := context.Background()
	req := reqdto.UpsertPlaymatePostRequest{
		Title:         "Need 2 for doubles",
		Description:   "Intermediate level, shuttles provided",
		NeededPlayers: 2,
	}

	t.Run("first post on a confirmed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		snap := confirmedSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.reads.EXPECT().PlaymatePostByBookingID(ctx, snap.ID).Return(nil, notFoundErr())
		m.posts.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := m.newCommands().UpsertPost(ctx, snap.ID, snap.UserID, req)
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, "Need 2 for doubles", result.Title)
		assert.Equal(t, 2, result.NeededPlayers)
		assert.Equal(t, "open", result.Status)
	})

	t.Run("second submission edits the existing post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		snap := confirmedSnapshot()
		existing := &shared.PlaymatePostSnapshot{
			ID:        uuid.New(),
			BookingID: snap.ID,
			UserID:    snap.UserID,
			Status:    playmate.StatusClosed,
		}

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.reads.EXPECT().PlaymatePostByBookingID(ctx, snap.ID).Return(existing, nil)
		m.posts.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := m.newCommands().UpsertPost(ctx, snap.ID, snap.UserID, reqdto.UpsertPlaymatePostRequest{
			Title: "Need 3 now", NeededPlayers: 3,
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, existing.ID, result.ID)
		assert.Equal(t, "Need 3 now", result.Title)
		assert.Equal(t, 3, result.NeededPlayers)
		// Editing the copy never reopens a closed post.
		assert.Equal(t, "closed", result.Status)
	})

	t.Run("pending booking cannot recruit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		snap := builder.NewBookingBuilder().BuildSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().UpsertPost(ctx, snap.ID, snap.UserID, req)
		assert.ErrorIs(t, err, commands.ErrPlaymateBookingNotConfirmed)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		snap := confirmedSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)

		_, err := m.newCommands().UpsertPost(ctx, snap.ID, uuid.New(), req)
		assert.ErrorIs(t, err, commands.ErrPlaymatePostNotOwned)
	})

	t.Run("invalid payload never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		snap := confirmedSnapshot()

		m.reads.EXPECT().BookingByID(ctx, snap.ID).Return(snap, nil)
		m.reads.EXPECT().PlaymatePostByBookingID(ctx, snap.ID).Return(nil, notFoundErr())

		_, err := m.newCommands().UpsertPost(ctx, snap.ID, snap.UserID, reqdto.UpsertPlaymatePostRequest{
			Title: "", NeededPlayers: 2,
		})
		assert.ErrorIs(t, err, playmate.ErrEmptyTitle)
	})
}

func TestSetPostStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("owner closes an open post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		postID := uuid.New()
		userID := uuid.New()

		m.reads.EXPECT().PlaymatePostByID(ctx, postID).Return(&shared.PlaymatePostSnapshot{
			ID: postID, BookingID: uuid.New(), UserID: userID, Status: playmate.StatusOpen,
		}, nil)
		m.posts.EXPECT().SetStatus(ctx, gomock.Any(), postID, playmate.StatusClosed).Return(int64(1), nil)

		assert.NoError(t, m.newCommands().SetPostStatus(ctx, postID, userID, "closed"))
	})

	t.Run("stranger cannot toggle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		postID := uuid.New()

		m.reads.EXPECT().PlaymatePostByID(ctx, postID).Return(&shared.PlaymatePostSnapshot{
			ID: postID, BookingID: uuid.New(), UserID: uuid.New(), Status: playmate.StatusOpen,
		}, nil)

		err := m.newCommands().SetPostStatus(ctx, postID, uuid.New(), "closed")
		assert.ErrorIs(t, err, commands.ErrPlaymatePostNotOwned)
	})

	t.Run("unknown post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)
		postID := uuid.New()

		m.reads.EXPECT().PlaymatePostByID(ctx, postID).Return(nil, notFoundErr())

		err := m.newCommands().SetPostStatus(ctx, postID, uuid.New(), "closed")
		assert.ErrorIs(t, err, commands.ErrPlaymatePostNotFound)
	})

	t.Run("unknown status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newPlaymateMocks(ctrl)

		err := m.newCommands().SetPostStatus(ctx, uuid.New(), uuid.New(), "archived")
		assert.ErrorIs(t, err, playmate.ErrInvalidStatus)
	})
}
