package commands

import (
	"context"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/playmate"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPlaymateBookingNotConfirmed = errs.New("booking is not confirmed")
	ErrPlaymatePostNotFound        = errs.New("playmate post not found")
	ErrPlaymatePostNotOwned        = errs.New("playmate post not owned by user")
)

type PlaymatePostResult struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Title         string
	Description   string
	NeededPlayers int
	Status        string
	Created       bool
}

type PlaymateCommands interface {
	UpsertPost(ctx context.Context, bookingID, userID uuid.UUID, req reqdto.UpsertPlaymatePostRequest) (*PlaymatePostResult, error)
	SetPostStatus(ctx context.Context, postID, userID uuid.UUID, status string) error
}

type playmateCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPlaymateCommands(uow shared.UnitOfWork, clock clock.Clock) PlaymateCommands {
	return &playmateCommandsImpl{uow: uow, clock: clock}
}

// UpsertPost creates or edits the single recruiting post a booking may carry.
// Creation and editing both require the booking to be confirmed.
func (p *playmateCommandsImpl) UpsertPost(ctx context.Context, bookingID, userID uuid.UUID, req reqdto.UpsertPlaymatePostRequest) (*PlaymatePostResult, error) {
	var result *PlaymatePostResult

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if snap.UserID != userID {
			return ErrPlaymatePostNotOwned
		}
		if snap.Status != booking.StatusConfirmed {
			return ErrPlaymateBookingNotConfirmed
		}

		existing, err := tx.Reads().PlaymatePostByBookingID(ctx, bookingID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if existing != nil {
			// Revise keeps the post's own status; editing never reopens it.
			revised := playmate.ReconstructPost(
				existing.ID, bookingID, userID, snap.CourtID,
				"", "", 1,
				existing.Status,
				p.clock.Now(), p.clock.Now(),
			)
			if err := revised.Revise(req.Title, req.Description, req.NeededPlayers); err != nil {
				return err
			}
			if err := tx.PlaymatePosts().Update(ctx, tx.DB(), revised); err != nil {
				return err
			}
			result = &PlaymatePostResult{
				ID:            existing.ID,
				BookingID:     bookingID,
				Title:         revised.Title(),
				Description:   revised.Description(),
				NeededPlayers: revised.NeededPlayers(),
				Status:        revised.Status().String(),
			}
			return nil
		}

		entity, err := playmate.NewPost(bookingID, userID, snap.CourtID, req.Title, req.Description, req.NeededPlayers)
		if err != nil {
			return err
		}
		if err := tx.PlaymatePosts().Create(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return infra.WrapRepoErr("concurrent playmate post submission", err, infra.KindConflict)
			}
			return err
		}
		result = &PlaymatePostResult{
			ID:            entity.ID(),
			BookingID:     bookingID,
			Title:         entity.Title(),
			Description:   entity.Description(),
			NeededPlayers: entity.NeededPlayers(),
			Status:        entity.Status().String(),
			Created:       true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetPostStatus opens or closes a post. The owning booking's state is not
// consulted: a post on a finished booking can still be closed.
func (p *playmateCommandsImpl) SetPostStatus(ctx context.Context, postID, userID uuid.UUID, status string) error {
	next, err := playmate.NewStatus(status)
	if err != nil {
		return err
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PlaymatePostByID(ctx, postID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPlaymatePostNotFound
			}
			return err
		}
		if snap.UserID != userID {
			return ErrPlaymatePostNotOwned
		}

		affected, err := tx.PlaymatePosts().SetStatus(ctx, tx.DB(), postID, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrPlaymatePostNotFound
		}
		return nil
	})
}
