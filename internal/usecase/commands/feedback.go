package commands

import (
	"context"
	"errors"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/feedback"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrFeedbackBookingNotDone = errs.New("booking is not done yet")
	ErrFeedbackNotOwned       = errs.New("feedback can only target own bookings")
)

type FeedbackResult struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
	Created   bool
}

type FeedbackCommands interface {
	UpsertFeedback(ctx context.Context, bookingID, userID uuid.UUID, req reqdto.UpsertFeedbackRequest) (*FeedbackResult, error)
}

type feedbackCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFeedbackCommands(uow shared.UnitOfWork, clock clock.Clock) FeedbackCommands {
	return &feedbackCommandsImpl{uow: uow, clock: clock}
}

// UpsertFeedback creates or revises the single review a booking may carry.
// Only the booking's owner may review, and only once the booking is done; a
// confirmed booking whose slot has ended is promoted on the spot instead of
// waiting for the sweep.
func (f *feedbackCommandsImpl) UpsertFeedback(ctx context.Context, bookingID, userID uuid.UUID, req reqdto.UpsertFeedbackRequest) (*FeedbackResult, error) {
	rating, err := feedback.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := feedback.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}

	var result *FeedbackResult
	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if snap.UserID != userID {
			return ErrFeedbackNotOwned
		}

		status := snap.Status
		if status == booking.StatusConfirmed {
			entity, err := bookingFromSnapshot(snap)
			if err != nil {
				return err
			}
			switch err := entity.Complete(snap.SlotEnd, f.clock.Now()); {
			case err == nil:
				affected, terr := tx.Bookings().TransitionStatus(ctx, tx.DB(), bookingID, booking.StatusConfirmed, booking.StatusDone)
				if terr != nil {
					return terr
				}
				if affected == 1 {
					status = booking.StatusDone
				}
			case errors.Is(err, booking.ErrNotYetEnded):
				// Slot still running; the gate below rejects the review.
			default:
				return err
			}
		}
		if status != booking.StatusDone {
			return ErrFeedbackBookingNotDone
		}

		existing, err := tx.Reads().FeedbackByBookingID(ctx, bookingID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if existing != nil {
			entity := feedback.ReconstructFeedback(
				existing.ID, bookingID, userID, snap.CourtID,
				rating, comment,
				f.clock.Now(), f.clock.Now(),
			)
			if err := tx.Feedback().Update(ctx, tx.DB(), entity); err != nil {
				return err
			}
			result = &FeedbackResult{ID: existing.ID, BookingID: bookingID, Rating: rating.Value(), Comment: comment.String()}
			return nil
		}

		entity := feedback.NewFeedback(bookingID, userID, snap.CourtID, rating, comment)
		if err := tx.Feedback().Create(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Concurrent first submission; surface as a revision race.
				return infra.WrapRepoErr("concurrent feedback submission", err, infra.KindConflict)
			}
			return err
		}
		result = &FeedbackResult{ID: entity.ID(), BookingID: bookingID, Rating: rating.Value(), Comment: comment.String(), Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
