package repository

import (
	"context"

	"courtbook/internal/domain/feedback"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"
)

type FeedbackRepository struct{}

func NewFeedbackRepository() shared.FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(ctx context.Context, dbtx db.DBTX, f *feedback.Feedback) error {
	const query = `
		INSERT INTO feedback (id, booking_id, user_id, court_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := dbtx.Exec(ctx, query,
		f.ID(), f.BookingID(), f.UserID(), f.CourtID(), f.Rating().Value(), f.Comment().String())
	if err != nil {
		return wrapDBErr("failed to create feedback", err)
	}
	return nil
}

func (r *FeedbackRepository) Update(ctx context.Context, dbtx db.DBTX, f *feedback.Feedback) error {
	const query = `
		UPDATE feedback
		SET rating = $2, comment = $3, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, f.ID(), f.Rating().Value(), f.Comment().String()); err != nil {
		return wrapDBErr("failed to update feedback", err)
	}
	return nil
}
