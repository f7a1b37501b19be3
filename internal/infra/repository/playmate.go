package repository

import (
	"context"

	"courtbook/internal/domain/playmate"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlaymatePostRepository struct{}

func NewPlaymatePostRepository() shared.PlaymatePostRepository {
	return &PlaymatePostRepository{}
}

func (r *PlaymatePostRepository) Create(ctx context.Context, dbtx db.DBTX, p *playmate.Post) error {
	const query = `
		INSERT INTO playmate_posts (id, booking_id, user_id, court_id, title, description, needed_players, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := dbtx.Exec(ctx, query,
		p.ID(), p.BookingID(), p.UserID(), p.CourtID(),
		p.Title(), p.Description(), p.NeededPlayers(), p.Status().String())
	if err != nil {
		return wrapDBErr("failed to create playmate post", err)
	}
	return nil
}

func (r *PlaymatePostRepository) Update(ctx context.Context, dbtx db.DBTX, p *playmate.Post) error {
	const query = `
		UPDATE playmate_posts
		SET title = $2, description = $3, needed_players = $4, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, p.ID(), p.Title(), p.Description(), p.NeededPlayers()); err != nil {
		return wrapDBErr("failed to update playmate post", err)
	}
	return nil
}

func (r *PlaymatePostRepository) SetStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status playmate.Status) (int64, error) {
	const query = `
		UPDATE playmate_posts
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return 0, wrapDBErr("failed to set playmate post status", err)
	}
	return tag.RowsAffected(), nil
}
