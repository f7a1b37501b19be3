package readstore

import (
	"context"
	"errors"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourtReadStore struct {
	db db.DBTX
}

func NewCourtReadStore(dbtx db.DBTX) *CourtReadStore {
	return &CourtReadStore{db: dbtx}
}

func (r *CourtReadStore) FindAll(ctx context.Context, activeOnly bool) ([]*queries.CourtView, error) {
	const query = `
		SELECT id, name, location, price_per_hour, is_active, priority, created_at, updated_at
		FROM courts
		WHERE ($1 = false OR is_active = true)
		ORDER BY priority DESC, name`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var views []*queries.CourtView
	for rows.Next() {
		var v queries.CourtView
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.PricePerHour, &v.IsActive, &v.Priority, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read court rows", err)
	}
	return views, nil
}

func (r *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	const query = `
		SELECT id, name, location, price_per_hour, is_active, priority, created_at, updated_at
		FROM courts
		WHERE id = $1`

	var v queries.CourtView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Location, &v.PricePerHour, &v.IsActive, &v.Priority, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get court", err)
	}
	return &v, nil
}
