package readstore

import (
	"context"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindByCourtAndDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, court_id, slot_date, slot_number, start_time, end_time, is_available
		FROM court_slots
		WHERE court_id = $1 AND slot_date = $2
		ORDER BY slot_number`

	rows, err := r.db.Query(ctx, query, courtID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var views []*queries.SlotView
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.CourtID, &v.SlotDate, &v.SlotNumber, &v.StartTime, &v.EndTime, &v.IsAvailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return views, nil
}
