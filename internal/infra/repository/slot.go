package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() shared.SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) CreateBatch(ctx context.Context, dbtx db.DBTX, slots []*slot.Slot) error {
	const query = `
		INSERT INTO court_slots (id, court_id, slot_date, slot_number, start_time, end_time, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, s := range slots {
		_, err := dbtx.Exec(ctx, query,
			s.ID(), s.CourtID(), s.SlotDate(), s.SlotNumber(), s.StartTime(), s.EndTime(), s.IsAvailable())
		if err != nil {
			return wrapDBErr("failed to insert slot", err)
		}
	}
	return nil
}

// Reserve is the concurrency gate: of N concurrent attempts on one slot,
// exactly one sees is_available=true and wins.
func (r *SlotRepository) Reserve(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID) (bool, error) {
	const query = `
		UPDATE court_slots
		SET is_available = false, updated_at = now()
		WHERE id = $1 AND is_available = true`

	tag, err := dbtx.Exec(ctx, query, slotID)
	if err != nil {
		return false, wrapDBErr("failed to reserve slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SlotRepository) Release(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID) error {
	const query = `
		UPDATE court_slots
		SET is_available = true, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, slotID); err != nil {
		return wrapDBErr("failed to release slot", err)
	}
	return nil
}

func (r *SlotRepository) SetAvailability(ctx context.Context, dbtx db.DBTX, slotID uuid.UUID, available bool) (int64, error) {
	const query = `
		UPDATE court_slots
		SET is_available = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, slotID, available)
	if err != nil {
		return 0, wrapDBErr("failed to set slot availability", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) CountOverlapping(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, start, end time.Time) (int, error) {
	const query = `
		SELECT count(*)
		FROM court_slots
		WHERE court_id = $1 AND start_time < $3 AND end_time > $2`

	var count int
	if err := dbtx.QueryRow(ctx, query, courtID, start, end).Scan(&count); err != nil {
		return 0, wrapDBErr("failed to count overlapping slots", err)
	}
	return count, nil
}

func (r *SlotRepository) MaxSlotNumber(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, date time.Time) (int, error) {
	const query = `
		SELECT coalesce(max(slot_number), 0)
		FROM court_slots
		WHERE court_id = $1 AND slot_date = $2`

	var max int
	if err := dbtx.QueryRow(ctx, query, courtID, date).Scan(&max); err != nil {
		return 0, wrapDBErr("failed to get max slot number", err)
	}
	return max, nil
}
