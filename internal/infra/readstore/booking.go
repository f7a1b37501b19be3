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

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	// Ended confirmed bookings read as done even before the sweep persists it.
	const query = `
		SELECT b.id, b.court_id, c.name, b.slot_id, s.start_time, s.end_time,
		       b.user_id, b.booking_date, b.amount, b.discounted_amount,
		       b.discount_percent, b.voucher_code, b.payment_method,
		       CASE WHEN b.status = 'confirmed' AND s.end_time <= now()
		            THEN 'done' ELSE b.status END,
		       b.payment_link, b.created_at, b.updated_at
		FROM bookings b
		JOIN courts c ON c.id = b.court_id
		JOIN court_slots s ON s.id = b.slot_id
		WHERE b.id = $1`

	var v queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CourtID, &v.CourtName, &v.SlotID, &v.SlotStart, &v.SlotEnd,
		&v.UserID, &v.BookingDate, &v.Amount, &v.DiscountedAmount,
		&v.DiscountPercent, &v.VoucherCode, &v.PaymentMethod, &v.Status,
		&v.PaymentLink, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return &v, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, c.name, s.start_time, s.end_time,
		       coalesce(b.discounted_amount, b.amount), b.payment_method,
		       CASE WHEN b.status = 'confirmed' AND s.end_time <= now()
		            THEN 'done' ELSE b.status END,
		       b.created_at
		FROM bookings b
		JOIN courts c ON c.id = b.court_id
		JOIN court_slots s ON s.id = b.slot_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.CourtName, &item.SlotStart, &item.SlotEnd,
			&item.Amount, &item.PaymentMethod, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
