package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (
			id, court_id, slot_id, user_id, booking_date,
			amount, discounted_amount, discount_percent, voucher_code,
			payment_method, status, payment_link
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING order_code`

	charge := b.Charge()
	var orderCode int64
	err := dbtx.QueryRow(ctx, query,
		b.ID(), b.CourtID(), b.SlotID(), b.UserID(), b.BookingDate(),
		charge.Amount().Amount(), charge.DiscountedAmount(), charge.DiscountPercent(), charge.VoucherCode(),
		b.PaymentMethod().String(), b.Status().String(), b.PaymentLink()).Scan(&orderCode)
	if err != nil {
		return 0, wrapDBErr("failed to create booking", err)
	}
	return orderCode, nil
}

func (r *BookingRepository) SetPaymentLink(ctx context.Context, dbtx db.DBTX, id uuid.UUID, link string) error {
	const query = `
		UPDATE bookings
		SET payment_link = $2, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, id, link); err != nil {
		return wrapDBErr("failed to set payment link", err)
	}
	return nil
}

func (r *BookingRepository) TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error) {
	const query = `
		UPDATE bookings
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := dbtx.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return 0, wrapDBErr("failed to transition booking status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) PromoteEndedToDone(ctx context.Context, dbtx db.DBTX, now time.Time) (int64, error) {
	const query = `
		UPDATE bookings b
		SET status = 'done', updated_at = now()
		FROM court_slots s
		WHERE b.slot_id = s.id
		  AND b.status = 'confirmed'
		  AND s.end_time <= $1`

	tag, err := dbtx.Exec(ctx, query, now)
	if err != nil {
		return 0, wrapDBErr("failed to promote ended bookings", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) ExpireStalePending(ctx context.Context, dbtx db.DBTX, cutoff time.Time) ([]uuid.UUID, error) {
	const query = `
		UPDATE bookings
		SET status = 'cancelled', updated_at = now()
		WHERE status = 'pending'
		  AND payment_method = 'payos'
		  AND created_at < $1
		RETURNING slot_id`

	rows, err := dbtx.Query(ctx, query, cutoff)
	if err != nil {
		return nil, wrapDBErr("failed to expire stale pending bookings", err)
	}
	defer rows.Close()

	var slotIDs []uuid.UUID
	for rows.Next() {
		var slotID uuid.UUID
		if err := rows.Scan(&slotID); err != nil {
			return nil, wrapDBErr("failed to scan expired booking slot", err)
		}
		slotIDs = append(slotIDs, slotID)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr("failed to read expired bookings", err)
	}
	return slotIDs, nil
}
