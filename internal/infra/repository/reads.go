package repository

import (
	"context"

	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the minimal lookups command handlers need before
// writing. It deliberately returns snapshots, not read-model views.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &CommandReads{dbtx: dbtx}
}

func (r *CommandReads) CourtByID(ctx context.Context, id uuid.UUID) (*shared.CourtSnapshot, error) {
	const query = `
		SELECT id, name, price_per_hour, is_active
		FROM courts
		WHERE id = $1`

	var s shared.CourtSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.PricePerHour, &s.IsActive)
	if err != nil {
		return nil, wrapDBErr("failed to get court", err)
	}
	return &s, nil
}

func (r *CommandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	const query = `
		SELECT id, court_id, slot_date, slot_number, start_time, end_time, is_available
		FROM court_slots
		WHERE id = $1`

	var s shared.SlotSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CourtID, &s.SlotDate, &s.SlotNumber, &s.StartTime, &s.EndTime, &s.IsAvailable)
	if err != nil {
		return nil, wrapDBErr("failed to get slot", err)
	}
	return &s, nil
}

func (r *CommandReads) VoucherByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	const query = `
		SELECT id, code, discount_percent, valid_from, valid_to, is_active
		FROM vouchers
		WHERE code = $1`

	var s shared.VoucherSnapshot
	err := r.dbtx.QueryRow(ctx, query, code).Scan(
		&s.ID, &s.Code, &s.DiscountPercent, &s.ValidFrom, &s.ValidTo, &s.IsActive)
	if err != nil {
		return nil, wrapDBErr("failed to get voucher", err)
	}
	return &s, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.court_id, b.slot_id, b.user_id, b.status, b.payment_method,
		       b.amount, coalesce(b.discounted_amount, b.amount),
		       s.slot_date, s.start_time, s.end_time
		FROM bookings b
		JOIN court_slots s ON s.id = b.slot_id
		WHERE b.id = $1`

	var s shared.BookingSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CourtID, &s.SlotID, &s.UserID, &s.Status, &s.PaymentMethod,
		&s.Amount, &s.PayableAmount, &s.SlotDate, &s.SlotStart, &s.SlotEnd)
	if err != nil {
		return nil, wrapDBErr("failed to get booking", err)
	}
	return &s, nil
}

func (r *CommandReads) BookingByOrderCode(ctx context.Context, orderCode int64) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.court_id, b.slot_id, b.user_id, b.status, b.payment_method,
		       b.amount, coalesce(b.discounted_amount, b.amount),
		       s.slot_date, s.start_time, s.end_time
		FROM bookings b
		JOIN court_slots s ON s.id = b.slot_id
		WHERE b.order_code = $1`

	var s shared.BookingSnapshot
	err := r.dbtx.QueryRow(ctx, query, orderCode).Scan(
		&s.ID, &s.CourtID, &s.SlotID, &s.UserID, &s.Status, &s.PaymentMethod,
		&s.Amount, &s.PayableAmount, &s.SlotDate, &s.SlotStart, &s.SlotEnd)
	if err != nil {
		return nil, wrapDBErr("failed to get booking by order code", err)
	}
	return &s, nil
}

func (r *CommandReads) FeedbackByBookingID(ctx context.Context, bookingID uuid.UUID) (*shared.FeedbackSnapshot, error) {
	const query = `
		SELECT id, booking_id, user_id
		FROM feedback
		WHERE booking_id = $1`

	var s shared.FeedbackSnapshot
	err := r.dbtx.QueryRow(ctx, query, bookingID).Scan(&s.ID, &s.BookingID, &s.UserID)
	if err != nil {
		return nil, wrapDBErr("failed to get feedback", err)
	}
	return &s, nil
}

func (r *CommandReads) PlaymatePostByBookingID(ctx context.Context, bookingID uuid.UUID) (*shared.PlaymatePostSnapshot, error) {
	const query = `
		SELECT id, booking_id, user_id, status
		FROM playmate_posts
		WHERE booking_id = $1`

	var s shared.PlaymatePostSnapshot
	err := r.dbtx.QueryRow(ctx, query, bookingID).Scan(&s.ID, &s.BookingID, &s.UserID, &s.Status)
	if err != nil {
		return nil, wrapDBErr("failed to get playmate post", err)
	}
	return &s, nil
}

func (r *CommandReads) PlaymatePostByID(ctx context.Context, id uuid.UUID) (*shared.PlaymatePostSnapshot, error) {
	const query = `
		SELECT id, booking_id, user_id, status
		FROM playmate_posts
		WHERE id = $1`

	var s shared.PlaymatePostSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&s.ID, &s.BookingID, &s.UserID, &s.Status)
	if err != nil {
		return nil, wrapDBErr("failed to get playmate post", err)
	}
	return &s, nil
}

func (r *CommandReads) WalletByUserID(ctx context.Context, userID uuid.UUID) (*shared.WalletSnapshot, error) {
	const query = `
		SELECT user_id, balance
		FROM wallets
		WHERE user_id = $1`

	var s shared.WalletSnapshot
	err := r.dbtx.QueryRow(ctx, query, userID).Scan(&s.UserID, &s.Balance)
	if err != nil {
		return nil, wrapDBErr("failed to get wallet", err)
	}
	return &s, nil
}
