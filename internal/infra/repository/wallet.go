package repository

import (
	"context"

	"courtbook/internal/domain/wallet"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type WalletRepository struct{}

func NewWalletRepository() shared.WalletRepository {
	return &WalletRepository{}
}

// DebitIfSufficient relies on the balance >= amount predicate plus the
// balance >= 0 check constraint; no read-then-write, so concurrent debits
// cannot overdraw.
func (r *WalletRepository) DebitIfSufficient(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount int64) (bool, error) {
	const query = `
		UPDATE wallets
		SET balance = balance - $2, updated_at = now()
		WHERE user_id = $1 AND balance >= $2`

	tag, err := dbtx.Exec(ctx, query, userID, amount)
	if err != nil {
		return false, wrapDBErr("failed to debit wallet", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *WalletRepository) Credit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount int64) error {
	const query = `
		INSERT INTO wallets (user_id, balance, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = wallets.balance + $2, updated_at = now()`

	if _, err := dbtx.Exec(ctx, query, userID, amount); err != nil {
		return wrapDBErr("failed to credit wallet", err)
	}
	return nil
}

func (r *WalletRepository) RecordTransaction(ctx context.Context, dbtx db.DBTX, t *wallet.Transaction) error {
	const query = `
		INSERT INTO wallet_transactions (id, user_id, booking_id, direction, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := dbtx.Exec(ctx, query,
		t.ID(), t.UserID(), t.BookingID(), t.Direction().String(), t.Amount(), t.Description())
	if err != nil {
		return wrapDBErr("failed to record wallet transaction", err)
	}
	return nil
}
