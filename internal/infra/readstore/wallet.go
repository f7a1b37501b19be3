package readstore

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WalletReadStore struct {
	db db.DBTX
}

func NewWalletReadStore(dbtx db.DBTX) *WalletReadStore {
	return &WalletReadStore{db: dbtx}
}

func (r *WalletReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.WalletView, error) {
	const query = `
		SELECT user_id, balance, updated_at
		FROM wallets
		WHERE user_id = $1`

	var v queries.WalletView
	err := r.db.QueryRow(ctx, query, userID).Scan(&v.UserID, &v.Balance, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No row yet means an untouched wallet, not an error.
			return &queries.WalletView{UserID: userID, Balance: 0, UpdatedAt: time.Time{}}, nil
		}
		return nil, infra.WrapRepoErr("failed to get wallet", err)
	}
	return &v, nil
}

func (r *WalletReadStore) FindTransactionsByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.WalletTransactionView, error) {
	const query = `
		SELECT id, booking_id, direction, amount, description, created_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wallet transactions", err)
	}
	defer rows.Close()

	var views []*queries.WalletTransactionView
	for rows.Next() {
		var v queries.WalletTransactionView
		if err := rows.Scan(&v.ID, &v.BookingID, &v.Direction, &v.Amount, &v.Description, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wallet transaction row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read wallet transaction rows", err)
	}
	return views, nil
}
