package queries

import (
	"context"

	"github.com/google/uuid"
)

type WalletQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*WalletView, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*WalletTransactionView, error)
}

type WalletViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*WalletView, error)
	FindTransactionsByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*WalletTransactionView, error)
}

type walletQueriesImpl struct {
	repo WalletViewRepo
}

func NewWalletQueries(repo WalletViewRepo) WalletQueries {
	return &walletQueriesImpl{repo: repo}
}

// Get returns a zero-balance view for users with no wallet row yet; the row
// appears on first credit.
func (q *walletQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *walletQueriesImpl) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*WalletTransactionView, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return q.repo.FindTransactionsByUserID(ctx, userID, int32(limit))
}
