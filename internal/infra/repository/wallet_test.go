//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/wallet"
	"courtbook/internal/infra/repository"
	"courtbook/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_DebitIfSufficient(t *testing.T) {
	pool := dbtest.SetupPool(t)
	ctx := context.Background()
	repo := repository.NewWalletRepository()

	userID := dbtest.CreateTestUser(t, pool, "wallet-debit@example.com")
	dbtest.FundWallet(t, pool, userID, 120000)

	ok, err := repo.DebitIfSufficient(ctx, pool, userID, 200000)
	require.NoError(t, err)
	require.False(t, ok, "debit beyond balance must be refused")

	ok, err = repo.DebitIfSufficient(ctx, pool, userID, 120000)
	require.NoError(t, err)
	require.True(t, ok, "debit of the exact balance succeeds")

	ok, err = repo.DebitIfSufficient(ctx, pool, userID, 1)
	require.NoError(t, err)
	require.False(t, ok, "empty wallet refuses any debit")

	require.EqualValues(t, 0, walletBalance(t, pool, userID))
}

func TestWalletRepository_DebitUnknownUser(t *testing.T) {
	pool := dbtest.SetupPool(t)
	repo := repository.NewWalletRepository()

	userID := dbtest.CreateTestUser(t, pool, "no-wallet@example.com")

	ok, err := repo.DebitIfSufficient(context.Background(), pool, userID, 1000)
	require.NoError(t, err)
	require.False(t, ok, "user without a wallet row has nothing to debit")
}

func TestWalletRepository_CreditUpsert(t *testing.T) {
	pool := dbtest.SetupPool(t)
	ctx := context.Background()
	repo := repository.NewWalletRepository()

	userID := dbtest.CreateTestUser(t, pool, "wallet-credit@example.com")

	require.NoError(t, repo.Credit(ctx, pool, userID, 50000))
	require.EqualValues(t, 50000, walletBalance(t, pool, userID), "credit creates the wallet row")

	require.NoError(t, repo.Credit(ctx, pool, userID, 25000))
	require.EqualValues(t, 75000, walletBalance(t, pool, userID), "credit adds to the existing balance")
}

func TestWalletRepository_RecordTransaction(t *testing.T) {
	pool := dbtest.SetupPool(t)
	ctx := context.Background()
	repo := repository.NewWalletRepository()

	userID := dbtest.CreateTestUser(t, pool, "wallet-txn@example.com")
	courtID := dbtest.CreateTestCourt(t, pool, "Txn Court", 120000)
	start := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	slotID := dbtest.CreateTestSlot(t, pool, courtID, 1, start, start.Add(time.Hour))
	bookingID := dbtest.InsertBooking(t, pool, courtID, slotID, userID, "wallet", "confirmed", start)

	txn, err := wallet.NewTransaction(userID, &bookingID, wallet.DirectionOut, 120000, "booking payment")
	require.NoError(t, err)
	require.NoError(t, repo.RecordTransaction(ctx, pool, txn))

	var direction string
	var amount int64
	err = pool.QueryRow(ctx, `
		SELECT direction, amount FROM wallet_transactions WHERE id = $1`, txn.ID()).
		Scan(&direction, &amount)
	require.NoError(t, err)
	require.Equal(t, "out", direction)
	require.EqualValues(t, 120000, amount)
}

func walletBalance(t *testing.T, pool dbtest.DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := pool.QueryRow(context.Background(), `
		SELECT balance FROM wallets WHERE user_id = $1`, userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}
