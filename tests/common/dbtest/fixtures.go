//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt of "password123", cost 10. Fixtures never log in through the API,
// they only need a syntactically valid hash.
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, 'Test User', 'member')
		RETURNING id`,
		email, testPasswordHash).Scan(&id)
	require.NoError(t, err, "failed to create test user")
	return id
}

func CreateTestCourt(t *testing.T, db DBLike, name string, pricePerHour int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO courts (name, location, price_per_hour)
		VALUES ($1, 'Court Street 1', $2)
		RETURNING id`,
		name, pricePerHour).Scan(&id)
	require.NoError(t, err, "failed to create test court")
	return id
}

func CreateTestSlot(t *testing.T, db DBLike, courtID uuid.UUID, slotNumber int, start, end time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO court_slots (id, court_id, slot_date, slot_number, start_time, end_time, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, true)`,
		id, courtID, start.Truncate(24*time.Hour), slotNumber, start, end)
	require.NoError(t, err, "failed to create test slot")
	return id
}

func FundWallet(t *testing.T, db DBLike, userID uuid.UUID, balance int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance, updated_at = now()`,
		userID, balance)
	require.NoError(t, err, "failed to fund test wallet")
}

// InsertBooking writes a booking row directly, bypassing the repository.
// Sweep tests need control over created_at, which the repository never exposes.
func InsertBooking(t *testing.T, db DBLike, courtID, slotID, userID uuid.UUID, method, status string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, court_id, slot_id, user_id, booking_date, amount, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 120000, $6, $7, $8)`,
		id, courtID, slotID, userID, createdAt.Truncate(24*time.Hour), method, status, createdAt)
	require.NoError(t, err, "failed to insert test booking")
	return id
}
