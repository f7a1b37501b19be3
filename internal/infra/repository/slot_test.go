//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"courtbook/internal/domain/slot"
	"courtbook/internal/infra/repository"
	"courtbook/tests/common/dbtest"

	"github.com/stretchr/testify/require"
)

func TestSlotRepository_ReserveAndRelease(t *testing.T) {
	pool := dbtest.SetupPool(t)
	ctx := context.Background()
	repo := repository.NewSlotRepository()

	courtID := dbtest.CreateTestCourt(t, pool, "Center Court", 120000)
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	slotID := dbtest.CreateTestSlot(t, pool, courtID, 1, start, start.Add(time.Hour))

	won, err := repo.Reserve(ctx, pool, slotID)
	require.NoError(t, err)
	require.True(t, won, "first reservation should win")

	won, err = repo.Reserve(ctx, pool, slotID)
	require.NoError(t, err)
	require.False(t, won, "second reservation should lose")

	require.NoError(t, repo.Release(ctx, pool, slotID))
	require.NoError(t, repo.Release(ctx, pool, slotID), "release is idempotent")

	won, err = repo.Reserve(ctx, pool, slotID)
	require.NoError(t, err)
	require.True(t, won, "released slot is reservable again")
}

func TestSlotRepository_CreateBatchAndNumbering(t *testing.T) {
	pool := dbtest.SetupPool(t)
	ctx := context.Background()
	repo := repository.NewSlotRepository()

	courtID := dbtest.CreateTestCourt(t, pool, "Court A", 100000)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	slots, err := slot.Generate(courtID, day.Add(8*time.Hour), day.Add(11*time.Hour), time.Hour, 0)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	require.NoError(t, repo.CreateBatch(ctx, pool, slots))

	max, err := repo.MaxSlotNumber(ctx, pool, courtID, day)
	require.NoError(t, err)
	require.Equal(t, 3, max)

	max, err = repo.MaxSlotNumber(ctx, pool, courtID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 0, max, "other days start numbering from zero")

	count, err := repo.CountOverlapping(ctx, pool, courtID, day.Add(10*time.Hour), day.Add(12*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, count, "only the 10:00-11:00 slot overlaps")

	count, err = repo.CountOverlapping(ctx, pool, courtID, day.Add(11*time.Hour), day.Add(12*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 0, count, "adjacent ranges do not overlap")
}

func TestSlotRepository_SetAvailability(t *testing.T) {
	pool := dbtest.SetupPool(t)
	ctx := context.Background()
	repo := repository.NewSlotRepository()

	courtID := dbtest.CreateTestCourt(t, pool, "Court B", 90000)
	start := time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)
	slotID := dbtest.CreateTestSlot(t, pool, courtID, 1, start, start.Add(time.Hour))

	affected, err := repo.SetAvailability(ctx, pool, slotID, false)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	won, err := repo.Reserve(ctx, pool, slotID)
	require.NoError(t, err)
	require.False(t, won, "blocked slot cannot be reserved")
}
