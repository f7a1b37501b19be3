package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedSlotReadStore fronts the slot listing with Redis. The listing is the
// hottest read on the platform and tolerates short staleness; writes
// invalidate the day's key.
type CachedSlotReadStore struct {
	inner queries.SlotViewRepo
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedSlotReadStore(inner queries.SlotViewRepo, rdb *redis.Client, ttl time.Duration) *CachedSlotReadStore {
	return &CachedSlotReadStore{inner: inner, rdb: rdb, ttl: ttl}
}

func slotListKey(courtID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s", courtID, date.Format("2006-01-02"))
}

func (c *CachedSlotReadStore) FindByCourtAndDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*queries.SlotView, error) {
	key := slotListKey(courtID, date)

	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var views []*queries.SlotView
		if err := json.Unmarshal(cached, &views); err == nil {
			return views, nil
		}
		// Corrupt entry: fall through and overwrite.
	} else if err != redis.Nil {
		slog.Warn("slot cache read failed", "key", key, "error", err.Error())
	}

	views, err := c.inner.FindByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			slog.Warn("slot cache write failed", "key", key, "error", err.Error())
		}
	}
	return views, nil
}

// Invalidate drops the cached listing for one court and day. A failed delete
// only extends staleness until the TTL expires, so it is logged, not returned.
func (c *CachedSlotReadStore) Invalidate(ctx context.Context, courtID uuid.UUID, date time.Time) {
	key := slotListKey(courtID, date)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("slot cache invalidation failed", "key", key, "error", err.Error())
	}
}
