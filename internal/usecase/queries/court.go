package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CourtQueries interface {
	List(ctx context.Context, activeOnly bool) ([]*CourtView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListSlots(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*SlotView, error)
}

type CourtViewRepo interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*CourtView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
}

// SlotViewRepo lists a court's slots for one day. Implementations may serve
// the listing from a cache keyed by court and date.
type SlotViewRepo interface {
	FindByCourtAndDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*SlotView, error)
}

type courtQueriesImpl struct {
	courts CourtViewRepo
	slots  SlotViewRepo
}

func NewCourtQueries(courts CourtViewRepo, slots SlotViewRepo) CourtQueries {
	return &courtQueriesImpl{courts: courts, slots: slots}
}

func (q *courtQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*CourtView, error) {
	return q.courts.FindAll(ctx, activeOnly)
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	return q.courts.FindByID(ctx, id)
}

func (q *courtQueriesImpl) ListSlots(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*SlotView, error) {
	return q.slots.FindByCourtAndDate(ctx, courtID, date)
}
