package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/slot"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotOverlap      = errs.New("slot range overlaps existing slots")
	ErrInvalidSlotRange = errs.New("invalid slot range")
)

// SlotCacheInvalidator drops the cached slot listing after a write touches a
// court's day.
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, courtID uuid.UUID, date time.Time)
}

type SlotCommands interface {
	GenerateSlots(ctx context.Context, courtID uuid.UUID, req reqdto.GenerateSlotsRequest) ([]*queries.SlotView, error)
}

type slotCommandsImpl struct {
	uow       shared.UnitOfWork
	slotCache SlotCacheInvalidator
}

func NewSlotCommands(uow shared.UnitOfWork, slotCache SlotCacheInvalidator) SlotCommands {
	return &slotCommandsImpl{uow: uow, slotCache: slotCache}
}

// GenerateSlots bulk-creates a day's slots for one court. The whole range is
// rejected when any window overlaps an existing slot; partial generation
// would leave the day ambiguous.
func (s *slotCommandsImpl) GenerateSlots(ctx context.Context, courtID uuid.UUID, req reqdto.GenerateSlotsRequest) ([]*queries.SlotView, error) {
	var generated []*slot.Slot

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CourtByID(ctx, courtID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}

		overlapping, err := tx.Slots().CountOverlapping(ctx, tx.DB(), courtID, req.StartTime, req.EndTime)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrSlotOverlap
		}

		day := time.Date(req.StartTime.Year(), req.StartTime.Month(), req.StartTime.Day(), 0, 0, 0, 0, req.StartTime.Location())
		numberBase, err := tx.Slots().MaxSlotNumber(ctx, tx.DB(), courtID, day)
		if err != nil {
			return err
		}

		generated, err = slot.Generate(courtID, req.StartTime, req.EndTime, req.Duration(), numberBase)
		if err != nil {
			return errs.Mark(err, ErrInvalidSlotRange)
		}

		return tx.Slots().CreateBatch(ctx, tx.DB(), generated)
	})
	if err != nil {
		return nil, err
	}

	s.slotCache.Invalidate(ctx, courtID, generated[0].SlotDate())

	views := make([]*queries.SlotView, 0, len(generated))
	for _, sl := range generated {
		views = append(views, &queries.SlotView{
			ID:          sl.ID(),
			CourtID:     sl.CourtID(),
			SlotDate:    sl.SlotDate(),
			SlotNumber:  sl.SlotNumber(),
			StartTime:   sl.StartTime(),
			EndTime:     sl.EndTime(),
			IsAvailable: sl.IsAvailable(),
		})
	}
	return views, nil
}
