package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange    = errors.New("invalid slot time range")
	ErrInvalidDuration = errors.New("slot duration must be positive")
	ErrSlotUnavailable = errors.New("slot is not available")
	ErrWrongCourt      = errors.New("slot does not belong to court")
)

// Slot is a fixed bookable time window on one court. The isAvailable flag is
// the single concurrency gate against double booking; persistence flips it
// with a conditional update, never a read-then-write pair.
type Slot struct {
	id          uuid.UUID
	courtID     uuid.UUID
	slotDate    time.Time
	slotNumber  int
	startTime   time.Time
	endTime     time.Time
	isAvailable bool
}

func ReconstructSlot(
	id, courtID uuid.UUID,
	slotDate time.Time,
	slotNumber int,
	startTime, endTime time.Time,
	isAvailable bool,
) *Slot {
	return &Slot{
		id:          id,
		courtID:     courtID,
		slotDate:    slotDate,
		slotNumber:  slotNumber,
		startTime:   startTime,
		endTime:     endTime,
		isAvailable: isAvailable,
	}
}

// Generate divides [start, end) into contiguous fixed-duration windows, all
// available. Slot numbers are ordinals within the day, continuing from
// numberBase (the highest existing slot number for that court and date).
// A trailing remainder shorter than the duration is not emitted.
func Generate(courtID uuid.UUID, start, end time.Time, duration time.Duration, numberBase int) ([]*Slot, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	var slots []*Slot
	number := numberBase
	for cur := start; !cur.Add(duration).After(end); cur = cur.Add(duration) {
		number++
		slots = append(slots, &Slot{
			id:          uuid.New(),
			courtID:     courtID,
			slotDate:    day,
			slotNumber:  number,
			startTime:   cur,
			endTime:     cur.Add(duration),
			isAvailable: true,
		})
	}

	if len(slots) == 0 {
		return nil, ErrInvalidRange
	}

	return slots, nil
}

// EnsureReservable guards booking creation. The authoritative check is the
// storage-level conditional update; this catches the obvious cases early.
func (s *Slot) EnsureReservable(courtID uuid.UUID) error {
	if s.courtID != courtID {
		return ErrWrongCourt
	}
	if !s.isAvailable {
		return ErrSlotUnavailable
	}
	return nil
}

func (s *Slot) Duration() time.Duration {
	return s.endTime.Sub(s.startTime)
}

func (s *Slot) Hours() float64 {
	return s.Duration().Hours()
}

func (s *Slot) HasEnded(now time.Time) bool {
	return now.After(s.endTime)
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) CourtID() uuid.UUID   { return s.courtID }
func (s *Slot) SlotDate() time.Time  { return s.slotDate }
func (s *Slot) SlotNumber() int      { return s.slotNumber }
func (s *Slot) StartTime() time.Time { return s.startTime }
func (s *Slot) EndTime() time.Time   { return s.endTime }
func (s *Slot) IsAvailable() bool    { return s.isAvailable }
