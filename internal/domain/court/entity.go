package court

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("court name cannot be empty")
	ErrNegativePrice   = errors.New("price per hour cannot be negative")
	ErrCourtInactive   = errors.New("court is inactive")
	ErrInvalidPriority = errors.New("priority cannot be negative")
)

// Court is a physical venue unit. It is not part of the booking state
// machine; bookings only snapshot its price at creation time.
type Court struct {
	id           uuid.UUID
	name         string
	location     string
	pricePerHour int64
	isActive     bool
	priority     int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCourt(id uuid.UUID, name, location string, pricePerHour int64, isActive bool, priority int) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if pricePerHour < 0 {
		return nil, ErrNegativePrice
	}
	if priority < 0 {
		return nil, ErrInvalidPriority
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Court{
		id:           id,
		name:         name,
		location:     strings.TrimSpace(location),
		pricePerHour: pricePerHour,
		isActive:     isActive,
		priority:     priority,
	}, nil
}

func ReconstructCourt(
	id uuid.UUID,
	name, location string,
	pricePerHour int64,
	isActive bool,
	priority int,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:           id,
		name:         name,
		location:     location,
		pricePerHour: pricePerHour,
		isActive:     isActive,
		priority:     priority,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// EnsureBookable guards booking creation against inactive courts.
func (c *Court) EnsureBookable() error {
	if !c.isActive {
		return ErrCourtInactive
	}
	return nil
}

func (c *Court) ID() uuid.UUID       { return c.id }
func (c *Court) Name() string        { return c.name }
func (c *Court) Location() string    { return c.location }
func (c *Court) PricePerHour() int64 { return c.pricePerHour }
func (c *Court) IsActive() bool      { return c.isActive }
func (c *Court) Priority() int       { return c.priority }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
