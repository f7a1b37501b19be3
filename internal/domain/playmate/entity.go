package playmate

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxNeededPlayers     = 20
)

var (
	// ErrBookingNotConfirmed gates create/edit: the owning booking must be
	// confirmed. Once the post exists, its own status evolves independently.
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
	ErrNotOwned            = errors.New("playmate post not owned by user")
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrTitleTooLong        = errors.New("title exceeds maximum length")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrInvalidPlayerCount  = errors.New("needed players must be between 1 and 20")
	ErrInvalidStatus       = errors.New("invalid playmate post status")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Post recruits additional players for a confirmed booking's slot.
type Post struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	userID        uuid.UUID
	courtID       uuid.UUID
	title         string
	description   string
	neededPlayers int
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPost(bookingID, userID, courtID uuid.UUID, title, description string, neededPlayers int) (*Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if neededPlayers < 1 || neededPlayers > MaxNeededPlayers {
		return nil, ErrInvalidPlayerCount
	}

	return &Post{
		id:            uuid.New(),
		bookingID:     bookingID,
		userID:        userID,
		courtID:       courtID,
		title:         title,
		description:   description,
		neededPlayers: neededPlayers,
		status:        StatusOpen,
	}, nil
}

func ReconstructPost(
	id, bookingID, userID, courtID uuid.UUID,
	title, description string,
	neededPlayers int,
	status Status,
	createdAt, updatedAt time.Time,
) *Post {
	return &Post{
		id:            id,
		bookingID:     bookingID,
		userID:        userID,
		courtID:       courtID,
		title:         title,
		description:   description,
		neededPlayers: neededPlayers,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Post) Revise(title, description string, neededPlayers int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if neededPlayers < 1 || neededPlayers > MaxNeededPlayers {
		return ErrInvalidPlayerCount
	}

	p.title = title
	p.description = description
	p.neededPlayers = neededPlayers
	return nil
}

// SetStatus opens or closes the post. This never touches the owning booking;
// the two lifecycles are independent after creation-time gating.
func (p *Post) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	p.status = status
	return nil
}

func (p *Post) IsOpen() bool { return p.status == StatusOpen }

func (p *Post) ID() uuid.UUID        { return p.id }
func (p *Post) BookingID() uuid.UUID { return p.bookingID }
func (p *Post) UserID() uuid.UUID    { return p.userID }
func (p *Post) CourtID() uuid.UUID   { return p.courtID }
func (p *Post) Title() string        { return p.title }
func (p *Post) Description() string  { return p.description }
func (p *Post) NeededPlayers() int   { return p.neededPlayers }
func (p *Post) Status() Status       { return p.status }
func (p *Post) CreatedAt() time.Time { return p.createdAt }
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }
