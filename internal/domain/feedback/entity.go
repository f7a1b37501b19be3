package feedback

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBookingNotDone gates creation: only a finished booking may be reviewed.
	ErrBookingNotDone = errors.New("booking is not done")
	ErrNotOwned       = errors.New("feedback not owned by user")
)

// Feedback is one user's review of one finished booking. At most one feedback
// exists per booking; a second submission becomes an update.
type Feedback struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	courtID   uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewFeedback(bookingID, userID, courtID uuid.UUID, rating Rating, comment Comment) *Feedback {
	return &Feedback{
		id:        uuid.New(),
		bookingID: bookingID,
		userID:    userID,
		courtID:   courtID,
		rating:    rating,
		comment:   comment,
	}
}

func ReconstructFeedback(
	id, bookingID, userID, courtID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Feedback {
	return &Feedback{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		courtID:   courtID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *Feedback) Revise(rating Rating, comment Comment) {
	f.rating = rating
	f.comment = comment
}

func (f *Feedback) ID() uuid.UUID        { return f.id }
func (f *Feedback) BookingID() uuid.UUID { return f.bookingID }
func (f *Feedback) UserID() uuid.UUID    { return f.userID }
func (f *Feedback) CourtID() uuid.UUID   { return f.courtID }
func (f *Feedback) Rating() Rating       { return f.rating }
func (f *Feedback) Comment() Comment     { return f.comment }
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time { return f.updatedAt }
