package response

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}

type PlaymatePostResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"bookingId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	NeededPlayers int       `json:"neededPlayers"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SweepResponse struct {
	PromotedToDone int64 `json:"promotedToDone"`
	ExpiredPending int   `json:"expiredPending"`
}
