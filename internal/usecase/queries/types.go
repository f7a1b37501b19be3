package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CourtView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PricePerHour int64     `json:"price_per_hour"`
	IsActive     bool      `json:"is_active"`
	Priority     int       `json:"priority"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SlotView struct {
	ID          uuid.UUID `json:"id"`
	CourtID     uuid.UUID `json:"court_id"`
	SlotDate    time.Time `json:"slot_date"`
	SlotNumber  int       `json:"slot_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	CourtID          uuid.UUID `json:"court_id"`
	CourtName        string    `json:"court_name"`
	SlotID           uuid.UUID `json:"slot_id"`
	SlotStart        time.Time `json:"slot_start"`
	SlotEnd          time.Time `json:"slot_end"`
	UserID           uuid.UUID `json:"user_id"`
	BookingDate      time.Time `json:"booking_date"`
	Amount           int64     `json:"amount"`
	DiscountedAmount *int64    `json:"discounted_amount,omitempty"`
	DiscountPercent  *int      `json:"discount_percent,omitempty"`
	VoucherCode      *string   `json:"voucher_code,omitempty"`
	PaymentMethod    string    `json:"payment_method"`
	Status           string    `json:"status"`
	PaymentLink      *string   `json:"payment_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	CourtName     string    `json:"court_name"`
	SlotStart     time.Time `json:"slot_start"`
	SlotEnd       time.Time `json:"slot_end"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type WalletView struct {
	UserID    uuid.UUID `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WalletTransactionView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	Direction   string     `json:"direction"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

type FeedbackView struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	CourtID   uuid.UUID `json:"court_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlaymatePostView struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	UserID        uuid.UUID `json:"user_id"`
	CourtID       uuid.UUID `json:"court_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	NeededPlayers int       `json:"needed_players"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
