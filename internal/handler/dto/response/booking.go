package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	CourtID          uuid.UUID `json:"courtId"`
	CourtName        string    `json:"courtName"`
	SlotID           uuid.UUID `json:"slotId"`
	SlotStart        time.Time `json:"slotStart"`
	SlotEnd          time.Time `json:"slotEnd"`
	BookingDate      string    `json:"bookingDate"`
	Amount           int64     `json:"amount"`
	DiscountedAmount *int64    `json:"discountedAmount,omitempty"`
	DiscountPercent  *int      `json:"discountPercent,omitempty"`
	VoucherCode      *string   `json:"voucherCode,omitempty"`
	PaymentMethod    string    `json:"paymentMethod"`
	Status           string    `json:"status"`
	PaymentLink      *string   `json:"paymentLink,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	CourtName     string    `json:"courtName"`
	SlotStart     time.Time `json:"slotStart"`
	SlotEnd       time.Time `json:"slotEnd"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CancelBookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	RefundPercent int       `json:"refundPercent"`
	RefundAmount  int64     `json:"refundAmount"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               v.ID,
		CourtID:          v.CourtID,
		CourtName:        v.CourtName,
		SlotID:           v.SlotID,
		SlotStart:        v.SlotStart,
		SlotEnd:          v.SlotEnd,
		BookingDate:      v.BookingDate.Format("2006-01-02"),
		Amount:           v.Amount,
		DiscountedAmount: v.DiscountedAmount,
		DiscountPercent:  v.DiscountPercent,
		VoucherCode:      v.VoucherCode,
		PaymentMethod:    v.PaymentMethod,
		Status:           v.Status,
		PaymentLink:      v.PaymentLink,
		CreatedAt:        v.CreatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:            v.ID,
		CourtName:     v.CourtName,
		SlotStart:     v.SlotStart,
		SlotEnd:       v.SlotEnd,
		Amount:        v.Amount,
		PaymentMethod: v.PaymentMethod,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
	}
}
