package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CourtID       uuid.UUID `json:"court_id" binding:"required"`
	SlotID        uuid.UUID `json:"slot_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=payos wallet"`
	VoucherCode   *string   `json:"voucher_code,omitempty"`
}

func (r CreateBookingRequest) GetVoucherCode() *string {
	if r.VoucherCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.VoucherCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
