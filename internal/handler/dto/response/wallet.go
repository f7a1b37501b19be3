package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletResponse struct {
	Balance int64 `json:"balance"`
}

type WalletTransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	Direction   string     `json:"direction"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	return &WalletResponse{Balance: v.Balance}
}

func FromWalletTransactionView(v *queries.WalletTransactionView) *WalletTransactionResponse {
	return &WalletTransactionResponse{
		ID:          v.ID,
		BookingID:   v.BookingID,
		Direction:   v.Direction,
		Amount:      v.Amount,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}
