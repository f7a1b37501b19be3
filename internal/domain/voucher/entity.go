package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrVoucherExpired     = errors.New("voucher has expired")
	ErrVoucherNotYetValid = errors.New("voucher is not yet valid")
	ErrVoucherInactive    = errors.New("voucher is inactive")
	ErrInvalidPercent     = errors.New("discount percent must be between 1 and 100")
)

// Voucher is a one-time discount code applied at booking creation only. The
// booking stores its own discount snapshot; editing a voucher afterwards
// never touches existing bookings.
type Voucher struct {
	id              uuid.UUID
	code            string
	discountPercent int
	validFrom       *time.Time
	validTo         *time.Time
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewVoucher(
	id uuid.UUID,
	code string,
	discountPercent int,
	validFrom, validTo *time.Time,
	isActive bool,
) (*Voucher, error) {
	if discountPercent <= 0 || discountPercent > 100 {
		return nil, ErrInvalidPercent
	}

	return &Voucher{
		id:              id,
		code:            code,
		discountPercent: discountPercent,
		validFrom:       validFrom,
		validTo:         validTo,
		isActive:        isActive,
	}, nil
}

func (v *Voucher) IsValidAt(t time.Time) bool {
	if !v.isActive {
		return false
	}
	if v.validFrom != nil && t.Before(*v.validFrom) {
		return false
	}
	if v.validTo != nil && t.After(*v.validTo) {
		return false
	}
	return true
}

func (v *Voucher) ValidateUsage(t time.Time) error {
	if !v.isActive {
		return ErrVoucherInactive
	}
	if v.validFrom != nil && t.Before(*v.validFrom) {
		return ErrVoucherNotYetValid
	}
	if v.validTo != nil && t.After(*v.validTo) {
		return ErrVoucherExpired
	}
	return nil
}

func (v *Voucher) ID() uuid.UUID         { return v.id }
func (v *Voucher) Code() string          { return v.code }
func (v *Voucher) DiscountPercent() int  { return v.discountPercent }
func (v *Voucher) ValidFrom() *time.Time { return v.validFrom }
func (v *Voucher) ValidTo() *time.Time   { return v.validTo }
func (v *Voucher) IsActive() bool        { return v.isActive }
