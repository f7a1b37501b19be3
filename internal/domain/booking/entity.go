package booking

import (
	"errors"
	"time"

	"courtbook/internal/domain/voucher"
	"courtbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidVoucher       = errors.New("invalid or expired voucher")
	ErrInvalidTransition    = errors.New("invalid booking state transition")
	ErrBookingTerminal      = errors.New("booking is in a terminal state")
	ErrNotYetEnded          = errors.New("slot has not ended yet")
)

// VoucherSpec is the voucher data a booking needs at creation time. Vouchers
// are applied once; the resulting discount snapshot is never re-validated.
type VoucherSpec struct {
	Code            string
	DiscountPercent int
	ValidFrom       *time.Time
	ValidTo         *time.Time
	IsActive        bool
}

func (v VoucherSpec) isUsableAt(t time.Time) bool {
	entity, err := voucher.NewVoucher(uuid.Nil, v.Code, v.DiscountPercent, v.ValidFrom, v.ValidTo, v.IsActive)
	if err != nil {
		return false
	}
	return entity.IsValidAt(t)
}

type Services struct {
	Clock clock.Clock
}

// Booking is a reservation of exactly one slot by exactly one user.
type Booking struct {
	id            uuid.UUID
	courtID       uuid.UUID
	slotID        uuid.UUID
	userID        uuid.UUID
	bookingDate   time.Time
	charge        Charge
	paymentMethod PaymentMethod
	status        Status
	paymentLink   *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	services *Services,
	courtID, slotID, userID uuid.UUID,
	bookingDate time.Time,
	pricePerHour int64,
	slotHours float64,
	spec *VoucherSpec,
	method PaymentMethod,
) (*Booking, error) {
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	amount, err := NewMoney(int64(slotHours * float64(pricePerHour)))
	if err != nil {
		return nil, err
	}

	charge := NewCharge(amount)
	if spec != nil {
		if !spec.isUsableAt(services.Clock.Now()) {
			return nil, ErrInvalidVoucher
		}
		charge = NewDiscountedCharge(amount, spec.DiscountPercent, spec.Code)
	}

	return &Booking{
		id:            uuid.New(),
		courtID:       courtID,
		slotID:        slotID,
		userID:        userID,
		bookingDate:   bookingDate,
		charge:        charge,
		paymentMethod: method,
		status:        StatusPending,
	}, nil
}

func ReconstructBooking(
	id, courtID, slotID, userID uuid.UUID,
	bookingDate time.Time,
	charge Charge,
	method PaymentMethod,
	status Status,
	paymentLink *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		courtID:       courtID,
		slotID:        slotID,
		userID:        userID,
		bookingDate:   bookingDate,
		charge:        charge,
		paymentMethod: method,
		status:        status,
		paymentLink:   paymentLink,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Confirm settles the booking. The wallet path collapses pending→confirmed
// inside the create call; the gateway path reaches here from the webhook.
func (b *Booking) Confirm() error {
	return b.transition(StatusConfirmed)
}

// Cancel is legal from pending and confirmed only.
func (b *Booking) Cancel() error {
	return b.transition(StatusCancelled)
}

// Complete marks a confirmed booking done once its slot end has passed.
func (b *Booking) Complete(slotEnd, now time.Time) error {
	if now.Before(slotEnd) {
		return ErrNotYetEnded
	}
	return b.transition(StatusDone)
}

func (b *Booking) transition(next Status) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) AttachPaymentLink(link string) {
	b.paymentLink = &link
}

func (b *Booking) IsPending() bool   { return b.status == StatusPending }
func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }
func (b *Booking) IsDone() bool      { return b.status == StatusDone }

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CourtID() uuid.UUID           { return b.courtID }
func (b *Booking) SlotID() uuid.UUID            { return b.slotID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) BookingDate() time.Time       { return b.bookingDate }
func (b *Booking) Charge() Charge               { return b.charge }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentLink() *string         { return b.paymentLink }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
