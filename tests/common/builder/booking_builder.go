//go:build unit || integration

package builder

import (
	"time"

	dombooking "courtbook/internal/domain/booking"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CourtID       uuid.UUID
	CourtName     string
	SlotID        uuid.UUID
	UserID        uuid.UUID
	BookingDate   time.Time
	SlotStart     time.Time
	SlotEnd       time.Time
	PricePerHour  int64
	SlotHours     float64
	PaymentMethod string
	Voucher       *dombooking.VoucherSpec
	Status        dombooking.Status
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	start := now.Add(3 * time.Hour)
	return &BookingBuilder{
		CourtID:       uuid.New(),
		CourtName:     "Court 1",
		SlotID:        uuid.New(),
		UserID:        uuid.New(),
		BookingDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SlotStart:     start,
		SlotEnd:       start.Add(time.Hour),
		PricePerHour:  120000,
		SlotHours:     1.0,
		PaymentMethod: "wallet",
		Status:        dombooking.StatusPending,
		Now:           now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	services := &dombooking.Services{Clock: clock.NewMockClock(b.Now)}
	method, err := dombooking.NewPaymentMethod(b.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		services,
		b.CourtID, b.SlotID, b.UserID,
		b.BookingDate,
		b.PricePerHour,
		b.SlotHours,
		b.Voucher,
		method,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		CourtID:       b.CourtID,
		SlotID:        b.SlotID,
		PaymentMethod: b.PaymentMethod,
	}
	if b.Voucher != nil {
		code := b.Voucher.Code
		req.VoucherCode = &code
	}
	return req
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	amount := int64(b.SlotHours * float64(b.PricePerHour))
	return &shared.BookingSnapshot{
		ID:            uuid.New(),
		CourtID:       b.CourtID,
		SlotID:        b.SlotID,
		UserID:        b.UserID,
		Status:        b.Status,
		PaymentMethod: dombooking.PaymentMethod(b.PaymentMethod),
		Amount:        amount,
		PayableAmount: amount,
		SlotDate:      b.BookingDate,
		SlotStart:     b.SlotStart,
		SlotEnd:       b.SlotEnd,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	amount := int64(b.SlotHours * float64(b.PricePerHour))
	return &queries.BookingView{
		ID:            uuid.New(),
		CourtID:       b.CourtID,
		CourtName:     b.CourtName,
		SlotID:        b.SlotID,
		SlotStart:     b.SlotStart,
		SlotEnd:       b.SlotEnd,
		UserID:        b.UserID,
		BookingDate:   b.BookingDate,
		Amount:        amount,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status.String(),
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}
