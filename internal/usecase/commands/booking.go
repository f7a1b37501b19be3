package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/slot"
	"courtbook/internal/domain/user"
	"courtbook/internal/domain/voucher"
	"courtbook/internal/domain/wallet"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/integrations/payos"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound         = errs.New("court not found")
	ErrCourtNotBookable      = errs.New("court is not bookable")
	ErrSlotNotFound          = errs.New("slot not found")
	ErrSlotConflict          = errs.New("slot already booked")
	ErrVoucherNotFound       = errs.New("voucher not found")
	ErrInvalidVoucher        = errs.New("invalid or expired voucher")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrBookingNotOwned       = errs.New("booking not owned by user")
	ErrBookingNotCancellable = errs.New("booking cannot be cancelled")
	ErrWebhookOrderUnknown   = errs.New("webhook order code unknown")
)

// Gateway bookings stuck pending longer than this are swept back to
// cancelled and their slots released.
const stalePendingTTL = 15 * time.Minute

const (
	outboxKindEmail       = "email"
	topicBookingConfirmed = "booking.confirmed"
	topicBookingCancelled = "booking.cancelled"
	topicRefundRequested  = "refund.requested"
)

type CreateBookingResult struct {
	Booking     *queries.BookingView
	PaymentLink *string
}

type CancelBookingResult struct {
	BookingID     uuid.UUID
	RefundPercent int
	RefundAmount  int64
}

type SweepResult struct {
	PromotedToDone int64
	ExpiredPending int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) (*CancelBookingResult, error)
	ResolveGatewayPayment(ctx context.Context, event *payos.WebhookEvent) error
	Sweep(ctx context.Context) (*SweepResult, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	router         PaymentRouter
	bookingQueries queries.BookingQueries
	slotCache      SlotCacheInvalidator
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	router PaymentRouter,
	bookingQueries queries.BookingQueries,
	slotCache SlotCacheInvalidator,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		router:         router,
		bookingQueries: bookingQueries,
		slotCache:      slotCache,
		clock:          clock,
	}
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	var (
		created *booking.Booking
		outcome *PaymentOutcome
	)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		court, err := tx.Reads().CourtByID(ctx, req.CourtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourtNotFound
			}
			return err
		}
		if !court.IsActive {
			return ErrCourtNotBookable
		}

		slotSnap, err := tx.Reads().SlotByID(ctx, req.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		slotEntity := slot.ReconstructSlot(
			slotSnap.ID, slotSnap.CourtID, slotSnap.SlotDate, slotSnap.SlotNumber,
			slotSnap.StartTime, slotSnap.EndTime, slotSnap.IsAvailable)
		if err := slotEntity.EnsureReservable(req.CourtID); err != nil {
			switch {
			case errors.Is(err, slot.ErrWrongCourt):
				return ErrSlotNotFound
			case errors.Is(err, slot.ErrSlotUnavailable):
				return ErrSlotConflict
			}
			return err
		}

		var voucherSpec *booking.VoucherSpec
		if code := req.GetVoucherCode(); code != nil {
			snap, err := tx.Reads().VoucherByCode(ctx, *code)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrVoucherNotFound
				}
				return err
			}
			v, err := voucher.NewVoucher(snap.ID, snap.Code, snap.DiscountPercent,
				snap.ValidFrom, snap.ValidTo, snap.IsActive)
			if err != nil {
				return errs.Mark(err, ErrInvalidVoucher)
			}
			if err := v.ValidateUsage(b.clock.Now()); err != nil {
				return errs.Mark(err, ErrInvalidVoucher)
			}
			voucherSpec = &booking.VoucherSpec{
				Code:            v.Code(),
				DiscountPercent: v.DiscountPercent(),
				ValidFrom:       v.ValidFrom(),
				ValidTo:         v.ValidTo(),
				IsActive:        v.IsActive(),
			}
		}

		method, err := booking.NewPaymentMethod(req.PaymentMethod)
		if err != nil {
			return err
		}

		entity, err := booking.NewBooking(
			&booking.Services{Clock: b.clock},
			req.CourtID, req.SlotID, userID,
			slotSnap.SlotDate,
			court.PricePerHour,
			slotEntity.Hours(),
			voucherSpec,
			method,
		)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidVoucher) {
				return errs.Mark(err, ErrInvalidVoucher)
			}
			return err
		}

		// The conditional update is the authoritative double-booking gate.
		won, err := tx.Slots().Reserve(ctx, tx.DB(), req.SlotID)
		if err != nil {
			return err
		}
		if !won {
			return ErrSlotConflict
		}

		orderCode, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlotConflict
			}
			return err
		}

		outcome, err = b.router.Settle(ctx, tx, entity, orderCode)
		if err != nil {
			return err
		}

		if outcome.Settled {
			if err := b.enqueueNotification(ctx, tx, topicBookingConfirmed, entity.ID(), userID); err != nil {
				return err
			}
		}

		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.slotCache.Invalidate(ctx, created.CourtID(), created.BookingDate())

	view, err := b.bookingQueries.GetByID(ctx, userID, user.RoleMember.String(), created.ID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, PaymentLink: outcome.PaymentLink}, nil
}

func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) (*CancelBookingResult, error) {
	var result *CancelBookingResult
	var courtID uuid.UUID
	var slotDate time.Time

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if snap.UserID != actorID && actorRole != user.RoleAdmin {
			return ErrBookingNotOwned
		}
		if !snap.Status.CanTransitionTo(booking.StatusCancelled) {
			return ErrBookingNotCancellable
		}

		affected, err := tx.Bookings().TransitionStatus(ctx, tx.DB(), bookingID, snap.Status, booking.StatusCancelled)
		if err != nil {
			return err
		}
		if affected != 1 {
			// Lost a race with another transition on the same booking.
			return ErrBookingNotCancellable
		}

		if err := tx.Slots().Release(ctx, tx.DB(), snap.SlotID); err != nil {
			return err
		}

		refundPercent := 0
		refundAmount := int64(0)
		// Refunds apply only to money actually collected: a confirmed
		// booking, or never for a still-pending gateway one.
		if snap.Status == booking.StatusConfirmed {
			refundPercent = booking.RefundPercent(snap.SlotStart.Sub(b.clock.Now()))
			payable, merr := booking.NewMoney(snap.PayableAmount)
			if merr != nil {
				return merr
			}
			refundAmount = payable.Percent(refundPercent).Amount()
		}

		if refundAmount > 0 {
			switch snap.PaymentMethod {
			case booking.PaymentWallet:
				if err := b.refundToWallet(ctx, tx, snap, refundAmount); err != nil {
					return err
				}
			case booking.PaymentPayOS:
				// Gateway refunds are asynchronous: hand them to the
				// operations queue instead of calling the gateway inline.
				if err := b.enqueueRefundRequest(ctx, tx, snap, refundAmount); err != nil {
					return err
				}
			}
		}

		if err := b.enqueueNotification(ctx, tx, topicBookingCancelled, bookingID, snap.UserID); err != nil {
			return err
		}

		courtID = snap.CourtID
		slotDate = snap.SlotDate
		result = &CancelBookingResult{
			BookingID:     bookingID,
			RefundPercent: refundPercent,
			RefundAmount:  refundAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.slotCache.Invalidate(ctx, courtID, slotDate)
	return result, nil
}

// ResolveGatewayPayment applies a verified webhook. A paid event confirms the
// pending booking; a declined or abandoned checkout cancels it and hands the
// slot back. Replays and unknown transitions are acknowledged without effect
// so the gateway stops retrying.
func (b *bookingCommandsImpl) ResolveGatewayPayment(ctx context.Context, event *payos.WebhookEvent) error {
	var (
		courtID  uuid.UUID
		slotDate time.Time
		released bool
	)

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByOrderCode(ctx, event.Data.OrderCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWebhookOrderUnknown
			}
			return err
		}

		if event.Paid() {
			affected, err := tx.Bookings().TransitionStatus(ctx, tx.DB(), snap.ID, booking.StatusPending, booking.StatusConfirmed)
			if err != nil {
				return err
			}
			if affected == 0 {
				// Replay or an already-swept booking: nothing left to confirm.
				slog.Info("gateway event had no effect", "booking_id", snap.ID, "status", snap.Status.String())
				return nil
			}
			return b.enqueueNotification(ctx, tx, topicBookingConfirmed, snap.ID, snap.UserID)
		}

		affected, err := tx.Bookings().TransitionStatus(ctx, tx.DB(), snap.ID, booking.StatusPending, booking.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			slog.Info("gateway failure event had no effect", "booking_id", snap.ID, "status", snap.Status.String())
			return nil
		}

		if err := tx.Slots().Release(ctx, tx.DB(), snap.SlotID); err != nil {
			return err
		}
		courtID, slotDate, released = snap.CourtID, snap.SlotDate, true

		return b.enqueueNotification(ctx, tx, topicBookingCancelled, snap.ID, snap.UserID)
	})
	if err != nil {
		return err
	}

	if released {
		b.slotCache.Invalidate(ctx, courtID, slotDate)
	}
	return nil
}

// Sweep is the admin reconciliation pass: confirmed bookings whose slot has
// ended become done, and gateway bookings stuck pending past the TTL are
// cancelled with their slots released.
func (b *bookingCommandsImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	var result SweepResult

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := b.clock.Now()

		promoted, err := tx.Bookings().PromoteEndedToDone(ctx, tx.DB(), now)
		if err != nil {
			return err
		}

		slotIDs, err := tx.Bookings().ExpireStalePending(ctx, tx.DB(), now.Add(-stalePendingTTL))
		if err != nil {
			return err
		}
		for _, slotID := range slotIDs {
			if err := tx.Slots().Release(ctx, tx.DB(), slotID); err != nil {
				return err
			}
		}

		result = SweepResult{PromotedToDone: promoted, ExpiredPending: len(slotIDs)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.ExpiredPending > 0 || result.PromotedToDone > 0 {
		slog.Info("booking sweep finished",
			"promoted_to_done", result.PromotedToDone,
			"expired_pending", result.ExpiredPending)
	}
	return &result, nil
}

// bookingFromSnapshot rehydrates enough of the entity to run state-machine
// decisions against a command-side snapshot.
func bookingFromSnapshot(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	amount, err := booking.NewMoney(snap.Amount)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		snap.ID, snap.CourtID, snap.SlotID, snap.UserID,
		snap.SlotDate, booking.NewCharge(amount), snap.PaymentMethod,
		snap.Status, nil, time.Time{}, time.Time{},
	), nil
}

func (b *bookingCommandsImpl) refundToWallet(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, amount int64) error {
	if err := tx.Wallets().Credit(ctx, tx.DB(), snap.UserID, amount); err != nil {
		return err
	}
	bookingID := snap.ID
	entry, err := wallet.NewTransaction(snap.UserID, &bookingID, wallet.DirectionIn, amount,
		fmt.Sprintf("refund for booking %s", bookingID))
	if err != nil {
		return err
	}
	return tx.Wallets().RecordTransaction(ctx, tx.DB(), entry)
}

func (b *bookingCommandsImpl) enqueueRefundRequest(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, amount int64) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": snap.ID,
		"user_id":    snap.UserID,
		"amount":     amount,
	})
	if err != nil {
		return err
	}
	return tx.Outbox().CreateJob(ctx, tx.DB(), outboxKindEmail, topicRefundRequested, payload, b.clock.Now())
}

func (b *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, bookingID, userID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"user_id":    userID,
	})
	if err != nil {
		return err
	}
	return tx.Outbox().CreateJob(ctx, tx.DB(), outboxKindEmail, topic, payload, b.clock.Now())
}
