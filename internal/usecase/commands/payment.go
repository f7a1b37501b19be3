package commands

import (
	"context"
	"fmt"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/wallet"
	"courtbook/internal/integrations/payos"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"
)

var (
	ErrInsufficientFunds = errs.New("insufficient wallet balance")
	ErrPaymentGateway    = errs.New("payment gateway failure")
)

// PaymentOutcome reports how creation-time settlement ended: wallet payments
// settle immediately, gateway payments stay pending behind a checkout link.
type PaymentOutcome struct {
	Settled     bool
	PaymentLink *string
}

// PaymentRouter dispatches a fresh booking to its payment path. It runs
// inside the booking transaction so a failed settlement rolls back the slot
// reservation and the booking row together.
type PaymentRouter interface {
	Settle(ctx context.Context, tx shared.Tx, b *booking.Booking, orderCode int64) (*PaymentOutcome, error)
}

type paymentRouterImpl struct {
	gateway payos.Gateway
}

func NewPaymentRouter(gateway payos.Gateway) PaymentRouter {
	return &paymentRouterImpl{gateway: gateway}
}

func (p *paymentRouterImpl) Settle(ctx context.Context, tx shared.Tx, b *booking.Booking, orderCode int64) (*PaymentOutcome, error) {
	payable := b.Charge().Payable().Amount()

	// A fully discounted booking has nothing to collect on either path.
	if payable == 0 {
		if err := p.confirm(ctx, tx, b); err != nil {
			return nil, err
		}
		return &PaymentOutcome{Settled: true}, nil
	}

	switch b.PaymentMethod() {
	case booking.PaymentWallet:
		return p.settleWallet(ctx, tx, b, payable)
	case booking.PaymentPayOS:
		return p.requestGatewayLink(ctx, tx, b, orderCode, payable)
	default:
		return nil, booking.ErrInvalidPaymentMethod
	}
}

func (p *paymentRouterImpl) settleWallet(ctx context.Context, tx shared.Tx, b *booking.Booking, payable int64) (*PaymentOutcome, error) {
	debited, err := tx.Wallets().DebitIfSufficient(ctx, tx.DB(), b.UserID(), payable)
	if err != nil {
		return nil, err
	}
	if !debited {
		return nil, ErrInsufficientFunds
	}

	bookingID := b.ID()
	entry, err := wallet.NewTransaction(b.UserID(), &bookingID, wallet.DirectionOut, payable,
		fmt.Sprintf("payment for booking %s", bookingID))
	if err != nil {
		return nil, err
	}
	if err := tx.Wallets().RecordTransaction(ctx, tx.DB(), entry); err != nil {
		return nil, err
	}

	if err := p.confirm(ctx, tx, b); err != nil {
		return nil, err
	}
	return &PaymentOutcome{Settled: true}, nil
}

func (p *paymentRouterImpl) requestGatewayLink(ctx context.Context, tx shared.Tx, b *booking.Booking, orderCode, payable int64) (*PaymentOutcome, error) {
	checkout, err := p.gateway.CreatePaymentLink(ctx, payos.CreateLinkRequest{
		OrderCode:   orderCode,
		Amount:      payable,
		Description: "booking " + b.ID().String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	if err := tx.Bookings().SetPaymentLink(ctx, tx.DB(), b.ID(), checkout.CheckoutURL); err != nil {
		return nil, err
	}
	b.AttachPaymentLink(checkout.CheckoutURL)

	link := checkout.CheckoutURL
	return &PaymentOutcome{Settled: false, PaymentLink: &link}, nil
}

func (p *paymentRouterImpl) confirm(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if err := b.Confirm(); err != nil {
		return err
	}
	affected, err := tx.Bookings().TransitionStatus(ctx, tx.DB(), b.ID(), booking.StatusPending, booking.StatusConfirmed)
	if err != nil {
		return err
	}
	if affected != 1 {
		return booking.ErrInvalidTransition
	}
	return nil
}
