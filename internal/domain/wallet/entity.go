package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrNonPositiveAmount   = errors.New("transaction amount must be positive")
	ErrInvalidDirection    = errors.New("invalid transaction direction")
)

// Direction is the side of a wallet ledger entry as seen from the wallet:
// "out" for debits (payments), "in" for credits (top-ups, refunds).
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Wallet holds a user's prepaid balance. Debits are serialized by a
// conditional update at the storage layer; this type only models reads.
type Wallet struct {
	userID    uuid.UUID
	balance   int64
	updatedAt time.Time
}

func ReconstructWallet(userID uuid.UUID, balance int64, updatedAt time.Time) *Wallet {
	return &Wallet{userID: userID, balance: balance, updatedAt: updatedAt}
}

func (w *Wallet) CanPay(amount int64) bool {
	return w.balance >= amount
}

func (w *Wallet) UserID() uuid.UUID    { return w.userID }
func (w *Wallet) Balance() int64       { return w.balance }
func (w *Wallet) UpdatedAt() time.Time { return w.updatedAt }

// Transaction is one wallet ledger row.
type Transaction struct {
	id          uuid.UUID
	userID      uuid.UUID
	bookingID   *uuid.UUID
	direction   Direction
	amount      int64
	description string
	createdAt   time.Time
}

func NewTransaction(userID uuid.UUID, bookingID *uuid.UUID, direction Direction, amount int64, description string) (*Transaction, error) {
	if !direction.IsValid() {
		return nil, ErrInvalidDirection
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &Transaction{
		id:          uuid.New(),
		userID:      userID,
		bookingID:   bookingID,
		direction:   direction,
		amount:      amount,
		description: description,
	}, nil
}

func ReconstructTransaction(
	id, userID uuid.UUID,
	bookingID *uuid.UUID,
	direction Direction,
	amount int64,
	description string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		userID:      userID,
		bookingID:   bookingID,
		direction:   direction,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) UserID() uuid.UUID     { return t.userID }
func (t *Transaction) BookingID() *uuid.UUID { return t.bookingID }
func (t *Transaction) Direction() Direction  { return t.direction }
func (t *Transaction) Amount() int64         { return t.amount }
func (t *Transaction) Description() string   { return t.description }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }
