package booking

// Status is the closed booking-state enumeration. The persisted value uses
// exactly these casings; comparisons are always exact.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusDone      Status = "done"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusDone:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusDone
}

// CanTransitionTo encodes the state machine:
// pending → {confirmed, cancelled}; confirmed → {done, cancelled}.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusDone || next == StatusCancelled
	default:
		return false
	}
}

// PaymentMethod selects the settlement path; it is decided at creation time
// and immutable thereafter.
type PaymentMethod string

const (
	// PaymentPayOS settles through the external redirect gateway; the booking
	// stays pending until the webhook confirms.
	PaymentPayOS PaymentMethod = "payos"
	// PaymentWallet debits the internal prepaid balance synchronously.
	PaymentWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentPayOS, PaymentWallet:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}
