package booking

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in Vietnamese đồng. VND has no minor unit, so the value
// is a whole number.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) ApplyPercentDiscount(percent int) Money {
	if percent <= 0 {
		return m
	}
	if percent >= 100 {
		return Money{amount: 0}
	}
	return Money{amount: m.amount * int64(100-percent) / 100}
}

// Percent applies a refund percentage, rounding down.
func (m Money) Percent(percent int) Money {
	if percent <= 0 {
		return Money{amount: 0}
	}
	if percent >= 100 {
		return m
	}
	return Money{amount: m.amount * int64(percent) / 100}
}

// Charge is the amount/discount snapshot a booking exclusively owns. Later
// voucher or court-price changes never alter it.
type Charge struct {
	amount          Money
	discounted      *Money
	discountPercent *int
	voucherCode     *string
}

func NewCharge(amount Money) Charge {
	return Charge{amount: amount}
}

func NewDiscountedCharge(amount Money, discountPercent int, voucherCode string) Charge {
	discounted := amount.ApplyPercentDiscount(discountPercent)
	return Charge{
		amount:          amount,
		discounted:      &discounted,
		discountPercent: &discountPercent,
		voucherCode:     &voucherCode,
	}
}

func ReconstructCharge(amount int64, discounted *int64, discountPercent *int, voucherCode *string) Charge {
	c := Charge{amount: Money{amount: amount}}
	if discounted != nil {
		m := Money{amount: *discounted}
		c.discounted = &m
	}
	c.discountPercent = discountPercent
	c.voucherCode = voucherCode
	return c
}

// Payable is the amount actually settled: the discounted amount when a
// voucher was applied, the raw amount otherwise.
func (c Charge) Payable() Money {
	if c.discounted != nil {
		return *c.discounted
	}
	return c.amount
}

func (c Charge) Amount() Money { return c.amount }

func (c Charge) DiscountedAmount() *int64 {
	if c.discounted == nil {
		return nil
	}
	v := c.discounted.amount
	return &v
}

func (c Charge) DiscountPercent() *int { return c.discountPercent }
func (c Charge) VoucherCode() *string  { return c.voucherCode }
