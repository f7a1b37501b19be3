package booking

import "time"

// Refund tiers: full refund two hours or more before the slot starts, half
// refund between one and two hours, nothing under one hour or after start.
const (
	fullRefundLead = 2 * time.Hour
	halfRefundLead = 1 * time.Hour
)

// RefundPercent maps time-until-slot-start to a refund percentage. It is
// total over all durations: negative values (the slot already started) refund
// nothing.
func RefundPercent(untilStart time.Duration) int {
	switch {
	case untilStart >= fullRefundLead:
		return 100
	case untilStart >= halfRefundLead:
		return 50
	default:
		return 0
	}
}
