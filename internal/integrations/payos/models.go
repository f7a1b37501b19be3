package payos

// CreateLinkRequest is the gateway-facing view of a booking charge. OrderCode
// is the numeric order reference PayOS requires; the booking ID travels in
// the description for reconciliation.
type CreateLinkRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
}

type paymentRequestBody struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	ReturnURL   string `json:"returnUrl"`
	CancelURL   string `json:"cancelUrl"`
	Signature   string `json:"signature"`
}

type paymentResponseBody struct {
	Code string        `json:"code"`
	Desc string        `json:"desc"`
	Data *CheckoutData `json:"data"`
}

// CheckoutData is the subset of the payment-link response the platform keeps.
type CheckoutData struct {
	PaymentLinkID string `json:"paymentLinkId"`
	CheckoutURL   string `json:"checkoutUrl"`
	OrderCode     int64  `json:"orderCode"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}

// WebhookEvent is the signed callback body PayOS posts on payment settlement.
type WebhookEvent struct {
	Code      string      `json:"code"`
	Desc      string      `json:"desc"`
	Success   bool        `json:"success"`
	Data      WebhookData `json:"data"`
	Signature string      `json:"signature"`
}

type WebhookData struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Code        string `json:"code"`
	Desc        string `json:"desc"`
}

// Paid reports whether the event settles the payment. PayOS uses "00" as its
// success code at both levels.
func (e *WebhookEvent) Paid() bool {
	return e.Success && e.Code == "00" && e.Data.Code == "00"
}
