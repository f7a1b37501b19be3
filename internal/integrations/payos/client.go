package payos

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"
)

var (
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
	ErrRequestRejected    = errs.New("payment gateway rejected request")
)

// Gateway is the payment-link port the booking command depends on.
type Gateway interface {
	CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (*CheckoutData, error)
}

type Client struct {
	cfg        config.PayOSConfig
	httpClient *http.Client
}

func NewClient(cfg config.PayOSConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (*CheckoutData, error) {
	body := paymentRequestBody{
		OrderCode:   req.OrderCode,
		Amount:      req.Amount,
		Description: req.Description,
		ReturnURL:   c.cfg.ReturnURL,
		CancelURL:   c.cfg.CancelURL,
	}
	body.Signature = signPaymentRequest(c.cfg.ChecksumKey, body)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal payment request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v2/payment-requests", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-client-id", c.cfg.ClientID)
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errs.Mark(errs.New("payment gateway returned "+resp.Status), ErrGatewayUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errs.Mark(errs.New("payment request failed: "+resp.Status+": "+string(raw)), ErrRequestRejected)
	}

	var respBody paymentResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment response")
	}
	if respBody.Code != "00" || respBody.Data == nil {
		return nil, errs.Mark(errs.New("payment request rejected: "+respBody.Desc), ErrRequestRejected)
	}
	return respBody.Data, nil
}
