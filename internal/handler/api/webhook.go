package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"courtbook/internal/integrations/payos"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodySize = 64 * 1024

type WebhookHandler struct {
	bookingCommands commands.BookingCommands
	payosCfg        config.PayOSConfig
}

func NewWebhookHandler(bookingCommands commands.BookingCommands, payosCfg config.PayOSConfig) *WebhookHandler {
	return &WebhookHandler{
		bookingCommands: bookingCommands,
		payosCfg:        payosCfg,
	}
}

// @Summary PayOS webhook
// @Description Signature-verified payment settlement callback
// @Tags webhooks
// @Accept json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/payos [post]
func (h *WebhookHandler) HandlePayOS(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodySize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	var envelope struct {
		Code      string          `json:"code"`
		Desc      string          `json:"desc"`
		Success   bool            `json:"success"`
		Data      json.RawMessage `json:"data"`
		Signature string          `json:"signature"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook payload",
		})
		return
	}

	if !payos.VerifyWebhookSignature(h.payosCfg.ChecksumKey, envelope.Data, envelope.Signature) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	var data payos.WebhookData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook payload",
		})
		return
	}

	event := &payos.WebhookEvent{
		Code:      envelope.Code,
		Desc:      envelope.Desc,
		Success:   envelope.Success,
		Data:      data,
		Signature: envelope.Signature,
	}

	if err := h.bookingCommands.ResolveGatewayPayment(c.Request.Context(), event); err != nil {
		// Unknown order codes are acknowledged: retrying cannot make the
		// gateway's reference resolve to a booking we never created.
		if errors.Is(err, commands.ErrWebhookOrderUnknown) {
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
