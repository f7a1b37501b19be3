//go:build unit

package api_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"courtbook/internal/handler/api"
	"courtbook/internal/integrations/payos"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/tests/common/httptest"
	commandsmock "courtbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookChecksumKey = "test-checksum-key"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	handler := api.NewWebhookHandler(s.mockCommands, config.PayOSConfig{ChecksumKey: webhookChecksumKey})

	s.router.POST("/webhooks/payos", handler.HandlePayOS)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func webhookData(orderCode int64) map[string]any {
	return map[string]any{
		"orderCode":   orderCode,
		"amount":      120000,
		"description": "booking",
		"reference":   "FT2025",
		"code":        "00",
		"desc":        "success",
	}
}

// Mirrors the gateway's scheme: data keys sorted alphabetically, joined as a
// query string, HMAC-SHA256 with the checksum key.
func signData(orderCode int64) string {
	payload := fmt.Sprintf(
		"amount=120000&code=00&desc=success&description=booking&orderCode=%d&reference=FT2025",
		orderCode,
	)
	mac := hmac.New(sha256.New, []byte(webhookChecksumKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func signedEnvelope(orderCode int64) map[string]any {
	return map[string]any{
		"code":      "00",
		"desc":      "success",
		"success":   true,
		"data":      webhookData(orderCode),
		"signature": signData(orderCode),
	}
}

func (s *WebhookHandlerTestSuite) TestHandlePayOS() {
	url := "/webhooks/payos"

	s.Run("success: verified event settles the booking", func() {
		s.mockCommands.EXPECT().ResolveGatewayPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *payos.WebhookEvent) error {
				s.Equal(int64(1001), event.Data.OrderCode)
				s.True(event.Paid())
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, signedEnvelope(1001), "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ok", body["status"])
	})

	s.Run("success: unknown order code is acknowledged as ignored", func() {
		s.mockCommands.EXPECT().ResolveGatewayPayment(gomock.Any(), gomock.Any()).
			Return(commands.ErrWebhookOrderUnknown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, signedEnvelope(9999), "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body["status"])
	})

	s.Run("error: 401 Unauthorized on a bad signature", func() {
		envelope := signedEnvelope(1001)
		envelope["signature"] = signData(2002)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, envelope, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid signature")
	})

	s.Run("error: 401 Unauthorized on tampered data", func() {
		envelope := signedEnvelope(1001)
		data := webhookData(1001)
		data["amount"] = 1
		envelope["data"] = data

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, envelope, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid signature")
	})

	s.Run("error: 400 Bad Request on a malformed payload", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-json-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook payload")
	})

	s.Run("error: 500 Internal Server Error on settlement failure", func() {
		s.mockCommands.EXPECT().ResolveGatewayPayment(gomock.Any(), gomock.Any()).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, signedEnvelope(1001), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
