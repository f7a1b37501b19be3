package payos

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// signPaymentRequest builds the HMAC-SHA256 signature PayOS expects on
// payment-request creation: the five payload fields in fixed alphabetical
// order, query-string encoded, keyed with the merchant checksum key.
func signPaymentRequest(checksumKey string, body paymentRequestBody) string {
	payload := fmt.Sprintf(
		"amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		body.Amount, body.CancelURL, body.Description, body.OrderCode, body.ReturnURL,
	)
	return hmacHex(checksumKey, payload)
}

// VerifyWebhookSignature checks the callback signature: the raw data object's
// keys sorted alphabetically, joined as a query string, HMAC'd with the
// checksum key. Comparison is constant time.
func VerifyWebhookSignature(checksumKey string, data json.RawMessage, signature string) bool {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+stringifyField(fields[k]))
	}

	expected := hmacHex(checksumKey, strings.Join(parts, "&"))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func stringifyField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		// Integers survive the round trip; PayOS sends no fractional amounts.
		return strings.TrimSuffix(fmt.Sprintf("%.0f", val), ".")
	default:
		raw, _ := json.Marshal(val)
		return string(raw)
	}
}

func hmacHex(key, payload string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
