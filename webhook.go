package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ValidateWebhookSignature verifies that signature matches the hex-encoded
// HMAC-SHA256 digest of the raw webhook body under the dashboard-issued
// secret. The body must be the unparsed request payload exactly as
// received; signature is the value of the X-Razorpay-Signature header.
//
// The comparison is constant-time. An error is returned when signature or
// secret is missing, since verification cannot be attempted without them.
func ValidateWebhookSignature(body []byte, signature, secret string) (bool, error) {
	if signature == "" || secret == "" {
		return false, newMissingParameter(
			"request body, signature sent in X-Razorpay-Signature header and " +
				"webhook secret from dashboard are required")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
