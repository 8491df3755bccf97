package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Verifier checks gateway callback signatures. The gateway signs
// "<orderID>|<paymentID>" with HMAC-SHA256 under the shared secret and
// sends the hex digest alongside the callback.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (v *Verifier) Verify(orderID, paymentID, signature string) bool {
	return hmac.Equal([]byte(v.Signature(orderID, paymentID)), []byte(signature))
}
