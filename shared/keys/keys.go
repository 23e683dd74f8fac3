// Package keys derives the identifiers sent to the payment provider for a checkout.
package keys

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// idempotencyNamespace scopes generated idempotency keys to this service.
var idempotencyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://paynow.pl/checkout/idempotency"))

// ExternalIDFromCartID maps a cart identifier to the external id used for the cart's payment.
func ExternalIDFromCartID(cartID string) string {
	return "cart_" + strings.TrimSpace(cartID)
}

// IdempotencyKey returns a key that is stable for the same external id.
func IdempotencyKey(externalID string) string {
	return uuid.NewSHA1(idempotencyNamespace, []byte(externalID)).String()
}

// IdempotencyKeyForCart is IdempotencyKey(ExternalIDFromCartID(cartID)).
func IdempotencyKeyForCart(cartID string) string {
	return IdempotencyKey(ExternalIDFromCartID(cartID))
}

// BuyerExternalID returns the opaque buyer id for a customer, keyed with the store's signature key.
// An empty customer id yields an empty buyer id.
func BuyerExternalID(customerID, signatureKey string) string {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ""
	}

	mac := hmac.New(sha256.New, []byte(signatureKey))
	mac.Write([]byte(customerID))
	return hex.EncodeToString(mac.Sum(nil))
}
