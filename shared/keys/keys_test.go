package keys

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdempotencyKeyForCart(t *testing.T) {
	t.Run("same cart gives the same key", func(t *testing.T) {
		assert.Equal(t, IdempotencyKeyForCart("1001"), IdempotencyKeyForCart("1001"))
	})

	t.Run("different carts give different keys", func(t *testing.T) {
		assert.NotEqual(t, IdempotencyKeyForCart("1001"), IdempotencyKeyForCart("1002"))
	})

	t.Run("key is a valid uuid", func(t *testing.T) {
		key := IdempotencyKeyForCart("1001")
		parsed, err := uuid.Parse(key)
		assert.NoError(t, err)
		assert.Equal(t, uuid.Version(5), parsed.Version())
	})

	t.Run("key is derived from the cart external id", func(t *testing.T) {
		assert.Equal(t, IdempotencyKey(ExternalIDFromCartID("42")), IdempotencyKeyForCart("42"))
		assert.Equal(t, "cart_42", ExternalIDFromCartID(" 42 "))
	})
}

func TestBuyerExternalID(t *testing.T) {
	t.Run("empty customer has no buyer id", func(t *testing.T) {
		assert.Empty(t, BuyerExternalID("", "secret"))
		assert.Empty(t, BuyerExternalID("  ", "secret"))
	})

	t.Run("stable for the same customer and key", func(t *testing.T) {
		assert.Equal(t, BuyerExternalID("7", "secret"), BuyerExternalID("7", "secret"))
		assert.Len(t, BuyerExternalID("7", "secret"), 64)
	})

	t.Run("depends on the signature key", func(t *testing.T) {
		assert.NotEqual(t, BuyerExternalID("7", "secret"), BuyerExternalID("7", "other"))
	})
}
