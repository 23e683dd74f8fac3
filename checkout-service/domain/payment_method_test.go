package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaymentMethodType(t *testing.T) {
	assert.Equal(t, PaymentMethodTypeBlik, NewPaymentMethodType("BLIK"))
	assert.Equal(t, PaymentMethodTypeCard, NewPaymentMethodType("CARD"))
	assert.Equal(t, PaymentMethodTypePBL, NewPaymentMethodType("PBL"))
	assert.Equal(t, PaymentMethodTypeOther, NewPaymentMethodType("SOMETHING_NEW"))
	assert.Equal(t, PaymentMethodTypeOther, NewPaymentMethodType("blik"))
}

func TestMethodSet(t *testing.T) {
	card := PaymentMethod{ID: "1", Type: PaymentMethodTypeCard, Status: PaymentMethodStatusEnabled}
	blik := PaymentMethod{ID: "2", Type: PaymentMethodTypeBlik, Status: PaymentMethodStatusEnabled}
	pbl := PaymentMethod{ID: "3", Type: PaymentMethodTypePBL, Status: PaymentMethodStatusDisabled}
	secondCard := PaymentMethod{ID: "4", Type: PaymentMethodTypeCard}

	set := NewMethodSet(card, blik, pbl, secondCard)

	t.Run("all keeps provider order", func(t *testing.T) {
		assert.Equal(t, []PaymentMethod{card, blik, pbl, secondCard}, set.All())
	})

	t.Run("only blik", func(t *testing.T) {
		assert.Equal(t, []PaymentMethod{blik}, set.OnlyBlik())
	})

	t.Run("only cards", func(t *testing.T) {
		assert.Equal(t, []PaymentMethod{card, secondCard}, set.OnlyCards())
	})

	t.Run("projections do not alias the set", func(t *testing.T) {
		all := set.All()
		all[0].Name = "changed"
		assert.Empty(t, set.All()[0].Name)
	})

	t.Run("empty and nil sets", func(t *testing.T) {
		assert.Empty(t, NewMethodSet().OnlyCards())
		var nilSet *MethodSet
		assert.Empty(t, nilSet.All())
	})
}

func TestPaymentMethod_Enabled(t *testing.T) {
	assert.True(t, PaymentMethod{Status: PaymentMethodStatusEnabled}.Enabled())
	assert.False(t, PaymentMethod{Status: PaymentMethodStatusDisabled}.Enabled())
	assert.False(t, PaymentMethod{}.Enabled())
}

func TestProviderError(t *testing.T) {
	err := NewProviderError(504, "timeout", nil)
	assert.Equal(t, "paynow: timeout (code 504)", err.Error())
	assert.Nil(t, err.Unwrap())
}
