package domain

// PaymentMethodType is the provider's classification of a payment method
type PaymentMethodType string

const (
	PaymentMethodTypeBlik       PaymentMethodType = "BLIK"
	PaymentMethodTypeCard       PaymentMethodType = "CARD"
	PaymentMethodTypePBL        PaymentMethodType = "PBL"
	PaymentMethodTypeGooglePay  PaymentMethodType = "GOOGLE_PAY"
	PaymentMethodTypeApplePay   PaymentMethodType = "APPLE_PAY"
	PaymentMethodTypePayPo      PaymentMethodType = "PAYPO"
	PaymentMethodTypeClickToPay PaymentMethodType = "CLICK_TO_PAY"
	PaymentMethodTypeOther      PaymentMethodType = "OTHER"
)

var allPaymentMethodTypes = map[string]PaymentMethodType{
	PaymentMethodTypeBlik.String():       PaymentMethodTypeBlik,
	PaymentMethodTypeCard.String():       PaymentMethodTypeCard,
	PaymentMethodTypePBL.String():        PaymentMethodTypePBL,
	PaymentMethodTypeGooglePay.String():  PaymentMethodTypeGooglePay,
	PaymentMethodTypeApplePay.String():   PaymentMethodTypeApplePay,
	PaymentMethodTypePayPo.String():      PaymentMethodTypePayPo,
	PaymentMethodTypeClickToPay.String(): PaymentMethodTypeClickToPay,
}

// NewPaymentMethodType maps a provider type name. Names this service does not know
// about become PaymentMethodTypeOther so new provider types never break checkout.
func NewPaymentMethodType(value string) PaymentMethodType {
	if value, ok := allPaymentMethodTypes[value]; ok {
		return value
	}
	return PaymentMethodTypeOther
}

func (pt PaymentMethodType) String() string {
	return string(pt)
}
