package domain

// SelectionRequest carries the parameters of one provider lookup
type SelectionRequest struct {
	// Currency is the ISO 4217 code; nil lets the provider use the store default.
	Currency *string
	// Amount is in minor units (grosz); nil when the cart total is unknown.
	Amount          *int64
	BuyerExternalID *string
	IdempotencyKey  string
	ApplePayEnabled bool
}
