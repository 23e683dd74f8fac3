package domain

// GatewayCode identifies one of the checkout payment gateways
type GatewayCode string

const (
	GatewayCodeMain GatewayCode = "paynow_gateway"
	GatewayCodeBlik GatewayCode = "paynow_blik_gateway"
	GatewayCodeCard GatewayCode = "paynow_card_gateway"
)

// Renderer is a checkout renderer entry the front end registers
type Renderer struct {
	Type      GatewayCode `json:"type"`
	Component string      `json:"component"`
}

// gatewayRenderers lists the renderers in registration order
var gatewayRenderers = []Renderer{
	{Type: GatewayCodeMain, Component: "Paynow_PaymentGateway/js/view/payment/method-renderer/paynow_gateway"},
	{Type: GatewayCodeBlik, Component: "Paynow_PaymentGateway/js/view/payment/paynow_blik_gateway"},
	{Type: GatewayCodeCard, Component: "Paynow_PaymentGateway/js/view/payment/paynow_card_gateway"},
}

// GatewayFlags returns the isActive flag of every gateway for this store.
// Nothing is active on a store that is not configured.
func (c *StoreConfiguration) GatewayFlags() map[GatewayCode]bool {
	configured := c.IsConfigured()
	return map[GatewayCode]bool{
		GatewayCodeMain: configured && c.MainActive,
		GatewayCodeBlik: configured && c.BlikActive,
		GatewayCodeCard: configured && c.CardActive,
	}
}

// ActiveRenderers returns the renderers whose gateway flag is set, in registration order
func ActiveRenderers(flags map[GatewayCode]bool) []Renderer {
	renderers := make([]Renderer, 0, len(gatewayRenderers))
	for _, renderer := range gatewayRenderers {
		if flags[renderer.Type] {
			renderers = append(renderers, renderer)
		}
	}
	return renderers
}
