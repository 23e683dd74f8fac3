package domain

// PaymentMethodStatus tells whether the provider currently accepts a method
type PaymentMethodStatus string

const (
	PaymentMethodStatusEnabled  PaymentMethodStatus = "ENABLED"
	PaymentMethodStatusDisabled PaymentMethodStatus = "DISABLED"
)

// PaymentMethod is a payment option returned by the provider lookup
type PaymentMethod struct {
	ID                string
	Name              string
	Description       string
	Image             string
	Status            PaymentMethodStatus
	Type              PaymentMethodType
	AuthorizationType string
}

// Enabled reports whether the method can be used right now
func (m PaymentMethod) Enabled() bool {
	return m.Status == PaymentMethodStatusEnabled
}

// MethodSet is the provider's answer to a lookup, in provider order
type MethodSet struct {
	methods []PaymentMethod
}

// NewMethodSet creates a method set from the provider's ordered result
func NewMethodSet(methods ...PaymentMethod) *MethodSet {
	return &MethodSet{methods: methods}
}

// All returns every method
func (s *MethodSet) All() []PaymentMethod {
	return s.filter(func(PaymentMethod) bool { return true })
}

// OnlyBlik returns the BLIK methods
func (s *MethodSet) OnlyBlik() []PaymentMethod {
	return s.ofType(PaymentMethodTypeBlik)
}

// OnlyCards returns the card methods
func (s *MethodSet) OnlyCards() []PaymentMethod {
	return s.ofType(PaymentMethodTypeCard)
}

func (s *MethodSet) ofType(paymentType PaymentMethodType) []PaymentMethod {
	return s.filter(func(m PaymentMethod) bool { return m.Type == paymentType })
}

func (s *MethodSet) filter(keep func(PaymentMethod) bool) []PaymentMethod {
	if s == nil {
		return nil
	}

	result := make([]PaymentMethod, 0, len(s.methods))
	for _, m := range s.methods {
		if keep(m) {
			result = append(result, m)
		}
	}
	return result
}
