package application

import (
	"context"
	"strings"
	"time"

	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/paynow/checkout-system/shared/events"
	"github.com/paynow/checkout-system/shared/keys"
	"github.com/paynow/checkout-system/shared/models"
	"github.com/paynow/checkout-system/shared/telemetry"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	lookupService = "Payment"
	lookupAction  = "getPaymentMethods"
)

// SelectPaymentMethodsQuery represents a payment methods lookup for a cart
type SelectPaymentMethodsQuery struct {
	StoreID    string
	CartID     string
	CustomerID string
	Currency   string
	Amount     *decimal.Decimal
	// ApplePayFlag is the raw applePayEnabled value stored by the checkout front end
	ApplePayFlag string
}

// PaymentMethodResponse is the payment method shape rendered to checkout.
// The method type is used for filtering only and is not exposed.
type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Enabled     bool   `json:"enabled"`
}

// NewPaymentMethodResponse renders a payment method
func NewPaymentMethodResponse(method domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          method.ID,
		Name:        method.Name,
		Description: method.Description,
		Image:       method.Image,
		Enabled:     method.Enabled(),
	}
}

// PaymentMethodsLookupFailedData represents data for the lookup failed event
type PaymentMethodsLookupFailedData struct {
	StoreID       string       `json:"store_id"`
	Operation     string       `json:"operation"`
	PaymentMethod string       `json:"payment_method,omitempty"`
	Money         models.Money `json:"money"`
	Code          int          `json:"code"`
	Message       string       `json:"message"`
}

// ParseApplePayFlag sanitizes the applePayEnabled flag. Only "1" enables Apple Pay;
// "0" and any other value disable it.
func ParseApplePayFlag(raw string) bool {
	switch raw {
	case "1":
		return true
	default:
		return false
	}
}

// methodLookup parameterizes a lookup: which projection of the provider's
// result is returned and how failures are labelled.
type methodLookup struct {
	operation     string
	paymentMethod string
	project       func(set *domain.MethodSet, cfg *domain.StoreConfiguration) []domain.PaymentMethod
}

var (
	availableLookup = methodLookup{
		operation: "list_available",
		project:   availableMethods,
	}
	blikLookup = methodLookup{
		operation:     "get_blik_method",
		paymentMethod: "BLIK",
		project: func(set *domain.MethodSet, _ *domain.StoreConfiguration) []domain.PaymentMethod {
			return set.OnlyBlik()
		},
	}
	cardLookup = methodLookup{
		operation:     "get_card_method",
		paymentMethod: "card",
		project: func(set *domain.MethodSet, _ *domain.StoreConfiguration) []domain.PaymentMethod {
			return set.OnlyCards()
		},
	}
)

// availableMethods drops cards, which have their own gateway, and BLIK unless the
// store has BLIK switched on. Provider order is kept.
func availableMethods(set *domain.MethodSet, cfg *domain.StoreConfiguration) []domain.PaymentMethod {
	blikActive := cfg.IsBlikActive()

	methods := set.All()
	available := methods[:0]
	for _, method := range methods {
		switch method.Type {
		case domain.PaymentMethodTypeCard:
			continue
		case domain.PaymentMethodTypeBlik:
			if !blikActive {
				continue
			}
		}
		available = append(available, method)
	}

	return available
}

// PaymentMethodSelector use case selects the payment methods offered at checkout.
// Provider failures never reach the caller: they are logged, published and
// answered with an empty result.
type PaymentMethodSelector struct {
	storeSettings  domain.StoreConfigurationRepository
	provider       domain.PaymentMethodsProvider
	eventPublisher events.Publisher
	logger         *zap.Logger
}

// NewPaymentMethodSelector creates a new PaymentMethodSelector use case.
// eventPublisher may be nil when failure events are not wanted.
func NewPaymentMethodSelector(
	storeSettings domain.StoreConfigurationRepository,
	provider domain.PaymentMethodsProvider,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *PaymentMethodSelector {
	return &PaymentMethodSelector{
		storeSettings:  storeSettings,
		provider:       provider,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// ListAvailable returns the methods offered by the main gateway
func (s *PaymentMethodSelector) ListAvailable(ctx context.Context, query *SelectPaymentMethodsQuery) []PaymentMethodResponse {
	methods := s.lookup(ctx, query, availableLookup)

	response := make([]PaymentMethodResponse, 0, len(methods))
	for _, method := range methods {
		response = append(response, NewPaymentMethodResponse(method))
	}

	return response
}

// GetBlikMethod returns the BLIK method, or nil when there is none
func (s *PaymentMethodSelector) GetBlikMethod(ctx context.Context, query *SelectPaymentMethodsQuery) *domain.PaymentMethod {
	return first(s.lookup(ctx, query, blikLookup))
}

// GetCardMethod returns the card method, or nil when there is none
func (s *PaymentMethodSelector) GetCardMethod(ctx context.Context, query *SelectPaymentMethodsQuery) *domain.PaymentMethod {
	return first(s.lookup(ctx, query, cardLookup))
}

func (s *PaymentMethodSelector) lookup(ctx context.Context, query *SelectPaymentMethodsQuery, l methodLookup) []domain.PaymentMethod {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "select_payment_methods",
		trace.WithAttributes(
			attribute.String("operation", l.operation),
			attribute.String("store_id", query.StoreID),
		),
	)
	defer span.End()

	status := "error"
	defer func() {
		telemetry.RecordOperation(ctx, "payment_method_lookups", l.operation, status, start)
	}()

	cfg := s.loadConfiguration(ctx, query.StoreID)
	if !cfg.IsConfigured() {
		status = "not_configured"
		return nil
	}

	request := newSelectionRequest(query, cfg)

	set, ok := s.fetch(ctx, cfg, request, l)
	if !ok {
		return nil
	}

	methods := l.project(set, cfg)
	span.SetAttributes(attribute.Int("methods_count", len(methods)))

	status = "success"
	return methods
}

func (s *PaymentMethodSelector) loadConfiguration(ctx context.Context, storeID string) *domain.StoreConfiguration {
	cfg, err := s.storeSettings.FindByStoreID(ctx, storeID)
	if err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		s.logger.Error("failed to load store configuration",
			zap.String("service", lookupService),
			zap.String("action", "loadConfiguration"),
			zap.String("store_id", storeID),
			zap.Error(err),
		)
		return nil
	}

	return cfg
}

// newSelectionRequest builds the provider request. Every lookup sends the same
// parameter set, Apple Pay flag included.
func newSelectionRequest(query *SelectPaymentMethodsQuery, cfg *domain.StoreConfiguration) domain.SelectionRequest {
	request := domain.SelectionRequest{
		Amount:          models.FormatAmount(query.Amount),
		IdempotencyKey:  keys.IdempotencyKeyForCart(query.CartID),
		ApplePayEnabled: ParseApplePayFlag(query.ApplePayFlag),
	}

	if currency := strings.ToUpper(strings.TrimSpace(query.Currency)); currency != "" {
		request.Currency = &currency
	}

	if buyerExternalID := keys.BuyerExternalID(query.CustomerID, cfg.Credentials.SignatureKey); buyerExternalID != "" {
		request.BuyerExternalID = &buyerExternalID
	}

	return request
}

// fetch calls the provider and applies the error policy: any failure is published,
// logged in a single entry, and reported as ok == false.
func (s *PaymentMethodSelector) fetch(ctx context.Context, cfg *domain.StoreConfiguration, request domain.SelectionRequest, l methodLookup) (*domain.MethodSet, bool) {
	set, err := s.provider.GetPaymentMethods(ctx, cfg.Credentials, request)
	if err == nil {
		return set, true
	}

	trace.SpanFromContext(ctx).RecordError(err)

	code, message := 0, err.Error()
	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		code, message = providerErr.Code, providerErr.Message
	}

	fields := []zap.Field{
		zap.String("service", lookupService),
		zap.String("action", lookupAction),
		zap.String("operation", l.operation),
	}
	if l.paymentMethod != "" {
		fields = append(fields, zap.String("paymentMethod", l.paymentMethod))
	}
	fields = append(fields,
		zap.Stringp("currency", request.Currency),
		zap.Int64p("amount", request.Amount),
		zap.Int("code", code),
	)
	if err := s.publishLookupFailure(ctx, cfg.StoreID, request, l, code, message); err != nil {
		fields = append(fields, zap.NamedError("publishError", err))
	}
	s.logger.Error(message, fields...)

	return nil, false
}

func (s *PaymentMethodSelector) publishLookupFailure(ctx context.Context, storeID string, request domain.SelectionRequest, l methodLookup, code int, message string) error {
	if s.eventPublisher == nil {
		return nil
	}

	currency := ""
	if request.Currency != nil {
		currency = *request.Currency
	}

	event := events.NewEvent(models.ID(storeID), events.PaymentMethodsLookupFailedEvent, PaymentMethodsLookupFailedData{
		StoreID:       storeID,
		Operation:     l.operation,
		PaymentMethod: l.paymentMethod,
		Money:         models.NewMoney(request.Amount, currency),
		Code:          code,
		Message:       message,
	}).WithCorrelationID(models.ID(request.IdempotencyKey))

	return s.eventPublisher.Publish(ctx, event)
}

func first(methods []domain.PaymentMethod) *domain.PaymentMethod {
	if len(methods) == 0 {
		return nil
	}
	method := methods[0]
	return &method
}
