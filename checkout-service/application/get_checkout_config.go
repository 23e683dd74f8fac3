package application

import (
	"context"
	"time"

	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/paynow/checkout-system/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// GetCheckoutConfigQuery represents the query to get a store's checkout config
type GetCheckoutConfigQuery struct {
	StoreID string
}

// GatewayConfig is the checkout config of one gateway
type GatewayConfig struct {
	IsActive bool `json:"isActive"`
}

// CheckoutConfigResponse is what the checkout front end needs to register its renderers
type CheckoutConfigResponse struct {
	Payment   map[domain.GatewayCode]GatewayConfig `json:"payment"`
	Renderers []domain.Renderer                    `json:"renderers"`
}

// GetCheckoutConfig use case
type GetCheckoutConfig struct {
	storeSettings domain.StoreConfigurationRepository
	logger        *zap.Logger
}

// NewGetCheckoutConfig creates a new GetCheckoutConfig use case
func NewGetCheckoutConfig(storeSettings domain.StoreConfigurationRepository, logger *zap.Logger) *GetCheckoutConfig {
	return &GetCheckoutConfig{
		storeSettings: storeSettings,
		logger:        logger,
	}
}

// Execute computes the gateway flags and active renderers. A store that cannot be
// loaded gets every gateway reported inactive.
func (uc *GetCheckoutConfig) Execute(ctx context.Context, query *GetCheckoutConfigQuery) (*CheckoutConfigResponse, error) {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "get_checkout_config",
		trace.WithAttributes(attribute.String("store_id", query.StoreID)),
	)
	defer span.End()

	if query.StoreID == "" {
		return nil, errors.New("store ID is required")
	}

	cfg, err := uc.storeSettings.FindByStoreID(ctx, query.StoreID)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("failed to load store configuration",
			zap.String("action", "loadConfiguration"),
			zap.String("store_id", query.StoreID),
			zap.Error(err),
		)
		cfg = nil
	}

	flags := cfg.GatewayFlags()
	payment := make(map[domain.GatewayCode]GatewayConfig, len(flags))
	for code, active := range flags {
		payment[code] = GatewayConfig{IsActive: active}
	}

	renderers := domain.ActiveRenderers(flags)
	span.SetAttributes(attribute.Int("renderers_count", len(renderers)))
	telemetry.RecordOperation(ctx, "checkout_config_requests", "get_checkout_config", "success", start)

	return &CheckoutConfigResponse{
		Payment:   payment,
		Renderers: renderers,
	}, nil
}
