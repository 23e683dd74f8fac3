package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/paynow/checkout-system/checkout-service/application"
	"github.com/paynow/checkout-system/checkout-service/handlers"
	"github.com/paynow/checkout-system/checkout-service/infrastructure"
	"github.com/paynow/checkout-system/shared/events"
	sharedinfra "github.com/paynow/checkout-system/shared/infrastructure"
	"github.com/paynow/checkout-system/shared/telemetry"
	"go.uber.org/zap"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	StoreSettingsRepository *infrastructure.PostgresStoreSettingsRepository

	// Providers
	PaynowClient *infrastructure.PaynowClient

	// Use Cases
	PaymentMethodSelector *application.PaymentMethodSelector
	GetCheckoutConfig     *application.GetCheckoutConfig
	SyncStoreSettings     *application.SyncStoreSettings

	// HTTP Handlers
	CheckoutHandlers *handlers.CheckoutHandlers

	// Event Handlers
	StoreEventHandlers *handlers.StoreEventHandlers

	// Infrastructure
	EventLog        *sharedinfra.PostgresEventLog
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.CheckoutServiceConfig.
			WithOTLPEndpoint(config.Telemetry.OTLPEndpoint).
			WithSampleRatio(config.Telemetry.SampleRatio)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			// Continue without telemetry rather than failing
			logger.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.ConnectContext(ctx, "postgres", config.GetDatabaseURL())
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	awsConfig, err := sharedinfra.LoadAWSConfig(ctx, sharedinfra.AWSOptions{
		Region:          config.AWS.Region,
		AccessKeyID:     config.AWS.AccessKeyID,
		SecretAccessKey: config.AWS.SecretAccessKey,
	})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Lookup failure events always land in the event log; SNS is optional
	deps.EventLog = sharedinfra.NewPostgresEventLog(db)
	eventPublisher := events.MultiPublisher{deps.EventLog}
	if config.AWS.SNSTopicArn != "" {
		deps.EventPublisher = sharedinfra.NewSNSPublisherAdapter(awsConfig, config.AWS.EndpointSNS, config.AWS.SNSTopicArn)
		eventPublisher = append(eventPublisher, deps.EventPublisher)
	}

	if config.AWS.SQSQueueURL != "" {
		deps.EventSubscriber = sharedinfra.NewSQSSubscriberAdapter(awsConfig, config.AWS.EndpointSQS, config.AWS.SQSQueueURL, logger)
	}

	// Initialize repositories
	deps.StoreSettingsRepository = infrastructure.NewPostgresStoreSettingsRepository(db)

	// Initialize providers
	deps.PaynowClient = infrastructure.NewPaynowClient(infrastructure.PaynowClientConfig{
		ProductionURL: config.Paynow.ProductionURL,
		SandboxURL:    config.Paynow.SandboxURL,
		Timeout:       config.Paynow.Timeout,
		MaxRetries:    config.Paynow.MaxRetries,
		RetryDelay:    config.Paynow.RetryDelay,
		UserAgent:     config.Paynow.UserAgent,
	}, nil, logger.Named("paynow"))

	// Initialize use cases
	deps.PaymentMethodSelector = application.NewPaymentMethodSelector(
		deps.StoreSettingsRepository,
		deps.PaynowClient,
		eventPublisher,
		logger,
	)
	deps.GetCheckoutConfig = application.NewGetCheckoutConfig(deps.StoreSettingsRepository, logger)
	deps.SyncStoreSettings = application.NewSyncStoreSettings(deps.StoreSettingsRepository, logger)

	// Initialize handlers
	deps.CheckoutHandlers = handlers.NewCheckoutHandlers(deps.PaymentMethodSelector, deps.GetCheckoutConfig, logger)
	deps.StoreEventHandlers = handlers.NewStoreEventHandlers(deps.SyncStoreSettings, logger)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
