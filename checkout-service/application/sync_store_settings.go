package application

import (
	"context"
	"strings"
	"time"

	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SyncStoreSettingsCommand represents a store settings update published by the shop admin
type SyncStoreSettingsCommand struct {
	StoreID      string    `json:"store_id"`
	Environment  string    `json:"environment"`
	APIKey       string    `json:"api_key"`
	SignatureKey string    `json:"signature_key"`
	MainActive   bool      `json:"main_active"`
	BlikActive   bool      `json:"blik_active"`
	CardActive   bool      `json:"card_active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SyncStoreSettings use case stores the latest settings of a store
type SyncStoreSettings struct {
	storeSettings domain.StoreConfigurationRepository
	logger        *zap.Logger
}

// NewSyncStoreSettings creates a new SyncStoreSettings use case
func NewSyncStoreSettings(storeSettings domain.StoreConfigurationRepository, logger *zap.Logger) *SyncStoreSettings {
	return &SyncStoreSettings{
		storeSettings: storeSettings,
		logger:        logger,
	}
}

// Execute validates the update and upserts it. Updates older than the stored row are ignored by the repository.
func (uc *SyncStoreSettings) Execute(ctx context.Context, cmd *SyncStoreSettingsCommand) error {
	if cmd == nil {
		return errors.New("command is required")
	}

	environment, err := domain.NewEnvironment(cmd.Environment)
	if err != nil {
		return errors.Wrap(err, "invalid command")
	}

	cfg, err := domain.NewStoreConfiguration(
		strings.TrimSpace(cmd.StoreID),
		domain.Credentials{
			Environment:  environment,
			APIKey:       strings.TrimSpace(cmd.APIKey),
			SignatureKey: strings.TrimSpace(cmd.SignatureKey),
		},
		cmd.MainActive,
		cmd.BlikActive,
		cmd.CardActive,
	)
	if err != nil {
		return errors.Wrap(err, "invalid command")
	}

	if !cmd.UpdatedAt.IsZero() {
		cfg.Timestamps.UpdatedAt = cmd.UpdatedAt.UTC()
	}

	if err := uc.storeSettings.Save(ctx, cfg); err != nil {
		return errors.Wrap(err, "failed to save store settings")
	}

	uc.logger.Info("store settings synced",
		zap.String("store_id", cfg.StoreID),
		zap.String("environment", environment.String()),
		zap.Bool("configured", cfg.IsConfigured()),
	)

	return nil
}
