package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/paynow/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// PostgresStoreSettingsRepository implements StoreConfigurationRepository using PostgreSQL
type PostgresStoreSettingsRepository struct {
	db *sqlx.DB
}

// NewPostgresStoreSettingsRepository creates a new PostgresStoreSettingsRepository
func NewPostgresStoreSettingsRepository(db *sqlx.DB) *PostgresStoreSettingsRepository {
	return &PostgresStoreSettingsRepository{db: db}
}

// postgresStoreSettings represents store settings in database
type postgresStoreSettings struct {
	StoreID      string    `db:"store_id"`
	Environment  string    `db:"environment"`
	APIKey       string    `db:"api_key"`
	SignatureKey string    `db:"signature_key"`
	MainActive   bool      `db:"main_active"`
	BlikActive   bool      `db:"blik_active"`
	CardActive   bool      `db:"card_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Save upserts the settings. A row updated later than the given settings is kept.
func (r *PostgresStoreSettingsRepository) Save(ctx context.Context, cfg *domain.StoreConfiguration) error {
	query := `
		INSERT INTO store_settings (
			store_id, environment, api_key, signature_key,
			main_active, blik_active, card_active,
			created_at, updated_at
		) VALUES (
			:store_id, :environment, :api_key, :signature_key,
			:main_active, :blik_active, :card_active,
			:created_at, :updated_at
		)
		ON CONFLICT (store_id) DO UPDATE SET
			environment = EXCLUDED.environment,
			api_key = EXCLUDED.api_key,
			signature_key = EXCLUDED.signature_key,
			main_active = EXCLUDED.main_active,
			blik_active = EXCLUDED.blik_active,
			card_active = EXCLUDED.card_active,
			updated_at = EXCLUDED.updated_at
		WHERE store_settings.updated_at <= EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(cfg))
	if err != nil {
		return errors.Wrap(err, "failed to save store settings")
	}

	return nil
}

// FindByStoreID finds the settings of a store
func (r *PostgresStoreSettingsRepository) FindByStoreID(ctx context.Context, storeID string) (*domain.StoreConfiguration, error) {
	query := `
		SELECT store_id, environment, api_key, signature_key,
			   main_active, blik_active, card_active,
			   created_at, updated_at
		FROM store_settings
		WHERE store_id = $1`

	var pgSettings postgresStoreSettings
	err := r.db.GetContext(ctx, &pgSettings, query, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find store settings")
	}

	return r.toDomain(&pgSettings)
}

func (r *PostgresStoreSettingsRepository) toPostgres(cfg *domain.StoreConfiguration) *postgresStoreSettings {
	return &postgresStoreSettings{
		StoreID:      cfg.StoreID,
		Environment:  cfg.Credentials.Environment.String(),
		APIKey:       cfg.Credentials.APIKey,
		SignatureKey: cfg.Credentials.SignatureKey,
		MainActive:   cfg.MainActive,
		BlikActive:   cfg.BlikActive,
		CardActive:   cfg.CardActive,
		CreatedAt:    cfg.Timestamps.CreatedAt,
		UpdatedAt:    cfg.Timestamps.UpdatedAt,
	}
}

func (r *PostgresStoreSettingsRepository) toDomain(pgSettings *postgresStoreSettings) (*domain.StoreConfiguration, error) {
	environment, err := domain.NewEnvironment(pgSettings.Environment)
	if err != nil {
		return nil, errors.Wrapf(err, "store %s", pgSettings.StoreID)
	}

	return &domain.StoreConfiguration{
		StoreID: pgSettings.StoreID,
		Credentials: domain.Credentials{
			Environment:  environment,
			APIKey:       pgSettings.APIKey,
			SignatureKey: pgSettings.SignatureKey,
		},
		MainActive: pgSettings.MainActive,
		BlikActive: pgSettings.BlikActive,
		CardActive: pgSettings.CardActive,
		Timestamps: models.Timestamps{
			CreatedAt: pgSettings.CreatedAt.UTC(),
			UpdatedAt: pgSettings.UpdatedAt.UTC(),
		},
	}, nil
}
