package domain

import (
	"context"
	"strings"

	"github.com/paynow/checkout-system/shared/models"
	"github.com/pkg/errors"
)

// Environment selects the provider's sandbox or production API
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

func NewEnvironment(value string) (Environment, error) {
	switch env := Environment(strings.ToLower(strings.TrimSpace(value))); env {
	case EnvironmentSandbox, EnvironmentProduction:
		return env, nil
	default:
		return "", errors.Errorf("unknown environment: %s", value)
	}
}

func (e Environment) String() string {
	return string(e)
}

// Credentials authenticate calls to the provider for one store
type Credentials struct {
	Environment  Environment
	APIKey       string
	SignatureKey string
}

// StoreConfiguration holds a store's payment settings. It is loaded per request
// and never mutated while handling it.
type StoreConfiguration struct {
	StoreID     string
	Credentials Credentials
	MainActive  bool
	BlikActive  bool
	CardActive  bool
	Timestamps  models.Timestamps
}

// NewStoreConfiguration validates and creates a store configuration
func NewStoreConfiguration(storeID string, credentials Credentials, mainActive, blikActive, cardActive bool) (*StoreConfiguration, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, errors.New("store_id cannot be empty")
	}

	if _, err := NewEnvironment(credentials.Environment.String()); err != nil {
		return nil, err
	}

	return &StoreConfiguration{
		StoreID:     storeID,
		Credentials: credentials,
		MainActive:  mainActive,
		BlikActive:  blikActive,
		CardActive:  cardActive,
		Timestamps:  models.NewTimestamps(),
	}, nil
}

// IsConfigured reports whether the store can talk to the provider at all
func (c *StoreConfiguration) IsConfigured() bool {
	return c != nil &&
		strings.TrimSpace(c.Credentials.APIKey) != "" &&
		strings.TrimSpace(c.Credentials.SignatureKey) != ""
}

// IsBlikActive reports whether the dedicated BLIK gateway is switched on
func (c *StoreConfiguration) IsBlikActive() bool {
	return c != nil && c.BlikActive
}

// StoreConfigurationRepository reads and writes store settings.
// FindByStoreID returns nil, nil when the store has no settings.
type StoreConfigurationRepository interface {
	FindByStoreID(ctx context.Context, storeID string) (*StoreConfiguration, error)
	Save(ctx context.Context, configuration *StoreConfiguration) error
}
