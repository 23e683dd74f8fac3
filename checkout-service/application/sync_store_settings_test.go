package application

import (
	"context"
	"testing"
	"time"

	"github.com/paynow/checkout-system/checkout-service/domain"
	"github.com/paynow/checkout-system/checkout-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSyncStoreSettings_Execute(t *testing.T) {
	updatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	validCommand := func() *SyncStoreSettingsCommand {
		return &SyncStoreSettingsCommand{
			StoreID:      testStoreID,
			Environment:  "Production",
			APIKey:       " api-key ",
			SignatureKey: "signature-key",
			MainActive:   true,
			BlikActive:   true,
			UpdatedAt:    updatedAt,
		}
	}

	tests := []struct {
		name          string
		command       func() *SyncStoreSettingsCommand
		setupMocks    func(*mocks.MockStoreConfigurationRepository)
		expectedError string
	}{
		{
			name:    "saves normalized settings",
			command: validCommand,
			setupMocks: func(repo *mocks.MockStoreConfigurationRepository) {
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(cfg *domain.StoreConfiguration) bool {
					return cfg.StoreID == testStoreID &&
						cfg.Credentials.Environment == domain.EnvironmentProduction &&
						cfg.Credentials.APIKey == "api-key" &&
						cfg.MainActive && cfg.BlikActive && !cfg.CardActive &&
						cfg.Timestamps.UpdatedAt.Equal(updatedAt)
				})).Return(nil).Once()
			},
		},
		{
			name: "empty store ID",
			command: func() *SyncStoreSettingsCommand {
				cmd := validCommand()
				cmd.StoreID = "  "
				return cmd
			},
			setupMocks:    func(repo *mocks.MockStoreConfigurationRepository) {},
			expectedError: "store_id cannot be empty",
		},
		{
			name: "unknown environment",
			command: func() *SyncStoreSettingsCommand {
				cmd := validCommand()
				cmd.Environment = "staging"
				return cmd
			},
			setupMocks:    func(repo *mocks.MockStoreConfigurationRepository) {},
			expectedError: "unknown environment",
		},
		{
			name:          "nil command",
			command:       func() *SyncStoreSettingsCommand { return nil },
			setupMocks:    func(repo *mocks.MockStoreConfigurationRepository) {},
			expectedError: "command is required",
		},
		{
			name:    "repository error",
			command: validCommand,
			setupMocks: func(repo *mocks.MockStoreConfigurationRepository) {
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
			},
			expectedError: "failed to save store settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockStoreConfigurationRepository(t)
			tt.setupMocks(repo)

			useCase := NewSyncStoreSettings(repo, zap.NewNop())
			err := useCase.Execute(context.Background(), tt.command())

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
