package handlers

import (
	"context"

	"github.com/paynow/checkout-system/checkout-service/application"
	"github.com/paynow/checkout-system/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StoreEventHandlers contains event handlers for store settings updates
type StoreEventHandlers struct {
	syncStoreSettings *application.SyncStoreSettings
	logger            *zap.Logger
}

// NewStoreEventHandlers creates new store event handlers
func NewStoreEventHandlers(syncStoreSettings *application.SyncStoreSettings, logger *zap.Logger) *StoreEventHandlers {
	return &StoreEventHandlers{
		syncStoreSettings: syncStoreSettings,
		logger:            logger,
	}
}

// Handle implements the events.EventHandler interface
func (h *StoreEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.StoreSettingsUpdatedEvent:
		return h.HandleStoreSettingsUpdated(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *StoreEventHandlers) HandlerID() string {
	return "checkout-service-store-event-handler"
}

// HandleStoreSettingsUpdated syncs the settings carried by the event
func (h *StoreEventHandlers) HandleStoreSettingsUpdated(ctx context.Context, event *events.Event) error {
	var cmd application.SyncStoreSettingsCommand
	if err := event.UnmarshalPayload(&cmd); err != nil {
		return errors.Wrap(err, "failed to decode store settings")
	}

	if err := h.syncStoreSettings.Execute(ctx, &cmd); err != nil {
		h.logger.Error("failed to sync store settings",
			zap.String("event_id", event.ID.String()),
			zap.String("store_id", cmd.StoreID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
