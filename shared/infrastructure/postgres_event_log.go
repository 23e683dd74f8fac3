package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/paynow/checkout-system/shared/events"
	"github.com/paynow/checkout-system/shared/models"
	"github.com/pkg/errors"
)

var _ events.Publisher = (*PostgresEventLog)(nil)

// PostgresEventLog keeps published events in PostgreSQL so they can be inspected
// when the broker is unavailable or not configured.
type PostgresEventLog struct {
	db *sqlx.DB
}

// NewPostgresEventLog creates a new PostgresEventLog
func NewPostgresEventLog(db *sqlx.DB) *PostgresEventLog {
	return &PostgresEventLog{db: db}
}

// postgresEvent represents event in database
type postgresEvent struct {
	ID            string    `db:"id"`
	AggregateID   string    `db:"aggregate_id"`
	EventType     string    `db:"event_type"`
	Version       string    `db:"version"`
	Data          string    `db:"data"`
	Metadata      string    `db:"metadata"`
	Timestamp     time.Time `db:"timestamp"`
	CorrelationID string    `db:"correlation_id"`
}

// Publish appends the events to the log. Re-publishing an event with a known ID is a no-op.
func (l *PostgresEventLog) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO event_log (
			id, aggregate_id, event_type, version, data, metadata,
			timestamp, correlation_id
		) VALUES (
			:id, :aggregate_id, :event_type, :version, :data, :metadata,
			:timestamp, :correlation_id
		)
		ON CONFLICT (id) DO NOTHING`

	for _, event := range evts {
		pgEvent, err := l.toPostgres(event)
		if err != nil {
			return errors.Wrap(err, "failed to convert event")
		}

		if _, err := tx.NamedExecContext(ctx, query, pgEvent); err != nil {
			return errors.Wrap(err, "failed to insert event")
		}
	}

	return tx.Commit()
}

// GetEventsByType retrieves events by type, oldest first
func (l *PostgresEventLog) GetEventsByType(ctx context.Context, eventType string, offset, limit int) ([]*events.Event, error) {
	query := `
		SELECT id, aggregate_id, event_type, version, data, metadata,
			   timestamp, correlation_id
		FROM event_log
		WHERE event_type = $1
		ORDER BY timestamp ASC, id ASC
		LIMIT $2 OFFSET $3`

	var pgEvents []postgresEvent
	if err := l.db.SelectContext(ctx, &pgEvents, query, eventType, limit, offset); err != nil {
		return nil, errors.Wrap(err, "failed to get events by type")
	}

	result := make([]*events.Event, 0, len(pgEvents))
	for i := range pgEvents {
		event, err := l.toDomain(&pgEvents[i])
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}

	return result, nil
}

func (l *PostgresEventLog) toPostgres(event *events.Event) (*postgresEvent, error) {
	data, err := event.MarshalPayload()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event data")
	}

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event metadata")
	}

	return &postgresEvent{
		ID:            event.ID.String(),
		AggregateID:   event.AggregateID.String(),
		EventType:     event.EventType,
		Version:       event.Version,
		Data:          string(data),
		Metadata:      string(metadata),
		Timestamp:     event.Timestamp,
		CorrelationID: event.CorrelationID.String(),
	}, nil
}

func (l *PostgresEventLog) toDomain(pgEvent *postgresEvent) (*events.Event, error) {
	id, err := models.NewID(pgEvent.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid event ID")
	}

	var metadata events.Metadata
	if len(pgEvent.Metadata) > 0 {
		if err := json.Unmarshal([]byte(pgEvent.Metadata), &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal event metadata")
		}
	}
	if metadata == nil {
		metadata = make(events.Metadata)
	}

	return &events.Event{
		ID:            id,
		AggregateID:   models.ID(pgEvent.AggregateID),
		Topic:         events.Topic(pgEvent.EventType),
		EventType:     pgEvent.EventType,
		Version:       pgEvent.Version,
		Data:          json.RawMessage(pgEvent.Data),
		Metadata:      metadata,
		Timestamp:     pgEvent.Timestamp.UTC(),
		CorrelationID: models.ID(pgEvent.CorrelationID),
	}, nil
}
