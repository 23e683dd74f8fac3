package events

import (
	"context"

	"go.uber.org/multierr"
)

// MultiPublisher publishes every event to each publisher in order.
// All publishers are tried even when one fails; the failures are combined.
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(ctx context.Context, events ...*Event) error {
	var err error
	for _, publisher := range m {
		err = multierr.Append(err, publisher.Publish(ctx, events...))
	}
	return err
}
