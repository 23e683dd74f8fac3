package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	published []*Event
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...*Event) error {
	p.published = append(p.published, events...)
	return p.err
}

func TestMultiPublisher_Publish(t *testing.T) {
	event := NewEvent("default", PaymentMethodsLookupFailedEvent, nil)

	t.Run("publishes to all", func(t *testing.T) {
		first, second := &recordingPublisher{}, &recordingPublisher{}

		err := MultiPublisher{first, second}.Publish(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, []*Event{event}, first.published)
		assert.Equal(t, []*Event{event}, second.published)
	})

	t.Run("keeps going after a failure", func(t *testing.T) {
		failing := &recordingPublisher{err: errors.New("broker unavailable")}
		next := &recordingPublisher{}

		err := MultiPublisher{failing, next}.Publish(context.Background(), event)

		assert.ErrorContains(t, err, "broker unavailable")
		assert.Len(t, next.published, 1)
	})

	t.Run("combines every failure", func(t *testing.T) {
		first := &recordingPublisher{err: errors.New("broker unavailable")}
		second := &recordingPublisher{err: errors.New("database unavailable")}

		err := MultiPublisher{first, second}.Publish(context.Background(), event)

		assert.ErrorIs(t, err, first.err)
		assert.ErrorIs(t, err, second.err)
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, MultiPublisher{}.Publish(context.Background(), event))
	})
}
