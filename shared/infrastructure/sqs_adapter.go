package infrastructure

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/paynow/checkout-system/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ events.Subscriber = (*SQSSubscriberAdapter)(nil)

// SQSSubscriberAdapter exposes an SQS queue as an events.Subscriber
type SQSSubscriberAdapter struct {
	client        *sqs.Client
	queueURL      string
	logger        *zap.Logger
	sqsSubscriber *SQSEventSubscriber
}

// NewSQSSubscriberAdapter creates a subscriber for queueURL. An empty endpoint uses the AWS default.
func NewSQSSubscriberAdapter(cfg aws.Config, endpoint, queueURL string, logger *zap.Logger) *SQSSubscriberAdapter {
	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &SQSSubscriberAdapter{
		client:   client,
		queueURL: queueURL,
		logger:   logger,
	}
}

// Subscribe starts consuming the queue. Events whose type does not match eventType are
// acknowledged without reaching the handler; an empty eventType passes everything through.
func (s *SQSSubscriberAdapter) Subscribe(ctx context.Context, eventType string, handler events.EventHandler) error {
	if s.sqsSubscriber != nil {
		return errors.New("subscriber is already running")
	}

	s.sqsSubscriber = NewSQSEventSubscriber(s.client, s.queueURL, &eventTypeFilter{
		eventType: eventType,
		handler:   handler,
	}, s.logger)

	if err := s.sqsSubscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}

	return nil
}

// Close stops the subscriber
func (s *SQSSubscriberAdapter) Close() error {
	if s.sqsSubscriber == nil {
		return nil
	}

	if err := s.sqsSubscriber.Stop(context.Background()); err != nil {
		return errors.Wrap(err, "failed to stop SQS subscriber")
	}

	s.sqsSubscriber = nil
	return nil
}

type eventTypeFilter struct {
	eventType string
	handler   events.EventHandler
}

func (f *eventTypeFilter) Handle(ctx context.Context, event *events.Event) error {
	if f.eventType != "" && event.EventType != f.eventType {
		return nil
	}
	return f.handler.Handle(ctx, event)
}
