package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/paynow/checkout-system/shared/events"
	"github.com/paynow/checkout-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNSClient struct {
	mu      sync.Mutex
	inputs  []*sns.PublishBatchInput
	err     error
	failIDs []string
}

func (f *fakeSNSClient) PublishBatch(ctx context.Context, params *sns.PublishBatchInput, optFns ...func(*sns.Options)) (*sns.PublishBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}

	output := &sns.PublishBatchOutput{}
	for _, id := range f.failIDs {
		output.Failed = append(output.Failed, types.BatchResultErrorEntry{Id: aws.String(id)})
	}
	return output, nil
}

func newTestEvents(n int) []*events.Event {
	evts := make([]*events.Event, n)
	for i := range evts {
		evts[i] = events.NewEvent(models.ID("store-1"), events.PaymentMethodsLookupFailedEvent, map[string]int{"code": 504})
	}
	return evts
}

func TestSNSEventPublisher_Publish(t *testing.T) {
	t.Run("no events is a no-op", func(t *testing.T) {
		client := &fakeSNSClient{}
		publisher := NewSNSEventPublisher(client, "arn:aws:sns:us-east-1:000000000000:checkout-events")

		assert.NoError(t, publisher.Publish(context.Background()))
		assert.Empty(t, client.inputs)
	})

	t.Run("splits events into batches of ten", func(t *testing.T) {
		client := &fakeSNSClient{}
		publisher := NewSNSEventPublisher(client, "arn:aws:sns:us-east-1:000000000000:checkout-events")

		require.NoError(t, publisher.Publish(context.Background(), newTestEvents(12)...))

		require.Len(t, client.inputs, 2)
		sizes := []int{len(client.inputs[0].PublishBatchRequestEntries), len(client.inputs[1].PublishBatchRequestEntries)}
		assert.ElementsMatch(t, []int{10, 2}, sizes)
	})

	t.Run("message carries the event envelope", func(t *testing.T) {
		client := &fakeSNSClient{}
		publisher := NewSNSEventPublisher(client, "arn:aws:sns:us-east-1:000000000000:checkout-events")

		event := newTestEvents(1)[0].WithMetadata("store_id", "store-1")
		require.NoError(t, publisher.Publish(context.Background(), event))

		entry := client.inputs[0].PublishBatchRequestEntries[0]
		assert.Equal(t, event.ID.String(), aws.ToString(entry.Id))
		assert.Equal(t, events.PaymentMethodsLookupFailedEvent, aws.ToString(entry.MessageAttributes["topic"].StringValue))
		assert.Equal(t, "store-1", aws.ToString(entry.MessageAttributes["store_id"].StringValue))

		var message snsMessage
		require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Message)), &message))
		assert.Equal(t, events.PaymentMethodsLookupFailedEvent, message.EventType)
		assert.JSONEq(t, `{"code":504}`, string(message.Payload))
	})

	t.Run("client error", func(t *testing.T) {
		client := &fakeSNSClient{err: errors.New("throttled")}
		publisher := NewSNSEventPublisher(client, "arn")

		err := publisher.Publish(context.Background(), newTestEvents(1)...)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish batch to SNS")
	})

	t.Run("partially failed batch", func(t *testing.T) {
		evts := newTestEvents(2)
		client := &fakeSNSClient{failIDs: []string{evts[1].ID.String()}}
		publisher := NewSNSEventPublisher(client, "arn")

		err := publisher.Publish(context.Background(), evts...)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), evts[1].ID.String())
	})
}

func TestSplitToChunks(t *testing.T) {
	assert.Nil(t, splitToChunks([]int{}, 3))
	assert.Equal(t, [][]int{{1, 2, 3}, {4}}, splitToChunks([]int{1, 2, 3, 4}, 3))
}
