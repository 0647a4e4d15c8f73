package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishStampsIDAndTimestamp(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got Event
	d.Subscribe(EventOrderStatusUpdated, func(ctx context.Context, event Event) error {
		got = event
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventOrderStatusUpdated, OrderID: "o1"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, "o1", got.OrderID)
}

func TestPublishRunsAllHandlersDespiteFailures(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventOrderStatusUpdated, func(ctx context.Context, event Event) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	d.Subscribe(EventOrderStatusUpdated, func(ctx context.Context, event Event) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventOrderStatusUpdated})
	assert.Error(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventOrderStatusUpdated}))
}
