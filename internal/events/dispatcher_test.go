package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventLoginFailed, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventLoginFailed, Username: "u1"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "u1", seen[0].Username)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventAccountCreated})
	require.NoError(t, err)
	assert.True(t, secondCalled)
}

func TestDispatcher_UnsubscribedTypeIsNoop(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	err := dispatcher.Publish(context.Background(), Event{Type: EventLoginSucceeded})
	require.NoError(t, err)
}
