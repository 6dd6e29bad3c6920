package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	shared.BaseEvent
}

func (testEvent) Payload() map[string]interface{} { return nil }

func newTestEvent(et shared.EventType) testEvent {
	return testEvent{BaseEvent: shared.NewBaseEvent(et, "agg-1")}
}

func TestPublish_DeliversToSubscribers(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var got []shared.Event
	handler := shared.EventHandlerFunc{
		HandlerName: "collector",
		Func: func(_ context.Context, e shared.Event) error {
			got = append(got, e)
			return nil
		},
	}
	require.NoError(t, bus.Subscribe(shared.EventStudentEnrolled, handler))

	require.NoError(t, bus.Publish(newTestEvent(shared.EventStudentEnrolled)))
	require.NoError(t, bus.Publish(newTestEvent(shared.EventStudentRemoved)))

	require.Len(t, got, 1)
	assert.Equal(t, shared.EventStudentEnrolled, got[0].EventType())
}

func TestPublish_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewInMemoryBus(nil)

	failing := shared.EventHandlerFunc{
		HandlerName: "failing",
		Func: func(context.Context, shared.Event) error {
			return errors.New("boom")
		},
	}
	var delivered int
	counting := shared.EventHandlerFunc{
		HandlerName: "counting",
		Func: func(context.Context, shared.Event) error {
			delivered++
			return nil
		},
	}

	require.NoError(t, bus.Subscribe(shared.EventStudentEnrolled, failing))
	require.NoError(t, bus.Subscribe(shared.EventStudentEnrolled, counting))

	require.NoError(t, bus.Publish(newTestEvent(shared.EventStudentEnrolled)))
	assert.Equal(t, 1, delivered)
}

func TestSubscribeAll(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var count int
	all := shared.EventHandlerFunc{
		HandlerName: "all",
		Func: func(context.Context, shared.Event) error {
			count++
			return nil
		},
	}
	require.NoError(t, bus.SubscribeAll(all))

	require.NoError(t, bus.Publish(newTestEvent(shared.EventStudentEnrolled)))
	require.NoError(t, bus.Publish(newTestEvent(shared.EventStudentRemoved)))
	assert.Equal(t, 2, count)
}

func TestClosedBus(t *testing.T) {
	bus := NewInMemoryBus(nil)
	bus.Close()

	err := bus.Publish(newTestEvent(shared.EventStudentEnrolled))
	assert.ErrorIs(t, err, ErrEventBusClosed)

	err = bus.Subscribe(shared.EventStudentEnrolled, shared.EventHandlerFunc{
		Func: func(context.Context, shared.Event) error { return nil },
	})
	assert.ErrorIs(t, err, ErrEventBusClosed)
}

func TestPublish_NilEvent(t *testing.T) {
	bus := NewInMemoryBus(nil)
	assert.Error(t, bus.Publish(nil))
}
