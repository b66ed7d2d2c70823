package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusSubscribe(t *testing.T) {
	bus := NewEventBus()

	var got []Event
	bus.Subscribe("message_tracked", func(e Event) {
		got = append(got, e)
	})

	bus.Publish("message_tracked", "payload")
	bus.Publish("other_event", "ignored")

	require.Len(t, got, 1)
	assert.Equal(t, "message_tracked", got[0].Event)
	assert.Equal(t, "payload", got[0].Data)
}

func TestEventBusChannel(t *testing.T) {
	bus := NewEventBus()

	bus.Publish("message_tracked", 1)

	select {
	case e := <-bus.SubscribeCh():
		assert.Equal(t, "message_tracked", e.Event)
	default:
		t.Fatal("expected a buffered event on the channel")
	}
}

func TestEventBusPublishNeverBlocks(t *testing.T) {
	bus := NewEventBus()

	// Overflow the buffer; extra events are dropped, not blocking.
	for i := 0; i < 250; i++ {
		bus.Publish("message_tracked", i)
	}
}
