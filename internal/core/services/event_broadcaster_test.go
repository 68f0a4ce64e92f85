package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcasterDeliversToSubscribers(t *testing.T) {
	b := services.NewEventBroadcaster()
	go b.Run()
	defer b.Close()

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(domain.Event{Type: domain.EventPostCreated, PostID: 42, Title: "hello"})

	select {
	case raw := <-ch:
		var event domain.Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, domain.EventPostCreated, event.Type)
		assert.Equal(t, int64(42), event.PostID)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestBroadcasterUnsubscribeStopsDelivery(t *testing.T) {
	b := services.NewEventBroadcaster()
	go b.Run()
	defer b.Close()

	ch := b.Subscribe()
	b.Unsubscribe(ch)

	// The hub closes the channel on unsubscribe.
	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}
