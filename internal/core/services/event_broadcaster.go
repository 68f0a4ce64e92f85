package services

import (
	"encoding/json"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"go.uber.org/zap"
)

// EventBroadcaster maintains the set of subscribed clients and fans post
// events out to them.
type EventBroadcaster struct {
	// Subscribed client channels.
	clients map[chan []byte]bool

	// Outbound messages for all clients.
	broadcast chan []byte

	// Register requests from clients.
	register chan chan []byte

	// Unregister requests from clients.
	unregister chan chan []byte

	done chan struct{}
}

func NewEventBroadcaster() *EventBroadcaster {
	return &EventBroadcaster{
		broadcast:  make(chan []byte),
		register:   make(chan chan []byte),
		unregister: make(chan chan []byte),
		clients:    make(map[chan []byte]bool),
		done:       make(chan struct{}),
	}
}

func (h *EventBroadcaster) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if h.clients[client] {
				delete(h.clients, client)
				close(client)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client <- message:
				default:
					close(client)
					delete(h.clients, client)
				}
			}
		case <-h.done:
			for client := range h.clients {
				close(client)
				delete(h.clients, client)
			}
			return
		}
	}
}

func (h *EventBroadcaster) Close() {
	close(h.done)
}

func (h *EventBroadcaster) Publish(event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log().Warn("Error marshalling event",
			zap.String(logger.LogKeyContext, logger.LogContextWebSocket),
			zap.Error(err),
		)
		return
	}
	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

func (h *EventBroadcaster) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	select {
	case h.register <- ch:
	case <-h.done:
		close(ch)
	}
	return ch
}

func (h *EventBroadcaster) Unsubscribe(ch chan []byte) {
	select {
	case h.unregister <- ch:
	case <-h.done:
	}
}
