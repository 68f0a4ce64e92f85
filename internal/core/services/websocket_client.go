package services

import (
	"time"

	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/gofiber/contrib/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// WebsocketClient is a middleman between the websocket connection and the
// broadcaster.
type WebsocketClient struct {
	Hub ports.EventBroadcasterInterface

	// The websocket connection.
	Conn *websocket.Conn
}

// Pump subscribes the connection to the broadcaster and forwards events
// until the peer goes away.
func (c *WebsocketClient) Pump() {
	ticker := time.NewTicker(pingPeriod)
	send := c.Hub.Subscribe()
	defer func() {
		c.Hub.Unsubscribe(send)
		ticker.Stop()
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	// The peer sends nothing but control frames; a reader still has to
	// drain them for the pong handler to fire.
	go func() {
		for {
			if _, _, err := c.Conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case message, ok := <-send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
