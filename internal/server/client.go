package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 16 * 1024
)

// Client is one websocket connection. A client watches at most one game at a
// time; joining or creating a game subscribes it to that game's broadcasts.
type Client struct {
	srv  *Server
	conn *websocket.Conn
	send chan []byte

	mu   sync.RWMutex
	game string
}

func (c *Client) gameID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.game
}

func (c *Client) setGameID(id string) {
	c.mu.Lock()
	c.game = id
	c.mu.Unlock()
}

// readPump decodes incoming envelopes and hands them to the server.
func (c *Client) readPump() {
	defer func() {
		c.srv.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.srv.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("malformed message")
			continue
		}
		c.srv.handleMessage(c, msg)
	}
}

// writePump flushes queued frames and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendJSON(msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		c.srv.logger.Error("failed to encode message", zap.Error(err))
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) sendError(message string) {
	data, _ := json.Marshal(errorPayload{Message: message})
	c.sendJSON(WSMessage{Type: MsgError, Data: data})
}
