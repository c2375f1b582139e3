package server

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// broadcastMessage targets every client subscribed to one game.
type broadcastMessage struct {
	gameID  string
	payload []byte
}

// Hub tracks connected clients and fans game-state broadcasts out to the
// clients watching each game.
type Hub struct {
	logger *zap.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMessage

	mu      sync.RWMutex
	clients map[*Client]bool
}

func newHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMessage, 64),
		clients:    make(map[*Client]bool),
	}
}

// Run processes hub events until ctx is canceled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("client registered", zap.Int("clients", h.clientCount()))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("client unregistered", zap.Int("clients", h.clientCount()))

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				if client.gameID() != msg.gameID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Slow client; drop the frame rather than block the hub.
					h.logger.Warn("dropping frame for slow client")
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues a payload for every client subscribed to gameID.
func (h *Hub) Broadcast(gameID string, payload []byte) {
	h.broadcast <- broadcastMessage{gameID: gameID, payload: payload}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}
