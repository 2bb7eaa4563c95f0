// Package socket pushes back-office events (new quote request, new contact
// message) to connected admin dashboards.
package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is the JSON frame broadcast to admin clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks the connected admin WebSocket clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}
}

// Register adds a client connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	h.log.Info("websocket client registered", zap.Int("clients", len(h.clients)))
}

// Unregister removes a client connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		h.log.Info("websocket client unregistered", zap.Int("clients", len(h.clients)))
	}
}

// Broadcast sends an event to every connected client. Send failures are
// logged and the dead connection is dropped; a missing audience is not an
// error, the dashboard simply polls on its next load.
func (h *Hub) Broadcast(eventType string, data any) {
	frame, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.log.Error("failed to encode websocket event", zap.String("type", eventType), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.log.Warn("dropping unreachable websocket client", zap.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
