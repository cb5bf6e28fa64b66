package contact

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

var errNotConnected = errors.New("client not connected")

// Hub fans new-lead events out to connected dashboard clients. One
// connection per user; a reconnect replaces the previous socket.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
}

// client serializes writes on its connection: gorilla/websocket allows at
// most one concurrent writer, and broadcasts and keep-alive pings arrive
// from different goroutines.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.clients[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[userID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.clients, userID)
	}
}

// Broadcast sends the event to every connected client. Clients whose
// write fails are dropped.
func (h *Hub) Broadcast(event any) {
	h.mutex.RLock()
	clients := make(map[int64]*client, len(h.clients))
	for id, cl := range h.clients {
		clients[id] = cl
	}
	h.mutex.RUnlock()

	for id, cl := range clients {
		if cl == nil {
			continue
		}
		if err := cl.writeJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

// Ping writes a keep-alive to one client; an unknown id reports an error
// so ping loops stop once the client unregisters.
func (h *Hub) Ping(userID int64) error {
	h.mutex.RLock()
	cl, exists := h.clients[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return errNotConnected
	}
	return cl.ping()
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, cl := range h.clients {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, id)
	}
}
