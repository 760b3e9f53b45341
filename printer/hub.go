// Package printer keeps the registry of connected label-printer
// clients. Connections register on upgrade and unregister on
// disconnect or write failure; nothing holds a bare connection outside
// the hub.
package printer

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

var ErrNoClients = errors.New("no printer client connected")

type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the payload to every connected client. Connections
// that fail the write are dropped from the registry.
func (h *Hub) Broadcast(payload interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.conns) == 0 {
		return ErrNoClients
	}

	delivered := 0
	var failed []*websocket.Conn
	for conn := range h.conns {
		if err := conn.WriteJSON(payload); err != nil {
			failed = append(failed, conn)
			continue
		}
		delivered++
	}
	for _, conn := range failed {
		delete(h.conns, conn)
		conn.Close()
	}

	if delivered == 0 {
		return ErrNoClients
	}
	return nil
}
