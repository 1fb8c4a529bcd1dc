package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"smartinclusion/internal/models/db_models"
)

// Profile is the origin identity attached to an SOS event. It is snapshotted
// from the directory at connect time, never taken from the client message.
type Profile struct {
	ID                uuid.UUID `json:"id"`
	FullName          string    `json:"fullName"`
	Phone             string    `json:"phone"`
	AccessibilityNeed string    `json:"accessibilityNeed,omitempty"`
}

type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type inboundMessage struct {
	Type     string   `json:"type"`
	Position Position `json:"position"`
}

type outboundMessage struct {
	Type     string   `json:"type"`
	Origin   Profile  `json:"origin"`
	Position Position `json:"position"`
}

// Hub owns the set of live connections. It is an explicit object so tests
// and future deployments can run independent instances; there is no
// package-level registry.
//
// The connection set is the only shared mutable state in the service and is
// guarded by a single mutex. SOS events are fire-and-forget: no ack, no
// retry, no persistence. A client that connects after a broadcast simply
// never sees it.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(c.send)
		return
	}
	h.clients[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// BroadcastSOS relays the event to every connected volunteer except
// connections owned by the origin account. User-role connections are
// filtered out here at the relay, not in the frontend. A volunteer whose
// send buffer is full misses the event; delivery is best-effort.
func (h *Hub) BroadcastSOS(origin Profile, position Position) {
	payload, err := json.Marshal(outboundMessage{
		Type:     "receive_sos",
		Origin:   origin,
		Position: position,
	})
	if err != nil {
		log.Printf("sos marshal failed: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.role != db_models.RoleVolunteer {
			continue
		}
		if c.account.ID == origin.ID {
			continue
		}
		select {
		case c.send <- payload:
		default:
			log.Printf("dropping sos for slow client %s", c.account.ID)
		}
	}
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close tears down every connection and rejects future registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
