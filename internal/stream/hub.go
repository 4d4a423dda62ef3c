package stream

import (
	"encoding/json"
	"sync"

	"wishlist-backend/internal/database/models"
	"wishlist-backend/internal/logger"

	"github.com/google/uuid"
)

// event is the wire format for a notification pushed over the stream
type event struct {
	Type            string     `json:"type"`
	NotificationID  uuid.UUID  `json:"notification_id"`
	Message         string     `json:"message"`
	WishlistID      *uuid.UUID `json:"wishlist_id,omitempty"`
	ItemID          *uuid.UUID `json:"item_id,omitempty"`
	SplitClaimID    *uuid.UUID `json:"split_claim_id,omitempty"`
	OwnershipFlagID *uuid.UUID `json:"ownership_flag_id,omitempty"`
}

// Hub maintains the set of connected clients keyed by user. Unlike a chat
// fan-out, delivery is strictly per-recipient: a notification only ever
// reaches the sockets of the user it addresses.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	log     *logger.Logger
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		log:     logger.New().WithField("component", "stream"),
	}
}

// Register adds a client to the hub under its user
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*Client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client from the hub and closes its send channel
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
}

// Deliver pushes a committed notification to every open socket of its
// recipient. Slow clients have messages dropped rather than blocking the hub.
func (h *Hub) Deliver(n models.Notification) {
	data, err := json.Marshal(event{
		Type:            string(n.Type),
		NotificationID:  n.ID,
		Message:         n.Message,
		WishlistID:      n.WishlistID,
		ItemID:          n.ItemID,
		SplitClaimID:    n.SplitClaimID,
		OwnershipFlagID: n.OwnershipFlagID,
	})
	if err != nil {
		h.log.WithError(err).Error("failed to marshal stream event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[n.RecipientID] {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ClientCount returns the number of connected clients across all users
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	count := 0
	for _, conns := range h.clients {
		count += len(conns)
	}
	return count
}
