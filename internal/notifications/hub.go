package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"qenea/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	// Max connections per user
	maxConnsPerUser = 8
	// Max total connections
	maxTotalConns = 10000
)

// Hub maps userID -> clients and questionID -> watching clients. Users
// receive personal events (answer accepted on their question) on their own
// channel and live updates for question pages they watch.
type Hub struct {
	mu         sync.RWMutex
	conns      map[uint]map[*Client]struct{}
	watchers   map[uint]map[*Client]struct{}
	watching   map[*Client]map[uint]struct{}
	totalConns int
	shutdown   chan struct{}
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		conns:    make(map[uint]map[*Client]struct{}),
		watchers: make(map[uint]map[*Client]struct{}),
		watching: make(map[*Client]map[uint]struct{}),
		shutdown: make(chan struct{}),
	}
}

// Register a connection for a given userID. Returns the Client or an error
// when limits are exceeded.
func (h *Hub) Register(userID uint, conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.totalConns >= maxTotalConns {
		return nil, errors.New("server connection limit reached")
	}

	m, ok := h.conns[userID]
	if !ok {
		m = make(map[*Client]struct{})
		h.conns[userID] = m
	}
	if len(m) >= maxConnsPerUser {
		return nil, errors.New("user connection limit reached")
	}

	client := NewClient(h, conn, userID)
	m[client] = struct{}{}
	h.totalConns++
	observability.WebSocketConnectionsTotal.Inc()
	return client, nil
}

// UnregisterClient removes a client and all of its question watches.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if m, ok := h.conns[client.UserID]; ok {
		if _, exists := m[client]; exists {
			delete(m, client)
			h.totalConns--
			observability.WebSocketConnectionsTotal.Dec()
		}
		if len(m) == 0 {
			delete(h.conns, client.UserID)
		}
	}
	for questionID := range h.watching[client] {
		delete(h.watchers[questionID], client)
		if len(h.watchers[questionID]) == 0 {
			delete(h.watchers, questionID)
		}
	}
	delete(h.watching, client)
}

// Watch subscribes the client to a question's live events.
func (h *Hub) Watch(client *Client, questionID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.watchers[questionID]; !ok {
		h.watchers[questionID] = make(map[*Client]struct{})
	}
	h.watchers[questionID][client] = struct{}{}
	if _, ok := h.watching[client]; !ok {
		h.watching[client] = make(map[uint]struct{})
	}
	h.watching[client][questionID] = struct{}{}
}

// Unwatch unsubscribes the client from a question's live events.
func (h *Hub) Unwatch(client *Client, questionID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.watchers[questionID], client)
	if len(h.watchers[questionID]) == 0 {
		delete(h.watchers, questionID)
	}
	delete(h.watching[client], questionID)
}

// Broadcast sends a message to all connections for userID.
func (h *Hub) Broadcast(userID uint, message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.conns[userID]; ok {
		data := []byte(message)
		for c := range clients {
			c.TrySend(data)
		}
	}
}

// BroadcastQuestion sends a message to every client watching the question.
func (h *Hub) BroadcastQuestion(questionID uint, message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if clients, ok := h.watchers[questionID]; ok {
		data := []byte(message)
		for c := range clients {
			c.TrySend(data)
		}
	}
}

// IsOnline reports whether a user currently has at least one active
// connection on this instance.
func (h *Hub) IsOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients, ok := h.conns[userID]
	return ok && len(clients) > 0
}

// StartWiring connects the Notifier to this hub: events published on Redis
// by any instance reach clients connected here.
func (h *Hub) StartWiring(ctx context.Context, n *Notifier) error {
	return n.StartPatternSubscriber(ctx, func(channel, payload string) {
		switch {
		case strings.HasPrefix(channel, "events:question:"):
			var questionID uint
			if _, err := fmt.Sscanf(channel, "events:question:%d", &questionID); err != nil {
				log.Printf("invalid event channel: %s", channel)
				return
			}
			h.BroadcastQuestion(questionID, payload)
		case strings.HasPrefix(channel, "events:user:"):
			var userID uint
			if _, err := fmt.Sscanf(channel, "events:user:%d", &userID); err != nil {
				log.Printf("invalid event channel: %s", channel)
				return
			}
			h.Broadcast(userID, payload)
		default:
			log.Printf("invalid event channel: %s", channel)
		}
	})
}

// Shutdown gracefully closes all websocket connections.
func (h *Hub) Shutdown(_ context.Context) error {
	close(h.shutdown)

	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, userConns := range h.conns {
		for client := range userConns {
			if client.Conn == nil {
				continue
			}
			if err := client.Conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "Server shutting down")); err != nil {
				log.Printf("failed to write close message for user %d: %v", userID, err)
			}
			if err := client.Conn.Close(); err != nil {
				log.Printf("failed to close websocket for user %d: %v", userID, err)
			}
		}
	}
	h.conns = make(map[uint]map[*Client]struct{})
	h.watchers = make(map[uint]map[*Client]struct{})
	h.watching = make(map[*Client]map[uint]struct{})
	h.totalConns = 0

	return nil
}
