package realtime

import (
	"log"
	"sync"
	"time"

	"lms/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// client wraps a websocket connection with a write lock, since pushes can
// arrive from any request goroutine while the read loop runs.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (cl *client) send(v interface{}) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(v)
}

// Hub maps user IDs to their live websocket connection. One instance is
// created at startup and handed to the notifier; it is not persisted and
// holds at most one connection per user (latest wins).
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]*client)}
}

// Register stores the connection for a user, replacing and closing any
// previous one. Only the latest connection per user receives pushes.
func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	prev := h.clients[userID]
	h.clients[userID] = &client{conn: conn}
	h.mu.Unlock()

	if prev != nil {
		prev.conn.Close()
	}
}

// Unregister removes the mapping, but only if conn is still the current
// connection for that user. A stale close must not evict a newer socket.
func (h *Hub) Unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cl, ok := h.clients[userID]; ok && cl.conn == conn {
		delete(h.clients, userID)
	}
}

// IsConnected reports whether a live connection is registered for the user.
func (h *Hub) IsConnected(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// Push attempts a best-effort delivery to the user's live connection.
// Returns false when no connection is registered or the write fails;
// the caller's persisted record remains the source of truth either way.
func (h *Hub) Push(userID uint, payload interface{}) bool {
	h.mu.RLock()
	cl, ok := h.clients[userID]
	h.mu.RUnlock()

	if !ok {
		return false
	}

	if err := cl.send(payload); err != nil {
		log.Printf("Websocket push to user %d failed: %v", userID, err)
		return false
	}
	return true
}

// authMessage is the first frame a client must send after the upgrade.
// The user ID comes from the verified token claims, never from the client.
type authMessage struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

const authDeadline = 10 * time.Second

// UpgradeRequired rejects plain HTTP requests on the websocket route.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler returns the websocket handler: it waits for the auth frame,
// verifies the JWT, registers the connection and then holds it open
// until the client disconnects.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		conn.SetReadDeadline(time.Now().Add(authDeadline))

		var msg authMessage
		if err := conn.ReadJSON(&msg); err != nil || msg.Type != "auth" {
			conn.WriteJSON(fiber.Map{"type": "error", "message": "Expected auth message"})
			conn.Close()
			return
		}

		claims, err := middleware.ParseToken(msg.Token)
		if err != nil {
			conn.WriteJSON(fiber.Map{"type": "error", "message": "Invalid or expired token"})
			conn.Close()
			return
		}
		rawID, ok := claims["userId"].(float64)
		if !ok {
			conn.WriteJSON(fiber.Map{"type": "error", "message": "Invalid or expired token"})
			conn.Close()
			return
		}
		userID := uint(rawID)

		conn.SetReadDeadline(time.Time{})
		h.Register(userID, conn)
		defer func() {
			h.Unregister(userID, conn)
			conn.Close()
		}()

		conn.WriteJSON(fiber.Map{"type": "auth_ok"})

		// Drain the connection until it closes. Client frames carry no
		// meaning beyond the handshake; delivery is one-way.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
