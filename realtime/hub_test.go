package realtime

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/assert"
)

func TestPushWithoutConnection(t *testing.T) {
	hub := NewHub()
	assert.False(t, hub.Push(42, map[string]string{"type": "notification"}))
}

func TestRegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	conn := &websocket.Conn{}

	hub.Register(7, conn)
	assert.True(t, hub.IsConnected(7))

	// A stale close from an older socket must not evict the current one
	stale := &websocket.Conn{}
	hub.Unregister(7, stale)
	assert.True(t, hub.IsConnected(7))

	hub.Unregister(7, conn)
	assert.False(t, hub.IsConnected(7))
}
