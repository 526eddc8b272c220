package ws

import (
	"encoding/json"

	"github.com/gofiber/websocket/v2"
)

// CommandPing is a keepalive ping from client
type CommandPing struct {
}

func (cmd *CommandPing) GetType() string {
	return "ping"
}

func (cmd *CommandPing) Process(ctx *CommandContext) error {
	ctx.Presence.Refresh(ctx.UserID)

	// Respond with pong
	payload, err := json.Marshal(map[string]string{"type": "pong"})
	if err != nil {
		return err
	}
	return ctx.Conn.WriteMessage(websocket.TextMessage, payload)
}

// CommandPong is a pong response (in case client wants to track latency)
type CommandPong struct {
}

func (cmd *CommandPong) GetType() string {
	return "pong"
}

func (cmd *CommandPong) Process(ctx *CommandContext) error {
	// No-op - just acknowledge
	return nil
}
