package handlers

import (
	"log"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/kartiksrathod/Social-Media-sub000/internal/handlers/ws"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/service"
)

// A connection that sends nothing (not even a ping command) within this
// window is considered dead and reaped. Matches the presence TTL in Redis.
const readWait = 90 * time.Second

type WebSocketHandler struct {
	registry   *realtime.Registry
	rooms      *realtime.RoomManager
	dispatcher *realtime.Dispatcher
	messages   *service.MessageService
	presence   *service.PresenceService
}

func NewWebSocketHandler(registry *realtime.Registry, rooms *realtime.RoomManager, dispatcher *realtime.Dispatcher, messages *service.MessageService, presence *service.PresenceService) *WebSocketHandler {
	return &WebSocketHandler{
		registry:   registry,
		rooms:      rooms,
		dispatcher: dispatcher,
		messages:   messages,
		presence:   presence,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	userID := c.Locals("userID").(uint)

	// connect(auth_context) -> connection_id. Registers in the registry; a
	// previous connection of the same user is closed (last write wins).
	connID := h.dispatcher.Connect(userID, c)

	// All writes go through the registry-wrapped connection so pushes from
	// concurrent request handlers and replies from this loop serialize.
	conn, ok := h.registry.Conn(connID)
	if !ok {
		// A racing reconnect already replaced this connection.
		h.dispatcher.Disconnect(connID)
		return
	}

	go func() {
		if err := h.presence.SetOnline(userID); err != nil {
			log.Printf("Failed to set user %d online: %v", userID, err)
		}
	}()

	defer func() {
		h.dispatcher.Disconnect(connID)
		// A newer connection may have replaced this one; only report
		// offline when the user really has no connection left.
		if !h.registry.IsOnline(userID) {
			go func() {
				if err := h.presence.SetOffline(userID); err != nil {
					log.Printf("Failed to set user %d offline: %v", userID, err)
				}
			}()
		}
	}()

	log.Printf("User %d connected via WebSocket", userID)

	ctx := &ws.CommandContext{
		UserID:     userID,
		ConnID:     connID,
		Conn:       conn,
		Registry:   h.registry,
		Rooms:      h.rooms,
		Dispatcher: h.dispatcher,
		Messages:   h.messages,
		Presence:   h.presence,
	}

	// Handle incoming commands. Any client traffic extends the deadline.
	_ = c.SetReadDeadline(time.Now().Add(readWait))
	for {
		_, messageBytes, err := c.ReadMessage()
		if err != nil {
			log.Printf("Error reading command from user %d: %v", userID, err)
			break
		}
		_ = c.SetReadDeadline(time.Now().Add(readWait))

		cmd, err := ws.Deserialize(messageBytes)
		if err != nil {
			log.Printf("Error deserializing command from user %d: %v", userID, err)
			ws.SendError(conn, "invalid_command", "Invalid command format", err.Error())
			continue
		}

		if err := cmd.Process(ctx); err != nil {
			log.Printf("Error processing command %s from user %d: %v", cmd.GetType(), userID, err)
			ws.SendError(conn, "processing_failed", "Failed to process command", err.Error())
		}
	}

	log.Printf("User %d disconnected from WebSocket", userID)
}
