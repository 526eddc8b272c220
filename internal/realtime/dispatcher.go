package realtime

import (
	"encoding/json"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Push event catalog. Everything here rides the best-effort at-most-once
// channel: no retry, no ack, no replay. Durable facts (notifications,
// messages) are written to the store first and re-fetched by clients through
// the persistence path, so a missed push never loses data.
const (
	EventNewNotification = "new_notification"
	EventNewMessage      = "new_message"
	EventNewComment      = "new_comment"
	EventEditComment     = "edit_comment"
	EventDeleteComment   = "delete_comment"
	EventCommentReaction = "comment_reaction"
	EventUserTyping      = "user_typing"
	EventUserStopTyping  = "user_stop_typing"
)

// Envelope is the wire frame for every pushed event.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func encodeEvent(event string, payload interface{}) ([]byte, error) {
	return json.Marshal(Envelope{Event: event, Data: payload})
}

// Dispatcher fans domain events out to live connections, consulting the
// registry for per-user delivery and the room manager for scoped broadcast.
// It never blocks or fails the calling route: a missing connection is an
// expected silent no-op and a mid-send transport error is logged, swallowed
// and answered by dropping the dead connection.
type Dispatcher struct {
	registry *Registry
	rooms    *RoomManager
}

func NewDispatcher(registry *Registry, rooms *RoomManager) *Dispatcher {
	return &Dispatcher{registry: registry, rooms: rooms}
}

// Connect registers a fresh connection for userID and returns its id. An
// older connection for the same user is closed and its rooms pruned.
func (d *Dispatcher) Connect(userID uint, conn Conn) string {
	connID := uuid.NewString()
	replacedID, replaced := d.registry.Register(userID, connID, conn)
	if replaced != nil {
		d.rooms.LeaveAll(replacedID)
		_ = replaced.Close()
	}
	return connID
}

// Disconnect prunes all room memberships for connID and unregisters it.
// Safe to call more than once.
func (d *Dispatcher) Disconnect(connID string) {
	d.rooms.LeaveAll(connID)
	d.registry.Unregister(connID)
}

// DeliverToUser pushes one event to the user's active connection, if any.
func (d *Dispatcher) DeliverToUser(userID uint, event string, payload interface{}) {
	connID, conn, ok := d.registry.Resolve(userID)
	if !ok {
		return
	}
	data, err := encodeEvent(event, payload)
	if err != nil {
		log.Printf("Error marshaling %s event for user %d: %v", event, userID, err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("Error sending %s to user %d: %v", event, userID, err)
		d.Disconnect(connID)
	}
}

// DeliverToRoom pushes one event to every member of roomID except the
// excluded connections.
func (d *Dispatcher) DeliverToRoom(roomID, event string, payload interface{}, excluding ...string) {
	for _, dead := range d.rooms.Broadcast(roomID, event, payload, excluding...) {
		d.Disconnect(dead)
	}
}

// IsOnline reports whether a user currently has a live connection.
func (d *Dispatcher) IsOnline(userID uint) bool {
	return d.registry.IsOnline(userID)
}
