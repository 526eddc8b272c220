package realtime

import (
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// ConversationRoom names the broadcast scope for a direct-message thread.
func ConversationRoom(conversationID uint) string {
	return fmt.Sprintf("conversation:%d", conversationID)
}

// PostRoom names the broadcast scope for a post's comment thread.
func PostRoom(postID uint) string {
	return fmt.Sprintf("post:%d", postID)
}

// RoomManager tracks ephemeral room membership per connection. Membership is
// held only in memory and recomputed every session: clients join while
// viewing a conversation or comment thread, leave on navigating away, and
// re-join after every reconnect. Never persisted.
type RoomManager struct {
	mu     sync.RWMutex
	rooms  map[string]map[string]struct{} // room id -> connection ids
	byConn map[string]map[string]struct{} // connection id -> room ids

	registry *Registry
}

func NewRoomManager(registry *Registry) *RoomManager {
	return &RoomManager{
		rooms:    make(map[string]map[string]struct{}),
		byConn:   make(map[string]map[string]struct{}),
		registry: registry,
	}
}

// Join adds connID to roomID. Idempotent.
func (m *RoomManager) Join(connID, roomID string) {
	if connID == "" || roomID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[roomID]; !ok {
		m.rooms[roomID] = make(map[string]struct{})
	}
	m.rooms[roomID][connID] = struct{}{}
	if _, ok := m.byConn[connID]; !ok {
		m.byConn[connID] = make(map[string]struct{})
	}
	m.byConn[connID][roomID] = struct{}{}
}

// Leave removes connID from roomID. Idempotent.
func (m *RoomManager) Leave(connID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaveLocked(connID, roomID)
}

// LeaveAll removes connID from every room it joined. Called on disconnect so
// membership never outlives the connection.
func (m *RoomManager) LeaveAll(connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for roomID := range m.byConn[connID] {
		m.leaveLocked(connID, roomID)
	}
}

func (m *RoomManager) leaveLocked(connID, roomID string) {
	if members, ok := m.rooms[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(m.rooms, roomID)
		}
	}
	if rooms, ok := m.byConn[connID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(m.byConn, connID)
		}
	}
}

// InRoom reports whether connID is a member of roomID.
func (m *RoomManager) InRoom(connID, roomID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rooms[roomID][connID]
	return ok
}

// Members returns the connection ids currently in roomID.
func (m *RoomManager) Members(roomID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	members := make([]string, 0, len(m.rooms[roomID]))
	for connID := range m.rooms[roomID] {
		members = append(members, connID)
	}
	return members
}

// Broadcast sends one event to every member of roomID except the excluded
// connections (a typing sender must not receive its own echo). Write errors
// are logged and swallowed; the ids of failed connections are returned so
// the dispatcher can drop them.
func (m *RoomManager) Broadcast(roomID, event string, payload interface{}, excluding ...string) []string {
	data, err := encodeEvent(event, payload)
	if err != nil {
		log.Printf("Error marshaling %s broadcast for %s: %v", event, roomID, err)
		return nil
	}

	m.mu.RLock()
	members := make([]string, 0, len(m.rooms[roomID]))
	for connID := range m.rooms[roomID] {
		if excluded(connID, excluding) {
			continue
		}
		members = append(members, connID)
	}
	m.mu.RUnlock()

	var failed []string
	for _, connID := range members {
		conn, ok := m.registry.Conn(connID)
		if !ok {
			// Already unregistered; stale membership is pruned lazily.
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error broadcasting %s to connection %s in %s: %v", event, connID, roomID, err)
			failed = append(failed, connID)
		}
	}
	return failed
}

func excluded(connID string, excluding []string) bool {
	for _, ex := range excluding {
		if ex == connID {
			return true
		}
	}
	return false
}
