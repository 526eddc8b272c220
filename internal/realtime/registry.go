package realtime

import (
	"log"
	"sync"
)

// client pairs a user with its single active transport connection.
type client struct {
	userID uint
	connID string
	conn   Conn
}

// Registry maps a user identity to its currently active connection. A user
// holds at most one resolvable connection: registering again overwrites the
// previous mapping (last write wins). The registry is constructed once per
// process and injected into every collaborator; it is never package state.
type Registry struct {
	mu     sync.RWMutex
	byUser map[uint]*client
	byConn map[string]*client
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[uint]*client),
		byConn: make(map[string]*client),
	}
}

// Register binds userID to connID. If the user already had a different
// connection it is detached and returned so the caller can close it and
// prune its room memberships. The stored connection is wrapped so that all
// writes resolved through the registry are serialized per connection.
func (r *Registry) Register(userID uint, connID string, conn Conn) (replacedConnID string, replaced Conn) {
	r.mu.Lock()
	if prev, ok := r.byUser[userID]; ok && prev.connID != connID {
		delete(r.byConn, prev.connID)
		replacedConnID, replaced = prev.connID, prev.conn
	}
	c := &client{userID: userID, connID: connID, conn: newSyncConn(conn)}
	r.byUser[userID] = c
	r.byConn[connID] = c
	total := len(r.byUser)
	r.mu.Unlock()

	log.Printf("User %d registered connection %s (online: %d)", userID, connID, total)
	return replacedConnID, replaced
}

// Unregister removes connID. Calling it for an already-removed connection is
// a no-op, and it never touches a newer connection the user registered since.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	c, ok := r.byConn[connID]
	if ok {
		delete(r.byConn, connID)
		if cur, stillMapped := r.byUser[c.userID]; stillMapped && cur.connID == connID {
			delete(r.byUser, c.userID)
		}
	}
	total := len(r.byUser)
	r.mu.Unlock()

	if ok {
		log.Printf("User %d unregistered connection %s (online: %d)", c.userID, connID, total)
	}
}

// Resolve returns the active connection for userID. Absence is a normal,
// non-error outcome: the recipient is simply offline.
func (r *Registry) Resolve(userID uint) (connID string, conn Conn, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byUser[userID]
	if !ok {
		return "", nil, false
	}
	return c.connID, c.conn, true
}

// Conn looks a connection up by its id.
func (r *Registry) Conn(connID string) (Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byConn[connID]
	if !ok {
		return nil, false
	}
	return c.conn, true
}

// IsOnline checks whether a user has a registered connection.
func (r *Registry) IsOnline(userID uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUser[userID]
	return ok
}

// OnlineUsers returns the ids of all currently connected users.
func (r *Registry) OnlineUsers() []uint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]uint, 0, len(r.byUser))
	for userID := range r.byUser {
		users = append(users, userID)
	}
	return users
}

// Count returns the number of connected users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
