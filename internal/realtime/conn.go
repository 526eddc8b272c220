package realtime

import "sync"

// Conn is the write side of a transport connection. The production
// implementation is *websocket.Conn; tests substitute mock transports.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// syncConn serializes writes to the underlying transport. The websocket
// library forbids concurrent writers, and deliveries originate from request
// handlers that run concurrently, so every connection entering the registry
// is wrapped in one of these.
type syncConn struct {
	mu   sync.Mutex
	conn Conn
}

func newSyncConn(conn Conn) *syncConn {
	if sc, ok := conn.(*syncConn); ok {
		return sc
	}
	return &syncConn{conn: conn}
}

func (c *syncConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *syncConn) Close() error {
	return c.conn.Close()
}
