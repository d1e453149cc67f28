package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// UserMessageHandler processes an inbound user_message frame. The hub
// spawns one goroutine per frame; same-session serialization is the
// adapter's responsibility, not the hub's.
type UserMessageHandler interface {
	HandleUserMessage(ctx context.Context, sessionID, message string, flowData []byte)
}

// ConnectionManager is the server side of the realtime channel. It maps
// session ids to the set of sockets watching them and fans events out.
type ConnectionManager struct {
	// session_id → connection_id → *Connection
	sessions map[string]map[string]*Connection
	mu       sync.RWMutex

	handler   UserMessageHandler
	handlerMu sync.RWMutex

	writeTimeout time.Duration
	pingInterval time.Duration
	pongGrace    time.Duration
}

// Connection represents a single WebSocket client attached to one session.
type Connection struct {
	ID        string
	SessionID string
	Conn      *websocket.Conn
	ctx       context.Context
	cancel    context.CancelFunc

	// defaultFlow is used for user_message frames that omit flow_data.
	// Resolved from the flow_id query parameter at connect time.
	defaultFlow []byte

	pongMu   sync.Mutex
	lastPong time.Time
}

// NewConnectionManager creates a hub with the given write timeout and a
// 30 s heartbeat with 10 s pong grace.
func NewConnectionManager(writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		sessions:     make(map[string]map[string]*Connection),
		writeTimeout: writeTimeout,
		pingInterval: 30 * time.Second,
		pongGrace:    10 * time.Second,
	}
}

// SetHandler installs the user-message handler. Called once during
// startup after both the hub and the engine runner are created.
func (m *ConnectionManager) SetHandler(h UserMessageHandler) {
	m.handlerMu.Lock()
	defer m.handlerMu.Unlock()
	m.handler = h
}

// HandleConnection manages the lifecycle of a single WebSocket
// connection attached to a session. Called by the WebSocket HTTP
// handler after upgrade. Blocks until the connection closes.
// defaultFlow may be nil; frames carrying their own flow_data always
// win over it.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, sessionID string, defaultFlow []byte) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Conn:        conn,
		ctx:         ctx,
		cancel:      cancel,
		defaultFlow: defaultFlow,
		lastPong:    time.Now(),
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	go m.heartbeat(c)

	// Read loop. Liveness is observed via pong timestamps but an
	// overdue pong only logs; actual disconnect is driven by read and
	// write errors.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		m.handleClientMessage(c, data)
	}
}

// heartbeat sends {"type":"ping"} every pingInterval and logs when the
// client has not answered within the grace period.
func (m *ConnectionManager) heartbeat(c *Connection) {
	ticker := time.NewTicker(m.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			m.sendJSON(c, map[string]string{"type": MessageTypePing})

			c.pongMu.Lock()
			overdue := time.Since(c.lastPong) > m.pingInterval+m.pongGrace
			c.pongMu.Unlock()
			if overdue {
				slog.Warn("WebSocket client pong overdue",
					"connection_id", c.ID, "session_id", c.SessionID)
			}
		}
	}
}

// handleClientMessage dispatches one inbound frame.
func (m *ConnectionManager) handleClientMessage(c *Connection, data []byte) {
	// Bare "pong" text frames are accepted alongside JSON.
	if string(data) == MessageTypePong {
		c.recordPong()
		return
	}

	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("Invalid WebSocket message",
			"connection_id", c.ID, "session_id", c.SessionID, "error", err)
		return
	}

	switch msg.Type {
	case MessageTypePong:
		c.recordPong()

	case EventTypeUserMessage:
		m.handlerMu.RLock()
		h := m.handler
		m.handlerMu.RUnlock()
		if h == nil {
			slog.Warn("No user message handler installed",
				"session_id", c.SessionID)
			return
		}
		flowData := []byte(msg.FlowData)
		if len(flowData) == 0 {
			flowData = c.defaultFlow
		}
		// One background task per received user_message. Events the
		// turn produces flow back through this session's fan-out.
		go h.HandleUserMessage(c.ctx, c.SessionID, msg.Message, flowData)

	default:
		slog.Warn("Ignoring unknown WebSocket message type",
			"connection_id", c.ID, "session_id", c.SessionID, "type", msg.Type)
	}
}

func (c *Connection) recordPong() {
	c.pongMu.Lock()
	c.lastPong = time.Now()
	c.pongMu.Unlock()
}

// Broadcast sends a serialized event to every connection attached to
// the session. Sockets that fail the write are removed.
func (m *ConnectionManager) Broadcast(sessionID string, event []byte) {
	// Snapshot connection pointers under the lock, then release before
	// sending. Writes can take up to writeTimeout each and must not
	// stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.sessions[sessionID]))
	for _, conn := range m.sessions[sessionID] {
		conns = append(conns, conn)
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client; removing connection",
				"connection_id", conn.ID, "session_id", sessionID, "error", err)
			m.unregisterConnection(conn)
		}
	}
}

// SessionConnections returns how many sockets are attached to a session.
func (m *ConnectionManager) SessionConnections(sessionID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions[sessionID])
}

// ActiveConnections returns the total socket count across sessions.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, conns := range m.sessions {
		total += len(conns)
	}
	return total
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[c.SessionID] == nil {
		m.sessions[c.SessionID] = make(map[string]*Connection)
	}
	m.sessions[c.SessionID][c.ID] = c
}

// unregisterConnection removes a connection and, when the session has
// no sockets left, drops the session entry. Safe to call twice.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	m.mu.Lock()
	if conns, ok := m.sessions[c.SessionID]; ok {
		delete(conns, c.ID)
		if len(conns) == 0 {
			delete(m.sessions, c.SessionID)
		}
	}
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
