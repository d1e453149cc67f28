// Package wspool maintains outbound WebSocket connections to the engine
// hub, one per session, for adapters that drive conversations from
// their own process. It guarantees FIFO sends per session, fans
// incoming events out to per-listener queues, and tears idle
// connections down after a grace delay.
package wspool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/easypath-ai/easypath/pkg/events"
)

// Connection health states.
const (
	StatusHealthy = "healthy"
	StatusTimeout = "timeout"
	StatusError   = "error"
	StatusFailed  = "failed"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultCleanupDelay   = 30 * time.Second
	dialRetries           = 3
	sendQueueSize         = 32
	listenerQueueSize     = 64
)

// Health describes the state of one session's connection.
type Health struct {
	LastCheck  time.Time
	LastPing   time.Time
	ErrorCount int
	Status     string
}

// Config tunes the pool.
type Config struct {
	// BaseURL is the hub endpoint without the session path, e.g.
	// "ws://engine:8000/ws/session".
	BaseURL        string
	ConnectTimeout time.Duration
	CleanupDelay   time.Duration
}

// VariableObserver receives variable_extracted events read from the
// hub. Called from the read loop via a goroutine per event.
type VariableObserver interface {
	HandleVariableExtracted(ctx context.Context, sessionID, nodeID, name string, value any)
}

// Pool manages at most one outbound connection per session id.
type Pool struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]*sessionConn

	observerMu sync.RWMutex
	observer   VariableObserver
}

type outboundMessage struct {
	message  string
	flowData []byte
	done     chan error
}

type sessionConn struct {
	sessionID string
	conn      *websocket.Conn
	ctx       context.Context
	cancel    context.CancelFunc

	sendQueue      chan outboundMessage
	cachedFlowData []byte

	listenerMu   sync.Mutex
	listeners    map[int]chan *string
	nextListener int

	healthMu sync.Mutex
	health   Health

	cleanupTimer *time.Timer
}

// NewPool creates a pool with defaults applied.
func NewPool(cfg Config) *Pool {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.CleanupDelay <= 0 {
		cfg.CleanupDelay = defaultCleanupDelay
	}
	return &Pool{cfg: cfg, sessions: make(map[string]*sessionConn)}
}

// SetVariableObserver installs the observer for extracted variables.
// Called once during startup.
func (p *Pool) SetVariableObserver(o VariableObserver) {
	p.observerMu.Lock()
	defer p.observerMu.Unlock()
	p.observer = o
}

// EnsureConnection returns the session's open connection, dialing with
// exponential backoff (1 s, 2 s, 4 s) when absent.
func (p *Pool) EnsureConnection(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	if sc, ok := p.sessions[sessionID]; ok {
		sc.stopCleanupTimer()
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < dialRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		sc, err := p.dial(ctx, sessionID)
		if err != nil {
			lastErr = err
			slog.Warn("Failed to connect to engine hub",
				"session_id", sessionID, "attempt", attempt+1, "error", err)
			continue
		}

		p.mu.Lock()
		// Lost the race against a concurrent EnsureConnection.
		if existing, ok := p.sessions[sessionID]; ok {
			p.mu.Unlock()
			sc.cancel()
			sc.conn.Close(websocket.StatusNormalClosure, "duplicate")
			existing.stopCleanupTimer()
			return nil
		}
		p.sessions[sessionID] = sc
		p.mu.Unlock()

		go p.readLoop(sc)
		go p.sendLoop(sc)
		return nil
	}

	p.setHealth(sessionID, StatusFailed)
	return fmt.Errorf("failed to connect for session %s after %d attempts: %w",
		sessionID, dialRetries, lastErr)
}

func (p *Pool) dial(ctx context.Context, sessionID string) (*sessionConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, p.cfg.ConnectTimeout)
	defer cancel()

	url := p.cfg.BaseURL + "/" + sessionID
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	if err != nil {
		return nil, err
	}

	connCtx, connCancel := context.WithCancel(context.Background())
	return &sessionConn{
		sessionID: sessionID,
		conn:      conn,
		ctx:       connCtx,
		cancel:    connCancel,
		sendQueue: make(chan outboundMessage, sendQueueSize),
		listeners: make(map[int]chan *string),
		health: Health{
			LastCheck: time.Now(),
			Status:    StatusHealthy,
		},
	}, nil
}

// SendUserMessage enqueues a user message for the session and waits for
// the write to complete. Sends on one session are strictly FIFO even
// under concurrent callers. A nil flowData reuses the cached flow.
func (p *Pool) SendUserMessage(ctx context.Context, sessionID, message string, flowData []byte) error {
	if err := p.EnsureConnection(ctx, sessionID); err != nil {
		return err
	}

	p.mu.Lock()
	sc, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("no connection for session %s", sessionID)
	}

	out := outboundMessage{message: message, flowData: flowData, done: make(chan error, 1)}
	select {
	case sc.sendQueue <- out:
	case <-ctx.Done():
		return ctx.Err()
	case <-sc.ctx.Done():
		return fmt.Errorf("connection for session %s closed", sessionID)
	}

	select {
	case err := <-out.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListenForAssistantMessages registers a queue of assistant-message
// texts for the session. A nil value signals connection close. The
// returned cancel func unregisters the queue; the last listener leaving
// schedules delayed cleanup.
func (p *Pool) ListenForAssistantMessages(ctx context.Context, sessionID string) (<-chan *string, func(), error) {
	if err := p.EnsureConnection(ctx, sessionID); err != nil {
		return nil, nil, err
	}

	p.mu.Lock()
	sc, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok {
		return nil, nil, fmt.Errorf("no connection for session %s", sessionID)
	}

	queue := make(chan *string, listenerQueueSize)
	sc.listenerMu.Lock()
	id := sc.nextListener
	sc.nextListener++
	sc.listeners[id] = queue
	sc.stopCleanupTimerLocked()
	sc.listenerMu.Unlock()

	cancel := func() {
		sc.listenerMu.Lock()
		delete(sc.listeners, id)
		last := len(sc.listeners) == 0
		sc.listenerMu.Unlock()
		if last {
			p.scheduleCleanup(sessionID)
		}
	}
	return queue, cancel, nil
}

// readLoop dispatches incoming events to every listener queue and
// answers inbound pings.
func (p *Pool) readLoop(sc *sessionConn) {
	defer p.handleConnectionClosed(sc)

	for {
		_, data, err := sc.conn.Read(sc.ctx)
		if err != nil {
			if sc.ctx.Err() == nil {
				slog.Warn("Engine hub connection read failed",
					"session_id", sc.sessionID, "error", err)
				p.recordError(sc)
			}
			return
		}

		var event struct {
			Type          string `json:"type"`
			Message       string `json:"message"`
			NodeID        string `json:"node_id"`
			VariableName  string `json:"variable_name"`
			VariableValue any    `json:"variable_value"`
		}
		if err := json.Unmarshal(data, &event); err != nil {
			slog.Warn("Invalid event from engine hub",
				"session_id", sc.sessionID, "error", err)
			continue
		}

		switch event.Type {
		case events.MessageTypePing:
			p.writeJSON(sc, map[string]string{"type": events.MessageTypePong})
			sc.healthMu.Lock()
			sc.health.LastPing = time.Now()
			sc.healthMu.Unlock()

		case events.EventTypeAssistantMessage:
			text := event.Message
			sc.dispatch(&text)

		case events.EventTypeVariableExtracted:
			p.observerMu.RLock()
			observer := p.observer
			p.observerMu.RUnlock()
			if observer != nil && event.VariableName != "" {
				// Persistence must not stall the read loop.
				go observer.HandleVariableExtracted(sc.ctx,
					sc.sessionID, event.NodeID, event.VariableName, event.VariableValue)
			}

		default:
			// Other flow events are not consumed here.
		}
	}
}

// sendLoop serializes outbound user messages for one session.
func (p *Pool) sendLoop(sc *sessionConn) {
	for {
		select {
		case <-sc.ctx.Done():
			return
		case out := <-sc.sendQueue:
			flowData := out.flowData
			if flowData == nil {
				flowData = sc.cachedFlowData
			} else {
				sc.cachedFlowData = flowData
			}

			msg := events.ClientMessage{
				Type:     events.EventTypeUserMessage,
				Message:  out.message,
				FlowData: flowData,
			}
			data, err := json.Marshal(msg)
			if err == nil {
				err = sc.conn.Write(sc.ctx, websocket.MessageText, data)
			}
			if err != nil {
				p.recordError(sc)
			}
			out.done <- err
		}
	}
}

func (sc *sessionConn) dispatch(text *string) {
	sc.listenerMu.Lock()
	defer sc.listenerMu.Unlock()
	for id, queue := range sc.listeners {
		select {
		case queue <- text:
		default:
			slog.Warn("Listener queue full, dropping event",
				"session_id", sc.sessionID, "listener_id", id)
		}
	}
}

func (p *Pool) writeJSON(sc *sessionConn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := sc.conn.Write(sc.ctx, websocket.MessageText, data); err != nil {
		p.recordError(sc)
	}
}

// handleConnectionClosed runs when the read loop exits for any reason.
// Teardown is funneled through CleanupSession so listeners get exactly
// one close sentinel no matter which side initiated the close.
func (p *Pool) handleConnectionClosed(sc *sessionConn) {
	p.CleanupSession(sc.sessionID, true)
}

// CleanupSession tears down a session's connection. Immediate mode
// closes everything now; delayed mode waits cleanup_delay and only
// proceeds if no listeners remain. Removal from the session map under
// the pool lock makes the teardown body run at most once, so every
// listener queue receives the nil sentinel exactly once before it is
// closed.
func (p *Pool) CleanupSession(sessionID string, immediate bool) {
	if !immediate {
		p.scheduleCleanup(sessionID)
		return
	}

	p.mu.Lock()
	sc, ok := p.sessions[sessionID]
	if ok {
		delete(p.sessions, sessionID)
	}
	p.mu.Unlock()
	if !ok {
		return
	}

	sc.stopCleanupTimer()
	sc.cancel()
	sc.conn.Close(websocket.StatusNormalClosure, "")

	sc.listenerMu.Lock()
	for id, queue := range sc.listeners {
		select {
		case queue <- nil:
		default:
		}
		close(queue)
		delete(sc.listeners, id)
	}
	sc.listenerMu.Unlock()

	slog.Info("Cleaned up engine hub connection", "session_id", sessionID)
}

func (p *Pool) scheduleCleanup(sessionID string) {
	p.mu.Lock()
	sc, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok {
		return
	}

	sc.listenerMu.Lock()
	defer sc.listenerMu.Unlock()
	if sc.cleanupTimer != nil {
		sc.cleanupTimer.Stop()
	}
	sc.cleanupTimer = time.AfterFunc(p.cfg.CleanupDelay, func() {
		sc.listenerMu.Lock()
		abandoned := len(sc.listeners) == 0
		sc.listenerMu.Unlock()
		if abandoned {
			p.CleanupSession(sessionID, true)
		}
	})
}

func (sc *sessionConn) stopCleanupTimer() {
	sc.listenerMu.Lock()
	sc.stopCleanupTimerLocked()
	sc.listenerMu.Unlock()
}

// caller holds listenerMu
func (sc *sessionConn) stopCleanupTimerLocked() {
	if sc.cleanupTimer != nil {
		sc.cleanupTimer.Stop()
		sc.cleanupTimer = nil
	}
}

// SessionHealth reports the health of one session's connection.
func (p *Pool) SessionHealth(sessionID string) (Health, bool) {
	p.mu.Lock()
	sc, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok {
		return Health{Status: StatusFailed}, false
	}

	sc.healthMu.Lock()
	defer sc.healthMu.Unlock()
	sc.health.LastCheck = time.Now()
	return sc.health, true
}

// Close tears down every session connection.
func (p *Pool) Close() {
	p.mu.Lock()
	ids := make([]string, 0, len(p.sessions))
	for id := range p.sessions {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	for _, id := range ids {
		p.CleanupSession(id, true)
	}
}

func (p *Pool) recordError(sc *sessionConn) {
	sc.healthMu.Lock()
	sc.health.ErrorCount++
	sc.health.Status = StatusError
	sc.healthMu.Unlock()
}

func (p *Pool) setHealth(sessionID string, status string) {
	p.mu.Lock()
	sc, ok := p.sessions[sessionID]
	p.mu.Unlock()
	if !ok {
		return
	}
	sc.healthMu.Lock()
	sc.health.Status = status
	sc.healthMu.Unlock()
}
