package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/folio/folio/pkg/api/events"
	"github.com/folio/folio/pkg/logger"
)

const (
	defaultWSMaxConnections = 10
	defaultPingInterval     = 30 * time.Second
	defaultPongTimeout      = 10 * time.Second
	defaultWriteTimeout     = 10 * time.Second
	defaultSendBuffer       = 32
)

var errConnectionLimit = errors.New("websocket connection limit reached")

// EventSource hands out event subscriptions.
type EventSource interface {
	Subscribe(buffer int) chan events.Event
	Unsubscribe(ch chan events.Event)
}

// WebSocketConfig configures the admin event feed.
type WebSocketConfig struct {
	AllowedOrigins []string
	MaxConnections int
	PingInterval   time.Duration
	PongTimeout    time.Duration

	// OnConnections is called with the open connection count after every change.
	OnConnections func(n int)
}

// topicMessage is sent by clients to narrow the feed, e.g.
// {"type":"subscribe","topic":"message"} receives message.* events only.
type topicMessage struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
}

type wsClient struct {
	conn      *websocket.Conn
	events    chan events.Event
	source    EventSource
	topics    map[string]struct{}
	mu        sync.RWMutex
	closeOnce sync.Once
}

func newWSClient(conn *websocket.Conn, source EventSource) *wsClient {
	return &wsClient{
		conn:   conn,
		events: source.Subscribe(defaultSendBuffer),
		source: source,
		topics: make(map[string]struct{}),
	}
}

func (c *wsClient) close() {
	c.closeOnce.Do(func() {
		c.source.Unsubscribe(c.events)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *wsClient) subscribe(topic string) {
	if topic == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics[topic] = struct{}{}
}

func (c *wsClient) unsubscribe(topic string) {
	if topic == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.topics, topic)
}

// wants reports whether eventType matches one of the client's topics. A
// client without topics receives everything.
func (c *wsClient) wants(eventType string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.topics) == 0 {
		return true
	}
	for topic := range c.topics {
		if eventType == topic || strings.HasPrefix(eventType, topic+".") {
			return true
		}
	}
	return false
}

// ConnectionManager tracks open feed connections.
type ConnectionManager struct {
	mu             sync.RWMutex
	clients        map[*wsClient]struct{}
	maxConnections int
	onChange       func(int)
}

// NewConnectionManager creates a manager with a connection limit.
func NewConnectionManager(maxConnections int, onChange func(int)) *ConnectionManager {
	if maxConnections <= 0 {
		maxConnections = defaultWSMaxConnections
	}
	return &ConnectionManager{
		clients:        make(map[*wsClient]struct{}),
		maxConnections: maxConnections,
		onChange:       onChange,
	}
}

func (m *ConnectionManager) notify(n int) {
	if m.onChange != nil {
		m.onChange(n)
	}
}

// Register adds a client unless the limit is reached.
func (m *ConnectionManager) Register(client *wsClient) error {
	m.mu.Lock()
	if len(m.clients) >= m.maxConnections {
		m.mu.Unlock()
		return errConnectionLimit
	}
	m.clients[client] = struct{}{}
	n := len(m.clients)
	m.mu.Unlock()

	m.notify(n)
	return nil
}

// Unregister removes and closes a client.
func (m *ConnectionManager) Unregister(client *wsClient) {
	m.mu.Lock()
	if _, ok := m.clients[client]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.clients, client)
	n := len(m.clients)
	m.mu.Unlock()

	client.close()
	m.notify(n)
}

// Count returns the open connection count.
func (m *ConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// CanAccept reports whether there is capacity for one more connection.
func (m *ConnectionManager) CanAccept() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients) < m.maxConnections
}

// Close closes every connection.
func (m *ConnectionManager) Close() {
	m.mu.Lock()
	clients := make([]*wsClient, 0, len(m.clients))
	for client := range m.clients {
		clients = append(clients, client)
		delete(m.clients, client)
	}
	m.mu.Unlock()

	for _, client := range clients {
		client.close()
	}
	m.notify(0)
}

// WebSocketHandler serves the admin event feed at /ws/events.
type WebSocketHandler struct {
	log          logger.Logger
	source       EventSource
	manager      *ConnectionManager
	upgrader     websocket.Upgrader
	pingInterval time.Duration
	pongTimeout  time.Duration
	writeTimeout time.Duration
}

// NewWebSocketHandler creates the event feed handler.
func NewWebSocketHandler(source EventSource, log logger.Logger, cfg WebSocketConfig) *WebSocketHandler {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = defaultPingInterval
	}
	if cfg.PongTimeout <= 0 {
		cfg.PongTimeout = defaultPongTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	h := &WebSocketHandler{
		log:          log,
		source:       source,
		manager:      NewConnectionManager(cfg.MaxConnections, cfg.OnConnections),
		pingInterval: cfg.PingInterval,
		pongTimeout:  cfg.PongTimeout,
		writeTimeout: defaultWriteTimeout,
	}

	allowed := append([]string(nil), cfg.AllowedOrigins...)
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return isWebSocketOriginAllowed(r, allowed)
		},
	}
	return h
}

// ServeHTTP upgrades the connection and streams events until either side closes.
// @Summary Admin live event feed
// @Description Streams message, content and document events as JSON frames.
// @Tags events
// @Security BearerAuth
// @Param token query string false "Bearer token for browsers that cannot set headers"
// @Success 101
// @Router /ws/events [get]
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "websocket upgrade required", http.StatusBadRequest)
		return
	}
	if !h.manager.CanAccept() {
		http.Error(w, errConnectionLimit.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	client := newWSClient(conn, h.source)
	if err := h.manager.Register(client); err != nil {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many websocket connections"),
			time.Now().Add(h.writeTimeout),
		)
		client.close()
		return
	}
	h.log.InfoContext(r.Context(), "event feed connected", "connections", h.manager.Count())

	go h.writePump(client)
	h.readPump(client)
}

func (h *WebSocketHandler) readPump(client *wsClient) {
	defer h.manager.Unregister(client)

	readDeadline := h.pingInterval + h.pongTimeout
	client.conn.SetReadLimit(4 << 10)
	_ = client.conn.SetReadDeadline(time.Now().Add(readDeadline))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", "error", err)
			}
			return
		}
		handleTopicMessage(client, data)
	}
}

func (h *WebSocketHandler) writePump(client *wsClient) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		h.manager.Unregister(client)
	}()

	for {
		select {
		case event, ok := <-client.events:
			if !ok {
				_ = client.conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(h.writeTimeout),
				)
				return
			}
			if !client.wants(event.Type) {
				continue
			}
			_ = client.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := client.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout)); err != nil {
				return
			}
		}
	}
}

func handleTopicMessage(client *wsClient, raw []byte) {
	var msg topicMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}

	topic := strings.TrimSpace(msg.Topic)
	switch strings.ToLower(strings.TrimSpace(msg.Type)) {
	case "subscribe":
		client.subscribe(topic)
	case "unsubscribe":
		client.unsubscribe(topic)
	}
}

// Connections returns the open connection count.
func (h *WebSocketHandler) Connections() int { return h.manager.Count() }

// Close disconnects every client.
func (h *WebSocketHandler) Close() {
	h.manager.Close()
}

func isWebSocketOriginAllowed(r *http.Request, allowedOrigins []string) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(originURL.Host, r.Host)
}
