package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/convdesk/convdesk/internal/model"
)

// Handler receives progress events for the subscribed session
type Handler func(model.ProgressEvent)

// Channel maintains one live push subscription to the conversion service,
// keyed by session identifier. Opening is idempotent per identifier and
// changing the identifier closes the previous subscription first, so stale
// progress can never leak into a newer session.
type Channel struct {
	baseURL string
	dialer  *websocket.Dialer
	debug   bool

	mu        sync.Mutex
	sessionID string
	conn      *websocket.Conn
	gen       int
}

// NewChannel creates a progress channel for the given service base URL
func NewChannel(baseURL string) *Channel {
	return &Channel{
		baseURL: strings.TrimRight(baseURL, "/"),
		dialer:  websocket.DefaultDialer,
	}
}

// SetDebug enables logging of dropped payloads. Off in production builds.
func (c *Channel) SetDebug(debug bool) {
	c.debug = debug
}

// Subscribe opens a subscription for the given session identifier. An empty
// identifier is a valid closed state and yields no events. Subscribing to
// the identifier that is already open is a no-op.
func (c *Channel) Subscribe(sessionID string, handler Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sessionID == c.sessionID && c.conn != nil {
		return nil
	}

	c.closeLocked()
	c.sessionID = sessionID

	if sessionID == "" {
		return nil
	}

	endpoint, err := c.wsURL(sessionID)
	if err != nil {
		return fmt.Errorf("invalid progress endpoint: %w", err)
	}

	conn, _, err := c.dialer.Dial(endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to open progress subscription: %w", err)
	}

	c.conn = conn
	c.gen++
	go c.readLoop(conn, c.gen, sessionID, handler)
	return nil
}

// Close tears down the current subscription, if any
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	c.sessionID = ""
}

// SessionID returns the identifier of the current subscription, empty when closed
func (c *Channel) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Channel) closeLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.gen++
}

// readLoop delivers events in arrival order until the connection ends.
// Connection failures only stop delivery; they never surface to the session.
func (c *Channel) readLoop(conn *websocket.Conn, gen int, sessionID string, handler Handler) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var event model.ProgressEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			if c.debug {
				log.Printf("progress: dropping malformed payload for session %s: %v", sessionID, err)
			}
			continue
		}
		if !event.Valid() {
			if c.debug {
				log.Printf("progress: dropping invalid event for session %s: %+v", sessionID, event)
			}
			continue
		}
		if event.SessionID == "" {
			event.SessionID = sessionID
		}

		c.mu.Lock()
		stale := c.gen != gen
		c.mu.Unlock()
		if stale {
			return
		}

		handler(event)
	}
}

// wsURL converts the HTTP base URL into the websocket endpoint for a session
func (c *Channel) wsURL(sessionID string) (string, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	case "http":
		parsed.Scheme = "ws"
	case "ws", "wss":
		// already a websocket URL
	default:
		return "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/api/progress/" + sessionID
	return parsed.String(), nil
}
