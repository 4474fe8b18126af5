package progress

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/convdesk/convdesk/internal/model"
)

// progressServer pushes canned frames to any subscriber of /api/progress/{id}
type progressServer struct {
	*httptest.Server
	frames []string
}

func newProgressServer(t *testing.T, frames []string) *progressServer {
	t.Helper()
	upgrader := websocket.Upgrader{}

	ps := &progressServer{frames: frames}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/progress/") {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		for _, frame := range ps.frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
		// Keep the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	return ps
}

func collectEvents(t *testing.T, ch *Channel, sessionID string, want int) []model.ProgressEvent {
	t.Helper()
	received := make(chan model.ProgressEvent, 16)

	if err := ch.Subscribe(sessionID, func(e model.ProgressEvent) {
		received <- e
	}); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	var events []model.ProgressEvent
	timeout := time.After(2 * time.Second)
	for len(events) < want {
		select {
		case e := <-received:
			events = append(events, e)
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %d of %d", len(events), want)
		}
	}
	return events
}

func TestChannel_DeliversOrderedEvents(t *testing.T) {
	server := newProgressServer(t, []string{
		`{"session_id":"s1","status":"converting","progress":10}`,
		`{"session_id":"s1","status":"converting","progress":40,"message":"encoding"}`,
		`{"session_id":"s1","status":"completed","progress":100,"download_url":"/api/download/x.pdf"}`,
	})
	defer server.Close()

	ch := NewChannel(server.URL)
	defer ch.Close()

	events := collectEvents(t, ch, "s1", 3)

	if events[0].Progress != 10 || events[1].Progress != 40 || events[2].Progress != 100 {
		t.Errorf("events out of order: %+v", events)
	}
	if events[1].Message != "encoding" {
		t.Errorf("expected message 'encoding', got %q", events[1].Message)
	}
	if events[2].Status != model.RemoteStatusCompleted {
		t.Errorf("expected terminal completed event, got %q", events[2].Status)
	}
}

func TestChannel_DropsMalformedPayloads(t *testing.T) {
	server := newProgressServer(t, []string{
		`not json at all`,
		`{"session_id":"s1","progress":40}`,
		`{"session_id":"s1","status":"converting","progress":400}`,
		`{"session_id":"s1","status":"converting","progress":55}`,
	})
	defer server.Close()

	ch := NewChannel(server.URL)
	defer ch.Close()

	events := collectEvents(t, ch, "s1", 1)

	if events[0].Progress != 55 {
		t.Errorf("expected only the well-formed event, got %+v", events[0])
	}
}

func TestChannel_SubscribeIsIdempotent(t *testing.T) {
	server := newProgressServer(t, []string{
		`{"session_id":"s1","status":"converting","progress":10}`,
	})
	defer server.Close()

	ch := NewChannel(server.URL)
	defer ch.Close()

	received := make(chan model.ProgressEvent, 16)
	handler := func(e model.ProgressEvent) { received <- e }

	if err := ch.Subscribe("s1", handler); err != nil {
		t.Fatalf("first Subscribe failed: %v", err)
	}
	if err := ch.Subscribe("s1", handler); err != nil {
		t.Fatalf("second Subscribe failed: %v", err)
	}

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	// A second event would mean a duplicate subscription delivered the same frame twice
	select {
	case e := <-received:
		t.Errorf("unexpected duplicate event %+v", e)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestChannel_EmptyIdentifierIsClosedState(t *testing.T) {
	ch := NewChannel("http://localhost:0")
	defer ch.Close()

	if err := ch.Subscribe("", func(model.ProgressEvent) {
		t.Error("handler must not be called for empty identifier")
	}); err != nil {
		t.Fatalf("Subscribe with empty identifier failed: %v", err)
	}

	if ch.SessionID() != "" {
		t.Errorf("expected empty session id, got %q", ch.SessionID())
	}
}

func TestChannel_ChangingIdentifierDetachesPrevious(t *testing.T) {
	server := newProgressServer(t, []string{
		`{"status":"converting","progress":10}`,
	})
	defer server.Close()

	ch := NewChannel(server.URL)
	defer ch.Close()

	first := make(chan model.ProgressEvent, 16)
	if err := ch.Subscribe("s1", func(e model.ProgressEvent) { first <- e }); err != nil {
		t.Fatalf("Subscribe s1 failed: %v", err)
	}

	second := make(chan model.ProgressEvent, 16)
	if err := ch.Subscribe("s2", func(e model.ProgressEvent) { second <- e }); err != nil {
		t.Fatalf("Subscribe s2 failed: %v", err)
	}

	if got := ch.SessionID(); got != "s2" {
		t.Errorf("expected current session s2, got %q", got)
	}

	// Events delivered after the switch must belong to the new subscription
	select {
	case e := <-second:
		if e.SessionID != "s2" {
			t.Errorf("expected events tagged with s2, got %q", e.SessionID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for s2 event")
	}
}

func TestChannel_FillsSessionIDWhenAbsent(t *testing.T) {
	server := newProgressServer(t, []string{
		`{"status":"converting","progress":25}`,
	})
	defer server.Close()

	ch := NewChannel(server.URL)
	defer ch.Close()

	events := collectEvents(t, ch, "s9", 1)
	if events[0].SessionID != "s9" {
		t.Errorf("expected session id s9 filled in, got %q", events[0].SessionID)
	}
}
