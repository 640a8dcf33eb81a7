package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func dial(t *testing.T, h *Hub, gameID int64) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h.Serve(w, r, gameID)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPublishReachesGameSubscribers(t *testing.T) {
	h := NewHub("*")
	conn := dial(t, h, 7)
	waitFor(t, func() bool { return h.Subscribers(7) == 1 })

	h.Publish(Event{Type: EventMove, GameID: 7, Move: &bingo.Move{ID: 1, Letter: "G", Number: 46, GameID: 7}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Type != EventMove || got.GameID != 7 || got.Move == nil || got.Move.Number != 46 {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestPublishIsScopedToGame(t *testing.T) {
	h := NewHub("*")
	conn := dial(t, h, 1)
	waitFor(t, func() bool { return h.Subscribers(1) == 1 })

	h.Publish(Event{Type: EventWinner, GameID: 2, Winner: "ana"})
	h.Publish(Event{Type: EventStatus, GameID: 1, StatusID: 3})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Type != EventStatus || got.StatusID != 3 {
		t.Fatalf("expected the game 1 status event first, got %+v", got)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	h := NewHub("*")
	conn := dial(t, h, 3)
	waitFor(t, func() bool { return h.Subscribers(3) == 1 })

	conn.Close()
	waitFor(t, func() bool { return h.Subscribers(3) == 0 })
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	h := NewHub("*")
	s := &subscriber{gameID: 9, send: make(chan []byte, 1)}
	h.register(s)

	h.Publish(Event{Type: EventStatus, GameID: 9, StatusID: 2})
	if h.Subscribers(9) != 1 {
		t.Fatal("subscriber dropped while its queue had room")
	}
	h.Publish(Event{Type: EventStatus, GameID: 9, StatusID: 3})
	if h.Subscribers(9) != 0 {
		t.Fatal("expected full subscriber to be dropped")
	}
	<-s.send
	if _, ok := <-s.send; ok {
		t.Fatal("expected queue to be closed")
	}
}

func TestOriginCheck(t *testing.T) {
	h := NewHub("http://localhost:3000")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h.Serve(w, r, 1)
	}))
	defer srv.Close()

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	if err == nil {
		t.Fatal("expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %+v", resp)
	}
}
