// internal/feed/hub.go
//
// WebSocket fan-out of game events.
// Responsibilities:
//   - Upgrade /ws/game/{id} requests and register the connection under its game.
//   - Broadcast drawn moves, winners and status changes to that game's subscribers.
//   - Drop subscribers that cannot keep up instead of blocking the publisher.
//
// Each connection gets a write pump (queued events plus pings) and a read pump
// that only watches for disconnects; clients never send commands here.

package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

type EventType string

const (
	EventMove   EventType = "move"
	EventWinner EventType = "winner"
	EventStatus EventType = "status"
)

// Event is one message pushed to a game's subscribers.
type Event struct {
	Type     EventType   `json:"type"`
	GameID   int64       `json:"gameId"`
	Move     *bingo.Move `json:"move,omitempty"`
	Winner   string      `json:"winner,omitempty"`
	StatusID int64       `json:"statusId,omitempty"`
}

type subscriber struct {
	gameID int64
	send   chan []byte
	once   sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// Hub keeps subscribers per game id.
type Hub struct {
	mu       sync.Mutex
	games    map[int64]map[*subscriber]struct{}
	upgrader websocket.Upgrader
}

// NewHub returns a hub accepting upgrades from origin ("*" accepts any).
func NewHub(origin string) *Hub {
	return &Hub{
		games: make(map[int64]map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				got := r.Header.Get("Origin")
				return got == "" || origin == "*" || got == origin
			},
		},
	}
}

func (h *Hub) register(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.games[s.gameID]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.games[s.gameID] = set
	}
	set[s] = struct{}{}
}

// unregisterLocked removes s and closes its queue. Caller holds h.mu.
func (h *Hub) unregisterLocked(s *subscriber) {
	set := h.games[s.gameID]
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.games, s.gameID)
	}
	s.close()
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unregisterLocked(s)
}

// Subscribers returns how many connections follow gameID.
func (h *Hub) Subscribers(gameID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.games[gameID])
}

// Publish queues e for every subscriber of e.GameID without blocking.
func (h *Hub) Publish(e Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		log.Error().Err(err).Msg("encode feed event")
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.games[e.GameID] {
		select {
		case s.send <- msg:
		default:
			log.Warn().Int64("game_id", e.GameID).Msg("dropping slow feed subscriber")
			h.unregisterLocked(s)
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.games {
		for s := range set {
			h.unregisterLocked(s)
		}
	}
}

// Serve upgrades the request and streams gameID's events until the client
// goes away. The upgrader has already answered when an error is returned.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, gameID int64) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	s := &subscriber{gameID: gameID, send: make(chan []byte, sendBuffer)}
	h.register(s)
	log.Info().Int64("game_id", gameID).Str("remote", r.RemoteAddr).Msg("feed subscriber joined")

	go writePump(conn, s)
	readPump(conn)

	h.unregister(s)
	log.Info().Int64("game_id", gameID).Msg("feed subscriber left")
	return nil
}

func readPump(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("feed read")
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()
	for {
		select {
		case msg, ok := <-s.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
