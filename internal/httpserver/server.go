// internal/httpserver/server.go
//
// HTTP server wiring for the Bingo backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, CORS,
//     timeouts, JSON content type).
//   - Public endpoints: "/", "/health".
//   - Entity endpoints under /status, /game, /gamer, /board and /move, keeping
//     the paths the web client already calls (/x/all, /x/get/{id}, /x/save,
//     /x/update/{id}, /x/delete/{id} plus the PATCH partial updates).
//   - WebSocket feed under /ws/game/{id}.
//
// Notes:
//   - The WebSocket route sits outside the timeout group; it lives as long as
//     the client stays connected.
//   - Every error body is {"error":"<kind>","message":"..."}.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/feed"
	"github.com/robalobadob/bingo-server/internal/service"
)

// Options tunes the HTTP layer.
type Options struct {
	ClientOrigin   string
	RequestTimeout time.Duration
}

// Server bundles the router, domain service and event hub.
type Server struct {
	r   *chi.Mux
	svc *service.Service
	hub *feed.Hub
}

// New constructs a Server, installs middleware, and registers routes.
func New(svc *service.Service, hub *feed.Hub, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), svc: svc, hub: hub}

	// --- middleware ---
	s.r.Use(chimw.RequestID)         // add X-Request-ID
	s.r.Use(chimw.RealIP)            // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog(log.Logger))   // one structured line per request
	s.r.Use(chimw.Recoverer)         // recover from panics
	s.r.Use(cors(opts.ClientOrigin)) // single-origin CORS

	// --- feed ---
	s.r.Get("/ws/game/{id}", s.handleFeed)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
		r.Use(jsonContentType)                    // default JSON responses

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"bingo-go","endpoints":["/health","/status","/game","/gamer","/board","/move","/ws/game/{id}"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		s.mountStatus(r)
		s.mountGames(r)
		s.mountGamers(r)
		s.mountBoards(r)
		s.mountMoves(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: apperr.KindNotFound, Message: "no route for " + r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }
