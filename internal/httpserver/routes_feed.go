package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/hlog"
)

// handleFeed streams a game's events over a WebSocket.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := s.svc.GetGame(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.hub.Serve(w, r, id); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Int64("game_id", id).Msg("feed upgrade failed")
	}
}
