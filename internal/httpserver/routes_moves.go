// internal/httpserver/routes_moves.go
//
// HTTP routes for moves (called numbers):
//   - GET    /move/all
//   - GET    /move/get/{id}
//   - POST   /move/save          → body {"idGame":n}, draws the next number
//   - PUT    /move/update/{id}   → body {"number":n}, letter derived again
//   - DELETE /move/delete/{id}

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Server) mountMoves(r chi.Router) {
	r.Route("/move", func(r chi.Router) {
		r.Get("/all", s.handleListMoves)
		r.Get("/get/{id}", s.handleGetMove)
		r.Post("/save", s.handleDrawMove)
		r.Put("/update/{id}", s.handleUpdateMove)
		r.Delete("/delete/{id}", s.handleDeleteMove)
	})
}

// drawReq accepts the game id under either name the client uses.
type drawReq struct {
	IDGame int64 `json:"idGame"`
	GameID int64 `json:"gameId"`
}

func (s *Server) handleListMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := s.svc.ListMoves(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, moves)
}

func (s *Server) handleGetMove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	m, err := s.svc.GetMove(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDrawMove(w http.ResponseWriter, r *http.Request) {
	var req drawReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	gameID := req.IDGame
	if gameID == 0 {
		gameID = req.GameID
	}
	if gameID <= 0 {
		writeError(w, r, apperr.Invalid("idGame is required"))
		return
	}
	m, err := s.svc.DrawMove(r.Context(), gameID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleUpdateMove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in bingo.Move
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	m, err := s.svc.UpdateMove(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteMove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.DeleteMove(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted{ID: id})
}
