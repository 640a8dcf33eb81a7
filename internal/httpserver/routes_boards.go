// internal/httpserver/routes_boards.go
//
// HTTP routes for boards:
//   - GET    /board/all
//   - GET    /board/get/{id}
//   - POST   /board/save          → body {"gamerId":n}, deals a fresh card
//   - PUT    /board/update/{id}   → full card replacement, validated
//   - DELETE /board/delete/{id}

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Server) mountBoards(r chi.Router) {
	r.Route("/board", func(r chi.Router) {
		r.Get("/all", s.handleListBoards)
		r.Get("/get/{id}", s.handleGetBoard)
		r.Post("/save", s.handleCreateBoard)
		r.Put("/update/{id}", s.handleReplaceBoard)
		r.Delete("/delete/{id}", s.handleDeleteBoard)
	})
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := s.svc.ListBoards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := s.svc.GetBoard(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var in bingo.Board
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := s.svc.CreateBoard(r.Context(), in.GamerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleReplaceBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in bingo.Board
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := s.svc.ReplaceBoard(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.DeleteBoard(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted{ID: id})
}
