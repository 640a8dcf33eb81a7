// internal/httpserver/routes_games.go
//
// HTTP routes for games:
//   - GET    /game/all
//   - GET    /game/get/{id}            → game with status, gamers and moves
//   - POST   /game/save                → new game with the default status
//   - PUT    /game/update/{id}         → replace winner + status
//   - PATCH  /game/update/status/{id}  → body {"statusGame":{"idStatus":n}}
//   - PATCH  /game/update/winner/{id}  → body {"winner":"name"}
//   - DELETE /game/delete/{id}         → also removes gamers, boards and moves

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Server) mountGames(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/all", s.handleListGames)
		r.Get("/get/{id}", s.handleGetGame)
		r.Post("/save", s.handleCreateGame)
		r.Put("/update/{id}", s.handleUpdateGame)
		r.Patch("/update/status/{id}", s.handleGameStatus)
		r.Patch("/update/winner/{id}", s.handleGameWinner)
		r.Delete("/delete/{id}", s.handleDeleteGame)
	})
}

// gameBody reads the {id} parameter and a Game payload.
func gameBody(r *http.Request) (int64, bingo.Game, error) {
	var in bingo.Game
	id, err := pathID(r)
	if err != nil {
		return 0, in, err
	}
	return id, in, decodeJSON(r, &in)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.svc.ListGames(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	g, err := s.svc.GetGame(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var in bingo.Game
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	g, err := s.svc.CreateGame(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, in, err := gameBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	g, err := s.svc.UpdateGame(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGameStatus(w http.ResponseWriter, r *http.Request) {
	id, in, err := gameBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if in.Status == nil || in.Status.ID <= 0 {
		writeError(w, r, apperr.Invalid("statusGame.idStatus is required"))
		return
	}
	g, err := s.svc.UpdateGameStatus(r.Context(), id, in.Status.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGameWinner(w http.ResponseWriter, r *http.Request) {
	id, in, err := gameBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if in.Winner == nil {
		writeError(w, r, apperr.Invalid("winner is required"))
		return
	}
	g, err := s.svc.UpdateGameWinner(r.Context(), id, *in.Winner)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.DeleteGame(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted{ID: id})
}
