// internal/httpserver/routes_gamers.go
//
// HTTP routes for gamers:
//   - GET    /gamer/all
//   - GET    /gamer/get/{id}
//   - GET    /gamer/get/user/{user}    → latest gamer registered under that name
//   - POST   /gamer/save               → registers the gamer and deals its board
//   - PUT    /gamer/update/{id}
//   - PATCH  /gamer/update/status/{id} → body {"statusGamer":{"idStatus":n}}
//   - PATCH  /gamer/update/board/{id}  → body {"board":{"idBoard":n}}
//   - PATCH  /gamer/update/game/{id}   → body {"gameId":n}
//   - POST   /gamer/bingo/{id}         → checks the board against called numbers
//   - DELETE /gamer/delete/{id}        → also removes the gamer's board

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/bingo-server/internal/apperr"
	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Server) mountGamers(r chi.Router) {
	r.Route("/gamer", func(r chi.Router) {
		r.Get("/all", s.handleListGamers)
		r.Get("/get/{id}", s.handleGetGamer)
		r.Get("/get/user/{user}", s.handleGamerByUser)
		r.Post("/save", s.handleRegisterGamer)
		r.Put("/update/{id}", s.handleUpdateGamer)
		r.Patch("/update/status/{id}", s.handleGamerStatus)
		r.Patch("/update/board/{id}", s.handleGamerBoard)
		r.Patch("/update/game/{id}", s.handleGamerGame)
		r.Post("/bingo/{id}", s.handleClaimBingo)
		r.Delete("/delete/{id}", s.handleDeleteGamer)
	})
}

// gamerBody reads the {id} parameter and a Gamer payload.
func gamerBody(r *http.Request) (int64, bingo.Gamer, error) {
	var in bingo.Gamer
	id, err := pathID(r)
	if err != nil {
		return 0, in, err
	}
	return id, in, decodeJSON(r, &in)
}

func (s *Server) handleListGamers(w http.ResponseWriter, r *http.Request) {
	gamers, err := s.svc.ListGamers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gamers)
}

func (s *Server) handleGetGamer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	g, err := s.svc.GetGamer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGamerByUser(w http.ResponseWriter, r *http.Request) {
	g, err := s.svc.FindGamerByUser(r.Context(), chi.URLParam(r, "user"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleRegisterGamer(w http.ResponseWriter, r *http.Request) {
	var in bingo.Gamer
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	g, err := s.svc.RegisterGamer(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleUpdateGamer(w http.ResponseWriter, r *http.Request) {
	id, in, err := gamerBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	g, err := s.svc.UpdateGamer(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGamerStatus(w http.ResponseWriter, r *http.Request) {
	id, in, err := gamerBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if in.Status == nil || in.Status.ID <= 0 {
		writeError(w, r, apperr.Invalid("statusGamer.idStatus is required"))
		return
	}
	g, err := s.svc.UpdateGamerStatus(r.Context(), id, in.Status.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGamerBoard(w http.ResponseWriter, r *http.Request) {
	id, in, err := gamerBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if in.Board == nil || in.Board.ID <= 0 {
		writeError(w, r, apperr.Invalid("board.idBoard is required"))
		return
	}
	g, err := s.svc.UpdateGamerBoard(r.Context(), id, in.Board.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGamerGame(w http.ResponseWriter, r *http.Request) {
	id, in, err := gamerBody(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if in.GameID == nil || *in.GameID <= 0 {
		writeError(w, r, apperr.Invalid("gameId is required"))
		return
	}
	g, err := s.svc.AssignGamerGame(r.Context(), id, *in.GameID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleClaimBingo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	claim, err := s.svc.ClaimBingo(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, claim)
}

func (s *Server) handleDeleteGamer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.DeleteGamer(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted{ID: id})
}
