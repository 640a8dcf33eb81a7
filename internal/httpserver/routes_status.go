// internal/httpserver/routes_status.go
//
// HTTP routes for administered statuses:
//   - GET    /status/all
//   - GET    /status/get/{id}
//   - POST   /status/save
//   - PUT    /status/update/{id}
//   - DELETE /status/delete/{id}   → 409 while a game or gamer uses it

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/bingo-server/internal/bingo"
)

func (s *Server) mountStatus(r chi.Router) {
	r.Route("/status", func(r chi.Router) {
		r.Get("/all", s.handleListStatuses)
		r.Get("/get/{id}", s.handleGetStatus)
		r.Post("/save", s.handleCreateStatus)
		r.Put("/update/{id}", s.handleUpdateStatus)
		r.Delete("/delete/{id}", s.handleDeleteStatus)
	})
}

func (s *Server) handleListStatuses(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.ListStatuses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	st, err := s.svc.GetStatus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleCreateStatus(w http.ResponseWriter, r *http.Request) {
	var in bingo.Status
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	st, err := s.svc.CreateStatus(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in bingo.Status
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	st, err := s.svc.UpdateStatus(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleDeleteStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.DeleteStatus(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleted{ID: id})
}
