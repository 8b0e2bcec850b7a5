// Package api exposes the form store over a small JSON REST surface so
// external tools can read forms and push submissions without the TUI.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/formline/formline-terminal/pkg/models"
	"github.com/formline/formline-terminal/pkg/store"
)

// Server wraps a store behind HTTP handlers.
//
//	GET    /api/forms                    list forms
//	POST   /api/forms                    create form
//	GET    /api/forms/{id}               get form
//	PUT    /api/forms/{id}               update form
//	DELETE /api/forms/{id}               delete form
//	GET    /api/forms/{id}/submissions   list submissions
//	POST   /api/forms/{id}/submissions   create submission
type Server struct {
	store store.Store
	mux   *http.ServeMux
}

func NewServer(st store.Store) *Server {
	s := &Server{store: st, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/forms", s.handleForms)
	s.mux.HandleFunc("/api/forms/", s.handleFormRouter)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		forms, err := s.store.ListForms()
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "list_failed", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"forms": forms,
			"count": len(forms),
		})

	case http.MethodPost:
		var draft models.FormDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			jsonError(w, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		if strings.TrimSpace(draft.Title) == "" {
			jsonError(w, http.StatusBadRequest, "missing_fields", "title is required")
			return
		}
		form, err := s.store.CreateForm(draft)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "create_failed", err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, form)

	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// handleFormRouter dispatches /api/forms/{id} and
// /api/forms/{id}/submissions.
func (s *Server) handleFormRouter(w http.ResponseWriter, r *http.Request) {
	parts := pathParts(r)
	// expect at least ["api", "forms", "{id}"]
	if len(parts) < 3 || parts[2] == "" {
		http.NotFound(w, r)
		return
	}
	id := parts[2]

	if len(parts) == 3 {
		switch r.Method {
		case http.MethodGet:
			s.handleGetForm(w, id)
		case http.MethodPut:
			s.handleUpdateForm(w, r, id)
		case http.MethodDelete:
			s.handleDeleteForm(w, id)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
		}
		return
	}

	if len(parts) == 4 && parts[3] == "submissions" {
		switch r.Method {
		case http.MethodGet:
			s.handleListSubmissions(w, id)
		case http.MethodPost:
			s.handleCreateSubmission(w, r, id)
		default:
			methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
		return
	}

	http.NotFound(w, r)
}

func (s *Server) handleGetForm(w http.ResponseWriter, id string) {
	form, err := s.store.GetForm(id)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *Server) handleUpdateForm(w http.ResponseWriter, r *http.Request, id string) {
	var draft models.FormDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(draft.Title) == "" {
		jsonError(w, http.StatusBadRequest, "missing_fields", "title is required")
		return
	}
	form, err := s.store.UpdateForm(id, draft)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *Server) handleDeleteForm(w http.ResponseWriter, id string) {
	if err := s.store.DeleteForm(id); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, id string) {
	// 404 for submissions of a missing form, not an empty list.
	if _, err := s.store.GetForm(id); err != nil {
		storeError(w, err)
		return
	}
	subs, err := s.store.ListSubmissions(id)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"submissions": subs,
		"count":       len(subs),
	})
}

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request, id string) {
	var in struct {
		Data models.Answers `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if in.Data == nil {
		in.Data = models.Answers{}
	}
	sub, err := s.store.CreateSubmission(id, in.Data)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func pathParts(r *http.Request) []string {
	return strings.Split(strings.Trim(r.URL.Path, "/"), "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": msg,
	})
}

func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	jsonError(w, http.StatusInternalServerError, "store_failed", err.Error())
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	jsonError(w, http.StatusMethodNotAllowed, "method_not_allowed",
		fmt.Sprintf("allowed: %s", strings.Join(allowed, ", ")))
}
