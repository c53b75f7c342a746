package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
)

// ListParsesResponse is the response for GET /parses.
type ListParsesResponse struct {
	Parses []db.ParseResult `json:"parses"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// handleListParses lists stored parses, newest first.
func (s *Server) handleListParses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errResponse(w, ErrStorageDisabled)
		return
	}

	limit, err := queryInt(r, "limit", db.DefaultListLimit)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	limit, offset = db.ClampPage(limit, offset)
	parses, err := s.store.ListParseResults(r.Context(), limit, offset)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if parses == nil {
		parses = []db.ParseResult{}
	}
	s.jsonResponse(w, http.StatusOK, ListParsesResponse{
		Parses: parses,
		Limit:  limit,
		Offset: offset,
	})
}

// handleGetParse returns one stored parse.
func (s *Server) handleGetParse(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errResponse(w, ErrStorageDisabled)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	result, err := s.store.GetParseResult(r.Context(), id)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if result == nil {
		s.errResponse(w, &ErrNotFound{ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleDeleteParse deletes one stored parse.
func (s *Server) handleDeleteParse(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errResponse(w, ErrStorageDisabled)
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	deleted, err := s.store.DeleteParseResult(r.Context(), id)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if !deleted {
		s.errResponse(w, &ErrNotFound{ID: id.String()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ErrValidation{Field: key, Message: "must be an integer"}
	}
	return n, nil
}
