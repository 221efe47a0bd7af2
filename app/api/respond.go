package api

import (
	"encoding/json"
	"net/http"

	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", attr.Error(err))
	}
}

// writeError maps domain errors onto HTTP statuses: missing documents to
// 404, rejected input to 422, everything else to 500 with a generic body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case types.IsNotFound(err):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case types.IsInvalidInput(err):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("Request failed", attr.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
