package api

import (
	"io"
	"net/http"
	"strings"

	roundservice "github.com/fore-golf/fore-api/app/modules/round/application"
	"github.com/fore-golf/fore-api/internal/types"
)

// maxImportSize bounds uploaded scorecard files.
const maxImportSize = 1 << 20

type submitRoundResponse struct {
	Round *types.Round `json:"round"`
}

type submissionRejectedResponse struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (s *Server) handleSubmitRound(w http.ResponseWriter, r *http.Request) {
	var input roundservice.SubmitRoundInput
	if !s.decodeBody(w, r, &input) {
		return
	}

	result, err := s.roundService.SubmitRound(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if result.IsFailure() {
		status := http.StatusUnprocessableEntity
		if result.Failure.Code == roundservice.FailureNotFound {
			status = http.StatusNotFound
		}
		s.writeJSON(w, status, submissionRejectedResponse{
			Code:   result.Failure.Code,
			Reason: result.Failure.Reason,
		})
		return
	}

	s.writeJSON(w, http.StatusCreated, submitRoundResponse{Round: result.Success})
}

func (s *Server) handleGetRounds(w http.ResponseWriter, r *http.Request) {
	rawIDs := r.URL.Query().Get("ids")
	if rawIDs == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ids query parameter is required"})
		return
	}

	var ids []types.RoundID
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, types.RoundID(id))
		}
	}

	withCourseData := r.URL.Query().Get("course_data") == "true"

	rounds, err := s.roundService.GetRounds(r.Context(), ids, withCourseData)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string][]types.Round{"rounds": rounds})
}

func (s *Server) handleAutofillScores(w http.ResponseWriter, r *http.Request) {
	var input roundservice.AutofillInput
	if !s.decodeBody(w, r, &input) {
		return
	}

	scores, err := s.roundService.AutofillScores(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]map[string]int{"scorecard": scores})
}

// handleImportScorecard parses an uploaded scorecard file and returns the
// submission-ready scorecard map; the client reviews it before posting
// the round.
func (s *Server) handleImportScorecard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("scorecard")
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "scorecard file is required"})
		return
	}
	defer file.Close()

	parser, err := s.parserFactory.GetParser(header.Filename)
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		s.writeError(w, err)
		return
	}

	parsed, err := parser.Parse(data, header.Filename)
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"scorecard_mode": parsed.Mode,
		"scorecard":      parsed.Scorecard,
	})
}
