package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roundservice "github.com/fore-golf/fore-api/app/modules/round/application"
	"github.com/fore-golf/fore-api/config"
	"github.com/fore-golf/fore-api/internal/observability"
	"github.com/fore-golf/fore-api/internal/results"
	"github.com/fore-golf/fore-api/internal/types"
)

func newTestServer(rounds *FakeRoundService, users *FakeUserService, courses *FakeCourseService) *Server {
	cfg := &config.Config{}
	cfg.HTTP.Addr = ":0"
	return NewServer(cfg, rounds, users, courses, observability.NoOpLogger)
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	server := newTestServer(&FakeRoundService{}, &FakeUserService{}, &FakeCourseService{})
	rec := doJSON(t, server, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitRoundCreated(t *testing.T) {
	rounds := &FakeRoundService{
		SubmitRoundFunc: func(ctx context.Context, input roundservice.SubmitRoundInput) (roundservice.RoundOperationResult, error) {
			assert.Equal(t, types.UserID("user-1"), input.UserID)
			return results.SuccessResult[types.Round, roundservice.SubmissionFailure](types.Round{
				ID:     "round-1",
				UserID: input.UserID,
			}), nil
		},
	}
	server := newTestServer(rounds, &FakeUserService{}, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodPost, "/api/rounds", map[string]interface{}{
		"user_id":        "user-1",
		"course_id":      "course-1",
		"scorecard_mode": "total-score",
		"scorecard":      map[string]int{"total": 90},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var body submitRoundResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, types.RoundID("round-1"), body.Round.ID)
}

func TestSubmitRoundFailureMapping(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{"user missing", roundservice.FailureNotFound, http.StatusNotFound},
		{"bad scorecard", roundservice.FailureInvalidInput, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds := &FakeRoundService{
				SubmitRoundFunc: func(ctx context.Context, input roundservice.SubmitRoundInput) (roundservice.RoundOperationResult, error) {
					return results.FailureResult[types.Round, roundservice.SubmissionFailure](roundservice.SubmissionFailure{
						Code:   tt.code,
						Reason: tt.name,
					}), nil
				},
			}
			server := newTestServer(rounds, &FakeUserService{}, &FakeCourseService{})

			rec := doJSON(t, server, http.MethodPost, "/api/rounds", map[string]interface{}{})
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body submissionRejectedResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestSubmitRoundBadBody(t *testing.T) {
	server := newTestServer(&FakeRoundService{}, &FakeUserService{}, &FakeCourseService{})

	req := httptest.NewRequest(http.MethodPost, "/api/rounds", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRoundRateLimited(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Addr = ":0"
	cfg.HTTP.SubmitRatePerSecond = 0.001
	cfg.HTTP.SubmitBurst = 1
	server := NewServer(cfg, &FakeRoundService{
		SubmitRoundFunc: func(ctx context.Context, input roundservice.SubmitRoundInput) (roundservice.RoundOperationResult, error) {
			return results.SuccessResult[types.Round, roundservice.SubmissionFailure](types.Round{ID: "r"}), nil
		},
	}, &FakeUserService{}, &FakeCourseService{}, observability.NoOpLogger)

	first := doJSON(t, server, http.MethodPost, "/api/rounds", map[string]interface{}{})
	assert.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, server, http.MethodPost, "/api/rounds", map[string]interface{}{})
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestGetRounds(t *testing.T) {
	rounds := &FakeRoundService{
		GetRoundsFunc: func(ctx context.Context, ids []types.RoundID, withCourseData bool) ([]types.Round, error) {
			assert.Equal(t, []types.RoundID{"r1", "r2"}, ids)
			assert.True(t, withCourseData)
			return []types.Round{{ID: "r1"}, {ID: "r2"}}, nil
		},
	}
	server := newTestServer(rounds, &FakeUserService{}, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodGet, "/api/rounds?ids=r1,r2&course_data=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]types.Round
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["rounds"], 2)
}

func TestGetRoundsRequiresIDs(t *testing.T) {
	server := newTestServer(&FakeRoundService{}, &FakeUserService{}, &FakeCourseService{})
	rec := doJSON(t, server, http.MethodGet, "/api/rounds", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAutofillScores(t *testing.T) {
	rounds := &FakeRoundService{
		AutofillScoresFunc: func(ctx context.Context, input roundservice.AutofillInput) (map[string]int, error) {
			assert.Equal(t, 88, input.TargetTotal)
			return map[string]int{"1": 4}, nil
		},
	}
	server := newTestServer(rounds, &FakeUserService{}, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodPost, "/api/autofill-scores", map[string]interface{}{
		"scorecard":    map[string]interface{}{"1": map[string]interface{}{}},
		"target_total": 88,
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAutofillScoresUnreachable(t *testing.T) {
	rounds := &FakeRoundService{
		AutofillScoresFunc: func(ctx context.Context, input roundservice.AutofillInput) (map[string]int, error) {
			return nil, &types.InvalidInputError{Reason: "target total is not reachable with the provided fixed scores"}
		},
	}
	server := newTestServer(rounds, &FakeUserService{}, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodPost, "/api/autofill-scores", map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestImportScorecard(t *testing.T) {
	server := newTestServer(&FakeRoundService{}, &FakeUserService{}, &FakeCourseService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("scorecard", "round.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("front,back\n42,45\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/rounds/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ScorecardMode string         `json:"scorecard_mode"`
		Scorecard     map[string]int `json:"scorecard"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "front-and-back", body.ScorecardMode)
	assert.Equal(t, map[string]int{"front": 42, "back": 45}, body.Scorecard)
}

func TestImportScorecardUnsupportedType(t *testing.T) {
	server := newTestServer(&FakeRoundService{}, &FakeUserService{}, &FakeCourseService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("scorecard", "round.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/rounds/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandicapChart(t *testing.T) {
	users := &FakeUserService{
		GetHandicapHistoryFunc: func(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error) {
			base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			return []types.HandicapEntry{
				{Date: base, Handicap: 12.0},
				{Date: base.AddDate(0, 1, 0), Handicap: 11.2},
				{Date: base.AddDate(0, 2, 0), Handicap: 10.4},
			}, nil
		},
	}
	server := newTestServer(&FakeRoundService{}, users, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodGet, "/api/users/user-1/handicap-chart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHandicapChartInsufficientHistory(t *testing.T) {
	server := newTestServer(&FakeRoundService{}, &FakeUserService{}, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodGet, "/api/users/user-1/handicap-chart", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandicapChartUserMissing(t *testing.T) {
	users := &FakeUserService{
		GetHandicapHistoryFunc: func(ctx context.Context, id types.UserID) ([]types.HandicapEntry, error) {
			return nil, &types.NotFoundError{Entity: "user", ID: id.String()}
		},
	}
	server := newTestServer(&FakeRoundService{}, users, &FakeCourseService{})

	rec := doJSON(t, server, http.MethodGet, "/api/users/user-1/handicap-chart", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
