package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/types"
)

// handleHandicapChart renders a player's handicap history as a PNG line
// chart. Players with fewer than two data points get a 404 since there
// is nothing to plot yet.
func (s *Server) handleHandicapChart(w http.ResponseWriter, r *http.Request) {
	userID := types.UserID(chi.URLParam(r, "userID"))

	history, err := s.userService.GetHandicapHistory(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if len(history) < 2 {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not enough handicap history to chart"})
		return
	}

	dates := make([]time.Time, len(history))
	values := make([]float64, len(history))
	for i, entry := range history {
		dates[i] = entry.Date
		values[i] = entry.Handicap
	}

	graph := chart.Chart{
		Title: "Handicap Index",
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "handicap",
				XValues: dates,
				YValues: values,
			},
		},
	}

	w.Header().Set("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, w); err != nil {
		s.logger.Error("Failed to render handicap chart",
			attr.UserID(userID),
			attr.Error(err),
		)
	}
}
