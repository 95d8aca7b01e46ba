package main

import (
	"encoding/json"
	"net/http"

	"yt-dashboard/internal/analytics"
	"yt-dashboard/internal/stats"
)

// overviewResponse is returned by GET /api/dashboard/overview.
type overviewResponse struct {
	HasData          bool                   `json:"has_data"`
	Channel          *stats.ChannelSnapshot `json:"channel,omitempty"`
	AvgViewsPerVideo float64                `json:"avg_views_per_video"`
	HealthScore      float64                `json:"health_score"`
	Recommendations  []string               `json:"recommendations"`
}

// handleOverview returns the latest channel snapshot with its derived
// health score and recommendations. An empty database is a legitimate,
// displayable state, not an error.
func (s *server) handleOverview(w http.ResponseWriter, r *http.Request) {
	channel, err := s.store.LatestChannel()
	if err != nil {
		jsonErr(w, "database error", http.StatusInternalServerError)
		return
	}
	if channel == nil {
		writeJSON(w, overviewResponse{Recommendations: []string{}})
		return
	}

	videos, err := s.store.AllVideos()
	if err != nil {
		jsonErr(w, "database error", http.StatusInternalServerError)
		return
	}

	var avgViews float64
	if channel.TotalVideos > 0 {
		avgViews = float64(channel.TotalViews) / float64(channel.TotalVideos)
	}

	writeJSON(w, overviewResponse{
		HasData:          true,
		Channel:          channel,
		AvgViewsPerVideo: avgViews,
		HealthScore:      analytics.HealthScore(*channel, videos),
		Recommendations:  analytics.Recommendations(*channel, videos),
	})
}

// handleRefresh drops the read cache so the next API call reloads from
// storage — wired to the dashboard's manual refresh button.
func (s *server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.store.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// jsonErr writes a JSON error response.
func jsonErr(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
