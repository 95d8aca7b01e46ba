package main

import (
	"net/http"

	"yt-dashboard/internal/stats"
)

// historyResponse is returned by GET /api/dashboard/history.
type historyResponse struct {
	HasData bool                    `json:"has_data"`
	History []stats.ChannelSnapshot `json:"history"`
}

// handleHistory returns the full channel history in ascending fetched_at
// order — the series behind the subscriber growth chart.
func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.store.ChannelHistory()
	if err != nil {
		jsonErr(w, "database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, historyResponse{
		HasData: len(history) > 0,
		History: history,
	})
}
