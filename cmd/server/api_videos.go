package main

import (
	"net/http"
	"strconv"
	"time"

	"yt-dashboard/internal/analytics"
)

const (
	defaultTopN = 10
	maxTopN     = 50
)

// videosResponse is returned by GET /api/dashboard/videos.
type videosResponse struct {
	HasData bool                     `json:"has_data"`
	Videos  []analytics.VideoMetrics `json:"videos"`
	Top     []analytics.VideoMetrics `json:"top"`
	TopN    int                      `json:"top_n"`
}

// handleVideos returns the date-filtered video snapshots annotated with
// engagement rate, performance score, and grade, plus the top-n rows by
// view count. Query parameters: start, end (YYYY-MM-DD, inclusive), top_n.
// Filtering happens in memory over the cached load — it never re-queries
// storage.
func (s *server) handleVideos(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(r)
	if !ok {
		jsonErr(w, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	topN := parseTopN(r)

	videos, err := s.store.AllVideos()
	if err != nil {
		jsonErr(w, "database error", http.StatusInternalServerError)
		return
	}

	filtered := analytics.FilterByDate(videos, start, end)
	metrics := analytics.ComputeMetrics(filtered)

	writeJSON(w, videosResponse{
		HasData: len(videos) > 0,
		Videos:  metrics,
		Top:     analytics.TopMetricsByViews(metrics, topN),
		TopN:    topN,
	})
}

// parseDateRange reads the start/end query parameters. The end date is
// pushed to the last second of its day so the range is inclusive.
func parseDateRange(r *http.Request) (start, end time.Time, ok bool) {
	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return start, end, false
		}
		start = t
	}
	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return start, end, false
		}
		end = t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return start, end, true
}

func parseTopN(r *http.Request) int {
	v := r.URL.Query().Get("top_n")
	if v == "" {
		return defaultTopN
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return defaultTopN
	}
	if n > maxTopN {
		return maxTopN
	}
	return n
}
