package analytics

import (
	"sort"
	"time"

	"yt-dashboard/internal/stats"
)

// FilterByDate returns the videos whose preferred date (publish date when
// known, fetch date otherwise) falls within [start, end] inclusive. A zero
// start or end leaves that side unbounded. The input is never re-queried or
// modified.
func FilterByDate(videos []stats.VideoSnapshot, start, end time.Time) []stats.VideoSnapshot {
	out := make([]stats.VideoSnapshot, 0, len(videos))
	for _, v := range videos {
		d := v.PreferredDate()
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if !end.IsZero() && d.After(end) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// TopByViews returns up to n videos ordered by view count descending. An
// empty input or n <= 0 yields an empty slice.
func TopByViews(videos []stats.VideoSnapshot, n int) []stats.VideoSnapshot {
	if n <= 0 || len(videos) == 0 {
		return []stats.VideoSnapshot{}
	}
	sorted := append([]stats.VideoSnapshot(nil), videos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopMetricsByViews is TopByViews over already-annotated videos, so the
// top-n rows keep scores computed against the full filtered set.
func TopMetricsByViews(ms []VideoMetrics, n int) []VideoMetrics {
	if n <= 0 || len(ms) == 0 {
		return []VideoMetrics{}
	}
	sorted := append([]VideoMetrics(nil), ms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
