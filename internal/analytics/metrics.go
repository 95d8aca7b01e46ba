// Package analytics derives display metrics from stored snapshots. Every
// function is pure: it operates on whatever subset the caller passes in and
// never touches storage.
package analytics

import (
	"yt-dashboard/internal/stats"
)

// Performance score component weights. The score ranks a video against the
// maxima of its comparison set, so it is relative to the current filter,
// not absolute.
const (
	viewsWeight    = 40.0
	likesWeight    = 35.0
	commentsWeight = 25.0
)

// EngagementRate returns (likes + comments) / views for a single video.
// A video with zero views has rate 0 regardless of likes and comments.
func EngagementRate(v stats.VideoSnapshot) float64 {
	if v.Views == 0 {
		return 0
	}
	return float64(v.Likes+v.Comments) / float64(v.Views)
}

// AverageEngagement returns the mean engagement rate over videos, 0 for an
// empty set.
func AverageEngagement(videos []stats.VideoSnapshot) float64 {
	if len(videos) == 0 {
		return 0
	}
	var sum float64
	for _, v := range videos {
		sum += EngagementRate(v)
	}
	return sum / float64(len(videos))
}

// VideoMetrics is a video snapshot annotated with its derived metrics.
type VideoMetrics struct {
	stats.VideoSnapshot
	EngagementRate   float64 `json:"engagement_rate"`
	PerformanceScore float64 `json:"performance_score"`
	Grade            string  `json:"grade"`
}

// ComputeMetrics annotates each video in set with engagement rate,
// performance score, and grade. Scores are computed against the maxima of
// set itself; an empty set yields an empty slice.
func ComputeMetrics(set []stats.VideoSnapshot) []VideoMetrics {
	out := make([]VideoMetrics, 0, len(set))
	if len(set) == 0 {
		return out
	}

	var maxViews, maxLikes, maxComments int64
	for _, v := range set {
		maxViews = max(maxViews, v.Views)
		maxLikes = max(maxLikes, v.Likes)
		maxComments = max(maxComments, v.Comments)
	}

	for _, v := range set {
		score := ratio(v.Views, maxViews)*viewsWeight +
			ratio(v.Likes, maxLikes)*likesWeight +
			ratio(v.Comments, maxComments)*commentsWeight
		out = append(out, VideoMetrics{
			VideoSnapshot:    v,
			EngagementRate:   EngagementRate(v),
			PerformanceScore: score,
			Grade:            Grade(score),
		})
	}
	return out
}

// ratio returns num/den, or 0 when den is zero. A zero maximum means every
// video in the set has a zero counter, so the component contributes nothing.
func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Grade maps a performance score onto five letter bands.
func Grade(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 65:
		return "B"
	case score >= 50:
		return "C"
	case score >= 35:
		return "D"
	default:
		return "F"
	}
}

// Health score component caps and the values at which each component earns
// full marks: 100k subscribers, 10k average views per video, 5% average
// engagement.
const (
	subscriberCap = 30.0
	viewsCap      = 40.0
	engagementCap = 30.0

	fullSubscribers   = 100000.0
	fullViewsPerVideo = 10000.0
	fullEngagement    = 0.05
)

// HealthScore combines subscriber count, average views per video, and
// average engagement rate into a 0–100 composite. Each component is capped
// before summing and the sum is capped at 100.
func HealthScore(c stats.ChannelSnapshot, videos []stats.VideoSnapshot) float64 {
	subs := capAt(float64(c.Subscribers)/fullSubscribers*subscriberCap, subscriberCap)

	var viewsPerVideo float64
	if c.TotalVideos > 0 {
		viewsPerVideo = float64(c.TotalViews) / float64(c.TotalVideos)
	}
	vpv := capAt(viewsPerVideo/fullViewsPerVideo*viewsCap, viewsCap)

	eng := capAt(AverageEngagement(videos)/fullEngagement*engagementCap, engagementCap)

	return capAt(subs+vpv+eng, 100)
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
