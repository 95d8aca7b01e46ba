package analytics

import (
	"testing"

	"yt-dashboard/internal/stats"
)

func TestEngagementRate(t *testing.T) {
	v := stats.VideoSnapshot{Views: 100, Likes: 10, Comments: 5}
	if got := EngagementRate(v); got != 0.15 {
		t.Errorf("engagement = %v, want 0.15", got)
	}
}

func TestEngagementRateZeroViews(t *testing.T) {
	v := stats.VideoSnapshot{Views: 0, Likes: 50, Comments: 50}
	if got := EngagementRate(v); got != 0 {
		t.Errorf("engagement with zero views = %v, want 0", got)
	}
}

func TestAverageEngagementEmpty(t *testing.T) {
	if got := AverageEngagement(nil); got != 0 {
		t.Errorf("average over empty set = %v, want 0", got)
	}
}

func TestComputeMetricsMaxVideoScoresHundred(t *testing.T) {
	set := []stats.VideoSnapshot{
		{VideoID: "top", Views: 1000, Likes: 100, Comments: 50},
		{VideoID: "mid", Views: 500, Likes: 50, Comments: 25},
	}
	ms := ComputeMetrics(set)
	if len(ms) != 2 {
		t.Fatalf("got %d metrics, want 2", len(ms))
	}
	if ms[0].PerformanceScore != 100 {
		t.Errorf("max video score = %v, want 100", ms[0].PerformanceScore)
	}
	if ms[0].Grade != "A" {
		t.Errorf("max video grade = %q, want A", ms[0].Grade)
	}
	// mid has half of every counter, so half of every weighted component.
	if ms[1].PerformanceScore != 50 {
		t.Errorf("mid video score = %v, want 50", ms[1].PerformanceScore)
	}
}

func TestComputeMetricsScoreBounds(t *testing.T) {
	set := []stats.VideoSnapshot{
		{Views: 12345, Likes: 0, Comments: 999},
		{Views: 1, Likes: 77, Comments: 0},
		{Views: 0, Likes: 0, Comments: 0},
	}
	for _, m := range ComputeMetrics(set) {
		if m.PerformanceScore < 0 || m.PerformanceScore > 100 {
			t.Errorf("score %v out of [0,100] for %s", m.PerformanceScore, m.VideoID)
		}
	}
}

func TestComputeMetricsSingleVideoMaxedComponents(t *testing.T) {
	// A lone video is the maximum on every axis, so it earns every weight.
	ms := ComputeMetrics([]stats.VideoSnapshot{{Views: 7, Likes: 3, Comments: 1}})
	if len(ms) != 1 || ms[0].PerformanceScore != 100 {
		t.Fatalf("single video score = %+v, want 100", ms)
	}
}

func TestComputeMetricsZeroMaxComponent(t *testing.T) {
	// Nobody has comments: that component contributes 0 to everyone and the
	// leader still tops out at views + likes weights.
	set := []stats.VideoSnapshot{
		{Views: 100, Likes: 10, Comments: 0},
		{Views: 50, Likes: 5, Comments: 0},
	}
	ms := ComputeMetrics(set)
	if got := ms[0].PerformanceScore; got != viewsWeight+likesWeight {
		t.Errorf("leader score = %v, want %v", got, viewsWeight+likesWeight)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	ms := ComputeMetrics(nil)
	if len(ms) != 0 {
		t.Errorf("got %d metrics for empty set, want 0", len(ms))
	}
}

func TestGradeBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A"},
		{80, "A"},
		{79.9, "B"},
		{65, "B"},
		{64.9, "C"},
		{50, "C"},
		{49.9, "D"},
		{35, "D"},
		{34.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestHealthScoreComponentCaps(t *testing.T) {
	// A channel far above every threshold still tops out at 100.
	c := stats.ChannelSnapshot{Subscribers: 10_000_000, TotalViews: 500_000_000, TotalVideos: 100}
	videos := []stats.VideoSnapshot{{Views: 100, Likes: 50, Comments: 50}} // 100% engagement
	if got := HealthScore(c, videos); got != 100 {
		t.Errorf("health = %v, want capped 100", got)
	}
}

func TestHealthScoreZeroChannel(t *testing.T) {
	if got := HealthScore(stats.ChannelSnapshot{}, nil); got != 0 {
		t.Errorf("health for empty channel = %v, want 0", got)
	}
}

func TestHealthScoreProportional(t *testing.T) {
	// Half the subscriber threshold, no videos at all: only the subscriber
	// component contributes, at half its cap.
	c := stats.ChannelSnapshot{Subscribers: 50_000}
	if got := HealthScore(c, nil); got != subscriberCap/2 {
		t.Errorf("health = %v, want %v", got, subscriberCap/2)
	}
}
