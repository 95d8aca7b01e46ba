package analytics

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"yt-dashboard/internal/stats"
)

// subscriberTargets are the growth milestones surfaced in recommendations.
var subscriberTargets = []int64{1000, 10000, 100000, 1000000, 10000000}

// Recommendations returns canned advice strings derived from the channel's
// current numbers and the passed-in video subset. An empty video set still
// produces channel-level advice.
func Recommendations(c stats.ChannelSnapshot, videos []stats.VideoSnapshot) []string {
	recs := make([]string, 0, 4)

	if len(videos) > 0 {
		switch avg := AverageEngagement(videos); {
		case avg < 0.02:
			recs = append(recs, fmt.Sprintf(
				"Average engagement is %.1f%% — below the 2%% mark. End videos with a direct question and pin a comment to start conversations.", avg*100))
		case avg < fullEngagement:
			recs = append(recs, fmt.Sprintf(
				"Average engagement is %.1f%%. Solid, but replying to early comments in the first hour usually pushes it past 5%%.", avg*100))
		default:
			recs = append(recs, fmt.Sprintf(
				"Average engagement is %.1f%% — your audience is active. Double down on the formats behind your top videos.", avg*100))
		}
	}

	if c.TotalVideos > 0 {
		avgViews := float64(c.TotalViews) / float64(c.TotalVideos)
		if avgViews < fullViewsPerVideo {
			recs = append(recs, fmt.Sprintf(
				"Averaging %s views per video. Refreshing titles and thumbnails on recent uploads is the cheapest way to lift this.",
				humanize.Comma(int64(avgViews))))
		}
	}

	if next := nextSubscriberTarget(c.Subscribers); next > 0 {
		recs = append(recs, fmt.Sprintf(
			"Next milestone: %s subscribers — %s to go. A consistent upload schedule matters more than any single video.",
			humanize.Comma(next), humanize.Comma(next-c.Subscribers)))
	}

	return recs
}

// nextSubscriberTarget returns the first milestone above current, or 0 when
// every milestone has been passed.
func nextSubscriberTarget(current int64) int64 {
	for _, t := range subscriberTargets {
		if current < t {
			return t
		}
	}
	return 0
}
