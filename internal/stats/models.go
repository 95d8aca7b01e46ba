package stats

import "time"

// ChannelSnapshot is one point-in-time record of channel-level statistics.
// Snapshots are append-only: a fetch cycle inserts exactly one and nothing
// ever mutates or deletes them. The "current" state is the snapshot with
// the maximum FetchedAt.
type ChannelSnapshot struct {
	ID          int64     `json:"id"`
	ChannelName string    `json:"channel_name"`
	Subscribers int64     `json:"subscribers"`
	TotalViews  int64     `json:"total_views"`
	TotalVideos int64     `json:"total_videos"`
	Dislikes    int64     `json:"dislikes"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// VideoSnapshot is one point-in-time record of a single video's statistics.
// The same video_id reappears in every fetch cycle it is still among the
// most recent N uploads; rows are never deduplicated.
type VideoSnapshot struct {
	ID          int64     `json:"id"`
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Dislikes    int64     `json:"dislikes"`
	Comments    int64     `json:"comments"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// PreferredDate is the date used for range filtering: the platform's
// publish time when known, the fetch time otherwise.
func (v *VideoSnapshot) PreferredDate() time.Time {
	if !v.PublishedAt.IsZero() {
		return v.PublishedAt
	}
	return v.FetchedAt
}
