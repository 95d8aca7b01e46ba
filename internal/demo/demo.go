// Package demo seeds storage with synthetic rows so the dashboard can be
// exercised without a YouTube API key. It is the only caller that deletes
// data; the real pipeline is append-only.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"yt-dashboard/internal/stats"
)

const (
	historyDays     = 30
	baseSubscribers = 5000
	baseViews       = 150000
)

// sampleTitles is the fixed pool of demo video titles.
var sampleTitles = []string{
	"Getting Started with Python - Complete Tutorial",
	"Top 10 VS Code Extensions You Need",
	"Machine Learning for Beginners",
	"How I Built My First App in 24 Hours",
	"JavaScript Tips That Will Blow Your Mind",
	"The Future of AI - What You Need to Know",
	"Docker Tutorial for Beginners",
	"Data Visualization with Python",
	"CSS Tricks for Modern Websites",
	"Git & GitHub Crash Course",
	"Building a Chatbot from Scratch",
	"React Native vs Flutter - Which Is Better?",
	"Web Security Best Practices",
	"AWS for Beginners - Cloud Computing 101",
	"Video Editing with Python",
}

// Seed clears both tables and inserts 30 days of channel history plus one
// video snapshot per sample title. Subscriber and view counts grow
// monotonically across the history. Returns the inserted row counts.
func Seed(store *stats.Store, now time.Time, rng *rand.Rand) (channelRows, videoRows int, err error) {
	if err := store.ClearAll(); err != nil {
		return 0, 0, fmt.Errorf("clear tables: %w", err)
	}

	var growth int64
	for i := 0; i < historyDays; i++ {
		growth += 50 + rng.Int63n(101) // 50–150 new subscribers a day
		snap := &stats.ChannelSnapshot{
			ChannelName: "Demo Channel",
			Subscribers: baseSubscribers + growth,
			TotalViews:  baseViews + growth*30,
			TotalVideos: 25 + int64(i/5),
			Dislikes:    rng.Int63n(51),
			FetchedAt:   now.AddDate(0, 0, -(historyDays - i)),
		}
		if err := store.InsertChannelSnapshot(snap); err != nil {
			return 0, 0, fmt.Errorf("insert channel history: %w", err)
		}
	}

	videos := make([]stats.VideoSnapshot, 0, len(sampleTitles))
	for i, title := range sampleTitles {
		views := 500 + rng.Int63n(20000)
		likes := views * (2 + rng.Int63n(8)) / 100 // 2–9% of views
		videos = append(videos, stats.VideoSnapshot{
			VideoID:     fmt.Sprintf("demo-%03d", i+1),
			Title:       title,
			PublishedAt: now.AddDate(0, 0, -rng.Intn(90)),
			Views:       views,
			Likes:       likes,
			Dislikes:    rng.Int63n(30),
			Comments:    likes / (2 + rng.Int63n(4)),
			FetchedAt:   now,
		})
	}
	if err := store.InsertVideoSnapshots(videos); err != nil {
		return 0, 0, fmt.Errorf("insert videos: %w", err)
	}

	return historyDays, len(videos), nil
}
