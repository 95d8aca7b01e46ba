// Package main is the fetch-cycle CLI. It pulls one channel snapshot and
// up to N recent video snapshots from the YouTube Data API and appends them
// to the local database in a single transaction. With -interval it keeps
// refetching on a ticker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"yt-dashboard/internal/config"
	"yt-dashboard/internal/db"
	"yt-dashboard/internal/notify"
	"yt-dashboard/internal/stats"
	"yt-dashboard/internal/youtube"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	maxVideos := flag.Int64("max", 0, "max recent videos to fetch (overrides config)")
	interval := flag.Duration("interval", 0, "refetch interval; 0 runs a single cycle")
	flag.Parse()

	// .env is optional — real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("fetch: config: %v", err)
	}
	if cfg.YouTube.APIKey == "" {
		log.Fatal("fetch: api key missing — set YOUTUBE_API_KEY or youtube.api_key in config.yaml")
	}
	if cfg.YouTube.ChannelID == "" {
		log.Fatal("fetch: channel id missing — set YOUTUBE_CHANNEL_ID or youtube.channel_id in config.yaml")
	}

	n := cfg.YouTube.MaxVideos
	if *maxVideos > 0 {
		n = *maxVideos
	}

	if err := os.MkdirAll(cfg.Server.DataDir, 0o755); err != nil {
		log.Fatalf("fetch: data dir: %v", err)
	}
	database, err := db.Open(cfg.Server.DataDir)
	if err != nil {
		log.Fatalf("fetch: database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	client, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		log.Fatalf("fetch: youtube client: %v", err)
	}

	store := stats.NewStore(database)
	notifier := notify.New(cfg.Alerts.WebhookURL)

	if *interval <= 0 {
		if err := runCycle(ctx, client, store, notifier, cfg.YouTube.ChannelID, n); err != nil {
			log.Fatalf("fetch: %v", err)
		}
		return
	}

	log.Printf("fetch: refreshing channel %s every %s", cfg.YouTube.ChannelID, *interval)

	// Fetch once immediately on startup, then tick. A failed cycle is
	// logged and the loop keeps going.
	if err := runCycle(ctx, client, store, notifier, cfg.YouTube.ChannelID, n); err != nil {
		log.Printf("fetch: %v", err)
	}
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for range ticker.C {
		if err := runCycle(ctx, client, store, notifier, cfg.YouTube.ChannelID, n); err != nil {
			log.Printf("fetch: %v", err)
		}
	}
}

// runCycle performs one end-to-end fetch cycle: channel stats, recent video
// stats, one transactional append. Nothing is written when any step fails.
func runCycle(ctx context.Context, client *youtube.Client, store *stats.Store, notifier *notify.Notifier, channelID string, maxVideos int64) error {
	cycle := uuid.NewString()[:8]
	log.Printf("fetch[%s]: starting cycle for channel %s", cycle, channelID)

	prev, err := store.LatestChannel()
	if err != nil {
		return fmt.Errorf("load previous snapshot: %w", err)
	}

	channel, err := client.FetchChannel(ctx, channelID)
	if err != nil {
		return err
	}
	videos, err := client.FetchRecentVideos(ctx, channelID, maxVideos)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	channel.FetchedAt = now
	for i := range videos {
		videos[i].FetchedAt = now
	}

	if err := store.InsertFetch(channel, videos); err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	log.Printf("fetch[%s]: appended 1 channel row and %d video rows (%s subscribers, %s total views)",
		cycle, len(videos), humanize.Comma(channel.Subscribers), humanize.Comma(channel.TotalViews))

	var prevSubs int64
	if prev != nil {
		prevSubs = prev.Subscribers
	}
	if m := notify.Crossed(prevSubs, channel.Subscribers); m != 0 {
		notifier.Notify(channel, m)
	}
	return nil
}
