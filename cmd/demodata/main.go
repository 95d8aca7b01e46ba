// Package main seeds the database with synthetic rows so the dashboard can
// be tried without a YouTube API key. It clears both tables first.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"yt-dashboard/internal/config"
	"yt-dashboard/internal/db"
	"yt-dashboard/internal/demo"
	"yt-dashboard/internal/stats"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("demodata: config: %v", err)
	}

	if err := os.MkdirAll(cfg.Server.DataDir, 0o755); err != nil {
		log.Fatalf("demodata: data dir: %v", err)
	}
	database, err := db.Open(cfg.Server.DataDir)
	if err != nil {
		log.Fatalf("demodata: database: %v", err)
	}
	defer database.Close()

	store := stats.NewStore(database)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	channelRows, videoRows, err := demo.Seed(store, time.Now().UTC(), rng)
	if err != nil {
		log.Fatalf("demodata: %v", err)
	}
	log.Printf("demodata: inserted %d channel rows and %d video rows", channelRows, videoRows)
}
