package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.DataDir != "data" {
		t.Errorf("data dir = %q, want data", cfg.Server.DataDir)
	}
	if cfg.YouTube.MaxVideos != 10 {
		t.Errorf("max videos = %d, want 10", cfg.YouTube.MaxVideos)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9090
  data_dir: /tmp/yt
youtube:
  api_key: file-key
  channel_id: UCfile
  max_videos: 25
alerts:
  webhook_url: https://example.com/hook
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Server.DataDir != "/tmp/yt" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.YouTube.APIKey != "file-key" || cfg.YouTube.ChannelID != "UCfile" || cfg.YouTube.MaxVideos != 25 {
		t.Errorf("youtube = %+v", cfg.YouTube)
	}
	if cfg.Alerts.WebhookURL != "https://example.com/hook" {
		t.Errorf("webhook = %q", cfg.Alerts.WebhookURL)
	}
	// Unset fields still get defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", cfg.Server.Host)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "youtube:\n  api_key: file-key\n  channel_id: UCfile\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("YOUTUBE_API_KEY", "env-key")
	t.Setenv("YOUTUBE_CHANNEL_ID", "UCenv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.YouTube.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", cfg.YouTube.APIKey)
	}
	if cfg.YouTube.ChannelID != "UCenv" {
		t.Errorf("channel id = %q, want UCenv", cfg.YouTube.ChannelID)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
