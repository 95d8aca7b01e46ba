package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Alerts  AlertsConfig  `yaml:"alerts"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	DataDir string `yaml:"data_dir"`
}

type AuthConfig struct {
	// Password is either a bcrypt hash (starts with $2a$) or plaintext (dev only)
	Password string `yaml:"password"`
}

type YouTubeConfig struct {
	APIKey    string `yaml:"api_key"`
	ChannelID string `yaml:"channel_id"`
	MaxVideos int64  `yaml:"max_videos"`
}

type AlertsConfig struct {
	WebhookURL string `yaml:"webhook_url"`
}

// Load reads the YAML config at path, applies defaults, and lets the
// YOUTUBE_API_KEY / YOUTUBE_CHANNEL_ID environment variables override the
// file. A missing file is not an error, so the CLIs can run on environment
// variables alone.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.DataDir == "" {
		c.Server.DataDir = "data"
	}
	if c.YouTube.MaxVideos == 0 {
		c.YouTube.MaxVideos = 10
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.YouTube.APIKey = v
	}
	if v := os.Getenv("YOUTUBE_CHANNEL_ID"); v != "" {
		c.YouTube.ChannelID = v
	}
}
