package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	if len(cfg.Players) != 5 {
		t.Fatalf("expected 5 default players, got %d", len(cfg.Players))
	}
	if len(cfg.Sources) != 4 {
		t.Fatalf("expected 4 default sources, got %d", len(cfg.Sources))
	}
	if cfg.Players[0].ID != "anura" {
		t.Fatalf("expected anura first in config order, got %s", cfg.Players[0].ID)
	}
	if cfg.Output.Path != "data/political_war_data.json" {
		t.Fatalf("unexpected default output path: %s", cfg.Output.Path)
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(outputPathEnv, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Output.Path != Default().Output.Path {
		t.Fatalf("expected default output path, got %s", cfg.Output.Path)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	raw := `
output:
  path: /tmp/out.json
fetch:
  timeout: 10s
players:
  - id: solo
    names: [solo, lone]
    party: IND
    role: Candidate
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Output.Path != "/tmp/out.json" {
		t.Fatalf("output path not overridden: %s", cfg.Output.Path)
	}
	if cfg.Fetch.Timeout != 10*time.Second {
		t.Fatalf("fetch timeout not overridden: %s", cfg.Fetch.Timeout)
	}
	if len(cfg.Players) != 1 || cfg.Players[0].ID != "solo" {
		t.Fatalf("players not replaced by file override: %+v", cfg.Players)
	}

	// Untouched sections keep their defaults.
	if len(cfg.Sources) != 4 {
		t.Fatalf("sources should stay default, got %d", len(cfg.Sources))
	}
	if len(cfg.Keywords.Positive) == 0 {
		t.Fatalf("keywords should stay default")
	}
	if cfg.Predictions.Coalition.ShareThreshold != 0.6 {
		t.Fatalf("prediction rules should stay default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(outputPathEnv, "/data/run.json")
	t.Setenv(telegramTokenEnv, "token-123")
	t.Setenv(telegramChatEnv, "chat-456")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Output.Path != "/data/run.json" {
		t.Fatalf("output env override missing: %s", cfg.Output.Path)
	}
	if cfg.Notifications.Telegram.BotToken != "token-123" {
		t.Fatalf("telegram token override missing")
	}
	if cfg.Notifications.Telegram.ChatID != "chat-456" {
		t.Fatalf("telegram chat override missing")
	}
}

func TestLoadRejectsUnreadableFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "no players", mutate: func(c *Config) { c.Players = nil }, wantErr: true},
		{name: "player without id", mutate: func(c *Config) { c.Players[0].ID = "" }, wantErr: true},
		{
			name: "duplicate player id",
			mutate: func(c *Config) {
				c.Players[1].ID = c.Players[0].ID
			},
			wantErr: true,
		},
		{name: "player without aliases", mutate: func(c *Config) { c.Players[2].Names = nil }, wantErr: true},
		{name: "no sources", mutate: func(c *Config) { c.Sources = nil }, wantErr: true},
		{name: "source without id", mutate: func(c *Config) { c.Sources[0].ID = "" }, wantErr: true},
		{name: "source with bad url", mutate: func(c *Config) { c.Sources[0].URL = "not a url" }, wantErr: true},
		{name: "zero fetch timeout", mutate: func(c *Config) { c.Fetch.Timeout = 0 }, wantErr: true},
		{
			name: "coalition threshold out of range",
			mutate: func(c *Config) {
				c.Predictions.Coalition.ShareThreshold = 1.5
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestScannerNameDefault(t *testing.T) {
	t.Parallel()

	src := SourceConfig{ID: "x", URL: "https://example.org"}
	if src.ScannerName() != "headline" {
		t.Fatalf("expected headline default, got %s", src.ScannerName())
	}

	src.Scanner = "custom"
	if src.ScannerName() != "custom" {
		t.Fatalf("expected custom, got %s", src.ScannerName())
	}
}
