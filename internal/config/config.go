package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "WAR_TRACKER_CONFIG"
	outputPathEnv    = "WAR_TRACKER_OUTPUT"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Output        OutputConfig       `yaml:"output"`
	Fetch         FetchConfig        `yaml:"fetch"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Notifications NotificationConfig `yaml:"notifications"`
	Players       []PlayerConfig     `yaml:"players"`
	Sources       []SourceConfig     `yaml:"sources"`
	Keywords      KeywordConfig      `yaml:"keywords"`
	Predictions   PredictionConfig   `yaml:"predictions"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig describes where the run snapshot is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// FetchConfig bounds a single source fetch.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
	Parallel  bool          `yaml:"parallel"`
}

// SchedulerConfig enables watch mode; a zero interval means a single run.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// NotificationConfig encapsulates outbound channels.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// PlayerConfig describes one tracked public figure.
type PlayerConfig struct {
	ID    string   `yaml:"id"`
	Names []string `yaml:"names"`
	Party string   `yaml:"party"`
	Role  string   `yaml:"role"`
}

// SourceConfig describes a single news endpoint with its scanner strategy.
type SourceConfig struct {
	ID      string `yaml:"id"`
	URL     string `yaml:"url"`
	Scanner string `yaml:"scanner"`
}

// ScannerName resolves the registry key, defaulting to the generic
// headline scanner.
func (s SourceConfig) ScannerName() string {
	if s.Scanner == "" {
		return "headline"
	}
	return s.Scanner
}

// KeywordConfig carries the fixed sentiment and crisis keyword lists. The
// lists intentionally mix Latin and Sinhala entries with no normalization;
// the literal scores depend on them staying exactly as configured.
type KeywordConfig struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Crisis   []string `yaml:"crisis"`
}

// PredictionConfig is the rule table behind the report's predictions.
type PredictionConfig struct {
	Moves     []MoveRuleConfig    `yaml:"moves"`
	Coalition CoalitionRuleConfig `yaml:"coalition"`
}

// MoveRuleConfig forecasts a player's next move from their trend.
type MoveRuleConfig struct {
	Player    string     `yaml:"player"`
	WhenTrend string     `yaml:"whenTrend"`
	Then      MoveConfig `yaml:"then"`
	Else      MoveConfig `yaml:"else"`
}

// MoveConfig is one literal prediction outcome.
type MoveConfig struct {
	Move       string  `yaml:"move"`
	Confidence float64 `yaml:"confidence"`
	Timing     string  `yaml:"timing"`
}

// CoalitionRuleConfig thresholds the named members' combined mention share.
type CoalitionRuleConfig struct {
	Members        []string               `yaml:"members"`
	ShareThreshold float64                `yaml:"shareThreshold"`
	Then           CoalitionOutcomeConfig `yaml:"then"`
	Else           CoalitionOutcomeConfig `yaml:"else"`
}

// CoalitionOutcomeConfig is one literal coalition forecast.
type CoalitionOutcomeConfig struct {
	FormationProbability float64 `yaml:"formationProbability"`
	Timeline             string  `yaml:"timeline"`
	Leader               string  `yaml:"leader"`
}

// Load returns the compiled defaults, merges an optional YAML file on top
// (explicit path wins over the env var), and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(outputPathEnv); v != "" {
		c.Output.Path = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

// Validate rejects malformed player/source tables; this is the only fatal
// error path in normal operation.
func (c Config) Validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}

	seen := map[string]bool{}
	for i, player := range c.Players {
		if player.ID == "" {
			return fmt.Errorf("player %d: missing id", i)
		}
		if seen[player.ID] {
			return fmt.Errorf("player %s: duplicate id", player.ID)
		}
		seen[player.ID] = true
		if len(player.Names) == 0 {
			return fmt.Errorf("player %s: empty alias list", player.ID)
		}
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source must be configured")
	}
	for i, source := range c.Sources {
		if source.ID == "" {
			return fmt.Errorf("source %d: missing id", i)
		}
		if _, err := url.ParseRequestURI(source.URL); err != nil {
			return fmt.Errorf("source %s: invalid url: %w", source.ID, err)
		}
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}

	threshold := c.Predictions.Coalition.ShareThreshold
	if len(c.Predictions.Coalition.Members) > 0 && (threshold <= 0 || threshold >= 1) {
		return fmt.Errorf("coalition share threshold must be in (0, 1)")
	}

	return nil
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Output.Path != "" {
		base.Output.Path = override.Output.Path
	}

	if override.Fetch.Timeout > 0 {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}
	if override.Fetch.Parallel {
		base.Fetch.Parallel = true
	}

	if override.Scheduler.Interval > 0 {
		base.Scheduler.Interval = override.Scheduler.Interval
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if len(override.Players) > 0 {
		base.Players = override.Players
	}
	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	if len(override.Keywords.Positive) > 0 {
		base.Keywords.Positive = override.Keywords.Positive
	}
	if len(override.Keywords.Negative) > 0 {
		base.Keywords.Negative = override.Keywords.Negative
	}
	if len(override.Keywords.Crisis) > 0 {
		base.Keywords.Crisis = override.Keywords.Crisis
	}

	if len(override.Predictions.Moves) > 0 {
		base.Predictions.Moves = override.Predictions.Moves
	}
	if len(override.Predictions.Coalition.Members) > 0 {
		base.Predictions.Coalition = override.Predictions.Coalition
	}

	return base
}
