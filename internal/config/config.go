package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the explorer's runtime settings.
type Config struct {
	APIBaseURL     string
	DBPath         string
	LogPath        string
	LogLevel       string
	RequestTimeout time.Duration
	PollInterval   time.Duration // zero disables background refresh
}

const (
	defaultConfigPath     = "~/.config/spacex-explorer/config.toml"
	defaultAPIBaseURL     = "https://api.spacexdata.com/v4/"
	defaultDBPath         = "~/.local/share/spacex-explorer/cache.db"
	defaultLogPath        = "~/.local/share/spacex-explorer/spacex.log"
	defaultLogLevel       = "info"
	defaultTimeoutSeconds = 10
	defaultPollMinutes    = 15

	envAPIURL = "SPACEX_API_URL"
	envDBPath = "SPACEX_DB_PATH"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		DBPath:         mustExpand(defaultDBPath),
		LogPath:        mustExpand(defaultLogPath),
		LogLevel:       defaultLogLevel,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
		PollInterval:   defaultPollMinutes * time.Minute,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// SPACEX_API_URL and SPACEX_DB_PATH override the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		applyEnv(&cfg)
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL     string `toml:"api_base_url"`
		DBPath         string `toml:"db_path"`
		LogPath        string `toml:"log_path"`
		LogLevel       string `toml:"log_level"`
		TimeoutSeconds *int   `toml:"request_timeout_seconds"`
		PollMinutes    *int   `toml:"poll_minutes"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		cfg.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if raw.TimeoutSeconds != nil {
		if *raw.TimeoutSeconds <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout_seconds must be positive, got %d", *raw.TimeoutSeconds)
		}
		cfg.RequestTimeout = time.Duration(*raw.TimeoutSeconds) * time.Second
	}
	if raw.PollMinutes != nil {
		if *raw.PollMinutes < 0 {
			return Config{}, fmt.Errorf("parse config: poll_minutes must not be negative, got %d", *raw.PollMinutes)
		}
		cfg.PollInterval = time.Duration(*raw.PollMinutes) * time.Minute
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.APIBaseURL = env(envAPIURL, cfg.APIBaseURL)
	if v := env(envDBPath, ""); v != "" {
		cfg.DBPath = mustExpand(v)
	}
}

func env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
