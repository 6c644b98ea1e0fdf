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

	"github.com/five82/folio/internal/posts"
)

// Config captures everything folio reads from its config file.
type Config struct {
	SiteURL      string
	SiteName     string
	Source       string
	ContentDir   string
	ContentGlob  string
	DatabasePath string
	FeedURL      string
	Refresh      time.Duration
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath = "~/.config/folio/config.toml"
	defaultSiteURL    = "http://localhost:8000"
	defaultSiteName   = "Blog"
	defaultContentDir = "~/blog/content"
	defaultLogFile    = "~/.local/state/folio/folio.log"
	defaultLogLevel   = "info"
	defaultRefresh    = time.Minute
)

// Environment overrides, applied after the file.
const (
	EnvSiteURL    = "FOLIO_SITE_URL"
	EnvSource     = "FOLIO_SOURCE"
	EnvContentDir = "FOLIO_CONTENT_DIR"
	EnvFeedURL    = "FOLIO_FEED_URL"
	EnvLogLevel   = "FOLIO_LOG_LEVEL"
)

// Load locates and parses the folio config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		SiteURL        string `toml:"site_url"`
		SiteName       string `toml:"site_name"`
		Source         string `toml:"source"`
		ContentDir     string `toml:"content_dir"`
		ContentGlob    string `toml:"content_glob"`
		DatabasePath   string `toml:"database_path"`
		FeedURL        string `toml:"feed_url"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := Config{
		SiteURL:      orDefault(envOr(EnvSiteURL, raw.SiteURL), defaultSiteURL),
		SiteName:     orDefault(raw.SiteName, defaultSiteName),
		Source:       strings.ToLower(orDefault(envOr(EnvSource, raw.Source), posts.KindDir)),
		ContentDir:   mustExpand(orDefault(envOr(EnvContentDir, raw.ContentDir), defaultContentDir)),
		ContentGlob:  strings.TrimSpace(raw.ContentGlob),
		DatabasePath: strings.TrimSpace(raw.DatabasePath),
		FeedURL:      strings.TrimSpace(envOr(EnvFeedURL, raw.FeedURL)),
		Refresh:      defaultRefresh,
		LogFile:      mustExpand(orDefault(raw.LogFile, defaultLogFile)),
		LogLevel:     strings.ToLower(orDefault(envOr(EnvLogLevel, raw.LogLevel), defaultLogLevel)),
	}
	if cfg.DatabasePath != "" {
		cfg.DatabasePath = mustExpand(cfg.DatabasePath)
	}
	if raw.RefreshSeconds > 0 {
		cfg.Refresh = time.Duration(raw.RefreshSeconds) * time.Second
	}

	return cfg, nil
}

// SourceOptions returns the options for posts.NewSource.
func (c Config) SourceOptions() posts.Options {
	return posts.Options{
		Kind:         c.Source,
		ContentDir:   c.ContentDir,
		ContentGlob:  c.ContentGlob,
		DatabasePath: c.DatabasePath,
		FeedURL:      c.FeedURL,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
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
