package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/logging"
	"github.com/five82/folio/internal/posts"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
	"github.com/five82/folio/internal/ui"
)

// Options configure the folio application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/folio/prefs.toml
	RefreshSec int    // seconds; zero uses the config value
}

// Run boots the folio TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, logErr := logging.NewOrNop(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()
	if logErr != nil {
		// The UI has not started yet, so the terminal is still ours.
		fmt.Printf("folio: logging disabled: %v\n", logErr)
	}

	source, closer, err := posts.NewSource(cfg.SourceOptions())
	if err != nil {
		return fmt.Errorf("init post source: %w", err)
	}
	defer closer.Close()

	interval := cfg.Refresh
	if opts.RefreshSec > 0 {
		interval = time.Duration(opts.RefreshSec) * time.Second
	}

	log.Info("starting folio",
		zap.String("source", cfg.Source),
		zap.String("site", cfg.SiteURL),
		zap.Duration("refresh", interval),
	)

	store := &state.Store{}

	// Populate the store before the UI draws its first frame.
	if err := refresh(ctx, store, source); err != nil {
		log.Warn("initial refresh failed", zap.Error(err))
	}

	poller := StartPoller(ctx, store, source, interval, log)

	userPrefs := prefs.Load(opts.PrefsPath)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Refresh:   poller.Refresh,
		Logger:    log,
		ThemeName: userPrefs.Theme,
		Share:     userPrefs.ShareTarget,
		PrefsPath: opts.PrefsPath,
	})
}

// List prints the post list with canonical URLs to w. It is used when folio
// is not attached to a terminal.
func List(ctx context.Context, w io.Writer, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	source, closer, err := posts.NewSource(cfg.SourceOptions())
	if err != nil {
		return fmt.Errorf("init post source: %w", err)
	}
	defer closer.Close()

	items, err := source.List(ctx)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}
	return writeList(w, cfg.SiteURL, items)
}

func writeList(w io.Writer, siteURL string, items []posts.Post) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range items {
		date := p.Date
		if date == "" {
			date = "-"
		}
		title := strings.Join(strings.Fields(p.Title), " ")
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", date, title, posts.BlogURL(siteURL, p.Slug)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
