package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/config"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/logging"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/prefs"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/repository"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/spacex"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/store"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/ui"
)

// Options configure the application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses ~/.config/spacex-explorer/prefs.toml
	PollMinutes int    // overrides poll_minutes when positive
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollMinutes > 0 {
		cfg.PollInterval = time.Duration(opts.PollMinutes) * time.Minute
	}

	logCloser, err := logging.Setup(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("close cache")
		}
	}()

	client, err := spacex.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init spacex client: %w", err)
	}
	repo := repository.New(st, client)

	log.Info().
		Str("api", cfg.APIBaseURL).
		Str("db", cfg.DBPath).
		Dur("poll", cfg.PollInterval).
		Msg("starting")

	if cfg.PollInterval > 0 {
		stop := StartPoller(ctx, repo, cfg.PollInterval)
		defer stop()
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Repo:      repo,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	})
}
