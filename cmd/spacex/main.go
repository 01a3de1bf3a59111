package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/spacex-explorer/config.toml)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	pollMinutes := flag.Int("poll", 0, "background refresh interval in minutes (optional, overrides poll_minutes)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
	}
	if poll := *pollMinutes; poll > 0 {
		opts.PollMinutes = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "spacex: %v\n", err)
		return 1
	}
	return 0
}
