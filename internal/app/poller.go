package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/repository"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
)

const (
	defaultPollInterval = 15 * time.Minute
	maxBackoff          = 2 * time.Hour
)

// refresher is the part of the repository the poller drives.
type refresher interface {
	RefreshLaunches(ctx context.Context) result.Result[repository.Refresh]
	RefreshUpcomingLaunches(ctx context.Context) result.Result[repository.Refresh]
	RefreshLatestLaunch(ctx context.Context) result.Result[repository.Refresh]
	RefreshRockets(ctx context.Context) result.Result[repository.Refresh]
	RefreshCapsules(ctx context.Context) result.Result[repository.Refresh]
}

// StartPoller launches a background goroutine that keeps the cache warm. The
// first cycle runs one interval after start, since open screens refresh on
// their own. The returned stop func cancels the poller and waits for it.
func StartPoller(ctx context.Context, repo refresher, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		poll(ctx, repo, interval)
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}

func poll(ctx context.Context, repo refresher, interval time.Duration) {
	failures := 0
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := refreshAll(ctx, repo); err != nil {
			if ctx.Err() != nil {
				return
			}
			failures++
			log.Warn().Err(err).Int("failures", failures).Msg("background refresh failed")
		} else {
			failures = 0
		}
		timer.Reset(calculateBackoff(failures, interval))
	}
}

// refreshAll runs every refresh in turn. One failing refresh does not stop
// the others; the joined error reports all that failed.
func refreshAll(ctx context.Context, repo refresher) error {
	refreshes := []func(context.Context) result.Result[repository.Refresh]{
		repo.RefreshLaunches,
		repo.RefreshUpcomingLaunches,
		repo.RefreshLatestLaunch,
		repo.RefreshRockets,
		repo.RefreshCapsules,
	}

	var errs []error
	upserted := 0
	for _, refresh := range refreshes {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r, err := refresh(ctx).Get()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		upserted += r.Upserted
		if r.Partial() {
			log.Debug().Errs("failed", r.Failed).Msg("background refresh partially failed")
		}
	}
	log.Debug().Int("upserted", upserted).Int("errors", len(errs)).Msg("background refresh done")
	return errors.Join(errs...)
}

// calculateBackoff returns the wait before the next cycle: the base interval
// doubled per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
