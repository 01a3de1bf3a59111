package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/spacex"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/store"
)

// Refresh reports what a successful refresh wrote to the cache.
// Failed lists the fetches that did not succeed when the refresh is partial.
type Refresh struct {
	Upserted int
	Failed   []error
}

// Partial reports whether some, but not all, fetches failed.
func (r Refresh) Partial() bool {
	return len(r.Failed) > 0
}

// Repository reconciles the local cache with the remote API.
type Repository struct {
	store  *store.Store
	remote spacex.Fetcher
}

// New returns a Repository over st and remote.
func New(st *store.Store, remote spacex.Fetcher) *Repository {
	return &Repository{store: st, remote: remote}
}

// ObserveAllLaunches streams every cached launch, newest first.
func (r *Repository) ObserveAllLaunches(ctx context.Context) (*store.Subscription[[]domain.Launch], error) {
	return r.store.ObserveLaunches(ctx, store.LaunchQuery{Filter: store.LaunchesAll})
}

// ObserveUpcoming streams upcoming launches, soonest first.
func (r *Repository) ObserveUpcoming(ctx context.Context) (*store.Subscription[[]domain.Launch], error) {
	return r.store.ObserveLaunches(ctx, store.LaunchQuery{Filter: store.LaunchesUpcoming})
}

// ObservePast streams at most limit flown launches, newest first.
// A non-positive limit means no limit.
func (r *Repository) ObservePast(ctx context.Context, limit int) (*store.Subscription[[]domain.Launch], error) {
	return r.store.ObserveLaunches(ctx, store.LaunchQuery{Filter: store.LaunchesPast, Limit: limit})
}

// ObserveSuccessful streams at most limit successful launches, newest first.
func (r *Repository) ObserveSuccessful(ctx context.Context, limit int) (*store.Subscription[[]domain.Launch], error) {
	return r.store.ObserveLaunches(ctx, store.LaunchQuery{Filter: store.LaunchesSuccessful, Limit: limit})
}

// GetLaunchByID reads a launch from the cache only.
func (r *Repository) GetLaunchByID(ctx context.Context, id string) (domain.Launch, bool, error) {
	return r.store.GetLaunch(ctx, id)
}

// ObserveRockets streams every cached rocket.
func (r *Repository) ObserveRockets(ctx context.Context) (*store.Subscription[[]domain.Rocket], error) {
	return r.store.ObserveRockets(ctx)
}

// GetRocketByID reads a rocket from the cache only.
func (r *Repository) GetRocketByID(ctx context.Context, id string) (domain.Rocket, bool, error) {
	return r.store.GetRocket(ctx, id)
}

// ObserveCapsules streams every cached capsule.
func (r *Repository) ObserveCapsules(ctx context.Context) (*store.Subscription[[]domain.Capsule], error) {
	return r.store.ObserveCapsules(ctx)
}

// GetCapsuleByID reads a capsule from the cache only.
func (r *Repository) GetCapsuleByID(ctx context.Context, id string) (domain.Capsule, bool, error) {
	return r.store.GetCapsule(ctx, id)
}

// ClearLaunches drops every cached launch. Open launch screens see an empty
// list until the next refresh.
func (r *Repository) ClearLaunches(ctx context.Context) error {
	if err := r.store.ClearLaunches(ctx); err != nil {
		return err
	}
	log.Info().Msg("launch cache cleared")
	return nil
}

// RefreshLaunches fetches the general and past listings concurrently and
// caches each one that succeeds. It fails only when both fetches fail; a
// single failure is reported in Refresh.Failed.
func (r *Repository) RefreshLaunches(ctx context.Context) result.Result[Refresh] {
	var (
		g   errgroup.Group
		mu  sync.Mutex
		out Refresh
	)
	run := func(op string, fetch func() result.Result[[]spacex.LaunchRecord]) {
		g.Go(func() error {
			n, err := apply(ctx, op, fetch(), spacex.LaunchesToDomain, r.store.UpsertLaunches)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				out.Failed = append(out.Failed, err)
				return nil
			}
			out.Upserted += n
			return nil
		})
	}
	run("refresh launches", func() result.Result[[]spacex.LaunchRecord] {
		return r.remote.GetLaunches(ctx, spacex.DefaultPage)
	})
	run("refresh past launches", func() result.Result[[]spacex.LaunchRecord] {
		return r.remote.GetPastLaunches(ctx, spacex.DefaultPage)
	})
	_ = g.Wait()

	if len(out.Failed) == 2 {
		err := errors.Join(out.Failed...)
		log.Warn().Err(err).Msg("launch refresh failed")
		return result.Fail[Refresh](err)
	}
	if out.Partial() {
		log.Warn().Err(out.Failed[0]).
			Stringer("kind", spacex.KindOf(out.Failed[0])).
			Int("upserted", out.Upserted).
			Msg("launch refresh partially failed")
	} else {
		log.Debug().Int("upserted", out.Upserted).Msg("launches refreshed")
	}
	return result.Ok(out)
}

// RefreshUpcomingLaunches fetches the upcoming listing and caches it.
func (r *Repository) RefreshUpcomingLaunches(ctx context.Context) result.Result[Refresh] {
	return single(ctx, "refresh upcoming launches", r.remote.GetUpcomingLaunches(ctx, 0),
		spacex.LaunchesToDomain, r.store.UpsertLaunches)
}

// RefreshLatestLaunch fetches the most recent launch and caches it.
func (r *Repository) RefreshLatestLaunch(ctx context.Context) result.Result[Refresh] {
	return single(ctx, "refresh latest launch", r.remote.GetLatestLaunch(ctx),
		func(rec spacex.LaunchRecord) []domain.Launch { return []domain.Launch{rec.ToDomain()} },
		r.store.UpsertLaunches)
}

// RefreshRockets fetches every rocket and caches them.
func (r *Repository) RefreshRockets(ctx context.Context) result.Result[Refresh] {
	return single(ctx, "refresh rockets", r.remote.GetRockets(ctx),
		spacex.RocketsToDomain, r.store.UpsertRockets)
}

// RefreshRocket fetches one rocket by id and caches it.
func (r *Repository) RefreshRocket(ctx context.Context, id string) result.Result[Refresh] {
	return single(ctx, "refresh rocket "+id, r.remote.GetRocketByID(ctx, id),
		func(rec spacex.RocketRecord) []domain.Rocket { return []domain.Rocket{rec.ToDomain()} },
		r.store.UpsertRockets)
}

// RefreshCapsules fetches the first page of capsules and caches it.
func (r *Repository) RefreshCapsules(ctx context.Context) result.Result[Refresh] {
	return single(ctx, "refresh capsules", r.remote.GetCapsules(ctx, spacex.DefaultPage),
		spacex.CapsulesToDomain, r.store.UpsertCapsules)
}

func single[R, D any](ctx context.Context, op string, fetched result.Result[R], toDomain func(R) []D, upsert func(context.Context, []D) error) result.Result[Refresh] {
	n, err := apply(ctx, op, fetched, toDomain, upsert)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Stringer("kind", spacex.KindOf(err)).Msg("refresh failed")
		return result.Fail[Refresh](err)
	}
	log.Debug().Str("op", op).Int("upserted", n).Msg("refreshed")
	return result.Ok(Refresh{Upserted: n})
}

// apply caches a fetched payload. The upsert is skipped when ctx is already
// done so a torn-down caller never writes to the store.
func apply[R, D any](ctx context.Context, op string, fetched result.Result[R], toDomain func(R) []D, upsert func(context.Context, []D) error) (int, error) {
	rows, err := result.Map(fetched, toDomain).Get()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := upsert(ctx, rows); err != nil {
		return 0, fmt.Errorf("%s: caching: %w", op, err)
	}
	return len(rows), nil
}
