package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/repository"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/store"
)

// ErrClosed is returned by Start on a holder that was already closed.
var ErrClosed = errors.New("screen: holder closed")

// UIState is what a screen renders. Loading, content and error are
// independent: a failed refresh over cached data shows both.
type UIState[T any] struct {
	IsLoading bool
	Data      T
	HasData   bool // Data holds something worth showing
	Error     string

	LastUpdated         time.Time // last completed refresh, successful or not
	ConsecutiveFailures int
}

// InitialLoading reports a refresh in flight with nothing cached to show yet.
func (s UIState[T]) InitialLoading() bool {
	return s.IsLoading && !s.HasData
}

// HasContent reports whether Data should be rendered.
func (s UIState[T]) HasContent() bool {
	return s.HasData
}

// HasError reports whether the last refresh failed.
func (s UIState[T]) HasError() bool {
	return s.Error != ""
}

// IsOffline returns true when the API has been unreachable for multiple refreshes.
func (s UIState[T]) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Observe opens the live query a screen renders.
type Observe[T any] func(ctx context.Context) (*store.Subscription[T], error)

// Refresh brings the cache up to date for a screen.
type Refresh func(ctx context.Context) result.Result[repository.Refresh]

// Holder owns one screen's live subscription and its refreshes. Both are
// scoped to the context given to Start and end together on Close.
type Holder[T any] struct {
	observe Observe[T]
	refresh Refresh
	present func(T) bool

	mu       sync.RWMutex
	state    UIState[T]
	ctx      context.Context
	cancel   context.CancelFunc
	inFlight bool
	started  bool
	closed   bool

	wg      sync.WaitGroup
	changed chan struct{}
}

// New builds a holder. present decides whether an emitted value counts as
// content; nil treats every emission as content.
func New[T any](observe Observe[T], refresh Refresh, present func(T) bool) *Holder[T] {
	if present == nil {
		present = func(T) bool { return true }
	}
	return &Holder[T]{
		observe: observe,
		refresh: refresh,
		present: present,
		changed: make(chan struct{}, 1),
	}
}

// NonEmpty is a present func for list screens.
func NonEmpty[E any](items []E) bool {
	return len(items) > 0
}

// Start subscribes to the live query and launches the first refresh.
// Calling Start twice is a no-op.
func (h *Holder[T]) Start(parent context.Context) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	if h.started {
		h.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(parent)
	sub, err := h.observe(ctx)
	if err != nil {
		h.mu.Unlock()
		cancel()
		return err
	}
	h.ctx, h.cancel = ctx, cancel
	h.started = true
	h.wg.Add(1)
	h.mu.Unlock()

	go h.consume(sub)
	h.Retry()
	return nil
}

// Retry re-runs the refresh. It reports false when a refresh is already in
// flight or the holder is not running.
func (h *Holder[T]) Retry() bool {
	h.mu.Lock()
	if !h.started || h.closed || h.inFlight {
		h.mu.Unlock()
		return false
	}
	h.inFlight = true
	h.state.IsLoading = true
	h.state.Error = ""
	ctx := h.ctx
	h.wg.Add(1)
	h.mu.Unlock()

	go h.run(ctx)
	return true
}

// Close cancels the live subscription and any in-flight refresh, waits for
// both to stop and then closes Updates.
func (h *Holder[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	cancel := h.cancel
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.wg.Wait()
	close(h.changed)
}

// Snapshot returns a copy of the current state.
func (h *Holder[T]) Snapshot() UIState[T] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Updates signals that Snapshot may have changed. Signals coalesce; the
// channel is closed by Close.
func (h *Holder[T]) Updates() <-chan struct{} {
	return h.changed
}

func (h *Holder[T]) consume(sub *store.Subscription[T]) {
	defer h.wg.Done()
	defer sub.Close()

	for data := range sub.Updates() {
		h.mu.Lock()
		h.state.Data = data
		h.state.HasData = h.present(data)
		h.mu.Unlock()
		h.notify()
	}
}

func (h *Holder[T]) run(ctx context.Context) {
	defer h.wg.Done()
	h.notify()

	res := h.refresh(ctx)

	h.mu.Lock()
	h.inFlight = false
	h.state.IsLoading = false
	if ctx.Err() != nil {
		h.mu.Unlock()
		return
	}
	h.state.LastUpdated = time.Now()
	result.Match(res,
		func(r repository.Refresh) struct{} {
			h.state.Error = ""
			h.state.ConsecutiveFailures = 0
			return struct{}{}
		},
		func(err error) struct{} {
			h.state.Error = ErrorMessage(err)
			h.state.ConsecutiveFailures++
			log.Debug().Err(err).Int("failures", h.state.ConsecutiveFailures).Msg("screen refresh failed")
			return struct{}{}
		})
	h.mu.Unlock()
	h.notify()
}

func (h *Holder[T]) notify() {
	select {
	case h.changed <- struct{}{}:
	default:
	}
}
