package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/repository"
	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 15 * time.Minute

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 15 * time.Minute},
		{"negative failures", -1, 15 * time.Minute},
		{"one failure", 1, 30 * time.Minute},
		{"two failures", 2, time.Hour},
		{"three failures capped", 3, 2 * time.Hour},
		{"many failures capped", 10, 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := time.Minute
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff || got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, outside (0, %v]", failures, baseInterval, got, maxBackoff)
		}
	}
}

// countingRefresher records calls; refreshes named in fail return an error.
type countingRefresher struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]bool
	cycle chan struct{}
}

func newCountingRefresher(fail ...string) *countingRefresher {
	r := &countingRefresher{calls: map[string]int{}, fail: map[string]bool{}, cycle: make(chan struct{}, 16)}
	for _, name := range fail {
		r.fail[name] = true
	}
	return r
}

func (r *countingRefresher) record(name string) result.Result[repository.Refresh] {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[name]++
	if name == "capsules" {
		select {
		case r.cycle <- struct{}{}:
		default:
		}
	}
	if r.fail[name] {
		return result.Fail[repository.Refresh](errors.New(name + " unavailable"))
	}
	return result.Ok(repository.Refresh{Upserted: 1})
}

func (r *countingRefresher) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

func (r *countingRefresher) RefreshLaunches(context.Context) result.Result[repository.Refresh] {
	return r.record("launches")
}

func (r *countingRefresher) RefreshUpcomingLaunches(context.Context) result.Result[repository.Refresh] {
	return r.record("upcoming")
}

func (r *countingRefresher) RefreshLatestLaunch(context.Context) result.Result[repository.Refresh] {
	return r.record("latest")
}

func (r *countingRefresher) RefreshRockets(context.Context) result.Result[repository.Refresh] {
	return r.record("rockets")
}

func (r *countingRefresher) RefreshCapsules(context.Context) result.Result[repository.Refresh] {
	return r.record("capsules")
}

func TestRefreshAll_ContinuesPastFailures(t *testing.T) {
	repo := newCountingRefresher("upcoming", "rockets")

	err := refreshAll(context.Background(), repo)
	if err == nil {
		t.Fatalf("refreshAll error = nil, want joined failures")
	}
	for _, want := range []string{"upcoming unavailable", "rockets unavailable"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
	for _, name := range []string{"launches", "upcoming", "latest", "rockets", "capsules"} {
		if got := repo.count(name); got != 1 {
			t.Fatalf("%s calls = %d, want 1", name, got)
		}
	}
}

func TestRefreshAll_CancelledSkipsWork(t *testing.T) {
	repo := newCountingRefresher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := refreshAll(ctx, repo); !errors.Is(err, context.Canceled) {
		t.Fatalf("refreshAll error = %v, want context.Canceled", err)
	}
	if got := repo.count("launches"); got != 0 {
		t.Fatalf("launches calls = %d, want 0", got)
	}
}

func TestStartPoller_RunsCyclesUntilStopped(t *testing.T) {
	repo := newCountingRefresher()
	stop := StartPoller(context.Background(), repo, 10*time.Millisecond)

	for i := 0; i < 2; i++ {
		select {
		case <-repo.cycle:
		case <-time.After(2 * time.Second):
			stop()
			t.Fatalf("poller cycle %d did not run", i+1)
		}
	}
	stop()

	after := repo.count("launches")
	time.Sleep(50 * time.Millisecond)
	if got := repo.count("launches"); got != after {
		t.Fatalf("poller kept running after stop: %d -> %d", after, got)
	}
	if after < 2 {
		t.Fatalf("launches calls = %d, want >= 2", after)
	}
}

func TestStartPoller_WaitsOneInterval(t *testing.T) {
	repo := newCountingRefresher()
	stop := StartPoller(context.Background(), repo, time.Hour)
	defer stop()

	time.Sleep(20 * time.Millisecond)
	if got := repo.count("launches"); got != 0 {
		t.Fatalf("launches calls = %d before the first interval, want 0", got)
	}
}
