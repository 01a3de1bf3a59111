package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var errRegistryClosed = errors.New("store: live queries closed")

// registry fans table-change notifications out to live queries.
// Notifications carry no payload: a listener re-runs its own query, so a
// pending notification can absorb any number of later ones.
type registry struct {
	mu        sync.RWMutex
	listeners map[*listener]struct{}
	closed    atomic.Bool
}

type listener struct {
	ctx    context.Context
	topic  string
	ch     chan struct{}
	closed atomic.Bool
}

func newRegistry() *registry {
	return &registry{listeners: make(map[*listener]struct{})}
}

// Subscribe registers interest in topic until ctx is done or the registry
// shuts down; the returned channel is closed in either case.
func (r *registry) Subscribe(ctx context.Context, topic string) (<-chan struct{}, error) {
	if r.closed.Load() {
		return nil, errRegistryClosed
	}
	l := &listener{ctx: ctx, topic: topic, ch: make(chan struct{}, 1)}

	r.mu.Lock()
	if r.closed.Load() {
		r.mu.Unlock()
		return nil, errRegistryClosed
	}
	r.listeners[l] = struct{}{}
	r.mu.Unlock()

	go r.monitor(l)
	return l.ch, nil
}

// Publish notifies every listener of topic without blocking.
func (r *registry) Publish(topic string) {
	if r.closed.Load() {
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for l := range r.listeners {
		if l.topic != topic || l.closed.Load() {
			continue
		}
		select {
		case l.ch <- struct{}{}:
		default:
		}
	}
}

// Shutdown closes every listener channel; later Subscribe calls fail.
func (r *registry) Shutdown() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for l := range r.listeners {
		if l.closed.CompareAndSwap(false, true) {
			close(l.ch)
		}
	}
	r.listeners = nil
}

func (r *registry) monitor(l *listener) {
	<-l.ctx.Done()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listeners == nil {
		return
	}
	if _, ok := r.listeners[l]; !ok {
		return
	}
	delete(r.listeners, l)
	if l.closed.CompareAndSwap(false, true) {
		close(l.ch)
	}
}

func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}
