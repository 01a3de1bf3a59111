package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Subscription is a live query. Updates delivers the current result right
// away and a fresh result after every committed write to the underlying
// table. Delivery is latest-wins: a reader that falls behind skips straight
// to the newest result.
type Subscription[T any] struct {
	updates chan T
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

// Updates returns the result channel. It is closed after Close, after the
// parent context is cancelled, or when the store shuts down.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Close stops the live query and waits for its goroutine to exit.
func (s *Subscription[T]) Close() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the subscription has fully stopped.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// observe subscribes to topic before running the first query so no write can
// slip between the snapshot and the subscription.
func observe[T any](parent context.Context, s *Store, topic string, query func(context.Context) (T, error)) (*Subscription[T], error) {
	ctx, cancel := context.WithCancel(parent)

	changes, err := s.live.Subscribe(ctx, topic)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribing to %s: %w", topic, err)
	}

	first, err := query(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("querying %s: %w", topic, err)
	}

	sub := &Subscription[T]{
		updates: make(chan T, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	sub.updates <- first

	go func() {
		defer close(sub.done)
		defer close(sub.updates)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				next, err := query(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Warn().Err(err).Str("topic", topic).Msg("live query refresh failed")
					continue
				}
				offer(sub.updates, next)
			}
		}
	}()

	return sub, nil
}

// offer replaces any undelivered value with v.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
