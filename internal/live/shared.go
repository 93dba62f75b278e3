// Package live provides a hot, replaying broadcast of a single value.
//
// A Shared value runs one upstream subscription no matter how many
// subscribers are attached, replays the last value to late subscribers and
// releases the upstream a grace period after the last subscriber leaves.
package live

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Source starts an upstream stream of values. It must close the returned
// channel once ctx is done.
type Source[T any] func(ctx context.Context) <-chan T

// Option configures a Shared value.
type Option func(*options)

type options struct {
	log  *zap.Logger
	name string
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithName labels lifecycle log lines.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Shared is a multicast value with a retained last value.
type Shared[T comparable] struct {
	source Source[T]
	grace  time.Duration
	log    *zap.Logger

	mu      sync.Mutex
	value   T
	subs    map[*subscriber[T]]struct{}
	cancel  context.CancelFunc // nil while upstream is stopped
	pumping sync.WaitGroup
	idle    *time.Timer
	idleGen uint64
	starts  int
	closed  bool
}

type subscriber[T any] struct {
	ch   chan T
	stop func() bool
}

// Share wraps source. Subscribers see initial until the upstream delivers.
func Share[T comparable](source Source[T], initial T, grace time.Duration, opts ...Option) *Shared[T] {
	o := options{log: zap.NewNop(), name: "shared"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Shared[T]{
		source: source,
		grace:  grace,
		log:    o.log.With(zap.String("shared", o.name)),
		value:  initial,
		subs:   make(map[*subscriber[T]]struct{}),
	}
}

// Subscribe returns a channel that immediately holds the current value and
// then receives every distinct change. The channel buffers one value and
// keeps only the latest. It is closed when ctx is done or the Shared is
// closed.
func (s *Shared[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscriber[T]{ch: make(chan T, 1)}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	if s.idle != nil {
		s.idle.Stop()
		s.idle = nil
	}
	s.subs[sub] = struct{}{}
	sub.ch <- s.value
	if s.cancel == nil {
		s.startLocked()
	}
	sub.stop = context.AfterFunc(ctx, func() { s.unsubscribe(sub) })
	s.mu.Unlock()
	return sub.ch
}

// Value returns the last retained value.
func (s *Shared[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Subscribers is the number of attached subscribers.
func (s *Shared[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Active reports whether the upstream is currently running.
func (s *Shared[T]) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Close stops the upstream, closes every subscriber channel and waits for
// the upstream pump to exit. Later subscriptions receive a closed channel.
func (s *Shared[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.idle != nil {
		s.idle.Stop()
		s.idle = nil
	}
	s.stopLocked()
	for sub := range s.subs {
		delete(s.subs, sub)
		if sub.stop != nil {
			sub.stop()
		}
		close(sub.ch)
	}
	s.mu.Unlock()
	s.pumping.Wait()
}

func (s *Shared[T]) startLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.starts++
	s.log.Debug("upstream started", zap.Int("starts", s.starts))

	src := s.source(ctx)
	s.pumping.Add(1)
	go func() {
		defer s.pumping.Done()
		s.pump(ctx, src)
	}()
}

func (s *Shared[T]) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.log.Debug("upstream stopped")
}

func (s *Shared[T]) pump(ctx context.Context, src <-chan T) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-src:
			if !ok {
				return
			}
			s.publish(ctx, v)
		}
	}
}

func (s *Shared[T]) publish(ctx context.Context, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// a pump that lost a race with teardown must not overwrite newer state
	if ctx.Err() != nil || v == s.value {
		return
	}
	s.value = v
	for sub := range s.subs {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- v
	}
}

func (s *Shared[T]) unsubscribe(sub *subscriber[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[sub]; !ok {
		return
	}
	delete(s.subs, sub)
	close(sub.ch)
	if len(s.subs) > 0 || s.cancel == nil {
		return
	}
	if s.grace <= 0 {
		s.stopLocked()
		return
	}
	s.idleGen++
	gen := s.idleGen
	s.idle = time.AfterFunc(s.grace, func() { s.stopIfIdle(gen) })
}

func (s *Shared[T]) stopIfIdle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.idleGen || len(s.subs) > 0 {
		return
	}
	s.idle = nil
	s.stopLocked()
}
