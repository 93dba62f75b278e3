// Package onboarding persists whether the user has finished the first-run
// screen and exposes it as a live value.
package onboarding

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Key is the preference key holding the flag.
const Key = "onboarding_completed"

// Preferences is the durable key/value store the flag lives in.
type Preferences interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// WatchFunc reports changes made to the durable store outside this process.
type WatchFunc func(ctx context.Context) (<-chan struct{}, error)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for degraded reads and failed writes.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWatch enables external change notifications.
func WithWatch(fn WatchFunc) Option {
	return func(s *Store) { s.watch = fn }
}

// Store adapts Preferences to the single onboarding flag. Storage errors
// never escape as panics: reads degrade to false, writes are reported to the
// caller and otherwise leave the previous durable value in place.
type Store struct {
	prefs Preferences
	log   *zap.Logger
	watch WatchFunc
	reads singleflight.Group
	gen   atomic.Uint64 // bumped on every known write

	mu        sync.Mutex
	listeners map[chan struct{}]struct{}
}

// New wraps prefs. Without WithWatch only writes made through this Store are observed.
func New(prefs Preferences, opts ...Option) *Store {
	s := &Store{
		prefs:     prefs,
		log:       zap.NewNop(),
		listeners: make(map[chan struct{}]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Completed reads the durable flag once. Missing or unreadable values are false.
func (s *Store) Completed(ctx context.Context) bool {
	v, _ := s.read(ctx)
	return v
}

// MarkCompleted durably sets the flag. Calling it again is harmless.
func (s *Store) MarkCompleted(ctx context.Context) error {
	if err := s.prefs.Set(ctx, Key, strconv.FormatBool(true)); err != nil {
		s.log.Warn("persist onboarding flag failed; onboarding will show again next launch", zap.Error(err))
		return fmt.Errorf("mark onboarding completed: %w", err)
	}
	s.log.Info("onboarding completed")
	s.gen.Add(1)
	s.notify()
	return nil
}

// Observe emits the durable flag now and again after every change. Only
// changed values are sent. The channel is closed once ctx is done.
func (s *Store) Observe(ctx context.Context) <-chan bool {
	out := make(chan bool)
	local := s.listen()

	var external <-chan struct{}
	if s.watch != nil {
		ch, err := s.watch(ctx)
		if err != nil {
			s.log.Warn("external onboarding changes unavailable", zap.Error(err))
		} else {
			external = ch
		}
	}

	go func() {
		defer close(out)
		defer s.unlisten(local)

		var last, sent bool
		emit := func() bool {
			v, err := s.read(ctx)
			if ctx.Err() != nil {
				return false
			}
			if err != nil && sent {
				return true // keep the last good value
			}
			if sent && v == last {
				return true
			}
			select {
			case out <- v:
				last, sent = v, true
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-local:
				if !emit() {
					return
				}
			case _, ok := <-external:
				if !ok {
					external = nil
					continue
				}
				s.gen.Add(1)
				if !emit() {
					return
				}
			}
		}
	}()
	return out
}

// read coalesces concurrent reads of the same write generation. A read
// started after a write never joins one that began before it.
func (s *Store) read(ctx context.Context) (bool, error) {
	flight := Key + "@" + strconv.FormatUint(s.gen.Load(), 10)
	v, err, _ := s.reads.Do(flight, func() (any, error) {
		raw, ok, err := s.prefs.Get(ctx, Key)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		return strconv.ParseBool(raw)
	})
	if err != nil {
		s.log.Warn("read onboarding flag failed; assuming not completed", zap.Error(err))
		return false, err
	}
	return v.(bool), nil
}

func (s *Store) listen() chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.listeners[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Store) unlisten(ch chan struct{}) {
	s.mu.Lock()
	delete(s.listeners, ch)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
