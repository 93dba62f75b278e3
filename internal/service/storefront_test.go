package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/catalog"
	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/onboarding"
	"github.com/jask/storefront/internal/prefs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type brokenPrefs struct{}

func (brokenPrefs) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk gone")
}

func (brokenPrefs) Set(context.Context, string, string) error {
	return errors.New("disk gone")
}

func newStorefront(t *testing.T, p onboarding.Preferences) *Storefront {
	t.Helper()
	// goroutines may outlive the test body, so no zaptest here
	log := zap.NewNop()
	s := NewStorefront(catalog.MustDefault(), onboarding.New(p, onboarding.WithLogger(log)), nil,
		Options{GracePeriod: time.Hour, Logger: log})
	t.Cleanup(s.Close)
	return s
}

func recv(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok)
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out")
		return false
	}
}

func TestCatalogDelegation(t *testing.T) {
	s := newStorefront(t, prefs.NewFileStore(filepath.Join(t.TempDir(), "p.json")))

	require.Len(t, s.Apps(), 5)
	app, ok := s.FindApp("aurora-pay")
	require.True(t, ok)
	require.Equal(t, "Aurora Pay", app.Name)
	_, ok = s.FindApp("nonexistent")
	require.False(t, ok)
	require.Equal(t, catalog.MustDefault().CategoryCounts(), s.CategoryCounts())
	require.Len(t, s.Search("metro"), 1)

	res := s.Install(app)
	require.Equal(t, 1, res.ActiveSessions)
}

func TestOnboardingRedirectEndToEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newStorefront(t, prefs.NewFileStore(filepath.Join(t.TempDir(), "p.json")))
	n := nav.New(catalog.MustDefault(), nil)

	flag := s.Onboarding().Subscribe(ctx)
	require.False(t, n.OnboardingChanged(recv(t, flag)))

	s.MarkOnboardingSeen(ctx)
	s.MarkOnboardingSeen(ctx)

	require.True(t, n.OnboardingChanged(recv(t, flag)))
	require.Equal(t, nav.Store, n.Current())
	require.False(t, n.Back())

	// a late subscriber gets the cached value straight away
	late := s.Onboarding().Subscribe(ctx)
	require.True(t, recv(t, late))
}

func TestCompletedFlagSurvivesRestart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "p.json")
	first := newStorefront(t, prefs.NewFileStore(path))
	first.MarkOnboardingSeen(ctx)
	first.Close()

	second := newStorefront(t, prefs.NewFileStore(path))
	flag := second.Onboarding().Subscribe(ctx)
	v := recv(t, flag)
	if !v {
		// initial replay is the placeholder; storage answers next
		v = recv(t, flag)
	}
	require.True(t, v)
}

func TestStorageFailureIsNotFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newStorefront(t, brokenPrefs{})
	flag := s.Onboarding().Subscribe(ctx)
	require.False(t, recv(t, flag))

	require.NotPanics(t, func() { s.MarkOnboardingSeen(ctx) })
	require.False(t, s.Onboarding().Value())
}
