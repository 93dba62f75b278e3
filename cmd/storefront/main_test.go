package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/config"
)

// execute runs the root command against an isolated home directory.
func execute(t *testing.T, backend string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STOREFRONT_CONFIG", "")
	t.Setenv("STOREFRONT_STORAGE_BACKEND", backend)
	t.Setenv("STOREFRONT_STORAGE_WATCH", "false")
	t.Setenv("STOREFRONT_LOG_PATH", filepath.Join(home, "storefront.log"))
	configPath = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAppsListsCatalog(t *testing.T) {
	out, err := execute(t, config.BackendFile, "apps")
	require.NoError(t, err)
	require.Contains(t, out, "aurora-pay")
	require.Contains(t, out, "craft-tools")
}

func TestAppsFilters(t *testing.T) {
	out, err := execute(t, config.BackendFile, "apps", "metro")
	require.NoError(t, err)
	require.Contains(t, out, "city-metro")
	require.NotContains(t, out, "aurora-pay")

	out, err = execute(t, config.BackendFile, "apps", "zzzzzz")
	require.NoError(t, err)
	require.Contains(t, out, "No apps match.")
}

func TestCategories(t *testing.T) {
	out, err := execute(t, config.BackendFile, "categories")
	require.NoError(t, err)
	require.Contains(t, out, "Финансы")
	require.Contains(t, out, "Транспорт")
}

func TestShowUnknownApp(t *testing.T) {
	_, err := execute(t, config.BackendFile, "show", "nope")
	require.ErrorContains(t, err, `app "nope" not found`)
}

func TestShowRendersDescription(t *testing.T) {
	out, err := execute(t, config.BackendFile, "show", "city-metro")
	require.NoError(t, err)
	require.Contains(t, out, "City Metro (city-metro)")
	require.Contains(t, out, "Screenshots:")
}

func TestOnboardingRoundTrip(t *testing.T) {
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("STOREFRONT_STORAGE_PATH", filepath.Join(home, "state", "prefs"))

			run := func(args ...string) string {
				t.Helper()
				// keep the storage path across runs; execute only resets HOME
				out, err := execute(t, backend, args...)
				require.NoError(t, err)
				return out
			}
			require.Contains(t, run("onboarding"), "onboarding completed: false")
			require.Contains(t, run("onboarding", "complete"), "onboarding completed: true")
			require.Contains(t, run("onboarding"), "onboarding completed: true")
			require.Contains(t, run("onboarding", "complete"), "onboarding completed: true")
		})
	}
}

// blockedPath returns a storage path whose parent is a regular file.
func blockedPath(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	return filepath.Join(file, "storefront.db")
}

func TestUnopenableStorageIsNotFatal(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.Config{Storage: config.StorageConfig{
		Backend: config.BackendSQLite,
		Path:    blockedPath(t),
		Watch:   true,
	}}

	_, err := openStorage(cfg.Storage)
	require.Error(t, err)

	sf, cleanup := newStorefront()
	defer cleanup()
	require.Len(t, sf.Apps(), 5)
	require.False(t, sf.Onboarding().Value())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	flag := sf.Onboarding().Subscribe(ctx)
	require.False(t, <-flag)

	// the write fails and is dropped
	sf.MarkOnboardingSeen(ctx)
	require.False(t, sf.Onboarding().Value())
}

func TestOnboardingWithUnopenableStorage(t *testing.T) {
	path := blockedPath(t)
	t.Setenv("STOREFRONT_STORAGE_PATH", path)

	out, err := execute(t, config.BackendSQLite, "onboarding")
	require.NoError(t, err)
	require.Contains(t, out, "onboarding completed: false")

	_, err = execute(t, config.BackendSQLite, "onboarding", "complete")
	require.Error(t, err)
}
