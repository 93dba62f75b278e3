package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jask/storefront/internal/config"
	"github.com/jask/storefront/internal/database"
	"github.com/jask/storefront/internal/database/repository"
	"github.com/jask/storefront/internal/onboarding"
	"github.com/jask/storefront/internal/prefs"
)

// storage is the opened preference backend.
type storage struct {
	prefs onboarding.Preferences
	files []string // what to watch for changes from other processes
	close func() error
}

func openStorage(sc config.StorageConfig) (storage, error) {
	if err := os.MkdirAll(filepath.Dir(sc.Path), 0o755); err != nil {
		return storage{}, fmt.Errorf("mkdir storage dir: %w", err)
	}
	switch sc.Backend {
	case config.BackendFile:
		fs := prefs.NewFileStore(sc.Path)
		return storage{
			prefs: fs,
			files: []string{fs.Path()},
			close: func() error { return nil },
		}, nil
	case config.BackendSQLite:
		if err := database.RunMigrations(sc.Path); err != nil {
			return storage{}, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(sc.Path)
		if err != nil {
			return storage{}, fmt.Errorf("open db: %w", err)
		}
		return storage{
			prefs: repository.NewPreferenceRepo(db),
			files: []string{sc.Path, sc.Path + "-wal", sc.Path + "-shm"},
			close: db.Close,
		}, nil
	}
	return storage{}, fmt.Errorf("unknown storage backend %q", sc.Backend)
}

// unavailablePrefs stands in for storage that could not be opened. Every
// call fails, which the onboarding store reads as "not completed".
type unavailablePrefs struct{ err error }

func (u unavailablePrefs) Get(context.Context, string) (string, bool, error) {
	return "", false, u.err
}

func (u unavailablePrefs) Set(context.Context, string, string) error {
	return u.err
}

// openStorageOrDegrade never fails: when storage cannot be opened the flag
// behaves as never set and writes are dropped by the caller.
func openStorageOrDegrade(sc config.StorageConfig, log *zap.Logger) storage {
	st, err := openStorage(sc)
	if err == nil {
		return st
	}
	log.Warn("storage unavailable; onboarding state will not persist",
		zap.String("backend", sc.Backend), zap.String("path", sc.Path), zap.Error(err))
	return storage{
		prefs: unavailablePrefs{err: err},
		close: func() error { return nil },
	}
}

// newOnboarding builds the onboarding store over st, following external
// changes when the config asks for it.
func newOnboarding(st storage, sc config.StorageConfig, log *zap.Logger) *onboarding.Store {
	opts := []onboarding.Option{onboarding.WithLogger(log)}
	if sc.Watch && len(st.files) > 0 {
		files := st.files
		opts = append(opts, onboarding.WithWatch(func(ctx context.Context) (<-chan struct{}, error) {
			return prefs.Watch(ctx, log, files...)
		}))
	}
	return onboarding.New(st.prefs, opts...)
}
