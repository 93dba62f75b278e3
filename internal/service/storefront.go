// Package service is the state the presentation layer reads from: the
// catalog snapshot, the shared onboarding flag and the user actions that
// touch them.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jask/storefront/internal/catalog"
	"github.com/jask/storefront/internal/install"
	"github.com/jask/storefront/internal/live"
	"github.com/jask/storefront/internal/onboarding"
)

// DefaultGracePeriod keeps the durable subscription alive across brief
// detaches such as a screen being rebuilt.
const DefaultGracePeriod = 5 * time.Second

// Storefront coordinates the catalog, onboarding and install services.
type Storefront struct {
	catalog    *catalog.Store
	onboarding *onboarding.Store
	installer  *install.Simulator
	log        *zap.Logger

	apps []catalog.App
	flag *live.Shared[bool]
}

// Options tunes a Storefront. A zero GracePeriod means DefaultGracePeriod;
// a negative one releases storage as soon as the last subscriber leaves.
type Options struct {
	GracePeriod time.Duration
	Logger      *zap.Logger
}

// NewStorefront snapshots the catalog and shares ob's flag. A nil inst gets a
// fresh simulator.
func NewStorefront(cat *catalog.Store, ob *onboarding.Store, inst *install.Simulator, opts Options) *Storefront {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if inst == nil {
		inst = install.NewSimulator(log)
	}
	grace := opts.GracePeriod
	if grace == 0 {
		grace = DefaultGracePeriod
	}
	return &Storefront{
		catalog:    cat,
		onboarding: ob,
		installer:  inst,
		log:        log,
		apps:       cat.List(),
		flag: live.Share(ob.Observe, false, grace,
			live.WithLogger(log), live.WithName("onboarding")),
	}
}

// Apps is the catalog snapshot taken at construction.
func (s *Storefront) Apps() []catalog.App {
	return append([]catalog.App(nil), s.apps...)
}

// Onboarding is the shared onboarding flag. It starts false until storage answers.
func (s *Storefront) Onboarding() *live.Shared[bool] {
	return s.flag
}

// MarkOnboardingSeen persists the flag. Failures only mean onboarding shows
// again next launch, so they are logged and dropped.
func (s *Storefront) MarkOnboardingSeen(ctx context.Context) {
	if err := s.onboarding.MarkCompleted(ctx); err != nil {
		s.log.Debug("mark onboarding seen dropped", zap.Error(err))
	}
}

// Catalog is the underlying record store, used to resolve routes.
func (s *Storefront) Catalog() *catalog.Store {
	return s.catalog
}

// FindApp looks up an app by id. Not found is a normal outcome.
func (s *Storefront) FindApp(id string) (catalog.App, bool) {
	return s.catalog.Find(id)
}

// CategoryCounts lists non-empty categories in catalog order.
func (s *Storefront) CategoryCounts() []catalog.CategoryCount {
	return s.catalog.CategoryCounts()
}

// Search filters the catalog snapshot.
func (s *Storefront) Search(query string) []catalog.App {
	return catalog.Filter(s.apps, query)
}

// Install runs the simulated install for app.
func (s *Storefront) Install(app catalog.App) install.Result {
	return s.installer.Install(app)
}

// Close releases the onboarding subscription.
func (s *Storefront) Close() {
	s.flag.Close()
}
