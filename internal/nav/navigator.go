package nav

import (
	"go.uber.org/zap"

	"github.com/jask/storefront/internal/catalog"
)

const (
	NoticeAppUnavailable        = "App unavailable"
	NoticeScreenshotUnavailable = "Screenshot unavailable"
)

// Catalog resolves app ids for detail and screenshot routes.
type Catalog interface {
	Find(id string) (catalog.App, bool)
}

// Outcome describes the result of a user intent.
type Outcome struct {
	Route  Route
	Moved  bool
	Notice string
}

// origins lists where each explicit transition may start from.
var origins = map[Kind][]Kind{
	KindStore:      {KindOnboarding},
	KindCategories: {KindStore},
	KindDetail:     {KindStore},
	KindScreenshot: {KindDetail},
}

// Navigator is the screen state machine. It starts on the onboarding screen.
// It is not safe for concurrent use; the UI loop owns it.
type Navigator struct {
	stack Stack
	apps  Catalog
	log   *zap.Logger
}

// New starts a navigator on the onboarding screen. A nil logger discards logs.
func New(apps Catalog, log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	n := &Navigator{apps: apps, log: log}
	n.stack.Push(Onboarding)
	return n
}

// Current is the screen on top of the history.
func (n *Navigator) Current() Route {
	r, _ := n.stack.Top()
	return r
}

// History returns the back stack bottom first.
func (n *Navigator) History() []Route {
	return n.stack.Routes()
}

// OnboardingChanged applies the completion redirect: when done is true and
// the user is still on the onboarding screen, go to the store and drop
// onboarding from history. Any other screen is left alone.
func (n *Navigator) OnboardingChanged(done bool) bool {
	if !done || n.Current().Kind != KindOnboarding {
		return false
	}
	n.leaveOnboarding()
	n.log.Debug("onboarding redirect", zap.Stringer("route", n.Current()))
	return true
}

// ContinueOnboarding is the user leaving the onboarding screen. The caller
// is responsible for persisting the flag.
func (n *Navigator) ContinueOnboarding() Outcome {
	if !n.allowed(KindStore) {
		return n.stay()
	}
	n.leaveOnboarding()
	return Outcome{Route: n.Current(), Moved: true}
}

func (n *Navigator) OpenCategories() Outcome {
	if !n.allowed(KindCategories) {
		return n.stay()
	}
	return n.enter(Categories)
}

func (n *Navigator) OpenApp(appID string) Outcome {
	if !n.allowed(KindDetail) {
		return n.stay()
	}
	return n.enter(Detail(appID))
}

func (n *Navigator) OpenScreenshot(appID, shotID string) Outcome {
	if !n.allowed(KindScreenshot) || n.Current().AppID != appID {
		return n.stay()
	}
	return n.enter(Screenshot(appID, shotID))
}

// Back pops the current screen. The last remaining screen is never popped.
func (n *Navigator) Back() bool {
	if n.stack.Len() <= 1 {
		return false
	}
	n.stack.Pop()
	n.log.Debug("back", zap.Stringer("route", n.Current()))
	return true
}

// CurrentApp resolves the app of the current detail or screenshot route.
func (n *Navigator) CurrentApp() (catalog.App, bool) {
	r := n.Current()
	if r.AppID == "" {
		return catalog.App{}, false
	}
	return n.apps.Find(r.AppID)
}

// CurrentScreenshot resolves the current screenshot route.
func (n *Navigator) CurrentScreenshot() (catalog.App, catalog.Screenshot, bool) {
	r := n.Current()
	if r.Kind != KindScreenshot {
		return catalog.App{}, catalog.Screenshot{}, false
	}
	app, ok := n.apps.Find(r.AppID)
	if !ok {
		return catalog.App{}, catalog.Screenshot{}, false
	}
	shot, ok := app.Screenshot(r.ShotID)
	return app, shot, ok
}

func (n *Navigator) leaveOnboarding() {
	n.stack.PopUpTo(KindOnboarding, true)
	if top, ok := n.stack.Top(); !ok || top.Kind != KindStore {
		n.stack.Push(Store)
	}
}

func (n *Navigator) allowed(target Kind) bool {
	cur := n.Current().Kind
	for _, k := range origins[target] {
		if k == cur {
			return true
		}
	}
	return false
}

func (n *Navigator) stay() Outcome {
	return Outcome{Route: n.Current()}
}

// enter pushes r and resolves it against the catalog. A route that does not
// resolve is popped again and reported with a notice.
func (n *Navigator) enter(r Route) Outcome {
	n.stack.Push(r)
	if notice := n.resolve(r); notice != "" {
		n.stack.Pop()
		n.log.Info("route did not resolve", zap.Stringer("route", r), zap.String("notice", notice))
		return Outcome{Route: n.Current(), Notice: notice}
	}
	n.log.Debug("navigate", zap.Stringer("route", r))
	return Outcome{Route: r, Moved: true}
}

func (n *Navigator) resolve(r Route) string {
	switch r.Kind {
	case KindDetail:
		if _, ok := n.apps.Find(r.AppID); !ok {
			return NoticeAppUnavailable
		}
	case KindScreenshot:
		app, ok := n.apps.Find(r.AppID)
		if !ok {
			return NoticeAppUnavailable
		}
		if _, ok := app.Screenshot(r.ShotID); !ok {
			return NoticeScreenshotUnavailable
		}
	}
	return ""
}

// Stack exposes a copy of the history for inspection.
func (n *Navigator) Stack() Stack {
	return Stack{items: n.stack.Routes()}
}
