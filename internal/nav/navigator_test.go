package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/storefront/internal/catalog"
)

func newNav(t *testing.T) *Navigator {
	t.Helper()
	return New(catalog.MustDefault(), nil)
}

func TestStartsOnOnboarding(t *testing.T) {
	n := newNav(t)
	require.Equal(t, Onboarding, n.Current())
	require.False(t, n.Back())
}

func TestRedirectRemovesOnboardingFromHistory(t *testing.T) {
	n := newNav(t)

	require.False(t, n.OnboardingChanged(false))
	require.Equal(t, Onboarding, n.Current())

	require.True(t, n.OnboardingChanged(true))
	require.Equal(t, Store, n.Current())
	require.Equal(t, []Route{Store}, n.History())
	require.False(t, n.Back(), "back from store must not reach onboarding")

	// a repeated true does nothing
	require.False(t, n.OnboardingChanged(true))
	require.Equal(t, []Route{Store}, n.History())
}

func TestRedirectLeavesOtherScreensAlone(t *testing.T) {
	n := newNav(t)
	n.ContinueOnboarding()
	out := n.OpenApp("aurora-pay")
	require.True(t, out.Moved)

	require.False(t, n.OnboardingChanged(true))
	require.Equal(t, Detail("aurora-pay"), n.Current())
}

func TestContinueOnboarding(t *testing.T) {
	n := newNav(t)
	out := n.ContinueOnboarding()
	require.True(t, out.Moved)
	require.Equal(t, Store, out.Route)
	require.Equal(t, []Route{Store}, n.History())

	// not on onboarding any more
	out = n.ContinueOnboarding()
	require.False(t, out.Moved)
}

func TestUserTransitionsAreBackNavigable(t *testing.T) {
	n := newNav(t)
	n.ContinueOnboarding()

	require.True(t, n.OpenCategories().Moved)
	require.Equal(t, Categories, n.Current())
	require.True(t, n.Back())
	require.Equal(t, Store, n.Current())

	require.True(t, n.OpenApp("city-metro").Moved)
	require.True(t, n.OpenScreenshot("city-metro", "city-metro-wallet").Moved)
	require.Equal(t, Screenshot("city-metro", "city-metro-wallet"), n.Current())

	app, shot, ok := n.CurrentScreenshot()
	require.True(t, ok)
	require.Equal(t, "City Metro", app.Name)
	require.Equal(t, "Кошелек", shot.Label)

	require.True(t, n.Back())
	require.Equal(t, Detail("city-metro"), n.Current())
	require.True(t, n.Back())
	require.Equal(t, Store, n.Current())
}

func TestMissingAppPopsWithNotice(t *testing.T) {
	n := newNav(t)
	n.ContinueOnboarding()

	out := n.OpenApp("nonexistent")
	require.False(t, out.Moved)
	require.Equal(t, NoticeAppUnavailable, out.Notice)
	require.Equal(t, Store, n.Current())
	require.Equal(t, []Route{Store}, n.History())
}

func TestMissingScreenshotPopsBack(t *testing.T) {
	n := newNav(t)
	n.ContinueOnboarding()
	n.OpenApp("aurora-pay")

	out := n.OpenScreenshot("aurora-pay", "does-not-exist")
	require.False(t, out.Moved)
	require.Equal(t, NoticeScreenshotUnavailable, out.Notice)
	require.Equal(t, Detail("aurora-pay"), n.Current())
}

func TestTransitionsOutsideTheirOriginAreIgnored(t *testing.T) {
	n := newNav(t)
	require.False(t, n.OpenApp("aurora-pay").Moved, "store not reached yet")
	require.False(t, n.OpenCategories().Moved)

	n.ContinueOnboarding()
	n.OpenApp("aurora-pay")
	require.False(t, n.OpenScreenshot("city-metro", "city-metro-map").Moved, "screenshot of another app")
	require.Equal(t, Detail("aurora-pay"), n.Current())
}

func TestEmptyIDsPanic(t *testing.T) {
	require.Panics(t, func() { Detail("") })
	require.Panics(t, func() { Screenshot("aurora-pay", "") })
	n := newNav(t)
	n.ContinueOnboarding()
	require.Panics(t, func() { n.OpenApp("") })
}
