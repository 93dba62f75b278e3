// Package nav owns the storefront's screen history and the onboarding
// redirect.
package nav

import "fmt"

// Kind identifies a screen.
type Kind int

const (
	KindOnboarding Kind = iota
	KindStore
	KindCategories
	KindDetail
	KindScreenshot
)

func (k Kind) String() string {
	switch k {
	case KindOnboarding:
		return "onboarding"
	case KindStore:
		return "store"
	case KindCategories:
		return "categories"
	case KindDetail:
		return "detail"
	case KindScreenshot:
		return "screenshot"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Route is a screen plus its arguments.
type Route struct {
	Kind   Kind
	AppID  string
	ShotID string
}

var (
	Onboarding = Route{Kind: KindOnboarding}
	Store      = Route{Kind: KindStore}
	Categories = Route{Kind: KindCategories}
)

// Detail is the route for an app page. An empty id is a programming error.
func Detail(appID string) Route {
	if appID == "" {
		panic("nav: detail route needs an app id")
	}
	return Route{Kind: KindDetail, AppID: appID}
}

// Screenshot is the route for a full-screen screenshot. Empty ids are a
// programming error.
func Screenshot(appID, shotID string) Route {
	if appID == "" || shotID == "" {
		panic("nav: screenshot route needs app and screenshot ids")
	}
	return Route{Kind: KindScreenshot, AppID: appID, ShotID: shotID}
}

func (r Route) String() string {
	switch r.Kind {
	case KindDetail:
		return "detail/" + r.AppID
	case KindScreenshot:
		return "screenshot/" + r.AppID + "/" + r.ShotID
	default:
		return r.Kind.String()
	}
}
