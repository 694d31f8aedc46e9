// Package navigation is the app's routing contract. The client navigates by
// named routes; the backend decides redirects through an injected Navigator
// instead of writing a global location string, so decisions are testable with
// a recording fake.
package navigation

import "github.com/MdSponx/cifan-2025-film-festival/internal/models"

type Route string

const (
	RouteNone           Route = ""
	RouteHome           Route = "home"
	RouteSignIn         Route = "signin"
	RouteProfileEdit    Route = "profile/edit"
	RouteProfileSetup   Route = "profile/setup"
	RouteAdminDashboard Route = "admin/dashboard"
	RouteMyApplications Route = "my-applications"
)

// SubmitRoute is the submission form location for a category.
func SubmitRoute(cat models.Category) Route {
	return Route("submit-" + string(cat))
}

// AuthAdjacent reports whether the route is one the post-login redirect is
// allowed to leave from. Deep links anywhere else are preserved.
func AuthAdjacent(r Route) bool {
	switch r {
	case RouteNone, RouteHome, RouteSignIn, RouteProfileSetup:
		return true
	}
	return false
}

type Navigator interface {
	Navigate(route Route, params map[string]string)
}

// Recorder is a Navigator fake that records calls.
type Recorder struct {
	Calls []RecordedCall
}

type RecordedCall struct {
	Route  Route
	Params map[string]string
}

func (r *Recorder) Navigate(route Route, params map[string]string) {
	r.Calls = append(r.Calls, RecordedCall{Route: route, Params: params})
}

// Noop discards navigation. The HTTP layer uses it: redirect decisions are
// returned in the response body and the client performs the move itself.
type Noop struct{}

func (Noop) Navigate(Route, map[string]string) {}
