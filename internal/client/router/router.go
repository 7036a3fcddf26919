// Package router maps navigation paths to views.
//
// Router holds a browser-like history: Navigate corresponds to a full page
// load (it discards forward entries) and Back/Forward correspond to the
// browser's popstate navigation. The rendered view is always re-derived from
// the current path with Lookup, so an unknown path can never keep showing
// the previous page.
package router

type View string

const (
	ViewHome      View = "home"
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewDashboard View = "dashboard"
	ViewNotFound  View = "notfound"
)

const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

type Route struct {
	Path string
	View View
}

// DefaultRoutes is the client's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathHome, View: ViewHome},
		{Path: PathLogin, View: ViewLogin},
		{Path: PathRegister, View: ViewRegister},
		{Path: PathDashboard, View: ViewDashboard},
	}
}

// Lookup returns the view for an exact path match, or ViewNotFound.
func Lookup(routes []Route, path string) View {
	for _, r := range routes {
		if r.Path == path {
			return r.View
		}
	}
	return ViewNotFound
}

type Router struct {
	routes  []Route
	history []string
	pos     int
}

// New starts a router at initial, the path the client was opened with.
func New(routes []Route, initial string) *Router {
	return &Router{
		routes:  append([]Route(nil), routes...),
		history: []string{initial},
	}
}

func (r *Router) Current() string {
	return r.history[r.pos]
}

func (r *Router) View() View {
	return Lookup(r.routes, r.Current())
}

// Navigate pushes path as a new history entry and drops anything that was
// ahead of the current one.
func (r *Router) Navigate(path string) {
	r.history = append(r.history[:r.pos+1], path)
	r.pos = len(r.history) - 1
}

// Back moves one entry back. It returns false, leaving the state unchanged,
// when already at the oldest entry.
func (r *Router) Back() bool {
	if r.pos == 0 {
		return false
	}
	r.pos--
	return true
}

// Forward moves one entry forward. It returns false at the newest entry.
func (r *Router) Forward() bool {
	if r.pos >= len(r.history)-1 {
		return false
	}
	r.pos++
	return true
}

