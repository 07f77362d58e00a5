package api

import "github.com/simpleapi/simpleapi/v2/request"

// Middleware is the pre-dispatch hook. Handle runs before the controller and
// may abort the request by returning a non-nil error; a *Rejection carries a
// status and client-facing detail, any other error is wrapped into one.
// A later middleware sees the effects of earlier ones on the shared request.
type Middleware interface {
	Handle(*request.Request) error
}

// Terminator is the optional post-response capability. Terminate runs after
// the Result has been constructed, for side effects that must not affect the
// response itself (logging, audit). It is best-effort: middlewares without it
// are simply skipped.
type Terminator interface {
	Terminate(*request.Request, Result)
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
//
// Example:
//
//	reg.GET("/admin", NewAdminController, "index", api.MiddlewareFunc(requireAdmin))
type MiddlewareFunc func(*request.Request) error

// Handle calls the wrapped function.
func (f MiddlewareFunc) Handle(r *request.Request) error { return f(r) }

// Route is an immutable route descriptor: a (method, pattern) pair bound to a
// controller factory, an action name and an ordered middleware list. Routes
// are created through Registry or Group registration and never change
// afterwards.
type Route struct {
	pattern     string
	method      Method
	controller  ControllerFactory
	action      string
	middlewares []Middleware
	group       *Group // nil for flat routes
}

// Pattern returns the route pattern, e.g. "/api/user/{userId}/files".
func (rt *Route) Pattern() string { return rt.pattern }

// Method returns the route's HTTP verb.
func (rt *Route) Method() Method { return rt.method }

// Action returns the registered action name.
func (rt *Route) Action() string { return rt.action }

// Middlewares returns the route-level middleware list in registration order.
// Group-level middlewares are not duplicated here; see Group.Middlewares.
func (rt *Route) Middlewares() []Middleware { return rt.middlewares }

// Group returns the owning group, or nil for a flat route.
func (rt *Route) Group() *Group { return rt.group }

// chain returns the full ordered middleware chain for the route: group-level
// middlewares first, then route-level ones.
func (rt *Route) chain() []Middleware {
	if rt.group == nil || len(rt.group.middlewares) == 0 {
		return rt.middlewares
	}
	out := make([]Middleware, 0, len(rt.group.middlewares)+len(rt.middlewares))
	out = append(out, rt.group.middlewares...)
	out = append(out, rt.middlewares...)
	return out
}

// Group is a named collection of routes sharing a common middleware prefix.
// Group middlewares run before every member route's own middlewares; they are
// stored once on the group, not copied per route.
type Group struct {
	name        string
	middlewares []Middleware
	routes      []*Route
	registry    *Registry
}

// Name returns the group's unique key.
func (g *Group) Name() string { return g.name }

// Middlewares returns the group-level middleware list in registration order.
func (g *Group) Middlewares() []Middleware { return g.middlewares }

// Routes returns the group's routes in registration order.
func (g *Group) Routes() []*Route {
	g.registry.mu.RLock()
	defer g.registry.mu.RUnlock()
	out := make([]*Route, len(g.routes))
	copy(out, g.routes)
	return out
}

// GET registers a GET route in this group.
//
// Example:
//
//	users := reg.Group("users", Auth{})
//	users.GET("/api/user/{userId}", NewUserController, "show")
func (g *Group) GET(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return g.registry.handle(g, GET, pattern, c, action, mws)
}

// POST registers a POST route in this group.
func (g *Group) POST(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return g.registry.handle(g, POST, pattern, c, action, mws)
}

// PUT registers a PUT route in this group.
func (g *Group) PUT(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return g.registry.handle(g, PUT, pattern, c, action, mws)
}

// PATCH registers a PATCH route in this group.
func (g *Group) PATCH(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return g.registry.handle(g, PATCH, pattern, c, action, mws)
}

// DELETE registers a DELETE route in this group.
func (g *Group) DELETE(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return g.registry.handle(g, DELETE, pattern, c, action, mws)
}

// Handle registers a route for an arbitrary verb in this group.
func (g *Group) Handle(method Method, pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return g.registry.handle(g, method, pattern, c, action, mws)
}
