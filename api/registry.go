package api

import "sync"

// Registry is the process-wide store of groups and flat routes. It is an
// explicit object owned by application bootstrap code: construct it with
// NewRegistry, populate it before the first request is served, then treat it
// as read-only. The mutex only guards registration; the documented invariant
// is that no registration happens once dispatching starts, which makes
// concurrent reads from simultaneous dispatch cycles safe.
//
// Iteration order is exactly registration order, across groups and flat
// routes alike. This is load-bearing: matching is first-match-wins, so route
// specificity is entirely the registrant's responsibility. Registering two
// routes with an identical (method, pattern) pair is not rejected; the
// earlier one always wins and permanently shadows the later. That is a
// documented footgun, not a validated error.
type Registry struct {
	mu         sync.RWMutex
	routes     []*Route
	groups     map[string]*Group
	groupOrder []*Group
}

// NewRegistry constructs an empty route registry.
//
// Example:
//
//	reg := api.NewRegistry()
//	reg.GET("/health", NewHealthController, "check")
//	admin := reg.Group("admin", TokenAuth{})
//	admin.DELETE("/api/user/{userId}", NewUserController, "remove")
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]*Group)}
}

// Group returns the group registered under name, creating it with the given
// middlewares on first use. Re-registering an existing name returns the
// original group unchanged; the caller is expected to register each group
// once.
func (reg *Registry) Group(name string, mws ...Middleware) *Group {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if g, ok := reg.groups[name]; ok {
		return g
	}
	g := &Group{name: name, middlewares: mws, registry: reg}
	reg.groups[name] = g
	reg.groupOrder = append(reg.groupOrder, g)
	return g
}

// Groups returns all groups in registration order.
func (reg *Registry) Groups() []*Group {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Group, len(reg.groupOrder))
	copy(out, reg.groupOrder)
	return out
}

// GET registers a flat GET route.
func (reg *Registry) GET(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, GET, pattern, c, action, mws)
}

// POST registers a flat POST route.
func (reg *Registry) POST(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, POST, pattern, c, action, mws)
}

// PUT registers a flat PUT route.
func (reg *Registry) PUT(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, PUT, pattern, c, action, mws)
}

// PATCH registers a flat PATCH route.
func (reg *Registry) PATCH(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, PATCH, pattern, c, action, mws)
}

// DELETE registers a flat DELETE route.
func (reg *Registry) DELETE(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, DELETE, pattern, c, action, mws)
}

// OPTIONS registers a flat OPTIONS route.
func (reg *Registry) OPTIONS(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, OPTIONS, pattern, c, action, mws)
}

// HEAD registers a flat HEAD route.
func (reg *Registry) HEAD(pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, HEAD, pattern, c, action, mws)
}

// Handle registers a flat route for an arbitrary verb. The verb wrappers
// above are convenience shims over this method.
func (reg *Registry) Handle(method Method, pattern string, c ControllerFactory, action string, mws ...Middleware) *Route {
	return reg.handle(nil, method, pattern, c, action, mws)
}

// handle is the single registration path for both flat and grouped routes.
func (reg *Registry) handle(g *Group, method Method, pattern string, c ControllerFactory, action string, mws []Middleware) *Route {
	rt := &Route{
		pattern:     pattern,
		method:      method,
		controller:  c,
		action:      action,
		middlewares: mws,
		group:       g,
	}
	reg.mu.Lock()
	reg.routes = append(reg.routes, rt)
	if g != nil {
		g.routes = append(g.routes, rt)
	}
	reg.mu.Unlock()
	return rt
}

// Routes returns a snapshot of every registered route, flat and grouped, in
// registration order. The dispatcher iterates this sequence candidate by
// candidate.
func (reg *Registry) Routes() []*Route {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Route, len(reg.routes))
	copy(out, reg.routes)
	return out
}

// Len returns the number of registered routes.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.routes)
}
