// Package api implements the route registry, matching and dispatch core for
// exposing controller actions as JSON endpoints. A Dispatcher is constructed
// per request from raw transport facts, walks the registry in registration
// order, and produces exactly one Result (or a fatal error) per dispatch.
package api

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/simpleapi/simpleapi/v2/request"
)

// DefaultNotFoundMessage is the fixed message carried by the 404 fallback
// StringResult when no route matches.
const DefaultNotFoundMessage = "The requested resource was not found."

// Dispatcher runs one dispatch cycle: match a request against the registry,
// run middlewares, invoke the resolved controller action and normalize its
// return value. It is constructed fresh per request and never shared; the
// registry it reads is populated once at bootstrap and read-only afterwards,
// so any number of concurrent dispatch cycles may run against it.
//
// Example:
//
//	d := api.NewDispatcher(reg, "GET", "/api/user/42/files", headers, input)
//	res, err := d.Dispatch()
//	if err != nil {
//		// *Rejection or *ConfigError; see Dispatch docs
//	}
type Dispatcher struct {
	registry *Registry
	method   string
	uri      string
	headers  map[string]string
	input    map[string]any

	logger          *slog.Logger
	notFoundMessage string
}

// NewDispatcher constructs a dispatcher from raw request facts: the transport
// method string, the request URI (a query string, if present, is stripped
// before matching), the header map and the merged query/body input map.
func NewDispatcher(reg *Registry, method, uri string, headers map[string]string, input map[string]any) *Dispatcher {
	return &Dispatcher{
		registry:        reg,
		method:          method,
		uri:             uri,
		headers:         headers,
		input:           input,
		notFoundMessage: DefaultNotFoundMessage,
	}
}

// SetLogger sets the logger used for terminate-hook failures and dispatch
// diagnostics. Defaults to slog.Default.
func (d *Dispatcher) SetLogger(l *slog.Logger) { d.logger = l }

// Logger returns the configured logger, or slog.Default if none is set.
func (d *Dispatcher) Logger() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

// SetNotFoundMessage overrides the message carried by the 404 fallback.
func (d *Dispatcher) SetNotFoundMessage(msg string) { d.notFoundMessage = msg }

// Dispatch walks the registry in registration order and returns the Result of
// the first route whose pattern and verb both match. The first match is
// absolute: no later candidate is examined even if it would also match.
//
// Outcomes:
//   - A matching route ran to completion: its Result is returned with a nil
//     error. This includes whatever status the controller chose.
//   - No route matched structurally and method-wise: a StringResult with
//     StatusNotFound and the configured not-found message, nil error. This is
//     a normal outcome, not an error.
//   - A middleware refused the request: a nil Result and a *Rejection error.
//     The caller translates it into a client-facing response.
//   - The route's registration is broken (no controller, unknown action,
//     non-Result return): a nil Result and a *ConfigError. This is a
//     programming mistake surfaced loudly, never a 404.
func (d *Dispatcher) Dispatch() (Result, error) {
	uri := d.uri
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}

	for _, rt := range d.registry.Routes() {
		// A fresh request per matching attempt keeps candidate state isolated.
		req := request.New(d.method, uri, d.headers, d.input)
		if !req.TryMatch(rt.pattern) {
			continue
		}
		if !rt.method.Matches(d.method) {
			continue
		}
		return d.run(rt, req)
	}

	return Message(StatusNotFound, d.notFoundMessage), nil
}

// run executes the middleware chain and controller action for a matched
// route.
func (d *Dispatcher) run(rt *Route, req *request.Request) (Result, error) {
	chain := rt.chain()

	// Group-level middlewares run before route-level ones; each sees the
	// effects of its predecessors on the shared request. The first failure
	// aborts the dispatch.
	for _, mw := range chain {
		if err := mw.Handle(req); err != nil {
			var rej *Rejection
			if errors.As(err, &rej) {
				return nil, err
			}
			return nil, &Rejection{Code: StatusForbidden, Detail: err.Error(), cause: err}
		}
	}

	if rt.controller == nil {
		return nil, newConfigError(rt, "no controller factory registered")
	}
	ctrl := rt.controller()
	if ctrl == nil {
		return nil, newConfigError(rt, "controller factory returned nil")
	}
	if aware, ok := ctrl.(RequestAware); ok {
		aware.SetRequest(req)
	}

	act, ok := ctrl.Actions()[rt.action]
	if !ok || act == nil {
		return nil, newConfigError(rt, "controller has no such action")
	}

	out := act(req)
	res, ok := out.(Result)
	if !ok || res == nil {
		return nil, newConfigError(rt, "action returned %T, not a Result", out)
	}

	d.terminate(chain, req, res)
	return res, nil
}

// terminate runs the optional post-response hooks in chain order after the
// Result is fully prepared. Middlewares without the capability are skipped;
// panicking hooks are contained so a logging hook can never corrupt the
// response.
func (d *Dispatcher) terminate(chain []Middleware, req *request.Request, res Result) {
	for _, mw := range chain {
		t, ok := mw.(Terminator)
		if !ok {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					d.Logger().Error("terminate hook panicked", "pattern", req.Pattern(), "panic", r)
				}
			}()
			t.Terminate(req, res)
		}()
	}
}
