package api

import "fmt"

// ConfigError reports a programming mistake in route registration: a missing
// controller factory, an action name with no matching controller method, or an
// action returning something other than a Result variant. It is always fatal
// to the current dispatch and is never downgraded to a Result; ordinary
// request-handling code should not attempt to catch it.
type ConfigError struct {
	Pattern string // pattern of the offending route
	Action  string // registered action name
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("route %q action %q: %s", e.Pattern, e.Action, e.Reason)
}

// newConfigError builds a ConfigError for the given route.
func newConfigError(rt *Route, format string, args ...any) *ConfigError {
	return &ConfigError{
		Pattern: rt.pattern,
		Action:  rt.action,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// Rejection signals that a middleware refused to let the request proceed
// (an authorization failure, a rate limit, and so on). It propagates out of
// Dispatch as an error; translating it into a client-facing response is the
// transport collaborator's job. Detail is conventionally a string or a
// map[string][]string, matching the ErrorResult envelope.
type Rejection struct {
	Code   Status
	Detail any
	cause  error
}

// Reject constructs a Rejection with the given status and client-facing
// detail. Middlewares return it from Handle to abort the dispatch.
//
// Example:
//
//	func (m TokenAuth) Handle(r *request.Request) error {
//		if r.Header("Authorization") == "" {
//			return api.Reject(api.StatusUnauthorized, "missing bearer token")
//		}
//		return nil
//	}
func Reject(code Status, detail any) *Rejection {
	return &Rejection{Code: code, Detail: detail}
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("request rejected (%d %s): %v", r.Code.Value(), r.Code.Text(), r.Detail)
}

// Unwrap exposes the underlying middleware error when the rejection wraps
// one, keeping errors.Is/errors.As chains intact.
func (r *Rejection) Unwrap() error { return r.cause }

// ToResult renders the rejection as the conventional ErrorResult envelope.
// Shipped transports use this; custom collaborators may map rejections
// differently.
func (r *Rejection) ToResult() ErrorResult {
	code := r.Code
	if code == 0 {
		code = StatusForbidden
	}
	return Errors(code, r.Detail)
}
