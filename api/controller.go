package api

import "github.com/simpleapi/simpleapi/v2/request"

// Action is one callable controller method. It receives the dispatch's
// request and returns a value that must be one of the three Result variants;
// anything else is a ConfigError at dispatch time.
type Action func(*request.Request) any

// Controller is implemented by types whose actions are exposed as routes.
// Actions maps action names (as used at route registration) to the callable
// methods. The dispatcher constructs a fresh controller per dispatch via the
// route's factory and resolves the action by name against this map; a missing
// name is a configuration mistake, surfaced as a ConfigError rather than a
// 404.
//
// Example:
//
//	type UserController struct{}
//
//	func NewUserController() api.Controller { return &UserController{} }
//
//	func (c *UserController) Actions() map[string]api.Action {
//		return map[string]api.Action{
//			"show":  c.show,
//			"files": c.files,
//		}
//	}
type Controller interface {
	Actions() map[string]Action
}

// RequestAware is the request-injecting construction capability: a controller
// implementing it receives the dispatch's request immediately after
// construction, before its action runs. Controllers without it are simply
// constructed with no arguments.
type RequestAware interface {
	Controller
	SetRequest(*request.Request)
}

// ControllerFactory constructs a fresh controller for one dispatch. Routes
// hold a factory rather than an instance so that no controller state leaks
// between requests.
type ControllerFactory func() Controller
