// Package simpleapi re-exports the dispatch core so applications can depend
// on a single import path. The implementation lives in the api and request
// packages; this package only aliases their public surface.
//
// Minimal usage:
//
//	reg := simpleapi.NewRegistry()
//	reg.GET("/api/user/{userId}", NewUserController, "show")
//	srv := simpleapi.NewServer(reg)
//	_ = http.ListenAndServe(":8080", srv)
package simpleapi

import (
	"github.com/simpleapi/simpleapi/v2/api"
	"github.com/simpleapi/simpleapi/v2/request"
)

// Core types.
type (
	Method            = api.Method
	Status            = api.Status
	Result            = api.Result
	StringResult      = api.StringResult
	DataResult        = api.DataResult
	ErrorResult       = api.ErrorResult
	Route             = api.Route
	Group             = api.Group
	Registry          = api.Registry
	Dispatcher        = api.Dispatcher
	Server            = api.Server
	Middleware        = api.Middleware
	MiddlewareFunc    = api.MiddlewareFunc
	Terminator        = api.Terminator
	Controller        = api.Controller
	RequestAware      = api.RequestAware
	ControllerFactory = api.ControllerFactory
	Action            = api.Action
	ConfigError       = api.ConfigError
	Rejection         = api.Rejection
	Request           = request.Request
)

// HTTP verbs.
const (
	GET     = api.GET
	POST    = api.POST
	PUT     = api.PUT
	PATCH   = api.PATCH
	DELETE  = api.DELETE
	OPTIONS = api.OPTIONS
	HEAD    = api.HEAD
)

// Common status codes.
const (
	StatusOK                  = api.StatusOK
	StatusCreated             = api.StatusCreated
	StatusNoContent           = api.StatusNoContent
	StatusBadRequest          = api.StatusBadRequest
	StatusUnauthorized        = api.StatusUnauthorized
	StatusForbidden           = api.StatusForbidden
	StatusNotFound            = api.StatusNotFound
	StatusMethodNotAllowed    = api.StatusMethodNotAllowed
	StatusConflict            = api.StatusConflict
	StatusUnprocessable       = api.StatusUnprocessable
	StatusTooManyRequests     = api.StatusTooManyRequests
	StatusInternalServerError = api.StatusInternalServerError
)

// Constructors and helpers.
var (
	NewRegistry   = api.NewRegistry
	NewDispatcher = api.NewDispatcher
	NewServer     = api.NewServer
	Message       = api.Message
	OK            = api.OK
	Data          = api.Data
	Errors        = api.Errors
	Reject        = api.Reject
	MethodOf      = api.MethodOf
	MarshalResult = api.MarshalResult
	NewRequest    = request.New
	Match         = request.Match
)
