package api

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"strings"
)

// Server is the shipped transport collaborator. It gathers raw request facts
// (method, URI path, headers, merged query/body input), runs a fresh
// Dispatcher per request against its registry, and writes the Result's JSON
// envelope with the proper status and Content-Type. It implements both
// http.Handler and fasthttp.RequestHandler (via ServeFastHTTP), so the same
// registry can be served over either transport.
//
// Error translation: a *Rejection becomes its conventional ErrorResult
// envelope; a *ConfigError is logged loudly and answered with a generic 500
// message, never leaking registration detail to clients.
//
// Example:
//
//	reg := api.NewRegistry()
//	reg.GET("/api/user/{userId}", NewUserController, "show")
//	srv := api.NewServer(reg)
//	_ = http.ListenAndServe(":8080", srv)
//	// or: _ = fasthttp.ListenAndServe(":8080", srv.ServeFastHTTP)
type Server struct {
	registry *Registry
	logger   *slog.Logger
}

// NewServer constructs a Server for the given registry with a JSON slog
// logger writing to stdout.
func NewServer(reg *Registry) *Server {
	return &Server{
		registry: reg,
		logger:   slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// SetLogger replaces the server logger, propagated to every dispatch.
func (s *Server) SetLogger(l *slog.Logger) { s.logger = l }

// Logger returns the configured logger, or slog.Default if none is set.
func (s *Server) Logger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// Registry returns the registry this server dispatches against.
func (s *Server) Registry() *Registry { return s.registry }

const contentTypeJSON = "application/json; charset=utf-8"

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	headers := flattenHeader(r.Header)
	input := collectInput(r)

	d := NewDispatcher(s.registry, r.Method, r.URL.Path, headers, input)
	d.SetLogger(s.Logger())

	res, err := d.Dispatch()
	if err != nil {
		res = s.translate(err, r.Method, r.URL.Path)
	}

	b, merr := MarshalResult(res)
	if merr != nil {
		s.Logger().Error("result serialization failed", "err", merr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(res.Status().Value())
	_, _ = w.Write(b)
}

// translate maps dispatch errors to client-facing results: rejections become
// their ErrorResult envelope, configuration mistakes are logged and hidden
// behind a generic 500.
func (s *Server) translate(err error, method, path string) Result {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.ToResult()
	}
	var cfg *ConfigError
	if errors.As(err, &cfg) {
		s.Logger().Error("route misconfiguration",
			"method", method, "path", path,
			"pattern", cfg.Pattern, "action", cfg.Action, "reason", cfg.Reason,
		)
	} else {
		s.Logger().Error("dispatch failed", "method", method, "path", path, "err", err)
	}
	return Message(StatusInternalServerError, "Internal server error.")
}

// flattenHeader reduces an http.Header to the single-value map the dispatch
// core consumes; for repeated headers the first value wins.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// collectInput merges query string parameters and the request body into a
// single input map. JSON bodies are decoded as an object; form bodies
// (urlencoded or multipart) contribute their fields. Body values override
// query values on key collision.
func collectInput(r *http.Request) map[string]any {
	input := make(map[string]any)
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			input[k] = vs[0]
		}
	}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case ct == "application/json":
		body, err := io.ReadAll(r.Body)
		if err != nil || len(body) == 0 {
			break
		}
		var m map[string]any
		if err := jsoniterFast.Unmarshal(body, &m); err == nil {
			for k, v := range m {
				input[k] = v
			}
		}
	case ct == "application/x-www-form-urlencoded" || strings.HasPrefix(ct, "multipart/"):
		if err := r.ParseForm(); err == nil {
			for k, vs := range r.PostForm {
				if len(vs) > 0 {
					input[k] = vs[0]
				}
			}
		}
	}

	return input
}
