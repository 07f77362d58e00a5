package middlewares

import (
	"log/slog"
	"time"

	"github.com/simpleapi/simpleapi/v2/api"
	"github.com/simpleapi/simpleapi/v2/request"
)

// Logging records one line per dispatched request. Handle notes the start
// time; Terminate runs after the Result is prepared and logs method, pattern,
// status and duration. Because Terminate is the optional capability, removing
// it would silently turn this into a no-op logger, so both hooks live here.
type Logging struct {
	Logger *slog.Logger
}

// NewLogging constructs a Logging middleware. A nil logger falls back to
// slog.Default at log time.
func NewLogging(l *slog.Logger) *Logging { return &Logging{Logger: l} }

func (m *Logging) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

const startKey = "_log_start"

// Handle implements api.Middleware.
func (m *Logging) Handle(r *request.Request) error {
	r.SetInput(startKey, time.Now())
	return nil
}

// Terminate implements api.Terminator.
func (m *Logging) Terminate(r *request.Request, res api.Result) {
	attrs := []any{
		"method", r.Method(),
		"pattern", r.Pattern(),
		"uri", r.URI(),
		"status", res.Status().Value(),
	}
	if start, ok := r.Input(startKey).(time.Time); ok {
		attrs = append(attrs, "dur", time.Since(start))
	}
	if id, ok := r.Input(RequestIDKey).(string); ok && id != "" {
		attrs = append(attrs, "request_id", id)
	}
	m.logger().Info("handled", attrs...)
}
