// Package middlewares ships ready-made implementations of the api.Middleware
// capability: request id stamping, request logging with a terminate hook, and
// bearer-token gating. They double as reference implementations for writing
// custom middlewares.
package middlewares

import (
	"github.com/google/uuid"

	"github.com/simpleapi/simpleapi/v2/request"
)

// RequestIDHeader is the header carrying the request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the input key under which the id is stored for downstream
// middlewares and controllers.
const RequestIDKey = "_request_id"

// RequestID stamps each request with a correlation id: an incoming
// X-Request-ID header is honored, otherwise a fresh UUID is generated. The id
// is stored in the shared input map so later middlewares and the controller
// can read it.
type RequestID struct {
	// Generator overrides the id source; defaults to uuid.NewString.
	Generator func() string
}

// Handle implements api.Middleware.
func (m RequestID) Handle(r *request.Request) error {
	id := r.Header(RequestIDHeader)
	if id == "" {
		if m.Generator != nil {
			id = m.Generator()
		} else {
			id = uuid.NewString()
		}
	}
	r.SetInput(RequestIDKey, id)
	return nil
}
