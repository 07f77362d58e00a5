package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/simpleapi/simpleapi/v2/api"
	"github.com/simpleapi/simpleapi/v2/request"
)

// TokenAuth rejects requests that do not carry the expected bearer token in
// the Authorization header. It demonstrates the rejection path: a failed
// check aborts the dispatch before any later middleware or the controller
// runs, and the transport translates the rejection into an error envelope.
type TokenAuth struct {
	// Token is the expected bearer token. An empty token rejects everything.
	Token string
}

// Handle implements api.Middleware.
func (m TokenAuth) Handle(r *request.Request) error {
	auth := r.Header("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return api.Reject(api.StatusUnauthorized, "missing bearer token")
	}
	if m.Token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.Token)) != 1 {
		return api.Reject(api.StatusForbidden, "invalid token")
	}
	return nil
}
