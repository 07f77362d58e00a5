package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/simpleapi/simpleapi/v2/request"
)

// inputEchoController returns the merged input so transport tests can assert
// on query/body collection.
type inputEchoController struct{}

func newInputEchoController() Controller { return inputEchoController{} }

func (inputEchoController) Actions() map[string]Action {
	return map[string]Action{
		"echo": func(r *request.Request) any {
			return Data(StatusOK, map[string]any{
				"q":    r.InputString("q"),
				"name": r.InputString("name"),
			})
		},
	}
}

func newTestServer(reg *Registry) *Server {
	srv := NewServer(reg)
	srv.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return srv
}

func TestServerWritesJSONEnvelope(t *testing.T) {
	reg := NewRegistry()
	reg.GET("/api/user/{userId}", newEchoController, "show")
	srv := newTestServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/user/42", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"pattern":"/api/user/{userId}","params":{"userId":"42"}}`, rec.Body.String())
}

func TestServerNotFound(t *testing.T) {
	reg := NewRegistry()
	srv := newTestServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"The requested resource was not found."}`, rec.Body.String())
}

func TestServerMergesQueryAndJSONBody(t *testing.T) {
	reg := NewRegistry()
	reg.POST("/echo", newInputEchoController, "echo")
	srv := newTestServer(reg)

	body := strings.NewReader(`{"name":"ada"}`)
	req := httptest.NewRequest(http.MethodPost, "/echo?q=search", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.JSONEq(t, `{"q":"search","name":"ada"}`, rec.Body.String())
}

func TestServerJSONBodyTypedValues(t *testing.T) {
	reg := NewRegistry()
	reg.POST("/items", func() Controller { return typedInputController{} }, "create")
	srv := newTestServer(reg)

	body := strings.NewReader(`{"count":3,"active":true}`)
	req := httptest.NewRequest(http.MethodPost, "/items", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3,"active":true}`, rec.Body.String())
}

type typedInputController struct{}

func (typedInputController) Actions() map[string]Action {
	return map[string]Action{
		"create": func(r *request.Request) any {
			return Data(StatusOK, map[string]any{
				"count":  r.InputInt("count"),
				"active": r.InputBool("active"),
			})
		},
	}
}

func TestServerFormBody(t *testing.T) {
	reg := NewRegistry()
	reg.POST("/echo", newInputEchoController, "echo")
	srv := newTestServer(reg)

	body := strings.NewReader("name=grace")
	req := httptest.NewRequest(http.MethodPost, "/echo", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.JSONEq(t, `{"q":"","name":"grace"}`, rec.Body.String())
}

func TestServerTranslatesRejection(t *testing.T) {
	reg := NewRegistry()
	reg.GET("/x", newBareController, "ping",
		MiddlewareFunc(func(r *request.Request) error {
			return Reject(StatusUnauthorized, "missing bearer token")
		}),
	)
	srv := newTestServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"errors":"missing bearer token"}`, rec.Body.String())
}

func TestServerHidesConfigError(t *testing.T) {
	reg := NewRegistry()
	reg.GET("/broken", newBareController, "noSuchAction")
	srv := newTestServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Registration detail must not leak to clients.
	assert.JSONEq(t, `{"message":"Internal server error."}`, rec.Body.String())
}

func TestServerHeadersReachControllers(t *testing.T) {
	reg := NewRegistry()
	reg.GET("/hdr", func() Controller { return headerController{} }, "show")
	srv := newTestServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/hdr", nil)
	req.Header.Set("X-Custom", "value")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.JSONEq(t, `{"custom":"value"}`, rec.Body.String())
}

type headerController struct{}

func (headerController) Actions() map[string]Action {
	return map[string]Action{
		"show": func(r *request.Request) any {
			return Data(StatusOK, map[string]string{"custom": r.Header("X-Custom")})
		},
	}
}

func TestServeFastHTTP(t *testing.T) {
	reg := NewRegistry()
	reg.GET("/api/user/{userId}", newEchoController, "show")
	srv := newTestServer(reg)

	var fctx fasthttp.RequestCtx
	var freq fasthttp.Request
	freq.Header.SetMethod(fasthttp.MethodGet)
	freq.SetRequestURI("/api/user/7?verbose=1")
	fctx.Init(&freq, nil, nil)

	srv.ServeFastHTTP(&fctx)

	assert.Equal(t, fasthttp.StatusOK, fctx.Response.StatusCode())
	assert.Equal(t, "application/json; charset=utf-8", string(fctx.Response.Header.ContentType()))
	assert.JSONEq(t, `{"pattern":"/api/user/{userId}","params":{"userId":"7"}}`, string(fctx.Response.Body()))
}

func TestServeFastHTTPNotFound(t *testing.T) {
	reg := NewRegistry()
	srv := newTestServer(reg)

	var fctx fasthttp.RequestCtx
	var freq fasthttp.Request
	freq.Header.SetMethod(fasthttp.MethodPost)
	freq.SetRequestURI("/none")
	fctx.Init(&freq, nil, nil)

	srv.ServeFastHTTP(&fctx)

	assert.Equal(t, fasthttp.StatusNotFound, fctx.Response.StatusCode())
	assert.JSONEq(t, `{"message":"The requested resource was not found."}`, string(fctx.Response.Body()))
}

func TestServerRegistryAccessor(t *testing.T) {
	reg := NewRegistry()
	srv := NewServer(reg)
	require.Same(t, reg, srv.Registry())
}
