package simpleapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleapi/simpleapi/v2"
)

type greetController struct{}

func newGreetController() simpleapi.Controller { return greetController{} }

func (greetController) Actions() map[string]simpleapi.Action {
	return map[string]simpleapi.Action{
		"hello": func(r *simpleapi.Request) any {
			return simpleapi.Data(simpleapi.StatusOK, map[string]string{
				"greeting": "hello " + r.Param("name"),
			})
		},
	}
}

func TestRootPackageEndToEnd(t *testing.T) {
	reg := simpleapi.NewRegistry()
	reg.GET("/greet/{name}", newGreetController, "hello")

	srv := simpleapi.NewServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/greet/ada", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"greeting":"hello ada"}`, rec.Body.String())
}

func TestRootPackageDispatcher(t *testing.T) {
	reg := simpleapi.NewRegistry()
	reg.GET("/greet/{name}", newGreetController, "hello")

	d := simpleapi.NewDispatcher(reg, "get", "/greet/grace", nil, nil)
	res, err := d.Dispatch()
	require.NoError(t, err)
	assert.Equal(t, simpleapi.StatusOK, res.Status())
}

func TestRootPackageMethodOf(t *testing.T) {
	m, ok := simpleapi.MethodOf("get")
	require.True(t, ok)
	assert.Equal(t, simpleapi.GET, m)

	_, ok = simpleapi.MethodOf("TELEPORT")
	assert.False(t, ok)
}

func TestRootPackageMatch(t *testing.T) {
	params, ok := simpleapi.Match("/api/user/{userId}", "/api/user/42")
	require.True(t, ok)
	assert.Equal(t, "42", params.ByName("userId"))
}
