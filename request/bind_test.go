package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindWeaklyTyped(t *testing.T) {
	r := New("POST", "/search", nil, map[string]any{
		"q":     "dispatch",
		"limit": "25",          // query strings arrive as strings
		"page":  float64(2),    // JSON numbers arrive as float64
		"exact": "true",
	})

	var in struct {
		Query string `json:"q"`
		Limit int    `json:"limit"`
		Page  int    `json:"page"`
		Exact bool   `json:"exact"`
	}
	require.NoError(t, r.Bind(&in))
	assert.Equal(t, "dispatch", in.Query)
	assert.Equal(t, 25, in.Limit)
	assert.Equal(t, 2, in.Page)
	assert.True(t, in.Exact)
}

func TestBindNilInput(t *testing.T) {
	r := New("GET", "/", nil, nil)
	var in struct {
		Query string `json:"q"`
	}
	require.NoError(t, r.Bind(&in))
	assert.Empty(t, in.Query)
}

func TestBindParams(t *testing.T) {
	r := New("GET", "/api/user/42/files", nil, nil)
	require.True(t, r.TryMatch("/api/user/{userId}/files"))

	var p struct {
		UserID int `json:"userId"`
	}
	require.NoError(t, r.BindParams(&p))
	assert.Equal(t, 42, p.UserID)
}
