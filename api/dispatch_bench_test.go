package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/simpleapi/simpleapi/v2/request"
)

// BenchmarkDispatch_Static measures a bare dispatch against a literal route.
func BenchmarkDispatch_Static(b *testing.B) {
	reg := NewRegistry()
	reg.GET("/ping", newBareController, "ping")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := NewDispatcher(reg, "GET", "/ping", nil, nil)
		if _, err := d.Dispatch(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDispatch_PathParams measures parameter extraction during dispatch.
func BenchmarkDispatch_PathParams(b *testing.B) {
	reg := NewRegistry()
	reg.GET("/users/{id}/posts/{postId}", newEchoController, "show")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := NewDispatcher(reg, "GET", "/users/42/posts/99", nil, nil)
		if _, err := d.Dispatch(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDispatch_DeepRegistry measures the linear scan cost with many
// non-matching predecessors, the worst case for first-match-wins.
func BenchmarkDispatch_DeepRegistry(b *testing.B) {
	reg := NewRegistry()
	for i := 0; i < 100; i++ {
		reg.POST("/static/route", newBareController, "ping")
	}
	reg.GET("/target/{id}", newEchoController, "show")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := NewDispatcher(reg, "GET", "/target/7", nil, nil)
		if _, err := d.Dispatch(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDispatch_Middlewares measures a grouped route with a four-deep
// middleware chain.
func BenchmarkDispatch_Middlewares(b *testing.B) {
	noop := MiddlewareFunc(func(*request.Request) error { return nil })
	reg := NewRegistry()
	g := reg.Group("g", noop, noop)
	g.GET("/x", newBareController, "ping", noop, noop)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := NewDispatcher(reg, "GET", "/x", nil, nil)
		if _, err := d.Dispatch(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatch measures the raw pattern matcher.
func BenchmarkMatch(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := request.Match("/api/user/{userId}/files", "/api/user/42/files"); !ok {
			b.Fatal("expected match")
		}
	}
}

// BenchmarkMarshalResult_Fastest compares the fastest jsoniter configuration
// against the escaping default used on the wire.
func BenchmarkMarshalResult_Fastest(b *testing.B) {
	env := Data(StatusOK, map[string]any{"message": "hello world", "count": 42}).Envelope()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := jsoniterFast.Marshal(env); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkServer_HTTP measures the full net/http transport round trip.
func BenchmarkServer_HTTP(b *testing.B) {
	reg := NewRegistry()
	reg.GET("/api/user/{userId}", newEchoController, "show")
	srv := newTestServer(reg)

	req := httptest.NewRequest(http.MethodGet, "/api/user/42", nil)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
	}
}
