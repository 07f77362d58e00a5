package api

import (
	"strings"
	"unsafe"

	"github.com/valyala/fasthttp"
)

// ServeFastHTTP implements fasthttp.RequestHandler, dispatching with the same
// semantics as ServeHTTP. Method and path use zero-copy byte-to-string
// conversion; the strings are only read within this call.
//
// Example:
//
//	_ = fasthttp.ListenAndServe(":8080", srv.ServeFastHTTP)
func (s *Server) ServeFastHTTP(fctx *fasthttp.RequestCtx) {
	methodBytes := fctx.Method()
	pathBytes := fctx.Path()
	method := *(*string)(unsafe.Pointer(&methodBytes))
	path := *(*string)(unsafe.Pointer(&pathBytes))

	headers := make(map[string]string, 8)
	fctx.Request.Header.VisitAll(func(k, v []byte) {
		headers[string(k)] = string(v)
	})

	input := collectFastHTTPInput(fctx)

	d := NewDispatcher(s.registry, method, path, headers, input)
	d.SetLogger(s.Logger())

	res, err := d.Dispatch()
	if err != nil {
		res = s.translate(err, method, path)
	}

	b, merr := MarshalResult(res)
	if merr != nil {
		s.Logger().Error("result serialization failed", "err", merr)
		fctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	fctx.SetStatusCode(res.Status().Value())
	fctx.SetContentType(contentTypeJSON)
	fctx.SetBody(b)
}

// collectFastHTTPInput merges query args and the request body into the input
// map, with body values overriding query values on key collision.
func collectFastHTTPInput(fctx *fasthttp.RequestCtx) map[string]any {
	input := make(map[string]any)
	fctx.QueryArgs().VisitAll(func(k, v []byte) {
		input[string(k)] = string(v)
	})

	ct := string(fctx.Request.Header.ContentType())
	switch {
	case strings.HasPrefix(ct, "application/json"):
		body := fctx.PostBody()
		if len(body) == 0 {
			break
		}
		var m map[string]any
		if err := jsoniterFast.Unmarshal(body, &m); err == nil {
			for k, v := range m {
				input[k] = v
			}
		}
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"), strings.HasPrefix(ct, "multipart/"):
		fctx.PostArgs().VisitAll(func(k, v []byte) {
			input[string(k)] = string(v)
		})
	}

	return input
}
