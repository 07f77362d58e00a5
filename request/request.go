// Package request holds the per-dispatch request object: raw headers, the
// merged query/body input map, and the path parameters resolved by pattern
// matching. A Request is constructed fresh for each matching attempt and is
// owned exclusively by one dispatch cycle; it is never shared across requests
// or goroutines.
package request

import (
	"net/textproto"
	"strconv"

	router "github.com/julienschmidt/httprouter"
)

// Request carries the raw facts of one HTTP request through matching,
// middleware and controller invocation. Middlewares mutate the shared input
// map via SetInput, so a later middleware (and finally the controller) sees
// the effects of earlier ones.
//
// Typical usage inside a controller action:
//
//	func (c *UserController) files(r *request.Request) any {
//		id := r.ParamInt("userId", 0)   // from the matched pattern
//		page := r.InputInt("page", 1)   // from merged query/body input
//		token := r.Header("Authorization")
//		_ = id; _ = page; _ = token
//		return api.Data(api.StatusOK, listFiles(id, page))
//	}
type Request struct {
	method  string
	uri     string
	headers map[string]string
	input   map[string]any

	// Stack-allocated route parameters cover typical routes without heap
	// allocation; paramSlice is the fallback for deeper patterns.
	params     [8]router.Param
	paramSlice router.Params
	paramCount uint8

	pattern string // matched route pattern, set by TryMatch
}

// New constructs a Request from raw transport facts. headers and input may be
// nil; accessors treat nil maps as empty.
func New(method, uri string, headers map[string]string, input map[string]any) *Request {
	return &Request{
		method:  method,
		uri:     uri,
		headers: headers,
		input:   input,
	}
}

// Method returns the raw HTTP method string as received from the transport.
func (r *Request) Method() string { return r.method }

// URI returns the raw request URI path (query string already stripped by the
// transport collaborator).
func (r *Request) URI() string { return r.uri }

// Pattern returns the matched route pattern (e.g. "/api/user/{userId}/files"),
// or "" before a successful TryMatch.
func (r *Request) Pattern() string { return r.pattern }

// TryMatch attempts to match the given route pattern against the request URI.
// On success the extracted parameters and the pattern are bound into the
// request and true is returned; on failure the request is left untouched.
func (r *Request) TryMatch(pattern string) bool {
	params, ok := Match(pattern, r.uri)
	if !ok {
		return false
	}
	r.pattern = pattern
	r.bindParams(params)
	return true
}

// bindParams stores extracted parameters, preferring the stack array.
func (r *Request) bindParams(ps router.Params) {
	n := len(ps)
	r.paramCount = uint8(n)
	if n <= len(r.params) {
		copy(r.params[:], ps)
		r.paramSlice = nil
		return
	}
	r.paramSlice = ps
}

// Param returns a path parameter by name, or "" if the pattern did not bind
// it.
//
// Example:
//
//	// Pattern: /api/user/{userId}/files, URI: /api/user/42/files
//	r.Param("userId") // "42"
func (r *Request) Param(name string) string {
	if r.paramSlice == nil {
		for i := uint8(0); i < r.paramCount; i++ {
			if r.params[i].Key == name {
				return r.params[i].Value
			}
		}
		return ""
	}
	return r.paramSlice.ByName(name)
}

// Params returns the bound parameters as a name -> value map. Intended for
// binding and introspection; Param is cheaper for single lookups.
func (r *Request) Params() map[string]string {
	out := make(map[string]string, r.paramCount)
	if r.paramSlice == nil {
		for i := uint8(0); i < r.paramCount; i++ {
			out[r.params[i].Key] = r.params[i].Value
		}
		return out
	}
	for _, p := range r.paramSlice {
		out[p.Key] = p.Value
	}
	return out
}

// ParamInt returns the named path parameter parsed as int.
// Returns def (or 0) on missing or parse error.
func (r *Request) ParamInt(name string, def ...int) int {
	s := r.Param(name)
	fallback := 0
	if len(def) > 0 {
		fallback = def[0]
	}
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return fallback
	}
	return int(v)
}

// ParamInt64 returns the named path parameter parsed as int64.
// Returns def (or 0) on missing or parse error.
func (r *Request) ParamInt64(name string, def ...int64) int64 {
	s := r.Param(name)
	var fallback int64
	if len(def) > 0 {
		fallback = def[0]
	}
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

// ParamBool returns the named path parameter parsed as bool. Accepts the same
// forms as strconv.ParseBool. Returns def (or false) on missing or parse
// error.
func (r *Request) ParamBool(name string, def ...bool) bool {
	s := r.Param(name)
	fallback := false
	if len(def) > 0 {
		fallback = def[0]
	}
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}

// Header returns a request header by name. Lookup tries the name as given,
// then its canonical MIME form, so Header("content-type") finds a header
// stored as "Content-Type".
func (r *Request) Header(name string) string {
	if r.headers == nil {
		return ""
	}
	if v, ok := r.headers[name]; ok {
		return v
	}
	return r.headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// Headers returns the raw header map. The map is shared with the transport;
// treat it as read-only.
func (r *Request) Headers() map[string]string { return r.headers }

// Input returns a merged query/body input value by key, or nil if absent.
func (r *Request) Input(key string) any {
	if r.input == nil {
		return nil
	}
	return r.input[key]
}

// SetInput stores a value into the merged input map. Middlewares use this to
// pass derived data (e.g. an authenticated user id) down the chain.
func (r *Request) SetInput(key string, value any) {
	if r.input == nil {
		r.input = make(map[string]any, 1)
	}
	r.input[key] = value
}

// InputString returns an input value as a string.
// Returns def (or "") when the key is absent or the value is not a string.
func (r *Request) InputString(key string, def ...string) string {
	fallback := ""
	if len(def) > 0 {
		fallback = def[0]
	}
	v := r.Input(key)
	if v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

// InputInt returns an input value parsed as int. JSON bodies decode numbers
// as float64, so that form is accepted alongside int and numeric strings.
// Returns def (or 0) otherwise.
func (r *Request) InputInt(key string, def ...int) int {
	fallback := 0
	if len(def) > 0 {
		fallback = def[0]
	}
	switch v := r.Input(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 0); err == nil {
			return int(n)
		}
	}
	return fallback
}

// InputBool returns an input value as a bool, accepting bool values and
// strconv.ParseBool string forms. Returns def (or false) otherwise.
func (r *Request) InputBool(key string, def ...bool) bool {
	fallback := false
	if len(def) > 0 {
		fallback = def[0]
	}
	switch v := r.Input(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
