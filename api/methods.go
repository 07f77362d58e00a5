package api

import "strings"

// Method is the HTTP request verb used for route registration and dispatch.
// Routes are always registered with one of the constants below; the raw
// transport method string is compared case-insensitively via Matches, so a
// client sending "get" reaches a route registered for GET.
type Method string

// Supported request verbs. MethodNone is an internal placeholder returned by
// MethodOf for unrecognized method strings and never matches any route.
const (
	GET        Method = "GET"
	POST       Method = "POST"
	PUT        Method = "PUT"
	PATCH      Method = "PATCH"
	DELETE     Method = "DELETE"
	OPTIONS    Method = "OPTIONS"
	HEAD       Method = "HEAD"
	MethodNone Method = "NONE"
)

// methodNames maps canonical method strings to their typed values for request
// parsing. Lookup through MethodOf folds case first.
var methodNames = map[string]Method{
	"GET":     GET,
	"POST":    POST,
	"PUT":     PUT,
	"PATCH":   PATCH,
	"DELETE":  DELETE,
	"OPTIONS": OPTIONS,
	"HEAD":    HEAD,
}

// MethodOf converts a raw transport method string into a Method.
// The comparison is case-insensitive. Unrecognized strings yield
// (MethodNone, false).
//
// Example:
//
//	m, ok := api.MethodOf("get") // GET, true
func MethodOf(raw string) (Method, bool) {
	if m, ok := methodNames[raw]; ok {
		return m, true
	}
	if m, ok := methodNames[strings.ToUpper(raw)]; ok {
		return m, true
	}
	return MethodNone, false
}

// Matches reports whether the raw transport method string names this verb.
// Comparison is case-insensitive per the dispatch contract.
func (m Method) Matches(raw string) bool {
	return m != MethodNone && strings.EqualFold(string(m), raw)
}

// String returns the canonical upper-case form of the verb.
func (m Method) String() string { return string(m) }
