package api

import (
	"net/http"
	"strconv"
)

// Status is the HTTP status code carried by every Result. It is a closed set
// of integer codes; Value exposes the raw number for the transport layer.
type Status int

// Common status codes. The set mirrors what controllers in a JSON API
// actually return; anything else can be produced by converting an int.
const (
	StatusOK                  Status = 200
	StatusCreated             Status = 201
	StatusNoContent           Status = 204
	StatusBadRequest          Status = 400
	StatusUnauthorized        Status = 401
	StatusForbidden           Status = 403
	StatusNotFound            Status = 404
	StatusMethodNotAllowed    Status = 405
	StatusConflict            Status = 409
	StatusUnprocessable       Status = 422
	StatusTooManyRequests     Status = 429
	StatusInternalServerError Status = 500
)

// statusTexts carries the reason phrases for the codes above. Codes outside
// the map fall back to net/http's registry.
var statusTexts = map[Status]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusNoContent:           "No Content",
	StatusBadRequest:          "Bad Request",
	StatusUnauthorized:        "Unauthorized",
	StatusForbidden:           "Forbidden",
	StatusNotFound:            "Not Found",
	StatusMethodNotAllowed:    "Method Not Allowed",
	StatusConflict:            "Conflict",
	StatusUnprocessable:       "Unprocessable Entity",
	StatusTooManyRequests:     "Too Many Requests",
	StatusInternalServerError: "Internal Server Error",
}

// Value returns the numeric status code.
func (s Status) Value() int { return int(s) }

// Text returns the reason phrase for the code, falling back to the net/http
// registry and finally to the bare number for exotic codes.
func (s Status) Text() string {
	if t, ok := statusTexts[s]; ok {
		return t
	}
	if t := http.StatusText(int(s)); t != "" {
		return t
	}
	return strconv.Itoa(int(s))
}
