package api

import jsoniter "github.com/json-iterator/go"

// High-performance JSON configurations used for envelope serialization.
var (
	// jsoniterEscape matches encoding/json behavior (HTML escaping on).
	jsoniterEscape = jsoniter.ConfigCompatibleWithStandardLibrary

	// jsoniterFast is the fastest configuration, used where encoding/json
	// compatibility is not at stake: decoding request body input on the
	// transports.
	jsoniterFast = jsoniter.ConfigFastest
)

// Result is the closed response envelope returned by every controller action.
// Exactly three variants exist: StringResult, DataResult and ErrorResult.
// Each carries exactly one Status and serializes to exactly one JSON object;
// the variant envelopes use disjoint keys ("message", caller-controlled,
// "errors") so no cross-variant collision is possible.
//
// The dispatcher rejects any action return value that is not one of the three
// variants with a ConfigError, so transports only ever see these shapes.
type Result interface {
	// Status returns the single HTTP status carried by the result.
	Status() Status
	// Envelope returns the value serialized as the JSON response body.
	Envelope() any
}

// messageEnvelope is the wire shape of a StringResult: {"message": ...}.
type messageEnvelope struct {
	Message string `json:"message"`
}

// errorsEnvelope is the wire shape of an ErrorResult: {"errors": ...}.
type errorsEnvelope struct {
	Errors any `json:"errors"`
}

// StringResult is a human-readable message with a status code.
// Wire shape: {"message": "..."}.
type StringResult struct {
	code    Status
	message string
}

// Message constructs a StringResult with the given status and text.
//
// Example:
//
//	return api.Message(api.StatusCreated, "user created")
func Message(code Status, message string) StringResult {
	return StringResult{code: code, message: message}
}

// OK is shorthand for a 200 StringResult.
func OK(message string) StringResult { return Message(StatusOK, message) }

func (r StringResult) Status() Status { return r.code }
func (r StringResult) Envelope() any  { return messageEnvelope{Message: r.message} }

// Message returns the carried text. Useful for tests and logging; the wire
// representation always goes through Envelope.
func (r StringResult) Message() string { return r.message }

// DataResult carries an arbitrary JSON-serializable payload which is written
// to the wire directly, so the caller controls the body shape entirely.
type DataResult struct {
	code Status
	data any
}

// Data constructs a DataResult with the given status and payload.
//
// Example:
//
//	return api.Data(api.StatusOK, map[string]any{"id": 42})
func Data(code Status, data any) DataResult {
	return DataResult{code: code, data: data}
}

func (r DataResult) Status() Status { return r.code }
func (r DataResult) Envelope() any  { return r.data }

// Data returns the carried payload.
func (r DataResult) Data() any { return r.data }

// ErrorResult carries client-facing validation or rejection detail, either a
// single string or a field -> messages mapping. Wire shape: {"errors": ...}.
type ErrorResult struct {
	code   Status
	errors any
}

// Errors constructs an ErrorResult. errs is conventionally a string or a
// map[string][]string of field errors.
//
// Example:
//
//	return api.Errors(api.StatusUnprocessable, map[string][]string{
//		"email": {"is required"},
//	})
func Errors(code Status, errs any) ErrorResult {
	return ErrorResult{code: code, errors: errs}
}

func (r ErrorResult) Status() Status { return r.code }
func (r ErrorResult) Envelope() any  { return errorsEnvelope{Errors: r.errors} }

// Errors returns the carried error detail.
func (r ErrorResult) Errors() any { return r.errors }

// MarshalResult serializes a Result's envelope to its documented JSON shape.
// Serialization matches encoding/json semantics (HTML escaping on) while
// using jsoniter for speed.
func MarshalResult(r Result) ([]byte, error) {
	return jsoniterEscape.Marshal(r.Envelope())
}
