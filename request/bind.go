package request

import "github.com/mitchellh/mapstructure"

// Bind decodes the merged query/body input map into v using mapstructure.
// Field names follow `json` tags; input is weakly typed, so "42" binds to an
// int field and JSON float64 numbers bind to integer fields.
//
// Example:
//
//	var in struct {
//		Page  int    `json:"page"`
//		Query string `json:"q"`
//	}
//	if err := r.Bind(&in); err != nil { ... }
func (r *Request) Bind(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	if r.input == nil {
		return dec.Decode(map[string]any{})
	}
	return dec.Decode(r.input)
}

// BindParams decodes the bound path parameters into v, following the same
// rules as Bind.
//
// Example:
//
//	var p struct {
//		UserID int `json:"userId"`
//	}
//	if err := r.BindParams(&p); err != nil { ... }
func (r *Request) BindParams(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	params := make(map[string]any, r.paramCount)
	for k, val := range r.Params() {
		params[k] = val
	}
	return dec.Decode(params)
}
