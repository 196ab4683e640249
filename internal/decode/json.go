// Package decode maps parsed JSON values onto the typed records of
// internal/domain, one decoder per endpoint family. Decoders are strict
// about required fields and explicit about optional ones: a missing
// required field fails the whole decode with a DecodeError naming the
// field, and an optional field that is absent (or null) stays absent in
// the record instead of defaulting.
package decode

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// obj wraps one JSON object together with its dotted path from the
// response root, so field errors name the full location.
type obj struct {
	v    *fastjson.Value
	path string
}

func root(v *fastjson.Value) (obj, error) {
	if v == nil || v.Type() != fastjson.TypeObject {
		return obj{}, &domain.DecodeError{Reason: "response body is not a JSON object"}
	}
	return obj{v: v}, nil
}

func (o obj) loc(name string) string {
	if o.path == "" {
		return name
	}
	return o.path + "." + name
}

func (o obj) missing(name string) error {
	return &domain.DecodeError{Field: o.loc(name), Reason: "required field missing"}
}

func (o obj) mismatch(name, want string) error {
	return &domain.DecodeError{Field: o.loc(name), Reason: "expected " + want}
}

// present reports whether the key exists with a non-null value. A key
// present with null counts as absent for record building, but is still
// distinguishable via o.v.Exists where a decoder needs it.
func (o obj) present(name string) bool {
	f := o.v.Get(name)
	return f != nil && f.Type() != fastjson.TypeNull
}

// child returns the required sub-object name.
func (o obj) child(name string) (obj, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return obj{}, o.missing(name)
	}
	if f.Type() != fastjson.TypeObject {
		return obj{}, o.mismatch(name, "object")
	}
	return obj{v: f, path: o.loc(name)}, nil
}

// array returns the required array name as element objects.
func (o obj) array(name string) ([]obj, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return nil, o.missing(name)
	}
	items, err := f.Array()
	if err != nil {
		return nil, o.mismatch(name, "array")
	}
	out := make([]obj, len(items))
	for i, it := range items {
		out[i] = obj{v: it, path: o.loc(name)}
	}
	return out, nil
}

// raw returns the array name as copied raw JSON, undecoded.
func (o obj) raw(name string) ([]json.RawMessage, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return nil, o.missing(name)
	}
	items, err := f.Array()
	if err != nil {
		return nil, o.mismatch(name, "array")
	}
	out := make([]json.RawMessage, len(items))
	for i, it := range items {
		out[i] = it.MarshalTo(nil)
	}
	return out, nil
}

func (o obj) str(name string) (string, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return "", o.missing(name)
	}
	b, err := f.StringBytes()
	if err != nil {
		return "", o.mismatch(name, "string")
	}
	return string(b), nil
}

// optStr returns "" when the key is absent or null.
func (o obj) optStr(name string) (string, error) {
	if !o.present(name) {
		return "", nil
	}
	return o.str(name)
}

// optStrPtr keeps the absent/present distinction.
func (o obj) optStrPtr(name string) (*string, error) {
	if !o.present(name) {
		return nil, nil
	}
	s, err := o.str(name)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (o obj) boolean(name string) (bool, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return false, o.missing(name)
	}
	b, err := f.Bool()
	if err != nil {
		return false, o.mismatch(name, "bool")
	}
	return b, nil
}

// optBool returns false when the key is absent or null.
func (o obj) optBool(name string) (bool, error) {
	if !o.present(name) {
		return false, nil
	}
	return o.boolean(name)
}

func (o obj) integer(name string) (int, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return 0, o.missing(name)
	}
	n, err := f.Int()
	if err != nil {
		return 0, o.mismatch(name, "integer")
	}
	return n, nil
}

// optInt returns 0 when the key is absent or null.
func (o obj) optInt(name string) (int, error) {
	if !o.present(name) {
		return 0, nil
	}
	return o.integer(name)
}

func (o obj) dec(name string) (decimal.Decimal, error) {
	f := o.v.Get(name)
	if f == nil || f.Type() == fastjson.TypeNull {
		return decimal.Decimal{}, o.missing(name)
	}
	n, err := f.Float64()
	if err != nil {
		return decimal.Decimal{}, o.mismatch(name, "number")
	}
	return decimal.NewFromFloat(n), nil
}

// optDec returns nil when the key is absent or null.
func (o obj) optDec(name string) (*decimal.Decimal, error) {
	if !o.present(name) {
		return nil, nil
	}
	d, err := o.dec(name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
