package config

import "github.com/spf13/cast"

type coercer struct {
	typ string
	fn  func(any) (any, error)
}

var (
	asString = coercer{typ: "string", fn: func(v any) (any, error) { return cast.ToStringE(v) }}

	// Not bound to any field yet.
	asInt      = coercer{typ: "int", fn: func(v any) (any, error) { return cast.ToIntE(v) }}
	asBool     = coercer{typ: "bool", fn: func(v any) (any, error) { return cast.ToBoolE(v) }}
	asDuration = coercer{typ: "duration", fn: func(v any) (any, error) { return cast.ToDurationE(v) }}
)
