package config

import "fmt"

// ConfigurationError reports a value that could not be coerced to its
// field's type.
type ConfigurationError struct {
	Field string
	Value string
	Type  string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q (want %s): %v", e.Field, e.Value, e.Type, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
