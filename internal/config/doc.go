// Package config loads the candidate service settings.
//
// Values come from the process environment and fall back to declared
// defaults. Environment keys are matched case-insensitively (see the field
// table in `internal/config/config.go`).
package config
