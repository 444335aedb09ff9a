package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/viper"
)

const (
	DefaultModelName   = "gpt-4o-mini"
	DefaultCVUploadDir = "./candidate_cv/"

	EnvModelName   = "MODEL_NAME"
	EnvCVUploadDir = "CV_UPLOAD_DIR"
)

// Settings is read-only once loaded. Copy it freely.
type Settings struct {
	modelName   string
	cvUploadDir string
}

func (s Settings) ModelName() string { return s.modelName }

func (s Settings) CVUploadDir() string { return s.cvUploadDir }

func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("model_name", s.modelName),
		slog.String("cv_upload_dir", s.cvUploadDir),
	)
}

// field binds one setting: viper key, environment key, default, coercion and
// where the coerced value lands.
type field struct {
	key    string
	env    string
	def    any
	coerce coercer
	assign func(*Settings, any)
}

var fields = []field{
	{
		key:    "model_name",
		env:    EnvModelName,
		def:    DefaultModelName,
		coerce: asString,
		assign: func(s *Settings, v any) { s.modelName = v.(string) },
	},
	{
		key:    "cv_upload_dir",
		env:    EnvCVUploadDir,
		def:    DefaultCVUploadDir,
		coerce: asString,
		assign: func(s *Settings, v any) { s.cvUploadDir = v.(string) },
	},
}

// Load resolves every field from the environment or its default.
func Load() (Settings, error) {
	return load(fields, os.Environ())
}

var shared = sync.OnceValues(Load)

// Shared returns the process-wide settings, loading them on first use.
func Shared() (Settings, error) {
	return shared()
}

func load(table []field, environ []string) (Settings, error) {
	v := viper.New()
	// A variable that is set wins even when empty.
	v.AllowEmptyEnv(true)

	for _, f := range table {
		v.SetDefault(f.key, f.def)
		if err := v.BindEnv(append([]string{f.key}, envNames(f.env, environ)...)...); err != nil {
			return Settings{}, fmt.Errorf("bind %s: %w", f.env, err)
		}
	}

	var s Settings
	for _, f := range table {
		raw := v.Get(f.key)
		val, err := f.coerce.fn(raw)
		if err != nil {
			return Settings{}, &ConfigurationError{
				Field: f.env,
				Value: fmt.Sprint(raw),
				Type:  f.coerce.typ,
				Err:   err,
			}
		}
		f.assign(&s, val)
	}
	return s, nil
}
