package config

type settingsYAML struct {
	ModelName   string `yaml:"model_name"`
	CVUploadDir string `yaml:"cv_upload_dir"`
}

// MarshalYAML implements yaml.Marshaler.
func (s Settings) MarshalYAML() (any, error) {
	return settingsYAML{ModelName: s.modelName, CVUploadDir: s.cvUploadDir}, nil
}
