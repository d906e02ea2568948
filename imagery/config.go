package imagery

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"pix/errwrap"
)

// Config tunes the imaging collaborator.
type Config struct {
	// Dir is the base directory for relative read paths.
	Dir string `yaml:"dir"`

	// Output is where the first materialized image goes. Later ones are
	// numbered: answer.png, answer-1.png, answer-2.png and so on.
	Output string `yaml:"output"`

	BlurSigma float64 `yaml:"blur_sigma"`

	// Lighten and Darken are the brightness factors for lighten and darken.
	Lighten float64 `yaml:"lighten"`
	Darken  float64 `yaml:"darken"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:    "answer.png",
		BlurSigma: 2.0,
		Lighten:   1.5,
		Darken:    0.5,
	}
}

func (obj *Config) Validate() error {
	if obj.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if obj.BlurSigma <= 0 {
		return fmt.Errorf("blur_sigma must be positive, got %g", obj.BlurSigma)
	}
	if obj.Lighten <= 0 {
		return fmt.Errorf("lighten must be positive, got %g", obj.Lighten)
	}
	if obj.Darken <= 0 {
		return fmt.Errorf("darken must be positive, got %g", obj.Darken)
	}
	return nil
}

// LoadConfig reads a yaml config from path. Keys that are missing keep their
// default values.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not read config")
	}
	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, errwrap.Wrapf(err, "could not parse config %s", path)
	}
	if err := config.Validate(); err != nil {
		return nil, errwrap.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}
