package scanner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a scan. It is passed explicitly so classification output
// is a pure function of (input, configuration).
type Config struct {
	// Debug echoes the structural path with every emitted record.
	Debug bool `yaml:"debug"`
	// KeepGoing skips a file whose parse fails instead of aborting the run.
	KeepGoing bool `yaml:"keepGoing"`
	// Workers bounds concurrent file processing; 0 means one worker per CPU.
	Workers int `yaml:"workers"`
	// RelativePaths reports file paths relative to the detected project root.
	RelativePaths bool `yaml:"relativePaths"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}
