package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no config path is given.
const DefaultConfigFile = ".coursenotes.yaml"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds the settings a config file may provide. Flags override it.
type Config struct {
	// Output is the directory course folders are created in.
	Output  string `yaml:"output"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{Output: "."}
}

// LoadConfig reads a YAML config file. An empty path means DefaultConfigFile,
// which may be absent; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if cfg.Output == "" {
		cfg.Output = "."
	}
	return cfg, nil
}
