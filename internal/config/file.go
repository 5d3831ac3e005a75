package config

// This file implements the optional YAML config file layer. File values sit
// between DefaultConfig and CLI flags in precedence: the file is applied
// first, then flags are parsed with the merged values as their defaults.

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when --config is
// not given. A missing default file is not an error.
const DefaultConfigFile = "scaleup.yaml"

// LoadFile overlays cfg with values from a YAML config file. When path is
// empty, [DefaultConfigFile] is tried and silently skipped if absent; an
// explicit path that cannot be read is an error.
func LoadFile(path string, cfg *Config) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
