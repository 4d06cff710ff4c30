package binding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk form of a loader configuration.
type overrideFile struct {
	// Overrides maps dataset keys to target widget names.
	Overrides map[string]string `yaml:"overrides,omitempty"`

	// Keys lists dataset keys needing fuzzy resolution.
	Keys []string `yaml:"keys,omitempty"`

	Complement   bool     `yaml:"complement,omitempty"`
	SuppressKeys []string `yaml:"suppress,omitempty"`
	Threshold    float64  `yaml:"threshold,omitempty"`
}

// LoadOverrides reads a loader configuration from a YAML file. The file
// carries either an `overrides` map or a `keys` list, plus the optional
// `complement`, `suppress`, and `threshold` settings.
func LoadOverrides(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	return ParseOverrides(data)
}

// ParseOverrides parses YAML loader configuration data.
func ParseOverrides(data []byte) (*Loader, error) {
	var of overrideFile

	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}

	if of.Overrides != nil && len(of.Keys) > 0 {
		return nil, fmt.Errorf("overrides file carries both an override map and a key list")
	}

	loader := &Loader{
		Overrides:    of.Overrides,
		Keys:         of.Keys,
		Complement:   of.Complement,
		SuppressKeys: of.SuppressKeys,
		Threshold:    of.Threshold,
	}

	// Key-list form without fuzzy matching cannot resolve anything
	if loader.Overrides == nil {
		loader.Complement = true
	}

	return loader, nil
}
