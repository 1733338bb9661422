// Package config loads and validates the YAML anonymization configuration.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Valid anonymization methods.
const (
	MethodHash        = "hash"
	MethodFake        = "fake"
	MethodNullColumn  = "null_column"
	MethodRandomize   = "randomize"
	MethodObfuscate   = "obfuscate"
	MethodDoNotChange = "do_not_change"
)

var validMethods = map[string]struct{}{
	MethodHash:        {},
	MethodFake:        {},
	MethodNullColumn:  {},
	MethodRandomize:   {},
	MethodObfuscate:   {},
	MethodDoNotChange: {},
}

// ColumnRule configures one column's transform. Only the fields relevant to
// the selected method are consulted.
type ColumnRule struct {
	Method string `yaml:"method"`

	// hash
	Salt string `yaml:"salt,omitempty"`

	// fake
	FakeType string `yaml:"fake_type,omitempty"`

	// randomize
	RandomizeMethod string    `yaml:"randomize_method,omitempty"`
	Values          []string  `yaml:"values,omitempty"`
	ValueWeights    []float32 `yaml:"value_weights,omitempty"`
	Min             int       `yaml:"min,omitempty"`
	Max             int       `yaml:"max,omitempty"`

	// obfuscate
	Format    string `yaml:"format,omitempty"`
	Threshold int    `yaml:"threshold,omitempty"`
	MinRange  string `yaml:"min_range,omitempty"`
	MaxRange  string `yaml:"max_range,omitempty"`
}

// Config is the full anonymization configuration: a transform rule per column
// plus optional scoring weights.
type Config struct {
	Columns map[string]ColumnRule `yaml:"columns"`
	Weights map[string]float64    `yaml:"weights,omitempty"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Columns) == 0 {
		return nil, fmt.Errorf("config must contain a columns section")
	}
	return &cfg, nil
}

// Validate checks every rule against the dataset's column names and the set
// of known methods. All problems are found before any column is mutated.
func (c *Config) Validate(columns []string) error {
	known := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		known[name] = struct{}{}
	}

	for _, name := range sortedKeys(c.Columns) {
		rule := c.Columns[name]
		if _, ok := known[name]; !ok {
			return fmt.Errorf("column %q not found in dataset, available columns: %v", name, columns)
		}
		if _, ok := validMethods[rule.Method]; !ok {
			return fmt.Errorf("unknown anonymization method %q for column %q", rule.Method, name)
		}
		if rule.Method == MethodRandomize {
			switch rule.RandomizeMethod {
			case "random_element":
				if len(rule.Values) == 0 {
					return fmt.Errorf("column %q: random_element requires a values list", name)
				}
				if len(rule.ValueWeights) > 0 && len(rule.ValueWeights) != len(rule.Values) {
					return fmt.Errorf("column %q: value_weights must match values in length", name)
				}
			case "random_int":
				if rule.Max < rule.Min {
					return fmt.Errorf("column %q: random_int max must be >= min", name)
				}
			default:
				return fmt.Errorf("column %q: unknown randomize_method %q", name, rule.RandomizeMethod)
			}
		}
	}

	for name, w := range c.Weights {
		if w <= 0 {
			return fmt.Errorf("weight for column %q must be positive, got %v", name, w)
		}
	}
	return nil
}

func sortedKeys(m map[string]ColumnRule) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
