package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// IntList is a list of row numbers that unmarshals from a YAML scalar, a
// sequence, or a {start, end} mapping denoting an inclusive range.
type IntList []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *IntList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*l = IntList{n}
	case yaml.SequenceNode:
		var ns []int
		if err := node.Decode(&ns); err != nil {
			return err
		}
		*l = ns
	case yaml.MappingNode:
		var span struct {
			Start int `yaml:"start"`
			End   int `yaml:"end"`
		}
		if err := node.Decode(&span); err != nil {
			return err
		}
		if span.End < span.Start {
			return fmt.Errorf("row range end %d precedes start %d", span.End, span.Start)
		}
		rows := make(IntList, 0, span.End-span.Start+1)
		for r := span.Start; r <= span.End; r++ {
			rows = append(rows, r)
		}
		*l = rows
	default:
		return fmt.Errorf("expected a row number, list or {start, end} range, got %v", node.Kind)
	}
	return nil
}

// StringList is a list of column letters that unmarshals from a YAML scalar
// or sequence.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*l = ss
	default:
		return fmt.Errorf("expected a column letter or list of column letters, got %v", node.Kind)
	}
	return nil
}

// LoadYAML parses table configs from YAML data. The top level is a mapping
// of table name to config attributes.
func LoadYAML(data []byte) (map[string]TableConfig, error) {
	var raw map[string]TableConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse table config YAML: %w", err)
	}
	configs := make(map[string]TableConfig, len(raw))
	for name, cfg := range raw {
		cfg.Name = name
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		configs[name] = cfg
	}
	return configs, nil
}

// LoadFile loads table configs from a single YAML file.
func LoadFile(path string) (map[string]TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	configs, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return configs, nil
}

// LoadDir loads every *.yaml file in dir into one config set. A table name
// defined in more than one file is a config authoring error.
func LoadDir(dir string) (map[string]TableConfig, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	configs := make(map[string]TableConfig)
	for _, path := range paths {
		fileConfigs, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for name, cfg := range fileConfigs {
			if _, ok := configs[name]; ok {
				return nil, &InvalidConfigError{
					Table:  name,
					Reason: fmt.Sprintf("defined more than once in config directory %s", dir),
				}
			}
			configs[name] = cfg
		}
	}
	return configs, nil
}
