// Package config loads the optional YAML defaults file referenced by
// --config, mirroring the CLI flag surface so a team can commit its house
// style (prompt, shell, blocked patterns) once instead of repeating flags
// on every invocation. A flag explicitly passed on the command line always
// overrides the value loaded here.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kendru/doccmd/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Scanning ScanningConfig `yaml:"scanning"`
	Exec     ExecConfig     `yaml:"exec"`
	Diff     DiffConfig     `yaml:"diff"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScanningConfig configures the Block Scanner. Prefix is the raw shortcut
// form ("tab", a column count, or a literal string) and is resolved
// through scanner.ExpandPrefix before use.
type ScanningConfig struct {
	Prefix       string `yaml:"prefix"`
	Prompt       string `yaml:"prompt"`
	InlinePrefix string `yaml:"inline_prefix"`
}

// ExecConfig configures the Executor.
type ExecConfig struct {
	Shell           string   `yaml:"shell"`
	ShellFlag       string   `yaml:"shell_flag"`
	BlockedPatterns []string `yaml:"blocked_patterns"`
}

// DiffConfig configures the Comparator's diff rendering.
type DiffConfig struct {
	Bin     string   `yaml:"bin"`
	Options []string `yaml:"options"`
}

// ReportConfig selects the report renderer and its color behavior.
type ReportConfig struct {
	Format  string `yaml:"format"` // "text", "md", or "html"
	NoColor bool   `yaml:"no_color"`
}

// LoggingConfig controls the logrus.Logger level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file layered on top of DefaultConfig, so
// an omitted section keeps its builtin default rather than zeroing out.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}
