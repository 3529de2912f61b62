package config

// DefaultConfig returns a Config matching the builtin CLI flag defaults.
func DefaultConfig() *Config {
	return &Config{
		Scanning: ScanningConfig{
			Prompt:       "$ ",
			InlinePrefix: "#→ ",
		},
		Exec: ExecConfig{
			Shell:           "/bin/sh",
			ShellFlag:       "-c",
			BlockedPatterns: nil,
		},
		Diff: DiffConfig{
			Bin:     "diff",
			Options: []string{"-u"},
		},
		Report: ReportConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
