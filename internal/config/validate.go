package config

import (
	"fmt"
	"strings"

	"github.com/kendru/doccmd/internal/domain"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
var validReportFormats = map[string]bool{"text": true, "md": true, "html": true}

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Scanning.Prompt == "" {
		errs = append(errs, "scanning.prompt must not be empty")
	}

	if cfg.Exec.Shell == "" {
		errs = append(errs, "exec.shell must not be empty")
	}
	if cfg.Exec.ShellFlag == "" {
		errs = append(errs, "exec.shell_flag must not be empty")
	}

	if cfg.Diff.Bin == "" {
		errs = append(errs, "diff.bin must not be empty")
	}

	if cfg.Report.Format != "" && !validReportFormats[cfg.Report.Format] {
		errs = append(errs, fmt.Sprintf("report.format must be one of: text, md, html (got %q)", cfg.Report.Format))
	}

	if cfg.Logging.Level != "" && !validLogLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
