// Package cli wires cobra flags to the runner.Orchestrator.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kendru/doccmd/internal/compare"
	"github.com/kendru/doccmd/internal/config"
	"github.com/kendru/doccmd/internal/domain"
	"github.com/kendru/doccmd/internal/runner"
	"github.com/kendru/doccmd/internal/scanner"
	"github.com/kendru/doccmd/internal/ui"
)

var (
	cfgFile         string
	prefixFlag      string
	promptFlag      string
	inlinePrefix    string
	shell           string
	shellFlag       string
	diffBin         string
	diffOptionsCSV  string
	rangeExpr       string
	stopOnFirstErr  bool
	listMode        bool
	listRunMode     bool
	verbose         bool
	quiet           bool
	noColor         bool
	reportFormat    string
	blockedPatterns []string
	printVersion    bool

	log = logrus.New()

	// exitCode is set by runRoot and read back by Execute. cobra's RunE
	// contract only carries an error, not a distinct exit code, so a
	// successful run with test failures (exit 1, nil error) needs this
	// side channel.
	exitCode = domain.ExitSuccess
)

var rootCmd = &cobra.Command{
	Use:   "doccmd FILE...",
	Short: "Run shell-prompt-led command examples embedded in documentation",
	Long: `doccmd scans one or more documentation files for shell-prompt-led
command examples, runs each command through a real shell, and compares its
captured output against what the documentation claims it produces.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		if quiet {
			level = logrus.ErrorLevel
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "optional YAML defaults file")
	rootCmd.PersistentFlags().StringVar(&prefixFlag, "prefix", "", `line prefix shortcut ("tab", a column count, or a literal string)`)
	rootCmd.PersistentFlags().StringVar(&promptFlag, "prompt", "", "command prompt, default \"$ \"")
	rootCmd.PersistentFlags().StringVar(&inlinePrefix, "inline-prefix", "", "inline annotation marker, default \"#→ \"")
	rootCmd.PersistentFlags().StringVar(&shell, "shell", "", "shell binary, default /bin/sh")
	rootCmd.PersistentFlags().StringVar(&shellFlag, "shell-flag", "", "flag introducing the command string, default -c")
	rootCmd.PersistentFlags().StringVar(&diffBin, "diff-bin", "", "external diff binary, default diff")
	rootCmd.PersistentFlags().StringVar(&diffOptionsCSV, "diff-options", "", "comma-separated diff flags, default -u")
	rootCmd.PersistentFlags().StringVarP(&rangeExpr, "number", "n", "", `test selection, e.g. "1,3,5-8"`)
	rootCmd.PersistentFlags().BoolVarP(&stopOnFirstErr, "first", "1", false, "stop at the first failing test")
	rootCmd.PersistentFlags().BoolVarP(&listMode, "list", "l", false, "list tests without running them")
	rootCmd.PersistentFlags().BoolVarP(&listRunMode, "list-run", "L", false, "run tests and list pass/fail per test")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and per-test OK lines")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress file banners, failure reports and the summary line")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color even on a terminal")
	rootCmd.PersistentFlags().StringVar(&reportFormat, "report-format", "", "report renderer, text, md, or html, default text")
	rootCmd.PersistentFlags().StringArrayVar(&blockedPatterns, "blocked-pattern", nil, "substring that aborts the run if found in a command (repeatable)")
	rootCmd.Flags().BoolVarP(&printVersion, "version", "V", false, "print version and exit")

	// args are normally required, but -V/--version stands alone like -h/--help.
	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if printVersion {
			return nil
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	}

	rootCmd.AddCommand(validateCmd)
}

// Execute runs the root command and returns the process exit code: 0 on a
// clean pass, 1 if any test failed, 2 on an operator error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitCodeOf(err)
	}
	return exitCode
}

func exitCodeOf(err error) int {
	var re *domain.RunError
	if errors.As(err, &re) && re.ExitCode != 0 {
		return re.ExitCode
	}
	return domain.ExitOperatorErr
}

func runRoot(cmd *cobra.Command, args []string) error {
	if printVersion {
		fmt.Fprintln(os.Stdout, buildVersion())
		return nil
	}
	if len(args) == 0 {
		return cmd.Usage()
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if !verbose && !quiet {
		if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(level)
		}
	}

	expandedPrefix, err := scanner.ExpandPrefix(cfg.Scanning.Prefix)
	if err != nil {
		return err
	}

	rcfg := runner.Config{
		Prefix:           expandedPrefix,
		Prompt:           cfg.Scanning.Prompt,
		InlinePrefix:     cfg.Scanning.InlinePrefix,
		Shell:            cfg.Exec.Shell,
		ShellFlag:        cfg.Exec.ShellFlag,
		DiffBin:          cfg.Diff.Bin,
		DiffOptions:      cfg.Diff.Options,
		RangeExpr:        rangeExpr,
		StopOnFirstError: stopOnFirstErr,
		ListMode:         listMode,
		ListRun:          listRunMode,
		Verbose:          verbose,
		Quiet:            quiet,
		UseColors:        ui.ResolveColor(noColor || cfg.Report.NoColor),
		ReportFormat:     cfg.Report.Format,
		BlockedPatterns:  append(cfg.Exec.BlockedPatterns, blockedPatterns...),
	}

	tempDir, err := os.MkdirTemp("", "doccmd-*")
	if err != nil {
		return domain.NewError("exec", "", 0, "cannot create scratch directory", err)
	}
	defer os.RemoveAll(tempDir)
	if err := os.Chmod(tempDir, 0o700); err != nil {
		return domain.NewError("exec", "", 0, "cannot secure scratch directory permissions", err)
	}

	orch, err := runner.New(rcfg, log, tempDir, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	summary, err := orch.Execute(context.Background(), args)
	if err != nil {
		return err
	}

	exitCode = summary.ExitCode
	return nil
}

func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if prefixFlag != "" {
		cfg.Scanning.Prefix = prefixFlag
	}
	if promptFlag != "" {
		cfg.Scanning.Prompt = promptFlag
	}
	if inlinePrefix != "" {
		cfg.Scanning.InlinePrefix = inlinePrefix
	}
	if shell != "" {
		cfg.Exec.Shell = shell
	}
	if shellFlag != "" {
		cfg.Exec.ShellFlag = shellFlag
	}
	if diffBin != "" {
		cfg.Diff.Bin = diffBin
	}
	if diffOptionsCSV != "" {
		cfg.Diff.Options = strings.Split(diffOptionsCSV, ",")
	} else if len(cfg.Diff.Options) == 0 {
		cfg.Diff.Options = compare.DefaultDiffOptions()
	}
	if reportFormat != "" {
		cfg.Report.Format = reportFormat
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
