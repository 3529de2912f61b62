// Package runner implements the Orchestrator: it drives files in order,
// numbers tests globally, consults the Range Parser to include/skip,
// invokes the Executor and Comparator, accumulates counters, and produces
// the final report and exit code.
package runner

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/kendru/doccmd/internal/compare"
	"github.com/kendru/doccmd/internal/execshell"
	"github.com/kendru/doccmd/internal/rangeset"
	"github.com/kendru/doccmd/internal/scanner"
	"github.com/kendru/doccmd/internal/ui"
)

// Config is the immutable-for-a-run set of orchestrator options.
type Config struct {
	Prefix           string // already resolved through scanner.ExpandPrefix
	Prompt           string
	InlinePrefix     string
	Shell            string
	ShellFlag        string
	DiffBin          string
	DiffOptions      []string
	RangeExpr        string
	StopOnFirstError bool
	ListMode         bool
	ListRun          bool
	Verbose          bool
	Quiet            bool
	UseColors        bool
	ReportFormat     string // "text", "md" or "html"
	BlockedPatterns  []string
}

// FileStats is the rolling per-file test/error counters for one run.
type FileStats struct {
	Tests  int
	Errors int
}

// Counters is the global/per-file bookkeeping for one run.
type Counters struct {
	TotalTests  int
	TotalErrors int
	FileOrder   []string
	PerFile     map[string]*FileStats
}

func newCounters() *Counters {
	return &Counters{PerFile: make(map[string]*FileStats)}
}

func (c *Counters) statsFor(file string) *FileStats {
	fs, ok := c.PerFile[file]
	if !ok {
		fs = &FileStats{}
		c.PerFile[file] = fs
		c.FileOrder = append(c.FileOrder, file)
	}
	return fs
}

// Orchestrator wires the Range Parser, Block Scanner, Executor and
// Comparator together and drives a complete run.
type Orchestrator struct {
	cfg         Config
	log         *logrus.Logger
	scan        *scanner.Scanner
	exec        *execshell.Executor
	cmp         *compare.Comparator
	ui          *ui.UI
	out, errOut io.Writer
	tempDir     string
	rangeFilter *rangeset.Set
}

// New builds an Orchestrator from a fully-resolved Config. tempDir is a
// private, already-created scratch directory (owner-only permissions); the
// caller owns its lifecycle (create before, remove after).
func New(cfg Config, log *logrus.Logger, tempDir string, stdout, stderr io.Writer) (*Orchestrator, error) {
	rng, err := rangeset.Parse(cfg.RangeExpr)
	if err != nil {
		return nil, err
	}

	sc := scanner.New(scanner.Config{
		Prefix:       cfg.Prefix,
		Prompt:       cfg.Prompt,
		InlinePrefix: cfg.InlinePrefix,
	})

	ex := execshell.New(cfg.Shell, cfg.ShellFlag)
	ex.Verbose = cfg.Verbose
	ex.Echo = stderr
	ex.Log = log

	cmp := compare.New(compare.Config{
		DiffBin:     cfg.DiffBin,
		DiffOptions: cfg.DiffOptions,
		TempDir:     tempDir,
	})

	return &Orchestrator{
		cfg:         cfg,
		log:         log,
		scan:        sc,
		exec:        ex,
		cmp:         cmp,
		ui:          ui.New(cfg.UseColors),
		out:         stdout,
		errOut:      stderr,
		tempDir:     tempDir,
		rangeFilter: rng,
	}, nil
}
