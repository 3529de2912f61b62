package runner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kendru/doccmd/internal/domain"
)

// Summary is what Execute hands back once a run completes (or halts early
// under stop-on-first-error).
type Summary struct {
	Counters *Counters
	ExitCode int
}

// Execute drives files in argv order: scan, assign global ordinals, filter
// by range, execute, compare, accumulate, and finally report. A non-nil
// error is always an operator error (see domain.RunError); everything else
// — including every test failure — is reflected in the returned Summary.
func (o *Orchestrator) Execute(ctx context.Context, files []string) (*Summary, error) {
	// Commands run with the directory the runner was invoked from as their
	// working directory — fixed for the whole run, never overridden per
	// file or per block.
	dir, err := os.Getwd()
	if err != nil {
		return nil, domain.NewError("exec", "", 0, "cannot resolve invocation directory", err)
	}

	counters := newCounters()
	ordinal := 0
	rangeMatchedAny := false

	for _, file := range files {
		o.log.Debugf("scanning %s", file)
		if len(files) > 1 && !o.cfg.Quiet {
			fmt.Fprintf(o.out, "\n=== %s ===\n", file)
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return nil, domain.NewErrorWithSuggestion("scan", file, 0,
				"cannot read input file",
				"check that the file exists and has read permissions", err)
		}

		blocks, err := o.scan.Scan(file, content)
		if err != nil {
			return nil, err
		}

		if len(blocks) == 0 && o.rangeFilter == nil {
			return nil, domain.NewError("scan", file, 0, "no test found in input file", nil)
		}
		o.log.Debugf("%s: found %d block(s)", file, len(blocks))

		fileStats := counters.statsFor(file)

		for _, blk := range blocks {
			ordinal++
			blk.Ordinal = ordinal

			if err := o.checkBlocked(blk); err != nil {
				return nil, err
			}

			if !o.rangeFilter.Member(ordinal) {
				o.log.Debugf("#%d excluded by range filter", ordinal)
				continue
			}
			rangeMatchedAny = true

			counters.TotalTests++
			fileStats.Tests++

			if o.cfg.ListMode {
				o.printListLine(blk, nil)
				continue
			}

			o.log.Debugf("#%d running: %s", ordinal, blk.Command)
			res, execErr := o.exec.Run(ctx, dir, blk.Command)
			if execErr != nil {
				return nil, domain.NewErrorWithSuggestion("exec", blk.SourceFile, blk.SourceLine,
					fmt.Sprintf("failed to run command: %s", blk.Command),
					"check that the configured --shell is installed and executable", execErr)
			}

			cmpRes, cmpErr := o.cmp.Compare(blk, res.Output)
			if cmpErr != nil {
				return nil, cmpErr
			}

			if cmpRes.Outcome == domain.Failed {
				counters.TotalErrors++
				fileStats.Errors++
				o.log.Warnf("#%d failed: %s", ordinal, blk.Command)

				if o.cfg.StopOnFirstError {
					return &Summary{Counters: counters, ExitCode: domain.ExitTestFailure}, nil
				}

				switch {
				case o.cfg.ListRun:
					o.printListLine(blk, &cmpRes)
				case !o.cfg.Quiet:
					o.printFailureReport(cmpRes)
				}
				continue
			}

			switch {
			case o.cfg.ListRun:
				o.printListLine(blk, &cmpRes)
			case o.cfg.Verbose && !o.cfg.Quiet:
				fmt.Fprintf(o.out, "[OK #%d] %s\n", blk.Ordinal, blk.Command)
			}
		}
	}

	if o.rangeFilter != nil && !rangeMatchedAny {
		return nil, domain.NewError("range", "", 0, "no test found for the specified number or range", nil)
	}

	return o.finish(counters), nil
}

func (o *Orchestrator) checkBlocked(blk domain.TestBlock) error {
	for _, pat := range o.cfg.BlockedPatterns {
		if pat == "" {
			continue
		}
		if strings.Contains(blk.Command, pat) {
			return domain.NewErrorWithSuggestion("exec", blk.SourceFile, blk.SourceLine,
				fmt.Sprintf("command blocked by policy: contains %q", pat),
				"remove it from --blocked-pattern if this is intentional", nil)
		}
	}
	return nil
}

func (o *Orchestrator) finish(counters *Counters) *Summary {
	if !o.cfg.Quiet && !o.cfg.ListMode {
		switch o.cfg.ReportFormat {
		case "md":
			o.printMarkdownReport(counters)
		case "html":
			if err := o.printHTMLReport(counters); err != nil {
				o.log.Warnf("rendering HTML report failed, falling back to Markdown: %v", err)
				o.printMarkdownReport(counters)
			}
		default:
			if len(counters.FileOrder) > 1 {
				o.printPerFileStats(counters)
			}
			fmt.Fprintln(o.out, o.summaryLine(counters))
		}
	}

	exitCode := domain.ExitSuccess
	if counters.TotalErrors > 0 {
		exitCode = domain.ExitTestFailure
	}
	return &Summary{Counters: counters, ExitCode: exitCode}
}
