package runner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kendru/doccmd/internal/domain"
	"github.com/kendru/doccmd/internal/render"
)

const separatorWidth = 50

func (o *Orchestrator) printFailureReport(res domain.Result) {
	sep := strings.Repeat("-", separatorWidth)
	header := fmt.Sprintf("[FAILED #%d] %s", res.Block.Ordinal, res.Block.Command)
	body := stripHeaderLines(res.Diff, 2)

	fmt.Fprintln(o.out, o.ui.Red(sep))
	fmt.Fprintln(o.out, o.ui.Red(header))
	if body != "" {
		fmt.Fprintln(o.out, o.ui.Red(body))
	}
	fmt.Fprintln(o.out, o.ui.Red(sep))
}

// stripHeaderLines drops the leading n lines of a unified diff (its "---
// expected" / "+++ actual" banner), which the failure report has already
// named in its own header.
func stripHeaderLines(diff string, n int) string {
	lines := strings.Split(diff, "\n")
	if len(lines) <= n {
		return ""
	}
	return strings.TrimRight(strings.Join(lines[n:], "\n"), "\n")
}

// printListLine renders one line for --list (res == nil, no status known
// yet) or --list-run (res carries the outcome).
func (o *Orchestrator) printListLine(blk domain.TestBlock, res *domain.Result) {
	if res == nil {
		fmt.Fprintf(o.out, "%d\t%s\n", blk.Ordinal, blk.Command)
		return
	}

	status := "OK"
	if res.Outcome == domain.Failed {
		status = "FAIL"
	}

	if o.ui.Color {
		line := fmt.Sprintf("%d\t%s", blk.Ordinal, blk.Command)
		if res.Outcome == domain.Failed {
			fmt.Fprintln(o.out, o.ui.Red(line))
		} else {
			fmt.Fprintln(o.out, o.ui.Green(line))
		}
		return
	}

	fmt.Fprintf(o.out, "%d\t%s\t%s\n", blk.Ordinal, status, blk.Command)
}

func (o *Orchestrator) printPerFileStats(counters *Counters) {
	files := make([]string, len(counters.FileOrder))
	copy(files, counters.FileOrder)
	sort.Strings(files)

	fmt.Fprintln(o.out, o.ui.Gray(strings.Repeat("-", separatorWidth)))
	for _, f := range files {
		stats := counters.PerFile[f]
		fmt.Fprintf(o.out, "%s: %d tests, %d failed\n", f, stats.Tests, stats.Errors)
	}
}

// printMarkdownReport renders the closing summary as a Markdown fragment
// instead of the plain-text stats block and summary sentence.
func (o *Orchestrator) printMarkdownReport(counters *Counters) {
	fmt.Fprintln(o.out, render.Markdown(reportStats(counters)))
}

// printHTMLReport renders the closing summary as HTML, converting the same
// Markdown fragment printMarkdownReport uses through goldmark.
func (o *Orchestrator) printHTMLReport(counters *Counters) error {
	html, err := render.HTML(render.Markdown(reportStats(counters)))
	if err != nil {
		return err
	}
	fmt.Fprintln(o.out, html)
	return nil
}

func reportStats(counters *Counters) render.Stats {
	stats := render.Stats{
		TotalTests:  counters.TotalTests,
		TotalErrors: counters.TotalErrors,
	}
	for _, f := range counters.FileOrder {
		fs := counters.PerFile[f]
		stats.Files = append(stats.Files, render.FileStat{File: f, Tests: fs.Tests, Errors: fs.Errors})
	}
	return stats
}

// summaryLine implements the closing-message decision table: single test
// passed/failed gets its own sentence, an all-pass or all-fail run scales
// its exclamation with volume, and a mixed result states the failure count.
func (o *Orchestrator) summaryLine(c *Counters) string {
	passed := c.TotalTests - c.TotalErrors

	if c.TotalErrors == 0 {
		switch {
		case c.TotalTests == 1:
			return o.ui.Green("OK! The single test has passed.")
		case c.TotalTests >= 100:
			return o.ui.Green(fmt.Sprintf("YOU WIN! PERFECT! All %d tests have passed.", c.TotalTests))
		case c.TotalTests >= 50:
			return o.ui.Green(fmt.Sprintf("YOU WIN! All %d tests have passed.", c.TotalTests))
		default:
			return o.ui.Green(fmt.Sprintf("OK! All %d tests have passed.", c.TotalTests))
		}
	}

	if passed == 0 {
		if c.TotalTests == 1 {
			return o.ui.Red("FAIL: The single test has failed.")
		}
		if c.TotalErrors >= 50 {
			return o.ui.Red(fmt.Sprintf("EPIC FAIL! All %d tests have failed.", c.TotalErrors))
		}
		return o.ui.Red(fmt.Sprintf("COMPLETE FAIL! All %d tests have failed.", c.TotalErrors))
	}

	return o.ui.Red(fmt.Sprintf("FAIL: %d of %d tests have failed.", c.TotalErrors, c.TotalTests))
}
