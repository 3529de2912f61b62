// Package compare implements the Comparator: mode-dispatched comparison
// between a TestBlock's expectation and the bytes an Executor captured.
package compare

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/kendru/doccmd/internal/domain"
)

// Config controls how diffs are rendered.
type Config struct {
	// DiffBin is the external diff utility to shell out to. Empty means
	// "diff". The in-process fallback is used only when DiffBin cannot be run.
	DiffBin string
	// DiffOptions are passed through to DiffBin, e.g. []string{"-u"}.
	DiffOptions []string
	// TempDir holds the scratch files written for the external diff call.
	TempDir string
}

// DefaultDiffOptions is the builtin --diff-options value.
func DefaultDiffOptions() []string { return []string{"-u"} }

// Comparator applies a TestBlock's Mode to decide pass/fail and produce a
// diff artifact on failure.
type Comparator struct {
	cfg Config
}

// New creates a Comparator.
func New(cfg Config) *Comparator {
	if cfg.DiffBin == "" {
		cfg.DiffBin = "diff"
	}
	if len(cfg.DiffOptions) == 0 {
		cfg.DiffOptions = DefaultDiffOptions()
	}
	return &Comparator{cfg: cfg}
}

// Compare dispatches on block.Mode. A non-nil error is always an operator
// error (regex compile failure, unreadable --file reference) — it is never
// a test failure, which is instead represented in the returned Result.
func (c *Comparator) Compare(block domain.TestBlock, captured []byte) (domain.Result, error) {
	if !block.Mode.Valid() {
		return domain.Result{}, domain.NewError("comparator", block.SourceFile, block.SourceLine,
			fmt.Sprintf("unknown comparison mode %q", block.Mode), nil)
	}

	switch block.Mode {
	case domain.ModeText:
		return c.byteCompare(block, []byte(block.Expected+"\n"), captured)

	case domain.ModeOutput:
		return c.byteCompare(block, []byte(block.Expected), captured)

	case domain.ModeFile:
		data, err := os.ReadFile(block.Expected)
		if err != nil {
			return domain.Result{}, domain.NewErrorWithSuggestion("comparator", block.SourceFile, block.SourceLine,
				fmt.Sprintf("cannot read reference file %q", block.Expected),
				"check that the --file path is correct and readable", err)
		}
		return c.byteCompare(block, data, captured)

	default: // domain.ModeRegex, the only mode left once Valid() has passed
		return c.regexCompare(block, captured)
	}
}

func (c *Comparator) byteCompare(block domain.TestBlock, expected, captured []byte) (domain.Result, error) {
	if bytes.Equal(expected, captured) {
		return domain.Result{Block: block, Outcome: domain.Passed, Captured: captured}, nil
	}
	diffText := c.diff(expected, captured)
	return domain.Result{Block: block, Outcome: domain.Failed, Diff: diffText, Captured: captured}, nil
}

// regexCompare passes when captured contains at least one line matching
// the block's POSIX ERE pattern. On failure, the pattern source stands in
// for "expected" so the operator sees their pattern against the actual
// output.
func (c *Comparator) regexCompare(block domain.TestBlock, captured []byte) (domain.Result, error) {
	re, err := regexp.CompilePOSIX(block.Expected)
	if err != nil {
		return domain.Result{}, domain.NewErrorWithSuggestion("comparator", block.SourceFile, block.SourceLine,
			fmt.Sprintf("invalid regular expression %q", block.Expected),
			"fix the --regex pattern", err)
	}

	for _, line := range bytes.Split(captured, []byte("\n")) {
		if re.Match(line) {
			return domain.Result{Block: block, Outcome: domain.Passed, Captured: captured}, nil
		}
	}

	diffText := c.diff([]byte(block.Expected+"\n"), captured)
	return domain.Result{Block: block, Outcome: domain.Failed, Diff: diffText, Captured: captured}, nil
}
