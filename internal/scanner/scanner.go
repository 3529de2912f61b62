// Package scanner implements the Block Scanner: it consumes a
// documentation-style input file line by line and emits a stream of
// domain.TestBlock values. It never executes anything — scanning and
// execution are kept strictly separate so that list-only modes and
// deterministic ordinal assignment are possible before a single command
// runs.
package scanner

import (
	"fmt"
	"strings"

	"github.com/kendru/doccmd/internal/domain"
)

// Config holds the scanner's line-recognition rules. Prefix is expected to
// already be resolved through ExpandPrefix before being set here.
type Config struct {
	Prefix       string
	Prompt       string
	InlinePrefix string
}

// DefaultConfig returns the scanner's builtin prompt and inline-marker defaults.
func DefaultConfig() Config {
	return Config{
		Prompt:       "$ ",
		InlinePrefix: "#→ ",
	}
}

type state int

const (
	idle state = iota
	collecting
)

// Scanner turns raw file content into a slice of domain.TestBlock.
type Scanner struct {
	cfg Config
}

// New creates a Scanner with the given configuration.
func New(cfg Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// pending is an in-progress output-mode block.
type pending struct {
	command  string
	expected strings.Builder
	line     int
}

// Scan reads lines from content (CRLF is normalized to LF first) and
// returns the blocks it finds in file sourceFile. Ordinals are numbered
// 1..n within this file; the caller (the Orchestrator) overwrites them with
// global ordinals across files.
func (s *Scanner) Scan(sourceFile string, content []byte) ([]domain.TestBlock, error) {
	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := splitLines(normalized)

	var (
		blocks  []domain.TestBlock
		st      = idle
		current *pending
	)

	closeCurrent := func() {
		if current == nil {
			return
		}
		blocks = append(blocks, domain.TestBlock{
			Command:    current.command,
			Expected:   current.expected.String(),
			Mode:       domain.ModeOutput,
			SourceFile: sourceFile,
			SourceLine: current.line,
		})
		current = nil
		st = idle
	}

	promptPrefix := s.cfg.Prefix + s.cfg.Prompt

	i := 0
	for i < len(lines) {
		line := lines[i]
		advance := true

		switch st {
		case idle:
			switch {
			case s.isPromptAlone(line):
				// no-op: a bare prompt line outside any block.
			case strings.HasPrefix(line, promptPrefix):
				blk, opened, err := s.openCommand(sourceFile, i+1, line)
				if err != nil {
					return nil, err
				}
				if opened != nil {
					current = opened
					st = collecting
				} else {
					blocks = append(blocks, *blk)
				}
			default:
				// plain prose line: ignored.
			}

		case collecting:
			switch {
			case strings.HasPrefix(line, promptPrefix):
				closeCurrent()
				advance = false // reprocess this line from idle
			case s.isPromptAlone(line):
				closeCurrent()
			case s.cfg.Prefix != "" && !strings.HasPrefix(line, s.cfg.Prefix):
				closeCurrent()
				advance = false // line itself carries no content for us; reprocess from idle
			default:
				stripped := strings.TrimPrefix(line, s.cfg.Prefix)
				current.expected.WriteString(stripped)
				current.expected.WriteByte('\n')
			}
		}

		if advance {
			i++
		}
	}

	closeCurrent()

	for idx := range blocks {
		blocks[idx].Ordinal = idx + 1
	}

	return blocks, nil
}

// isPromptAlone reports whether line is one of the three accepted "prompt
// alone" forms: the exact prompt, the prompt with trailing space trimmed,
// or the prompt with one extra trailing space — each prefixed by Prefix.
func (s *Scanner) isPromptAlone(line string) bool {
	p := s.cfg.Prefix
	prompt := s.cfg.Prompt
	trimmed := strings.TrimRight(prompt, " ")
	candidates := []string{p + prompt, p + trimmed, p + prompt + " "}
	for _, c := range candidates {
		if line == c {
			return true
		}
	}
	return false
}

// openCommand processes an IDLE-state line that begins with Prefix+Prompt.
// It either returns a completed block (inline annotation present) or a
// pending output-mode block to keep collecting.
func (s *Scanner) openCommand(sourceFile string, lineNo int, line string) (*domain.TestBlock, *pending, error) {
	rest := strings.TrimPrefix(line, s.cfg.Prefix+s.cfg.Prompt)

	if !strings.Contains(rest, s.cfg.InlinePrefix) {
		return nil, &pending{command: rest, line: lineNo}, nil
	}

	first := strings.Index(rest, s.cfg.InlinePrefix)
	last := strings.LastIndex(rest, s.cfg.InlinePrefix)

	command := strings.TrimRight(rest[:first], " ")
	inline := rest[last+len(s.cfg.InlinePrefix):]

	mode, expected, err := classifyInline(inline)
	if err != nil {
		return nil, nil, wrapLineErr(sourceFile, lineNo, err)
	}
	if expected == "" && mode != domain.ModeText {
		return nil, nil, domain.NewError("scan", sourceFile, lineNo,
			fmt.Sprintf("missing expected payload for inline --%s annotation", mode), nil)
	}

	return &domain.TestBlock{
		Command:    command,
		Expected:   expected,
		Mode:       mode,
		SourceFile: sourceFile,
		SourceLine: lineNo,
	}, nil, nil
}

// classifyInline inspects the text following InlinePrefix and resolves its
// comparison mode.
func classifyInline(inline string) (domain.Mode, string, error) {
	switch {
	case strings.HasPrefix(inline, "--regex "):
		return domain.ModeRegex, inline[len("--regex "):], nil
	case strings.HasPrefix(inline, "--file "):
		return domain.ModeFile, inline[len("--file "):], nil
	case strings.HasPrefix(inline, "--text "):
		return domain.ModeText, inline[len("--text "):], nil
	default:
		return domain.ModeText, inline, nil
	}
}

func wrapLineErr(sourceFile string, lineNo int, err error) error {
	if re, ok := err.(*domain.RunError); ok {
		re.File = sourceFile
		re.LineNumber = lineNo
		return re
	}
	return err
}

// splitLines splits on LF and drops the empty element strings.Split leaves
// after a final newline, so a file ending in LF yields no phantom empty
// last line — this matches how text editors represent a final newline and
// keeps line numbers 1-based and contiguous.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
