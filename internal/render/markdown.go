// Package render builds the optional Markdown (--report-format md) and HTML
// (--report-format html) renderings of a run's summary from already-computed
// data. The Markdown is built by hand; goldmark converts it to HTML.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// FileStat is one row of the per-file breakdown.
type FileStat struct {
	File   string
	Tests  int
	Errors int
}

// Stats is everything the Markdown summary needs, independent of the
// runner package's own Counters type so render has no dependency on it.
type Stats struct {
	Files       []FileStat
	TotalTests  int
	TotalErrors int
}

// Markdown renders s as a Markdown fragment: a headline sentence plus, when
// more than one file participated, a per-file table.
func Markdown(s Stats) string {
	var b strings.Builder

	passed := s.TotalTests - s.TotalErrors
	switch {
	case s.TotalErrors == 0:
		fmt.Fprintf(&b, "**%d/%d tests passed.**\n", passed, s.TotalTests)
	default:
		fmt.Fprintf(&b, "**%d/%d tests passed, %d failed.**\n", passed, s.TotalTests, s.TotalErrors)
	}

	if len(s.Files) > 1 {
		b.WriteString("\n| File | Tests | Failed |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, f := range s.Files {
			fmt.Fprintf(&b, "| %s | %d | %d |\n", f.File, f.Tests, f.Errors)
		}
	}

	return b.String()
}

// HTML converts a Markdown fragment (normally Markdown's own output) to
// HTML, for operators who pipe the md report into something that renders
// HTML directly rather than interpreting Markdown itself.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
