package compare

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// diff renders a human-readable diff between expected and actual. It tries
// the configured external diff utility first; if that binary cannot be run
// at all, it falls back to a small in-process unified-diff-shaped renderer
// so a missing `diff` on PATH never hides a failure report.
func (c *Comparator) diff(expected, actual []byte) string {
	if text, ok := c.externalDiff(expected, actual); ok {
		return text
	}
	return fallbackDiff(expected, actual)
}

func (c *Comparator) externalDiff(expected, actual []byte) (string, bool) {
	dir := c.cfg.TempDir
	if dir == "" {
		dir = os.TempDir()
	}

	expectedFile, err := os.CreateTemp(dir, "doccmd-expected-*")
	if err != nil {
		return "", false
	}
	defer os.Remove(expectedFile.Name())
	defer expectedFile.Close()

	actualFile, err := os.CreateTemp(dir, "doccmd-actual-*")
	if err != nil {
		return "", false
	}
	defer os.Remove(actualFile.Name())
	defer actualFile.Close()

	if _, err := expectedFile.Write(expected); err != nil {
		return "", false
	}
	if _, err := actualFile.Write(actual); err != nil {
		return "", false
	}

	args := append(append([]string{}, c.cfg.DiffOptions...), expectedFile.Name(), actualFile.Name())
	cmd := exec.Command(c.cfg.DiffBin, args...)
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// The binary itself could not be run (not found, not executable).
		return "", false
	}

	text := string(out)
	text = replaceAll(text, expectedFile.Name(), "expected")
	text = replaceAll(text, actualFile.Name(), "actual")
	return text, true
}

func replaceAll(s, old, new string) string {
	return string(bytes.ReplaceAll([]byte(s), []byte(old), []byte(new)))
}

// fallbackDiff renders a minimal unified-diff-shaped report: a header
// followed by every expected line prefixed '-' and every actual line
// prefixed '+'. It does not attempt a longest-common-subsequence alignment
// — good enough to let an operator see both sides with recognizable
// markers when no external diff tool is available.
func fallbackDiff(expected, actual []byte) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "--- expected\n+++ actual\n")
	for _, line := range bytes.Split(trimTrailingNewline(expected), []byte("\n")) {
		fmt.Fprintf(&b, "-%s\n", line)
	}
	for _, line := range bytes.Split(trimTrailingNewline(actual), []byte("\n")) {
		fmt.Fprintf(&b, "+%s\n", line)
	}
	return b.String()
}

func trimTrailingNewline(b []byte) []byte {
	if len(b) == 0 {
		return b
	}
	return bytes.TrimSuffix(b, []byte("\n"))
}
