package compare_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kendru/doccmd/internal/compare"
	"github.com/kendru/doccmd/internal/domain"
)

func block(mode domain.Mode, expected string) domain.TestBlock {
	return domain.TestBlock{
		Ordinal:    1,
		Command:    "irrelevant",
		Expected:   expected,
		Mode:       mode,
		SourceFile: "t.md",
		SourceLine: 1,
	}
}

var _ = Describe("Comparator", func() {
	var c *compare.Comparator

	BeforeEach(func() {
		c = compare.New(compare.Config{TempDir: GinkgoT().TempDir()})
	})

	Describe("text mode", func() {
		It("passes when captured equals expected plus a trailing newline", func() {
			res, err := c.Compare(block(domain.ModeText, "hi"), []byte("hi\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Passed))
		})

		It("fails when the captured output has no trailing newline", func() {
			// This encodes the documented "text mode appends LF" rule: a
			// command producing unterminated output never matches.
			res, err := c.Compare(block(domain.ModeText, "foo"), []byte("foo"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Failed))
			Expect(res.Diff).To(ContainSubstring("foo"))
		})

		It("treats an empty expectation as 'no output'", func() {
			res, err := c.Compare(block(domain.ModeText, ""), []byte("\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Passed))
		})
	})

	Describe("output mode", func() {
		It("passes on an exact multiline match", func() {
			res, err := c.Compare(block(domain.ModeOutput, "a\nb\n"), []byte("a\nb\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Passed))
		})

		It("fails when trailing newline presence differs", func() {
			res, err := c.Compare(block(domain.ModeOutput, "a\nb\n"), []byte("a\nb"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Failed))
		})

		It("treats an empty expectation as 'produces no output'", func() {
			res, err := c.Compare(block(domain.ModeOutput, ""), []byte(""))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Passed))
		})

		It("reports - and + lines in the diff on mismatch", func() {
			res, err := c.Compare(block(domain.ModeOutput, "bye\n"), []byte("hi\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Failed))
			Expect(res.Diff).To(ContainSubstring("-bye"))
			Expect(res.Diff).To(ContainSubstring("+hi"))
		})
	})

	Describe("file mode", func() {
		It("passes when the referenced file matches captured output byte for byte", func() {
			path := filepath.Join("testdata", "golden.txt")
			res, err := c.Compare(block(domain.ModeFile, path), []byte("hello\nworld\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Passed))
		})

		It("fails on a mismatch", func() {
			path := filepath.Join("testdata", "golden.txt")
			res, err := c.Compare(block(domain.ModeFile, path), []byte("nope\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Failed))
		})

		It("is a fatal operator error when the file is missing", func() {
			_, err := c.Compare(block(domain.ModeFile, filepath.Join("testdata", "missing.txt")), []byte("x"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("regex mode", func() {
		It("passes when any captured line matches", func() {
			res, err := c.Compare(block(domain.ModeRegex, "^[A-Z][a-z]{2}"), []byte("Mon Jan 2\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Passed))
		})

		It("fails when no captured line matches", func() {
			res, err := c.Compare(block(domain.ModeRegex, "^[A-Z][a-z]{2}"), []byte("monday\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(res.Outcome).To(Equal(domain.Failed))
		})

		It("is a fatal operator error on an invalid pattern, not a test failure", func() {
			_, err := c.Compare(block(domain.ModeRegex, "(unclosed"), []byte("x"))
			Expect(err).To(HaveOccurred())
		})
	})
})
