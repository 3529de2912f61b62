package rangeset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kendru/doccmd/internal/rangeset"
)

var _ = Describe("Parse", func() {
	It("treats an empty string as no filter", func() {
		set, err := rangeset.Parse("")
		Expect(err).ToNot(HaveOccurred())
		Expect(set.Member(1)).To(BeTrue())
		Expect(set.Member(9999)).To(BeTrue())
	})

	It("treats the literal 0 as no filter", func() {
		set, err := rangeset.Parse("0")
		Expect(err).ToNot(HaveOccurred())
		Expect(set.Member(1)).To(BeTrue())
	})

	It("ignores a stray 0 token", func() {
		set, err := rangeset.Parse("1,0,3")
		Expect(err).ToNot(HaveOccurred())
		Expect(set.Member(1)).To(BeTrue())
		Expect(set.Member(2)).To(BeFalse())
		Expect(set.Member(3)).To(BeTrue())
	})

	It("parses a comma list", func() {
		set, err := rangeset.Parse("1,3,5")
		Expect(err).ToNot(HaveOccurred())
		for _, k := range []int{1, 3, 5} {
			Expect(set.Member(k)).To(BeTrue())
		}
		for _, k := range []int{2, 4, 6} {
			Expect(set.Member(k)).To(BeFalse())
		}
	})

	It("parses a range", func() {
		set, err := rangeset.Parse("5-8")
		Expect(err).ToNot(HaveOccurred())
		Expect(set.Member(4)).To(BeFalse())
		Expect(set.Member(5)).To(BeTrue())
		Expect(set.Member(8)).To(BeTrue())
		Expect(set.Member(9)).To(BeFalse())
	})

	It("accepts a reversed range as the same set", func() {
		forward, err := rangeset.Parse("5-8")
		Expect(err).ToNot(HaveOccurred())
		reversed, err := rangeset.Parse("8-5")
		Expect(err).ToNot(HaveOccurred())
		for k := 1; k <= 10; k++ {
			Expect(reversed.Member(k)).To(Equal(forward.Member(k)))
		}
	})

	It("combines ranges and singles", func() {
		set, err := rangeset.Parse("1,3,5-8")
		Expect(err).ToNot(HaveOccurred())
		Expect(set.Member(1)).To(BeTrue())
		Expect(set.Member(2)).To(BeFalse())
		Expect(set.Member(3)).To(BeTrue())
		Expect(set.Member(4)).To(BeFalse())
		Expect(set.Member(6)).To(BeTrue())
		Expect(set.Member(8)).To(BeTrue())
		Expect(set.Member(9)).To(BeFalse())
	})

	DescribeTable("rejects malformed input",
		func(expr string) {
			_, err := rangeset.Parse(expr)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid argument for -n or --number"))
		},
		Entry("letters", "abc"),
		Entry("trailing comma", "1,"),
		Entry("dangling dash", "1-"),
		Entry("negative-looking range", "-5"),
		Entry("non-numeric range part", "1-x"),
	)
})
