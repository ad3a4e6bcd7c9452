package crisis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"youmatter.app/server/internal/crisis"
)

var _ = Describe("Detector", func() {
	var detector *crisis.Detector

	BeforeEach(func() {
		detector = crisis.NewDetector(nil, "")
	})

	DescribeTable("Detect",
		func(message string, want bool) {
			Expect(detector.Detect(message)).To(Equal(want))
		},
		Entry("plain greeting", "hello, how are you?", false),
		Entry("keyword alone", "I feel suicidal", true),
		Entry("keyword inside sentence", "sometimes I want to die and I don't know why", true),
		Entry("mixed case", "I Want To DIE", true),
		Entry("keyword with apostrophe", "I can't go on like this", true),
		Entry("substring of ordinary word does not trip", "I want pie", false),
		Entry("hopeless as substring match", "everything feels hopeless today", true),
		Entry("self harm phrase", "thinking about self harm again", true),
		Entry("empty message", "", false),
	)

	It("uses the default helpline response", func() {
		Expect(detector.Response()).To(ContainSubstring("Kiran"))
		Expect(detector.Response()).To(ContainSubstring("1800-599-0019"))
		Expect(detector.Response()).To(ContainSubstring("You matter."))
	})

	It("accepts custom keywords and response", func() {
		d := crisis.NewDetector([]string{"red flag"}, "call someone")
		Expect(d.Detect("this is a RED FLAG moment")).To(BeTrue())
		Expect(d.Detect("I feel suicidal")).To(BeFalse())
		Expect(d.Response()).To(Equal("call someone"))
	})
})
