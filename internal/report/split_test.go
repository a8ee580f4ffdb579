package report_test

import (
	"encoding/json"

	"github.com/testplan-tools/treport/internal/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func assertion(body string) report.AssertionEntry {
	return report.AssertionEntry{RawMessage: json.RawMessage(body)}
}

var _ = Describe("MergeSplitReport", func() {
	var (
		main            *report.Node
		skeleton        []*report.Node
		assertionsByUID map[string][]report.AssertionEntry
	)

	BeforeEach(func() {
		main = &report.Node{
			UID:      "plan-1",
			Name:     "Split Plan",
			Category: report.CategoryTestplan,
			Entries:  []*report.Node{},
		}

		skeleton = []*report.Node{
			multitest("mt-1", "MT",
				suite("st-1", "Suite", nil,
					testcase("tc-1", "test_1", report.StatusPassed),
					testcase("tc-2", "test_2", report.StatusFailed),
				),
			),
		}

		assertionsByUID = map[string][]report.AssertionEntry{
			"tc-1": {
				assertion(`{"type":"Equal","first":1,"second":1,"passed":true}`),
				assertion(`{"type":"Log","message":"checked"}`),
			},
			"tc-2": {
				assertion(`{"type":"RegexMatch","pattern":"foo.*","passed":false}`),
			},
		}
	})

	It("attaches each testcase's assertions by uid", func() {
		full := report.MergeSplitReport(main, assertionsByUID, skeleton)

		mt := full.Entries[0]
		Expect(mt.Entries[0].Entries[0].Assertions).To(Equal(assertionsByUID["tc-1"]))
		Expect(mt.Entries[0].Entries[1].Assertions).To(Equal(assertionsByUID["tc-2"]))
	})

	It("keeps the main report's metadata", func() {
		full := report.MergeSplitReport(main, assertionsByUID, skeleton)

		Expect(full.UID).To(Equal("plan-1"))
		Expect(full.Name).To(Equal("Split Plan"))
	})

	It("falls back to an empty assertion list for unknown uids", func() {
		delete(assertionsByUID, "tc-2")

		full := report.MergeSplitReport(main, assertionsByUID, skeleton)

		Expect(full.Entries[0].Entries[0].Entries[1].Assertions).To(BeEmpty())
		Expect(full.Entries[0].Entries[0].Entries[1].Assertions).NotTo(BeNil())
	})

	It("does not modify any of its inputs", func() {
		report.MergeSplitReport(main, assertionsByUID, skeleton)

		Expect(main.Entries).To(BeEmpty())
		Expect(skeleton[0].Entries[0].Entries[0].Assertions).To(BeNil())
		Expect(assertionsByUID["tc-1"]).To(HaveLen(2))
	})

	It("round-trips assertion payloads exactly", func() {
		full := report.MergeSplitReport(main, assertionsByUID, skeleton)

		extracted := make(map[string][]report.AssertionEntry)
		var walk func(node *report.Node)
		walk = func(node *report.Node) {
			if node.IsLeaf() {
				extracted[node.UID] = node.Assertions
				return
			}
			for _, child := range node.Entries {
				walk(child)
			}
		}
		for _, entry := range full.Entries {
			walk(entry)
		}

		Expect(extracted).To(Equal(assertionsByUID))
	})
})
