package report_test

import (
	"encoding/json"

	"github.com/testplan-tools/treport/internal/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Node JSON", func() {
	It("decodes a group node with nested entries", func() {
		payload := `{
			"uid": "mt-1",
			"name": "MT",
			"category": "multitest",
			"type": "TestGroupReport",
			"status": "failed",
			"part": [0, 2],
			"definition_name": "MT",
			"tags": {"simple": ["server"]},
			"counter": {"passed": 1, "failed": 1, "total": 2, "error": 0},
			"entries": [
				{
					"uid": "tc-1",
					"name": "test_1",
					"category": "testcase",
					"type": "TestCaseReport",
					"status": "passed",
					"entries": [{"type": "Equal", "first": 1, "second": 1}]
				}
			]
		}`

		var node report.Node
		Expect(json.Unmarshal([]byte(payload), &node)).To(Succeed())

		Expect(node.UID).To(Equal("mt-1"))
		Expect(node.Category).To(Equal(report.CategoryMultitest))
		Expect(node.Part).To(Equal(&report.Part{Index: 0, Total: 2}))
		Expect(node.Counter).To(Equal(report.Counter{Passed: 1, Failed: 1, Total: 2}))
		Expect(node.Entries).To(HaveLen(1))

		leaf := node.Entries[0]
		Expect(leaf.IsLeaf()).To(BeTrue())
		Expect(leaf.Assertions).To(HaveLen(1))
		Expect(leaf.Assertions[0].Kind()).To(Equal("Equal"))
	})

	It("treats a malformed part tuple as absent", func() {
		payload := `{"uid": "mt-1", "name": "MT", "category": "multitest", "part": [1], "entries": []}`

		var node report.Node
		Expect(json.Unmarshal([]byte(payload), &node)).To(Succeed())
		Expect(node.Part).To(BeNil())

		payload = `{"uid": "mt-2", "name": "MT", "category": "multitest", "part": "0/2", "entries": []}`
		Expect(json.Unmarshal([]byte(payload), &node)).To(Succeed())
		Expect(node.Part).To(BeNil())
	})

	It("defaults missing optional fields", func() {
		payload := `{"uid": "tc-1", "name": "test", "category": "testcase"}`

		var node report.Node
		Expect(json.Unmarshal([]byte(payload), &node)).To(Succeed())

		Expect(node.Tags).To(BeNil())
		Expect(node.Counter).To(Equal(report.Counter{}))
		Expect(node.Status).To(Equal(report.StatusUnset))
		Expect(node.Assertions).To(BeEmpty())
	})

	It("round-trips a decorated tree", func() {
		root := report.PropagateIndices(sampleTaggedReport())

		encoded, err := json.Marshal(root)
		Expect(err).NotTo(HaveOccurred())

		var decoded report.Node
		Expect(json.Unmarshal(encoded, &decoded)).To(Succeed())

		Expect(decoded.Name).To(Equal(root.Name))
		Expect(decoded.CaseCount).To(Equal(root.CaseCount))
		Expect(decoded.NameTypeIndex).To(Equal(root.NameTypeIndex))
		Expect(decoded.Entries[0].Entries[1].Tags).To(Equal(root.Entries[0].Entries[1].Tags))
	})
})

var _ = Describe("Part", func() {
	It("serializes as a two-element array", func() {
		encoded, err := json.Marshal(report.Part{Index: 1, Total: 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(encoded)).To(Equal("[1,3]"))
	})
})

var _ = Describe("MergeStatus", func() {
	It("ranks error above failed above everything else", func() {
		Expect(report.MergeStatus(report.StatusPassed, report.StatusFailed)).To(Equal(report.StatusFailed))
		Expect(report.MergeStatus(report.StatusFailed, report.StatusError)).To(Equal(report.StatusError))
		Expect(report.MergeStatus(report.StatusError, report.StatusPassed)).To(Equal(report.StatusError))
		Expect(report.MergeStatus(report.StatusPassed, report.StatusXPass)).To(Equal(report.StatusPassed))
	})
})
