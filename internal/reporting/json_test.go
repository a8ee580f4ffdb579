package reporting_test

import (
	"encoding/json"

	"github.com/testplan-tools/treport/internal/mocks"
	"github.com/testplan-tools/treport/internal/report"
	"github.com/testplan-tools/treport/internal/reporting"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON Report", func() {
	It("round-trips through the wire format", func() {
		mockFile := mocks.NewWritableFile()
		root := &report.Node{
			UID:      "plan-1",
			Name:     "Nightly",
			Category: report.CategoryTestplan,
			Entries: []*report.Node{
				{
					UID:      "mt-1",
					Name:     "Primary",
					Category: report.CategoryMultitest,
					Tags:     report.TagMap{"simple": {"server"}},
					Entries: []*report.Node{
						{UID: "tc-1", Name: "test_1", Category: report.CategoryTestCase, Status: report.StatusPassed},
					},
				},
			},
		}

		Expect(reporting.WriteJSONReport(mockFile, root)).To(Succeed())

		var decoded report.Node
		Expect(json.Unmarshal([]byte(mockFile.Builder.String()), &decoded)).To(Succeed())
		Expect(decoded.Name).To(Equal("Nightly"))
		Expect(decoded.Entries).To(HaveLen(1))
		Expect(decoded.Entries[0].Tags).To(Equal(report.TagMap{"simple": {"server"}}))
		Expect(decoded.Entries[0].Entries[0].Status).To(Equal(report.StatusPassed))
	})
})
