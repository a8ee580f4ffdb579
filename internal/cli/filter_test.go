package cli_test

import (
	"context"
	"encoding/json"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/fs"
	"github.com/testplan-tools/treport/internal/mocks"
	"github.com/testplan-tools/treport/internal/report"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Filter", func() {
	var (
		ctx        context.Context
		service    cli.Service
		fileSystem *mocks.FileSystem
		output     *mocks.File
	)

	BeforeEach(func() {
		ctx = context.Background()
		service, fileSystem = newTestService(map[string]string{
			"report.json": singleReportJSON,
		})

		output = mocks.NewWritableFile()
		fileSystem.MockCreate = func(string) (fs.File, error) { return output, nil }
	})

	filter := func(search string) report.Node {
		cfg := cli.FilterConfig{ReportPath: "report.json", Search: search, OutputPath: "filtered.json"}
		Expect(service.Filter(ctx, cfg)).To(Succeed())

		var root report.Node
		Expect(json.Unmarshal([]byte(output.Builder.String()), &root)).To(Succeed())
		return root
	}

	It("prunes the tree down to matching testcases", func() {
		root := filter("c:test_1")

		Expect(root.Entries).To(HaveLen(1))
		suite := root.Entries[0].Entries[0]
		Expect(suite.Name).To(Equal("Alpha"))
		Expect(suite.Entries).To(HaveLen(1))
		Expect(suite.Entries[0].Name).To(Equal("test_1"))
	})

	It("recomputes the indices for the pruned tree", func() {
		root := filter("c:test_1")

		Expect(root.CaseCount).To(Equal(report.CaseCount{Passed: 1, Failed: 0}))
		Expect(root.NameTypeIndex.Has(report.NameType{Name: "test_2", Category: report.CategoryTestCase})).To(BeFalse())
		Expect(root.TagsIndex).To(Equal(report.TagMap{"simple": {"server"}}))
	})

	It("keeps assertion bodies on the surviving testcases", func() {
		root := filter("tag:server")

		testcase := root.Entries[0].Entries[0].Entries[0]
		Expect(testcase.Assertions).To(HaveLen(1))
		Expect(testcase.Assertions[0].Kind()).To(Equal("Equal"))
	})

	It("returns the full tree for an empty search", func() {
		root := filter("")

		Expect(root.Name).To(Equal("Nightly"))
		Expect(root.UID).NotTo(BeEmpty())
		Expect(root.Entries[0].Entries[0].Entries).To(HaveLen(2))
	})

	It("surfaces malformed search expressions", func() {
		cfg := cli.FilterConfig{ReportPath: "report.json", Search: "re:(", OutputPath: "filtered.json"}

		err := service.Filter(ctx, cfg)
		Expect(err).To(HaveOccurred())
		_, ok := errors.AsFilterError(err)
		Expect(ok).To(BeTrue())
	})
})
