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

var _ = Describe("Merge", func() {
	var (
		ctx        context.Context
		service    cli.Service
		fileSystem *mocks.FileSystem
		files      map[string]string
		output     *mocks.File
		cfg        cli.MergeConfig
	)

	BeforeEach(func() {
		ctx = context.Background()
		files = map[string]string{
			"main.json":           splitMainJSON,
			"structure.json":      splitStructureJSON,
			"assertions/one.json": assertionsOneJSON,
			"assertions/two.json": assertionsTwoJSON,
		}
		service, fileSystem = newTestService(files)

		fileSystem.MockGlob = func(string) ([]string, error) {
			return []string{"assertions/one.json", "assertions/two.json"}, nil
		}

		output = mocks.NewWritableFile()
		fileSystem.MockCreate = func(string) (fs.File, error) { return output, nil }

		cfg = cli.MergeConfig{
			ReportPath:     "main.json",
			StructurePath:  "structure.json",
			AssertionGlobs: []string{"assertions/*.json"},
			OutputPath:     "merged.json",
		}
	})

	It("attaches assertion bodies to their testcases", func() {
		Expect(service.Merge(ctx, cfg)).To(Succeed())

		var merged report.Node
		Expect(json.Unmarshal([]byte(output.Builder.String()), &merged)).To(Succeed())

		Expect(merged.Name).To(Equal("Split Nightly"))
		suite := merged.Entries[0].Entries[0]
		Expect(suite.Entries[0].Assertions).To(HaveLen(1))
		Expect(suite.Entries[0].Assertions[0].Kind()).To(Equal("Equal"))
		Expect(suite.Entries[1].Assertions).To(HaveLen(2))
		Expect(suite.Entries[1].Assertions[0].Kind()).To(Equal("Log"))
	})

	It("gives testcases without assertion bodies an empty list", func() {
		Expect(service.Merge(ctx, cfg)).To(Succeed())

		var merged report.Node
		Expect(json.Unmarshal([]byte(output.Builder.String()), &merged)).To(Succeed())

		Expect(merged.Entries[0].Entries[0].Entries[2].Assertions).To(BeEmpty())
	})

	It("decorates the merged tree with its indices", func() {
		Expect(service.Merge(ctx, cfg)).To(Succeed())

		var merged report.Node
		Expect(json.Unmarshal([]byte(output.Builder.String()), &merged)).To(Succeed())

		Expect(merged.CaseCount).To(Equal(report.CaseCount{Passed: 2, Failed: 1}))
		Expect(merged.NameTypeIndex.Has(report.NameType{Name: "test_3", Category: report.CategoryTestCase})).To(BeTrue())
	})

	It("requires structure and assertion files", func() {
		cfg.StructurePath = ""

		err := service.Merge(ctx, cfg)
		Expect(err).To(HaveOccurred())
		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})

	It("rejects malformed payloads", func() {
		files["main.json"] = `{"name": "broken"`

		err := service.Merge(ctx, cfg)
		Expect(err).To(HaveOccurred())
		_, ok := errors.AsInputError(err)
		Expect(ok).To(BeTrue())
	})
})
