package cli_test

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/fs"
	"github.com/testplan-tools/treport/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Inspect", func() {
	var (
		ctx          context.Context
		service      cli.Service
		fileSystem   *mocks.FileSystem
		core         zapcore.Core
		recordedLogs *observer.ObservedLogs
	)

	BeforeEach(func() {
		ctx = context.Background()
		service, fileSystem = newTestService(map[string]string{
			"report.json": singleReportJSON,
		})

		core, recordedLogs = observer.New(zapcore.DebugLevel)
		service.Log = zaptest.NewLogger(GinkgoT(), zaptest.WrapOptions(
			zap.WrapCore(func(_ zapcore.Core) zapcore.Core { return core }),
		)).Sugar()
	})

	It("prints the summary to the primary output", func() {
		Expect(service.Inspect(ctx, cli.InspectConfig{ReportPath: "report.json"})).To(Succeed())

		messages := make([]string, 0)
		for _, log := range recordedLogs.FilterLevelExact(zap.InfoLevel).All() {
			messages = append(messages, log.Message)
		}

		Expect(messages).To(HaveLen(1))
		Expect(messages[0]).To(ContainSubstring("Nightly"))
		Expect(messages[0]).To(ContainSubstring("2 testcases: 1 passed, 1 failed."))
		Expect(messages[0]).To(ContainSubstring("- Primary > Alpha > test_2"))
		Expect(messages[0]).To(ContainSubstring("Tags:"))
		Expect(messages[0]).To(ContainSubstring("- server"))
	})

	It("writes the summary to the output path when one is given", func() {
		output := mocks.NewWritableFile()
		fileSystem.MockCreate = func(string) (fs.File, error) { return output, nil }

		cfg := cli.InspectConfig{ReportPath: "report.json", OutputPath: "summary.txt"}
		Expect(service.Inspect(ctx, cfg)).To(Succeed())

		Expect(output.Builder.String()).To(ContainSubstring("1 passed, 1 failed"))
		Expect(recordedLogs.FilterLevelExact(zap.InfoLevel).All()).To(BeEmpty())
	})
})
