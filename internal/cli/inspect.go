package cli

import (
	"context"
	"strings"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
	"github.com/testplan-tools/treport/internal/reporting"
)

// Inspect decorates the report with its indices and renders a text summary: case counts, per-status
// totals, and the tag inventory.
func (s Service) Inspect(ctx context.Context, cfg InspectConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	root, err := s.loadReport(ctx, cfg.ReportPath, cfg.StructurePath, cfg.AssertionGlobs)
	if err != nil {
		return errors.WithStack(err)
	}

	decorated := report.PropagateIndices(report.MergeParts(root))

	if cfg.OutputPath != "" {
		file, err := s.FileSystem.Create(cfg.OutputPath)
		if err != nil {
			return s.logError(errors.NewSystemError("unable to create %q: %s", cfg.OutputPath, err))
		}
		defer file.Close()

		if err := reporting.WriteTextSummary(file, decorated); err != nil {
			return s.logError(err)
		}

		return nil
	}

	summary := new(strings.Builder)
	if err := reporting.WriteTextSummary(summary, decorated); err != nil {
		return s.logError(err)
	}

	s.Log.Infoln(strings.TrimRight(summary.String(), "\n"))
	return nil
}
