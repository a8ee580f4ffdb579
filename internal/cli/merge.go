package cli

import (
	"context"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
)

// Merge reassembles a report that was exported as split payloads: the main report is joined with the
// structure skeleton and the assertion bodies, and the resulting full tree is written out with its
// indices populated.
func (s Service) Merge(ctx context.Context, cfg MergeConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	buf, err := s.readFile(cfg.ReportPath)
	if err != nil {
		return errors.WithStack(err)
	}

	main, err := s.decodeNode(buf, cfg.ReportPath)
	if err != nil {
		return errors.WithStack(err)
	}

	skeleton, err := s.loadStructure(cfg.StructurePath)
	if err != nil {
		return errors.WithStack(err)
	}

	assertions, err := s.loadAssertions(ctx, cfg.AssertionGlobs)
	if err != nil {
		return errors.WithStack(err)
	}

	full := report.PropagateIndices(report.MergeSplitReport(main, assertions, skeleton))

	return s.writeReport(cfg.OutputPath, full)
}
