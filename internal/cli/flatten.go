package cli

import (
	"context"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
)

// Flatten merges the shards of part-based multitests into single entries and writes the flattened
// tree. No other transformation is applied.
func (s Service) Flatten(ctx context.Context, cfg FlattenConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	root, err := s.loadReport(ctx, cfg.ReportPath, cfg.StructurePath, cfg.AssertionGlobs)
	if err != nil {
		return errors.WithStack(err)
	}

	return s.writeReport(cfg.OutputPath, report.MergeParts(root))
}
