package cli

import (
	"context"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/filtering"
	"github.com/testplan-tools/treport/internal/report"
)

// Filter loads a report, merges sharded multitests, decorates the tree with its indices, and prunes it
// down to the entries matching the search query. Indices are recomputed for the pruned tree so that its
// counts and tag inventory describe what is actually left.
func (s Service) Filter(ctx context.Context, cfg FilterConfig) error {
	if err := cfg.Validate(); err != nil {
		return s.logError(errors.WithStack(err))
	}

	root, err := s.loadReport(ctx, cfg.ReportPath, cfg.StructurePath, cfg.AssertionGlobs)
	if err != nil {
		return errors.WithStack(err)
	}

	decorated := report.PropagateIndices(report.MergeParts(root))

	filters := filtering.Parse(cfg.Search)
	s.Log.Debugf("parsed %q into %d filter group(s)", cfg.Search, len(filters))

	filtered, err := filtering.FilterEntries(decorated.Entries, filters)
	if err != nil {
		return s.logError(errors.WithStack(err))
	}

	pruned := decorated.ShallowCopy()
	pruned.Entries = filtered

	return s.writeReport(cfg.OutputPath, report.PropagateIndices(pruned))
}
