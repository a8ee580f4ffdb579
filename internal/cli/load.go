package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
)

// splitReportVersion is the payload version that indicates a report exported as separate structure &
// assertion files.
const splitReportVersion = 2

// reportEnvelope carries the payload metadata that decides between the single-payload and the split
// loading path.
type reportEnvelope struct {
	Version int `json:"version"`
}

// loadReport assembles the full report tree for a command. A main payload carrying `version: 2` is a
// split report; its tree structure and its assertion bodies live in separate files that need to be
// named in the configuration. Any other version value loads as a single self-contained payload.
func (s Service) loadReport(
	ctx context.Context, reportPath, structurePath string, assertionGlobs []string,
) (*report.Node, error) {
	buf, err := s.readFile(reportPath)
	if err != nil {
		return nil, err
	}

	var envelope reportEnvelope
	if err := json.Unmarshal(buf, &envelope); err != nil {
		return nil, s.logError(errors.NewInputError("unable to parse %q: %s", reportPath, err))
	}

	main, err := s.decodeNode(buf, reportPath)
	if err != nil {
		return nil, err
	}

	if envelope.Version != splitReportVersion {
		return main, nil
	}

	s.Log.Debugf("%q is a split report, loading structure & assertions", reportPath)

	if structurePath == "" || len(assertionGlobs) == 0 {
		return nil, s.logError(errors.NewInputError(
			"%q is a split report; structure and assertion files are required", reportPath,
		))
	}

	skeleton, err := s.loadStructure(structurePath)
	if err != nil {
		return nil, err
	}

	assertions, err := s.loadAssertions(ctx, assertionGlobs)
	if err != nil {
		return nil, err
	}

	return report.MergeSplitReport(main, assertions, skeleton), nil
}

// decodeNode parses a report payload. Roots without a category are testplans; roots without a uid get
// a generated one so that downstream lookups always have a key.
func (s Service) decodeNode(buf []byte, name string) (*report.Node, error) {
	var node report.Node
	if err := json.Unmarshal(buf, &node); err != nil {
		return nil, s.logError(errors.NewInputError("unable to parse %q: %s", name, err))
	}

	if node.Category == "" {
		node.Category = report.CategoryTestplan
	}

	if node.UID == "" {
		node.UID = uuid.NewString()
		s.Log.Debugf("%q has no uid, generated %q", name, node.UID)
	}

	return &node, nil
}

// loadStructure parses a structure payload, i.e. the skeleton of the report tree with the testcase
// assertions stripped.
func (s Service) loadStructure(path string) ([]*report.Node, error) {
	buf, err := s.readFile(path)
	if err != nil {
		return nil, err
	}

	var skeleton []*report.Node
	if err := json.Unmarshal(buf, &skeleton); err != nil {
		return nil, s.logError(errors.NewInputError("unable to parse %q: %s", path, err))
	}

	return skeleton, nil
}

// loadAssertions expands the given globs and parses every matched file as a map of testcase uid to
// assertion entries. Files are read concurrently; maps are folded together, with entries for a shared
// uid concatenated in file order.
func (s Service) loadAssertions(
	ctx context.Context, globs []string,
) (map[string][]report.AssertionEntry, error) {
	paths, err := s.FileSystem.GlobMany(globs)
	if err != nil {
		return nil, s.logError(errors.NewSystemError("unable to expand filepath glob: %s", err))
	}

	// Every goroutine writes to its own slot; folding happens after the group is done so that the
	// result is deterministic regardless of read order.
	decoded := make([]map[string][]report.AssertionEntry, len(paths))

	eg, _ := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			buf, err := s.readFile(path)
			if err != nil {
				return err
			}

			var chunk map[string][]report.AssertionEntry
			if err := json.Unmarshal(buf, &chunk); err != nil {
				return s.logError(errors.NewInputError("unable to parse %q: %s", path, err))
			}

			decoded[i] = chunk
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	assertions := make(map[string][]report.AssertionEntry)
	for _, chunk := range decoded {
		for uid, entries := range chunk {
			assertions[uid] = append(assertions[uid], entries...)
		}
	}

	return assertions, nil
}

func (s Service) readFile(path string) ([]byte, error) {
	file, err := s.FileSystem.Open(path)
	if err != nil {
		return nil, s.logError(errors.NewSystemError("unable to open %q: %s", path, err))
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, s.logError(errors.NewSystemError("unable to read %q: %s", path, err))
	}

	return buf, nil
}
