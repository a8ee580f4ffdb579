// Package cli holds the main business logic in our CLI. This is mainly:
// 1. Assembling report trees from the payload files on disk (single or split).
// 2. Running the report transformations (parts merge, index propagation, filtering).
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/treport`.
package cli

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
	"github.com/testplan-tools/treport/internal/reporting"
)

// Service is the main CLI service.
type Service struct {
	Log        *zap.SugaredLogger
	FileSystem FileSystem
}

func (s Service) logError(err error) error {
	s.Log.Errorf(err.Error())
	return err
}

// writeReport writes the report tree as JSON, either to the given output path or, if none was
// configured, to the primary log output.
func (s Service) writeReport(outputPath string, root *report.Node) error {
	if outputPath == "" {
		buf, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return s.logError(errors.NewInternalError("unable to output report: %s", err))
		}

		s.Log.Infoln(string(buf))
		return nil
	}

	file, err := s.FileSystem.Create(outputPath)
	if err != nil {
		return s.logError(errors.NewSystemError("unable to create %q: %s", outputPath, err))
	}
	defer file.Close()

	if err := reporting.WriteJSONReport(file, root); err != nil {
		return s.logError(err)
	}

	return nil
}
