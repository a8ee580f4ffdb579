// Package reporting holds the output formatters for report trees.
package reporting

import (
	"encoding/json"
	"io"

	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/report"
)

// WriteJSONReport writes the report tree to the given writer as indented JSON. The output uses the
// same wire format that the loader accepts, so written reports can be fed back in.
func WriteJSONReport(w io.Writer, root *report.Node) error {
	buf, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return errors.NewInternalError("unable to serialize report: %s", err)
	}

	if _, err := w.Write(append(buf, '\n')); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
