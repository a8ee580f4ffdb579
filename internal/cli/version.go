package cli

import (
	"github.com/testplan-tools/treport"
)

// Version prints the current version of the CLI.
func (s Service) Version() {
	s.Log.Infoln(treport.Version)
}
