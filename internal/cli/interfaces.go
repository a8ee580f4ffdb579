package cli

import (
	"github.com/testplan-tools/treport/internal/fs"
)

// FileSystem is an abstraction over file-systems. This is implemented by the default `os` package and can
// also be used for mocking.
type FileSystem interface {
	Create(filePath string) (fs.File, error)
	Open(name string) (fs.File, error)
	Glob(pattern string) ([]string, error)
	GlobMany(patterns []string) ([]string, error)
}
