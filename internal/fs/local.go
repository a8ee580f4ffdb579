// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os`
// package from the standard library.
package fs

import (
	"os"
	"sort"

	"github.com/yargevad/filepathx"

	"github.com/testplan-tools/treport/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Create creates a new file, truncating any existing one.
func (l Local) Create(filePath string) (File, error) {
	f, err := os.Create(filePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Glob expands a file-path pattern. Unlike the standard library, it supports `**` for arbitrarily deep matches.
func (l Local) Glob(pattern string) ([]string, error) {
	paths, err := filepathx.Glob(pattern)
	return paths, errors.WithStack(err)
}

// GlobMany expands a number of file-path patterns at once, de-duplicating and sorting the result for determinism.
func (l Local) GlobMany(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	expandedPaths := make([]string, 0)

	for _, pattern := range patterns {
		paths, err := l.Glob(pattern)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		for _, path := range paths {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			expandedPaths = append(expandedPaths, path)
		}
	}

	sort.Strings(expandedPaths)
	return expandedPaths, nil
}

// Stat returns file-info for the given path.
func (l Local) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	return info, errors.WithStack(err)
}
