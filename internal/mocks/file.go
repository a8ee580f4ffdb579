package mocks

import (
	"io/fs"
	"os"
	"strings"
	"time"
)

// File is a mocked implementation of `os.File`. Reads come from the embedded Reader, writes go to the
// embedded Builder.
type File struct {
	*strings.Builder
	*strings.Reader

	MockModTime func() time.Time
	MockMode    func() fs.FileMode
	MockName    func() string
}

// NewReadOnlyFile returns a mock file that serves the given contents.
func NewReadOnlyFile(contents string) *File {
	return &File{Builder: new(strings.Builder), Reader: strings.NewReader(contents)}
}

// NewWritableFile returns a mock file that records writes in its Builder.
func NewWritableFile() *File {
	return &File{Builder: new(strings.Builder), Reader: strings.NewReader("")}
}

// Close will always return nil.
func (f *File) Close() error {
	return nil
}

// Mode either calls the configured mock of itself or returns `fs.ModeIrregular`
func (f *File) Mode() fs.FileMode {
	if f.MockMode != nil {
		return f.MockMode()
	}

	return fs.ModeIrregular
}

// IsDir will always return false.
func (f *File) IsDir() bool {
	return false
}

// ModTime either calls the configured mock of itself or returns `time.Now`
func (f *File) ModTime() time.Time {
	if f.MockModTime != nil {
		return f.MockModTime()
	}

	return time.Now()
}

// Name either calls the configured mock of itself or returns an empty string
func (f *File) Name() string {
	if f.MockName != nil {
		return f.MockName()
	}

	return ""
}

// Stat is a no-op. This mocked file implementation covers the `os.FileInfo` interface already.
func (f *File) Stat() (os.FileInfo, error) {
	return f, nil
}

// Size returns the size of the unread portion of the mocked file.
func (f *File) Size() int64 {
	return int64(f.Reader.Len())
}

// Sync is a no-op.
func (f *File) Sync() error {
	return nil
}

// Sys will always return nil.
func (f *File) Sys() any {
	return nil
}
