// Package treport holds globally accessible constants for the treport CLI, most notably the version number.
package treport

// Version is the current version of treport. The default value here is used for development builds; releases
// override it through ldflags.
var Version = "unstable"
