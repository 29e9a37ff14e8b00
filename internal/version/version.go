// Package version carries build information, overridable via ldflags.
package version

var (
	// Version is the release version.
	Version = "0.1.0"

	// Commit is the git commit the binary was built from.
	Commit = "dev"
)
