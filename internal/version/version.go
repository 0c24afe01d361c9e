// Package version carries the build metadata stamped into the
// freightwatch binary via -ldflags at release time.
package version

var (
	// Version is the freightwatch release version.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "unknown"
	// BuildDate is when the binary was built.
	BuildDate = "unknown"
)
