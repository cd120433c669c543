// Package version holds build metadata injected at link time.
package version

// Build metadata. Overridden via -ldflags at build time.
//
//nolint:gochecknoglobals // Set by the linker, must be package-level variables.
var (
	// Version is the application version.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is the time the binary was built.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
