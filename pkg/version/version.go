// Package version exposes the build version of the paginator binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/rshade/paginator/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
