// Package version exposes the carbonfocus build version.
package version

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/carbonfocus/carbonfocus/pkg/version.version=v1.2.0"
//
//nolint:gochecknoglobals // Build-time injection target.
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
