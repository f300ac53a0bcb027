// Package version provides the build version of the module.
package version

import "fmt"

// Build is the build number, set at build time via ldflags.
var Build = "dev"

const (
	major = 1
	minor = 0
)

// Info provides the version information
type Info struct {
	Major int
	Minor int
	Build string
}

// Current returns the version of the binary
func Current() Info {
	return Info{
		Major: major,
		Minor: minor,
		Build: Build,
	}
}

// String returns the version string
func (v Info) String() string {
	return fmt.Sprintf("%d.%d.%s", v.Major, v.Minor, v.Build)
}
