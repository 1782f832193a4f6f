// Package version reports the name and version of the application.
//
// The version number is set at link time for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/axial/version.number=v0.1.0"
//
// For other builds the version is taken from the VCS information embedded by
// the Go toolchain, if it is available.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Axial"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" for a build with VCS information but no
// version number, and "local" for a build with neither. The revision string
// is suffixed with "+dirty" if the source had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title is the application name suitable for a window title. The version
// number is used for a release and the revision otherwise.
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func vcsInfo() (rev string, modified bool, ok bool) {
	info, found := debug.ReadBuildInfo()
	if !found {
		return "", false, false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			ok = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return rev, modified, ok
}

func init() {
	rev, modified, vcs := vcsInfo()

	switch {
	case rev == "":
		revision = "no revision information"
	case modified:
		revision = rev + "+dirty"
	default:
		revision = rev
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
