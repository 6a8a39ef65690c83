// This file is part of zxpreview.
//
// zxpreview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxpreview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxpreview.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the name and version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "zxpreview"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/zxpreview/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is a
// numbered release.
//
// A version of "unreleased" means the binary was built from a repository
// without a version number. A version of "local" means there is no version
// number and no vcs information, which happens with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the application and its version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

// buildInfo summarises the vcs settings of the build
type buildInfo struct {
	vcs      bool
	revision string
	modified bool
}

func readBuildInfo() buildInfo {
	var b buildInfo

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			b.vcs = true
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}

	return b
}

func init() {
	b := readBuildInfo()

	switch {
	case b.revision == "":
		revision = "no revision information"
	case b.modified:
		revision = b.revision + "+dirty"
	default:
		revision = b.revision
	}

	switch {
	case number != "":
		version = number
	case b.vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
