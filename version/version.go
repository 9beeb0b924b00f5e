// This file is part of Ardugo.
//
// Ardugo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ardugo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ardugo.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version number of the project along with the
// vcs revision it was built from, as recorded by the Go toolchain.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Ardugo"

// set at build time with the -X linker flag. empty means the project was
// built without the makefile.
var number string

// Version returns the version string and the vcs revision. If the source has
// been modified but not committed then the revision string is suffixed with
// "+dirty".
//
// A version string of "local" means that there is no version number and no
// vcs information. This can happen when compiling/running with "go run ."
func Version() (string, string) {
	version := number
	if version == "" {
		version = "unreleased"
	}

	var revision string

	info, ok := debug.ReadBuildInfo()
	if ok {
		var modified bool
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
		if modified {
			revision += "+dirty"
		}
	}

	if revision == "" {
		if number == "" {
			version = "local"
		}
		revision = "no vcs information"
	}

	return version, revision
}
