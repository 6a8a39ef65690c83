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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that need to
// signal a particular class of error to the caller should store the pattern
// as a const string and the caller can then test for it with Is() or Has().
// For example, the snapshot package defines:
//
//	const FormatError = "snapshot: format error: %v"
//
// and a caller might do:
//
//	snap, err := snapshot.Parse(data)
//	if curated.Is(err, snapshot.FormatError) {
//		fmt.Println("not an SZX file")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is useful when an error has been wrapped by a higher
// level package:
//
//	err := curated.Errorf("preview: %v", err)
//	if curated.Has(err, snapshot.FormatError) {
//		fmt.Println("not an SZX file")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So the following:
//
//	e := curated.Errorf("machine: %v", curated.Errorf("machine: core not loaded"))
//
// will print as "machine: core not loaded" and not "machine: machine: core not
// loaded".
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
