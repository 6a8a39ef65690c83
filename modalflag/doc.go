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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a command line argument that selects a different
// operation and a different set of flags. For example:
//
//	zxpreview GIF -maxMinutes 2 manic.tap
//	zxpreview TAPE manic.tap
//
// Arguments are specified once with NewArgs(). Sub-modes for the next call to
// Parse() are added with AddSubModes(), the first of which is the default
// mode. After Parse() the Mode() function returns the mode that was selected.
// NewMode() then prepares the Modes type for the flags of that mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("GIF", "TAPE")
//	if r, _ := md.Parse(); r != modalflag.ParseContinue {
//		return
//	}
//
//	switch md.Mode() {
//	case "GIF":
//		md.NewMode()
//		scale := md.AddInt("scale", 1, "output scale")
//		...
//	}
//
// Mode comparisons are case insensitive. Modes are always reported in upper
// case.
package modalflag
