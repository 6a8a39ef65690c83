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

// Package tapeloader is used to specify and load the tape to be used by the
// emulation. Tapes can be loaded from the local filesystem, from inside a zip
// archive or from an HTTP server.
//
// A file inside a zip archive is specified by treating the archive as a
// directory:
//
//	games/manic.zip/MANIC.TAP
//
// If the filename names the archive itself then the first file in the archive
// with a recognised extension is used.
//
// The IsSoundData field indicates that the data is a recording of a tape
// rather than a TAP file. The soundload package can convert sound data into
// tape blocks.
package tapeloader
