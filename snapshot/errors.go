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

package snapshot

// error patterns returned by Parse() and ParseStrict(). use the curated
// package to test for them.
const (
	// the file does not begin with the ZXST signature
	FormatError = "snapshot: format error: %v"

	// the header or a block declares more data than the file contains
	TruncatedDataError = "snapshot: truncated data: %v"
)
