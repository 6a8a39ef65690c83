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

// Package snapshot reads machine state from SZX ("ZXST") files. An SZX file
// is a short header followed by a list of blocks, each block introduced by a
// four character identifier and a length. Blocks that are not needed to
// restore the machine are skipped.
//
// Parse() is the entry point. The resulting Snapshot can be applied to an
// emulation with the LoadSnapshot() function in the machine package.
//
// Compressed memory pages that decode to fewer than 16384 bytes are accepted
// by Parse() and the remainder of the page is left as zero. ParseStrict()
// rejects such pages.
package snapshot
