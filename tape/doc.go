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

// Package tape reads TAP files. A TAP file is a sequence of blocks, each
// block preceded by its length as a little-endian 16bit value. The blocks are
// exactly what the Spectrum ROM tape routines save and load: a flag byte,
// the data and a checksum byte.
//
// The TAP type serves blocks in order, one block per call to
// NextLoadableBlock(). When the last block has been served the tape is
// rewound automatically, so a program that loads repeatedly will never find
// the tape exhausted.
package tape
