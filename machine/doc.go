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

// Package machine drives the emulation core. It applies snapshots, loads the
// ROM images, runs frames and services the tape traps raised by the core.
//
// A Driver starts in the Uninitialised state. Once a core has been attached
// with LoadCore() the driver is Ready and all other functions can be used.
// Calling any function before then results in a NotLoadedError.
//
// Tape traps are raised by the core when the ROM tape loading routine is
// entered. The driver takes the next block from the attached tape and copies
// it into memory, as the ROM routine would have done, before returning to the
// ROM at the point where the routine exits.
package machine
