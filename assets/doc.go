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

// Package assets locates the static files required by the emulation. These
// are the ROM images, the tape loader snapshots and the core module.
//
// Assets are arranged in a base directory:
//
//	roms/128-0.rom
//	roms/128-1.rom
//	roms/48.rom
//	roms/pentagon-0.rom
//	roms/trdos.rom
//	tapeloaders/tape_48.szx
//	tapeloaders/tape_128.szx
//	core/jsspeccy-core.wasm
//
// If no base directory is specified, the ".zxpreview" directory in the current
// working directory is used if it exists. Otherwise the "zxpreview" directory
// in the user's configuration directory is used. On modern Linux systems that
// would be something like:
//
//	/home/user/.config/zxpreview/
package assets
