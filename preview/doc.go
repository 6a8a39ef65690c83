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

// Package preview generates an animated preview of a tape by emulating the
// machine while the tape loads.
//
// The machine is started from a snapshot of the tape loading routine. Every
// frame is run, decoded and added to the encoder. The raw frame data is
// compared with the previous frame and once the display has stopped changing
// for a number of frames the generation ends. The display must have changed at
// least once before unchanging frames are counted. This prevents the screen
// shown while the first block is found from ending the preview.
//
// Generation is always bounded by the maximum duration option. The machine
// runs at 50 frames per second so a duration of three minutes is 9000 frames.
package preview
