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

// Package soundload decodes audio recordings of tapes saved by the ZX Spectrum
// ROM. The result is a list of tape blocks that can be encoded as a TAP file
// or served directly to the machine.
//
// Recordings can be WAV or MP3 files. Only the first channel of a stereo
// recording is used.
//
// The ROM saves a block as a pilot tone, two sync pulses and then the data.
// Each bit is two pulses of equal length. A zero bit is two pulses of 855
// T-states and a one bit is two pulses of 1710 T-states. Bytes are saved most
// significant bit first. The end of a block is marked by silence or by a pulse
// that is too long to be part of a bit.
package soundload
