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

// Package display converts the border and screen data produced by the
// emulation core into 320x240 RGBA images.
//
// The core framebuffer is laid out as a sequence of rows. Border rows hold one
// byte per pair of pixels. Main screen rows hold 16 left border bytes, 32
// pairs of bitmap and attribute bytes, and 16 right border bytes.
//
// The Decoder maintains a flash phase that advances once per decoded frame.
// Attributes with the flash bit set have their ink and paper colours
// exchanged for 16 frames in every 32.
package display
