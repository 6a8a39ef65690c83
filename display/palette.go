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

package display

import "image/color"

// the intensity of normal and bright colours
const (
	normalIntensity = 0xdd
	brightIntensity = 0xff
)

// NumColours is the number of entries in the palette.
const NumColours = 16

// palette holds the eight normal colours followed by the eight bright
// colours. entries are in the order black, blue, red, magenta, green, cyan,
// yellow, white.
var palette [NumColours]color.RGBA

func init() {
	for i := range palette {
		v := uint8(normalIntensity)
		if i >= 8 {
			v = brightIntensity
		}
		var c color.RGBA
		c.A = 0xff
		if i&0x01 == 0x01 {
			c.B = v
		}
		if i&0x02 == 0x02 {
			c.R = v
		}
		if i&0x04 == 0x04 {
			c.G = v
		}
		palette[i] = c
	}
}

// Palette returns a copy of the colours used by the decoder. Bright black is
// indistinguishable from normal black.
func Palette() [NumColours]color.RGBA {
	return palette
}
