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

import (
	"image"

	"github.com/jetsetilly/zxpreview/curated"
)

// Geometry of the decoded image.
const (
	Width  = 320
	Height = 240
)

// Layout of the core framebuffer.
const (
	borderRows       = 24
	borderRowBytes   = Width / 2
	mainRows         = 192
	sideBorderBytes  = 16
	screenCellsInRow = 32
	mainRowBytes     = sideBorderBytes*2 + screenCellsInRow*2

	// FrameBufferSize is the minimum length of framebuffer data accepted by
	// the decoder
	FrameBufferSize = borderRows*borderRowBytes*2 + mainRows*mainRowBytes
)

// number of frames in a complete flash cycle and the bit of the phase counter
// that indicates inverted colours
const (
	flashCycle = 32
	flashBit   = 0x10
)

// ShortFrameBufferError is returned by Decode() when the framebuffer data is
// too short.
const ShortFrameBufferError = "display: short framebuffer: %d bytes"

// Decoder converts framebuffer data to images. The zero value is ready to
// use.
type Decoder struct {
	flashPhase int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// FlashPhase returns the phase that will be used by the next call to Decode().
func (dec *Decoder) FlashPhase() int {
	return dec.flashPhase
}

// Decode framebuffer data into a new image. The flash phase is advanced after
// every successful decode.
func (dec *Decoder) Decode(fb []byte) (*image.RGBA, error) {
	if len(fb) < FrameBufferSize {
		return nil, curated.Errorf(ShortFrameBufferError, len(fb))
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	flashing := dec.flashPhase&flashBit == flashBit

	var src int
	var y int

	border := func() {
		for i := 0; i < borderRowBytes; i++ {
			dec.pair(img, i*2, y, fb[src]&0x0f)
			src++
		}
		y++
	}

	for r := 0; r < borderRows; r++ {
		border()
	}

	for r := 0; r < mainRows; r++ {
		x := 0
		for i := 0; i < sideBorderBytes; i++ {
			dec.pair(img, x, y, fb[src]&0x0f)
			src++
			x += 2
		}

		for i := 0; i < screenCellsInRow; i++ {
			bitmap := fb[src]
			attr := fb[src+1]
			src += 2

			ink := ((attr & 0x40) >> 3) | (attr & 0x07)
			paper := (attr & 0x78) >> 3
			if attr&0x80 == 0x80 && flashing {
				ink, paper = paper, ink
			}

			for b := 7; b >= 0; b-- {
				c := paper
				if bitmap&(1<<b) != 0 {
					c = ink
				}
				img.SetRGBA(x, y, palette[c])
				x++
			}
		}

		for i := 0; i < sideBorderBytes; i++ {
			dec.pair(img, x, y, fb[src]&0x0f)
			src++
			x += 2
		}

		y++
	}

	for r := 0; r < borderRows; r++ {
		border()
	}

	dec.flashPhase = (dec.flashPhase + 1) % flashCycle

	return img, nil
}

// pair sets two horizontally adjacent pixels to the same colour.
func (dec *Decoder) pair(img *image.RGBA, x int, y int, c uint8) {
	img.SetRGBA(x, y, palette[c])
	img.SetRGBA(x+1, y, palette[c])
}
