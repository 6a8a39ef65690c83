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

// Package gifenc encodes a sequence of decoded frames as an animated GIF. The
// palette is made up of the machine's colours so no quantisation is
// required. Consecutive frames that are identical are merged into a single
// frame with a longer delay.
package gifenc

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"

	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/display"
	"golang.org/x/image/draw"
)

// NoFramesError is returned by Finish() if no frames have been added.
const NoFramesError = "gifenc: no frames"

// Encoder collects frames and encodes them as an animated GIF.
type Encoder struct {
	width  int
	height int
	scale  int

	// delay of each frame in hundredths of a second
	delay int

	// number of times the animation repeats. zero means forever and -1 means
	// the animation is shown once
	repeat int

	palette color.Palette
	lookup  map[color.RGBA]uint8

	anim gif.GIF

	// number of calls to AddFrame()
	frames int
}

// New is the preferred method of initialisation for the Encoder type. Frames
// added to the encoder must be of the specified size. The output is scaled
// by the scale value, which must be at least one.
func New(width int, height int, scale int) *Encoder {
	if scale < 1 {
		scale = 1
	}

	enc := &Encoder{
		width:  width,
		height: height,
		scale:  scale,
		delay:  2,
		lookup: make(map[color.RGBA]uint8),
	}

	for _, c := range display.Palette() {
		if _, ok := enc.lookup[c]; ok {
			continue
		}
		enc.lookup[c] = uint8(len(enc.palette))
		enc.palette = append(enc.palette, c)
	}

	return enc
}

// SetDelay sets the delay of subsequent frames in hundredths of a second.
func (enc *Encoder) SetDelay(cs int) {
	enc.delay = cs
}

// SetRepeat sets the number of times the animation repeats. A value of zero
// means the animation repeats forever.
func (enc *Encoder) SetRepeat(n int) {
	enc.repeat = n
}

// Frames returns the number of frames added to the encoder.
func (enc *Encoder) Frames() int {
	return enc.frames
}

// Images returns the number of images in the encoded animation. This will be
// less than the value of Frames() if identical frames have been merged.
func (enc *Encoder) Images() int {
	return len(enc.anim.Image)
}

// AddFrame adds an image to the animation.
func (enc *Encoder) AddFrame(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != enc.width || b.Dy() != enc.height {
		return curated.Errorf("gifenc: frame is %dx%d not %dx%d", b.Dx(), b.Dy(), enc.width, enc.height)
	}

	src := img
	if enc.scale > 1 {
		src = image.NewRGBA(image.Rect(0, 0, enc.width*enc.scale, enc.height*enc.scale))
		draw.NearestNeighbor.Scale(src, src.Bounds(), img, b, draw.Src, nil)
	}

	p := image.NewPaletted(src.Bounds(), enc.palette)
	for y := 0; y < p.Rect.Dy(); y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		pi := p.PixOffset(0, y)
		for x := 0; x < p.Rect.Dx(); x++ {
			c := color.RGBA{R: src.Pix[si], G: src.Pix[si+1], B: src.Pix[si+2], A: src.Pix[si+3]}
			idx, ok := enc.lookup[c]
			if !ok {
				idx = uint8(enc.palette.Index(c))
			}
			p.Pix[pi+x] = idx
			si += 4
		}
	}

	enc.frames++

	if n := len(enc.anim.Image); n > 0 && bytes.Equal(enc.anim.Image[n-1].Pix, p.Pix) {
		enc.anim.Delay[n-1] += enc.delay
		return nil
	}

	enc.anim.Image = append(enc.anim.Image, p)
	enc.anim.Delay = append(enc.anim.Delay, enc.delay)

	return nil
}

// Finish encodes the animation.
func (enc *Encoder) Finish() ([]byte, error) {
	if len(enc.anim.Image) == 0 {
		return nil, curated.Errorf(NoFramesError)
	}

	enc.anim.LoopCount = enc.repeat
	enc.anim.Config = image.Config{
		ColorModel: enc.palette,
		Width:      enc.width * enc.scale,
		Height:     enc.height * enc.scale,
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, &enc.anim); err != nil {
		return nil, curated.Errorf("gifenc: %v", err)
	}

	return buf.Bytes(), nil
}
