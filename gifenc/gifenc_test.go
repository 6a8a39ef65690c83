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

package gifenc_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/display"
	"github.com/jetsetilly/zxpreview/gifenc"
	"github.com/jetsetilly/zxpreview/test"
)

func frame(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestNoFrames(t *testing.T) {
	enc := gifenc.New(4, 2, 1)
	_, err := enc.Finish()
	test.ExpectSuccess(t, curated.Is(err, gifenc.NoFramesError))
}

func TestWrongSize(t *testing.T) {
	enc := gifenc.New(8, 8, 1)
	test.ExpectFailure(t, enc.AddFrame(frame(color.RGBA{A: 0xff})))
}

func TestEncode(t *testing.T) {
	p := display.Palette()

	enc := gifenc.New(4, 2, 1)
	enc.SetDelay(2)
	enc.SetRepeat(0)

	red := frame(p[2])
	red.SetRGBA(3, 1, p[15])

	test.DemandSuccess(t, enc.AddFrame(red))
	test.DemandSuccess(t, enc.AddFrame(red))
	test.DemandSuccess(t, enc.AddFrame(frame(p[9])))
	test.ExpectEquality(t, enc.Frames(), 3)
	test.ExpectEquality(t, enc.Images(), 2)

	b, err := enc.Finish()
	test.DemandSuccess(t, err)

	g, err := gif.DecodeAll(bytes.NewReader(b))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(g.Image), 2)
	test.ExpectEquality(t, g.Delay[0], 4)
	test.ExpectEquality(t, g.Delay[1], 2)
	test.ExpectEquality(t, g.LoopCount, 0)

	test.ExpectEquality(t, color.RGBAModel.Convert(g.Image[0].At(0, 0)).(color.RGBA), p[2])
	test.ExpectEquality(t, color.RGBAModel.Convert(g.Image[0].At(3, 1)).(color.RGBA), p[15])
	test.ExpectEquality(t, color.RGBAModel.Convert(g.Image[1].At(0, 0)).(color.RGBA), p[9])
}

func TestScale(t *testing.T) {
	p := display.Palette()

	img := frame(p[0])
	img.SetRGBA(1, 0, p[12])

	enc := gifenc.New(4, 2, 3)
	test.DemandSuccess(t, enc.AddFrame(img))

	b, err := enc.Finish()
	test.DemandSuccess(t, err)

	g, err := gif.DecodeAll(bytes.NewReader(b))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Config.Width, 12)
	test.ExpectEquality(t, g.Config.Height, 6)

	for x := 0; x < 12; x++ {
		expected := p[0]
		if x >= 3 && x < 6 {
			expected = p[12]
		}
		for y := 0; y < 3; y++ {
			test.ExpectEquality(t, color.RGBAModel.Convert(g.Image[0].At(x, y)).(color.RGBA), expected, x, y)
		}
	}
}
