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

package preview

// FrameDurationMs is the duration of a single frame in milliseconds.
const FrameDurationMs = 20

// Options control the generation of a preview.
type Options struct {
	// the maximum duration of the preview in milliseconds of emulated time
	MaxDurationMs int

	// the number of consecutive unchanged frames that ends the preview
	StaleFrameThreshold int

	// the number of frames at the start of the preview that are emulated but
	// not added to the encoder
	IgnoreInitialFrames int

	// the output scale for previews created by GenerateFromTAP()
	Scale int
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		MaxDurationMs:       180000,
		StaleFrameThreshold: 500,
		IgnoreInitialFrames: 0,
		Scale:               1,
	}
}

// MaxFrames returns the maximum number of frames that will be emulated.
func (o Options) MaxFrames() int {
	return o.MaxDurationMs / FrameDurationMs
}
