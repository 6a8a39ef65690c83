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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video is a chained digest of frame data.
type Video struct {
	digest [sha1.Size]byte
	buffer []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash returns the current value of the digest.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// ResetDigest returns the digest to its initial state.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frame adds a frame to the digest.
func (dig *Video) Frame(frame []byte) {
	// the previous digest is placed at the head of the buffer followed by the
	// frame data
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, frame...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++
}
