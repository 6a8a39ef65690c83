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

import (
	"bytes"
	"fmt"
	"time"
)

// session is the state of a single call to Generate()
type session struct {
	threshold int

	frameCount int
	staleCount int

	// owned copy of the previous frame
	previous []byte

	hasSeenChange bool
	firstChange   int

	startTime time.Time
}

func newSession(threshold int) *session {
	return &session{
		threshold: threshold,
		startTime: time.Now(),
	}
}

// frame records the next frame and returns true if the stale threshold has
// been reached. the session takes ownership of the frame.
func (s *session) frame(frame []byte) bool {
	s.frameCount++

	defer func() {
		s.previous = frame
	}()

	// the first frame has nothing to be compared with and so always counts as
	// a change
	if s.previous != nil && bytes.Equal(frame, s.previous) {
		if s.hasSeenChange {
			s.staleCount++
			return s.staleCount >= s.threshold
		}
		return false
	}

	if !s.hasSeenChange {
		s.firstChange = s.frameCount
		s.hasSeenChange = true
	}
	s.staleCount = 0

	return false
}

// Summary of a completed generation.
type Summary struct {
	// number of frames emulated
	Frames int

	// number of frames added to the encoder
	Encoded int

	// the frame number of the first frame that differed from the frame
	// before it. the first frame always differs so this is one unless no
	// frames were emulated
	FirstChange int

	// whether the generation ended because the display stopped changing
	StoppedStale bool

	// number of tape traps serviced
	Traps int

	// chained digest of every emulated frame
	Digest string

	// real time taken
	Elapsed time.Duration
}

func (s Summary) String() string {
	reason := "duration limit"
	if s.StoppedStale {
		reason = "stale frames"
	}
	return fmt.Sprintf("%d frames (%d encoded), first change at frame %d, %d tape traps, stopped by %s in %s",
		s.Frames, s.Encoded, s.FirstChange, s.Traps, reason, s.Elapsed.Round(time.Millisecond))
}
