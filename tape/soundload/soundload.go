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

package soundload

import (
	"math"

	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/jetsetilly/zxpreview/tape"
	"github.com/jetsetilly/zxpreview/tapeloader"
)

const logTag = "soundload"

// ClockRate is the number of T-states per second used to measure pulses.
const ClockRate = 3500000

// pulse lengths in T-states
const (
	pilotMin = 1900
	pilotMax = 2500

	// minimum number of pilot pulses before a sync pulse is accepted
	pilotCount = 256

	syncMax = 1100

	// a pair of pulses shorter than this is a zero bit. the value is midway
	// between the lengths of a zero bit and a one bit
	bitThreshold = 2565

	// pulses or pairs longer than these end the block
	pulseMax = 2400
	pairMax  = 4800
)

// blocks shorter than this are noise
const minBlockLength = 2

// level threshold as a fraction of peak amplitude
const hysteresis = 0.1

// Decode the sound data in the loader. The loader must have been loaded.
func Decode(ld tapeloader.Loader) ([]tape.Block, error) {
	if !ld.HasLoaded() {
		return nil, curated.Errorf("soundload: %v", "no data")
	}

	p, err := getPCM(ld)
	if err != nil {
		return nil, curated.Errorf("soundload: %v", err)
	}

	blocks := DecodePCM(p.data, p.sampleRate)
	logger.Logf(logger.Allow, logTag, "%d blocks decoded", len(blocks))

	return blocks, nil
}

// DecodePCM decodes mono PCM data sampled at sampleRate.
func DecodePCM(data []float32, sampleRate float64) []tape.Block {
	return decodePulses(pulses(data, sampleRate))
}

// pulses returns the length of every pulse in T-states. a pulse is the time
// between two edges. the time after the final edge is not a pulse
func pulses(data []float32, sampleRate float64) []float64 {
	var peak float64
	for _, s := range data {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	if peak == 0 {
		return nil
	}
	thr := peak * hysteresis

	tstatesPerSample := ClockRate / sampleRate

	var p []float64

	// level is zero until the first time the signal crosses the threshold
	var level int
	var last int

	for i, s := range data {
		var l int
		switch {
		case float64(s) > thr:
			l = 1
		case float64(s) < -thr:
			l = -1
		default:
			continue
		}

		if level == 0 {
			level = l
			last = i
			continue
		}

		if l != level {
			p = append(p, float64(i-last)*tstatesPerSample)
			level = l
			last = i
		}
	}

	return p
}

type decodeState int

const (
	statePilot decodeState = iota
	stateSync
	stateData
)

func decodePulses(p []float64) []tape.Block {
	var blocks []tape.Block

	var state decodeState
	var pilots int
	var data []byte
	var current uint8
	var bits int

	end := func() {
		if len(data) >= minBlockLength {
			blocks = append(blocks, tape.Block(data))
			logger.Logf(logger.Allow, logTag, "block %d: %d bytes", len(blocks)-1, len(data))
		} else if len(data) > 0 {
			logger.Logf(logger.Allow, logTag, "discarding short block (%d bytes)", len(data))
		}
		state = statePilot
		pilots = 0
		data = nil
		current = 0
		bits = 0
	}

	for i := 0; i < len(p); i++ {
		switch state {
		case statePilot:
			if p[i] >= pilotMin && p[i] <= pilotMax {
				pilots++
			} else if p[i] < syncMax && pilots >= pilotCount {
				state = stateSync
			} else {
				pilots = 0
			}

		case stateSync:
			// second sync pulse
			if p[i] < syncMax {
				state = stateData
				data = make([]byte, 0)
			} else {
				pilots = 0
				state = statePilot
			}

		case stateData:
			if i+1 >= len(p) {
				end()
				break
			}

			a := p[i]
			b := p[i+1]
			if a > pulseMax || a+b > pairMax {
				end()

				// the pulse that ended the block may be the start of the
				// next pilot tone
				if a >= pilotMin && a <= pilotMax {
					pilots = 1
				}
				break
			}
			i++

			current <<= 1
			if a+b >= bitThreshold {
				current |= 0x01
			}
			bits++
			if bits == 8 {
				data = append(data, current)
				current = 0
				bits = 0
			}
		}
	}

	if state == stateData {
		end()
	}

	return blocks
}
