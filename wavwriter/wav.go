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

// Package wavwriter records the audio generated by the emulation and writes it
// to a WAV file once mixing has ended.
package wavwriter

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/logger"
)

// the format of the WAV file
const (
	bitDepth    = 16
	numChannels = 1

	// audio format value for PCM data
	pcmFormat = 1
)

// WavWriter implements the machine.AudioRecorder interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SampleRate returns the sample rate of the WAV file.
func (aw *WavWriter) SampleRate() int {
	return aw.sampleRate
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// SetAudio adds samples to the recording. Samples are in the range -1.0 to
// 1.0 and are clamped if necessary.
func (aw *WavWriter) SetAudio(samples []float32) error {
	for _, s := range samples {
		v := math.Max(-1.0, math.Min(1.0, float64(s)))
		aw.buffer = append(aw.buffer, int(v*math.MaxInt16))
	}
	return nil
}

// EndMixing writes the recording to the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s (%d samples)", aw.filename, len(aw.buffer))

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
