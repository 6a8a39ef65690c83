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
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/jetsetilly/zxpreview/tapeloader"
)

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	data []float32
}

func isWAV(d []byte) bool {
	return len(d) >= 12 && string(d[0:4]) == "RIFF" && string(d[8:12]) == "WAVE"
}

func getPCM(ld tapeloader.Loader) (pcmData, error) {
	p := pcmData{
		data: make([]float32, 0),
	}

	if isWAV(ld.Data) {
		dec := wav.NewDecoder(bytes.NewReader(ld.Data))
		if dec == nil {
			return p, fmt.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return p, fmt.Errorf("wav: not a valid wav file")
		}

		logger.Log(logger.Allow, logTag, "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, fmt.Errorf("wav: %w", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}

		// copy first channel only of data stream
		p.data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = float64(dec.SampleRate)
	} else {
		dec, err := mp3.NewDecoder(bytes.NewReader(ld.Data))
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}

		logger.Log(logger.Allow, logTag, "loading from mp3 file")

		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, fmt.Errorf("mp3: %w", err)
			}

			// the stream is always 16bit little endian stereo. four bytes
			// per sample and the left channel is first
			for i := 0; i+1 < chunkLen; i += 4 {
				f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				p.data = append(p.data, float32(f))
			}
		}

		p.sampleRate = float64(dec.SampleRate())
	}

	if p.sampleRate <= 0 {
		return p, fmt.Errorf("invalid sample rate")
	}

	p.totalTime = float64(len(p.data)) / p.sampleRate

	logger.Logf(logger.Allow, logTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(logger.Allow, logTag, "total time: %.02fs", p.totalTime)

	return p, nil
}
