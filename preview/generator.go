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
	"context"
	"image"
	"time"

	"github.com/jetsetilly/zxpreview/assets"
	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/core/wasmcore"
	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/digest"
	"github.com/jetsetilly/zxpreview/display"
	"github.com/jetsetilly/zxpreview/gifenc"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/jetsetilly/zxpreview/machine"
	"github.com/jetsetilly/zxpreview/snapshot"
	"github.com/jetsetilly/zxpreview/tape"
)

const logTag = "preview"

// the delay of each frame in the GIF in hundredths of a second
const gifFrameDelay = FrameDurationMs / 10

// Error patterns returned by the preview package.
const (
	GenerationError = "preview: %v"
	NoAssetsError   = "preview: generator has no assets"
)

// Encoder is implemented by the output encoder. The gifenc.Encoder type
// satisfies the interface.
type Encoder interface {
	AddFrame(*image.RGBA) error
	Finish() ([]byte, error)
}

// Generator creates previews. A Generator should not be used for more than one
// preview at a time.
type Generator struct {
	drv  *machine.Driver
	dec  *display.Decoder
	opts Options

	// assets are required for GenerateFromTAP()
	assets *assets.Assets

	// closed by Close()
	closer interface{ Close() error }
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The driver should have a core loaded and the ROMs in place.
func NewGenerator(drv *machine.Driver, dec *display.Decoder, opts Options) *Generator {
	return &Generator{
		drv:  drv,
		dec:  dec,
		opts: opts,
	}
}

// NewFromAssets creates a Generator with the core module and ROMs found in the
// assets.
func NewFromAssets(ctx context.Context, a assets.Assets, opts Options) (*Generator, error) {
	wasm, err := a.Core()
	if err != nil {
		return nil, curated.Errorf(GenerationError, err)
	}

	c, err := wasmcore.Load(ctx, wasm)
	if err != nil {
		return nil, curated.Errorf(GenerationError, err)
	}

	drv := machine.NewDriver()
	drv.LoadCore(c)

	if err := drv.LoadROMs(a); err != nil {
		c.Close()
		return nil, curated.Errorf(GenerationError, err)
	}

	gen := NewGenerator(drv, display.NewDecoder(), opts)
	gen.assets = &a
	gen.closer = c

	return gen, nil
}

// Close releases the resources used by the generator.
func (gen *Generator) Close() error {
	if gen.closer == nil {
		return nil
	}
	err := gen.closer.Close()
	gen.closer = nil
	return err
}

// Driver returns the machine driver used by the generator.
func (gen *Generator) Driver() *machine.Driver {
	return gen.drv
}

// GenerateFromTAP creates a GIF preview of the tape data using the tape loader
// snapshot for the machine type.
func (gen *Generator) GenerateFromTAP(tapData []byte, m core.MachineType) ([]byte, Summary, error) {
	if gen.assets == nil {
		return nil, Summary{}, curated.Errorf(NoAssetsError)
	}

	d, err := gen.assets.TapeLoader(m)
	if err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}

	snap, err := snapshot.Parse(d)
	if err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}

	enc := gifenc.New(display.Width, display.Height, gen.opts.Scale)
	enc.SetDelay(gifFrameDelay)
	enc.SetRepeat(0)

	return gen.Generate(tapData, m, snap, enc)
}

// Generate a preview of the tape data. The machine is started from the loader
// snapshot, which should be a snapshot of the machine running the ROM tape
// loading routine.
//
// The encoder output is only returned if generation was successful.
func (gen *Generator) Generate(tapData []byte, m core.MachineType, loader *snapshot.Snapshot, enc Encoder) ([]byte, Summary, error) {
	if !tape.IsValid(tapData) {
		logger.Log(logger.Allow, logTag, "tape data is not a valid TAP file. using blocks that can be parsed")
	}
	tap := tape.NewTAP(tapData)

	if err := gen.drv.SetMachineType(m); err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}
	if err := gen.drv.SetTapeTraps(true); err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}
	if err := gen.drv.AttachTape(tap); err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}
	if err := gen.drv.LoadSnapshot(loader); err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}

	sess := newSession(gen.opts.StaleFrameThreshold)
	maxFrames := gen.opts.MaxFrames()
	startTraps := gen.drv.Traps()
	dig := digest.NewVideo()

	var encoded int
	var stale bool

	for sess.frameCount < maxFrames {
		frame, err := gen.drv.RunFrame()
		if err != nil {
			return nil, Summary{}, curated.Errorf(GenerationError, err)
		}

		dig.Frame(frame)

		img, err := gen.dec.Decode(frame)
		if err != nil {
			return nil, Summary{}, curated.Errorf(GenerationError, err)
		}

		if sess.frameCount >= gen.opts.IgnoreInitialFrames {
			if err := enc.AddFrame(img); err != nil {
				return nil, Summary{}, curated.Errorf(GenerationError, err)
			}
			encoded++
		}

		hadChange := sess.hasSeenChange
		stale = sess.frame(frame)
		if !hadChange && sess.hasSeenChange {
			logger.Logf(logger.Allow, logTag, "first frame change detected at frame %d", sess.firstChange)
		}

		if stale {
			logger.Logf(logger.Allow, logTag, "stopping: %d stale frames after %d total frames", sess.staleCount, sess.frameCount)
			break
		}
	}

	b, err := enc.Finish()
	if err != nil {
		return nil, Summary{}, curated.Errorf(GenerationError, err)
	}

	sum := Summary{
		Frames:       sess.frameCount,
		Encoded:      encoded,
		FirstChange:  sess.firstChange,
		StoppedStale: stale,
		Traps:        gen.drv.Traps() - startTraps,
		Digest:       dig.Hash(),
		Elapsed:      time.Since(sess.startTime),
	}
	logger.Logf(logger.Allow, logTag, "%s", sum)

	return b, sum, nil
}
