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

package machine

import (
	"github.com/jetsetilly/zxpreview/assets"
	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/jetsetilly/zxpreview/snapshot"
	"github.com/jetsetilly/zxpreview/tape"
)

const logTag = "machine"

// FramesPerSecond is the number of frames run by the machine every second.
const FramesPerSecond = 50

// the I/O ports written to when applying a snapshot
const (
	ulaPort    = 0x00fe
	pagingPort = 0x7ffd
)

// State of the driver.
type State int

// List of valid State values.
const (
	Uninitialised State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Ready:
		return "ready"
	}
	return "unknown state"
}

// AudioRecorder is implemented by types that can receive the audio generated
// by the machine.
type AudioRecorder interface {
	SampleRate() int
	SetAudio([]float32) error
	EndMixing() error
}

// ROMPage associates a ROM file with a page of machine memory.
type ROMPage struct {
	Filename string
	Page     int
}

// ROMPages is the list of ROM images loaded by LoadROMs().
var ROMPages = []ROMPage{
	{Filename: "128-0.rom", Page: 8},
	{Filename: "128-1.rom", Page: 9},
	{Filename: "48.rom", Page: 10},
	{Filename: "pentagon-0.rom", Page: 12},
	{Filename: "trdos.rom", Page: 13},
}

// Driver controls a core.Core.
type Driver struct {
	core  core.Core
	tape  *tape.TAP
	audio AudioRecorder

	// the number of consecutive tape traps that can be serviced with no
	// block available before the load is failed. a value of zero means the
	// trap is never failed for lack of a block and the trap is left
	// unserviced
	TrapStallLimit int

	// number of consecutive traps with no block available
	stalls int

	// total number of traps serviced
	traps int
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver() *Driver {
	return &Driver{}
}

// State returns the current state of the driver.
func (drv *Driver) State() State {
	if drv.core == nil {
		return Uninitialised
	}
	return Ready
}

// LoadCore attaches the core to the driver.
func (drv *Driver) LoadCore(c core.Core) {
	drv.core = c
	logger.Log(logger.Allow, logTag, "core loaded")
}

// Traps returns the number of tape traps that have been serviced.
func (drv *Driver) Traps() int {
	return drv.traps
}

func (drv *Driver) ready() error {
	if drv.core == nil {
		return curated.Errorf(NotLoadedError)
	}
	return nil
}

func coreError(err error) error {
	if err == nil {
		return nil
	}
	return curated.Errorf(CoreError, err)
}

// LoadROM copies ROM data into a page of machine memory.
func (drv *Driver) LoadROM(data []byte, page int) error {
	if err := drv.ready(); err != nil {
		return err
	}
	if len(data) > core.PageSize {
		return curated.Errorf(ROMError, "too large for a single page")
	}
	return coreError(drv.core.WriteMachineMemory(page*core.PageSize, data))
}

// LoadROMs loads every ROM in the ROMPages list.
func (drv *Driver) LoadROMs(a assets.Assets) error {
	if err := drv.ready(); err != nil {
		return err
	}
	for _, r := range ROMPages {
		d, err := a.ROM(r.Filename)
		if err != nil {
			return curated.Errorf(ROMError, err)
		}
		if err := drv.LoadROM(d, r.Page); err != nil {
			return err
		}
		logger.Logf(logger.Allow, logTag, "%s loaded into page %d", r.Filename, r.Page)
	}
	return nil
}

// SetMachineType selects the machine emulated by the core.
func (drv *Driver) SetMachineType(m core.MachineType) error {
	if err := drv.ready(); err != nil {
		return err
	}
	return coreError(drv.core.SetMachineType(m))
}

// Reset the core.
func (drv *Driver) Reset() error {
	if err := drv.ready(); err != nil {
		return err
	}
	return coreError(drv.core.Reset())
}

// SetTapeTraps enables or disables tape traps in the core.
func (drv *Driver) SetTapeTraps(enabled bool) error {
	if err := drv.ready(); err != nil {
		return err
	}
	return coreError(drv.core.SetTapeTraps(enabled))
}

// AttachTape sets the tape that will be used to service tape traps. A nil
// tape detaches the current tape.
func (drv *Driver) AttachTape(tap *tape.TAP) error {
	if err := drv.ready(); err != nil {
		return err
	}
	drv.tape = tap
	drv.stalls = 0
	if tap != nil {
		logger.Logf(logger.Allow, logTag, "tape attached: %d blocks", tap.Len())
	}
	return nil
}

// AttachAudio sets the recorder that will receive the audio generated every
// frame. A nil recorder disables audio generation.
func (drv *Driver) AttachAudio(rec AudioRecorder) error {
	if err := drv.ready(); err != nil {
		return err
	}
	drv.audio = rec
	return nil
}

// LoadSnapshot applies every field of the snapshot to the core.
func (drv *Driver) LoadSnapshot(snap *snapshot.Snapshot) error {
	if err := drv.ready(); err != nil {
		return err
	}

	if err := drv.core.SetMachineType(snap.Model.MachineType()); err != nil {
		return coreError(err)
	}

	for _, p := range snap.Pages() {
		if err := drv.core.WriteMachineMemory(p*core.PageSize, snap.MemoryPages[p]); err != nil {
			return coreError(err)
		}
	}

	r := snap.Registers
	pairs := [core.NumRegisterPairs]uint16{
		r.AF, r.BC, r.DE, r.HL,
		r.AF_, r.BC_, r.DE_, r.HL_,
		r.IX, r.IY, r.SP, r.IR,
	}
	for i, v := range pairs {
		if err := drv.core.SetRegisterPair(i, v); err != nil {
			return coreError(err)
		}
	}

	steps := []func() error{
		func() error { return drv.core.SetPC(r.PC) },
		func() error { return drv.core.SetIFF1(r.IFF1) },
		func() error { return drv.core.SetIFF2(r.IFF2) },
		func() error { return drv.core.SetIM(r.IM) },
		func() error { return drv.core.SetHalted(snap.Halted) },
		func() error { return drv.core.WritePort(ulaPort, snap.ULA.BorderColour) },
		func() error {
			if snap.Model == snapshot.Model48K {
				return nil
			}
			return drv.core.WritePort(pagingPort, snap.ULA.PagingFlags)
		},
		func() error { return drv.core.SetTStates(snap.TStates) },
	}
	for _, s := range steps {
		if err := s(); err != nil {
			return coreError(err)
		}
	}

	logger.Logf(logger.Allow, logTag, "snapshot loaded: %s", snap.Model)

	return nil
}

// RunFrame runs the core for a single frame, servicing any tape traps. The
// returned frame buffer is a copy and is owned by the caller.
func (drv *Driver) RunFrame() ([]byte, error) {
	if err := drv.ready(); err != nil {
		return nil, err
	}

	var samples int
	if drv.audio != nil {
		samples = drv.audio.SampleRate() / FramesPerSecond
	}
	if err := drv.core.SetAudioSamplesPerFrame(samples); err != nil {
		return nil, coreError(err)
	}

	status, err := drv.core.RunFrame()
	for err == nil && status != core.StatusOK {
		switch status {
		case core.StatusUnrecognisedOpcode:
			return nil, curated.Errorf(IllegalOpcodeError)
		case core.StatusTapeTrap:
			if err := drv.serviceTrap(); err != nil {
				return nil, err
			}
		default:
			return nil, curated.Errorf(UnexpectedTrapStatusError, status)
		}
		status, err = drv.core.ResumeFrame()
	}
	if err != nil {
		return nil, coreError(err)
	}

	fb, err := drv.core.FrameBuffer()
	if err != nil {
		return nil, coreError(err)
	}
	frame := make([]byte, len(fb))
	copy(frame, fb)

	if drv.audio != nil {
		a, err := drv.core.AudioBuffer(samples)
		if err != nil {
			return nil, coreError(err)
		}
		if err := drv.audio.SetAudio(a); err != nil {
			return nil, curated.Errorf(CoreError, err)
		}
	}

	return frame, nil
}
