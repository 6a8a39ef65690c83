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

package core

import "fmt"

// Status is the value returned by RunFrame() and ResumeFrame().
type Status int

// List of valid Status values.
const (
	StatusOK                 Status = 0
	StatusUnrecognisedOpcode Status = 1
	StatusTapeTrap           Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnrecognisedOpcode:
		return "unrecognised opcode"
	case StatusTapeTrap:
		return "tape trap"
	}
	return fmt.Sprintf("unknown status (%d)", int(s))
}

// MachineType is the numeric machine identifier understood by the core.
type MachineType int

// List of valid MachineType values.
const (
	Machine48K      MachineType = 48
	Machine128K     MachineType = 128
	MachinePentagon MachineType = 5
)

func (m MachineType) String() string {
	switch m {
	case Machine48K:
		return "48K"
	case Machine128K:
		return "128K"
	case MachinePentagon:
		return "Pentagon"
	}
	return fmt.Sprintf("machine %d", int(m))
}

// Memory geometry shared by the core and its users.
const (
	// FrameBufferSize is the number of bytes in the frame buffer produced by
	// every call to RunFrame()
	FrameBufferSize = 0x6600

	// PageSize is the size of a single page of machine memory
	PageSize = 0x4000

	// NumRegisterPairs is the number of register pairs in the core's
	// register file
	NumRegisterPairs = 12
)

// Index of each register pair in the core's register file.
const (
	RegAF = iota
	RegBC
	RegDE
	RegHL
	RegAFx
	RegBCx
	RegDEx
	RegHLx
	RegIX
	RegIY
	RegSP
	RegIR
)

// Core is implemented by the CPU emulation core. Methods mirror the functions
// exported by the core and return an error only if communication with the
// core fails. A running core reports problems with the emulated program
// through the Status value.
type Core interface {
	// RunFrame runs the core until the end of the frame or until a trap
	// condition. ResumeFrame continues a frame that was interrupted by a
	// trap
	RunFrame() (Status, error)
	ResumeFrame() (Status, error)

	SetMachineType(MachineType) error
	Reset() error

	// Poke writes a value into the CPU address space as currently paged
	Poke(addr uint16, value uint8) error

	SetPC(uint16) error
	SetIFF1(bool) error
	SetIFF2(bool) error
	SetIM(uint8) error
	SetHalted(bool) error
	WritePort(port uint16, value uint8) error
	SetTStates(uint32) error

	// SetAudioSamplesPerFrame sets the number of audio samples generated by
	// the core each frame. A value of zero disables audio generation
	SetAudioSamplesPerFrame(int) error

	SetTapeTraps(bool) error

	// FrameBuffer returns a view of the frame buffer in core memory. The
	// view is overwritten by the next call to RunFrame() and should be
	// copied if it is to be retained
	FrameBuffer() ([]byte, error)

	RegisterPair(slot int) (uint16, error)
	SetRegisterPair(slot int, value uint16) error

	// WriteMachineMemory copies data into machine memory at the offset.
	// Machine memory is arranged as consecutive pages of PageSize bytes
	WriteMachineMemory(offset int, data []byte) error

	// AudioBuffer returns the first n samples of the left audio channel
	AudioBuffer(n int) ([]float32, error)
}
