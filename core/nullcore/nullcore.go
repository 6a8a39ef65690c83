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

// Package nullcore implements the core.Core interface without emulating a CPU.
// Frame results and status values are scripted by the user. Every call is
// recorded so that the order of operations can be checked.
package nullcore

import (
	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/curated"
)

// number of pages of machine memory
const numPages = 16

// PortWrite records a call to WritePort().
type PortWrite struct {
	Port  uint16
	Value uint8
}

// Core is a scriptable implementation of core.Core. The zero value is not
// usable. Use NewCore().
type Core struct {
	// the CPU address space written to by Poke()
	Memory [0x10000]uint8

	// machine memory written to by WriteMachineMemory()
	MachineMemory []byte

	Registers [core.NumRegisterPairs]uint16

	MachineType  core.MachineType
	PC           uint16
	IFF1         bool
	IFF2         bool
	IM           uint8
	Halted       bool
	TStates      uint32
	TapeTraps    bool
	AudioSamples int
	Ports        []PortWrite

	// Calls is the name of every method called on the core in order
	Calls []string

	// Statuses is consumed by RunFrame() and ResumeFrame(). StatusOK is
	// returned when the list is empty
	Statuses []core.Status

	// Frames is consumed by RunFrame(). When empty the last frame is
	// repeated
	Frames [][]byte

	// OnTrap is called when a status of StatusTapeTrap is returned
	OnTrap func(*Core)

	frameBuffer []byte
	audio       []float32
}

// sanity check that Core satisfies the core.Core interface
var _ core.Core = (*Core)(nil)

// NewCore is the preferred method of initialisation for the Core type.
func NewCore() *Core {
	return &Core{
		MachineMemory: make([]byte, numPages*core.PageSize),
		frameBuffer:   make([]byte, core.FrameBufferSize),
	}
}

func (c *Core) call(name string) {
	c.Calls = append(c.Calls, name)
}

func (c *Core) status() core.Status {
	if len(c.Statuses) == 0 {
		return core.StatusOK
	}
	s := c.Statuses[0]
	c.Statuses = c.Statuses[1:]
	if s == core.StatusTapeTrap && c.OnTrap != nil {
		c.OnTrap(c)
	}
	return s
}

// RunFrame implements the core.Core interface.
func (c *Core) RunFrame() (core.Status, error) {
	c.call("RunFrame")
	if len(c.Frames) > 0 {
		copy(c.frameBuffer, c.Frames[0])
		c.Frames = c.Frames[1:]
	}
	c.audio = make([]float32, c.AudioSamples)
	return c.status(), nil
}

// ResumeFrame implements the core.Core interface.
func (c *Core) ResumeFrame() (core.Status, error) {
	c.call("ResumeFrame")
	return c.status(), nil
}

// SetMachineType implements the core.Core interface.
func (c *Core) SetMachineType(m core.MachineType) error {
	c.call("SetMachineType")
	c.MachineType = m
	return nil
}

// Reset implements the core.Core interface.
func (c *Core) Reset() error {
	c.call("Reset")
	c.PC = 0
	return nil
}

// Poke implements the core.Core interface.
func (c *Core) Poke(addr uint16, value uint8) error {
	c.Memory[addr] = value
	return nil
}

// SetPC implements the core.Core interface.
func (c *Core) SetPC(pc uint16) error {
	c.call("SetPC")
	c.PC = pc
	return nil
}

// SetIFF1 implements the core.Core interface.
func (c *Core) SetIFF1(v bool) error {
	c.call("SetIFF1")
	c.IFF1 = v
	return nil
}

// SetIFF2 implements the core.Core interface.
func (c *Core) SetIFF2(v bool) error {
	c.call("SetIFF2")
	c.IFF2 = v
	return nil
}

// SetIM implements the core.Core interface.
func (c *Core) SetIM(v uint8) error {
	c.call("SetIM")
	c.IM = v
	return nil
}

// SetHalted implements the core.Core interface.
func (c *Core) SetHalted(v bool) error {
	c.call("SetHalted")
	c.Halted = v
	return nil
}

// WritePort implements the core.Core interface.
func (c *Core) WritePort(port uint16, value uint8) error {
	c.call("WritePort")
	c.Ports = append(c.Ports, PortWrite{Port: port, Value: value})
	return nil
}

// SetTStates implements the core.Core interface.
func (c *Core) SetTStates(v uint32) error {
	c.call("SetTStates")
	c.TStates = v
	return nil
}

// SetAudioSamplesPerFrame implements the core.Core interface.
func (c *Core) SetAudioSamplesPerFrame(n int) error {
	c.AudioSamples = n
	return nil
}

// SetTapeTraps implements the core.Core interface.
func (c *Core) SetTapeTraps(v bool) error {
	c.call("SetTapeTraps")
	c.TapeTraps = v
	return nil
}

// FrameBuffer implements the core.Core interface.
func (c *Core) FrameBuffer() ([]byte, error) {
	return c.frameBuffer, nil
}

// RegisterPair implements the core.Core interface.
func (c *Core) RegisterPair(slot int) (uint16, error) {
	if slot < 0 || slot >= core.NumRegisterPairs {
		return 0, curated.Errorf("nullcore: no register pair %d", slot)
	}
	return c.Registers[slot], nil
}

// SetRegisterPair implements the core.Core interface.
func (c *Core) SetRegisterPair(slot int, value uint16) error {
	if slot < 0 || slot >= core.NumRegisterPairs {
		return curated.Errorf("nullcore: no register pair %d", slot)
	}
	c.Registers[slot] = value
	return nil
}

// WriteMachineMemory implements the core.Core interface.
func (c *Core) WriteMachineMemory(offset int, data []byte) error {
	c.call("WriteMachineMemory")
	if offset < 0 || offset+len(data) > len(c.MachineMemory) {
		return curated.Errorf("nullcore: machine memory write out of range (%#x, %d bytes)", offset, len(data))
	}
	copy(c.MachineMemory[offset:], data)
	return nil
}

// AudioBuffer implements the core.Core interface. The samples are silent.
func (c *Core) AudioBuffer(n int) ([]float32, error) {
	if n > len(c.audio) {
		n = len(c.audio)
	}
	return c.audio[:n], nil
}

// Page returns the contents of a page of machine memory.
func (c *Core) Page(page int) []byte {
	return c.MachineMemory[page*core.PageSize : (page+1)*core.PageSize]
}
