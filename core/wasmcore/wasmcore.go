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

package wasmcore

import (
	"context"

	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Error patterns returned by the wasmcore package.
const (
	MissingExportError = "wasmcore: module does not export %s"
	MemoryAccessError  = "wasmcore: memory access out of range: %s (%#x)"
	CallError          = "wasmcore: %s: %v"
)

const logTag = "wasmcore"

// names of the exported globals
const (
	globalFrameBuffer   = "FRAME_BUFFER"
	globalRegisters     = "REGISTERS"
	globalMachineMemory = "MACHINE_MEMORY"
	globalAudioLeft     = "AUDIO_BUFFER_LEFT"

	// optional. a core without tape pulse playback does not export these
	globalTapePulses       = "TAPE_PULSES"
	globalTapePulsesLength = "TAPE_PULSES_LENGTH"
)

// names of exported functions
var functionNames = [...]string{
	"runFrame", "resumeFrame", "setMachineType", "reset", "poke", "setPC",
	"setIFF1", "setIFF2", "setIM", "setHalted", "writePort", "setTStates",
	"setAudioSamplesPerFrame", "setTapeTraps",
}

// Core hosts an instance of the core module.
type Core struct {
	ctx     context.Context
	runtime wazero.Runtime
	mod     api.Module
	mem     api.Memory

	fn map[string]api.Function

	frameBuffer   uint32
	registers     uint32
	machineMemory uint32
	audioLeft     uint32

	tapePulses       uint32
	tapePulsesLength uint32
}

// sanity check that Core satisfies the core.Core interface
var _ core.Core = (*Core)(nil)

// Load instantiates the module. The context is used for all subsequent calls
// into the module. Cancelling the context closes the module and any call in
// progress returns an error.
func Load(ctx context.Context, wasm []byte) (*Core, error) {
	c := &Core{
		ctx:     ctx,
		runtime: wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true)),
		fn:      make(map[string]api.Function),
	}

	compiled, err := c.runtime.CompileModule(ctx, wasm)
	if err != nil {
		c.runtime.Close(ctx)
		return nil, curated.Errorf(CallError, "compile", err)
	}

	if len(compiled.ExportedMemories()) == 0 {
		c.runtime.Close(ctx)
		return nil, curated.Errorf(MissingExportError, "memory")
	}

	exported := compiled.ExportedFunctions()
	for _, n := range functionNames {
		if _, ok := exported[n]; !ok {
			c.runtime.Close(ctx)
			return nil, curated.Errorf(MissingExportError, n)
		}
	}

	c.mod, err = c.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		c.runtime.Close(ctx)
		return nil, curated.Errorf(CallError, "instantiate", err)
	}

	c.mem = c.mod.Memory()
	for _, n := range functionNames {
		c.fn[n] = c.mod.ExportedFunction(n)
	}

	for _, g := range []struct {
		name string
		v    *uint32
	}{
		{name: globalFrameBuffer, v: &c.frameBuffer},
		{name: globalRegisters, v: &c.registers},
		{name: globalMachineMemory, v: &c.machineMemory},
		{name: globalAudioLeft, v: &c.audioLeft},
	} {
		e := c.mod.ExportedGlobal(g.name)
		if e == nil {
			c.runtime.Close(ctx)
			return nil, curated.Errorf(MissingExportError, g.name)
		}
		*g.v = api.DecodeU32(e.Get())
	}

	if e := c.mod.ExportedGlobal(globalTapePulses); e != nil {
		c.tapePulses = api.DecodeU32(e.Get())
		if e := c.mod.ExportedGlobal(globalTapePulsesLength); e != nil {
			c.tapePulsesLength = api.DecodeU32(e.Get())
		}
	}

	logger.Logf(logger.Allow, logTag, "module loaded: %d bytes of memory", c.mem.Size())
	logger.Logf(logger.Allow, logTag, "frame buffer %#x, registers %#x, machine memory %#x",
		c.frameBuffer, c.registers, c.machineMemory)

	return c, nil
}

// TapePulseBuffer returns the offset and length of the tape pulse buffer in
// module memory. Both values are zero if the module does not export them.
//
// The buffer is used by the core to play back a tape as a pulse stream.
// Tapes loaded through the tape traps never pass through it.
func (c *Core) TapePulseBuffer() (offset uint32, length uint32) {
	return c.tapePulses, c.tapePulsesLength
}

// Close the runtime and release all resources.
func (c *Core) Close() error {
	return c.runtime.Close(c.ctx)
}

// call the named function. the first result, if any, is returned
func (c *Core) call(name string, params ...uint64) (uint64, error) {
	r, err := c.fn[name].Call(c.ctx, params...)
	if err != nil {
		return 0, curated.Errorf(CallError, name, err)
	}
	if len(r) == 0 {
		return 0, nil
	}
	return r[0], nil
}

func boolParam(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// RunFrame implements the core.Core interface.
func (c *Core) RunFrame() (core.Status, error) {
	r, err := c.call("runFrame")
	return core.Status(api.DecodeU32(r)), err
}

// ResumeFrame implements the core.Core interface.
func (c *Core) ResumeFrame() (core.Status, error) {
	r, err := c.call("resumeFrame")
	return core.Status(api.DecodeU32(r)), err
}

// SetMachineType implements the core.Core interface.
func (c *Core) SetMachineType(m core.MachineType) error {
	_, err := c.call("setMachineType", api.EncodeU32(uint32(m)))
	return err
}

// Reset implements the core.Core interface.
func (c *Core) Reset() error {
	_, err := c.call("reset")
	return err
}

// Poke implements the core.Core interface.
func (c *Core) Poke(addr uint16, value uint8) error {
	_, err := c.call("poke", api.EncodeU32(uint32(addr)), api.EncodeU32(uint32(value)))
	return err
}

// SetPC implements the core.Core interface.
func (c *Core) SetPC(pc uint16) error {
	_, err := c.call("setPC", api.EncodeU32(uint32(pc)))
	return err
}

// SetIFF1 implements the core.Core interface.
func (c *Core) SetIFF1(v bool) error {
	_, err := c.call("setIFF1", boolParam(v))
	return err
}

// SetIFF2 implements the core.Core interface.
func (c *Core) SetIFF2(v bool) error {
	_, err := c.call("setIFF2", boolParam(v))
	return err
}

// SetIM implements the core.Core interface.
func (c *Core) SetIM(v uint8) error {
	_, err := c.call("setIM", api.EncodeU32(uint32(v)))
	return err
}

// SetHalted implements the core.Core interface.
func (c *Core) SetHalted(v bool) error {
	_, err := c.call("setHalted", boolParam(v))
	return err
}

// WritePort implements the core.Core interface.
func (c *Core) WritePort(port uint16, value uint8) error {
	_, err := c.call("writePort", api.EncodeU32(uint32(port)), api.EncodeU32(uint32(value)))
	return err
}

// SetTStates implements the core.Core interface.
func (c *Core) SetTStates(v uint32) error {
	_, err := c.call("setTStates", api.EncodeU32(v))
	return err
}

// SetAudioSamplesPerFrame implements the core.Core interface.
func (c *Core) SetAudioSamplesPerFrame(n int) error {
	_, err := c.call("setAudioSamplesPerFrame", api.EncodeU32(uint32(n)))
	return err
}

// SetTapeTraps implements the core.Core interface.
func (c *Core) SetTapeTraps(v bool) error {
	_, err := c.call("setTapeTraps", boolParam(v))
	return err
}

// FrameBuffer implements the core.Core interface. The returned slice is a
// view into module memory.
func (c *Core) FrameBuffer() ([]byte, error) {
	b, ok := c.mem.Read(c.frameBuffer, core.FrameBufferSize)
	if !ok {
		return nil, curated.Errorf(MemoryAccessError, "frame buffer", c.frameBuffer)
	}
	return b, nil
}

func (c *Core) registerOffset(slot int) (uint32, error) {
	if slot < 0 || slot >= core.NumRegisterPairs {
		return 0, curated.Errorf(MemoryAccessError, "register pair", slot)
	}
	return c.registers + uint32(slot)*2, nil
}

// RegisterPair implements the core.Core interface.
func (c *Core) RegisterPair(slot int) (uint16, error) {
	o, err := c.registerOffset(slot)
	if err != nil {
		return 0, err
	}
	v, ok := c.mem.ReadUint16Le(o)
	if !ok {
		return 0, curated.Errorf(MemoryAccessError, "register pair", o)
	}
	return v, nil
}

// SetRegisterPair implements the core.Core interface.
func (c *Core) SetRegisterPair(slot int, value uint16) error {
	o, err := c.registerOffset(slot)
	if err != nil {
		return err
	}
	if !c.mem.WriteUint16Le(o, value) {
		return curated.Errorf(MemoryAccessError, "register pair", o)
	}
	return nil
}

// WriteMachineMemory implements the core.Core interface.
func (c *Core) WriteMachineMemory(offset int, data []byte) error {
	o := c.machineMemory + uint32(offset)
	if offset < 0 || !c.mem.Write(o, data) {
		return curated.Errorf(MemoryAccessError, "machine memory", o)
	}
	return nil
}

// AudioBuffer implements the core.Core interface.
func (c *Core) AudioBuffer(n int) ([]float32, error) {
	s := make([]float32, n)
	for i := range s {
		o := c.audioLeft + uint32(i)*4
		v, ok := c.mem.ReadFloat32Le(o)
		if !ok {
			return nil, curated.Errorf(MemoryAccessError, "audio buffer", o)
		}
		s[i] = v
	}
	return s, nil
}
