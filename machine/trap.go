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
	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/logger"
	"github.com/jetsetilly/zxpreview/tape"
)

// the address in the ROM that the tape loading routine returns through
const trapReturnAddress = 0x05e2

// the carry flag in the F register indicates the success of a load
const carryFlag = 0x0001

// serviceTrap loads the next tape block into memory. the request is made by
// the ROM routine in the alternate AF register: the expected block type in A'
// and the load/verify flag in the carry bit of F'. the destination address is
// in IX and the number of bytes in DE.
func (drv *Driver) serviceTrap() error {
	if drv.tape == nil {
		logger.Log(logger.Allow, logTag, "tape trap: no tape attached")
		return nil
	}

	block := drv.tape.NextLoadableBlock()
	if block == nil {
		drv.stalls++
		if drv.TrapStallLimit > 0 && drv.stalls > drv.TrapStallLimit {
			logger.Logf(logger.Allow, logTag, "tape trap: no block available after %d traps", drv.stalls)
			return drv.trapResult(false)
		}
		logger.Log(logger.Allow, logTag, "tape trap: no block available")
		return nil
	}
	drv.stalls = 0
	drv.traps++

	afx, err := drv.core.RegisterPair(core.RegAFx)
	if err != nil {
		return coreError(err)
	}
	addr, err := drv.core.RegisterPair(core.RegIX)
	if err != nil {
		return coreError(err)
	}
	length, err := drv.core.RegisterPair(core.RegDE)
	if err != nil {
		return coreError(err)
	}

	expected := uint8(afx >> 8)
	load := afx&carryFlag == carryFlag

	logger.Logf(logger.Verbose, logTag, "tape trap: %s: expected type %#02x, load %v, addr %#04x, length %d",
		block, expected, load, addr, length)

	success, err := drv.loadBlock(block, expected, load, addr, int(length))
	if err != nil {
		return err
	}

	return drv.trapResult(success)
}

// loadBlock copies the block into memory. the result is false if the block
// does not match the request.
func (drv *Driver) loadBlock(block tape.Block, expected uint8, load bool, addr uint16, length int) (bool, error) {
	if len(block) == 0 || block[0] != expected {
		return false, nil
	}

	// verify only
	if !load {
		return true, nil
	}

	checksum := block[0]
	offset := 1
	for n := 0; n < length; n++ {
		if offset >= len(block) {
			return false, nil
		}
		v := block[offset]
		offset++
		if err := drv.core.Poke(addr, v); err != nil {
			return false, coreError(err)
		}
		addr++
		checksum ^= v
	}

	// there must be a checksum byte following the data
	if offset >= len(block) {
		return false, nil
	}

	return checksum == block[offset], nil
}

// trapResult sets the carry flag according to success and returns to the
// ROM.
func (drv *Driver) trapResult(success bool) error {
	af, err := drv.core.RegisterPair(core.RegAF)
	if err != nil {
		return coreError(err)
	}

	if success {
		af |= carryFlag
	} else {
		af &^= carryFlag
	}

	if err := drv.core.SetRegisterPair(core.RegAF, af); err != nil {
		return coreError(err)
	}

	return coreError(drv.core.SetPC(trapReturnAddress))
}
