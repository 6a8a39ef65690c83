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

package machine_test

import (
	"testing"

	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/core/nullcore"
	"github.com/jetsetilly/zxpreview/machine"
	"github.com/jetsetilly/zxpreview/tape"
	"github.com/jetsetilly/zxpreview/test"
)

// trap sets up the registers as the ROM loading routine would and runs a
// frame that raises a single tape trap
func trap(t *testing.T, drv *machine.Driver, c *nullcore.Core, blockType uint8, load bool, addr uint16, length uint16) {
	t.Helper()

	afx := uint16(blockType) << 8
	if load {
		afx |= 0x0001
	}
	c.Registers[core.RegAFx] = afx
	c.Registers[core.RegIX] = addr
	c.Registers[core.RegDE] = length
	c.PC = 0x0556

	c.Statuses = []core.Status{core.StatusTapeTrap}
	_, err := drv.RunFrame()
	test.DemandSuccess(t, err)
}

func carry(c *nullcore.Core) bool {
	return c.Registers[core.RegAF]&0x0001 == 0x0001
}

func TestTrapChecksum(t *testing.T) {
	drv, c := newDriver(t)

	chk := uint8(0x01 ^ 0xaa ^ 0xbb)
	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{0x01, 0xaa, 0xbb, chk})))

	// destination wraps from 0xffff to 0x0000
	trap(t, drv, c, 0x01, true, 0xffff, 2)
	test.ExpectEquality(t, c.Memory[0xffff], 0xaa)
	test.ExpectEquality(t, c.Memory[0x0000], 0xbb)
	test.ExpectSuccess(t, carry(c))
	test.ExpectEquality(t, c.PC, 0x05e2)
	test.ExpectEquality(t, drv.Traps(), 1)
}

func TestTrapBadChecksum(t *testing.T) {
	drv, c := newDriver(t)
	c.Registers[core.RegAF] = 0x00ff

	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{0xff, 0x10, 0x20, 0x00})))
	trap(t, drv, c, 0xff, true, 0x8000, 2)
	test.ExpectEquality(t, c.Memory[0x8000], 0x10)
	test.ExpectEquality(t, c.Memory[0x8001], 0x20)
	test.ExpectFailure(t, carry(c))
	test.ExpectEquality(t, c.Registers[core.RegAF], 0x00fe)
	test.ExpectEquality(t, c.PC, 0x05e2)
}

func TestTrapTypeMismatch(t *testing.T) {
	drv, c := newDriver(t)
	c.Registers[core.RegAF] = 0x0001

	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{0xff, 0x10, 0xef})))
	trap(t, drv, c, 0x00, true, 0x8000, 1)
	test.ExpectEquality(t, c.Memory[0x8000], 0x00)
	test.ExpectFailure(t, carry(c))
	test.ExpectEquality(t, c.PC, 0x05e2)
}

func TestTrapVerify(t *testing.T) {
	drv, c := newDriver(t)

	// checksum is wrong but the block is not loaded
	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{0xff, 0x10, 0x00})))
	trap(t, drv, c, 0xff, false, 0x8000, 1)
	test.ExpectEquality(t, c.Memory[0x8000], 0x00)
	test.ExpectSuccess(t, carry(c))
	test.ExpectEquality(t, c.PC, 0x05e2)
}

func TestTrapShortBlock(t *testing.T) {
	drv, c := newDriver(t)
	c.Registers[core.RegAF] = 0x0001

	// block runs out before the requested length
	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{0xff, 0x10, 0x20})))
	trap(t, drv, c, 0xff, true, 0x8000, 4)
	test.ExpectEquality(t, c.Memory[0x8000], 0x10)
	test.ExpectEquality(t, c.Memory[0x8001], 0x20)
	test.ExpectFailure(t, carry(c))

	// data fits exactly but there is no checksum byte
	c.Registers[core.RegAF] = 0x0001
	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{0xff, 0x10, 0x20})))
	trap(t, drv, c, 0xff, true, 0x8000, 2)
	test.ExpectFailure(t, carry(c))

	// empty block
	c.Registers[core.RegAF] = 0x0001
	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, tape.Block{})))
	trap(t, drv, c, 0x00, true, 0x8000, 2)
	test.ExpectFailure(t, carry(c))
}

func TestTrapCycles(t *testing.T) {
	drv, c := newDriver(t)

	a := tape.Block{0x00, 0x01, 0x01}
	b := tape.Block{0xff, 0x02, 0xfd}
	test.DemandSuccess(t, drv.AttachTape(tapeWith(t, a, b)))

	trap(t, drv, c, 0x00, true, 0x8000, 1)
	test.ExpectSuccess(t, carry(c))
	test.ExpectEquality(t, c.Memory[0x8000], 0x01)

	trap(t, drv, c, 0xff, true, 0x8000, 1)
	test.ExpectSuccess(t, carry(c))
	test.ExpectEquality(t, c.Memory[0x8000], 0x02)

	// the tape starts again from the first block
	trap(t, drv, c, 0x00, true, 0x9000, 1)
	test.ExpectSuccess(t, carry(c))
	test.ExpectEquality(t, c.Memory[0x9000], 0x01)
}

func TestTrapEmptyTape(t *testing.T) {
	drv, c := newDriver(t)
	c.Registers[core.RegAF] = 0x1234

	test.DemandSuccess(t, drv.AttachTape(tape.NewTAP(nil)))
	trap(t, drv, c, 0xff, true, 0x8000, 1)

	// state is unchanged
	test.ExpectEquality(t, c.Registers[core.RegAF], 0x1234)
	test.ExpectEquality(t, c.PC, 0x0556)
	test.ExpectEquality(t, drv.Traps(), 0)
}

func TestTrapStallLimit(t *testing.T) {
	drv, c := newDriver(t)
	drv.TrapStallLimit = 2
	c.Registers[core.RegAF] = 0x0001

	test.DemandSuccess(t, drv.AttachTape(tape.NewTAP(nil)))

	trap(t, drv, c, 0xff, true, 0x8000, 1)
	test.ExpectEquality(t, c.PC, 0x0556)
	trap(t, drv, c, 0xff, true, 0x8000, 1)
	test.ExpectEquality(t, c.PC, 0x0556)

	// the third consecutive empty trap fails the load
	trap(t, drv, c, 0xff, true, 0x8000, 1)
	test.ExpectEquality(t, c.PC, 0x05e2)
	test.ExpectFailure(t, carry(c))
}
