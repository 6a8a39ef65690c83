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

package snapshot_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/snapshot"
	"github.com/jetsetilly/zxpreview/test"
)

// szx builds an SZX file in memory
type szx struct {
	bytes.Buffer
}

func newSZX(machineID byte) *szx {
	s := &szx{}
	s.WriteString("ZXST")
	s.Write([]byte{1, 4, machineID, 0})
	return s
}

func (s *szx) block(id string, data []byte) *szx {
	s.WriteString(id)
	binary.Write(s, binary.LittleEndian, uint32(len(data)))
	s.Write(data)
	return s
}

func registerBlock() []byte {
	var b bytes.Buffer
	for _, v := range []uint16{0x1122, 0x3344, 0x5566, 0x7788, 0x99aa, 0xbbcc, 0xddee, 0xff00, 0x0102, 0x0304, 0xfffe, 0x8000} {
		binary.Write(&b, binary.LittleEndian, v)
	}
	// IR is stored big-endian
	b.Write([]byte{0x3f, 0x12})
	// iff1, iff2, im
	b.Write([]byte{0x01, 0x00, 0x01})
	binary.Write(&b, binary.LittleEndian, uint32(12345))
	// halted
	b.WriteByte(0x02)
	return b.Bytes()
}

func rampBlock(flags uint16, page byte, payload []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, flags)
	b.WriteByte(page)
	b.Write(payload)
	return b.Bytes()
}

func TestSignature(t *testing.T) {
	_, err := snapshot.Parse([]byte("ZXSXaaaa"))
	test.ExpectSuccess(t, curated.Is(err, snapshot.FormatError))

	_, err = snapshot.Parse([]byte{})
	test.ExpectSuccess(t, curated.Is(err, snapshot.FormatError))

	_, err = snapshot.Parse([]byte("ZX"))
	test.ExpectSuccess(t, curated.Is(err, snapshot.FormatError))

	// correct signature but header is too short
	_, err = snapshot.Parse([]byte("ZXST\x01"))
	test.ExpectSuccess(t, curated.Is(err, snapshot.TruncatedDataError))

	// correct signature and no blocks
	snap, err := snapshot.Parse(newSZX(2).Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.Model, snapshot.Model128K)
	test.ExpectEquality(t, len(snap.MemoryPages), 0)
	test.ExpectEquality(t, snap.Model.MachineType(), core.Machine128K)

	snap, err = snapshot.Parse(newSZX(1).Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.Model, snapshot.Model48K)
	test.ExpectEquality(t, snap.Model.MachineType(), core.Machine48K)
}

func TestRegisters(t *testing.T) {
	s := newSZX(1).block("Z80R", registerBlock())
	snap, err := snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)

	r := snap.Registers
	test.ExpectEquality(t, snap.Model, snapshot.Model48K)
	test.ExpectEquality(t, r.AF, 0x1122)
	test.ExpectEquality(t, r.BC, 0x3344)
	test.ExpectEquality(t, r.DE, 0x5566)
	test.ExpectEquality(t, r.HL, 0x7788)
	test.ExpectEquality(t, r.AF_, 0x99aa)
	test.ExpectEquality(t, r.BC_, 0xbbcc)
	test.ExpectEquality(t, r.DE_, 0xddee)
	test.ExpectEquality(t, r.HL_, 0xff00)
	test.ExpectEquality(t, r.IX, 0x0102)
	test.ExpectEquality(t, r.IY, 0x0304)
	test.ExpectEquality(t, r.SP, 0xfffe)
	test.ExpectEquality(t, r.PC, 0x8000)
	test.ExpectEquality(t, r.IR, 0x3f12)
	test.ExpectEquality(t, r.IFF1, true)
	test.ExpectEquality(t, r.IFF2, false)
	test.ExpectEquality(t, r.IM, 1)
	test.ExpectEquality(t, snap.TStates, 12345)
	test.ExpectEquality(t, snap.Halted, true)

	// a short register block is truncated data
	s = newSZX(1).block("Z80R", registerBlock()[:20])
	_, err = snapshot.Parse(s.Bytes())
	test.ExpectSuccess(t, curated.Is(err, snapshot.TruncatedDataError))
}

func TestULA(t *testing.T) {
	// 48K snapshot with a single byte SPCR block must not fail
	s := newSZX(1).block("SPCR", []byte{0x05})
	snap, err := snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.ULA.BorderColour, 5)
	test.ExpectEquality(t, snap.ULA.HasPagingFlags, false)
	test.ExpectEquality(t, snap.ULA.PagingFlags, 0)

	// 48K snapshot with a paging byte present. the byte must be ignored
	s = newSZX(1).block("SPCR", []byte{0x02, 0x17})
	snap, err = snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.ULA.HasPagingFlags, false)
	test.ExpectEquality(t, snap.ULA.PagingFlags, 0)

	// 128K snapshot
	s = newSZX(2).block("SPCR", []byte{0x07, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	snap, err = snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.ULA.BorderColour, 7)
	test.ExpectEquality(t, snap.ULA.HasPagingFlags, true)
	test.ExpectEquality(t, snap.ULA.PagingFlags, 0x10)
}

func TestUnknownBlocksAreSkipped(t *testing.T) {
	s := newSZX(1).
		block("CRTR", make([]byte, 37)).
		block("SPCR", []byte{0x03}).
		block("KEYB", []byte{0x01, 0x00, 0x00, 0x00, 0x00}).
		block("Z80R", registerBlock())
	snap, err := snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.ULA.BorderColour, 3)
	test.ExpectEquality(t, snap.Registers.PC, 0x8000)
}

func TestTruncatedBlock(t *testing.T) {
	s := newSZX(1).block("SPCR", []byte{0x03})
	b := s.Bytes()

	// block length claims more data than is present
	binary.LittleEndian.PutUint32(b[12:], 100)
	_, err := snapshot.Parse(b)
	test.ExpectSuccess(t, curated.Is(err, snapshot.TruncatedDataError))

	// partial block header
	s = newSZX(1).block("SPCR", []byte{0x03})
	s.WriteString("RAM")
	_, err = snapshot.Parse(s.Bytes())
	test.ExpectSuccess(t, curated.Is(err, snapshot.TruncatedDataError))
}

func TestUncompressedPage(t *testing.T) {
	page := make([]byte, snapshot.PageSize)
	for i := range page {
		page[i] = byte(i)
	}

	s := newSZX(2).block("RAMP", rampBlock(0, 5, page))
	snap, err := snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(snap.MemoryPages), 1)
	test.ExpectBytes(t, snap.MemoryPages[5], page)
}

func TestCompressedPage(t *testing.T) {
	// runs whose counts sum to 16384
	runs := []struct {
		count int
		value byte
	}{
		{255, 0x00}, {255, 0xed}, {200, 0x41},
	}

	var payload []byte
	var expected []byte
	total := 0
	for _, r := range runs {
		payload = append(payload, 0xed, 0xed, byte(r.count), r.value)
		expected = append(expected, bytes.Repeat([]byte{r.value}, r.count)...)
		total += r.count
	}
	for total < snapshot.PageSize {
		n := snapshot.PageSize - total
		if n > 255 {
			n = 255
		}
		payload = append(payload, 0xed, 0xed, byte(n), 0x99)
		expected = append(expected, bytes.Repeat([]byte{0x99}, n)...)
		total += n
	}

	s := newSZX(2).block("RAMP", rampBlock(1, 0, payload))
	snap, err := snapshot.ParseStrict(s.Bytes())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(snap.MemoryPages[0]), snapshot.PageSize)
	test.ExpectBytes(t, snap.MemoryPages[0], expected)
}

func TestShortCompressedPage(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xed, 0xed, 0x03, 0xaa, 0xed, 0x05}

	s := newSZX(2).block("RAMP", rampBlock(1, 2, payload))
	snap, err := snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)

	mem := snap.MemoryPages[2]
	test.DemandEquality(t, len(mem), snapshot.PageSize)
	test.ExpectBytes(t, mem[:8], []byte{0x01, 0x02, 0xaa, 0xaa, 0xaa, 0xed, 0x05, 0x00})

	// remainder of page is zero
	test.ExpectBytes(t, mem[8:], make([]byte, snapshot.PageSize-8))

	// page is not present
	_, ok := snap.MemoryPages[0]
	test.ExpectFailure(t, ok)

	// strict parsing rejects the short page
	_, err = snapshot.ParseStrict(s.Bytes())
	test.ExpectSuccess(t, curated.Is(err, snapshot.TruncatedDataError))
}

func TestDecompress(t *testing.T) {
	dst := make([]byte, 6)

	// a marker pair at the very end of the input is copied literally because
	// there is no room for the count and value
	n := snapshot.Decompress(dst, []byte{0x10, 0xed, 0xed, 0x02})
	test.ExpectEquality(t, n, 4)
	test.ExpectBytes(t, dst[:n], []byte{0x10, 0xed, 0xed, 0x02})

	// output is capped to the size of dst
	n = snapshot.Decompress(dst, []byte{0xed, 0xed, 0xff, 0x01})
	test.ExpectEquality(t, n, 6)
	test.ExpectBytes(t, dst, []byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x01})
}

func TestPages(t *testing.T) {
	s := newSZX(2).
		block("RAMP", rampBlock(0, 7, nil)).
		block("RAMP", rampBlock(0, 0, nil)).
		block("RAMP", rampBlock(0, 5, nil))
	snap, err := snapshot.Parse(s.Bytes())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(snap.Pages()), 3)
	test.ExpectEquality(t, snap.Pages()[0], 0)
	test.ExpectEquality(t, snap.Pages()[1], 5)
	test.ExpectEquality(t, snap.Pages()[2], 7)
}
