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

package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/logger"
)

const logTag = "snapshot"

// the signature at the start of every SZX file
const signature = "ZXST"

// size of the file header and of each block header
const (
	headerLen      = 8
	blockHeaderLen = 8
)

// offset of the machine id in the file header. a machine id of one indicates
// a 48K machine. every other value is treated as a 128K machine
const (
	machineIDOffset = 6
	machineID48K    = 1
)

// minimum length of the Z80R block
const registerBlockLen = 34

// block identifiers that are understood by the parser
const (
	blockRegisters = "Z80R"
	blockULA       = "SPCR"
	blockRAMPage   = "RAMP"
)

// flag in the RAMP block indicating that the page data is compressed
const rampCompressed = 0x0001

// Parse an SZX file. The file must begin with the ZXST signature or a
// FormatError is returned. If a block claims to be longer than the remaining
// data then a TruncatedDataError is returned.
func Parse(data []byte) (*Snapshot, error) {
	return parse(data, false)
}

// ParseStrict is the same as Parse() except that a compressed memory page
// that does not decode to exactly PageSize bytes is treated as truncated data.
func ParseStrict(data []byte) (*Snapshot, error) {
	return parse(data, true)
}

func parse(data []byte, strict bool) (*Snapshot, error) {
	if len(data) < len(signature) || string(data[:len(signature)]) != signature {
		return nil, curated.Errorf(FormatError, "not an SZX file")
	}

	if len(data) < headerLen {
		return nil, curated.Errorf(TruncatedDataError, "file header")
	}

	snap := &Snapshot{
		Model:       Model128K,
		MemoryPages: make(map[int][]byte),
	}
	if data[machineIDOffset] == machineID48K {
		snap.Model = Model48K
	}

	offset := headerLen
	for offset < len(data) {
		if offset+blockHeaderLen > len(data) {
			return nil, curated.Errorf(TruncatedDataError, fmt.Sprintf("block header at %#x", offset))
		}

		id := string(data[offset : offset+4])
		length := int(binary.LittleEndian.Uint32(data[offset+4:]))
		offset += blockHeaderLen

		if length > len(data)-offset {
			return nil, curated.Errorf(TruncatedDataError, fmt.Sprintf("%s block at %#x claims %d bytes", id, offset-blockHeaderLen, length))
		}
		block := data[offset : offset+length]

		var err error
		switch id {
		case blockRegisters:
			err = snap.registers(block)
		case blockULA:
			err = snap.ula(block)
		case blockRAMPage:
			err = snap.ramPage(block, strict)
		default:
			logger.Logf(logger.Allow, logTag, "skipping %s block (%d bytes)", id, length)
		}
		if err != nil {
			return nil, err
		}

		offset += length
	}

	return snap, nil
}

func (snap *Snapshot) registers(block []byte) error {
	if len(block) < registerBlockLen {
		return curated.Errorf(TruncatedDataError, fmt.Sprintf("%s block is %d bytes", blockRegisters, len(block)))
	}

	le := binary.LittleEndian
	snap.Registers = Registers{
		AF:   le.Uint16(block[0:]),
		BC:   le.Uint16(block[2:]),
		DE:   le.Uint16(block[4:]),
		HL:   le.Uint16(block[6:]),
		AF_:  le.Uint16(block[8:]),
		BC_:  le.Uint16(block[10:]),
		DE_:  le.Uint16(block[12:]),
		HL_:  le.Uint16(block[14:]),
		IX:   le.Uint16(block[16:]),
		IY:   le.Uint16(block[18:]),
		SP:   le.Uint16(block[20:]),
		PC:   le.Uint16(block[22:]),
		IR:   binary.BigEndian.Uint16(block[24:]),
		IFF1: block[26] != 0,
		IFF2: block[27] != 0,
		IM:   block[28],
	}
	snap.TStates = le.Uint32(block[29:])
	snap.Halted = block[33] != 0

	return nil
}

func (snap *Snapshot) ula(block []byte) error {
	if len(block) < 1 {
		return curated.Errorf(TruncatedDataError, fmt.Sprintf("%s block is empty", blockULA))
	}
	snap.ULA.BorderColour = block[0]

	// 48K files need not allocate the paging byte so it must not be read
	if snap.Model != Model48K {
		if len(block) < 2 {
			return curated.Errorf(TruncatedDataError, fmt.Sprintf("%s block has no paging flags", blockULA))
		}
		snap.ULA.PagingFlags = block[1]
		snap.ULA.HasPagingFlags = true
	}

	return nil
}

func (snap *Snapshot) ramPage(block []byte, strict bool) error {
	if len(block) < 3 {
		return curated.Errorf(TruncatedDataError, fmt.Sprintf("%s block is %d bytes", blockRAMPage, len(block)))
	}

	flags := binary.LittleEndian.Uint16(block[0:])
	page := int(block[2])
	payload := block[3:]

	mem := make([]byte, PageSize)

	if flags&rampCompressed == rampCompressed {
		n := Decompress(mem, payload)
		if n != PageSize {
			if strict {
				return curated.Errorf(TruncatedDataError, fmt.Sprintf("page %d decompresses to %d bytes", page, n))
			}
			logger.Logf(logger.Allow, logTag, "page %d decompresses to %d bytes", page, n)
		}
	} else {
		copy(mem, payload)
	}

	snap.MemoryPages[page] = mem

	return nil
}
