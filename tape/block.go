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

package tape

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Block is a single block from a tape. The first byte is the flag byte and the
// last byte is the checksum.
type Block []byte

// flag byte values used by the ROM save routine
const (
	FlagHeader = 0x00
	FlagData   = 0xff
)

// Flag returns the flag (or type) byte of the block. An empty block returns
// zero and false.
func (b Block) Flag() (uint8, bool) {
	if len(b) == 0 {
		return 0, false
	}
	return b[0], true
}

// Checksum returns the XOR of every byte in the block except the last byte.
// The ROM expects this to be equal to the last byte.
func (b Block) Checksum() uint8 {
	var c uint8
	for i := 0; i < len(b)-1; i++ {
		c ^= b[i]
	}
	return c
}

// Valid returns true if the block has a flag byte, a checksum byte and the
// checksum is correct.
func (b Block) Valid() bool {
	return len(b) >= 2 && b.Checksum() == b[len(b)-1]
}

// HeaderType is the type of file described by a header block.
type HeaderType uint8

// List of valid HeaderType values.
const (
	Program        HeaderType = 0
	NumberArray    HeaderType = 1
	CharacterArray HeaderType = 2
	Bytes          HeaderType = 3
)

func (t HeaderType) String() string {
	switch t {
	case Program:
		return "Program"
	case NumberArray:
		return "Number array"
	case CharacterArray:
		return "Character array"
	case Bytes:
		return "Bytes"
	}
	return fmt.Sprintf("Unknown (%d)", uint8(t))
}

// Header is the information in a standard ROM header block.
type Header struct {
	Type     HeaderType
	Filename string
	Length   uint16

	// for Program files Param1 is the autostart line and Param2 is the start
	// of the variables area. for Bytes files Param1 is the start address
	Param1 uint16
	Param2 uint16
}

func (h Header) String() string {
	switch h.Type {
	case Program:
		if h.Param1 < 32768 {
			return fmt.Sprintf("%s: %q (%d bytes, LINE %d)", h.Type, h.Filename, h.Length, h.Param1)
		}
		return fmt.Sprintf("%s: %q (%d bytes)", h.Type, h.Filename, h.Length)
	case Bytes:
		return fmt.Sprintf("%s: %q (%d bytes, CODE %d,%d)", h.Type, h.Filename, h.Length, h.Param1, h.Length)
	}
	return fmt.Sprintf("%s: %q (%d bytes)", h.Type, h.Filename, h.Length)
}

// length of a standard header block including flag and checksum
const headerBlockLen = 19

// Header returns the contents of the block interpreted as a standard ROM
// header. Returns false if the block is not a header.
func (b Block) Header() (Header, bool) {
	if len(b) != headerBlockLen || b[0] != FlagHeader {
		return Header{}, false
	}

	le := binary.LittleEndian
	return Header{
		Type:     HeaderType(b[1]),
		Filename: strings.TrimRight(filename(b[2:12]), " "),
		Length:   le.Uint16(b[12:]),
		Param1:   le.Uint16(b[14:]),
		Param2:   le.Uint16(b[16:]),
	}, true
}

// filename converts the Spectrum character set to printable ASCII. block
// graphics and tokens are replaced with a question mark
func filename(b []byte) string {
	var s strings.Builder
	for _, c := range b {
		switch {
		case c == 0x60:
			s.WriteRune('£')
		case c == 0x7f:
			s.WriteRune('©')
		case c >= 0x20 && c < 0x7f:
			s.WriteByte(c)
		default:
			s.WriteByte('?')
		}
	}
	return s.String()
}

// String returns a one line description of the block.
func (b Block) String() string {
	if h, ok := b.Header(); ok {
		return h.String()
	}

	f, ok := b.Flag()
	if !ok {
		return "Empty block"
	}

	var s strings.Builder
	if f == FlagData {
		fmt.Fprintf(&s, "Data: %d bytes", len(b)-2)
	} else {
		fmt.Fprintf(&s, "Block (flag %#02x): %d bytes", f, len(b))
	}
	if !b.Valid() {
		s.WriteString(" [bad checksum]")
	}
	return s.String()
}
