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

	"github.com/jetsetilly/zxpreview/curated"
	"github.com/jetsetilly/zxpreview/logger"
)

const logTag = "tape"

// TAP is a parsed TAP file. The zero value is an empty tape.
type TAP struct {
	blocks []Block

	// index of the next block returned by NextLoadableBlock()
	next int
}

// NewTAP parses a TAP file. Parsing stops at the first block that does not fit
// in the remaining data, so a damaged file will result in a TAP with fewer
// blocks. Use IsValid() to check the data beforehand if that matters.
//
// Blocks refer to the data argument and are not copied.
func NewTAP(data []byte) *TAP {
	tap := &TAP{}

	i := 0
	for i+1 < len(data) {
		l := int(binary.LittleEndian.Uint16(data[i:]))
		i += 2
		if i+l > len(data) {
			logger.Logf(logger.Allow, logTag, "block %d is truncated (%d of %d bytes)", len(tap.blocks), len(data)-i, l)
			break
		}
		tap.blocks = append(tap.blocks, Block(data[i:i+l:i+l]))
		i += l
	}

	logger.Logf(logger.Allow, logTag, "%d blocks, sizes: %s", len(tap.blocks), tap.sizes())

	return tap
}

// IsValid returns true if data is consumed exactly by a sequence of length
// prefixed blocks. An empty buffer is valid.
func IsValid(data []byte) bool {
	i := 0
	for i < len(data) {
		if i+1 >= len(data) {
			return false
		}
		i += int(binary.LittleEndian.Uint16(data[i:])) + 2
	}
	return i == len(data)
}

func (tap *TAP) sizes() string {
	s := make([]string, len(tap.blocks))
	for i, b := range tap.blocks {
		s[i] = fmt.Sprintf("%d", len(b))
	}
	return strings.Join(s, ", ")
}

// Len returns the number of blocks on the tape.
func (tap *TAP) Len() int {
	return len(tap.blocks)
}

// Blocks returns the blocks on the tape in order. The returned slice should
// not be altered.
func (tap *TAP) Blocks() []Block {
	return tap.blocks
}

// Rewind the tape so that the next call to NextLoadableBlock() returns the
// first block.
func (tap *TAP) Rewind() {
	tap.next = 0
}

// NextLoadableBlock returns the next block on the tape and advances the tape.
// After the last block the tape is rewound. Returns nil only if the tape has
// no blocks.
func (tap *TAP) NextLoadableBlock() Block {
	if len(tap.blocks) == 0 {
		return nil
	}
	b := tap.blocks[tap.next]
	logger.Logf(logger.Verbose, logTag, "serving block %d of %d (%d bytes)", tap.next, len(tap.blocks), len(b))
	tap.next = (tap.next + 1) % len(tap.blocks)
	return b
}

// Encode blocks as a TAP file. Blocks longer than 65535 bytes cannot be
// represented and cause an error.
func Encode(blocks []Block) ([]byte, error) {
	n := 0
	for i, b := range blocks {
		if len(b) > 0xffff {
			return nil, curated.Errorf("tape: block %d is too long (%d bytes)", i, len(b))
		}
		n += len(b) + 2
	}

	data := make([]byte, 0, n)
	for _, b := range blocks {
		data = binary.LittleEndian.AppendUint16(data, uint16(len(b)))
		data = append(data, b...)
	}

	return data, nil
}
