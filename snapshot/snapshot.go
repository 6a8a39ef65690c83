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
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/zxpreview/core"
)

// PageSize is the size of every memory page in a snapshot.
const PageSize = 0x4000

// Model of the machine that the snapshot was taken from.
type Model int

// List of valid Model values.
const (
	Model48K  Model = 48
	Model128K Model = 128
)

func (m Model) String() string {
	switch m {
	case Model48K:
		return "48K"
	case Model128K:
		return "128K"
	}
	return fmt.Sprintf("unknown model (%d)", int(m))
}

// MachineType returns the core machine identifier for the model.
func (m Model) MachineType() core.MachineType {
	if m == Model48K {
		return core.Machine48K
	}
	return core.Machine128K
}

// Registers is the CPU state of the snapshot.
type Registers struct {
	AF, BC, DE, HL     uint16
	AF_, BC_, DE_, HL_ uint16
	IX, IY             uint16
	SP, PC             uint16

	// the I register in the high byte and the R register in the low byte
	IR uint16

	IFF1 bool
	IFF2 bool
	IM   uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x AF'=%04x BC'=%04x DE'=%04x HL'=%04x IX=%04x IY=%04x SP=%04x PC=%04x IR=%04x IFF1=%v IFF2=%v IM=%d",
		r.AF, r.BC, r.DE, r.HL, r.AF_, r.BC_, r.DE_, r.HL_, r.IX, r.IY, r.SP, r.PC, r.IR, r.IFF1, r.IFF2, r.IM)
}

// ULA is the state of the ULA and the memory paging port.
type ULA struct {
	BorderColour uint8

	// PagingFlags is the last value written to port 0x7ffd. it is only
	// meaningful if HasPagingFlags is true, which is never the case for 48K
	// snapshots
	PagingFlags    uint8
	HasPagingFlags bool
}

// Snapshot is the machine state read from an SZX file.
type Snapshot struct {
	Model     Model
	Registers Registers
	ULA       ULA

	// memory pages indexed by the page number used in the file. only pages
	// present in the file are present in the map
	MemoryPages map[int][]byte

	TStates uint32
	Halted  bool
}

// Pages returns the page numbers in the snapshot in ascending order.
func (s *Snapshot) Pages() []int {
	p := make([]int, 0, len(s.MemoryPages))
	for i := range s.MemoryPages {
		p = append(p, i)
	}
	sort.Ints(p)
	return p
}

func (s *Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model: %s\n", s.Model)
	fmt.Fprintf(&b, "registers: %s\n", s.Registers)
	fmt.Fprintf(&b, "border: %d", s.ULA.BorderColour)
	if s.ULA.HasPagingFlags {
		fmt.Fprintf(&b, " paging: %#02x", s.ULA.PagingFlags)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "pages: %v\n", s.Pages())
	fmt.Fprintf(&b, "tstates: %d halted: %v\n", s.TStates, s.Halted)
	return b.String()
}
