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

package core_test

import (
	"testing"

	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/test"
)

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, core.StatusTapeTrap.String(), "tape trap")
	test.ExpectEquality(t, core.Status(3).String(), "unknown status (3)")
	test.ExpectEquality(t, core.Machine128K.String(), "128K")
	test.ExpectEquality(t, core.MachineType(99).String(), "machine 99")
}

func TestRegisterSlots(t *testing.T) {
	test.ExpectEquality(t, core.RegAFx, 4)
	test.ExpectEquality(t, core.RegIX, 8)
	test.ExpectEquality(t, core.RegIR, core.NumRegisterPairs-1)
}
