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

package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/zxpreview/assets"
	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/test"
)

func TestTapeLoaderName(t *testing.T) {
	test.ExpectEquality(t, assets.TapeLoaderName(core.Machine128K), "tape_128.szx")
	test.ExpectEquality(t, assets.TapeLoaderName(core.Machine48K), "tape_48.szx")
	test.ExpectEquality(t, assets.TapeLoaderName(core.MachinePentagon), "tape_48.szx")
}

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.MkdirAll(filepath.Join(dir, "roms"), 0700))
	test.DemandSuccess(t, os.MkdirAll(filepath.Join(dir, "tapeloaders"), 0700))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "roms", "48.rom"), []byte{0xf3, 0xaf}, 0600))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "tapeloaders", "tape_48.szx"), []byte("ZXST"), 0600))

	a := assets.New(dir)
	test.ExpectEquality(t, a.Base, dir)

	d, err := a.ROM("48.rom")
	test.ExpectSuccess(t, err)
	test.ExpectBytes(t, d, []byte{0xf3, 0xaf})

	d, err = a.TapeLoader(core.Machine48K)
	test.ExpectSuccess(t, err)
	test.ExpectBytes(t, d, []byte("ZXST"))

	_, err = a.TapeLoader(core.Machine128K)
	test.ExpectFailure(t, err)

	_, err = a.Core()
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, a.Path("core", assets.CoreModule), filepath.Join(dir, "core", "jsspeccy-core.wasm"))
}

func TestDefaultBase(t *testing.T) {
	a := assets.New("")
	test.ExpectInequality(t, a.Base, "")
}
