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

package tapeloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/zxpreview/tapeloader"
	"github.com/jetsetilly/zxpreview/test"
)

func TestNewLoader(t *testing.T) {
	ld := tapeloader.NewLoader("games/manic.tap")
	test.ExpectFailure(t, ld.IsSoundData)
	test.ExpectEquality(t, ld.ShortName(), "manic")
	test.ExpectFailure(t, ld.HasLoaded())

	ld = tapeloader.NewLoader("recording.WAV")
	test.ExpectSuccess(t, ld.IsSoundData)

	ld = tapeloader.NewLoader("recording.mp3")
	test.ExpectSuccess(t, ld.IsSoundData)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.tap")
	data := []byte{0x02, 0x00, 0xff, 0xff}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))

	ld := tapeloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, data)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectSuccess(t, ld.HasLoaded())

	// wrong hash
	ld = tapeloader.NewLoader(fn)
	ld.Hash = "0000"
	test.ExpectFailure(t, ld.Load())
	test.ExpectFailure(t, ld.HasLoaded())

	// missing file
	ld = tapeloader.NewLoader(filepath.Join(dir, "missing.tap"))
	test.ExpectFailure(t, ld.Load())
}

func TestLoadFromArchive(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.zip")

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)

	w, err := zw.Create("readme.txt")
	test.DemandSuccess(t, err)
	w.Write([]byte("not a tape"))

	w, err = zw.Create("game/game.tap")
	test.DemandSuccess(t, err)
	w.Write([]byte{0x01, 0x00, 0x42})

	w, err = zw.Create("game/game.wav")
	test.DemandSuccess(t, err)
	w.Write([]byte{0x10})

	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	// first recognised file
	ld := tapeloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, []byte{0x01, 0x00, 0x42})
	test.ExpectFailure(t, ld.IsSoundData)

	// named file
	ld = tapeloader.NewLoader(filepath.Join(fn, "game", "game.wav"))
	test.DemandSuccess(t, ld.Load())
	test.ExpectBytes(t, ld.Data, []byte{0x10})
	test.ExpectSuccess(t, ld.IsSoundData)

	// missing file in archive
	ld = tapeloader.NewLoader(filepath.Join(fn, "nothere.tap"))
	test.ExpectFailure(t, ld.Load())
}
