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

package assets

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/zxpreview/core"
	"github.com/jetsetilly/zxpreview/curated"
)

// MissingAssetError is returned when an asset file cannot be read.
const MissingAssetError = "assets: %v"

const baseResourcePath = ".zxpreview"

// sub-directories of the base path
const (
	romDir        = "roms"
	tapeLoaderDir = "tapeloaders"
	coreDir       = "core"
)

// CoreModule is the filename of the core WebAssembly module.
const CoreModule = "jsspeccy-core.wasm"

// Assets locates asset files relative to a base path.
type Assets struct {
	Base string
}

// New is the preferred method of initialisation for the Assets type. An
// empty base path selects the default base path.
func New(base string) Assets {
	if base == "" {
		base = defaultBasePath()
	}
	return Assets{Base: base}
}

func defaultBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// Path returns the full path of an asset.
func (a Assets) Path(elem ...string) string {
	return filepath.Join(append([]string{a.Base}, elem...)...)
}

func (a Assets) read(elem ...string) ([]byte, error) {
	d, err := os.ReadFile(a.Path(elem...))
	if err != nil {
		return nil, curated.Errorf(MissingAssetError, err)
	}
	return d, nil
}

// ROM returns the contents of the named ROM file.
func (a Assets) ROM(name string) ([]byte, error) {
	return a.read(romDir, name)
}

// TapeLoaderName returns the filename of the snapshot that is used to start
// loading a tape on the specified machine. The 128K snapshot is used only
// for the 128K machine.
func TapeLoaderName(m core.MachineType) string {
	if m == core.Machine128K {
		return "tape_128.szx"
	}
	return "tape_48.szx"
}

// TapeLoader returns the contents of the tape loader snapshot for the
// machine.
func (a Assets) TapeLoader(m core.MachineType) ([]byte, error) {
	return a.read(tapeLoaderDir, TapeLoaderName(m))
}

// Core returns the contents of the core module.
func (a Assets) Core() ([]byte, error) {
	return a.read(coreDir, CoreModule)
}
