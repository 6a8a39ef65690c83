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

// Package wasmcore implements the core.Core interface by hosting the jsspeccy
// core WebAssembly module. The module is run with the wazero runtime and so
// no cgo or external runtime is required.
//
// The module exports its functions and a set of globals that give the offsets
// of the frame buffer, the register file, machine memory and the audio
// buffers within the module's linear memory. The offsets are resolved once
// when the module is loaded.
//
// Every Core owns its runtime. Nothing is shared between instances so
// separate instances can be used concurrently.
package wasmcore
