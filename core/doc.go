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

// Package core defines the contract between the machine driver and the CPU
// emulation core. The core is an external, prebuilt component. It is treated
// as a black box that runs whole frames and reports tape traps through the
// status value returned by RunFrame() and ResumeFrame().
//
// Implementations are found in the subpackages. The wasmcore package hosts the
// jsspeccy core WebAssembly module. The nullcore package is a scriptable core
// that is useful for testing.
package core
