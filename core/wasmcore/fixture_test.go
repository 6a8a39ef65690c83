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

package wasmcore_test

// coreModule is a stand-in for the core module. It exports the same memory,
// globals and functions as the real core but emulates nothing.
var coreModule = []byte{
	// magic and version
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,

	// types: () i32, (), (i32), (i32, i32)
	0x01, 0x11, 0x04, 0x60, 0x00, 0x01, 0x7f, 0x60, 0x00, 0x00, 0x60, 0x01,
	0x7f, 0x00, 0x60, 0x02, 0x7f, 0x7f, 0x00,

	// fourteen functions, one for each name the core exports
	0x03, 0x0f, 0x0e, 0x00, 0x00, 0x02, 0x01, 0x03, 0x02, 0x02, 0x02, 0x02,
	0x02, 0x03, 0x02, 0x02, 0x02,

	// one page of memory
	0x05, 0x03, 0x01, 0x00, 0x01,

	// FRAME_BUFFER 0x1000, REGISTERS 0x100, MACHINE_MEMORY 0x8000, AUDIO_BUFFER_LEFT 0x200,
	// TAPE_PULSES 0x300, TAPE_PULSES_LENGTH 0x40
	0x06, 0x26, 0x06, 0x7f, 0x00, 0x41, 0x80, 0x20, 0x0b, 0x7f, 0x00, 0x41,
	0x80, 0x02, 0x0b, 0x7f, 0x00, 0x41, 0x80, 0x80, 0x02, 0x0b, 0x7f, 0x00,
	0x41, 0x80, 0x04, 0x0b, 0x7f, 0x00, 0x41, 0x80, 0x06, 0x0b, 0x7f, 0x00,
	0x41, 0xc0, 0x00, 0x0b,

	// memory, functions and globals
	0x07, 0x98, 0x02, 0x15, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02,
	0x00, 0x08, 0x72, 0x75, 0x6e, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x00, 0x00,
	0x0b, 0x72, 0x65, 0x73, 0x75, 0x6d, 0x65, 0x46, 0x72, 0x61, 0x6d, 0x65,
	0x00, 0x01, 0x0e, 0x73, 0x65, 0x74, 0x4d, 0x61, 0x63, 0x68, 0x69, 0x6e,
	0x65, 0x54, 0x79, 0x70, 0x65, 0x00, 0x02, 0x05, 0x72, 0x65, 0x73, 0x65,
	0x74, 0x00, 0x03, 0x04, 0x70, 0x6f, 0x6b, 0x65, 0x00, 0x04, 0x05, 0x73,
	0x65, 0x74, 0x50, 0x43, 0x00, 0x05, 0x07, 0x73, 0x65, 0x74, 0x49, 0x46,
	0x46, 0x31, 0x00, 0x06, 0x07, 0x73, 0x65, 0x74, 0x49, 0x46, 0x46, 0x32,
	0x00, 0x07, 0x05, 0x73, 0x65, 0x74, 0x49, 0x4d, 0x00, 0x08, 0x09, 0x73,
	0x65, 0x74, 0x48, 0x61, 0x6c, 0x74, 0x65, 0x64, 0x00, 0x09, 0x09, 0x77,
	0x72, 0x69, 0x74, 0x65, 0x50, 0x6f, 0x72, 0x74, 0x00, 0x0a, 0x0a, 0x73,
	0x65, 0x74, 0x54, 0x53, 0x74, 0x61, 0x74, 0x65, 0x73, 0x00, 0x0b, 0x17,
	0x73, 0x65, 0x74, 0x41, 0x75, 0x64, 0x69, 0x6f, 0x53, 0x61, 0x6d, 0x70,
	0x6c, 0x65, 0x73, 0x50, 0x65, 0x72, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x00,
	0x0c, 0x0c, 0x73, 0x65, 0x74, 0x54, 0x61, 0x70, 0x65, 0x54, 0x72, 0x61,
	0x70, 0x73, 0x00, 0x0d, 0x0c, 0x46, 0x52, 0x41, 0x4d, 0x45, 0x5f, 0x42,
	0x55, 0x46, 0x46, 0x45, 0x52, 0x03, 0x00, 0x09, 0x52, 0x45, 0x47, 0x49,
	0x53, 0x54, 0x45, 0x52, 0x53, 0x03, 0x01, 0x0e, 0x4d, 0x41, 0x43, 0x48,
	0x49, 0x4e, 0x45, 0x5f, 0x4d, 0x45, 0x4d, 0x4f, 0x52, 0x59, 0x03, 0x02,
	0x11, 0x41, 0x55, 0x44, 0x49, 0x4f, 0x5f, 0x42, 0x55, 0x46, 0x46, 0x45,
	0x52, 0x5f, 0x4c, 0x45, 0x46, 0x54, 0x03, 0x03, 0x0b, 0x54, 0x41, 0x50,
	0x45, 0x5f, 0x50, 0x55, 0x4c, 0x53, 0x45, 0x53, 0x03, 0x04, 0x12, 0x54,
	0x41, 0x50, 0x45, 0x5f, 0x50, 0x55, 0x4c, 0x53, 0x45, 0x53, 0x5f, 0x4c,
	0x45, 0x4e, 0x47, 0x54, 0x48, 0x03, 0x05,

	// runFrame and resumeFrame return the bytes at MACHINE_MEMORY+0x4000 and
	// MACHINE_MEMORY+0x4001. poke stores a byte. every other function does nothing
	0x0a, 0x40, 0x0e, 0x09, 0x00, 0x41, 0x00, 0x2d, 0x00, 0x80, 0x80, 0x03,
	0x0b, 0x09, 0x00, 0x41, 0x00, 0x2d, 0x00, 0x81, 0x80, 0x03, 0x0b, 0x02,
	0x00, 0x0b, 0x02, 0x00, 0x0b, 0x09, 0x00, 0x20, 0x00, 0x20, 0x01, 0x3a,
	0x00, 0x00, 0x0b, 0x02, 0x00, 0x0b, 0x02, 0x00, 0x0b, 0x02, 0x00, 0x0b,
	0x02, 0x00, 0x0b, 0x02, 0x00, 0x0b, 0x02, 0x00, 0x0b, 0x02, 0x00, 0x0b,
	0x02, 0x00, 0x0b, 0x02, 0x00, 0x0b,

	// register pairs 0x1000 to 0x100b at REGISTERS. audio samples 0.5 and -1.0 at
	// AUDIO_BUFFER_LEFT
	0x0b, 0x2d, 0x02, 0x00, 0x41, 0x80, 0x02, 0x0b, 0x18, 0x00, 0x10, 0x01,
	0x10, 0x02, 0x10, 0x03, 0x10, 0x04, 0x10, 0x05, 0x10, 0x06, 0x10, 0x07,
	0x10, 0x08, 0x10, 0x09, 0x10, 0x0a, 0x10, 0x0b, 0x10, 0x00, 0x41, 0x80,
	0x04, 0x0b, 0x08, 0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x80, 0xbf,
}
