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

// marker byte for a compressed run. two consecutive markers are followed by a
// count and a value
const rleMarker = 0xed

// Decompress the run-length encoded data in src into dst. Returns the number
// of bytes written to dst, which will never be more than len(dst).
//
// A run is encoded as the four bytes ED ED count value. Any other byte is
// copied as-is, including an ED that isn't followed by a complete run.
func Decompress(dst []byte, src []byte) int {
	var s, d int

	for d < len(dst) && s < len(src) {
		if s+3 < len(src) && src[s] == rleMarker && src[s+1] == rleMarker {
			count := int(src[s+2])
			value := src[s+3]
			for i := 0; i < count && d < len(dst); i++ {
				dst[d] = value
				d++
			}
			s += 4
		} else {
			dst[d] = src[s]
			d++
			s++
		}
	}

	return d
}
