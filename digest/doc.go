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

// Package digest computes a fingerprint of a sequence of frames. The
// fingerprint of each frame is chained to the fingerprint of the previous
// frame, so two digests are equal only if every frame was equal and in the
// same order.
//
// Digests are useful for checking that a preview is reproducible. The same
// tape and options will always produce the same digest.
package digest
