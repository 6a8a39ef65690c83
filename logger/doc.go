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

// Package logger is the central log for the application. There is only one
// log and entries are added with the Log() and Logf() functions.
//
// Every entry has a tag and a detail string. The tag is normally the name of
// the package or component making the entry:
//
//	logger.Logf(logger.Allow, "tape", "%d blocks", n)
//
// The log has a maximum number of entries and older entries are discarded as
// new entries are added. Consecutive identical entries are collapsed into one
// entry with a repeat count.
//
// Entries are only added if the Permission argument allows it. The Allow
// value is a good default for when an entry should always be made.
//
// The log is safe to use from more than one goroutine.
package logger
