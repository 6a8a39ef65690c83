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

package logger

import "sync/atomic"

// Permission implementations decide whether a log request results in a new
// entry.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow permits the log request unconditionally.
var Allow Permission = allow{}

// verbose is used for entries that are made many times during a generation,
// such as one per tape trap.
type verbose struct {
	on atomic.Bool
}

func (v *verbose) AllowLogging() bool {
	return v.on.Load()
}

var verbosePerm = &verbose{}

// Verbose permits the log request only after SetVerbose(true).
var Verbose Permission = verbosePerm

// SetVerbose turns entries made with the Verbose permission on or off.
func SetVerbose(on bool) {
	verbosePerm.on.Store(on)
}
