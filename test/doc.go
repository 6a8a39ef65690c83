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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare two values of
// the same comparable type. The ExpectSuccess() and ExpectFailure() functions
// test a value for a success or failure condition that is suitable for the
// type (for example, for an error type success is nil and for a bool type
// success is true).
//
// The Demand*() functions are the same but the test is halted on failure. They
// should be used when further tests depend on the value being correct.
//
// The Writer type can be used to capture output written to an io.Writer and
// compare it against an expected string.
package test
