// This file is part of Ardugo.
//
// Ardugo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ardugo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ardugo.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), and returns
// an error. The pattern doubles as the identity of the error: the Is()
// function checks whether an error was created from a specific pattern and
// the Has() function checks whether the pattern occurs anywhere in the error
// chain.
//
// Sentinel patterns should be stored as const strings, suitably named. For
// example:
//
//	const NotMapped = "not mapped: %s"
//
//	err := curated.Errorf(NotMapped, "VERSION")
//	if curated.Is(err, NotMapped) {
//		...
//	}
//
// The Error() function implementation normalises the message chain such that
// adjacent duplicate parts are removed. This alleviates the problem of when
// and how to wrap errors as they percolate up through the call stack.
package curated
