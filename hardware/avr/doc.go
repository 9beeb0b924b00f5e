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

// Package avr defines the interface between the emulated Arduboy hardware
// and the AVR execution engine. The execution engine is deliberately
// external to this project: anything that can load a program image, run in
// bounded bursts, expose port lines and cycle timers and a fixed EEPROM
// region can sit behind the Engine interface.
//
// Engine implementations register a constructor against their MCU name with
// the Register() function, usually from an init() function, in the same way
// that database drivers register themselves with the database/sql package.
// Binding an implementation is then a matter of importing the package for
// its side effects.
//
// The avrtest sub-package contains a scripted engine used by the test suites
// in the hardware package tree.
package avr
