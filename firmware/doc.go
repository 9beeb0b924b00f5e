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

// Package firmware loads Arduboy firmware images. Arduboy games are
// distributed as Intel HEX files, the format produced by the avr-gcc
// toolchain. The records of the hex file are parsed and flattened into a
// single contiguous image, suitable for copying into the flash memory of
// the execution engine in one operation.
//
// The load address of the image is whatever the lowest record address is.
// For almost every Arduboy game that is address zero but images built for
// use with a bootloader may begin higher up.
package firmware
