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

// Package oled emulates the SSD1306 display controller found in the
// Arduboy. The OLED type is the controller model: display memory, cursor,
// flags and contrast registers, mutated as the execution engine forwards
// command and data bytes from the simulated bus. The Screen type is the
// host-facing half: it decodes the bit-packed display memory into a
// luminance map and composites the luminance map into a pixel buffer,
// honouring the mirroring, inversion and contrast state of the model.
//
// The command set implemented here is the subset an Arduboy exercises. The
// remaining commands that carry argument bytes are consumed so that the
// command stream stays in sync, but are otherwise ignored.
package oled
