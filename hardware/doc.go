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

// Package hardware ties the emulated Arduboy together. The Arduboy type
// owns one execution engine instance and the peripheral models wired to
// it: the OLED display controller, the six buttons and the EEPROM bridge.
//
// The emulation runs cooperatively. The host calls Step() once per display
// frame; the engine executes instructions until the refresh timer fires,
// at which point the current frame is composited into the host's pixel
// buffer and Step() returns. Button state changes arriving between calls
// to Step() are applied to the port lines immediately and are picked up by
// the engine's own interrupt delivery during the next burst.
//
// There is no threading inside the package. The host is responsible for
// any synchronisation at the pixel buffer boundary if it renders from a
// different goroutine.
package hardware
