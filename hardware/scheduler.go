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

package hardware

// the native refresh cadence of the display, in microseconds. one frame
// every 16.666ms, or 60Hz.
const refreshPeriodUsec = 16666

// frameBoundary is the write observer registered with the display model. A
// data write landing at the display origin with the dirty flag still set
// means the firmware has just finished flushing a complete frame: decode
// the display memory into the luminance map and clear the dirty flag so the
// decode doesn't repeat within the same frame.
//
// This is a convention inferred from how the Arduboy library paints the
// screen, not a guarantee of the display controller. A firmware that writes
// display memory out of the assumed order may show tearing.
func (ab *Arduboy) frameBoundary() {
	if ab.OLED.AtOrigin() && ab.OLED.Dirty() {
		ab.Screen.Decode(ab.OLED)
		ab.OLED.ClearDirty()
	}
}

// updateScreen is the cycle timer callback that paces the emulation to the
// display refresh cadence. Composites the current frame into the bound
// pixel buffer, signals the run loop to yield and reschedules itself one
// refresh period ahead.
func (ab *Arduboy) updateScreen(cycle uint64) uint64 {
	if ab.pixels != nil {
		ab.Screen.Composite(ab.OLED, ab.pixels)
	}
	ab.yield = true
	return cycle + ab.engine.UsecToCycles(refreshPeriodUsec)
}
