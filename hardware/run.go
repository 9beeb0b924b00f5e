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

import (
	"github.com/ardugo/ardugo/hardware/avr"
	"github.com/ardugo/ardugo/logger"
)

// Step drives the execution engine up to the next frame boundary. The
// pixel buffer is bound for the duration of the burst and holds the
// composited frame when the function returns true.
//
// The caller should invoke Step once per host frame tick for as long as it
// returns true. A false return means the engine has halted or crashed; the
// session is unusable until it is torn down and a new one set up.
//
// Each engine.Run() call is itself bounded by the run cycle limit
// configured at setup (two refresh periods), so a firmware image stuck in a
// tight loop with no display activity still returns control here every
// iteration and the burst ends at the next timer-driven yield.
func (ab *Arduboy) Step(pixels []uint32) bool {
	if !ab.live {
		return false
	}

	ab.yield = false
	ab.pixels = pixels

	for !ab.yield {
		status := ab.engine.Run()
		if status == avr.StatusDone || status == avr.StatusCrashed {
			logger.Logf(logger.Allow, "arduboy", "engine stopped: %v", status)
			return false
		}
	}

	return true
}
