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

package playmode

import (
	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/gui"
	"github.com/ardugo/ardugo/hardware"
	"github.com/ardugo/ardugo/hardware/buttons"
)

// sentinal error returned when user input requests the session to end.
const quitEvent = "user input quit event"

// keyboardEventHandler maps the host keyboard onto the console buttons. the
// directional pad is on the arrow keys; the A and B buttons on Z and X.
func keyboardEventHandler(ev gui.EventKeyboard, ab *hardware.Arduboy) error {
	switch ev.Key {
	case "Up":
		ab.SetButton(buttons.Up, ev.Down)
	case "Down":
		ab.SetButton(buttons.Down, ev.Down)
	case "Left":
		ab.SetButton(buttons.Left, ev.Down)
	case "Right":
		ab.SetButton(buttons.Right, ev.Down)
	case "Z":
		ab.SetButton(buttons.A, ev.Down)
	case "X":
		ab.SetButton(buttons.B, ev.Down)
	case "Escape":
		if ev.Down {
			return curated.Errorf(quitEvent)
		}
	}

	return nil
}
