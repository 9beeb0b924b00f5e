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

// Package buttons bridges host input to the simulated port lines of the
// execution engine. The six Arduboy buttons are wired active-low: the line
// reads high while the button is unpressed, with the pull-up asserted at
// setup time. Raising a line is only done on an actual state transition.
// One of the buttons is wired to a level-sensitive interrupt and a held
// line is expensive to simulate, so redundant raises must be strictly
// avoided.
package buttons

import (
	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/hardware/avr"
)

// Button identifies one of the six Arduboy buttons.
type Button int

// List of valid Button values.
const (
	Up Button = iota
	Down
	Left
	Right
	A
	B
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case A:
		return "a"
	case B:
		return "b"
	}
	return "unknown"
}

// how each button connects to the MCU parallel ports. fixed by the Arduboy
// schematic.
var wiring = [NumButtons]struct {
	port rune
	bit  int
}{
	Up:    {'F', 7},
	Down:  {'F', 4},
	Left:  {'F', 5},
	Right: {'F', 6},
	A:     {'E', 6},
	B:     {'B', 4},
}

// Buttons maps the logical buttons to the port lines of the execution
// engine.
type Buttons struct {
	lines   [NumButtons]avr.Line
	pressed [NumButtons]bool
}

// NewButtons is the preferred method of initialisation for the Buttons
// type. The port lines are acquired from the engine and the pull-ups
// asserted, leaving every line high/unpressed.
func NewButtons(engine avr.Engine) (*Buttons, error) {
	bts := &Buttons{}

	for b := Button(0); b < NumButtons; b++ {
		line, err := engine.PortLine(wiring[b].port, wiring[b].bit)
		if err != nil {
			return nil, curated.Errorf("buttons: %v", err)
		}
		bts.lines[b] = line

		// pull up pin
		line.Raise(true)
	}

	return bts, nil
}

// Set the pressed state of a button. An out of range button is a no-op, as
// is setting a button to the state it is already in. On a transition the
// wired line is raised to the logical NOT of the pressed state.
func (bts *Buttons) Set(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	if bts.pressed[b] == pressed {
		return
	}

	bts.lines[b].Raise(!pressed)
	bts.pressed[b] = pressed
}

// Pressed returns the last state set for the button. An out of range button
// reads as unpressed.
func (bts *Buttons) Pressed(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return bts.pressed[b]
}
