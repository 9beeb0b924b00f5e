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

// Package gui defines the operations required of a graphical display for the
// emulation, along with the event types the display sends back to the parent
// process.
package gui

import "io"

// GUI defines the operations that can be performed on the graphical display.
type GUI interface {
	// SetEventChannel registers the channel over which gui events are sent.
	// User input is not collected until a channel has been registered.
	SetEventChannel(chan Event)

	// Render the supplied pixels. The slice is in row-major order and is
	// expected to cover the display exactly.
	Render(pixels []uint32) error

	// Service gui events.
	//
	// MUST ONLY be called from the #mainthread
	Service()

	// Destroy cleans up any resources used by the gui. Errors are written to
	// the supplied io.Writer.
	Destroy(io.Writer)
}
