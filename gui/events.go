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

package gui

// Event represents all the different kinds of event that can occur in the
// gui. Events are sent over a registered event channel and are handled by
// the parent process, not by the gui itself.
type Event interface{}

// EventQuit is sent when the gui window is closed.
type EventQuit struct{}

// EventKeyboard is the data that accompanies keyboard events.
type EventKeyboard struct {
	Key  string
	Down bool
}
