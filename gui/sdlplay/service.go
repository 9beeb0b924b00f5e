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

package sdlplay

import (
	"github.com/ardugo/ardugo/gui"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and take time
	// to service for no good reason. the emulated machine has no pointing
	// device
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.eventChannel != nil {
		// loop until there are no more events to retrieve. servicing just one
		// event per frame is not enough, queued events would take one frame
		// or longer to resolve
		empty := false
		for !empty {
			// check for SDL events. timing out straight away if there's
			// nothing
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				scr.eventChannel <- gui.EventQuit{}

			case *sdl.KeyboardEvent:
				if ev.Repeat == 0 {
					switch ev.Type {
					case sdl.KEYDOWN:
						scr.eventChannel <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: true}
					case sdl.KEYUP:
						scr.eventChannel <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: false}
					}
				}

			case nil:
				// a nil value means that WaitEventTimeout has timed out and
				// we can say that the event queue is empty
				empty = true
			}
		}
	}

	// wait for frame limiter
	if scr.fpsCap {
		scr.lmtr.Wait()
	}
}
