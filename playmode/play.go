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

// Package playmode sets the emulation running with an SDL window and
// keyboard input. It is the normal front-end for playing games.
package playmode

import (
	"os"
	"os/signal"

	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/gui"
	"github.com/ardugo/ardugo/gui/sdlplay"
	"github.com/ardugo/ardugo/hardware"
	"github.com/ardugo/ardugo/hardware/avr"
	"github.com/ardugo/ardugo/hardware/oled"
	"github.com/ardugo/ardugo/logger"
)

// Play sets the emulation running.
//
// A scale of zero or less means the scale from the previous session is used.
// A positive scale is saved for the next session.
//
// MUST ONLY be called from the #mainthread
func Play(filename string, scale int, fpsCap bool) error {
	prf, err := newPreferences()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if scale > 0 {
		err = prf.scale.Set(scale)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		err = prf.save()
		if err != nil {
			logger.Logf(logger.Allow, "playmode", "could not save preferences: %v", err)
		}
	}

	engine, err := avr.Make(hardware.MCU)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	ab, err := hardware.NewArduboy(engine, filename, hardware.ClockFreq)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer ab.Teardown()

	// restore persistent memory from any previous session and save it again
	// when the session ends
	ab.EEPROM.Load()
	defer ab.EEPROM.Save()

	var scr gui.GUI
	scr, err = sdlplay.NewSdlPlay(prf.scale.Get().(int), fpsCap)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy(os.Stderr)

	// connect gui
	events := make(chan gui.Event, 64)
	scr.SetEventChannel(events)

	// redirect interrupt signal so the deferred teardown and EEPROM save run
	// even when ctrl-c is pressed
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	pixels := make([]uint32, oled.Width*oled.Height)

	// run and handle gui events
	for {
		scr.Service()

		select {
		case <-intChan:
			return nil
		default:
		}

		// drain the gui events gathered by Service(). handling just one
		// event per frame would leave queued events a frame or more behind
		drained := false
		for !drained {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case gui.EventQuit:
					return nil
				case gui.EventKeyboard:
					err = keyboardEventHandler(ev, ab)
					if err != nil {
						if curated.Is(err, quitEvent) {
							return nil
						}
						return err
					}
				}
			default:
				drained = true
			}
		}

		if !ab.Step(pixels) {
			// the firmware has stopped. the reason has already been logged
			return nil
		}

		err = scr.Render(pixels)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}
}
