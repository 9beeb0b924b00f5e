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
	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/firmware"
	"github.com/ardugo/ardugo/hardware/avr"
	"github.com/ardugo/ardugo/hardware/buttons"
	"github.com/ardugo/ardugo/hardware/eeprom"
	"github.com/ardugo/ardugo/hardware/oled"
	"github.com/ardugo/ardugo/logger"
)

// sentinel errors returned by the hardware package.
const (
	SetupError = "arduboy: %v"
	NotLive    = "arduboy: no live session"
)

// The MCU at the heart of the Arduboy.
const MCU = "atmega32u4"

// ClockFreq is the clock frequency of real Arduboy hardware, in Hz.
const ClockFreq = 16000000

// Arduboy is the main container for the emulated console. It owns the
// execution engine instance along with the peripheral models wired to it.
type Arduboy struct {
	engine avr.Engine

	OLED    *oled.OLED
	Screen  *oled.Screen
	Buttons *buttons.Buttons
	EEPROM  *eeprom.EEPROM

	// set by the frame scheduler to end the current Step() burst
	yield bool

	// the pixel buffer bound for the duration of the current burst
	pixels []uint32

	live bool
}

// NewArduboy is the preferred method of initialisation for the Arduboy
// type. The firmware image is loaded into the engine's flash memory and the
// display, buttons and frame scheduler are wired up. On error no live
// session remains and the engine has been released.
func NewArduboy(engine avr.Engine, filename string, clockFreq int) (*Arduboy, error) {
	if engine == nil {
		return nil, curated.Errorf(SetupError, "no execution engine")
	}

	fw, err := firmware.NewFirmware(filename)
	if err != nil {
		engine.Terminate()
		return nil, curated.Errorf(SetupError, err)
	}

	ab := &Arduboy{engine: engine}

	// button A is wired to INT6 which defaults to level triggered. while the
	// button is held the interrupt triggers continuously, which is very
	// expensive to simulate. non-strict level trigger mode avoids that
	engine.SetStrictLevelTrigger(avr.INT6, false)

	if err := engine.LoadFlash(fw.LoadAddress, fw.Data); err != nil {
		engine.Terminate()
		return nil, curated.Errorf(SetupError, err)
	}
	engine.SetPC(fw.LoadAddress)

	engine.SetFrequency(clockFreq)
	engine.SetRunCycleLimit(engine.UsecToCycles(2 * refreshPeriodUsec))

	// connect display controller. the write observer is how completed
	// frames are noticed
	ab.OLED = oled.NewOLED()
	ab.Screen = oled.NewScreen()
	ab.OLED.SetWriteObserver(ab.frameBoundary)
	engine.ConnectDisplay(ab.OLED)

	// connect buttons
	ab.Buttons, err = buttons.NewButtons(engine)
	if err != nil {
		engine.Terminate()
		return nil, curated.Errorf(SetupError, err)
	}

	ab.EEPROM = eeprom.NewEEPROM(engine)

	// the display refresh timer
	engine.RegisterCycleTimer(engine.UsecToCycles(refreshPeriodUsec), ab.updateScreen)

	ab.live = true
	logger.Logf(logger.Allow, "arduboy", "setup: %v", fw)

	return ab, nil
}

// Live returns true if the session can be stepped.
func (ab *Arduboy) Live() bool {
	return ab.live
}

// Teardown releases the execution engine and marks the session as dead.
// Safe to call on a session that has already been torn down.
func (ab *Arduboy) Teardown() {
	if !ab.live {
		return
	}
	ab.live = false
	ab.engine.Terminate()
	logger.Log(logger.Allow, "arduboy", "teardown")
}

// SetButton forwards the pressed state of a button to the button bridge.
// A no-op if the session is not live.
func (ab *Arduboy) SetButton(b buttons.Button, pressed bool) {
	if !ab.live {
		return
	}
	ab.Buttons.Set(b, pressed)
}

// ReadEEPROM returns a copy of the persistent memory region. Fails if the
// session is not live.
func (ab *Arduboy) ReadEEPROM() ([]byte, error) {
	if !ab.live {
		return nil, curated.Errorf(NotLive)
	}
	return ab.EEPROM.Read(), nil
}

// WriteEEPROM replaces the persistent memory region. Fails if the session
// is not live or the buffer is not the exact region size.
func (ab *Arduboy) WriteEEPROM(data []byte) error {
	if !ab.live {
		return curated.Errorf(NotLive)
	}
	return ab.EEPROM.Write(data)
}
