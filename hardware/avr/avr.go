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

package avr

// Status is the condition of the execution engine after a call to the Run()
// function.
type Status int

// List of valid Status values.
const (
	// the engine can accept further calls to Run()
	StatusRunning Status = iota

	// the program counter has run off the end of the loaded program
	StatusDone

	// the engine has detected a fault condition. the session is unusable
	StatusCrashed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusCrashed:
		return "crashed"
	}
	return "unknown"
}

// Line is a single wire into the simulated MCU. Raising the line sets its
// logical level.
type Line interface {
	Raise(level bool)
}

// CycleTimer is a callback registered with RegisterCycleTimer(). It is
// invoked when the engine's cycle counter reaches the requested value. The
// return value is the absolute cycle count at which the timer should next
// fire. This is how periodic timers reschedule themselves.
type CycleTimer func(cycle uint64) uint64

// Display is the interface to the display controller model. The engine
// forwards bytes arriving over the simulated SPI/TWI bus, distinguishing
// command bytes from data bytes by the state of the data/instruction pin.
type Display interface {
	WriteCommand(data uint8)
	WriteData(data uint8)
}

// The external interrupt index that button A is wired to on the Arduboy.
// INT6 defaults to level triggered which means the interrupt fires
// continuously while the button is held. See SetStrictLevelTrigger().
const INT6 = 6

// Engine is the interface to the cycle-accurate MCU simulation. The
// simulation itself (instruction decoding, peripheral models, interrupt
// delivery, cycle accounting) is outside this project. Implementations
// register themselves with the Register() function.
type Engine interface {
	// name of the MCU being simulated
	MCU() string

	// copy a firmware image into flash memory at the given origin
	LoadFlash(origin uint32, data []byte) error

	// set the initial program counter
	SetPC(pc uint32)

	// the simulated clock frequency in Hz
	SetFrequency(hz int)

	// the maximum number of cycles a single Run() call may consume before
	// returning regardless of other conditions
	SetRunCycleLimit(cycles uint64)

	// whether the numbered external interrupt is simulated with strict
	// level-trigger semantics. strict simulation of a held level-triggered
	// line is expensive
	SetStrictLevelTrigger(extint int, strict bool)

	// connect the display controller model to the simulated bus
	ConnectDisplay(Display)

	// the line connected to the numbered bit of the named parallel port
	// block ('B', 'E', 'F', etc)
	PortLine(port rune, bit int) (Line, error)

	// register a callback to run when the cycle counter has advanced by the
	// wait amount
	RegisterCycleTimer(wait uint64, callback CycleTimer)

	// convert a duration in microseconds to a cycle count at the configured
	// clock frequency
	UsecToCycles(usec int) uint64

	// the current cycle counter
	Cycles() uint64

	// run the engine for a bounded burst of instructions
	Run() Status

	// the persistent memory region. the returned slice is the live EEPROM
	// content, bounded at the fixed EEPROM size for the MCU
	EEPROM() []byte

	// release all engine resources. the engine is unusable afterwards
	Terminate()
}
