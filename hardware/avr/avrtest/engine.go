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

// Package avrtest provides a scripted implementation of the avr.Engine
// interface for testing purposes. The engine executes no real instructions.
// Instead the OnStep hook stands in for the firmware: it is called once per
// Run() burst and can drive the connected display, alter the EEPROM or end
// the simulation by returning a terminal status.
package avrtest

import (
	"fmt"

	"github.com/ardugo/ardugo/hardware/avr"
)

// EEPROMSize is the persistent memory size of the simulated MCU. Matches
// the ATmega32u4.
const EEPROMSize = 1024

// Line is a recording implementation of avr.Line.
type Line struct {
	Level bool

	// number of calls to Raise(), redundant or not
	RaiseCount int
}

// Raise implements the avr.Line interface.
func (l *Line) Raise(level bool) {
	l.Level = level
	l.RaiseCount++
}

type timer struct {
	next     uint64
	callback avr.CycleTimer
}

// Engine is a scripted avr.Engine implementation.
type Engine struct {
	// state recorded by the setup functions, for test inspection
	FlashOrigin   uint32
	Flash         []byte
	PC            uint32
	Frequency     int
	RunCycleLimit uint64
	StrictLevel   map[int]bool
	Display       avr.Display
	Terminated    bool

	// the number of cycles a single Run() call advances the cycle counter
	// by. defaults to 1000
	StepCycles uint64

	// OnStep stands in for the simulated firmware. it is called at the start
	// of every Run() burst. a nil hook leaves the engine idling, consuming
	// cycles. the returned status ends the burst when it is not
	// StatusRunning
	OnStep func(e *Engine) avr.Status

	cycles uint64
	eeprom []byte
	lines  map[string]*Line
	timers []*timer
}

// NewEngine is the preferred method of initialisation for the scripted
// Engine type.
func NewEngine() *Engine {
	return &Engine{
		StrictLevel: make(map[int]bool),
		StepCycles:  1000,
		eeprom:      make([]byte, EEPROMSize),
		lines:       make(map[string]*Line),
	}
}

// MCU implements the avr.Engine interface.
func (e *Engine) MCU() string {
	return "avrtest"
}

// LoadFlash implements the avr.Engine interface.
func (e *Engine) LoadFlash(origin uint32, data []byte) error {
	e.FlashOrigin = origin
	e.Flash = make([]byte, len(data))
	copy(e.Flash, data)
	return nil
}

// SetPC implements the avr.Engine interface.
func (e *Engine) SetPC(pc uint32) {
	e.PC = pc
}

// SetFrequency implements the avr.Engine interface.
func (e *Engine) SetFrequency(hz int) {
	e.Frequency = hz
}

// SetRunCycleLimit implements the avr.Engine interface.
func (e *Engine) SetRunCycleLimit(cycles uint64) {
	e.RunCycleLimit = cycles
}

// SetStrictLevelTrigger implements the avr.Engine interface.
func (e *Engine) SetStrictLevelTrigger(extint int, strict bool) {
	e.StrictLevel[extint] = strict
}

// ConnectDisplay implements the avr.Engine interface.
func (e *Engine) ConnectDisplay(d avr.Display) {
	e.Display = d
}

// PortLine implements the avr.Engine interface. The returned Line records
// every call to Raise(). The same Line instance is returned for repeated
// requests for the same port/bit pair.
func (e *Engine) PortLine(port rune, bit int) (avr.Line, error) {
	key := fmt.Sprintf("%c%d", port, bit)
	if l, ok := e.lines[key]; ok {
		return l, nil
	}
	l := &Line{}
	e.lines[key] = l
	return l, nil
}

// Line returns the recording line for the port/bit pair, or nil if no such
// line has been requested through PortLine().
func (e *Engine) Line(port rune, bit int) *Line {
	return e.lines[fmt.Sprintf("%c%d", port, bit)]
}

// RegisterCycleTimer implements the avr.Engine interface.
func (e *Engine) RegisterCycleTimer(wait uint64, callback avr.CycleTimer) {
	e.timers = append(e.timers, &timer{
		next:     e.cycles + wait,
		callback: callback,
	})
}

// UsecToCycles implements the avr.Engine interface.
func (e *Engine) UsecToCycles(usec int) uint64 {
	return uint64(usec) * uint64(e.Frequency) / 1000000
}

// Cycles implements the avr.Engine interface.
func (e *Engine) Cycles() uint64 {
	return e.cycles
}

// Run implements the avr.Engine interface. The OnStep hook is called first;
// if it returns a terminal status the burst ends immediately. Otherwise the
// cycle counter advances by StepCycles and any due cycle timers fire.
func (e *Engine) Run() avr.Status {
	if e.OnStep != nil {
		if status := e.OnStep(e); status != avr.StatusRunning {
			return status
		}
	}

	e.cycles += e.StepCycles

	for _, t := range e.timers {
		if e.cycles >= t.next {
			t.next = t.callback(e.cycles)
		}
	}

	return avr.StatusRunning
}

// EEPROM implements the avr.Engine interface.
func (e *Engine) EEPROM() []byte {
	return e.eeprom
}

// Terminate implements the avr.Engine interface.
func (e *Engine) Terminate() {
	e.Terminated = true
}
