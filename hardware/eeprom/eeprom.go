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

// Package eeprom bridges the persistent memory region of the execution
// engine to the host. The region is copied whole in both directions; there
// are no partial transfers. Arduboy games use the EEPROM for save games and
// high score tables so the package also knows how to park the region on
// disk between sessions.
package eeprom

import (
	"os"

	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/hardware/avr"
	"github.com/ardugo/ardugo/logger"
	"github.com/ardugo/ardugo/resources"
)

// sentinel errors returned by the eeprom package.
const (
	SizeMismatch = "eeprom: buffer is %d bytes; region is %d bytes"
)

// name of the file the EEPROM content is parked in between sessions.
const eepromFile = "eeprom"

// EEPROM copies the persistent memory region of the execution engine to and
// from the host.
type EEPROM struct {
	engine avr.Engine
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type.
func NewEEPROM(engine avr.Engine) *EEPROM {
	return &EEPROM{engine: engine}
}

// Size of the persistent memory region in bytes.
func (ee *EEPROM) Size() int {
	return len(ee.engine.EEPROM())
}

// Read returns a copy of the entire persistent memory region.
func (ee *EEPROM) Read() []byte {
	region := ee.engine.EEPROM()
	cp := make([]byte, len(region))
	copy(cp, region)
	return cp
}

// Write replaces the entire persistent memory region. The supplied buffer
// must be exactly the size of the region.
func (ee *EEPROM) Write(data []byte) error {
	region := ee.engine.EEPROM()
	if len(data) != len(region) {
		return curated.Errorf(SizeMismatch, len(data), len(region))
	}
	copy(region, data)
	return nil
}

// Load the persistent memory region from disk. A missing or malformed file
// is logged and otherwise ignored; the region is left as the engine
// initialised it.
func (ee *EEPROM) Load() {
	fn, err := resources.JoinPath(eepromFile)
	if err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not load eeprom file: %v", err)
		return
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not load eeprom file: %v", err)
		return
	}

	if err := ee.Write(data); err != nil {
		logger.Logf(logger.Allow, "eeprom", "eeprom file is of incorrect length: %d", len(data))
		return
	}

	logger.Logf(logger.Allow, "eeprom", "eeprom file loaded from %s", fn)
}

// Save the persistent memory region to disk.
func (ee *EEPROM) Save() {
	fn, err := resources.JoinPath(eepromFile)
	if err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not save eeprom file: %v", err)
		return
	}

	if err := os.WriteFile(fn, ee.engine.EEPROM(), 0600); err != nil {
		logger.Logf(logger.Allow, "eeprom", "could not save eeprom file: %v", err)
		return
	}

	logger.Logf(logger.Allow, "eeprom", "eeprom file saved to %s", fn)
}
