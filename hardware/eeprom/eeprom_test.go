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

package eeprom_test

import (
	"testing"

	"github.com/ardugo/ardugo/hardware/avr/avrtest"
	"github.com/ardugo/ardugo/hardware/eeprom"
	"github.com/ardugo/ardugo/test"
)

func TestRoundTrip(t *testing.T) {
	engine := avrtest.NewEngine()
	ee := eeprom.NewEEPROM(engine)

	test.ExpectEquality(t, ee.Size(), avrtest.EEPROMSize)

	buf := make([]byte, ee.Size())
	for i := range buf {
		buf[i] = byte(i * 3)
	}

	test.ExpectSuccess(t, ee.Write(buf))
	test.ExpectSliceEquality(t, ee.Read(), buf)
}

func TestReadIsACopy(t *testing.T) {
	engine := avrtest.NewEngine()
	ee := eeprom.NewEEPROM(engine)

	a := ee.Read()
	a[0] = 0xff

	// mutating a read buffer must not reach the engine
	b := ee.Read()
	test.ExpectEquality(t, b[0], byte(0))
}

func TestSizeMismatch(t *testing.T) {
	engine := avrtest.NewEngine()
	ee := eeprom.NewEEPROM(engine)

	test.ExpectFailure(t, ee.Write(make([]byte, ee.Size()-1)))
	test.ExpectFailure(t, ee.Write(make([]byte, ee.Size()+1)))
}
