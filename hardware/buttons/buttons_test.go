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

package buttons_test

import (
	"testing"

	"github.com/ardugo/ardugo/hardware/avr/avrtest"
	"github.com/ardugo/ardugo/hardware/buttons"
	"github.com/ardugo/ardugo/test"
)

func TestPullUps(t *testing.T) {
	engine := avrtest.NewEngine()
	_, err := buttons.NewButtons(engine)
	test.ExpectSuccess(t, err)

	// every wired line is pulled high at setup
	for _, w := range []struct {
		port rune
		bit  int
	}{{'F', 7}, {'F', 4}, {'F', 5}, {'F', 6}, {'E', 6}, {'B', 4}} {
		l := engine.Line(w.port, w.bit)
		if l == nil {
			t.Fatalf("no line acquired for %c%d", w.port, w.bit)
		}
		test.ExpectEquality(t, l.Level, true)
		test.ExpectEquality(t, l.RaiseCount, 1)
	}
}

func TestActiveLow(t *testing.T) {
	engine := avrtest.NewEngine()
	bts, err := buttons.NewButtons(engine)
	test.ExpectSuccess(t, err)

	// up button is on port F bit 7
	l := engine.Line('F', 7)

	bts.Set(buttons.Up, true)
	test.ExpectEquality(t, l.Level, false)
	test.ExpectEquality(t, bts.Pressed(buttons.Up), true)

	bts.Set(buttons.Up, false)
	test.ExpectEquality(t, l.Level, true)
	test.ExpectEquality(t, bts.Pressed(buttons.Up), false)
}

func TestTransitionDeduplication(t *testing.T) {
	engine := avrtest.NewEngine()
	bts, err := buttons.NewButtons(engine)
	test.ExpectSuccess(t, err)

	l := engine.Line('E', 6)
	test.ExpectEquality(t, l.RaiseCount, 1) // the pull-up

	// a repeated press must not raise the line a second time
	bts.Set(buttons.A, true)
	bts.Set(buttons.A, true)
	test.ExpectEquality(t, l.RaiseCount, 2)

	bts.Set(buttons.A, false)
	bts.Set(buttons.A, false)
	test.ExpectEquality(t, l.RaiseCount, 3)
}

func TestOutOfRange(t *testing.T) {
	engine := avrtest.NewEngine()
	bts, err := buttons.NewButtons(engine)
	test.ExpectSuccess(t, err)

	// out of range buttons are silently ignored
	bts.Set(buttons.NumButtons, true)
	bts.Set(buttons.Button(-1), true)
	test.ExpectEquality(t, bts.Pressed(buttons.NumButtons), false)
}
