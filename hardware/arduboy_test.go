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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardugo/ardugo/hardware"
	"github.com/ardugo/ardugo/hardware/avr"
	"github.com/ardugo/ardugo/hardware/avr/avrtest"
	"github.com/ardugo/ardugo/hardware/buttons"
	"github.com/ardugo/ardugo/hardware/oled"
	"github.com/ardugo/ardugo/test"
)

// a minimal but well formed hex image. the content is immaterial to the
// scripted engine
const hexImage = `:10010000214601360121470136007EFE09D2190140
:00000001FF
`

func writeHex(t *testing.T) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "image.hex")
	if err := os.WriteFile(pth, []byte(hexImage), 0600); err != nil {
		t.Fatal(err)
	}
	return pth
}

func TestSetup(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ab.Live(), true)

	// firmware loaded at its declared address and the program counter
	// pointing at it
	test.ExpectEquality(t, engine.FlashOrigin, uint32(0x0100))
	test.ExpectEquality(t, engine.PC, uint32(0x0100))
	test.ExpectEquality(t, len(engine.Flash), 16)

	// simulation parameters
	test.ExpectEquality(t, engine.Frequency, 16000000)
	test.ExpectEquality(t, engine.RunCycleLimit, engine.UsecToCycles(2*16666))

	// INT6 strict level triggering relaxed
	strict, ok := engine.StrictLevel[avr.INT6]
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, strict, false)

	// display connected
	test.ExpectEquality(t, engine.Display != nil, true)
}

func TestSetupBadImage(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, filepath.Join(t.TempDir(), "no_such_image.hex"), hardware.ClockFreq)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ab == nil, true)

	// a failed setup leaves no session resources allocated
	test.ExpectEquality(t, engine.Terminated, true)
}

func TestSetupNoEngine(t *testing.T) {
	ab, err := hardware.NewArduboy(nil, "image.hex", hardware.ClockFreq)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ab == nil, true)
}

func TestStepYieldsOncePerFrame(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
	test.ExpectSuccess(t, err)

	// the scripted engine idles, consuming cycles. this is the tight
	// infinite loop case: no display writes, no halt. Step must still
	// return at the frame boundary
	pixels := make([]uint32, oled.Width*oled.Height)
	test.ExpectEquality(t, ab.Step(pixels), true)

	// one refresh period of cycles has elapsed, give or take one engine
	// burst
	if engine.Cycles() < engine.UsecToCycles(16666) {
		t.Fatalf("step returned before the frame interval: %d cycles", engine.Cycles())
	}
	if engine.Cycles() > engine.UsecToCycles(16666)+engine.StepCycles {
		t.Fatalf("step overran the frame interval: %d cycles", engine.Cycles())
	}

	// subsequent steps cover one frame interval each
	test.ExpectEquality(t, ab.Step(pixels), true)
	test.ExpectEquality(t, ab.Step(pixels), true)
	if engine.Cycles() > engine.UsecToCycles(3*16666)+3*engine.StepCycles {
		t.Fatalf("accumulated cycle drift across steps: %d cycles", engine.Cycles())
	}
}

func TestStepRendersFrame(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
	test.ExpectSuccess(t, err)

	// stand-in firmware: switch the display on and flush one full frame of
	// lit pixels. the write that begins the next frame is what marks the
	// previous frame complete
	wrote := false
	engine.OnStep = func(e *avrtest.Engine) avr.Status {
		if !wrote {
			wrote = true
			e.Display.WriteCommand(0xaf)
			for i := 0; i < oled.Pages*oled.Columns; i++ {
				e.Display.WriteData(0xff)
			}
			e.Display.WriteData(0xff)
		}
		return avr.StatusRunning
	}

	pixels := make([]uint32, oled.Width*oled.Height)
	test.ExpectEquality(t, ab.Step(pixels), true)

	// every pixel is foreground: contrast zero is half-opacity grey
	for i := range pixels {
		if pixels[i] != 0xff7f7f7f {
			t.Fatalf("pixel %d is %08x, expected ff7f7f7f", i, pixels[i])
		}
	}
}

func TestStepTerminalStatus(t *testing.T) {
	for _, status := range []avr.Status{avr.StatusDone, avr.StatusCrashed} {
		engine := avrtest.NewEngine()
		ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
		test.ExpectSuccess(t, err)

		engine.OnStep = func(e *avrtest.Engine) avr.Status {
			return status
		}

		pixels := make([]uint32, oled.Width*oled.Height)
		test.ExpectEquality(t, ab.Step(pixels), false)
	}
}

func TestEEPROMRoundTrip(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
	test.ExpectSuccess(t, err)

	buf := make([]byte, avrtest.EEPROMSize)
	for i := range buf {
		buf[i] = byte(i)
	}

	test.ExpectSuccess(t, ab.WriteEEPROM(buf))

	rt, err := ab.ReadEEPROM()
	test.ExpectSuccess(t, err)
	test.ExpectSliceEquality(t, rt, buf)
}

func TestTeardown(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
	test.ExpectSuccess(t, err)

	ab.Teardown()
	test.ExpectEquality(t, ab.Live(), false)
	test.ExpectEquality(t, engine.Terminated, true)

	// teardown is idempotent
	ab.Teardown()

	// operations on a dead session fail or are no-ops
	test.ExpectEquality(t, ab.Step(make([]uint32, oled.Width*oled.Height)), false)

	_, err = ab.ReadEEPROM()
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, ab.WriteEEPROM(make([]byte, avrtest.EEPROMSize)))

	raises := engine.Line('F', 7).RaiseCount
	ab.SetButton(buttons.Up, true)
	test.ExpectEquality(t, engine.Line('F', 7).RaiseCount, raises)
}

func TestButtonThroughSession(t *testing.T) {
	engine := avrtest.NewEngine()
	ab, err := hardware.NewArduboy(engine, writeHex(t), hardware.ClockFreq)
	test.ExpectSuccess(t, err)

	l := engine.Line('B', 4)
	test.ExpectEquality(t, l.Level, true) // pull-up

	ab.SetButton(buttons.B, true)
	test.ExpectEquality(t, l.Level, false)
}
