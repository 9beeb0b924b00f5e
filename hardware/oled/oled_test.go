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

package oled

import (
	"testing"

	"github.com/ardugo/ardugo/test"
)

func TestCursorCommands(t *testing.T) {
	o := NewOLED()

	p, c := o.Cursor()
	test.ExpectEquality(t, p, 0)
	test.ExpectEquality(t, c, 0)
	test.ExpectEquality(t, o.AtOrigin(), true)

	o.WriteCommand(0xb3) // page 3
	o.WriteCommand(0x05) // column low nibble
	o.WriteCommand(0x12) // column high nibble

	p, c = o.Cursor()
	test.ExpectEquality(t, p, 3)
	test.ExpectEquality(t, c, 0x25)
	test.ExpectEquality(t, o.AtOrigin(), false)
}

func TestContrastCommand(t *testing.T) {
	o := NewOLED()
	test.ExpectEquality(t, o.Contrast(), uint8(0))

	// the argument byte must not be interpreted as a command
	o.WriteCommand(0x81)
	o.WriteCommand(0xaf)
	test.ExpectEquality(t, o.Contrast(), uint8(0xaf))
	test.ExpectEquality(t, o.DisplayOn(), false)
}

func TestFlagCommands(t *testing.T) {
	o := NewOLED()

	test.ExpectEquality(t, o.DisplayOn(), false)
	test.ExpectEquality(t, o.Inverted(), false)
	test.ExpectEquality(t, o.SegmentRemap(), false)
	test.ExpectEquality(t, o.COMScanReversed(), false)

	o.WriteCommand(0xaf)
	o.WriteCommand(0xa7)
	o.WriteCommand(0xa0)
	o.WriteCommand(0xc0)

	test.ExpectEquality(t, o.DisplayOn(), true)
	test.ExpectEquality(t, o.Inverted(), true)
	test.ExpectEquality(t, o.SegmentRemap(), true)
	test.ExpectEquality(t, o.COMScanReversed(), true)

	// the flag states selected by the Arduboy init sequence
	o.WriteCommand(0xae)
	o.WriteCommand(0xa6)
	o.WriteCommand(0xa1)
	o.WriteCommand(0xc8)

	test.ExpectEquality(t, o.DisplayOn(), false)
	test.ExpectEquality(t, o.Inverted(), false)
	test.ExpectEquality(t, o.SegmentRemap(), false)
	test.ExpectEquality(t, o.COMScanReversed(), false)
}

func TestDataWriteAdvance(t *testing.T) {
	o := NewOLED()

	test.ExpectEquality(t, o.Dirty(), false)

	o.WriteData(0xff)
	test.ExpectEquality(t, o.Dirty(), true)

	p, c := o.Cursor()
	test.ExpectEquality(t, p, 0)
	test.ExpectEquality(t, c, 1)

	// cursor wraps from the end of the last page back to the origin
	o.WriteCommand(0xb7) // page 7
	o.WriteCommand(0x0f) // column low nibble
	o.WriteCommand(0x17) // column high nibble
	p, c = o.Cursor()
	test.ExpectEquality(t, p, 7)
	test.ExpectEquality(t, c, 127)

	o.WriteData(0xff)
	test.ExpectEquality(t, o.AtOrigin(), true)
}

func TestWriteObserver(t *testing.T) {
	o := NewOLED()

	// record the state the observer sees. the observer runs before the
	// incoming byte lands so a full frame is detectable at the first write
	// of the next frame
	boundaries := 0
	o.SetWriteObserver(func() {
		if o.AtOrigin() && o.Dirty() {
			boundaries++
			o.ClearDirty()
		}
	})

	// a full frame of writes followed by the first write of the next frame
	for i := 0; i < Pages*Columns; i++ {
		o.WriteData(0x00)
	}
	test.ExpectEquality(t, boundaries, 0)

	o.WriteData(0x00)
	test.ExpectEquality(t, boundaries, 1)
}

func TestDecode(t *testing.T) {
	o := NewOLED()
	scr := NewScreen()

	// 0xa5 unpacks least significant bit topmost
	o.WriteData(0xa5)
	scr.Decode(o)

	expected := [8]uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for y := 0; y < 8; y++ {
		test.ExpectEquality(t, scr.luma[y][0], expected[y])
	}

	// decoding unchanged memory is idempotent
	before := scr.luma
	scr.Decode(o)
	test.ExpectEquality(t, scr.luma == before, true)
}

func TestCompositeContrastZero(t *testing.T) {
	o := NewOLED()
	scr := NewScreen()

	o.WriteCommand(0xaf) // display on
	o.WriteData(0xa5)
	scr.Decode(o)

	pixels := make([]uint32, Width*Height)
	scr.Composite(o, pixels)

	// at contrast zero a set bit maps to half-opacity grey and a clear bit
	// to black
	expected := [8]uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for y := 0; y < 8; y++ {
		if expected[y] == 1 {
			test.ExpectEquality(t, pixels[y*Width], uint32(0xff7f7f7f))
		} else {
			test.ExpectEquality(t, pixels[y*Width], uint32(0xff000000))
		}
	}

	// an untouched column is entirely black
	test.ExpectEquality(t, pixels[1], uint32(0xff000000))
}

func TestCompositeDisplayOff(t *testing.T) {
	o := NewOLED()
	scr := NewScreen()

	o.WriteData(0xff)
	scr.Decode(o)

	// with the display off the buffer is blanked, not cleared. whatever the
	// host is holding persists
	pixels := make([]uint32, Width*Height)
	for i := range pixels {
		pixels[i] = 0xdeadbeef
	}
	scr.Composite(o, pixels)
	for i := range pixels {
		if pixels[i] != 0xdeadbeef {
			t.Fatalf("pixel %d changed while display off", i)
		}
	}
}

func TestCompositeInversionAndMirroring(t *testing.T) {
	o := NewOLED()
	scr := NewScreen()

	o.WriteCommand(0xaf)

	// an asymmetric pattern
	for i := 0; i < Pages*Columns; i++ {
		o.WriteData(uint8(i * 7))
	}
	scr.Decode(o)

	plain := make([]uint32, Width*Height)
	scr.Composite(o, plain)

	o.WriteCommand(0xa7) // invert
	o.WriteCommand(0xa0) // horizontal mirror
	o.WriteCommand(0xc0) // vertical mirror
	mirrored := make([]uint32, Width*Height)
	scr.Composite(o, mirrored)

	// inverted+mirrored must equal the plain composite with both axes
	// reversed and foreground/background swapped
	swap := func(p uint32) uint32 {
		if p == 0xff000000 {
			return 0xff7f7f7f
		}
		return 0xff000000
	}

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			a := plain[(Height-1-y)*Width+(Width-1-x)]
			b := mirrored[y*Width+x]
			if b != swap(a) {
				t.Fatalf("mismatch at (%d,%d): %08x and %08x", x, y, b, a)
			}
		}
	}
}
