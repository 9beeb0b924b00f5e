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

// Native resolution of the display.
const (
	Width  = 128
	Height = 64
)

// The controller divides the display into 8 pixel tall pages. each page is
// addressed as a row of single pixel wide columns, 8 vertical pixels packed
// into one byte.
const (
	Pages   = Height / 8
	Columns = Width
)

// bits of the flags register.
const (
	flagDisplayOn = 0x01 << iota
	flagInverted
	flagSegmentRemap
	flagCOMScanReversed
)

// commands that are followed by argument bytes, and how many. arguments
// arrive as further command bytes. commands not in this table and not
// otherwise handled are ignored
var commandArgs = map[uint8]int{
	cmdContrast: 1,
	0x20:        1, // memory addressing mode
	0x21:        2, // column address range
	0x22:        2, // page address range
	0x8d:        1, // charge pump
	0xa8:        1, // multiplex ratio
	0xd3:        1, // display offset
	0xd5:        1, // clock divide ratio
	0xd9:        1, // precharge period
	0xda:        1, // COM pins configuration
	0xdb:        1, // VCOM deselect level
}

const cmdContrast = 0x81

// OLED is the model of the SSD1306 display controller. The execution engine
// mutates the model as the firmware writes to the simulated bus; the rest of
// the emulation only ever reads from it (the dirty flag excepted).
type OLED struct {
	vram [Pages][Columns]uint8

	// the cursor is where the next data write will land
	page   int
	column int

	flags    uint8
	contrast uint8

	// set on every data write, cleared by the frame decoder
	dirty bool

	// number of argument bytes still expected by pendingCmd
	pendingArgs int
	pendingCmd  uint8

	onWrite func()
}

// NewOLED is the preferred method of initialisation for the OLED type.
func NewOLED() *OLED {
	return &OLED{}
}

// SetWriteObserver registers a hook that is called on every data write,
// before the incoming byte lands in display memory. There is only ever one
// observer.
func (o *OLED) SetWriteObserver(hook func()) {
	o.onWrite = hook
}

// WriteCommand processes a byte arriving with the data/instruction pin in
// the instruction state.
func (o *OLED) WriteCommand(data uint8) {
	// argument bytes for a previous command
	if o.pendingArgs > 0 {
		o.pendingArgs--
		if o.pendingCmd == cmdContrast {
			o.contrast = data
		}
		return
	}

	switch {
	case data <= 0x0f:
		// set lower nibble of column address
		o.column = (o.column & 0xf0) | int(data)

	case data >= 0x10 && data <= 0x1f:
		// set upper nibble of column address
		o.column = (o.column & 0x0f) | int(data&0x07)<<4

	case data >= 0xb0 && data <= 0xb7:
		o.page = int(data & 0x07)

	case data == 0xa0:
		// segment remap. note the polarity: the 0xa0 variant renders
		// mirrored, the 0xa1 variant (chosen by the Arduboy init sequence)
		// renders unmirrored
		o.flags |= flagSegmentRemap
	case data == 0xa1:
		o.flags &^= flagSegmentRemap

	case data == 0xc0:
		// COM scan direction. same polarity situation as segment remap: the
		// Arduboy init sequence selects 0xc8
		o.flags |= flagCOMScanReversed
	case data == 0xc8:
		o.flags &^= flagCOMScanReversed

	case data == 0xa6:
		o.flags &^= flagInverted
	case data == 0xa7:
		o.flags |= flagInverted

	case data == 0xae:
		o.flags &^= flagDisplayOn
	case data == 0xaf:
		o.flags |= flagDisplayOn

	default:
		if n, ok := commandArgs[data]; ok {
			o.pendingCmd = data
			o.pendingArgs = n
		}
	}
}

// WriteData processes a byte arriving with the data/instruction pin in the
// data state. The byte lands at the cursor and the cursor advances,
// wrapping from the end of one page to the start of the next and from the
// last page back to the display origin.
func (o *OLED) WriteData(data uint8) {
	if o.onWrite != nil {
		o.onWrite()
	}

	o.vram[o.page][o.column] = data
	o.dirty = true

	o.column++
	if o.column >= Columns {
		o.column = 0
		o.page++
		if o.page >= Pages {
			o.page = 0
		}
	}
}

// AtOrigin returns true if the cursor is at page 0, column 0.
func (o *OLED) AtOrigin() bool {
	return o.page == 0 && o.column == 0
}

// Cursor returns the page and column the next data write will land at.
func (o *OLED) Cursor() (int, int) {
	return o.page, o.column
}

// Dirty returns true if a data write has occurred since the last call to
// ClearDirty().
func (o *OLED) Dirty() bool {
	return o.dirty
}

// ClearDirty resets the dirty flag. Called by the frame decoder once a
// completed frame has been consumed.
func (o *OLED) ClearDirty() {
	o.dirty = false
}

// DisplayOn returns the state of the display-on flag.
func (o *OLED) DisplayOn() bool {
	return o.flags&flagDisplayOn == flagDisplayOn
}

// Inverted returns the state of the display-inverted flag.
func (o *OLED) Inverted() bool {
	return o.flags&flagInverted == flagInverted
}

// SegmentRemap returns the state of the segment-remap flag. A set flag means
// the display is mirrored horizontally.
func (o *OLED) SegmentRemap() bool {
	return o.flags&flagSegmentRemap == flagSegmentRemap
}

// COMScanReversed returns the state of the COM-scan-direction flag. A set
// flag means the display is mirrored vertically.
func (o *OLED) COMScanReversed() bool {
	return o.flags&flagCOMScanReversed == flagCOMScanReversed
}

// Contrast returns the value of the contrast register.
func (o *OLED) Contrast() uint8 {
	return o.contrast
}
