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

// packed colour values for the pixel buffer. alpha is always opaque
func rgb(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

var black = rgb(0, 0, 0)

// the screen is clearly visible even with the contrast register at zero
func contrastToOpacity(contrast uint8) float32 {
	return float32(contrast)/512.0 + 0.5
}

// Screen converts the bit-packed display memory of the OLED model into host
// pixels. The luminance map is the intermediate form: one single-bit value
// per physical pixel, unpacked from the page/column layout but not yet
// adjusted for orientation or colour.
type Screen struct {
	luma [Height][Width]uint8
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{}
}

// Decode rebuilds the luminance map from the OLED display memory. Each
// packed byte unpacks into 8 consecutive rows, least significant bit
// topmost. Decoding unchanged display memory twice yields an identical
// luminance map.
func (scr *Screen) Decode(o *OLED) {
	for p := 0; p < Pages; p++ {
		for c := 0; c < Columns; c++ {
			px := o.vram[p][c]
			for y := 0; y < 8; y++ {
				scr.luma[p*8+y][c] = px & 0x1
				px >>= 1
			}
		}
	}
}

// Composite builds the host pixel buffer from the luminance map and the
// orientation/polarity state of the OLED model. The buffer is row-major in
// display orientation order and must be at least Width*Height in length.
//
// If the display-on flag is clear the buffer is left entirely unchanged;
// the display is blanked, not cleared, and whatever frame the host last
// received persists.
func (scr *Screen) Composite(o *OLED, pixels []uint32) {
	if !o.DisplayOn() {
		return
	}

	if len(pixels) < Width*Height {
		return
	}

	// setup drawing colours
	opacity := contrastToOpacity(o.Contrast())
	grey := rgb(uint8(255*opacity), uint8(255*opacity), uint8(255*opacity))
	fg, bg := grey, black
	if o.Inverted() {
		fg, bg = bg, fg
	}

	// apply horizontal and vertical display mirroring
	origX, stepX := 0, 1
	if o.SegmentRemap() {
		origX, stepX = Width-1, -1
	}
	origY, stepY := 0, 1
	if o.COMScanReversed() {
		origY, stepY = Height-1, -1
	}

	i := 0
	for y := origY; y >= 0 && y < Height; y += stepY {
		for x := origX; x >= 0 && x < Width; x += stepX {
			if scr.luma[y][x] != 0 {
				pixels[i] = fg
			} else {
				pixels[i] = bg
			}
			i++
		}
	}
}
