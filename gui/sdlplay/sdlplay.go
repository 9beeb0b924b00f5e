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

// Package sdlplay is an SDL implementation of the gui.GUI interface. It
// presents the emulated display in a resizable window, scaled up from the
// native resolution by an integer factor.
package sdlplay

import (
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/gui"
	"github.com/ardugo/ardugo/hardware/oled"
	"github.com/ardugo/ardugo/performance/limiter"
	"github.com/ardugo/ardugo/version"
)

const pixelDepth = 4

// the display refreshes at a nominal rate of one frame every 16666
// microseconds
const framesPerSecond = 60

// SdlPlay is an SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects the SDL event queue with the parent process
	eventChannel chan gui.Event

	// limit screen updates to the refresh rate of the emulated display
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// staging buffer copied to the texture on every Render(). the texture is
	// the same size as the emulated display. scaling happens when the texture
	// is copied to the renderer
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(scale int, fpsCap bool) (*SdlPlay, error) {
	scr := &SdlPlay{fpsCap: fpsCap}

	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(oled.Width*scale), int32(oled.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer on every Render(). it is the same
	// size as the pixel array
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		oled.Width, oled.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, oled.Width*oled.Height*pixelDepth)

	scr.lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

// SetFPSCap turns the frame rate limiter on or off.
func (scr *SdlPlay) SetFPSCap(limit bool) {
	scr.fpsCap = limit
}

// Render implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Render(pixels []uint32) error {
	if len(pixels)*pixelDepth != len(scr.pixels) {
		return curated.Errorf("sdlplay: unexpected pixel buffer size: %d", len(pixels))
	}

	for i, px := range pixels {
		o := i * pixelDepth
		scr.pixels[o] = byte(px)
		scr.pixels[o+1] = byte(px >> 8)
		scr.pixels[o+2] = byte(px >> 16)
		scr.pixels[o+3] = byte(px >> 24)
	}

	err := scr.texture.Update(nil, scr.pixels, oled.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.texture != nil {
		err := scr.texture.Destroy()
		if err != nil {
			output.Write([]byte(err.Error()))
		}
	}

	if scr.renderer != nil {
		err := scr.renderer.Destroy()
		if err != nil {
			output.Write([]byte(err.Error()))
		}
	}

	if scr.window != nil {
		err := scr.window.Destroy()
		if err != nil {
			output.Write([]byte(err.Error()))
		}
	}

	sdl.Quit()
}
