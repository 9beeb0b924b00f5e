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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/hardware"
	"github.com/ardugo/ardugo/hardware/avr"
	"github.com/ardugo/ardugo/hardware/oled"
	"github.com/ardugo/ardugo/performance/limiter"
)

// the nominal frame rate of the emulated machine.
const framesPerSecond = 60

// Check the performance of the emulation using the supplied firmware image.
//
// The emulation runs headless for the specified duration. CPU and memory
// profiles are written if the profile argument is true.
func Check(output io.Writer, profile bool, filename string, uncapped bool, duration string) error {
	engine, err := avr.Make(hardware.MCU)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ab, err := hardware.NewArduboy(engine, filename, hardware.ClockFreq)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer ab.Teardown()

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lmtr *limiter.FpsLimiter
	if !uncapped {
		lmtr, err = limiter.NewFPSLimiter(framesPerSecond)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	pixels := make([]uint32, oled.Width*oled.Height)
	numFrames := 0

	// run for specified period of time
	err = cpuProfile(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed. signals
		// false to indicate that the leadtime has concluded and measurement
		// should start; true when the measurement period has finished
		timerChan := make(chan bool)

		// force a two second leadtime to allow the frame rate to settle down
		// and then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		for {
			select {
			case v := <-timerChan:
				if v {
					return nil
				}
				numFrames = 0
			default:
			}

			if !ab.Step(pixels) {
				return curated.Errorf("performance: firmware stopped before measurement ended")
			}
			numFrames++

			if lmtr != nil {
				lmtr.Wait()
			}
		}
	})
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
