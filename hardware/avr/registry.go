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

package avr

import (
	"sync"

	"github.com/ardugo/ardugo/curated"
)

// sentinel errors returned by the avr package.
const (
	NoEngine = "avr: no engine registered for MCU: %s"
)

var registry = struct {
	crit    sync.Mutex
	engines map[string]func() (Engine, error)
}{
	engines: make(map[string]func() (Engine, error)),
}

// Register an engine constructor against an MCU name. Engine implementations
// call this from their init() function, in the manner of database/sql
// drivers. A second registration for the same MCU replaces the first.
func Register(mcu string, create func() (Engine, error)) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	registry.engines[mcu] = create
}

// Make constructs the engine registered for the named MCU.
func Make(mcu string) (Engine, error) {
	registry.crit.Lock()
	create, ok := registry.engines[mcu]
	registry.crit.Unlock()

	if !ok {
		return nil, curated.Errorf(NoEngine, mcu)
	}

	return create()
}
