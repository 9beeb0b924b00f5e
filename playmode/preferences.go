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

package playmode

import (
	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/prefs"
	"github.com/ardugo/ardugo/resources"
)

const prefsFile = "ardugo.prefs"

type preferences struct {
	dsk *prefs.Disk

	// the window scale used for the previous session
	scale prefs.Int
}

// newPreferences is the preferred method of initialisation for the
// preferences type.
func newPreferences() (*preferences, error) {
	p := &preferences{}

	err := p.scale.Set(4)
	if err != nil {
		return nil, err
	}

	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("playmode.scale", &p.scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
