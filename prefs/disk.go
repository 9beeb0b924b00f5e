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

// Package prefs facilitates the storage of preference values to disk.
//
// Preference values are registered with a Disk instance against a dotted
// key. Loading and saving transfers values between the registered prefs
// types and the file, one "key :: value" line per entry. Keys not registered
// with the instance are left in the file untouched, allowing several Disk
// instances to share one file.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ardugo/ardugo/curated"
)

// sentinel errors returned by the prefs package.
const (
	NoPrefsFile  = "no prefs file: %s"
	DuplicateKey = "duplicate prefs key: %s"
)

// the first line of a valid prefs file.
const banner = "*** ardugo prefs file ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// Disk represents preference values that are loaded from and saved to disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the path to the preferences file, prepared with
// resources.JoinPath().
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to disk registry against the supplied key.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: key contains the separator string: %s", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save registered prefs values to disk. Entries in the file that have not
// been registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load the file as it is on disk so that foreign entries survive
	keep, _ := dsk.readFile()

	for k, p := range dsk.entries {
		keep[k] = p.String()
	}

	// sorted keys so the file is stable between saves
	keys := make([]string, 0, len(keep))
	for k := range keep {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, banner)
	for _, k := range keys {
		fmt.Fprintf(f, "%s%s%s\n", k, keySep, keep[k])
	}

	return nil
}

// Load registered prefs values from disk. Entries in the file that have not
// been registered with this Disk instance are ignored.
func (dsk *Disk) Load() error {
	vals, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, v := range vals {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// readFile returns every entry in the prefs file, registered or not.
func (dsk *Disk) readFile() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		return vals, curated.Errorf(NoPrefsFile, dsk.path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check file banner
	if !scanner.Scan() || scanner.Text() != banner {
		return vals, curated.Errorf("prefs: not a prefs file: %s", dsk.path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			return vals, curated.Errorf("prefs: malformed entry in %s", dsk.path)
		}
		vals[s[0]] = s[1]
	}

	return vals, nil
}
