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

package firmware

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardugo/ardugo/curated"

	"github.com/marcinbor85/gohex"
)

// sentinel errors returned by the firmware package.
const (
	LoadError  = "firmware: %v"
	EmptyImage = "firmware: no data records in %s"
)

// value used to fill the gaps between data segments. AVR flash reads as 0xff
// when erased.
const eraseByte = 0xff

// Firmware is a flattened firmware image, read from an Intel HEX file, ready
// to be copied into the execution engine's flash memory.
type Firmware struct {
	// filename as specified when loading
	Filename string

	// the address the image must be loaded at. the initial program counter
	LoadAddress uint32

	// the flattened image. gaps between hex records are filled with the
	// flash erase value
	Data []byte

	// SHA1 hash of the flattened image
	Hash string
}

// NewFirmware is the preferred method of initialisation for the Firmware
// type. The file is read, parsed and flattened immediately.
func NewFirmware(filename string) (*Firmware, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(f); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return nil, curated.Errorf(EmptyImage, filename)
	}

	// find the extent of the image
	base := segments[0].Address
	end := base
	for _, s := range segments {
		if s.Address < base {
			base = s.Address
		}
		if e := s.Address + uint32(len(s.Data)); e > end {
			end = e
		}
	}

	fw := &Firmware{
		Filename:    filename,
		LoadAddress: base,
		Data:        make([]byte, end-base),
	}

	for i := range fw.Data {
		fw.Data[i] = eraseByte
	}
	for _, s := range segments {
		copy(fw.Data[s.Address-base:], s.Data)
	}

	fw.Hash = fmt.Sprintf("%x", sha1.Sum(fw.Data))

	return fw, nil
}

// ShortName returns a shortened version of the firmware filename, with the
// path and extension removed.
func (fw *Firmware) ShortName() string {
	sn := filepath.Base(fw.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

func (fw *Firmware) String() string {
	return fmt.Sprintf("%s (%d bytes at %#04x)", fw.ShortName(), len(fw.Data), fw.LoadAddress)
}
