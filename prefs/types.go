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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.EqualFold(v, "true"))
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value must be of type int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		p.value.Store(v)
	case string:
		nv, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("set: cannot convert %s to prefs.Int", v)
		}
		p.value.Store(nv)
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Float implements a float type in the prefs system.
type Float struct {
	value atomic.Value // float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%f", p.Get())
}

// Set new value to Float type. New value must be of type float64 or string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		p.value.Store(v)
	case string:
		nv, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %s to prefs.Float", v)
		}
		p.value.Store(nv)
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Float", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0.0
	}
	return ov.(float64)
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. The fmt.Stringer interface is used for
// anything other than a plain string value.
func (p *String) Set(v Value) error {
	switch v := v.(type) {
	case string:
		p.value.Store(v)
	case fmt.Stringer:
		p.value.Store(v.String())
	default:
		p.value.Store(fmt.Sprintf("%v", v))
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}
