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

package curated_test

import (
	"errors"
	"testing"

	"github.com/ardugo/ardugo/curated"
	"github.com/ardugo/ardugo/test"
)

const testPattern = "test: %s"

func TestIdentity(t *testing.T) {
	err := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, curated.IsAny(err), true)
	test.ExpectEquality(t, curated.Is(err, testPattern), true)
	test.ExpectEquality(t, curated.Is(err, "some other pattern"), false)

	// errors from the standard library are never curated
	plain := errors.New("plain")
	test.ExpectEquality(t, curated.IsAny(plain), false)
	test.ExpectEquality(t, curated.Is(plain, "plain"), false)
}

func TestChain(t *testing.T) {
	inner := curated.Errorf(testPattern, "foo")
	outer := curated.Errorf("outer: %v", inner)

	// Is() only matches the outermost pattern, Has() searches the chain
	test.ExpectEquality(t, curated.Is(outer, testPattern), false)
	test.ExpectEquality(t, curated.Has(outer, testPattern), true)
	test.ExpectEquality(t, curated.Has(outer, "outer: %v"), true)
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate parts are removed from the message
	inner := curated.Errorf("error: inner")
	outer := curated.Errorf("error: %v", inner)
	test.ExpectEquality(t, outer.Error(), "error: inner")
}

func TestNilError(t *testing.T) {
	test.ExpectEquality(t, curated.IsAny(nil), false)
	test.ExpectEquality(t, curated.Is(nil, testPattern), false)
	test.ExpectEquality(t, curated.Has(nil, testPattern), false)
}
