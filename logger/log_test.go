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

package logger_test

import (
	"strings"
	"testing"

	"github.com/ardugo/ardugo/logger"
	"github.com/ardugo/ardugo/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	// a repeated entry should not appear twice, it is folded into the
	// previous entry with a repeat count
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Log(logger.Allow, "test", "this is a test")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "this is a test (1)")
	logger.Log(logger.Allow, "test", "this is a test (2)")
	logger.Log(logger.Allow, "test", "this is a test (3)")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.ExpectEquality(t, s.String(), "test: this is a test (2)\ntest: this is a test (3)\n")

	// asking for more entries than exist is not an error
	s.Reset()
	logger.Tail(s, 100)
	test.ExpectEquality(t, s.String(), "test: this is a test (1)\ntest: this is a test (2)\ntest: this is a test (3)\n")
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()

	logger.Log(deny{}, "test", "this should not appear")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")
}
