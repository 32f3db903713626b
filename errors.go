/*
 * errors.go, part of goVTF.
 *
 * Copyright 2026 The goVTF authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package vtf

import (
	"fmt"
	"strings"
)

const (
	NoTimesteps    = "No timesteps given"
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	NilCoordinates = "Given nil coordinates"
	WrongAtomCount = "Wrong number of atoms"
)

// Error is the general structure for VTF errors. It fulfills Decorated and TrajError.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.filename == "" {
		return "vtf error: " + err.message
	}
	return fmt.Sprintf("vtf file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing operation was associated
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file (always "vtf") associated to the error
func (err *Error) Format() string { return "vtf" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// AttributeError is returned when no accessor or fallback name produced a value
// from a particle record, or when the value produced is not usable.
type AttributeError struct {
	Record  any
	Tried   []string //the field names tried, in order.
	message string
	deco    []string
}

func (err *AttributeError) Error() string {
	if err.message != "" {
		return fmt.Sprintf("vtf: %s (fields tried: %s)", err.message, strings.Join(err.Tried, ", "))
	}
	return fmt.Sprintf("vtf: none of [%s] found in %#v", strings.Join(err.Tried, " "), err.Record)
}

func (err *AttributeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ParseError is returned when a structurally required line
// (the box line) does not have the expected shape.
type ParseError struct {
	Line     int //1-based line number
	Text     string
	message  string
	filename string
	deco     []string
}

func (err *ParseError) Error() string {
	name := err.filename
	if name == "" {
		name = "input"
	}
	return fmt.Sprintf("vtf: %s line %d: %s: %q", name, err.Line, err.message, err.Text)
}

func (err *ParseError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ParseError) FileName() string { return err.filename }

func (err *ParseError) Format() string { return "vtf" }

func (err *ParseError) Critical() bool { return true }

// lastFrameError implements LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "vtf" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}

var (
	_ TrajError      = (*Error)(nil)
	_ TrajError      = (*ParseError)(nil)
	_ Decorated      = (*AttributeError)(nil)
	_ LastFrameError = (*lastFrameError)(nil)
)

// errDecorate decorates err with the caller's name if err is one of the
// errors of this package, and returns it. Other errors (IO errors, errors
// from user-supplied functions) are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Decorated); ok {
		err2.Decorate(caller)
	}
	return err
}

// errFile sets the file name of err, if err is one of the errors of
// this package that carry one and has none yet.
func errFile(err error, filename string) error {
	switch e := err.(type) {
	case *Error:
		if e.filename == "" {
			e.filename = filename
		}
	case *ParseError:
		if e.filename == "" {
			e.filename = filename
		}
	}
	return err
}
