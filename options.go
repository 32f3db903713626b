/*
 * options.go, part of goVTF.
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

import "strconv"

// Options contains the accessors used to extract values from particle records when
// writing or appending, and the formatting of the numbers written.
type Options struct {
	x      Accessor
	y      Accessor
	z      Accessor
	radius Accessor
	prec   int //decimal places for written numbers, or -1 for the shortest exact form.
}

// DefaultOptions returns options with all accessors unspecified, so fallback
// field names are used, and numbers written in the shortest form that reads
// back to the same value.
func DefaultOptions() *Options {
	r := new(Options)
	r.prec = -1
	return r
}

func orDefault(O *Options) *Options {
	if O == nil {
		return DefaultOptions()
	}
	return O
}

// X returns the accessor for the x coordinate, and sets it to a new value, if given.
func (O *Options) X(acc ...Accessor) Accessor {
	if len(acc) > 0 {
		O.x = acc[0]
	}
	return O.x
}

// Y returns the accessor for the y coordinate, and sets it to a new value, if given.
func (O *Options) Y(acc ...Accessor) Accessor {
	if len(acc) > 0 {
		O.y = acc[0]
	}
	return O.y
}

// Z returns the accessor for the z coordinate, and sets it to a new value, if given.
func (O *Options) Z(acc ...Accessor) Accessor {
	if len(acc) > 0 {
		O.z = acc[0]
	}
	return O.z
}

// Radius returns the accessor for the radius, and sets it to a new value, if given.
// It is ignored by Append.
func (O *Options) Radius(acc ...Accessor) Accessor {
	if len(acc) > 0 {
		O.radius = acc[0]
	}
	return O.radius
}

// Precision returns the number of decimal places used for written numbers,
// and sets it to a new value, if given.
// A negative value means the shortest representation that reads back exactly.
func (O *Options) Precision(p ...int) int {
	if len(p) > 0 {
		O.prec = p[0]
		if O.prec < 0 {
			O.prec = -1
		}
	}
	return O.prec
}

func (O *Options) format(f float64) string {
	if O.prec < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', O.prec, 64)
}
