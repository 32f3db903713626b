/*
 * box.go, part of goVTF.
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
	"reflect"
)

// Box holds the x, y and z extents of the periodic simulation box.
type Box [3]float64

// DefaultBox is used by Write when no box is given.
var DefaultBox = Box{10, 10, 10}

var boxFallback = [3][]string{
	{"x", "width", "lx", "a"},
	{"y", "height", "ly", "b"},
	{"z", "depth", "lz", "c"},
}

// ResolveBox normalizes spec into a Box. spec can be
// a numeric slice or array with at least 3 elements (extra elements
// are ignored), a function without arguments returning a Box, a [3]float64 or
// a []float64, or a record (see Fielder) exposing the extents as fields named
// x/width/lx/a, y/height/ly/b and z/depth/lz/c. A nil spec gives DefaultBox.
func ResolveBox(spec any) (Box, error) {
	if spec == nil {
		return DefaultBox, nil
	}
	if rv := reflect.ValueOf(spec); rv.Kind() == reflect.Func && rv.IsNil() {
		return Box{}, &Error{message: "nil box function", critical: true, deco: []string{"ResolveBox"}}
	}
	switch s := spec.(type) {
	case Fielder:
		return boxFromRecord(spec)
	case func() Box:
		return s(), nil
	case func() [3]float64:
		return Box(s()), nil
	case func() []float64:
		return boxFromFunc(s())
	case func() (Box, error):
		return s()
	case func() ([3]float64, error):
		b, err := s()
		return Box(b), err
	case func() ([]float64, error):
		b, err := s()
		if err != nil {
			return Box{}, err
		}
		return boxFromFunc(b)
	}
	if n, ok := numbers(spec); ok && len(n) >= 3 {
		return Box{n[0], n[1], n[2]}, nil
	}
	return boxFromRecord(spec)
}

func boxFromFunc(b []float64) (Box, error) {
	if len(b) < 3 {
		return Box{}, &Error{message: fmt.Sprintf("box function returned %d values, 3 needed", len(b)), critical: true, deco: []string{"ResolveBox"}}
	}
	return Box{b[0], b[1], b[2]}, nil
}

func boxFromRecord(rec any) (Box, error) {
	var ret Box
	for i, fallback := range boxFallback {
		v, err := resolveFloat(rec, Accessor{}, fallback)
		if err != nil {
			return Box{}, errDecorate(err, "ResolveBox")
		}
		ret[i] = v
	}
	return ret, nil
}
