/*
 * accessor.go, part of goVTF.
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

	v3 "github.com/rmera/govtf/v3"
)

// Fallback field names, in the order they are tried.
var (
	radiusFallback = []string{"radius", "r", "size"}

	writeFallback = [3][]string{
		{"x", "pos_x"},
		{"y", "pos_y"},
		{"z", "pos_z"},
	}

	appendFallback = [3][]string{
		{"x", "pos_x", "vector"},
		{"y", "pos_y", "vector"},
		{"z", "pos_z", "vector"},
	}
)

// AccessorFunc extracts a value from a particle record.
type AccessorFunc func(record any) (any, error)

// Accessor tells the codec how to obtain one value from a particle record:
// by calling a function (Func), by reading a named field (Field), or, for
// the zero Accessor, by trying a list of fallback field names.
type Accessor struct {
	fn   AccessorFunc
	name string
}

// Func returns an Accessor that calls f on each record.
func Func(f AccessorFunc) Accessor {
	return Accessor{fn: f}
}

// Field returns an Accessor that reads the field name of each record.
func Field(name string) Accessor {
	return Accessor{name: name}
}

// Unspecified returns true if A is the zero Accessor.
func (A Accessor) Unspecified() bool {
	return A.fn == nil && A.name == ""
}

func (A Accessor) String() string {
	switch {
	case A.fn != nil:
		return "func"
	case A.name != "":
		return "field " + A.name
	}
	return "unspecified"
}

// Resolve obtains a value from record. If acc is a function accessor, the function
// is called and its result, including any error, is returned unchanged. If it is a
// field accessor, the field is looked up. Otherwise, each name in fallback is tried,
// in order, and the first one present in record is returned. If no value is found,
// the error is an *AttributeError listing the names tried.
func Resolve(record any, acc Accessor, fallback []string) (any, error) {
	if acc.fn != nil {
		return acc.fn(record)
	}
	if acc.name != "" {
		if v, ok := lookup(record, acc.name); ok {
			return v, nil
		}
		return nil, &AttributeError{Record: record, Tried: []string{acc.name}}
	}
	for _, name := range fallback {
		if v, ok := lookup(record, name); ok {
			return v, nil
		}
	}
	return nil, &AttributeError{Record: record, Tried: append([]string(nil), fallback...)}
}

// Float converts a resolved scalar to float64. All Go integer and
// floating point kinds are accepted.
func Float(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("value %v of type %T is not a number", v, v)
}

// resolveFloat resolves a value and converts it to float64.
func resolveFloat(record any, acc Accessor, fallback []string) (float64, error) {
	v, err := Resolve(record, acc, fallback)
	if err != nil {
		return 0, err
	}
	return toFloat(record, acc, fallback, v)
}

func toFloat(record any, acc Accessor, fallback []string, v any) (float64, error) {
	f, err := Float(v)
	if err != nil {
		tried := fallback
		if acc.name != "" {
			tried = []string{acc.name}
		}
		return 0, &AttributeError{Record: record, Tried: append([]string(nil), tried...), message: err.Error()}
	}
	return f, nil
}

// resolvePosition obtains the x, y and z coordinates of record using the accessors
// in O. If decompose is true, a combined vector value is split as described in
// decomposition.
func resolvePosition(record any, O *Options, decompose bool) (x, y, z float64, err error) {
	fallback := writeFallback
	if decompose {
		fallback = appendFallback
	}
	xv, err := Resolve(record, O.x, fallback[0])
	if err != nil {
		return 0, 0, 0, err
	}
	if decompose {
		if vec, ok := decomposition(xv, O); ok {
			return vec[0], vec[1], vec[2], nil
		}
	}
	if x, err = toFloat(record, O.x, fallback[0], xv); err != nil {
		return 0, 0, 0, err
	}
	if y, err = resolveFloat(record, O.y, fallback[1]); err != nil {
		return 0, 0, 0, err
	}
	if z, err = resolveFloat(record, O.z, fallback[2]); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

// decomposition returns the components of xv, taken positionally as x, y and z.
// It applies only when the caller gave no accessor for y or z, and xv is
// a 3-element numeric sequence.
func decomposition(xv any, O *Options) ([3]float64, bool) {
	if !O.y.Unspecified() || !O.z.Unspecified() {
		return [3]float64{}, false
	}
	return vector(xv)
}

// vector returns the 3 components of v, if v is a 3-element numeric sequence.
func vector(v any) ([3]float64, bool) {
	var ret [3]float64
	switch t := v.(type) {
	case *v3.Matrix:
		if t != nil && t.NVecs() == 1 {
			return t.Vec(0), true
		}
		return ret, false
	case Vector3:
		return t.Vec(), true
	}
	n, ok := numbers(v)
	if !ok || len(n) != 3 {
		return ret, false
	}
	copy(ret[:], n)
	return ret, true
}

// numbers returns the elements of v as float64, if v is a slice or array
// whose elements all convert with Float.
func numbers(v any) ([]float64, bool) {
	switch t := v.(type) {
	case []float64:
		return t, true
	case Box:
		return t[:], true
	case [3]float64:
		return t[:], true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	ret := make([]float64, rv.Len())
	for i := range ret {
		f, err := Float(rv.Index(i).Interface())
		if err != nil {
			return nil, false
		}
		ret[i] = f
	}
	return ret, true
}
