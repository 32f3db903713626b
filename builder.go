/*
 * builder.go, part of goVTF.
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
	"strings"
)

// Builder constructs the particle records returned by Read from the
// values stored in the file.
type Builder[T any] interface {
	Build(p Particle) (T, error)
}

// BuilderFunc is a factory function usable as a Builder.
type BuilderFunc[T any] func(p Particle) (T, error)

func (f BuilderFunc[T]) Build(p Particle) (T, error) {
	return f(p)
}

// Particles is the Builder for Particle records.
var Particles Builder[Particle] = BuilderFunc[Particle](func(p Particle) (Particle, error) { return p, nil })

var builderFields = [4]string{"x", "y", "z", "radius"}

type constructor[T any] struct {
	t      reflect.Type
	ptr    bool
	fields [4]int //index of the struct field receiving x, y, z and radius.
	err    error
}

// Construct returns a Builder that fills a struct type T, or pointer to struct,
// directly. T must have float32 or float64 exported fields named X, Y, Z and Radius
// (case is ignored) or tagged `vtf:"x"`, `vtf:"y"`, `vtf:"z"` and `vtf:"radius"`.
// If T is not such a type, every Build call fails.
func Construct[T any]() Builder[T] {
	c := &constructor[T]{fields: [4]int{-1, -1, -1, -1}}
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Pointer {
		c.ptr = true
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		c.err = &Error{message: fmt.Sprintf("can't construct %T: not a struct", zero), critical: true, deco: []string{"Construct"}}
		return c
	}
	c.t = t
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := strings.ToLower(sf.Name)
		if tag, ok := sf.Tag.Lookup("vtf"); ok {
			name = tag
		}
		k := sf.Type.Kind()
		if k != reflect.Float64 && k != reflect.Float32 {
			continue
		}
		for j, want := range builderFields {
			if name == want && c.fields[j] < 0 {
				c.fields[j] = i
			}
		}
	}
	for j, idx := range c.fields {
		if idx < 0 {
			c.err = &Error{message: fmt.Sprintf("can't construct %s: no float field for %q", t, builderFields[j]), critical: true, deco: []string{"Construct"}}
			break
		}
	}
	return c
}

func (c *constructor[T]) Build(p Particle) (T, error) {
	var ret T
	if c.err != nil {
		return ret, c.err
	}
	v := reflect.New(c.t).Elem()
	vals := [4]float64{p.X, p.Y, p.Z, p.Radius}
	for j, idx := range c.fields {
		v.Field(idx).SetFloat(vals[j])
	}
	if c.ptr {
		return v.Addr().Interface().(T), nil
	}
	return v.Interface().(T), nil
}
