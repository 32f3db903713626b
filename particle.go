/*
 * particle.go, part of goVTF.
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

// Particle is the set of values the format stores for one atom in one timestep.
// It is what a Builder receives when reading, and it can be written back
// directly, as it implements Fielder.
type Particle struct {
	X, Y, Z float64
	Radius  float64
}

// Field returns the value of the field "x", "y", "z" or "radius".
func (p Particle) Field(name string) (any, bool) {
	switch name {
	case "x":
		return p.X, true
	case "y":
		return p.Y, true
	case "z":
		return p.Z, true
	case "radius":
		return p.Radius, true
	}
	return nil, false
}

// Vec returns the position of the particle.
func (p Particle) Vec() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// Record is a particle record in map form.
type Record map[string]any

func (r Record) Field(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// lookup returns the field name of the record rec, if rec exposes fields.
func lookup(rec any, name string) (any, bool) {
	switch r := rec.(type) {
	case Fielder:
		return r.Field(name)
	case map[string]any:
		v, ok := r[name]
		return v, ok
	case map[string]float64:
		v, ok := r[name]
		return v, ok
	}
	return nil, false
}
