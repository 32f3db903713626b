/*
 * interfaces.go, part of goVTF.
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

import v3 "github.com/rmera/govtf/v3"

// Fielder is the capability the codec needs from a particle record that
// is not accessed through explicit functions: it returns the value of
// the field with the given name, and whether the field exists.
type Fielder interface {
	Field(name string) (any, bool)
}

// Vector3 is implemented by values that hold a whole position. Such a value
// can be decomposed into x, y and z when appending timesteps.
type Vector3 interface {
	Vec() [3]float64
}

// Traj is an interface for any trajectory object.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame into output, or discards it if output is nil.
	//it can also fill the (optional) box with the box vectors.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

//Errors

// Decorated is the interface for errors that all types in this package implement.
// The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Decorated interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Decorated
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError distinguishes the harmless end of a trajectory from other
// TrajError's in a type switch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing
}
