/*
 * traj.go, part of goVTF.
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
	"bufio"
	"fmt"

	v3 "github.com/rmera/govtf/v3"
	"gonum.org/v1/gonum/mat"
)

//Read!

// VtfR is a VTF trajectory opened for reading, frame by frame.
// The whole file is parsed when the object is created.
type VtfR struct {
	filename string
	frames   [][]Particle
	box      Box
	current  int
	readable bool
}

var _ Traj = (*VtfR)(nil)

// New opens the VTF trajectory filename for reading.
func New(filename string) (*VtfR, error) {
	frames, box, err := ReadFile(filename, Particles)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	V := &VtfR{filename: filename, frames: frames, box: box, readable: true}
	return V, nil
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (V *VtfR) Readable() bool {
	return V.readable
}

// Len returns the number of atoms in the first frame of the trajectory.
func (V *VtfR) Len() int {
	if len(V.frames) == 0 {
		return 0
	}
	return len(V.frames[0])
}

// Frames returns the number of frames in the trajectory.
func (V *VtfR) Frames() int {
	return len(V.frames)
}

// Box returns the box extents of the trajectory.
func (V *VtfR) Box() Box {
	return V.box
}

// Radii returns the radii of the atoms of the first frame.
func (V *VtfR) Radii() []float64 {
	if len(V.frames) == 0 {
		return nil
	}
	r := make([]float64, len(V.frames[0]))
	for i, p := range V.frames[0] {
		r[i] = p.Radius
	}
	return r
}

// Next puts in output the coordinates for the next frame of the trajectory
// and, if given, puts in box the box vectors (the box is orthorhombic, so
// only the diagonal is non-zero). If output is nil, the frame is skipped.
// After the last frame, the error returned satisfies LastFrameError, and
// the object is closed.
func (V *VtfR) Next(output *v3.Matrix, box ...[]float64) error {
	if !V.readable {
		return &Error{TrajUnIniRead, V.filename, []string{"Next"}, true}
	}
	if V.current >= len(V.frames) {
		V.Close()
		return newlastFrameError(V.filename, "Next")
	}
	frame := V.frames[V.current]
	V.current++
	if len(box) > 0 && len(box[0]) >= 9 {
		for i := range box[0][:9] {
			box[0][i] = 0
		}
		box[0][0], box[0][4], box[0][8] = V.box[0], V.box[1], V.box[2]
	}
	if output == nil {
		return nil
	}
	if output.NVecs() != len(frame) {
		return &Error{fmt.Sprintf("%s: %d atoms in frame %d, but the matrix holds %d", WrongAtomCount, len(frame), V.current-1, output.NVecs()), V.filename, []string{"Next"}, true}
	}
	for i, p := range frame {
		output.SetVec(i, p.Vec())
	}
	return nil
}

// Close marks the object as unreadable and releases the frames.
func (V *VtfR) Close() {
	V.readable = false
	V.frames = nil
}

//Write!

// VtfW is a VTF trajectory opened for writing, frame by frame.
type VtfW struct {
	f         *fileWriter
	h         *bufio.Writer
	natoms    int
	filename  string
	writeable bool
	o         *Options
}

// NewWriter creates the file filename and writes to it the box line and one
// radius line for each element of radii. The number of atoms per frame is len(radii).
// Only the precision of the options, if given, is used.
func NewWriter(filename string, radii []float64, box Box, o ...*Options) (*VtfW, error) {
	W := &VtfW{filename: filename, natoms: len(radii), o: DefaultOptions()}
	if len(o) > 0 && o[0] != nil {
		W.o = o[0]
	}
	var err error
	W.f, err = create(filename)
	if err != nil {
		return nil, err
	}
	W.h = bufio.NewWriter(W.f)
	writeHeader(W.h, box, radii, W.o)
	W.writeable = true
	return W, nil
}

// Len returns the number of atoms per frame.
func (W *VtfW) Len() int {
	return W.natoms
}

// WNext writes coord as the next timestep.
func (W *VtfW) WNext(coord *v3.Matrix) error {
	if !W.writeable {
		return &Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return &Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	if v := coord.NVecs(); v != W.natoms {
		return &Error{fmt.Sprintf("%s: %d coordinates given, but %d expected", WrongAtomCount, v, W.natoms), W.filename, []string{"WNext"}, true}
	}
	W.h.WriteString(delimiter + "\n")
	for i := 0; i < W.natoms; i++ {
		writePosition(W.h, i+1, coord.At(i, 0), coord.At(i, 1), coord.At(i, 2), W.o)
	}
	_, err := W.h.WriteString("\n")
	return err
}

// WNextDense writes the gonum matrix dcoord, with one row per atom, as the next timestep.
func (W *VtfW) WNextDense(dcoord *mat.Dense) error {
	if dcoord == nil {
		return &Error{NilCoordinates, W.filename, []string{"WNextDense"}, true}
	}
	if _, c := dcoord.Dims(); c != 3 {
		return &Error{fmt.Sprintf("%d columns given, 3 expected", c), W.filename, []string{"WNextDense"}, true}
	}
	err := W.WNext(v3.Dense2Matrix(dcoord))
	if err != nil {
		err = errDecorate(err, "WNextDense")
	}
	return err
}

// Close flushes and closes the file. The object can't be written after this call.
func (W *VtfW) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.h.Flush()
	if cerr := W.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Coords returns the positions of the particles of step as a matrix, one row per
// particle. The positions are obtained as Append does.
func Coords[T any](step []T, O *Options) (*v3.Matrix, error) {
	O = orDefault(O)
	if len(step) == 0 {
		return nil, &Error{message: "empty timestep", deco: []string{"Coords"}, critical: true}
	}
	c := v3.Zeros(len(step))
	for i, p := range step {
		x, y, z, err := resolvePosition(p, O, true)
		if err != nil {
			return nil, errDecorate(err, "Coords")
		}
		c.SetVec(i, [3]float64{x, y, z})
	}
	return c, nil
}
