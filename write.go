/*
 * write.go, part of goVTF.
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
	"io"
)

const (
	boxKeyword = "pbc"
	delimiter  = "timestep"
)

// Write writes the timesteps steps to w, preceded by the box line and the
// radius block. box is resolved with ResolveBox. The radii are taken from the
// first timestep only: atoms that appear only in later timesteps get
// no radius line. A single timestep can be given alone.
// A nil O means DefaultOptions.
func Write[T any](w io.Writer, box any, O *Options, steps ...[]T) error {
	O = orDefault(O)
	if len(steps) == 0 {
		return &Error{message: NoTimesteps, deco: []string{"Write"}, critical: true}
	}
	b, err := ResolveBox(box)
	if err != nil {
		return errDecorate(err, "Write")
	}
	radii := make([]float64, len(steps[0]))
	for i, p := range steps[0] {
		radii[i], err = resolveFloat(p, O.radius, radiusFallback)
		if err != nil {
			return errDecorate(err, "Write")
		}
	}
	bw := bufio.NewWriter(w)
	writeHeader(bw, b, radii, O)
	for _, step := range steps {
		if err := writeStep(bw, step, O, false); err != nil {
			return errDecorate(err, "Write")
		}
	}
	return bw.Flush()
}

// WriteFile writes the timesteps to the file filename, which is created, or
// truncated if it exists. See Write.
func WriteFile[T any](filename string, box any, O *Options, steps ...[]T) (err error) {
	f, err := create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = Write(f, box, O, steps...); err != nil {
		return errFile(errDecorate(err, "WriteFile"), filename)
	}
	return nil
}

// writeHeader writes the box line and one radius line per atom, each followed
// by a blank line.
func writeHeader(w *bufio.Writer, b Box, radii []float64, O *Options) {
	fmt.Fprintf(w, "%s %s %s %s\n\n", boxKeyword, O.format(b[0]), O.format(b[1]), O.format(b[2]))
	for i, r := range radii {
		fmt.Fprintf(w, "atom %d radius %s\n", i+1, O.format(r))
	}
	w.WriteString("\n")
}

func writePosition(w *bufio.Writer, id int, x, y, z float64, O *Options) {
	fmt.Fprintf(w, "atom %d position %s %s %s\n", id, O.format(x), O.format(y), O.format(z))
}

// writeStep writes the delimiter, one position line per particle of step and a blank line.
func writeStep[T any](w *bufio.Writer, step []T, O *Options, decompose bool) error {
	w.WriteString(delimiter + "\n")
	for i, p := range step {
		x, y, z, err := resolvePosition(p, O, decompose)
		if err != nil {
			return err
		}
		writePosition(w, i+1, x, y, z, O)
	}
	w.WriteString("\n")
	return nil
}
