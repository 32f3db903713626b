/*
 * append.go, part of goVTF.
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
	"io"
	"os"
)

// Append writes the timesteps steps to w, without box line or radius block.
// The destination is assumed to already have them. Positions can also be
// read from a field "vector", or any other single value holding the 3
// coordinates, when no accessor is given for y and z.
// A nil O means DefaultOptions.
func Append[T any](w io.Writer, O *Options, steps ...[]T) error {
	O = orDefault(O)
	if len(steps) == 0 {
		return &Error{message: NoTimesteps, deco: []string{"Append"}, critical: true}
	}
	bw := bufio.NewWriter(w)
	for _, step := range steps {
		if err := writeStep(bw, step, O, true); err != nil {
			return errDecorate(err, "Append")
		}
	}
	return bw.Flush()
}

// AppendFile appends the timesteps to the existing file filename. See Append.
// The file is not created if it does not exist.
func AppendFile[T any](filename string, O *Options, steps ...[]T) (err error) {
	f, err := openWrite(filename, os.O_APPEND|os.O_WRONLY)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = Append(f, O, steps...); err != nil {
		return errFile(errDecorate(err, "AppendFile"), filename)
	}
	return nil
}
