/*
 * read.go, part of goVTF.
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
	"io"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultRadius is the radius of atoms without a radius line.
const DefaultRadius = 0.5

var (
	radiusLine   = regexp.MustCompile(`^atom (\d+) radius ([\d.eE+-]+)`)
	positionLine = regexp.MustCompile(`^atom (\d+) position ([\d.eE+-]+) ([\d.eE+-]+) ([\d.eE+-]+)`)
)

// ReadStats counts the lines seen by a read.
type ReadStats struct {
	Lines     int //non-blank, non-comment lines
	Skipped   int //lines that were not recognized, or malformed radius/position lines
	Timesteps int
}

type parserState int

const (
	idle         parserState = iota //no positions since the last finalization
	accumulating                    //positions waiting for a delimiter or the end of input
)

type parser[T any] struct {
	build Builder[T]
	state parserState
	box   Box
	radii map[int]float64
	acc   map[int][3]float64
	steps [][]T
	stats ReadStats
}

func newParser[T any](b Builder[T]) *parser[T] {
	return &parser[T]{
		build: b,
		radii: make(map[int]float64),
		acc:   make(map[int][3]float64),
	}
}

// line processes the line number n.
func (P *parser[T]) line(n int, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	P.stats.Lines++
	if line == delimiter {
		return P.finalize()
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case boxKeyword:
		return P.boxLine(n, line, fields)
	case "atom":
		if m := radiusLine.FindStringSubmatch(line); m != nil {
			id, err1 := strconv.Atoi(m[1])
			r, err2 := strconv.ParseFloat(m[2], 64)
			if err1 == nil && err2 == nil {
				P.radii[id] = r
				return nil
			}
		} else if m := positionLine.FindStringSubmatch(line); m != nil {
			if id, pos, ok := parsePosition(m); ok {
				P.acc[id] = pos
				P.state = accumulating
				return nil
			}
		}
	}
	P.stats.Skipped++
	return nil
}

func (P *parser[T]) boxLine(n int, line string, fields []string) error {
	if len(fields) != 4 {
		return &ParseError{Line: n, Text: line, message: "box line needs 3 values", deco: []string{"boxLine"}}
	}
	var b Box
	for i, v := range fields[1:] {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &ParseError{Line: n, Text: line, message: "can't parse box value " + v, deco: []string{"boxLine"}}
		}
		b[i] = f
	}
	P.box = b
	return nil
}

func parsePosition(m []string) (int, [3]float64, bool) {
	var pos [3]float64
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, pos, false
	}
	for i := range pos {
		pos[i], err = strconv.ParseFloat(m[i+2], 64)
		if err != nil {
			return 0, pos, false
		}
	}
	return id, pos, true
}

// finalize turns the accumulated positions into a timestep, in ascending
// atom id order, and goes back to idle. It does nothing when idle.
func (P *parser[T]) finalize() error {
	if P.state != accumulating {
		return nil
	}
	ids := make([]int, 0, len(P.acc))
	for id := range P.acc {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	step := make([]T, 0, len(ids))
	for _, id := range ids {
		pos := P.acc[id]
		r, ok := P.radii[id]
		if !ok {
			r = DefaultRadius
		}
		p, err := P.build.Build(Particle{X: pos[0], Y: pos[1], Z: pos[2], Radius: r})
		if err != nil {
			return errDecorate(err, "finalize")
		}
		step = append(step, p)
	}
	P.steps = append(P.steps, step)
	P.stats.Timesteps++
	P.acc = make(map[int][3]float64)
	P.state = idle
	return nil
}

func parse[T any](data []byte, b Builder[T], filename string) ([][]T, Box, ReadStats, error) {
	if b == nil {
		b = Construct[T]()
	}
	P := newParser(b)
	for i, l := range strings.Split(string(data), "\n") {
		if err := P.line(i+1, l); err != nil {
			return nil, Box{}, P.stats, errFile(err, filename)
		}
	}
	if err := P.finalize(); err != nil {
		return nil, Box{}, P.stats, errFile(err, filename)
	}
	if P.stats.Skipped > 0 {
		name := filename
		if name == "" {
			name = "input"
		}
		log.Printf("vtf: %d unrecognized or malformed lines skipped in %s", P.stats.Skipped, name) //just a heads-up
	}
	return P.steps, P.box, P.stats, nil
}

// ReadWithStats reads a whole trajectory from r. It returns the timesteps,
// with particles built by b, the box, and counts of the lines read.
// A nil b means Construct[T](). The box is all zeros if the input has no box line.
// Unrecognized lines, and radius or position lines with the wrong shape, are
// skipped, not reported as errors. A box line with the wrong shape is a *ParseError.
func ReadWithStats[T any](r io.Reader, b Builder[T]) ([][]T, Box, ReadStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Box{}, ReadStats{}, err
	}
	steps, box, stats, err := parse(data, b, "")
	if err != nil {
		return nil, Box{}, stats, errDecorate(err, "ReadWithStats")
	}
	return steps, box, stats, nil
}

// Read reads a whole trajectory from r. See ReadWithStats.
func Read[T any](r io.Reader, b Builder[T]) ([][]T, Box, error) {
	steps, box, _, err := ReadWithStats(r, b)
	return steps, box, err
}

// ReadFile reads the trajectory in the file filename. See ReadWithStats.
func ReadFile[T any](filename string, b Builder[T]) ([][]T, Box, error) {
	data, err := readAll(filename)
	if err != nil {
		return nil, Box{}, err
	}
	steps, box, _, err := parse(data, b, filename)
	if err != nil {
		return nil, Box{}, errDecorate(err, "ReadFile")
	}
	return steps, box, nil
}
