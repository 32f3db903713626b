/*
 * vtf_test.go, part of goVTF.
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
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// sphere exposes its fields by name, as a simulation's own particle type would.
type sphere struct {
	x, y, z, radius float64
}

func (s *sphere) Field(name string) (any, bool) {
	switch name {
	case "x":
		return s.x, true
	case "y":
		return s.y, true
	case "z":
		return s.z, true
	case "radius":
		return s.radius, true
	}
	return nil, false
}

// vecParticle only has a combined position and a short radius name.
type vecParticle struct {
	vector []float64
	r      float64
}

func (v vecParticle) Field(name string) (any, bool) {
	switch name {
	case "vector":
		return v.vector, true
	case "r":
		return v.r, true
	}
	return nil, false
}

const twoParticles = `pbc 10 10 10

atom 1 radius 0.5
atom 2 radius 0.2

timestep
atom 1 position 1 2 3
atom 2 position 4 5 6

`

func twoSpheres() []*sphere {
	return []*sphere{{1, 2, 3, 0.5}, {4, 5, 6, 0.2}}
}

func TestWriteEndToEnd(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "two.vtf")
	if err := WriteFile(name, Box{10, 10, 10}, nil, twoSpheres()); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(twoParticles, string(b)); diff != "" {
		Te.Errorf("wrong file content (-want +got):\n%s", diff)
	}
	steps, box, err := ReadFile(name, Particles)
	if err != nil {
		Te.Fatal(err)
	}
	want := [][]Particle{{{1, 2, 3, 0.5}, {4, 5, 6, 0.2}}}
	if diff := cmp.Diff(want, steps); diff != "" {
		Te.Errorf("wrong timesteps (-want +got):\n%s", diff)
	}
	if box != (Box{10, 10, 10}) {
		Te.Errorf("wrong box %v", box)
	}
}

func TestWriteFileReplacesLongerFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "old.vtf")
	if err := os.WriteFile(name, []byte(strings.Repeat("# old content\n", 100)), 0o644); err != nil {
		Te.Fatal(err)
	}
	if err := WriteFile(name, Box{10, 10, 10}, nil, twoSpheres()); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(twoParticles, string(b)); diff != "" {
		Te.Errorf("old content left in the file (-want +got):\n%s", diff)
	}
}

func TestAppendInheritsRadii(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "two.vtf")
	if err := WriteFile(name, []float64{10, 10, 10}, nil, twoSpheres()); err != nil {
		Te.Fatal(err)
	}
	//the appended records have no radius at all.
	moved := []vecParticle{{[]float64{1.5, 2, 3}, 9}, {[]float64{4, 5.5, 6}, 9}}
	if err := AppendFile(name, nil, moved); err != nil {
		Te.Fatal(err)
	}
	steps, _, err := ReadFile(name, Particles)
	if err != nil {
		Te.Fatal(err)
	}
	want := [][]Particle{
		{{1, 2, 3, 0.5}, {4, 5, 6, 0.2}},
		{{1.5, 2, 3, 0.5}, {4, 5.5, 6, 0.2}},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		Te.Errorf("wrong timesteps (-want +got):\n%s", diff)
	}
}

func TestAppendMissingFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "nothere.vtf")
	err := AppendFile(name, nil, twoSpheres())
	if !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("expected a not-exist error, got %v", err)
	}
	if _, err := os.Stat(name); err == nil {
		Te.Error("AppendFile should not create the file")
	}
}

func TestRoundTrip(Te *testing.T) {
	first := []Particle{{0.1, 0.2, 0.3, 1.25}, {-4, 5e-7, 6e10, 0.75}, {1. / 3, 2. / 3, 1, 0.1}}
	second := []Particle{{0.15, 0.25, 0.35, 1}, {-4.5, 5, 6, 1}, {1, 2, 3, 1}, {7, 8, 9, 1}}
	var buf bytes.Buffer
	if err := Write(&buf, Box{3, 4.5, 6}, nil, first, second); err != nil {
		Te.Fatal(err)
	}
	steps, box, err := Read(&buf, Particles)
	if err != nil {
		Te.Fatal(err)
	}
	if box != (Box{3, 4.5, 6}) {
		Te.Errorf("wrong box %v", box)
	}
	//radii always come from the first timestep, atom 4 only gets the default.
	want := [][]Particle{
		first,
		{{0.15, 0.25, 0.35, 1.25}, {-4.5, 5, 6, 0.75}, {1, 2, 3, 0.1}, {7, 8, 9, DefaultRadius}},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		Te.Errorf("wrong timesteps (-want +got):\n%s", diff)
	}
}

func TestWriteAccessors(Te *testing.T) {
	particles := []vecParticle{{[]float64{1, 2, 3}, 0.5}, {[]float64{4, 5, 6}, 0.2}}
	O := DefaultOptions()
	O.X(Func(func(p any) (any, error) { return p.(vecParticle).vector[0], nil }))
	O.Y(Func(func(p any) (any, error) { return p.(vecParticle).vector[1], nil }))
	O.Z(Func(func(p any) (any, error) { return p.(vecParticle).vector[2], nil }))
	O.Radius(Field("r"))
	var buf bytes.Buffer
	if err := Write(&buf, func() [3]float64 { return [3]float64{10, 10, 10} }, O, particles); err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(twoParticles, buf.String()); diff != "" {
		Te.Errorf("wrong content (-want +got):\n%s", diff)
	}
	//The writer does not decompose vectors.
	if err := Write(new(discard), nil, nil, particles); err == nil {
		Te.Error("expected an error writing vector-only particles without accessors")
	}
}

func TestWritePrecision(Te *testing.T) {
	O := DefaultOptions()
	O.Precision(3)
	var buf bytes.Buffer
	if err := Write(&buf, Box{10, 10, 10}, O, []Particle{{1. / 3, 2, 3, 0.5}}); err != nil {
		Te.Fatal(err)
	}
	want := "pbc 10.000 10.000 10.000\n\natom 1 radius 0.500\n\ntimestep\natom 1 position 0.333 2.000 3.000\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		Te.Errorf("wrong content (-want +got):\n%s", diff)
	}
	steps, _, err := Read(&buf, Particles)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([][]Particle{{{1. / 3, 2, 3, 0.5}}}, steps, cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		Te.Errorf("wrong timesteps (-want +got):\n%s", diff)
	}
}

func TestNoTimesteps(Te *testing.T) {
	var verr *Error
	if err := Write[Particle](new(discard), nil, nil); !errors.As(err, &verr) {
		Te.Errorf("expected an Error writing nothing, got %v", err)
	}
	if err := Append[Particle](new(discard), nil); !errors.As(err, &verr) {
		Te.Errorf("expected an Error appending nothing, got %v", err)
	}
}
