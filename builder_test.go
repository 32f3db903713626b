/*
 * builder_test.go, part of goVTF.
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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type bead struct {
	X, Y, Z float64
	Radius  float32
	Name    string
}

type taggedBead struct {
	Pos    [3]float64
	PX     float64 `vtf:"x"`
	PY     float64 `vtf:"y"`
	PZ     float64 `vtf:"z"`
	Size   float64 `vtf:"radius"`
	hidden float64
}

const oneAtom = "pbc 1 1 1\natom 1 radius 0.25\ntimestep\natom 1 position 1 2 3\n"

func TestConstruct(Te *testing.T) {
	steps, _, err := Read(strings.NewReader(oneAtom), Construct[bead]())
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([][]bead{{{X: 1, Y: 2, Z: 3, Radius: 0.25}}}, steps); diff != "" {
		Te.Errorf("wrong beads (-want +got):\n%s", diff)
	}
	//nil builders construct directly too, and pointers work.
	psteps, _, err := Read[*bead](strings.NewReader(oneAtom), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if psteps[0][0].Z != 3 {
		Te.Errorf("wrong bead %+v", psteps[0][0])
	}
	tsteps, _, err := Read(strings.NewReader(oneAtom), Construct[taggedBead]())
	if err != nil {
		Te.Fatal(err)
	}
	if got := tsteps[0][0]; got.PX != 1 || got.PY != 2 || got.PZ != 3 || got.Size != 0.25 {
		Te.Errorf("wrong tagged bead %+v", got)
	}
}

func TestConstructErrors(Te *testing.T) {
	type flat struct{ X, Y, Z float64 }
	var verr *Error
	if _, _, err := Read(strings.NewReader(oneAtom), Construct[flat]()); !errors.As(err, &verr) {
		Te.Errorf("expected an Error for a struct without radius, got %v", err)
	}
	if _, _, err := Read(strings.NewReader(oneAtom), Construct[float64]()); !errors.As(err, &verr) {
		Te.Errorf("expected an Error for a non-struct, got %v", err)
	}
}

func TestBuilderFunc(Te *testing.T) {
	custom := errors.New("refused")
	fail := BuilderFunc[vecParticle](func(p Particle) (vecParticle, error) {
		if p.Radius > 0.2 {
			return vecParticle{}, custom
		}
		return vecParticle{vector: []float64{p.X, p.Y, p.Z}, r: p.Radius}, nil
	})
	if _, _, err := Read[vecParticle](strings.NewReader(oneAtom), fail); err != custom {
		Te.Errorf("the builder error should be returned unchanged, got %v", err)
	}
	steps, _, err := Read[vecParticle](strings.NewReader(strings.Replace(oneAtom, "0.25", "0.125", 1)), fail)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, steps[0][0].vector); diff != "" {
		Te.Errorf("wrong vector (-want +got):\n%s", diff)
	}
}
