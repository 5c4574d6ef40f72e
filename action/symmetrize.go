/*
 * symmetrize.go, part of gosketch.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package action

import (
	"math"

	chem "github.com/rmera/gosketch"
	"github.com/rmera/gosketch/chemgraph"
	"gonum.org/v1/gonum/spatial/r2"
)

//DefaultMergeTolerance is the distance under which a rotated copy of an
//atom is taken to be the same atom as one already in the graph.
const DefaultMergeTolerance = 1e-3

//Symmetrize makes a Fold-fold symmetric pattern out of the molecule that contains
//the pivot. The pivot is the atom Vertex or, if OnBond is true, the midpoint of Bond.
//The molecule is copied Fold-1 times, each copy rotated by a further 2π/Fold about the pivot.
//A copied atom that lands on an existing atom (within Tolerance) is merged into it,
//which is how the pivot atom is shared by all the copies.
type Symmetrize struct {
	Vertex    chem.VertexID
	Bond      chem.EdgeID
	OnBond    bool
	Fold      int
	Tolerance float64

	batch   Batch
	applied bool
}

//Added returns the atoms the symmetrization created.
func (A *Symmetrize) Added() []chem.VertexID {
	var ret []chem.VertexID
	for _, a := range A.batch.Actions {
		if v, ok := a.(*AddVertex); ok {
			ret = append(ret, v.ID())
		}
	}
	return ret
}

func (A *Symmetrize) pivot(g *chem.Graph) (r2.Vec, chem.VertexID, error) {
	if A.OnBond {
		e, ok := g.Edge(A.Bond)
		if !ok {
			return r2.Vec{}, -1, newError(chem.ErrInvalidReference, "Symmetrize", "bond %d doesn't exist", A.Bond)
		}
		p, _ := g.Midpoint(A.Bond)
		return p, e.V1, nil
	}
	v, ok := g.Vertex(A.Vertex)
	if !ok {
		return r2.Vec{}, -1, newError(chem.ErrInvalidReference, "Symmetrize", "atom %d doesn't exist", A.Vertex)
	}
	return v.Pos, v.ID, nil
}

func (A *Symmetrize) apply(g *chem.Graph) error {
	if A.applied {
		return A.batch.apply(g)
	}
	if A.Fold < 2 {
		return newError(chem.ErrInvalidValue, "Symmetrize", "fold must be at least 2, not %d", A.Fold)
	}
	tol := A.Tolerance
	if tol <= 0 {
		tol = DefaultMergeTolerance
	}
	pivot, anchor, err := A.pivot(g)
	if err != nil {
		return err
	}
	mol := chemgraph.Component(g, anchor)
	inmol := make(map[chem.VertexID]bool, len(mol))
	for _, v := range mol {
		inmol[v] = true
	}
	var bonds []chem.Edge
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		if inmol[e.V1] {
			bonds = append(bonds, e)
		}
	}
	A.batch = Batch{}
	for k := 1; k < A.Fold; k++ {
		angle := 2 * math.Pi * float64(k) / float64(A.Fold)
		image := make(map[chem.VertexID]chem.VertexID, len(mol))
		for _, id := range mol {
			v, _ := g.Vertex(id)
			v.Pos = chem.Rotate(v.Pos, pivot, angle)
			if twin, ok := closest(g, v.Pos, tol); ok {
				image[id] = twin
				continue
			}
			add := &AddVertex{Vertex: v}
			if err := A.batch.push(g, add); err != nil {
				A.batch.rollback(g)
				return err
			}
			image[id] = add.ID()
		}
		for _, e := range bonds {
			a, b := image[e.V1], image[e.V2]
			if a == b {
				continue
			}
			if _, ok := g.EdgeBetween(a, b); ok {
				continue
			}
			if err := A.batch.push(g, &AddBond{From: a, To: b, Type: e.Type, Stereo: e.Stereo}); err != nil {
				A.batch.rollback(g)
				return err
			}
		}
	}
	A.applied = true
	return nil
}

func (A *Symmetrize) rollback(g *chem.Graph) error {
	return A.batch.rollback(g)
}

//closest returns the atom of g nearest to p, if it is closer than tol.
func closest(g *chem.Graph, p r2.Vec, tol float64) (chem.VertexID, bool) {
	best, found := chem.VertexID(-1), false
	bestd := tol
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		if d := r2.Norm(r2.Sub(v.Pos, p)); d < bestd {
			best, bestd, found = id, d, true
		}
	}
	return best, found
}
