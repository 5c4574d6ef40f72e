/*
 * actions.go, part of gosketch.
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
	chem "github.com/rmera/gosketch"
	"gonum.org/v1/gonum/spatial/r2"
)

//Action is one undoable edit of the graph. The set of actions is closed: only the
//types in this package implement it. An action is meant to be committed once; after
//that it belongs to the engine's history, which replays it on undo and redo.
//The exported fields describe the edit, the unexported ones hold what the action
//needs to reverse it.
type Action interface {
	action()
}

//AddVertex adds an atom.
type AddVertex struct {
	Vertex chem.Vertex

	id      chem.VertexID
	pos     int
	last    chem.Vertex
	applied bool
}

//ID returns the id the atom got. Only meaningful after the action was committed.
func (A *AddVertex) ID() chem.VertexID { return A.id }

func (A *AddVertex) apply(g *chem.Graph) error {
	if !A.applied {
		A.id = g.AddVertex(A.Vertex)
		A.pos = g.Index(A.id)
		A.applied = true
		return nil
	}
	return g.InsertVertex(A.last, A.pos)
}

func (A *AddVertex) rollback(g *chem.Graph) error {
	if g.Degree(A.id) > 0 {
		return newError(ErrInconsistent, "AddVertex", "atom %d has bonds", A.id)
	}
	r, err := g.RemoveVertex(A.id)
	if err != nil {
		return err
	}
	A.last = r.Vertices[0].Vertex
	return nil
}

//AddBond bonds two existing atoms.
type AddBond struct {
	From, To chem.VertexID
	Type     chem.BondType
	Stereo   chem.StereoType

	id      chem.EdgeID
	pos     int
	last    chem.Edge
	applied bool
}

//ID returns the id the bond got. Only meaningful after the action was committed.
func (A *AddBond) ID() chem.EdgeID { return A.id }

func (A *AddBond) apply(g *chem.Graph) error {
	if A.applied {
		return g.InsertEdge(A.last, A.pos)
	}
	if !A.Stereo.Valid() {
		return newError(chem.ErrInvalidValue, "AddBond", "stereo code %d", int(A.Stereo))
	}
	id, err := g.AddEdge(A.From, A.To, A.Type)
	if err != nil {
		return err
	}
	if err := g.SetStereo(id, A.Stereo); err != nil {
		return err //can't happen, the stereo code was checked.
	}
	A.id = id
	A.pos = g.NumEdges() - 1
	A.applied = true
	return nil
}

func (A *AddBond) rollback(g *chem.Graph) error {
	r, err := g.RemoveEdge(A.id)
	if err != nil {
		return err
	}
	A.last = r.Edges[0].Edge
	return nil
}

//AddChain adds a new atom bonded to an existing one. It is what the
//editor does when a bond is dragged from an atom to an empty spot.
type AddChain struct {
	From   chem.VertexID
	Vertex chem.Vertex
	Type   chem.BondType

	vertex AddVertex
	bond   AddBond
}

//ID returns the id of the new atom.
func (A *AddChain) ID() chem.VertexID { return A.vertex.id }

//BondID returns the id of the new bond.
func (A *AddChain) BondID() chem.EdgeID { return A.bond.id }

func (A *AddChain) apply(g *chem.Graph) error {
	if A.vertex.applied {
		if err := A.vertex.apply(g); err != nil {
			return err
		}
		if err := A.bond.apply(g); err != nil {
			A.vertex.rollback(g)
			return err
		}
		return nil
	}
	if !g.HasVertex(A.From) {
		return newError(chem.ErrInvalidReference, "AddChain", "atom %d doesn't exist", A.From)
	}
	if !A.Type.Valid() {
		return newError(chem.ErrInvalidValue, "AddChain", "bond type %d", int(A.Type))
	}
	A.vertex = AddVertex{Vertex: A.Vertex}
	A.vertex.apply(g)
	A.bond = AddBond{From: A.From, To: A.vertex.id, Type: A.Type}
	if err := A.bond.apply(g); err != nil {
		A.vertex.rollback(g)
		A.vertex = AddVertex{}
		return err
	}
	return nil
}

func (A *AddChain) rollback(g *chem.Graph) error {
	if err := A.bond.rollback(g); err != nil {
		return err
	}
	return A.vertex.rollback(g)
}

//MoveVertices puts atoms in new positions. Successive moves of the same
//atoms with the same non-zero Gesture are merged into one history entry, so
//a drag is undone in one step.
type MoveVertices struct {
	IDs     []chem.VertexID
	To      []r2.Vec
	Gesture int64

	from []r2.Vec
}

//NewMove returns the action that displaces the atoms by delta from where they are now.
func NewMove(g *chem.Graph, ids []chem.VertexID, delta r2.Vec, gesture int64) (*MoveVertices, error) {
	to := make([]r2.Vec, len(ids))
	for i, id := range ids {
		v, ok := g.Vertex(id)
		if !ok {
			return nil, newError(chem.ErrInvalidReference, "NewMove", "atom %d doesn't exist", id)
		}
		to[i] = r2.Add(v.Pos, delta)
	}
	return &MoveVertices{IDs: ids, To: to, Gesture: gesture}, nil
}

func (A *MoveVertices) apply(g *chem.Graph) error {
	if len(A.IDs) != len(A.To) {
		return newError(chem.ErrInvalidValue, "MoveVertices", "%d atoms but %d positions", len(A.IDs), len(A.To))
	}
	from, err := positions(g, A.IDs)
	if err != nil {
		return chem.ErrDecorate(err, "MoveVertices")
	}
	A.from = from
	setPositions(g, A.IDs, A.To)
	return nil
}

func (A *MoveVertices) rollback(g *chem.Graph) error {
	if _, err := positions(g, A.IDs); err != nil {
		return err
	}
	//in reverse, so atoms listed twice end up where they started.
	for i := len(A.IDs) - 1; i >= 0; i-- {
		g.SetPosition(A.IDs[i], A.from[i])
	}
	return nil
}

func (A *MoveVertices) update(next *MoveVertices) bool {
	if A.Gesture == 0 || next.Gesture != A.Gesture || !sameIDs(A.IDs, next.IDs) {
		return false
	}
	A.To = append([]r2.Vec(nil), next.To...)
	return true
}

//RotateVertices rotates atoms about a pivot. A nil IDs rotates the whole graph.
//Like MoveVertices, rotations with the same non-zero Gesture, atoms and pivot merge.
type RotateVertices struct {
	IDs     []chem.VertexID
	Pivot   r2.Vec
	Angle   float64
	Gesture int64

	ids      []chem.VertexID
	from, to []r2.Vec
	applied  bool
}

func (A *RotateVertices) apply(g *chem.Graph) error {
	if !A.applied {
		A.ids = A.IDs
		if A.ids == nil {
			A.ids = g.Vertices()
		}
	}
	from, err := positions(g, A.ids)
	if err != nil {
		return chem.ErrDecorate(err, "RotateVertices")
	}
	A.from = from
	if !A.applied {
		A.to = make([]r2.Vec, len(from))
		for i, p := range from {
			A.to[i] = chem.Rotate(p, A.Pivot, A.Angle)
		}
		A.applied = true
	}
	setPositions(g, A.ids, A.to)
	return nil
}

func (A *RotateVertices) rollback(g *chem.Graph) error {
	if _, err := positions(g, A.ids); err != nil {
		return err
	}
	for i := len(A.ids) - 1; i >= 0; i-- {
		g.SetPosition(A.ids[i], A.from[i])
	}
	return nil
}

func (A *RotateVertices) update(next *RotateVertices) bool {
	if A.Gesture == 0 || next.Gesture != A.Gesture || A.Pivot != next.Pivot || !sameIDs(A.ids, next.ids) {
		return false
	}
	A.Angle += next.Angle
	A.to = append([]r2.Vec(nil), next.to...)
	return true
}

func positions(g *chem.Graph, ids []chem.VertexID) ([]r2.Vec, error) {
	ret := make([]r2.Vec, len(ids))
	for i, id := range ids {
		v, ok := g.Vertex(id)
		if !ok {
			return nil, newError(chem.ErrInvalidReference, "positions", "atom %d doesn't exist", id)
		}
		ret[i] = v.Pos
	}
	return ret, nil
}

//setPositions assumes all the atoms exist.
func setPositions(g *chem.Graph, ids []chem.VertexID, to []r2.Vec) {
	for i, id := range ids {
		g.SetPosition(id, to[i])
	}
}

func sameIDs(a, b []chem.VertexID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//SetElement changes the element of an atom. The empty string means carbon.
type SetElement struct {
	ID      chem.VertexID
	Element string

	old string
}

func (A *SetElement) apply(g *chem.Graph) error {
	if A.Element != "" && !chem.IsElement(A.Element) {
		return newError(chem.ErrUnknownElement, "SetElement", "%q", A.Element)
	}
	v, ok := g.Vertex(A.ID)
	if !ok {
		return newError(chem.ErrInvalidReference, "SetElement", "atom %d doesn't exist", A.ID)
	}
	A.old = v.Element
	return g.SetElement(A.ID, A.Element)
}

func (A *SetElement) rollback(g *chem.Graph) error {
	return g.SetElement(A.ID, A.old)
}

//SetCharge changes the formal charge of an atom.
type SetCharge struct {
	ID     chem.VertexID
	Charge int

	old int
}

func (A *SetCharge) apply(g *chem.Graph) error {
	v, ok := g.Vertex(A.ID)
	if !ok {
		return newError(chem.ErrInvalidReference, "SetCharge", "atom %d doesn't exist", A.ID)
	}
	A.old = v.Charge
	return g.SetCharge(A.ID, A.Charge)
}

func (A *SetCharge) rollback(g *chem.Graph) error {
	return g.SetCharge(A.ID, A.old)
}

//SetHCount sets or clears (with nil) the explicit hydrogen count of an atom.
type SetHCount struct {
	ID     chem.VertexID
	HCount *int

	old *int
}

func (A *SetHCount) apply(g *chem.Graph) error {
	v, ok := g.Vertex(A.ID)
	if !ok {
		return newError(chem.ErrInvalidReference, "SetHCount", "atom %d doesn't exist", A.ID)
	}
	A.old = v.HCount
	return g.SetHCount(A.ID, A.HCount)
}

func (A *SetHCount) rollback(g *chem.Graph) error {
	return g.SetHCount(A.ID, A.old)
}

//SetIsotope sets or clears (with nil) the mass number of an atom.
type SetIsotope struct {
	ID      chem.VertexID
	Isotope *int

	old *int
}

func (A *SetIsotope) apply(g *chem.Graph) error {
	v, ok := g.Vertex(A.ID)
	if !ok {
		return newError(chem.ErrInvalidReference, "SetIsotope", "atom %d doesn't exist", A.ID)
	}
	A.old = v.Isotope
	return g.SetIsotope(A.ID, A.Isotope)
}

func (A *SetIsotope) rollback(g *chem.Graph) error {
	return g.SetIsotope(A.ID, A.old)
}

//SetBondType changes the type of a bond.
type SetBondType struct {
	Edge chem.EdgeID
	Type chem.BondType

	old chem.BondType
}

//CycleBond returns the action the editor issues when an existing bond is clicked:
//single becomes double, double becomes triple and anything else becomes single.
func CycleBond(g *chem.Graph, id chem.EdgeID) (*SetBondType, error) {
	e, ok := g.Edge(id)
	if !ok {
		return nil, newError(chem.ErrInvalidReference, "CycleBond", "bond %d doesn't exist", id)
	}
	next := chem.Single
	switch e.Type {
	case chem.Single:
		next = chem.Double
	case chem.Double:
		next = chem.Triple
	}
	return &SetBondType{Edge: id, Type: next}, nil
}

func (A *SetBondType) apply(g *chem.Graph) error {
	e, ok := g.Edge(A.Edge)
	if !ok {
		return newError(chem.ErrInvalidReference, "SetBondType", "bond %d doesn't exist", A.Edge)
	}
	A.old = e.Type
	return g.SetBondType(A.Edge, A.Type)
}

func (A *SetBondType) rollback(g *chem.Graph) error {
	return g.SetBondType(A.Edge, A.old)
}

//SetStereo changes the stereo code of a bond.
type SetStereo struct {
	Edge   chem.EdgeID
	Stereo chem.StereoType

	old chem.StereoType
}

func (A *SetStereo) apply(g *chem.Graph) error {
	e, ok := g.Edge(A.Edge)
	if !ok {
		return newError(chem.ErrInvalidReference, "SetStereo", "bond %d doesn't exist", A.Edge)
	}
	A.old = e.Stereo
	return g.SetStereo(A.Edge, A.Stereo)
}

func (A *SetStereo) rollback(g *chem.Graph) error {
	return g.SetStereo(A.Edge, A.old)
}

//DeleteSubgraph removes bonds and atoms (with all their bonds). This is
//what the eraser and the "delete selection" command do.
type DeleteSubgraph struct {
	Vertices []chem.VertexID
	Edges    []chem.EdgeID

	removals []*chem.Removal
}

func (A *DeleteSubgraph) apply(g *chem.Graph) error {
	seenV := make(map[chem.VertexID]bool, len(A.Vertices))
	vs := make([]chem.VertexID, 0, len(A.Vertices))
	for _, v := range A.Vertices {
		if !g.HasVertex(v) {
			return newError(chem.ErrInvalidReference, "DeleteSubgraph", "atom %d doesn't exist", v)
		}
		if !seenV[v] {
			seenV[v] = true
			vs = append(vs, v)
		}
	}
	seenE := make(map[chem.EdgeID]bool, len(A.Edges))
	es := make([]chem.EdgeID, 0, len(A.Edges))
	for _, e := range A.Edges {
		if _, ok := g.Edge(e); !ok {
			return newError(chem.ErrInvalidReference, "DeleteSubgraph", "bond %d doesn't exist", e)
		}
		if !seenE[e] {
			seenE[e] = true
			es = append(es, e)
		}
	}
	//Nothing below can fail.
	A.removals = A.removals[:0]
	for _, e := range es {
		r, _ := g.RemoveEdge(e)
		A.removals = append(A.removals, r)
	}
	for _, v := range vs {
		r, _ := g.RemoveVertex(v)
		A.removals = append(A.removals, r)
	}
	return nil
}

func (A *DeleteSubgraph) rollback(g *chem.Graph) error {
	for i := len(A.removals) - 1; i >= 0; i-- {
		if err := g.Restore(A.removals[i]); err != nil {
			return err
		}
	}
	return nil
}

//Batch applies several actions as one history entry. If one of them
//fails, the ones already applied are rolled back.
type Batch struct {
	Actions []Action
}

func (A *Batch) apply(g *chem.Graph) error {
	for i, a := range A.Actions {
		if err := apply(g, a); err != nil {
			for j := i - 1; j >= 0; j-- {
				rollback(g, A.Actions[j])
			}
			return err
		}
	}
	return nil
}

func (A *Batch) rollback(g *chem.Graph) error {
	for i := len(A.Actions) - 1; i >= 0; i-- {
		if err := rollback(g, A.Actions[i]); err != nil {
			return err
		}
	}
	return nil
}

//push applies a and, if that works, appends it to the batch.
func (A *Batch) push(g *chem.Graph, a Action) error {
	if err := apply(g, a); err != nil {
		return err
	}
	A.Actions = append(A.Actions, a)
	return nil
}

func (*AddVertex) action()      {}
func (*AddBond) action()        {}
func (*AddChain) action()       {}
func (*MoveVertices) action()   {}
func (*RotateVertices) action() {}
func (*SetElement) action()     {}
func (*SetCharge) action()      {}
func (*SetHCount) action()      {}
func (*SetIsotope) action()     {}
func (*SetBondType) action()    {}
func (*SetStereo) action()      {}
func (*DeleteSubgraph) action() {}
func (*Symmetrize) action()     {}
func (*Batch) action()          {}
