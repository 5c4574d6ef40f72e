/*
 * graph.go, part of gosketch.
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

package chem

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

/**Note: As in the rest of the library, accessors that take a position (VertexAt, EdgeAt)
 * panic when the position is out of range, since that can only be a bug in the calling code.
 * Everything that takes an identifier returns an error instead, as identifiers come from
 * the user's (possibly stale) selection.**/

//VertexID identifies an atom for the lifetime of the graph. Ids are never
//handed out twice by AddVertex, so a removed atom's id is not aliased by a new one.
type VertexID int64

//Vertex is an atom. An empty Element means carbon.
type Vertex struct {
	ID      VertexID
	Pos     r2.Vec
	Element string
	Charge  int
	HCount  *int //nil means "infer from the valence"
	Isotope *int //mass number, nil means natural abundance
}

//Symbol returns the element symbol of the atom, "C" if the element was not set.
func (V Vertex) Symbol() string {
	if V.Element == "" {
		return "C"
	}
	return V.Element
}

//Copy returns a deep copy of the vertex.
func (V Vertex) Copy() Vertex {
	r := V
	if V.HCount != nil {
		r.HCount = IntPtr(*V.HCount)
	}
	if V.Isotope != nil {
		r.Isotope = IntPtr(*V.Isotope)
	}
	return r
}

//Equal compares two vertices field by field, including the id.
func (V Vertex) Equal(o Vertex) bool {
	return V.ID == o.ID && V.Pos == o.Pos && V.Element == o.Element && V.Charge == o.Charge &&
		eqIntPtr(V.HCount, o.HCount) && eqIntPtr(V.Isotope, o.Isotope)
}

//IntPtr returns a pointer to a copy of i. Handy for the optional fields of Vertex.
func IntPtr(i int) *int {
	return &i
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type vslot struct {
	v    Vertex
	live bool
}

type eslot struct {
	e    Edge
	live bool
}

//Graph is a molecular graph. Vertices and edges live in arenas indexed by
//their ids, and separate order slices keep the insertion order, which is the
//atom and bond numbering used when the graph is written to a file.
//A Graph is not safe for concurrent use.
type Graph struct {
	vertices []vslot
	edges    []eslot
	vorder   []VertexID
	eorder   []EdgeID
	//caches, rebuilt on demand after any change in topology or order.
	adj    map[VertexID][]EdgeID
	vindex map[VertexID]int
}

//NewGraph returns an empty graph.
func NewGraph() *Graph {
	return new(Graph)
}

func (G *Graph) invalidate() {
	G.adj = nil
	G.vindex = nil
}

func (G *Graph) live(id VertexID) bool {
	return id >= 0 && int(id) < len(G.vertices) && G.vertices[id].live
}

func (G *Graph) liveEdge(id EdgeID) bool {
	return id >= 0 && int(id) < len(G.edges) && G.edges[id].live
}

//Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.vorder)
}

//NumEdges returns the number of bonds in the graph.
func (G *Graph) NumEdges() int {
	return len(G.eorder)
}

//AddVertex appends a copy of v to the graph and returns the fresh id assigned to it.
//The ID field of v is ignored.
func (G *Graph) AddVertex(v Vertex) VertexID {
	id := VertexID(len(G.vertices))
	v = v.Copy()
	v.ID = id
	G.vertices = append(G.vertices, vslot{v: v, live: true})
	G.vorder = append(G.vorder, id)
	G.invalidate()
	return id
}

//InsertVertex puts v back in the graph with its own ID, at the given position of the
//insertion order. It is meant to replay an addition that was undone, so the id must not
//be in use.
func (G *Graph) InsertVertex(v Vertex, pos int) error {
	if v.ID < 0 || G.live(v.ID) {
		return newError(ErrInvalidReference, "InsertVertex", "vertex id %d is not free", v.ID)
	}
	if pos < 0 || pos > len(G.vorder) {
		return newError(ErrInvalidReference, "InsertVertex", "position %d out of range (%d atoms)", pos, len(G.vorder))
	}
	G.putVertex(v.Copy(), pos)
	return nil
}

func (G *Graph) putVertex(v Vertex, pos int) {
	for int(v.ID) >= len(G.vertices) {
		G.vertices = append(G.vertices, vslot{})
	}
	G.vertices[v.ID] = vslot{v: v, live: true}
	G.vorder = append(G.vorder, 0)
	copy(G.vorder[pos+1:], G.vorder[pos:])
	G.vorder[pos] = v.ID
	G.invalidate()
}

//AddEdge adds a bond of type bt between v1 and v2 and returns its id.
//It fails with ErrInvalidReference if either atom doesn't exist, and with
//ErrDuplicateEdge if the two atoms are already bonded. Changes of bond order
//are done with SetBondType instead.
func (G *Graph) AddEdge(v1, v2 VertexID, bt BondType) (EdgeID, error) {
	e := Edge{ID: EdgeID(len(G.edges)), V1: v1, V2: v2, Type: bt}
	if err := G.checkEdge(e, "AddEdge"); err != nil {
		return -1, err
	}
	G.edges = append(G.edges, eslot{e: e, live: true})
	G.eorder = append(G.eorder, e.ID)
	G.invalidate()
	return e.ID, nil
}

//InsertEdge puts e back in the graph with its own ID, at the given position of the
//bond order. The counterpart of InsertVertex.
func (G *Graph) InsertEdge(e Edge, pos int) error {
	if e.ID < 0 || G.liveEdge(e.ID) {
		return newError(ErrInvalidReference, "InsertEdge", "edge id %d is not free", e.ID)
	}
	if pos < 0 || pos > len(G.eorder) {
		return newError(ErrInvalidReference, "InsertEdge", "position %d out of range (%d bonds)", pos, len(G.eorder))
	}
	if err := G.checkEdge(e, "InsertEdge"); err != nil {
		return err
	}
	G.putEdge(e, pos)
	return nil
}

func (G *Graph) putEdge(e Edge, pos int) {
	for int(e.ID) >= len(G.edges) {
		G.edges = append(G.edges, eslot{})
	}
	G.edges[e.ID] = eslot{e: e, live: true}
	G.eorder = append(G.eorder, 0)
	copy(G.eorder[pos+1:], G.eorder[pos:])
	G.eorder[pos] = e.ID
	G.invalidate()
}

func (G *Graph) checkEdge(e Edge, caller string) error {
	if !G.live(e.V1) || !G.live(e.V2) {
		return newError(ErrInvalidReference, caller, "bond %d-%d references a missing atom", e.V1, e.V2)
	}
	if e.V1 == e.V2 {
		return newError(ErrSelfLoop, caller, "atom %d", e.V1)
	}
	if !e.Type.Valid() {
		return newError(ErrInvalidValue, caller, "bond type %d", int(e.Type))
	}
	if !e.Stereo.Valid() {
		return newError(ErrInvalidValue, caller, "stereo code %d", int(e.Stereo))
	}
	if _, ok := G.EdgeBetween(e.V1, e.V2); ok {
		return newError(ErrDuplicateEdge, caller, "atoms %d and %d are already bonded", e.V1, e.V2)
	}
	return nil
}

//PlacedVertex is a vertex together with its position in the insertion order.
type PlacedVertex struct {
	Vertex Vertex
	Pos    int
}

//PlacedEdge is an edge together with its position in the bond order.
type PlacedEdge struct {
	Edge Edge
	Pos  int
}

//Removal holds everything a single removal took out of the graph, so it
//can be put back with Restore. Positions refer to the orders as they were
//right before the removal, and the slices are sorted by position.
type Removal struct {
	Vertices []PlacedVertex
	Edges    []PlacedEdge
}

//RemoveVertex removes the atom and, in cascade, all the bonds touching it.
//The graph keeps no log of the removal, the returned Removal is the only record of it.
func (G *Graph) RemoveVertex(id VertexID) (*Removal, error) {
	if !G.live(id) {
		return nil, newError(ErrInvalidReference, "RemoveVertex", "atom %d doesn't exist", id)
	}
	r := new(Removal)
	for pos, eid := range G.eorder {
		e := G.edges[eid].e
		if e.Has(id) {
			r.Edges = append(r.Edges, PlacedEdge{Edge: e, Pos: pos})
		}
	}
	r.Vertices = []PlacedVertex{{Vertex: G.vertices[id].v.Copy(), Pos: G.Index(id)}}
	for i := len(r.Edges) - 1; i >= 0; i-- {
		G.dropEdge(r.Edges[i].Edge.ID, r.Edges[i].Pos)
	}
	G.dropVertex(id, r.Vertices[0].Pos)
	return r, nil
}

//RemoveEdge removes the bond.
func (G *Graph) RemoveEdge(id EdgeID) (*Removal, error) {
	if !G.liveEdge(id) {
		return nil, newError(ErrInvalidReference, "RemoveEdge", "bond %d doesn't exist", id)
	}
	pos := -1
	for i, v := range G.eorder {
		if v == id {
			pos = i
			break
		}
	}
	r := &Removal{Edges: []PlacedEdge{{Edge: G.edges[id].e, Pos: pos}}}
	G.dropEdge(id, pos)
	return r, nil
}

func (G *Graph) dropEdge(id EdgeID, pos int) {
	G.edges[id].live = false
	G.eorder = append(G.eorder[:pos], G.eorder[pos+1:]...)
	G.invalidate()
}

func (G *Graph) dropVertex(id VertexID, pos int) {
	G.vertices[id].live = false
	G.vorder = append(G.vorder[:pos], G.vorder[pos+1:]...)
	G.invalidate()
}

//Restore puts back what a removal took out, with the same ids and in the same
//positions, provided that the graph is in the state it was right after the removal.
//Either everything is restored, or nothing is and an error is returned.
func (G *Graph) Restore(r *Removal) error {
	if r == nil {
		return nil
	}
	//We check everything before touching the graph.
	nv, ne := len(G.vorder), len(G.eorder)
	back := make(map[VertexID]bool, len(r.Vertices))
	for i, p := range r.Vertices {
		if G.live(p.Vertex.ID) || back[p.Vertex.ID] {
			return newError(ErrInvalidReference, "Restore", "atom id %d is in use", p.Vertex.ID)
		}
		if p.Pos < 0 || p.Pos > nv+i || (i > 0 && p.Pos < r.Vertices[i-1].Pos) {
			return newError(ErrInvalidReference, "Restore", "atom position %d out of range", p.Pos)
		}
		back[p.Vertex.ID] = true
	}
	pairs := make(map[[2]VertexID]bool, len(r.Edges))
	for i, p := range r.Edges {
		e := p.Edge
		if G.liveEdge(e.ID) {
			return newError(ErrInvalidReference, "Restore", "bond id %d is in use", e.ID)
		}
		if p.Pos < 0 || p.Pos > ne+i || (i > 0 && p.Pos < r.Edges[i-1].Pos) {
			return newError(ErrInvalidReference, "Restore", "bond position %d out of range", p.Pos)
		}
		if !(G.live(e.V1) || back[e.V1]) || !(G.live(e.V2) || back[e.V2]) {
			return newError(ErrInvalidReference, "Restore", "bond %d references a missing atom", e.ID)
		}
		key := [2]VertexID{e.V1, e.V2}
		if e.V1 > e.V2 {
			key = [2]VertexID{e.V2, e.V1}
		}
		if _, ok := G.EdgeBetween(e.V1, e.V2); ok || pairs[key] {
			return newError(ErrDuplicateEdge, "Restore", "atoms %d and %d are already bonded", e.V1, e.V2)
		}
		pairs[key] = true
	}
	for _, p := range r.Vertices {
		G.putVertex(p.Vertex.Copy(), p.Pos)
	}
	for _, p := range r.Edges {
		G.putEdge(p.Edge, p.Pos)
	}
	return nil
}

//Queries

//HasVertex returns true if there is an atom with the given id.
func (G *Graph) HasVertex(id VertexID) bool {
	return G.live(id)
}

//Vertex returns a copy of the atom with the given id. Changes to the copy
//do not affect the graph.
func (G *Graph) Vertex(id VertexID) (Vertex, bool) {
	if !G.live(id) {
		return Vertex{}, false
	}
	return G.vertices[id].v.Copy(), true
}

//VertexAt returns a copy of the atom in the position i of the insertion order.
//Panics if out of range.
func (G *Graph) VertexAt(i int) Vertex {
	if i < 0 || i >= len(G.vorder) {
		panic("Graph: Requested Vertex out of bounds")
	}
	return G.vertices[G.vorder[i]].v.Copy()
}

//Edge returns a copy of the bond with the given id.
func (G *Graph) Edge(id EdgeID) (Edge, bool) {
	if !G.liveEdge(id) {
		return Edge{}, false
	}
	return G.edges[id].e, true
}

//EdgeAt returns the bond in the position i of the bond order. Panics if out of range.
func (G *Graph) EdgeAt(i int) Edge {
	if i < 0 || i >= len(G.eorder) {
		panic("Graph: Requested Edge out of bounds")
	}
	return G.edges[G.eorder[i]].e
}

//Vertices returns the atom ids in insertion order.
func (G *Graph) Vertices() []VertexID {
	ret := make([]VertexID, len(G.vorder))
	copy(ret, G.vorder)
	return ret
}

//Edges returns the bond ids in insertion order.
func (G *Graph) Edges() []EdgeID {
	ret := make([]EdgeID, len(G.eorder))
	copy(ret, G.eorder)
	return ret
}

//Index returns the position of the atom in the insertion order, or -1 if
//the atom doesn't exist. Positions change when atoms before it are removed,
//ids don't.
func (G *Graph) Index(id VertexID) int {
	if G.vindex == nil {
		G.vindex = make(map[VertexID]int, len(G.vorder))
		for i, v := range G.vorder {
			G.vindex[v] = i
		}
	}
	i, ok := G.vindex[id]
	if !ok {
		return -1
	}
	return i
}

func (G *Graph) adjacency() map[VertexID][]EdgeID {
	if G.adj == nil {
		G.adj = make(map[VertexID][]EdgeID, len(G.vorder))
		for _, eid := range G.eorder {
			e := G.edges[eid].e
			G.adj[e.V1] = append(G.adj[e.V1], eid)
			G.adj[e.V2] = append(G.adj[e.V2], eid)
		}
	}
	return G.adj
}

//Incident returns the ids of the bonds touching the atom, in bond insertion order.
//The returned slice must not be modified.
func (G *Graph) Incident(id VertexID) []EdgeID {
	return G.adjacency()[id]
}

//Degree returns the number of bonds of the atom.
func (G *Graph) Degree(id VertexID) int {
	return len(G.adjacency()[id])
}

//Neighbors returns the atoms bonded to id, in the order of the bonds.
func (G *Graph) Neighbors(id VertexID) []VertexID {
	inc := G.adjacency()[id]
	ret := make([]VertexID, 0, len(inc))
	for _, eid := range inc {
		ret = append(ret, G.edges[eid].e.Cross(id))
	}
	return ret
}

//EdgeBetween returns the bond joining a and b, if any.
func (G *Graph) EdgeBetween(a, b VertexID) (EdgeID, bool) {
	for _, eid := range G.adjacency()[a] {
		if G.edges[eid].e.Joins(a, b) {
			return eid, true
		}
	}
	return -1, false
}

//Setters. None of them changes the topology, so the caches survive.

//SetPosition moves the atom to p.
func (G *Graph) SetPosition(id VertexID, p r2.Vec) error {
	if !G.live(id) {
		return newError(ErrInvalidReference, "SetPosition", "atom %d doesn't exist", id)
	}
	G.vertices[id].v.Pos = p
	return nil
}

//SetElement sets the element symbol of the atom. The empty string means carbon.
func (G *Graph) SetElement(id VertexID, symbol string) error {
	if !G.live(id) {
		return newError(ErrInvalidReference, "SetElement", "atom %d doesn't exist", id)
	}
	G.vertices[id].v.Element = symbol
	return nil
}

//SetCharge sets the formal charge of the atom.
func (G *Graph) SetCharge(id VertexID, charge int) error {
	if !G.live(id) {
		return newError(ErrInvalidReference, "SetCharge", "atom %d doesn't exist", id)
	}
	G.vertices[id].v.Charge = charge
	return nil
}

//SetHCount overrides the hydrogen count of the atom. nil goes back to inferring it.
func (G *Graph) SetHCount(id VertexID, h *int) error {
	if !G.live(id) {
		return newError(ErrInvalidReference, "SetHCount", "atom %d doesn't exist", id)
	}
	if h != nil && *h < 0 {
		return newError(ErrInvalidValue, "SetHCount", "negative hydrogen count %d", *h)
	}
	if h != nil {
		h = IntPtr(*h)
	}
	G.vertices[id].v.HCount = h
	return nil
}

//SetIsotope sets the mass number of the atom. nil means natural abundance.
func (G *Graph) SetIsotope(id VertexID, mass *int) error {
	if !G.live(id) {
		return newError(ErrInvalidReference, "SetIsotope", "atom %d doesn't exist", id)
	}
	if mass != nil && *mass <= 0 {
		return newError(ErrInvalidValue, "SetIsotope", "mass number %d", *mass)
	}
	if mass != nil {
		mass = IntPtr(*mass)
	}
	G.vertices[id].v.Isotope = mass
	return nil
}

//SetBondType changes the type of the bond.
func (G *Graph) SetBondType(id EdgeID, bt BondType) error {
	if !G.liveEdge(id) {
		return newError(ErrInvalidReference, "SetBondType", "bond %d doesn't exist", id)
	}
	if !bt.Valid() {
		return newError(ErrInvalidValue, "SetBondType", "bond type %d", int(bt))
	}
	G.edges[id].e.Type = bt
	return nil
}

//SetStereo changes the stereo code of the bond.
func (G *Graph) SetStereo(id EdgeID, st StereoType) error {
	if !G.liveEdge(id) {
		return newError(ErrInvalidReference, "SetStereo", "bond %d doesn't exist", id)
	}
	if !st.Valid() {
		return newError(ErrInvalidValue, "SetStereo", "stereo code %d", int(st))
	}
	G.edges[id].e.Stereo = st
	return nil
}

//Copy returns a deep copy of the graph, with the same ids and orders.
func (G *Graph) Copy() *Graph {
	N := new(Graph)
	N.vertices = make([]vslot, len(G.vertices))
	for i, s := range G.vertices {
		N.vertices[i] = vslot{v: s.v.Copy(), live: s.live}
	}
	N.edges = make([]eslot, len(G.edges))
	copy(N.edges, G.edges)
	N.vorder = G.Vertices()
	N.eorder = G.Edges()
	return N
}

//Equal returns true if both graphs have the same atoms and bonds, with
//the same ids, the same attributes and in the same order.
func (G *Graph) Equal(o *Graph) bool {
	if G.Len() != o.Len() || G.NumEdges() != o.NumEdges() {
		return false
	}
	for i, id := range G.vorder {
		if o.vorder[i] != id || !G.vertices[id].v.Equal(o.vertices[id].v) {
			return false
		}
	}
	for i, id := range G.eorder {
		if o.eorder[i] != id || G.edges[id].e != o.edges[id].e {
			return false
		}
	}
	return true
}

//SortByIndex sorts the ids in place by their position in the insertion order of G.
func (G *Graph) SortByIndex(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return G.Index(ids[i]) < G.Index(ids[j]) })
}
