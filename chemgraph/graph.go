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

//Package chemgraph lets the gonum graph algorithms run on a chem.Graph.
package chemgraph

import (
	"sort"

	chem "github.com/rmera/gosketch"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a gonum graph.Node for an atom. Its ID is the chem.VertexID.
type Atom chem.VertexID

func (A Atom) ID() int64 {
	return int64(A)
}

// Bond implements gonum's graph.Edge for a chem.Edge.
type Bond struct {
	chem.Edge
	from, to Atom
}

func (B Bond) From() graph.Node {
	return B.from
}

func (B Bond) To() graph.Node {
	return B.to
}

// ReversedEdge returns the same bond, walked the other way.
// Bonds are not directional.
func (B Bond) ReversedEdge() graph.Edge {
	B.from, B.to = B.to, B.from
	return B
}

// Graph implements gonum graph.Undirected on top of a chem.Graph.
// It holds no state of its own, so it always reflects the current graph.
type Graph struct {
	G *chem.Graph
}

//New wraps g.
func New(g *chem.Graph) Graph {
	return Graph{G: g}
}

func nodes(ids []chem.VertexID) graph.Nodes {
	n := make([]graph.Node, len(ids))
	for i, v := range ids {
		n[i] = Atom(v)
	}
	return iterator.NewOrderedNodes(n)
}

func (T Graph) Node(id int64) graph.Node {
	if !T.G.HasVertex(chem.VertexID(id)) {
		return nil
	}
	return Atom(id)
}

//Nodes returns the atoms in insertion order.
func (T Graph) Nodes() graph.Nodes {
	return nodes(T.G.Vertices())
}

func (T Graph) From(id int64) graph.Nodes {
	return nodes(T.G.Neighbors(chem.VertexID(id)))
}

func (T Graph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := T.G.EdgeBetween(chem.VertexID(xid), chem.VertexID(yid))
	return ok
}

//Edge returns the bond between u and v, or nil. The graph is undirected
//so Edge and EdgeBetween are the same.
func (T Graph) Edge(uid, vid int64) graph.Edge {
	return T.EdgeBetween(uid, vid)
}

func (T Graph) EdgeBetween(xid, yid int64) graph.Edge {
	eid, ok := T.G.EdgeBetween(chem.VertexID(xid), chem.VertexID(yid))
	if !ok {
		return nil
	}
	e, _ := T.G.Edge(eid)
	return Bond{Edge: e, from: Atom(xid), to: Atom(yid)}
}

var _ graph.Undirected = Graph{}

func toIDs(g *chem.Graph, ns []graph.Node) []chem.VertexID {
	ret := make([]chem.VertexID, len(ns))
	for i, n := range ns {
		ret[i] = chem.VertexID(n.ID())
	}
	g.SortByIndex(ret)
	return ret
}

//Fragments returns the connected components (molecules) of g. The atoms in each fragment
//are sorted by insertion order, and the fragments by the position of their first atom.
func Fragments(g *chem.Graph) [][]chem.VertexID {
	cc := topo.ConnectedComponents(New(g))
	ret := make([][]chem.VertexID, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, toIDs(g, c))
	}
	sort.Slice(ret, func(i, j int) bool { return g.Index(ret[i][0]) < g.Index(ret[j][0]) })
	return ret
}

//Component returns the atoms connected to id (including id), in insertion order.
func Component(g *chem.Graph, id chem.VertexID) []chem.VertexID {
	for _, f := range Fragments(g) {
		for _, v := range f {
			if v == id {
				return f
			}
		}
	}
	return nil
}

//Rings returns a cycle basis of g: one ring per independent cycle, with its atoms in
//walking order. Rings are sorted by size, then by the position of their first atom.
func Rings(g *chem.Graph) [][]chem.VertexID {
	cycles := topo.UndirectedCyclesIn(New(g))
	ret := make([][]chem.VertexID, 0, len(cycles))
	for _, c := range cycles {
		if len(c) > 1 && c[0].ID() == c[len(c)-1].ID() {
			c = c[:len(c)-1] //the cycles are given closed.
		}
		r := make([]chem.VertexID, len(c))
		for i, n := range c {
			r[i] = chem.VertexID(n.ID())
		}
		ret = append(ret, r)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if len(ret[i]) != len(ret[j]) {
			return len(ret[i]) < len(ret[j])
		}
		return minIndex(g, ret[i]) < minIndex(g, ret[j])
	})
	return ret
}

func minIndex(g *chem.Graph, r []chem.VertexID) int {
	m := g.Len()
	for _, v := range r {
		if i := g.Index(v); i < m {
			m = i
		}
	}
	return m
}

//InRing returns the set of atoms that belong to at least one ring.
func InRing(g *chem.Graph) map[chem.VertexID]bool {
	ret := make(map[chem.VertexID]bool)
	for _, r := range Rings(g) {
		for _, v := range r {
			ret[v] = true
		}
	}
	return ret
}
