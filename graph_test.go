/*
 * graph_test.go, part of gosketch.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

//ethanol builds C-C-O with the oxygen last.
func ethanol(Te *testing.T) (*Graph, []VertexID, []EdgeID) {
	G := NewGraph()
	a := G.AddVertex(Vertex{Pos: r2.Vec{X: 0, Y: 0}})
	b := G.AddVertex(Vertex{Pos: r2.Vec{X: 1.5, Y: 0}})
	c := G.AddVertex(Vertex{Pos: r2.Vec{X: 2.25, Y: 1.3}, Element: "O"})
	e1, err := G.AddEdge(a, b, Single)
	require.NoError(Te, err)
	e2, err := G.AddEdge(b, c, Single)
	require.NoError(Te, err)
	return G, []VertexID{a, b, c}, []EdgeID{e1, e2}
}

func TestAddEdgeErrors(Te *testing.T) {
	G, v, _ := ethanol(Te)
	_, err := G.AddEdge(v[0], 42, Single)
	require.True(Te, errors.Is(err, ErrInvalidReference), "got %v", err)
	_, err = G.AddEdge(v[1], v[0], Double)
	require.True(Te, errors.Is(err, ErrDuplicateEdge), "got %v", err)
	_, err = G.AddEdge(v[0], v[0], Single)
	require.True(Te, errors.Is(err, ErrSelfLoop), "got %v", err)
	_, err = G.AddEdge(v[0], v[2], BondType(9))
	require.True(Te, errors.Is(err, ErrInvalidValue), "got %v", err)
	require.Equal(Te, 2, G.NumEdges())
}

func TestRemoveVertexCascade(Te *testing.T) {
	G, v, e := ethanol(Te)
	before := G.Copy()
	r, err := G.RemoveVertex(v[1])
	require.NoError(Te, err)
	require.Equal(Te, 2, G.Len())
	require.Equal(Te, 0, G.NumEdges())
	require.Len(Te, r.Edges, 2)
	require.Equal(Te, e[0], r.Edges[0].Edge.ID)
	require.Equal(Te, 1, G.Index(v[2]), "positions shift, ids don't")
	require.False(Te, G.HasVertex(v[1]))

	//A new atom doesn't alias the removed one.
	n := G.AddVertex(Vertex{Element: "N"})
	require.NotEqual(Te, v[1], n)
	_, err = G.RemoveVertex(n)
	require.NoError(Te, err)

	require.NoError(Te, G.Restore(r))
	require.True(Te, G.Equal(before))
	require.Equal(Te, []VertexID{v[0], v[1], v[2]}, G.Vertices())
	require.Equal(Te, []EdgeID{e[0], e[1]}, G.Edges())
}

func TestRestoreRejectsConflicts(Te *testing.T) {
	G, v, _ := ethanol(Te)
	r, err := G.RemoveEdge(0)
	require.NoError(Te, err)
	_, err = G.AddEdge(v[0], v[1], Double)
	require.NoError(Te, err)
	snap := G.Copy()
	err = G.Restore(r)
	require.True(Te, errors.Is(err, ErrDuplicateEdge), "got %v", err)
	require.True(Te, G.Equal(snap), "a failed restore leaves the graph alone")
}

func TestInsertKeepsOrder(Te *testing.T) {
	G, v, _ := ethanol(Te)
	vx, _ := G.Vertex(v[0])
	r, err := G.RemoveVertex(v[0])
	require.NoError(Te, err)
	require.Equal(Te, 0, r.Vertices[0].Pos)
	require.NoError(Te, G.InsertVertex(vx, 0))
	require.Equal(Te, 0, G.Index(v[0]))
	err = G.InsertVertex(vx, 0)
	require.True(Te, errors.Is(err, ErrInvalidReference))
}

func TestAdjacencyOrder(Te *testing.T) {
	G, v, e := ethanol(Te)
	d := G.AddVertex(Vertex{Element: "Cl"})
	e3, err := G.AddEdge(d, v[1], Single)
	require.NoError(Te, err)
	require.Equal(Te, []EdgeID{e[0], e[1], e3}, G.Incident(v[1]))
	require.Equal(Te, []VertexID{v[0], v[2], d}, G.Neighbors(v[1]))
	id, ok := G.EdgeBetween(v[1], d)
	require.True(Te, ok)
	require.Equal(Te, e3, id)
	require.Equal(Te, 3, G.Degree(v[1]))
}

func TestSetters(Te *testing.T) {
	G, v, e := ethanol(Te)
	require.NoError(Te, G.SetElement(v[0], "N"))
	require.NoError(Te, G.SetCharge(v[0], 1))
	require.NoError(Te, G.SetHCount(v[0], IntPtr(3)))
	require.NoError(Te, G.SetIsotope(v[0], IntPtr(15)))
	require.NoError(Te, G.SetBondType(e[0], Aromatic))
	require.NoError(Te, G.SetStereo(e[0], StereoDown))
	x, _ := G.Vertex(v[0])
	require.Equal(Te, "N", x.Symbol())
	require.Equal(Te, 3, *x.HCount)
	*x.HCount = 7 //copies don't reach into the graph
	y, _ := G.Vertex(v[0])
	require.Equal(Te, 3, *y.HCount)
	require.True(Te, errors.Is(G.SetStereo(e[0], StereoType(3)), ErrInvalidValue))
	require.True(Te, errors.Is(G.SetCharge(99, 1), ErrInvalidReference))
}

func TestErrorDecoration(Te *testing.T) {
	G := NewGraph()
	_, err := G.RemoveVertex(3)
	err = ErrDecorate(err, "TestErrorDecoration")
	ce, ok := err.(*CError)
	require.True(Te, ok)
	require.Equal(Te, "RemoveVertex <- TestErrorDecoration", ce.Trace())
	require.True(Te, errors.Is(err, ErrInvalidReference))
}
