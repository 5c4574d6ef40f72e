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

package chemgraph

import (
	"testing"

	chem "github.com/rmera/gosketch"
	"github.com/stretchr/testify/require"
)

//cyclopropylAndWater builds a cyclopropane with a methyl, plus a lone water.
func cyclopropylAndWater(Te *testing.T) (*chem.Graph, []chem.VertexID) {
	g := chem.NewGraph()
	ids := make([]chem.VertexID, 0, 5)
	for _, el := range []string{"C", "O", "C", "C", "C"} {
		ids = append(ids, g.AddVertex(chem.Vertex{Element: el}))
	}
	for _, p := range [][2]int{{0, 2}, {2, 3}, {3, 0}, {3, 4}} {
		_, err := g.AddEdge(ids[p[0]], ids[p[1]], chem.Single)
		require.NoError(Te, err)
	}
	return g, ids
}

func TestFragments(Te *testing.T) {
	g, ids := cyclopropylAndWater(Te)
	f := Fragments(g)
	require.Len(Te, f, 2)
	require.Equal(Te, []chem.VertexID{ids[0], ids[2], ids[3], ids[4]}, f[0])
	require.Equal(Te, []chem.VertexID{ids[1]}, f[1])
	require.Equal(Te, f[1], Component(g, ids[1]))
}

func TestRings(Te *testing.T) {
	g, ids := cyclopropylAndWater(Te)
	r := Rings(g)
	require.Len(Te, r, 1)
	require.ElementsMatch(Te, []chem.VertexID{ids[0], ids[2], ids[3]}, r[0])
	in := InRing(g)
	require.True(Te, in[ids[3]])
	require.False(Te, in[ids[4]])
}

func TestAdapter(Te *testing.T) {
	g, ids := cyclopropylAndWater(Te)
	G := New(g)
	require.Nil(Te, G.Node(99))
	require.True(Te, G.HasEdgeBetween(int64(ids[3]), int64(ids[4])))
	e := G.Edge(int64(ids[4]), int64(ids[3]))
	require.NotNil(Te, e)
	require.Equal(Te, int64(ids[4]), e.From().ID())
	require.Equal(Te, int64(ids[4]), e.ReversedEdge().To().ID())
	require.Equal(Te, 3, G.From(int64(ids[3])).Len())
	require.Equal(Te, 5, G.Nodes().Len())
}
