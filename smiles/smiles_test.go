/*
 * smiles_test.go, part of gosketch.
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

package smiles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	chem "github.com/rmera/gosketch"
	"github.com/rmera/gosketch/chemgraph"
	"github.com/stretchr/testify/require"
)

//signature describes each atom by its own labels and those of its bonds, so
//two isomorphic graphs give the same, sorted, list.
func signature(g *chem.Graph) []string {
	var ret []string
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		h := -1
		if v.HCount != nil {
			h = *v.HCount
		}
		iso := 0
		if v.Isotope != nil {
			iso = *v.Isotope
		}
		var bonds []string
		for _, eid := range g.Incident(id) {
			e, _ := g.Edge(eid)
			n, _ := g.Vertex(e.Cross(id))
			bonds = append(bonds, fmt.Sprintf("%d%s", e.Type, n.Symbol()))
		}
		sort.Strings(bonds)
		ret = append(ret, fmt.Sprintf("%s%+d h%d i%d %s", v.Symbol(), v.Charge, h, iso, strings.Join(bonds, ",")))
	}
	sort.Strings(ret)
	return ret
}

func TestParse(Te *testing.T) {
	g, err := Parse("OC(=O)c1ccccc1 benzoic acid")
	require.NoError(Te, err)
	require.Equal(Te, 9, g.Len())
	require.Equal(Te, 9, g.NumEdges())
	require.Equal(Te, "C7H6O2", chem.Formula(g))
	aromatic := 0
	for _, eid := range g.Edges() {
		e, _ := g.Edge(eid)
		if e.Type == chem.Aromatic {
			aromatic++
		}
	}
	require.Equal(Te, 6, aromatic)
	require.Len(Te, chemgraph.Rings(g), 1)

	g, err = Parse("[13CH3][O-].[Na+]")
	require.NoError(Te, err)
	require.Equal(Te, 3, g.Len())
	require.Equal(Te, 1, g.NumEdges())
	c := g.VertexAt(0)
	require.Equal(Te, 13, *c.Isotope)
	require.Equal(Te, 3, *c.HCount)
	require.Equal(Te, -1, g.VertexAt(1).Charge)
	require.Equal(Te, 0, *g.VertexAt(1).HCount)
	require.Equal(Te, "Na", g.VertexAt(2).Element)
	require.Len(Te, chemgraph.Fragments(g), 2)

	g, err = Parse("[Fe++].[O--].N[C@@H](C)C(=O)O")
	require.NoError(Te, err)
	require.Equal(Te, 2, g.VertexAt(0).Charge)
	require.Equal(Te, -2, g.VertexAt(1).Charge)

	g, err = Parse("C%12CC%12")
	require.NoError(Te, err)
	require.Equal(Te, 3, g.NumEdges())

	g, err = Parse("F/C=C/F")
	require.NoError(Te, err)
	require.Equal(Te, chem.Single, g.EdgeAt(0).Type)
	require.Equal(Te, chem.Double, g.EdgeAt(1).Type)

	g, err = Parse("C=1CCC1")
	require.NoError(Te, err)
	require.Equal(Te, chem.Double, g.EdgeAt(3).Type)

	g, err = Parse("[nH]1cccc1")
	require.NoError(Te, err)
	require.Equal(Te, "N", g.VertexAt(0).Element)
	require.Equal(Te, "C4H5N", chem.Formula(g))
}

func TestParseErrors(Te *testing.T) {
	cases := []struct {
		s      string
		offset int
	}{
		{"", 0},
		{"C1CC", 1},
		{"CC)", 2},
		{"C(C", 1},
		{"CX", 1},
		{"C=", 1},
		{"[C", 0},
		{"C11", 2},
		{"C()", 2},
		{"C$C", 1},
		{"=C", 0},
		{"C==C", 2},
		{"C.", 1},
		{"  C1CC", 3},
		{"C=1CC-1", 6},
		{"[Xy]", 1},
		{"C%1", 1},
	}
	for _, c := range cases {
		_, err := Parse(c.s)
		require.Error(Te, err, c.s)
		require.True(Te, errors.Is(err, ErrMalformed), c.s)
		var serr *Error
		require.True(Te, errors.As(err, &serr), c.s)
		require.Equal(Te, c.offset, serr.Offset, c.s)
	}
}

func TestWrite(Te *testing.T) {
	cases := map[string]string{
		"CCO":               "CCO",
		"OC(=O)C":           "OC(=O)C",
		"C1CC1C1CC1":        "C1CC1C1CC1",
		"c1ccccc1":          "c1ccccc1",
		"[NH4+]":            "[NH4+]",
		"C#N.[Na+]":         "C#N.[Na+]",
		"c1ccccc1-c1ccccc1": "c1ccccc1-c1ccccc1",
	}
	for in, want := range cases {
		g, err := Parse(in)
		require.NoError(Te, err, in)
		out, err := Write(g)
		require.NoError(Te, err, in)
		require.Equal(Te, want, out, in)
	}
}

func TestWriteBrackets(Te *testing.T) {
	g := chem.NewGraph()
	n := g.AddVertex(chem.Vertex{Element: "N", Charge: 1})
	c := g.AddVertex(chem.Vertex{Isotope: chem.IntPtr(13)})
	g.AddEdge(n, c, chem.Single)
	g.AddVertex(chem.Vertex{Element: "Se"})
	out, err := Write(g)
	require.NoError(Te, err)
	require.Equal(Te, "[NH3+][13CH3].[SeH2]", out)

	q := chem.NewGraph()
	a := q.AddVertex(chem.Vertex{})
	b := q.AddVertex(chem.Vertex{})
	q.AddEdge(a, b, chem.SingleOrDouble)
	_, err = Write(q)
	require.True(Te, errors.Is(err, chem.ErrInvalidValue))
}

func TestRoundTrip(Te *testing.T) {
	for _, in := range []string{
		"OC(=O)C(N)Cc1ccc(O)cc1",
		"c1ccc2ccccc2c1",
		"C1CC2CCC1C2",
		"[13CH3][O-].[Na+]",
		"C%12CC%12C1CC1",
		"[nH]1cccc1",
		"O=S(=O)(O)c1ccc(cc1)[N+](=O)[O-]",
		"C12C3C4C1C5C2C3C45",
		"FC(F)(F)C#CC=C",
	} {
		g, err := Parse(in)
		require.NoError(Te, err, in)
		out, err := Write(g)
		require.NoError(Te, err, in)
		back, err := Parse(out)
		require.NoError(Te, err, "%s -> %s", in, out)
		require.Equal(Te, signature(g), signature(back), "%s -> %s", in, out)
		require.Equal(Te, g.NumEdges(), back.NumEdges())
	}
}
